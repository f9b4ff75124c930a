package entity

import "time"

// Session binds a browser cookie to a logged in user and carries pending flash notices.
type Session struct {
	Key       string    `gorm:"column:session_key;primaryKey;size:64"`
	UserID    uint      `gorm:"not null;index"`
	User      User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Notices   []string  `gorm:"serializer:json;type:text"`
	ExpiresAt time.Time `gorm:"not null;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
