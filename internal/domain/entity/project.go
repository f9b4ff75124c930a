package entity

import "time"

type Project struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	OwnerID     uint      `gorm:"not null;index" json:"ownerId"`
	Owner       User      `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"-"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Description string    `gorm:"type:text;not null;default:''" json:"description"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`

	// CompletionPercent is derived from the project's to-dos and never stored.
	CompletionPercent int `gorm:"-" json:"completionPercent"`
}

// TodoCount holds the to-do totals of one project.
type TodoCount struct {
	ProjectID uint
	Total     int64
	Completed int64
}

// CompletionPercent returns the truncated percentage of completed to-dos, 0 for an empty project.
func CompletionPercent(completed, total int64) int {
	if total <= 0 {
		return 0
	}
	return int(completed * 100 / total)
}
