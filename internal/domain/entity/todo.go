package entity

import "time"

// Priority orders to-dos; lower values come first.
type Priority int

const (
	PriorityHigh   Priority = 1
	PriorityMedium Priority = 2
	PriorityLow    Priority = 3

	DefaultPriority = PriorityLow
)

// Priorities lists every valid priority in display order.
var Priorities = []Priority{PriorityHigh, PriorityMedium, PriorityLow}

func (p Priority) Valid() bool {
	return p >= PriorityHigh && p <= PriorityLow
}

func (p Priority) Label() string {
	switch p {
	case PriorityHigh:
		return "High"
	case PriorityMedium:
		return "Medium"
	case PriorityLow:
		return "Low"
	default:
		return "Unknown"
	}
}

// DateLayout is the only accepted due date format.
const DateLayout = "2006-01-02"

type Todo struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	OwnerID     uint       `gorm:"not null;index" json:"ownerId"`
	Owner       User       `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"-"`
	ProjectID   *uint      `gorm:"index" json:"projectId"`
	Project     *Project   `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"-"`
	Name        string     `gorm:"size:255;not null" json:"name"`
	Description string     `gorm:"type:text;not null;default:''" json:"description"`
	Priority    Priority   `gorm:"not null;default:3;index" json:"priority"`
	Completed   bool       `gorm:"not null;default:false" json:"completed"`
	DueDate     *time.Time `gorm:"type:date" json:"dueDate"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
}

// IsOverdue reports whether an incomplete to-do's due date is strictly before today's date.
func (t Todo) IsOverdue(today time.Time) bool {
	if t.Completed || t.DueDate == nil {
		return false
	}
	return dateOf(*t.DueDate).Before(dateOf(today))
}

// DueDateString formats the due date for forms, empty when unset.
func (t Todo) DueDateString() string {
	if t.DueDate == nil {
		return ""
	}
	return t.DueDate.Format(DateLayout)
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
