package entity

import (
	"testing"
	"time"
)

func TestIsOverdue(t *testing.T) {
	today := time.Date(2024, time.June, 15, 9, 30, 0, 0, time.Local)
	yesterday := time.Date(2024, time.June, 14, 0, 0, 0, 0, time.UTC)
	sameDay := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	tomorrow := time.Date(2024, time.June, 16, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		todo Todo
		want bool
	}{
		{"no due date", Todo{}, false},
		{"due yesterday", Todo{DueDate: &yesterday}, true},
		{"due today", Todo{DueDate: &sameDay}, false},
		{"due tomorrow", Todo{DueDate: &tomorrow}, false},
		{"completed and past due", Todo{DueDate: &yesterday, Completed: true}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.todo.IsOverdue(today); got != tt.want {
				t.Errorf("IsOverdue() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPriority(t *testing.T) {
	for _, p := range Priorities {
		if !p.Valid() {
			t.Errorf("priority %d should be valid", p)
		}
	}
	if Priority(0).Valid() || Priority(4).Valid() {
		t.Error("priorities outside 1..3 should be invalid")
	}
	if DefaultPriority != PriorityLow {
		t.Errorf("default priority = %d, want %d", DefaultPriority, PriorityLow)
	}
	if got := PriorityMedium.Label(); got != "Medium" {
		t.Errorf("label = %q, want Medium", got)
	}
}

func TestDueDateString(t *testing.T) {
	due := time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC)
	if got := (Todo{DueDate: &due}).DueDateString(); got != "2024-12-31" {
		t.Errorf("DueDateString() = %q", got)
	}
	if got := (Todo{}).DueDateString(); got != "" {
		t.Errorf("DueDateString() = %q, want empty", got)
	}
}
