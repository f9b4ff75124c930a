package entity

import "testing"

func TestCompletionPercent(t *testing.T) {
	tests := []struct {
		name      string
		completed int64
		total     int64
		want      int
	}{
		{"no todos", 0, 0, 0},
		{"half done", 2, 4, 50},
		{"truncates instead of rounding", 1, 3, 33},
		{"two thirds truncates", 2, 3, 66},
		{"all done", 5, 5, 100},
		{"none done", 0, 7, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CompletionPercent(tt.completed, tt.total); got != tt.want {
				t.Errorf("CompletionPercent(%d, %d) = %d, want %d", tt.completed, tt.total, got, tt.want)
			}
		})
	}
}
