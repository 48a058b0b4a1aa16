package shared_test

import (
	"testing"
	"xterminio/shared"
)

func TestFilterByID(t *testing.T) {
	filter := shared.FilterByID(42, "id")

	where, args := filter.GetWhereClause()
	if where != "(id = :id)" {
		t.Errorf("expected where clause '(id = :id)', got %q", where)
	}

	if args["id"] != int64(42) {
		t.Errorf("expected id arg 42, got %v", args["id"])
	}
}

func TestTruncateClock(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "seconds are dropped",
			input:    "14:30:59",
			expected: "14:30",
		},
		{
			name:     "minute precision passes through",
			input:    "14:30",
			expected: "14:30",
		},
		{
			name:     "short value passes through",
			input:    "9:05",
			expected: "9:05",
		},
		{
			name:     "empty value passes through",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shared.TruncateClock(tt.input); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}
