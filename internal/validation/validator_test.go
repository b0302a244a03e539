package validation

import (
	"testing"

	"study-planner/internal/domain"
)

func TestValidator_IsNonEmptyString(t *testing.T) {
	validator := NewValidator()

	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"Empty string", "", false},
		{"Whitespace only", "   ", false},
		{"Tab and newline", "\t\n", false},
		{"Valid string", "hello", true},
		{"String with leading/trailing spaces", "  hello  ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := validator.IsNonEmptyString(tt.input); got != tt.expected {
				t.Errorf("IsNonEmptyString(%q) = %v, expected %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestValidator_IsValidClockTime(t *testing.T) {
	validator := NewValidator()

	tests := []struct {
		input    string
		expected bool
	}{
		{"08:00", true},
		{"23:59", true},
		{"00:00", true},
		{"24:00", false},
		{"8:00", false},
		{"08:60", false},
		{"0800", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := validator.IsValidClockTime(tt.input); got != tt.expected {
				t.Errorf("IsValidClockTime(%q) = %v, expected %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestValidator_IsValidDueDate(t *testing.T) {
	validator := NewValidator()

	for _, ok := range []string{"2026-10-16", "2026-10-16T09:30", "2026-10-16T09:30:00Z"} {
		if !validator.IsValidDueDate(ok) {
			t.Errorf("IsValidDueDate(%q) = false, expected true", ok)
		}
	}
	for _, bad := range []string{"", "16/10/2026", "tomorrow", "2026-13-01"} {
		if validator.IsValidDueDate(bad) {
			t.Errorf("IsValidDueDate(%q) = true, expected false", bad)
		}
	}
}

func TestValidator_IsValidColor(t *testing.T) {
	validator := NewValidator()

	for _, c := range domain.Colors {
		if !validator.IsValidColor(c) {
			t.Errorf("palette colour %s rejected", c)
		}
	}
	for _, bad := range []string{"blue", "#fff", "3b82f6", "#3b82fg"} {
		if validator.IsValidColor(bad) {
			t.Errorf("IsValidColor(%q) = true, expected false", bad)
		}
	}
}

func TestValidator_Enums(t *testing.T) {
	validator := NewValidator()

	if !validator.IsValidPriority(domain.PriorityHigh) || validator.IsValidPriority("urgent") {
		t.Error("IsValidPriority gave wrong result")
	}
	if !validator.IsValidDay(domain.Saturday) || validator.IsValidDay("sunday") {
		t.Error("IsValidDay gave wrong result")
	}
}
