package validation

import "testing"

func TestProfileValidator_ValidateGoalIndex(t *testing.T) {
	validator := NewProfileValidator()

	tests := []struct {
		name        string
		index       int
		count       int
		expectError bool
	}{
		{"first of three", 0, 3, false},
		{"last of three", 2, 3, false},
		{"past the end", 3, 3, true},
		{"negative", -1, 3, true},
		{"no goals", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateGoalIndex(tt.index, tt.count)
			if (err != nil) != tt.expectError {
				t.Errorf("ValidateGoalIndex(%d, %d) error = %v, expectError %v", tt.index, tt.count, err, tt.expectError)
			}
		})
	}
}

func TestProfileValidator_ValidateSetting(t *testing.T) {
	validator := NewProfileValidator()

	if err := validator.ValidateSetting("compactView", "true"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := validator.ValidateSetting("weekStartsOn", "sunday"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	err := validator.ValidateSetting("theme", "dark")
	if err == nil {
		t.Fatal("expected error for unknown setting")
	}
	if !IsValidationError(err) {
		t.Errorf("expected ValidationError, got %T", err)
	}
}
