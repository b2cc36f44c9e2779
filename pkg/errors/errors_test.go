package errors

import (
	"errors"
	"testing"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		msg      string
		expected string
	}{
		{
			name:     "wrap nil error",
			err:      nil,
			msg:      "additional context",
			expected: "",
		},
		{
			name:     "wrap standard error",
			err:      errors.New("original error"),
			msg:      "additional context",
			expected: "additional context: original error",
		},
		{
			name:     "wrap sentinel",
			err:      ErrForbidden,
			msg:      "chown f1",
			expected: "chown f1: operation not permitted",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Wrap(tt.err, tt.msg)
			if tt.err == nil {
				if result != nil {
					t.Errorf("Expected nil, got %v", result)
				}
				return
			}
			if result.Error() != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, result.Error())
			}
			// Test that the original error is wrapped
			if !errors.Is(result, tt.err) {
				t.Errorf("Expected wrapped error to contain original error")
			}
		})
	}
}

func TestWrapf(t *testing.T) {
	result := Wrapf(ErrInvalidInput, "%s takes %d argument(s)", "chmod", 4)
	expected := "chmod takes 4 argument(s): invalid input"
	if result.Error() != expected {
		t.Errorf("Expected %q, got %q", expected, result.Error())
	}
	if !errors.Is(result, ErrInvalidInput) {
		t.Errorf("Expected wrapped error to contain sentinel")
	}

	if Wrapf(nil, "ignored %s", "context") != nil {
		t.Errorf("Expected nil when wrapping nil")
	}
}

func TestHelperConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
		expected string
	}{
		{"account exists", ErrAccountExistsWithName("alice"), ErrAlreadyExists, "account 'alice': already exists"},
		{"group not found", ErrGroupNotFoundWithName("dev"), ErrNotFound, "group 'dev': not found"},
		{"file not found", ErrFileNotFoundWithName("f1"), ErrNotFound, "file 'f1': not found"},
		{"protected file", ErrProtectedWithName("audit.log"), ErrProtected, "file 'audit.log': file name is reserved"},
		{"unknown verb", ErrUnknownVerbWithName("frobnicate"), ErrUnknownVerb, "'frobnicate': unknown command verb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Error() != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, tt.err.Error())
			}
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("Expected error to match its sentinel")
			}
		})
	}
}
