package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDedupeAndTrim(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{
			name:     "nil slice",
			input:    nil,
			expected: nil,
		},
		{
			name:     "empty slice",
			input:    []string{},
			expected: []string{},
		},
		{
			name:     "removes duplicate roles preserving order",
			input:    []string{"RESIDENT", "ADMIN", "RESIDENT"},
			expected: []string{"RESIDENT", "ADMIN"},
		},
		{
			name:     "trims and drops blanks",
			input:    []string{"  ADMIN ", "", "   ", "ADMIN"},
			expected: []string{"ADMIN"},
		},
		{
			name:     "preserves case",
			input:    []string{"Admin", "ADMIN"},
			expected: []string{"Admin", "ADMIN"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DedupeAndTrim(tt.input))
		})
	}
}
