package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidNationalID(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "well formed", input: "123.456.789-09", want: true},
		{name: "all zeros is still well formed", input: "000.000.000-00", want: true},
		{name: "empty", input: "", want: false},
		{name: "digits only", input: "12345678909", want: false},
		{name: "missing hyphen", input: "123.456.78909", want: false},
		{name: "hyphen instead of period", input: "123-456.789-09", want: false},
		{name: "wrong grouping", input: "12.3456.789-09", want: false},
		{name: "letters", input: "abc.def.ghi-jk", want: false},
		{name: "too many check digits", input: "123.456.789-091", want: false},
		{name: "leading space", input: " 123.456.789-09", want: false},
		{name: "trailing newline", input: "123.456.789-09\n", want: false},
		{name: "non ascii digits", input: "١٢٣.456.789-09", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidNationalID(tt.input))
		})
	}
}

func TestIsValidName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "simple", input: "Maria", want: true},
		{name: "single letter", input: "A", want: true},
		{name: "accented", input: "João", want: true},
		{name: "accented uppercase", input: "ÁLVARO", want: true},
		{name: "apostrophe", input: "D'Ávila", want: true},
		{name: "hyphenated", input: "Ana-Luíza", want: true},
		{name: "compound with spaces", input: "Maria da Conceição", want: true},
		{name: "abbreviation", input: "Jr.Silva", want: true},
		{name: "comma separated", input: "Silva,Souza", want: true},
		{name: "empty", input: "", want: false},
		{name: "blank", input: "   ", want: false},
		{name: "digits", input: "Maria2", want: false},
		{name: "only digits", input: "1234", want: false},
		{name: "leading separator", input: "-Maria", want: false},
		{name: "trailing separator", input: "Maria-", want: false},
		{name: "trailing space", input: "Maria ", want: false},
		{name: "adjacent separators", input: "Maria  Silva", want: false},
		{name: "separator only", input: "'", want: false},
		{name: "other symbols", input: "Maria@Silva", want: false},
		{name: "non latin script", input: "Мария", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidName(tt.input))
		})
	}
}
