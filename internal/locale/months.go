// Package locale resolves localized month names used by the birthday filters.
package locale

import (
	"fmt"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Full month names, January first, in the casing each locale's calendar uses
var monthTables = map[language.Tag][12]string{
	language.BrazilianPortuguese: {
		"janeiro", "fevereiro", "março", "abril", "maio", "junho",
		"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
	},
	language.EuropeanPortuguese: {
		"janeiro", "fevereiro", "março", "abril", "maio", "junho",
		"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
	},
	language.AmericanEnglish: {
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	},
	language.Spanish: {
		"enero", "febrero", "marzo", "abril", "mayo", "junio",
		"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
	},
	language.Indonesian: {
		"Januari", "Februari", "Maret", "April", "Mei", "Juni",
		"Juli", "Agustus", "September", "Oktober", "November", "Desember",
	},
}

var (
	supported []language.Tag
	matcher   language.Matcher
)

func init() {
	// pt-BR first so it wins when nothing else matches
	supported = []language.Tag{
		language.BrazilianPortuguese,
		language.EuropeanPortuguese,
		language.AmericanEnglish,
		language.Spanish,
		language.Indonesian,
	}
	matcher = language.NewMatcher(supported)
}

// MonthNames formats and matches month names for a single locale
type MonthNames struct {
	tag   language.Tag
	names [12]string
}

// NewMonthNames returns the month table closest to the given BCP 47 locale
// string, e.g. "pt-BR", "en", "es-AR".
func NewMonthNames(locale string) (*MonthNames, error) {
	requested, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
	}

	_, index, confidence := matcher.Match(requested)
	if confidence == language.No {
		return nil, fmt.Errorf("unsupported locale %q", locale)
	}
	tag := supported[index]

	return &MonthNames{
		tag:   tag,
		names: monthTables[tag],
	}, nil
}

// Tag returns the resolved locale
func (m *MonthNames) Tag() language.Tag {
	return m.tag
}

// Name returns the full month name, e.g. "janeiro" for pt-BR
func (m *MonthNames) Name(month time.Month) string {
	if month < time.January || month > time.December {
		return ""
	}
	return m.names[month-1]
}

// Matches reports whether input names the given month, ignoring case
func (m *MonthNames) Matches(month time.Month, input string) bool {
	name := m.Name(month)
	if name == "" || input == "" {
		return false
	}
	// Casers keep state, so each call gets its own
	return cases.Fold().String(name) == cases.Fold().String(input)
}
