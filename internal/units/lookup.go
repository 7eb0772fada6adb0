package units

import (
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"
)

// Extra spellings accepted on the command line, keyed to table indices
var aliases = map[string]int{
	"meter": Metre, "meters": Metre, "metres": Metre,
	"centimeter": Centimetre, "centimeters": Centimetre, "centimetres": Centimetre,
	"millimeter": Millimetre, "millimeters": Millimetre, "millimetres": Millimetre,
	"kilometer": Kilometre, "kilometers": Kilometre, "kilometres": Kilometre,
	"miles": Mile, "feet": Foot, "inches": Inch, "yards": Yard,
}

// MaxSuggestions caps the "did you mean" list
const MaxSuggestions = 3

// UnknownUnitError reports a failed lookup with the closest unit names
type UnknownUnitError struct {
	Query       string
	Suggestions []string
}

func (e *UnknownUnitError) Error() string {
	if len(e.Suggestions) == 0 {
		return fmt.Sprintf("unknown unit %q", e.Query)
	}
	return fmt.Sprintf("unknown unit %q (did you mean %s?)", e.Query, strings.Join(e.Suggestions, ", "))
}

func (e *UnknownUnitError) Unwrap() error {
	return ErrUnknownUnit
}

// Lookup resolves a unit by name, symbol or alias, ignoring case
func Lookup(query string) (LengthUnit, int, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q != "" {
		for i, u := range table {
			if q == strings.ToLower(u.Name) || q == strings.ToLower(u.Symbol) {
				return u, i, nil
			}
		}
		if i, ok := aliases[q]; ok {
			return table[i], i, nil
		}
	}
	return LengthUnit{}, NoSelection, &UnknownUnitError{Query: query, Suggestions: Suggest(q)}
}

// Suggest returns up to MaxSuggestions unit names that fuzzy match query
func Suggest(query string) []string {
	if query == "" {
		return nil
	}
	names := make([]string, Count)
	for i, u := range table {
		names[i] = u.Name
	}
	matches := fuzzy.Find(query, names)
	var out []string
	for _, m := range matches {
		out = append(out, names[m.Index])
		if len(out) == MaxSuggestions {
			break
		}
	}
	return out
}
