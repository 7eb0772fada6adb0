package units

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	// ErrEmptyValue is returned when the input is blank after trimming
	ErrEmptyValue = errors.New("value required")
	// ErrInvalidNumber is returned when the input is not a decimal numeral
	ErrInvalidNumber = errors.New("not a valid number")
)

// LengthUnit is a unit of length. Factor is how many of this unit make one metre.
type LengthUnit struct {
	Name   string
	Symbol string
	Factor float64
}

func (u LengthUnit) String() string {
	return fmt.Sprintf("%s (%s)", u.Name, u.Symbol)
}

// Table order is also the chip order on screen
var table = [...]LengthUnit{
	{Name: "Metre", Symbol: "m", Factor: 1.0},
	{Name: "Centimetre", Symbol: "cm", Factor: 100.0},
	{Name: "Millimetre", Symbol: "mm", Factor: 1000.0},
	{Name: "Kilometre", Symbol: "km", Factor: 0.001},
	{Name: "Mile", Symbol: "mi", Factor: 0.000621371},
	{Name: "Foot", Symbol: "ft", Factor: 3.28084},
	{Name: "Inch", Symbol: "in", Factor: 39.3701},
	{Name: "Yard", Symbol: "yd", Factor: 1.09361},
}

// Indices into the unit table
const (
	Metre = iota
	Centimetre
	Millimetre
	Kilometre
	Mile
	Foot
	Inch
	Yard
)

// Count is the number of units in the table
const Count = len(table)

// All returns a copy of the unit table
func All() []LengthUnit {
	out := make([]LengthUnit, Count)
	copy(out, table[:])
	return out
}

// At returns the unit at index i
func At(i int) (LengthUnit, bool) {
	if i < 0 || i >= Count {
		return LengthUnit{}, false
	}
	return table[i], true
}

// Convert normalizes value into metres and projects it into the target unit.
// Same-unit conversions go through the same arithmetic.
func Convert(value float64, from, to LengthUnit) float64 {
	metres := value / from.Factor
	return metres * to.Factor
}

// Optional sign, digits with an optional fraction (either side of the point
// may be empty but not both), optional exponent.
var numeral = regexp.MustCompile(`^[+-]?(?:[0-9]+\.?[0-9]*|\.[0-9]+)(?:[eE][+-]?[0-9]+)?$`)

// ParseInput parses user entered text into a value
func ParseInput(text string) (float64, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, ErrEmptyValue
	}
	if !numeral.MatchString(text) {
		return 0, ErrInvalidNumber
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		// Out of range for float64
		return 0, ErrInvalidNumber
	}
	return v, nil
}

// FormatResult renders value with six decimals followed by the unit name and symbol.
// strconv never consults the locale, so the separator is always a period.
func FormatResult(value float64, unit LengthUnit) string {
	return FormatValue(value) + " " + unit.Name + " (" + unit.Symbol + ")"
}

// FormatValue renders just the number part of FormatResult
func FormatValue(value float64) string {
	return strconv.FormatFloat(value, 'f', 6, 64)
}
