package units

import (
	"errors"
	"fmt"
)

// ErrUnknownUnit is returned when a unit index or name does not match the table
var ErrUnknownUnit = errors.New("unknown unit")

// NoSelection marks a group with no checked chip
const NoSelection = -1

// SelectionGroup is a single-select group of unit chips.
// The unit used for conversion survives a deselect; only the checked marker is cleared.
type SelectionGroup struct {
	checked int
	unit    int
}

func newGroup(i int) SelectionGroup {
	return SelectionGroup{checked: i, unit: i}
}

// Checked returns the index of the checked chip, if any
func (g SelectionGroup) Checked() (int, bool) {
	return g.checked, g.checked != NoSelection
}

// Index returns the table index of the group's current unit
func (g SelectionGroup) Index() int {
	return g.unit
}

// Unit returns the group's current unit
func (g SelectionGroup) Unit() LengthUnit {
	return table[g.unit]
}

func (g *SelectionGroup) selectIndex(i int) error {
	if i < 0 || i >= Count {
		return fmt.Errorf("%w: index %d", ErrUnknownUnit, i)
	}
	g.checked = i
	g.unit = i
	return nil
}

// toggle returns true when the toggle checked a unit, false when it cleared one
func (g *SelectionGroup) toggle(i int) (bool, error) {
	if i < 0 || i >= Count {
		return false, fmt.Errorf("%w: index %d", ErrUnknownUnit, i)
	}
	if g.checked == i {
		g.checked = NoSelection
		return false, nil
	}
	g.checked = i
	g.unit = i
	return true, nil
}

// ConversionState holds the from and to selections for one screen
type ConversionState struct {
	From SelectionGroup
	To   SelectionGroup
}

// NewConversionState selects the first unit as source and the second as target
func NewConversionState() *ConversionState {
	return NewConversionStateWith(Metre, Centimetre)
}

// NewConversionStateWith starts from the given table indices.
// Out of range indices fall back to the defaults.
func NewConversionStateWith(from, to int) *ConversionState {
	if from < 0 || from >= Count {
		from = Metre
	}
	if to < 0 || to >= Count {
		to = Centimetre
	}
	return &ConversionState{From: newGroup(from), To: newGroup(to)}
}

// SelectFrom checks unit i in the from group. The to group is untouched.
func (s *ConversionState) SelectFrom(i int) error {
	return s.From.selectIndex(i)
}

// SelectTo checks unit i in the to group. The from group is untouched.
func (s *ConversionState) SelectTo(i int) error {
	return s.To.selectIndex(i)
}

// ToggleFrom behaves like tapping a from chip: it checks an unchecked chip and
// clears the checked one. Returns whether a unit ended up checked.
func (s *ConversionState) ToggleFrom(i int) (bool, error) {
	return s.From.toggle(i)
}

// ToggleTo is ToggleFrom for the to group
func (s *ConversionState) ToggleTo(i int) (bool, error) {
	return s.To.toggle(i)
}

// Swap exchanges the checked members of both groups.
// If either group has nothing checked it does nothing and returns false.
func (s *ConversionState) Swap() bool {
	from, okFrom := s.From.Checked()
	to, okTo := s.To.Checked()
	if !okFrom || !okTo {
		return false
	}
	// Indices came from the table, so these cannot fail
	_ = s.From.selectIndex(to)
	_ = s.To.selectIndex(from)
	return true
}

// Convert converts value with the current selection
func (s *ConversionState) Convert(value float64) float64 {
	return Convert(value, s.From.Unit(), s.To.Unit())
}

// Result converts value and formats it in the target unit
func (s *ConversionState) Result(value float64) string {
	return FormatResult(s.Convert(value), s.To.Unit())
}
