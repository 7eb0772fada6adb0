package units

// Converter ties the input text to a ConversionState and tracks what is
// currently displayed. Confirm and Preview share one parse and one format
// path; they differ only in whether parse errors are reported.
type Converter struct {
	State *ConversionState

	display  string
	inputErr error
}

// NewConverter wraps state. A nil state gets the default selection.
func NewConverter(state *ConversionState) *Converter {
	if state == nil {
		state = NewConversionState()
	}
	return &Converter{State: state}
}

// Display returns the last rendered result, or "" if nothing was converted yet
func (c *Converter) Display() string {
	return c.display
}

// InputError returns the error shown at the input field, if any
func (c *Converter) InputError() error {
	return c.inputErr
}

func (c *Converter) render(text string) (string, error) {
	v, err := ParseInput(text)
	if err != nil {
		return "", err
	}
	return c.State.Result(v), nil
}

// Confirm is the explicit convert action. Parse errors are recorded as the
// input error and returned; the display is left as it was.
func (c *Converter) Confirm(text string) (string, error) {
	out, err := c.render(text)
	if err != nil {
		c.inputErr = err
		return "", err
	}
	c.inputErr = nil
	c.display = out
	return out, nil
}

// Preview is the live conversion run on every edit or selection change.
// Parse failures are swallowed: ok is false and nothing changes.
func (c *Converter) Preview(text string) (string, bool) {
	out, err := c.render(text)
	if err != nil {
		return c.display, false
	}
	c.display = out
	return out, true
}
