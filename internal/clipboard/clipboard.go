package clipboard

import (
	"strings"

	"github.com/atotto/clipboard"

	"github.com/convertlength/convertlength/internal/units"
)

// maxValueLength rejects pasted blobs that cannot be a single number
const maxValueLength = 64

// ExtractValue returns the trimmed text if it parses as an input value
func ExtractValue(text string) (string, bool) {
	text = strings.TrimSpace(text)
	if text == "" || len(text) > maxValueLength || strings.ContainsAny(text, "\n\r") {
		return "", false
	}
	if _, err := units.ParseInput(text); err != nil {
		return "", false
	}
	return text, true
}

// ReadValue reads the clipboard and returns its content if it is a usable value
func ReadValue() (string, bool) {
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", false
	}
	return ExtractValue(text)
}

// WriteResult copies a rendered result to the clipboard
func WriteResult(result string) error {
	return clipboard.WriteAll(result)
}
