package tui

import "time"

const (
	// Toast lifetime, matching a short snackbar
	ToastDuration = 2 * time.Second

	// Input Dimensions
	InputWidth = 24
	InputLimit = 64

	// Layout
	MinBoxWidth     = 40
	MaxBoxWidth     = 96
	BoxMarginX      = 4
	DefaultPaddingX = 2
	LabelWidth      = 8
)

const (
	swappedText = "Units swapped!"
	copiedText  = "Copied to clipboard"
)
