// Package ui holds the plain-terminal pieces of patchpick: the single-key
// confirm prompt for walk mode and small formatting helpers.
package ui

import (
	"fmt"
	"os"

	"github.com/eiannone/keyboard"
)

// Answer is the operator's response to a walk-mode prompt.
type Answer int

const (
	Yes Answer = iota
	No
	Quit
)

// Confirm prints the prompt and reads a single keypress: y applies, q quits,
// anything else skips. Ctrl+C counts as quit.
func Confirm(prompt string) (Answer, error) {
	fmt.Fprintf(os.Stderr, "%s [y/n/q]: ", prompt)

	char, key, err := keyboard.GetSingleKey()
	if err != nil {
		return Quit, fmt.Errorf("read key: %w", err)
	}
	fmt.Fprintf(os.Stderr, "%c\n", char)

	if key == keyboard.KeyCtrlC || key == keyboard.KeyEsc {
		return Quit, nil
	}
	switch char {
	case 'y', 'Y':
		return Yes, nil
	case 'q', 'Q':
		return Quit, nil
	default:
		return No, nil
	}
}
