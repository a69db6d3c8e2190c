// Package outwriter has output and writer logic.
package outwriter

import (
	"os"

	"github.com/synthcast/synthcast/internal/contract"
	"golang.org/x/term"
)

// fallbackWidth is the conservative terminal width used when detection
// fails, matching narrow terminals and CI environments.
const fallbackWidth = 80

// GetTerminalWidth returns the effective terminal width for table and
// preview layout. A positive cfg.Width overrides detection.
func GetTerminalWidth(cfg *contract.Config) int {
	if cfg.Width > 0 {
		return cfg.Width
	}

	detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || detectedWidth <= 0 {
		return fallbackWidth
	}
	return detectedWidth
}
