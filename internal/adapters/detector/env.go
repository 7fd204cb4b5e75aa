// Package detector decides how step progress is rendered on the current terminal.
package detector

import (
	"os"

	"github.com/muesli/termenv"
	"go.trai.ch/devx/internal/core/domain"
	"go.trai.ch/devx/internal/ui/output"
	"golang.org/x/term"
)

// OutputMode represents the colour policy for progress output.
type OutputMode int

const (
	// ModeAuto uses whatever the terminal advertises.
	ModeAuto OutputMode = iota
	// ModeColor forces ANSI colour.
	ModeColor
	// ModePlain disables colour.
	ModePlain
)

// DetectEnvironment returns the recommended mode for stderr.
// Non-terminals and CI runs get plain output.
func DetectEnvironment() OutputMode {
	isTTY := term.IsTerminal(int(os.Stderr.Fd()))

	ci := os.Getenv("CI")
	isCI := ci == "true" || ci == "1"

	if !isTTY || isCI {
		return ModePlain
	}
	return ModeAuto
}

// ResolveMode applies the configured output setting to auto-detection.
func ResolveMode(autoDetected OutputMode, setting string) OutputMode {
	switch setting {
	case domain.OutputColor:
		return ModeColor
	case domain.OutputPlain:
		return ModePlain
	default:
		return autoDetected
	}
}

// Profile returns the termenv profile function for mode.
func Profile(mode OutputMode) func() termenv.Profile {
	switch mode {
	case ModeColor:
		return output.ColorProfileANSI
	case ModePlain:
		return output.PlainProfile
	default:
		return output.ColorProfile
	}
}
