package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
)

// Skill label constants.
const (
	ExcellentValue = "Excellent" // Large improvement over naive
	GoodValue      = "Good"      // Clear improvement over naive
	FairValue      = "Fair"      // Marginal improvement over naive
	PoorValue      = "Poor"      // No better than naive
)

// Color variables for console output.
var (
	ExcellentColor = color.New(color.FgGreen, color.Bold) // excellentColor marks the strongest methods.
	GoodColor      = color.New(color.FgCyan)              // goodColor marks solid improvements.
	FairColor      = color.New(color.FgYellow)            // fairColor marks marginal improvements.
	PoorColor      = color.New(color.FgRed)               // poorColor marks methods that lose to naive.
)

// GetPlainLabel returns a plain text label for a forecast method's skill
// score relative to the naive baseline. This is the core logic used for
// CSV, JSON, and table printing.
func GetPlainLabel(skill float64) string {
	switch {
	case skill >= 0.5:
		return ExcellentValue
	case skill >= 0.2:
		return GoodValue
	case skill > 0:
		return FairValue
	default:
		return PoorValue
	}
}

// GetColorLabel returns a colored text label for console output (table).
// It uses GetPlainLabel to determine the string, and then applies the appropriate color.
func GetColorLabel(skill float64) string {
	text := GetPlainLabel(skill)

	switch text {
	case ExcellentValue:
		return ExcellentColor.Sprint(text)
	case GoodValue:
		return GoodColor.Sprint(text)
	case FairValue:
		return FairColor.Sprint(text)
	default: // "Poor"
		return PoorColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. It falls back to os.Stdout for an empty path.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetRunDBFilePath returns the path to the SQLite DB file for run storage.
func GetRunDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".synthcast_runs.db"
	}
	return filepath.Join(homeDir, ".synthcast_runs.db")
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
