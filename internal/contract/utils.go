package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
)

// Band label constants for 1-5 scores.
const (
	GreatValue = "Great" // Great value
	GoodValue  = "Good"  // Good value
	FairValue  = "Fair"  // Fair value
	PoorValue  = "Poor"  // Poor value
)

// Color variables for console output.
var (
	GreatColor = color.New(color.FgGreen, color.Bold) // GreatColor is a strong positive signal.
	GoodColor  = color.New(color.FgCyan)              // GoodColor is informational.
	FairColor  = color.New(color.FgYellow)            // FairColor is standard caution, not bold.
	PoorColor  = color.New(color.FgRed, color.Bold)   // PoorColor is standard danger.
)

// GetPlainLabel returns a plain text band for an averaged score where higher
// is better (mood, energy). This is the core logic used for CSV, JSON, and
// table printing.
func GetPlainLabel(score float64) string {
	switch {
	case score >= 4:
		return GreatValue
	case score >= 3:
		return GoodValue
	case score >= 2:
		return FairValue
	default:
		return PoorValue
	}
}

// GetStressLabel returns the band for a stress score, where lower is better.
func GetStressLabel(score float64) string {
	return GetPlainLabel(6 - score)
}

// GetColorLabel colors a band produced by GetPlainLabel or GetStressLabel.
func GetColorLabel(label string) string {
	switch label {
	case GreatValue:
		return GreatColor.Sprint(label)
	case GoodValue:
		return GoodColor.Sprint(label)
	case FairValue:
		return FairColor.Sprint(label)
	default: // "Poor"
		return PoorColor.Sprint(label)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on the provided
// file path. It falls back to os.Stdout when no path is given.
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

// GetDBFilePath returns the path to the SQLite DB file for entry storage.
func GetDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".moodtrack.db"
	}
	return filepath.Join(homeDir, ".moodtrack.db")
}

// TruncateNote shortens a note to maxWidth runes with an ellipsis suffix.
// Requires maxWidth > 3 so there is room for the "..." and at least one character.
func TruncateNote(note string, maxWidth int) string {
	runes := []rune(note)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return note
}

// ValidateScore reports whether a score is on the 1-5 scale.
// Out of range scores are still accepted by the store.
func ValidateScore(name string, v int) error {
	if v < 1 || v > 5 {
		return fmt.Errorf("%s score %d is outside the 1-5 scale", name, v)
	}
	return nil
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
