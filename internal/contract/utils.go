package contract

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/gitpulse/gitpulse/schema"
)

// Color variables for pattern labels in console output.
var (
	DayWorkerColor   = color.New(color.FgYellow)              // daytime, business hours
	MoonlighterColor = color.New(color.FgMagenta, color.Bold) // nights and weekends
	MixedColor       = color.New(color.FgCyan)                // balanced split
	UnknownColor     = color.New(color.FgWhite)               // insufficient data
)

// GetPlainPatternLabel returns the emoji-prefixed pattern label used in
// table printing and MCP text results.
func GetPlainPatternLabel(p schema.PatternType) string {
	return fmt.Sprintf("%s %s", p.Emoji(), p)
}

// GetColorPatternLabel returns a colored pattern label for console output.
// It uses GetPlainPatternLabel to determine the string, and then applies
// the appropriate color.
func GetColorPatternLabel(p schema.PatternType) string {
	text := GetPlainPatternLabel(p)

	switch p {
	case schema.DayWorkerPattern:
		return DayWorkerColor.Sprint(text)
	case schema.MoonlighterPattern:
		return MoonlighterColor.Sprint(text)
	case schema.MixedPattern:
		return MixedColor.Sprint(text)
	default:
		return UnknownColor.Sprint(text)
	}
}

// TruncatePath shortens a path from the left so the most specific
// components stay visible.
func TruncatePath(path string, maxWidth int) string {
	runes := []rune(path)
	if len(runes) > maxWidth && maxWidth > 3 {
		return "..." + string(runes[len(runes)-maxWidth+3:])
	}
	return path
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

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. An empty path means stdout. With appendMode the
// file is opened for appending, so multiple reports can accumulate in one
// file instead of truncating each other.
func SelectOutputFile(filePath string, appendMode bool) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	if appendMode {
		return os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
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
