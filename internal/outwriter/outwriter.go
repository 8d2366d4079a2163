// Package outwriter has output and writer logic.
package outwriter

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/gitpulse/gitpulse/internal/contract"
)

// PrintAllHeader announces the combined run of all three analyses.
func PrintAllHeader() {
	fmt.Println("🔍 Running all analyses...")
}

// writeWithFile handles the common pattern of opening a file, writing to it, and cleaning up.
// It accepts a writer function that takes an io.Writer and returns an error.
func writeWithFile(cfg *contract.Config, writer func(io.Writer) error, successMsg string) error {
	file, err := contract.SelectOutputFile(cfg.OutputFile, cfg.OutputAppend)
	if err != nil {
		return err
	}
	// Only close if it's not stdout
	if file != os.Stdout {
		defer func() { _ = file.Close() }()
	}

	if err := writer(file); err != nil {
		return err
	}

	if file != os.Stdout {
		fmt.Fprintf(os.Stderr, "💾 %s to %s\n", successMsg, cfg.OutputFile)
	}
	return nil
}

// writeJSON is a generic JSON encoder that handles indentation consistently.
func writeJSON(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// terminalWidth returns the effective terminal width, honoring the
// configured override and falling back to a conservative default when
// detection fails (narrow terminals and CI).
func terminalWidth(cfg *contract.Config) int {
	if cfg.Width > 0 {
		return cfg.Width
	}
	detected, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || detected <= 0 {
		return 80
	}
	return detected
}

// getMaxTablePathWidth calculates the maximum width for file paths in
// table output based on terminal width and the fixed columns around them.
func getMaxTablePathWidth(cfg *contract.Config) int {
	// Rank + Commits + Last Modified columns with borders and padding.
	const baseWidth = 45

	available := terminalWidth(cfg) - baseWidth
	if available < 15 {
		return 15
	}
	if available > 70 {
		return 70
	}
	return available
}

// useColor reports whether labels should be colored: only when enabled
// and writing to a terminal rather than a file.
func useColor(cfg *contract.Config) bool {
	return cfg.Color && cfg.OutputFile == ""
}
