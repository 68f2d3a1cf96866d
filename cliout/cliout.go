package cliout

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"unicode/utf8"

	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// Format represents the output format.
type Format string

const (
	// FormatDefault is the human-readable format.
	FormatDefault Format = "default"
	// FormatJSON is JSON format.
	FormatJSON Format = "json"
	// FormatYAML is YAML format.
	FormatYAML Format = "yaml"
)

// ANSI color codes
const (
	Reset = "\033[0m"
	Bold  = "\033[1m"
	Dim   = "\033[2m"

	BrightRed   = "\033[91m"
	BrightGreen = "\033[92m"
	BrightBlue  = "\033[94m"
)

const (
	SymbolCheck = "✓"
	SymbolCross = "✗"
)

// EnvNoColor disables colors when set to any non-empty value.
const EnvNoColor = "NO_COLOR"

var (
	mu           sync.RWMutex
	globalFormat = FormatDefault
)

// out is nil for os.Stdout, resolved at write time.
var out io.Writer

// colorMode is nil for auto-detection.
var colorMode *bool

// SetFormat sets the global output format.
func SetFormat(format string) error {
	var f Format
	switch format {
	case "default", "":
		f = FormatDefault
	case "json":
		f = FormatJSON
	case "yaml":
		f = FormatYAML
	default:
		return fmt.Errorf("invalid output format: %s (valid options: default, json, yaml)", format)
	}
	mu.Lock()
	globalFormat = f
	mu.Unlock()
	return nil
}

// GetFormat returns the current output format.
func GetFormat() Format {
	mu.RLock()
	defer mu.RUnlock()
	return globalFormat
}

// SetColorMode applies a --color flag value: "auto", "always" or "never".
func SetColorMode(mode string) error {
	switch mode {
	case "auto", "":
		AutoColor()
	case "always":
		ForceColor()
	case "never":
		NoColor()
	default:
		return fmt.Errorf("invalid color mode: %s (valid options: auto, always, never)", mode)
	}
	return nil
}

// SetWriter redirects all output. Passing nil restores os.Stdout.
func SetWriter(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	out = w
}

func writer() io.Writer {
	mu.RLock()
	defer mu.RUnlock()
	if out == nil {
		return os.Stdout
	}
	return out
}

// NoColor disables color output.
func NoColor() {
	setColor(false)
}

// ForceColor enables color output regardless of terminal detection.
func ForceColor() {
	setColor(true)
}

// AutoColor restores terminal detection.
func AutoColor() {
	mu.Lock()
	colorMode = nil
	mu.Unlock()
}

func setColor(enabled bool) {
	mu.Lock()
	colorMode = &enabled
	mu.Unlock()
}

// ColorEnabled reports whether ANSI colors are written.
func ColorEnabled() bool {
	mu.RLock()
	mode := colorMode
	mu.RUnlock()

	if mode != nil {
		return *mode
	}
	if os.Getenv(EnvNoColor) != "" {
		return false
	}
	f, ok := writer().(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func paint(color, s string) string {
	if !ColorEnabled() {
		return s
	}
	return color + s + Reset
}

// PrintJSON writes data as indented JSON.
func PrintJSON(data any) error {
	encoder := json.NewEncoder(writer())
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// PrintYAML writes data as a YAML document.
func PrintYAML(data any) error {
	encoder := yaml.NewEncoder(writer())
	encoder.SetIndent(2)
	if err := encoder.Encode(data); err != nil {
		return err
	}
	return encoder.Close()
}

// Print outputs data in the configured format. For the default format the
// formatter is called instead of serializing data.
func Print(data any, formatter func()) error {
	switch GetFormat() {
	case FormatJSON:
		return PrintJSON(data)
	case FormatYAML:
		return PrintYAML(data)
	default:
		formatter()
		return nil
	}
}

// Header prints a bold header with a divider.
func Header(text string) {
	fmt.Fprintf(writer(), "\n%s\n%s\n", paint(Bold, text), strings.Repeat("=", utf8.RuneCountInString(text)))
}

// Label prints a label and value pair.
func Label(label, value string) {
	fmt.Fprintf(writer(), "   %s %s\n", paint(Dim, fmt.Sprintf("%-12s", label+":")), value)
}

// Success prints a message prefixed with a green check.
func Success(format string, args ...any) {
	fmt.Fprintf(writer(), "%s %s\n", paint(BrightGreen, SymbolCheck), fmt.Sprintf(format, args...))
}

// Error prints a message prefixed with a red cross.
func Error(format string, args ...any) {
	fmt.Fprintf(writer(), "%s %s\n", paint(BrightRed, SymbolCross), fmt.Sprintf(format, args...))
}

// URL highlights a URL.
func URL(url string) string {
	return paint(BrightBlue, url)
}
