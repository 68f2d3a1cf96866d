package cliout

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type sample struct {
	Host string `json:"host" yaml:"host"`
	Port string `json:"port" yaml:"port"`
}

// capture redirects output to a buffer for the duration of the test.
func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetWriter(&buf)
	t.Cleanup(func() {
		SetWriter(nil)
		AutoColor()
		_ = SetFormat("default")
	})
	return &buf
}

func TestSetFormat(t *testing.T) {
	t.Cleanup(func() { _ = SetFormat("default") })

	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"", FormatDefault, false},
		{"default", FormatDefault, false},
		{"json", FormatJSON, false},
		{"yaml", FormatYAML, false},
		{"xml", FormatDefault, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_ = SetFormat("default")
			err := SetFormat(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "invalid output format")
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, GetFormat())
		})
	}
}

func TestPrintJSON(t *testing.T) {
	buf := capture(t)
	require.NoError(t, SetFormat("json"))

	called := false
	err := Print(sample{Host: "example.com", Port: "80"}, func() { called = true })
	require.NoError(t, err)
	assert.False(t, called, "formatter must not run in json mode")

	var got sample
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, sample{Host: "example.com", Port: "80"}, got)
}

func TestPrintYAML(t *testing.T) {
	buf := capture(t)
	require.NoError(t, SetFormat("yaml"))

	err := Print([]sample{{Host: "a", Port: "1"}, {Host: "b", Port: "2"}}, func() {})
	require.NoError(t, err)

	var got []sample
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, []sample{{Host: "a", Port: "1"}, {Host: "b", Port: "2"}}, got)
	assert.Contains(t, buf.String(), "host: a")
}

func TestPrintDefaultUsesFormatter(t *testing.T) {
	buf := capture(t)
	NoColor()

	err := Print(sample{}, func() { Label("Host", "example.com") })
	require.NoError(t, err)
	assert.Equal(t, "   Host:        example.com\n", buf.String())
}

func TestColors(t *testing.T) {
	buf := capture(t)

	ForceColor()
	Success("done")
	assert.Contains(t, buf.String(), BrightGreen+SymbolCheck+Reset)

	buf.Reset()
	NoColor()
	Error("failed: %s", "boom")
	assert.Equal(t, SymbolCross+" failed: boom\n", buf.String())
}

func TestColorAutoDetection(t *testing.T) {
	capture(t)

	// a bytes.Buffer is never a terminal
	assert.False(t, ColorEnabled())

	t.Setenv(EnvNoColor, "1")
	ForceColor()
	assert.True(t, ColorEnabled(), "ForceColor overrides NO_COLOR")
	AutoColor()
	assert.False(t, ColorEnabled())
}

func TestHeader(t *testing.T) {
	buf := capture(t)
	NoColor()

	Header("Parsed URL")
	lines := strings.Split(strings.TrimPrefix(buf.String(), "\n"), "\n")
	require.GreaterOrEqual(t, len(lines), 2)
	assert.Equal(t, "Parsed URL", lines[0])
	assert.Equal(t, strings.Repeat("=", len("Parsed URL")), lines[1])
}

func TestHeaderCountsRunes(t *testing.T) {
	buf := capture(t)
	NoColor()

	text := "http://例え.jp/パス"
	Header(text)
	lines := strings.Split(strings.TrimPrefix(buf.String(), "\n"), "\n")
	require.GreaterOrEqual(t, len(lines), 2)
	assert.Equal(t, strings.Repeat("=", 15), lines[1])
}

func TestSetColorMode(t *testing.T) {
	capture(t)

	require.NoError(t, SetColorMode("always"))
	assert.True(t, ColorEnabled())
	require.NoError(t, SetColorMode("never"))
	assert.False(t, ColorEnabled())
	require.NoError(t, SetColorMode("auto"))
	assert.False(t, ColorEnabled(), "a buffer is not a terminal")

	err := SetColorMode("sometimes")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid color mode")
}

func TestURLHighlight(t *testing.T) {
	capture(t)
	NoColor()
	assert.Equal(t, "http://example.com", URL("http://example.com"))
	ForceColor()
	assert.Equal(t, BrightBlue+"http://example.com"+Reset, URL("http://example.com"))
}
