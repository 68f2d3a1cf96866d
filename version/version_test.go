package version

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/jongio/saba-url/cliout"
	"github.com/jongio/saba-url/testutil"
)

func TestNew_Defaults(t *testing.T) {
	info := New("saba-url")
	if info.Version != "0.0.0-dev" {
		t.Errorf("expected Version '0.0.0-dev', got %q", info.Version)
	}
	if info.BuildDate != "unknown" {
		t.Errorf("expected BuildDate 'unknown', got %q", info.BuildDate)
	}
	if info.GitCommit != "unknown" {
		t.Errorf("expected GitCommit 'unknown', got %q", info.GitCommit)
	}
	if info.Name != "saba-url" {
		t.Errorf("expected Name 'saba-url', got %q", info.Name)
	}
}

func TestInfo_String(t *testing.T) {
	info := &Info{
		Version:   "1.2.3",
		BuildDate: "2026-01-01",
		GitCommit: "abc123",
		Name:      "saba-url",
	}
	expected := "saba-url version 1.2.3 (commit: abc123, built: 2026-01-01)"
	if got := info.String(); got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}
}

func runVersion(t *testing.T, format string, args ...string) string {
	t.Helper()
	if err := cliout.SetFormat(format); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = cliout.SetFormat("default") })

	cliout.NoColor()
	t.Cleanup(cliout.AutoColor)

	cmd := NewCommand(New("saba-url"))
	cmd.SetArgs(args)
	return testutil.CaptureOutput(t, func() error {
		var stderr bytes.Buffer
		cmd.SetErr(&stderr)
		return cmd.Execute()
	})
}

func TestNewCommand_HumanReadable(t *testing.T) {
	output := runVersion(t, "default")
	for _, want := range []string{"saba-url Version", "Version", "Build Date", "Git Commit"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, output)
		}
	}
}

func TestNewCommand_JSON(t *testing.T) {
	output := runVersion(t, "json")

	var parsed Info
	if err := json.Unmarshal([]byte(output), &parsed); err != nil {
		t.Fatalf("expected valid JSON, got error: %v\noutput: %s", err, output)
	}
	if parsed.Name != "saba-url" {
		t.Errorf("expected name 'saba-url', got %q", parsed.Name)
	}
	if parsed.Version != "0.0.0-dev" {
		t.Errorf("expected version '0.0.0-dev', got %q", parsed.Version)
	}
}

func TestNewCommand_Quiet(t *testing.T) {
	output := runVersion(t, "default", "--quiet")
	if trimmed := strings.TrimSpace(output); trimmed != "0.0.0-dev" {
		t.Errorf("expected '0.0.0-dev', got %q", trimmed)
	}
}
