// Package cliout provides output formatting for the saba-url CLI.
//
// # Output Formats
//
//   - default: human-readable labels with optional ANSI colors
//   - json: indented JSON for scripting
//   - yaml: YAML documents
//
// Set the format once from the --output flag:
//
//	if err := cliout.SetFormat(output); err != nil {
//		return err
//	}
//
// Print then dispatches on the format:
//
//	return cliout.Print(results, func() {
//		cliout.Label("Host", parsed.Host)
//	})
//
// # Colors
//
// Colors are emitted only when the writer is a terminal, NO_COLOR is unset
// and NoColor has not been called. ForceColor overrides detection.
package cliout
