// Package testutil provides test helpers shared by the saba-url packages.
//
//   - CaptureOutput captures stdout written while a function runs
//   - WriteLines writes a newline-separated fixture file into a temp dir
//
// Example:
//
//	output := testutil.CaptureOutput(t, func() error {
//		return cmd.Execute()
//	})
//	path := testutil.WriteLines(t, "urls.txt", "http://a", "http://b")
package testutil
