// Command saba-url splits http:// URLs into host, port, path and search part.
package main

import (
	"os"

	"github.com/jongio/saba-url/cliout"
	"github.com/jongio/saba-url/version"
)

// Set via -ldflags "-X main.buildVersion=... -X main.buildDate=... -X main.gitCommit=...".
var (
	buildVersion = "0.0.0-dev"
	buildDate    = "unknown"
	gitCommit    = "unknown"
)

func main() {
	info := version.New("saba-url")
	info.Version = buildVersion
	info.BuildDate = buildDate
	info.GitCommit = gitCommit

	if err := newRootCommand(info).Execute(); err != nil {
		cliout.SetWriter(os.Stderr)
		cliout.Error("%v", err)
		os.Exit(1)
	}
}
