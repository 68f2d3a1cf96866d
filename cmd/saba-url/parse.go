package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jongio/saba-url/cliout"
	"github.com/jongio/saba-url/logutil"
	"github.com/jongio/saba-url/urlutil"
	"github.com/spf13/cobra"
)

// parseResult is one line of parse output. Error is set when the URL was rejected.
type parseResult struct {
	urlutil.ParsedURL `yaml:",inline"`
	Error             string `json:"error,omitempty" yaml:"error,omitempty"`
}

type parseOptions struct {
	file    string
	metrics bool
}

func newParseCommand() *cobra.Command {
	opts := &parseOptions{}
	cmd := &cobra.Command{
		Use:   "parse [URL...]",
		Short: "Parse http:// URLs into host, port, path and search part",
		Example: `  saba-url parse http://example.com:8080/path?search=hoge
  saba-url parse -o json http://a.example.com http://b.example.com
  saba-url parse --file urls.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, opts, args)
		},
	}
	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Read URLs from a file, one per line (- for stdin)")
	cmd.Flags().BoolVar(&opts.metrics, "metrics", false, "Write parse metrics to stderr in Prometheus text format")
	return cmd
}

func runParse(cmd *cobra.Command, opts *parseOptions, args []string) (err error) {
	log := logutil.NewLogger("cli").WithOperation("parse")

	inputs := append([]string{}, args...)
	if opts.file != "" {
		lines, readErr := readURLs(cmd.InOrStdin(), opts.file)
		if readErr != nil {
			return readErr
		}
		inputs = append(inputs, lines...)
	}
	if len(inputs) == 0 {
		return fmt.Errorf("no URLs given: pass them as arguments or with --file")
	}

	metrics := newParseMetrics()
	if opts.metrics {
		defer func() {
			if writeErr := metrics.write(cmd.ErrOrStderr()); writeErr != nil {
				log.Error("writing metrics failed", "error", writeErr)
				if err == nil {
					err = fmt.Errorf("writing metrics: %w", writeErr)
				}
			}
		}()
	}

	results := make([]parseResult, 0, len(inputs))
	failed := 0
	debug := logutil.IsDebugEnabled()
	for i, raw := range inputs {
		parsed, parseErr := urlutil.New(raw).Parse()
		metrics.observe(parsed, parseErr)

		result := parseResult{ParsedURL: parsed}
		if parseErr != nil {
			failed++
			result.Raw = raw
			result.Error = parseErr.Error()
		}
		results = append(results, result)

		if !debug {
			continue
		}
		// Rejections are already reported in the output, so they stay at debug.
		entry := log.WithFields("index", i, "raw", raw)
		if parseErr != nil {
			entry.Debug("rejected url", "error", parseErr)
		} else {
			entry.Debug("parsed url", "host", parsed.Host, "port", parsed.Port,
				"path", parsed.Path, "searchPart", parsed.SearchPart)
		}
	}
	log.Debug("batch complete", "count", len(results), "failed", failed)

	if err := cliout.Print(results, func() { printResults(results) }); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d URLs could not be parsed: %w", failed, len(results), urlutil.ErrUnsupportedScheme)
	}
	return nil
}

func printResults(results []parseResult) {
	failed := 0
	for _, r := range results {
		if r.Error != "" {
			failed++
			cliout.Error("%s: %s", cliout.URL(r.Raw), r.Error)
			continue
		}
		cliout.Header(r.Raw)
		cliout.Label("Host", r.Host)
		cliout.Label("Port", r.Port)
		cliout.Label("Path", r.Path)
		cliout.Label("Search", r.SearchPart)
	}
	if failed == 0 {
		cliout.Success("Parsed %d URL(s)", len(results))
	}
}

// readURLs returns the non-blank, trimmed lines of path. "-" reads from stdin.
func readURLs(stdin io.Reader, path string) ([]string, error) {
	var r io.Reader = stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening url file: %w", err)
		}
		defer f.Close()
		r = f
	}

	var urls []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			urls = append(urls, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading url file: %w", err)
	}
	return urls, nil
}
