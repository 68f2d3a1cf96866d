package urlutil

import (
	"errors"
	"strings"
)

const (
	// SchemePrefix is the only scheme prefix the parser accepts.
	SchemePrefix = "http://"
	// DefaultPort is used when the authority carries no explicit port.
	DefaultPort = "80"
)

// ErrUnsupportedScheme is returned by Parse when the raw URL does not start with SchemePrefix.
// It covers both a missing scheme and a different one such as ftp://.
var ErrUnsupportedScheme = errors.New("url must start with http://")

// ParsedURL is the result of a successful parse.
type ParsedURL struct {
	Raw        string `json:"raw" yaml:"raw"`
	Host       string `json:"host" yaml:"host"`
	Port       string `json:"port" yaml:"port"`
	Path       string `json:"path" yaml:"path"`
	SearchPart string `json:"searchPart" yaml:"searchPart"`
}

// URL parses a single raw http:// URL into host, port, path and search part.
//
// The zero value is not useful; create one with New. A URL is not safe for
// concurrent use, but separate values share nothing.
type URL struct {
	parsed ParsedURL
}

// New returns a URL holding rawURL verbatim with every derived field empty.
func New(rawURL string) *URL {
	return &URL{parsed: ParsedURL{Raw: rawURL}}
}

// Parse derives host, port, path and search part from the raw string.
//
// Input is split with literal rules only: leading http:// prefixes are stripped, the
// remainder is cut at the first '/' into authority and rest, the authority at
// the first ':' into host and port, and rest at the first '?' into path and
// search part. Nothing is decoded or validated, so a non-numeric port or an
// empty host is returned as-is.
//
// On success the populated record is stored and a copy is returned. On failure
// the stored fields are left unset and ErrUnsupportedScheme is returned.
// Parse is idempotent.
//
// Example:
//
//	parsed, err := urlutil.New("http://example.com:8080/path?q=1").Parse()
//	if err != nil {
//		return err
//	}
//	fmt.Println(parsed.Host, parsed.Port) // example.com 8080
func (u *URL) Parse() (ParsedURL, error) {
	raw := u.parsed.Raw
	if !strings.HasPrefix(raw, SchemePrefix) {
		return ParsedURL{}, ErrUnsupportedScheme
	}

	authority, rest, hasRest := strings.Cut(trimScheme(raw), "/")

	host, port, hasPort := strings.Cut(authority, ":")
	if !hasPort {
		port = DefaultPort
	}

	var path, searchPart string
	if hasRest {
		path, searchPart, _ = strings.Cut(rest, "?")
	}

	u.parsed = ParsedURL{
		Raw:        raw,
		Host:       host,
		Port:       port,
		Path:       path,
		SearchPart: searchPart,
	}
	return u.parsed, nil
}

// Raw returns the original input string.
func (u *URL) Raw() string {
	return u.parsed.Raw
}

// Host returns the parsed host, or "" before a successful Parse.
func (u *URL) Host() string {
	return u.parsed.Host
}

// Port returns the parsed port, or "" before a successful Parse.
func (u *URL) Port() string {
	return u.parsed.Port
}

// Path returns the parsed path without the leading '/', or "" before a successful Parse.
func (u *URL) Path() string {
	return u.parsed.Path
}

// SearchPart returns everything after the first '?' of the path, or "" before a successful Parse.
func (u *URL) SearchPart() string {
	return u.parsed.SearchPart
}

// Parse is shorthand for New(rawURL).Parse().
func Parse(rawURL string) (ParsedURL, error) {
	return New(rawURL).Parse()
}

// UsesDefaultPort reports whether the parsed record fell back to DefaultPort
// because the authority had no ':'.
func (p ParsedURL) UsesDefaultPort() bool {
	return p.Port == DefaultPort && !strings.Contains(authorityOf(p.Raw), ":")
}

func authorityOf(raw string) string {
	authority, _, _ := strings.Cut(trimScheme(raw), "/")
	return authority
}

// trimScheme removes every leading copy of SchemePrefix, so
// "http://http://h" has authority "h".
func trimScheme(raw string) string {
	for strings.HasPrefix(raw, SchemePrefix) {
		raw = raw[len(SchemePrefix):]
	}
	return raw
}
