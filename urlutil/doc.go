// Package urlutil provides a minimal parser for http:// URLs.
//
// The parser splits a URL into host, port, path and search part (the query
// string) using literal prefix checks and first-occurrence splits. It performs
// no percent-decoding, normalization or validation beyond requiring the
// http:// prefix.
//
// # Usage
//
//	u := urlutil.New("http://example.com:8080/path?search=hoge")
//	parsed, err := u.Parse()
//	if errors.Is(err, urlutil.ErrUnsupportedScheme) {
//		return fmt.Errorf("cannot fetch %q: %w", u.Raw(), err)
//	}
//	fmt.Println(parsed.Host)       // example.com
//	fmt.Println(parsed.Port)       // 8080
//	fmt.Println(parsed.Path)       // path
//	fmt.Println(parsed.SearchPart) // search=hoge
//
// # Splitting Rules
//
//   - The input must start with "http://", otherwise ErrUnsupportedScheme
//   - Every leading "http://" is stripped; the remainder is cut at the first '/' into authority and rest
//   - Host is the authority up to the first ':'; without ':' it is the whole authority
//   - Port is the authority after the first ':'; without ':' it is "80"
//   - Path is rest up to the first '?'; without '/' it is empty
//   - SearchPart is rest after the first '?'; empty when there is none
//
// Fragments, userinfo and IPv6 literals are not recognized. They pass through
// whatever the rules above produce; for example "http://h/p#f?q" has path
// "p#f" and search part "q".
package urlutil
