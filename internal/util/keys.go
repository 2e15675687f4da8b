package util

import (
	"net/url"
	"strings"
)

// RequestKey returns the canonical store key for one request identity:
// uppercased method plus the URL with any fragment stripped and an empty
// path normalized to "/". Two requests that differ only in fragment or
// method casing share an entry.
func RequestKey(method, rawURL string) string {
	method = strings.ToUpper(strings.TrimSpace(method))
	if method == "" {
		method = "GET"
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		// unparseable URLs still need a stable identity
		return method + " " + rawURL
	}
	u.Fragment = ""
	if u.Path == "" && u.Host != "" {
		u.Path = "/"
	}
	return method + " " + u.String()
}
