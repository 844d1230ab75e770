package kundli

import (
	"net/url"
	"regexp"
	"strings"
)

var repeatedSlashes = regexp.MustCompile(`/{2,}`)

// PathParams maps template parameter names to caller-supplied values.
type PathParams map[string]string

// ResolveURL joins baseURI and path, substitutes {name} tokens with escaped
// values from params and cleans the result. Tokens without a value are left
// in place.
func ResolveURL(baseURI, path string, params PathParams) string {
	return CleanURL(baseURI + ExpandPath(path, params))
}

// ExpandPath substitutes {name} tokens in path with path-escaped values.
func ExpandPath(path string, params PathParams) string {
	if len(params) == 0 {
		return path
	}
	return templateToken.ReplaceAllStringFunc(path, func(tok string) string {
		name := tok[1 : len(tok)-1]
		if v, ok := params[name]; ok {
			return url.PathEscape(v)
		}
		return tok
	})
}

// CleanURL collapses repeated slashes after the scheme://host prefix.
func CleanURL(raw string) string {
	prefix, rest := "", raw
	if i := strings.Index(raw, "://"); i >= 0 {
		hostEnd := strings.IndexByte(raw[i+3:], '/')
		if hostEnd < 0 {
			return raw
		}
		prefix, rest = raw[:i+3+hostEnd], raw[i+3+hostEnd:]
	}
	return prefix + repeatedSlashes.ReplaceAllString(rest, "/")
}
