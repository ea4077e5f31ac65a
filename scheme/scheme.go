/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package scheme classifies and rewrites the URL-scheme prefix of resource paths.
//
// Resource paths may arrive bare ("/tmp/res.nfo"), scheme-prefixed
// ("classpath:META-INF/res.nfo", "file:///tmp/res.nfo"), or as
// platform-specific filesystem paths ("c:\tmp\res.nfo"). Drive-letter
// prefixes are never treated as schemes, so Windows-style paths survive
// both classification and stripping unchanged.
package scheme

import (
	"net/url"
	"regexp"
	"strings"
)

// schemePattern matches a leading URL scheme of at least two characters.
// The two-character minimum keeps drive letters ("c:") out of scheme space.
var schemePattern = regexp.MustCompile(`^([A-Za-z][A-Za-z0-9+.-]+):`)

// Normalize rewrites backslash separators to forward slashes so that
// Windows-style paths can be parsed as URLs.
func Normalize(path string) string {
	return strings.ReplaceAll(path, "\\", "/")
}

// Has reports whether path carries a URL scheme prefix.
func Has(path string) bool {
	return schemePattern.MatchString(Normalize(path))
}

// Extract returns the URL scheme of path, or "" when path has none or
// cannot be parsed. Drive-letter prefixes report no scheme.
func Extract(path string) string {
	norm := Normalize(path)
	if !schemePattern.MatchString(norm) {
		return ""
	}
	u, err := url.Parse(norm)
	if err != nil {
		return ""
	}
	return u.Scheme
}

// Strip removes the leading scheme segment from path and returns the bare
// resource path. Separators are normalized first. Paths without a scheme,
// and paths that fail to parse as URLs, are returned normalized but
// otherwise unchanged.
//
// The delimiter to strip depends on the parsed authority: URLs with a real
// host ("scheme://host/p") lose exactly "scheme://", while host-less forms
// ("file:/p", "file:///p", "classpath:p") lose the scheme plus any run of
// slashes, retaining the URL's own file portion. This keeps inputs such as
// "file:///c:/tmp/f" intact as "/c:/tmp/f" rather than mangling the drive
// prefix.
func Strip(path string) string {
	norm := Normalize(path)
	if !schemePattern.MatchString(norm) {
		return norm
	}
	u, err := url.Parse(norm)
	if err != nil {
		return norm
	}
	ext := u.String()
	if u.Host != "" {
		return strings.TrimPrefix(ext, u.Scheme+"://")
	}
	file := filePart(u)
	re, err := regexp.Compile("^" + regexp.QuoteMeta(u.Scheme) + ":/*" + regexp.QuoteMeta(file))
	if err != nil {
		return norm
	}
	return file + re.ReplaceAllString(ext, "")
}

// filePart returns the path-and-query portion of u, covering both opaque
// ("classpath:a/b") and rooted ("file:/a/b") forms.
func filePart(u *url.URL) string {
	file := u.Opaque
	if file == "" {
		file = u.Path
	}
	if u.RawQuery != "" {
		file += "?" + u.RawQuery
	}
	return file
}
