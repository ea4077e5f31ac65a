/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package loader resolves logical resource paths to concrete locations.
//
// A Loader owns one URL scheme and answers "where does this path resolve
// to" for paths carrying that scheme or no scheme at all. Loaders never
// fail for a path they cannot find; "not found" is an unresolved
// ResourceInfo, not an error. Chains run loaders in order and stop at the
// first resolved result.
package loader

import (
	"net/url"
	"strings"

	"bennypowers.dev/lokate/scheme"
)

// Loader resolves a resource path against one kind of backing store.
type Loader interface {
	// Scheme returns the URL scheme this loader owns, e.g. "file".
	Scheme() string

	// Separator returns the separator used to join fallback prefixes
	// to bare paths.
	Separator() string

	// Resolve attempts to resolve path. The returned ResourceInfo
	// always carries path as its SearchPath, resolved or not.
	Resolve(path string) ResourceInfo
}

// lookuper is the variant-specific part of a loader: a direct lookup of
// a bare, scheme-less path.
type lookuper interface {
	Lookup(barePath string) (*url.URL, bool)
	Separator() string
	Name() string
}

// resolve runs the resolution sequence shared by all loader kinds: strip
// the scheme from path, try the bare path directly, then try each
// fallback prefix in order. First match wins. The outcome, successful or
// not, carries the lookuper's name as its source.
func resolve(l lookuper, path string, fallbackPaths []string) ResourceInfo {
	bare := scheme.Strip(path)
	if u, ok := l.Lookup(bare); ok {
		return resolved(path, u, l.Name())
	}
	for _, prefix := range fallbackPaths {
		if u, ok := l.Lookup(joinPath(prefix, l.Separator(), bare)); ok {
			return resolved(path, u, l.Name())
		}
	}
	return unresolvedBy(path, l.Name())
}

// joinPath joins a fallback prefix to a bare path, trimming doubled
// separators at the boundary.
func joinPath(prefix, sep, bare string) string {
	return strings.TrimSuffix(prefix, sep) + sep + strings.TrimPrefix(bare, sep)
}
