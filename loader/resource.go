/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package loader

import "net/url"

// UnknownSource is the Source reported when no loader produced a result.
const UnknownSource = "Unknown"

// ResourceInfo is the outcome of one resolution attempt. It is a value
// type; treat it as immutable once produced.
type ResourceInfo struct {
	// SearchPath is the original, unmodified input path.
	SearchPath string

	// URL is the resolved location, nil when resolution failed.
	URL *url.URL

	// Source names the loader that produced (or failed to produce)
	// the result, e.g. "LocalLoader", or "Unknown" when no loader ran.
	Source string
}

// Resolved reports whether the attempt produced a location.
func (r ResourceInfo) Resolved() bool {
	return r.URL != nil
}

// Unresolved returns the terminal result for a path no loader claimed.
func Unresolved(searchPath string) ResourceInfo {
	return ResourceInfo{SearchPath: searchPath, Source: UnknownSource}
}

// resolved wraps a successful lookup.
func resolved(searchPath string, u *url.URL, source string) ResourceInfo {
	return ResourceInfo{SearchPath: searchPath, URL: u, Source: source}
}

// unresolvedBy wraps a failed lookup, preserving the loader's identity.
func unresolvedBy(searchPath, source string) ResourceInfo {
	return ResourceInfo{SearchPath: searchPath, Source: source}
}
