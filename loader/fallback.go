/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package loader

import "bennypowers.dev/lokate/scheme"

// FallbackLoader decorates another loader with additional fallback
// prefixes. Each Resolve tries the raw path through the delegate first,
// then each configured prefix in insertion order. Results carry the
// delegate's source name regardless of which attempt succeeded.
type FallbackLoader struct {
	delegate      Loader
	fallbackPaths []string
}

// NewFallbackLoader wraps delegate with zero or more initial fallback
// prefixes. A nil delegate is a programmer error.
func NewFallbackLoader(delegate Loader, fallbackPaths ...string) *FallbackLoader {
	if delegate == nil {
		panic("loader: nil delegate")
	}
	return &FallbackLoader{delegate: delegate, fallbackPaths: fallbackPaths}
}

// AddFallbackPath appends a prefix to try when the delegate fails.
func (l *FallbackLoader) AddFallbackPath(path string) {
	l.fallbackPaths = append(l.fallbackPaths, path)
}

// Scheme implements Loader, delegating to the wrapped loader.
func (l *FallbackLoader) Scheme() string {
	return l.delegate.Scheme()
}

// Separator implements Loader, delegating to the wrapped loader.
func (l *FallbackLoader) Separator() string {
	return l.delegate.Separator()
}

// Resolve implements Loader.
func (l *FallbackLoader) Resolve(path string) ResourceInfo {
	info := l.delegate.Resolve(path)
	if info.Resolved() {
		return info
	}
	bare := scheme.Strip(path)
	for _, prefix := range l.fallbackPaths {
		attempt := l.delegate.Resolve(joinPath(prefix, l.Separator(), bare))
		if attempt.Resolved() {
			// Keep the original search path and the delegate's identity.
			return resolved(path, attempt.URL, attempt.Source)
		}
	}
	return unresolvedBy(path, info.Source)
}
