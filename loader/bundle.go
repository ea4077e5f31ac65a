/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package loader

import (
	"net/url"

	"bennypowers.dev/lokate/bundle"
)

// DefaultBundleFallback is the resource prefix tried when a bare bundle
// lookup misses, mirroring the conventional resource directory layout.
const DefaultBundleFallback = "META-INF"

// BundleLoader resolves paths against in-program resource bundles under
// the "classpath" scheme. Lookups try the loader's primary bundle first
// and fall back to the process-wide system bundle.
type BundleLoader struct {
	bundle        *bundle.Bundle
	fallbackPaths []string
}

// NewBundleLoader creates a bundle loader backed by the system bundle
// alone, with the default fallback prefix.
func NewBundleLoader() *BundleLoader {
	return &BundleLoader{
		fallbackPaths: []string{DefaultBundleFallback},
	}
}

// NewBundleLoaderWith creates a bundle loader with a primary bundle and
// custom fallback prefixes. No prefixes means no fallback lookups.
func NewBundleLoaderWith(b *bundle.Bundle, fallbackPaths ...string) *BundleLoader {
	if b == nil {
		panic("loader: nil bundle")
	}
	return &BundleLoader{
		bundle:        b,
		fallbackPaths: fallbackPaths,
	}
}

// SetBundle sets the primary bundle for lookups. A nil bundle is a
// programmer error.
func (l *BundleLoader) SetBundle(b *bundle.Bundle) {
	if b == nil {
		panic("loader: nil bundle")
	}
	l.bundle = b
}

// AddFallbackPath appends a prefix to try when direct resolution fails.
func (l *BundleLoader) AddFallbackPath(path string) {
	l.fallbackPaths = append(l.fallbackPaths, path)
}

// Scheme implements Loader.
func (l *BundleLoader) Scheme() string {
	return "classpath"
}

// Separator implements Loader. Bundle resource names are always
// slash-separated.
func (l *BundleLoader) Separator() string {
	return "/"
}

// Resolve implements Loader.
func (l *BundleLoader) Resolve(path string) ResourceInfo {
	return resolve(l, path, l.fallbackPaths)
}

// Lookup finds a bare resource name in the primary bundle, then the
// system bundle.
func (l *BundleLoader) Lookup(barePath string) (*url.URL, bool) {
	if l.bundle != nil {
		if u, ok := l.bundle.Find(barePath); ok {
			return u, true
		}
	}
	return bundle.System().Find(barePath)
}

// Name implements lookuper.
func (l *BundleLoader) Name() string {
	return "BundleLoader"
}
