/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package locate provides the high-level API for resolving resource paths.
//
// Most callers either use the package-level Lookup with the default
// chain, or assemble a custom chain with a Builder:
//
//	r := locate.NewBuilder().
//		Add(loader.NewBundleLoader()).
//		Add(loader.NewLocalLoader(), "/etc/myapp").
//		Build()
//	info := r.Resolve("config.yaml")
package locate

import (
	"net/url"
	"sync"

	"bennypowers.dev/lokate/loader"
)

// Resolver resolves resource paths through a loader chain.
type Resolver struct {
	chain *loader.Chain
}

// Resolve resolves path through the resolver's chain. The result always
// reports the original path and is never an error; callers inspect
// Resolved().
func (r *Resolver) Resolve(path string) loader.ResourceInfo {
	return r.chain.Process(path)
}

// Chain returns the resolver's chain.
func (r *Resolver) Chain() *loader.Chain {
	return r.chain
}

// Builder assembles a loader chain into a Resolver.
type Builder struct {
	chain *loader.Chain
}

// NewBuilder creates a builder with an empty chain.
func NewBuilder() *Builder {
	return &Builder{chain: loader.NewChain()}
}

// WithDefaults replaces the builder's chain with the default chain.
func (b *Builder) WithDefaults() *Builder {
	b.chain = DefaultChain()
	return b
}

// WithChain replaces the builder's chain with an existing one. A nil
// chain is a programmer error.
func (b *Builder) WithChain(c *loader.Chain) *Builder {
	if c == nil {
		panic("locate: nil chain")
	}
	b.chain = c
	return b
}

// Add appends a loader to the chain. When fallback paths are given the
// loader is wrapped in a FallbackLoader carrying them.
func (b *Builder) Add(l loader.Loader, fallbackPaths ...string) *Builder {
	if len(fallbackPaths) > 0 {
		l = loader.NewFallbackLoader(l, fallbackPaths...)
	}
	b.chain.Add(l)
	return b
}

// AddAll appends loaders to the chain in order.
func (b *Builder) AddAll(loaders ...loader.Loader) *Builder {
	for _, l := range loaders {
		b.chain.Add(l)
	}
	return b
}

// Build returns the assembled resolver.
func (b *Builder) Build() *Resolver {
	return &Resolver{chain: b.chain}
}

// DefaultChain constructs the default loader chain: bundle resources
// first, then the local filesystem with fallback support.
func DefaultChain() *loader.Chain {
	return loader.NewChain(
		loader.NewBundleLoader(),
		loader.NewFallbackLoader(loader.NewLocalLoader()),
	)
}

var (
	defaultOnce     sync.Once
	defaultResolver *Resolver
)

// Default returns the process-wide resolver over the default chain,
// built lazily on first use.
func Default() *Resolver {
	defaultOnce.Do(func() {
		defaultResolver = NewBuilder().WithDefaults().Build()
	})
	return defaultResolver
}

// Lookup resolves path with the process-wide default resolver and
// returns the location, if any.
func Lookup(path string) (*url.URL, bool) {
	info := Default().Resolve(path)
	return info.URL, info.Resolved()
}

// Fetch resolves path with the process-wide default resolver and returns
// the full resolution result.
func Fetch(path string) loader.ResourceInfo {
	return Default().Resolve(path)
}
