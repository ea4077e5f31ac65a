/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package loader

import "slices"

// Chain is an ordered sequence of loaders. Insertion order is resolution
// priority; duplicates are permitted and simply retried. A Chain has no
// internal locking: configure it first, then resolve, or synchronize
// externally.
type Chain struct {
	loaders []Loader
}

// NewChain creates a chain from the given loaders, in order.
func NewChain(loaders ...Loader) *Chain {
	return &Chain{loaders: loaders}
}

// Add appends a loader and returns the chain for chaining.
func (c *Chain) Add(l Loader) *Chain {
	c.loaders = append(c.loaders, l)
	return c
}

// Remove removes the first occurrence of l, compared by identity.
func (c *Chain) Remove(l Loader) {
	for i, cur := range c.loaders {
		if cur == l {
			c.loaders = slices.Delete(c.loaders, i, i+1)
			return
		}
	}
}

// Clear removes all loaders.
func (c *Chain) Clear() {
	c.loaders = nil
}

// Len returns the number of loaders in the chain.
func (c *Chain) Len() int {
	return len(c.loaders)
}

// Loaders returns a copy of the chain's loaders in resolution order.
func (c *Chain) Loaders() []Loader {
	return slices.Clone(c.loaders)
}

// Process resolves path through the chain, stopping at the first loader
// that succeeds. When no loader succeeds the last attempt's unresolved
// info is returned; an empty chain yields a synthetic unresolved info
// with an "Unknown" source.
func (c *Chain) Process(path string) ResourceInfo {
	info := Unresolved(path)
	for _, l := range c.loaders {
		info = l.Resolve(path)
		if info.Resolved() {
			break
		}
	}
	return info
}
