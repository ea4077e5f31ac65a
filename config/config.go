/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config provides configuration loading for lokate resolution chains.
package config

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	lfs "bennypowers.dev/lokate/fs"
	"bennypowers.dev/lokate/loader"
)

// Loader kinds accepted in configuration files.
const (
	KindClasspath = "classpath"
	KindFile      = "file"
)

// Config describes a resolution chain: an ordered list of loaders plus
// fallback directories shared by all of them.
type Config struct {
	// Loaders are the chain members, in resolution order.
	Loaders []LoaderSpec `yaml:"loaders" json:"loaders"`

	// Fallbacks are directories appended to every loader's own
	// fallback list. Entries may be doublestar glob patterns,
	// expanded against the root directory.
	Fallbacks []string `yaml:"fallbacks" json:"fallbacks"`
}

// LoaderSpec describes one chain member. It can be specified as a simple
// kind string or as an object with per-loader fallbacks.
type LoaderSpec struct {
	// Kind selects the loader: "classpath" or "file".
	Kind string `yaml:"kind" json:"kind"`

	// Fallbacks are fallback directories for this loader only.
	Fallbacks []string `yaml:"fallbacks" json:"fallbacks"`
}

// UnmarshalYAML handles both string and object forms for LoaderSpec.
func (l *LoaderSpec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		l.Kind = node.Value
		return nil
	}

	type rawLoaderSpec LoaderSpec
	return node.Decode((*rawLoaderSpec)(l))
}

// UnmarshalJSON handles both string and object forms for LoaderSpec.
func (l *LoaderSpec) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		l.Kind = s
		return nil
	}

	type rawLoaderSpec LoaderSpec
	return json.Unmarshal(data, (*rawLoaderSpec)(l))
}

// Default returns the configuration equivalent of the default chain:
// bundle resources first, then the local filesystem.
func Default() *Config {
	return &Config{
		Loaders: []LoaderSpec{
			{Kind: KindClasspath},
			{Kind: KindFile},
		},
	}
}

// BuildChain assembles the configured loader chain. Fallback entries
// containing glob characters are expanded against rootDir; expansion
// order is deterministic so earlier matches keep resolution priority.
func (c *Config) BuildChain(filesystem lfs.FileSystem, rootDir string) (*loader.Chain, error) {
	chain := loader.NewChain()
	for _, spec := range c.Loaders {
		fallbacks, err := expandAll(filesystem, rootDir, append(spec.Fallbacks, c.Fallbacks...))
		if err != nil {
			return nil, err
		}

		switch spec.Kind {
		case KindClasspath:
			l := loader.NewBundleLoader()
			for _, p := range fallbacks {
				l.AddFallbackPath(p)
			}
			chain.Add(l)
		case KindFile:
			chain.Add(loader.NewFallbackLoader(loader.NewLocalLoaderWith(filesystem), fallbacks...))
		default:
			return nil, fmt.Errorf("unknown loader kind: %q", spec.Kind)
		}
	}
	return chain, nil
}
