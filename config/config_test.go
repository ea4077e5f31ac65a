/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"encoding/json"
	"testing"

	"gopkg.in/yaml.v3"

	"bennypowers.dev/lokate/internal/mapfs"
	"bennypowers.dev/lokate/testutil"
)

func TestLoaderSpecUnmarshalYAML(t *testing.T) {
	t.Run("string shorthand", func(t *testing.T) {
		var cfg Config
		src := "loaders:\n  - classpath\n  - file\n"
		if err := yaml.Unmarshal([]byte(src), &cfg); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if len(cfg.Loaders) != 2 {
			t.Fatalf("got %d loaders, want 2", len(cfg.Loaders))
		}
		if cfg.Loaders[0].Kind != KindClasspath || cfg.Loaders[1].Kind != KindFile {
			t.Errorf("kinds = %q, %q", cfg.Loaders[0].Kind, cfg.Loaders[1].Kind)
		}
	})

	t.Run("object form", func(t *testing.T) {
		var cfg Config
		src := "loaders:\n  - kind: file\n    fallbacks: [/etc, /opt]\n"
		if err := yaml.Unmarshal([]byte(src), &cfg); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if len(cfg.Loaders) != 1 {
			t.Fatalf("got %d loaders, want 1", len(cfg.Loaders))
		}
		spec := cfg.Loaders[0]
		if spec.Kind != KindFile {
			t.Errorf("Kind = %q, want file", spec.Kind)
		}
		if len(spec.Fallbacks) != 2 || spec.Fallbacks[0] != "/etc" {
			t.Errorf("Fallbacks = %v, want [/etc /opt]", spec.Fallbacks)
		}
	})
}

func TestLoaderSpecUnmarshalJSON(t *testing.T) {
	var cfg Config
	src := `{"loaders": ["classpath", {"kind": "file", "fallbacks": ["/etc"]}]}`
	if err := json.Unmarshal([]byte(src), &cfg); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(cfg.Loaders) != 2 {
		t.Fatalf("got %d loaders, want 2", len(cfg.Loaders))
	}
	if cfg.Loaders[0].Kind != KindClasspath {
		t.Errorf("Kind = %q, want classpath", cfg.Loaders[0].Kind)
	}
	if cfg.Loaders[1].Fallbacks[0] != "/etc" {
		t.Errorf("Fallbacks = %v, want [/etc]", cfg.Loaders[1].Fallbacks)
	}
}

func TestBuildChain(t *testing.T) {
	mfs := mapfs.New()
	testutil.MapTree(mfs, map[string]string{
		"/etc/app/fs_resource.nfo": "payload",
	})

	cfg := &Config{
		Loaders: []LoaderSpec{
			{Kind: KindClasspath},
			{Kind: KindFile, Fallbacks: []string{"/etc/app"}},
		},
	}

	chain, err := cfg.BuildChain(mfs, "/")
	if err != nil {
		t.Fatalf("BuildChain: %v", err)
	}
	if chain.Len() != 2 {
		t.Fatalf("Len = %d, want 2", chain.Len())
	}

	info := chain.Process("fs_resource.nfo")
	if !info.Resolved() {
		t.Fatal("expected configured fallback to resolve the bare name")
	}
	if info.Source != "LocalLoader" {
		t.Errorf("Source = %q, want LocalLoader", info.Source)
	}
}

func TestBuildChainUnknownKind(t *testing.T) {
	cfg := &Config{Loaders: []LoaderSpec{{Kind: "ftp"}}}

	if _, err := cfg.BuildChain(mapfs.New(), "/"); err == nil {
		t.Fatal("expected error for unknown loader kind")
	}
}

// Global fallbacks apply to every loader and glob entries expand in
// deterministic match order.
func TestBuildChainGlobFallbacks(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddDir("/proj/data/alpha", 0755)
	mfs.AddDir("/proj/data/beta", 0755)
	testutil.MapTree(mfs, map[string]string{
		"/proj/data/alpha/dup_resource.nfo": "a",
		"/proj/data/beta/dup_resource.nfo":  "b",
	})

	cfg := &Config{
		Loaders:   []LoaderSpec{{Kind: KindFile}},
		Fallbacks: []string{"data/*"},
	}

	chain, err := cfg.BuildChain(mfs, "/proj")
	if err != nil {
		t.Fatalf("BuildChain: %v", err)
	}

	info := chain.Process("dup_resource.nfo")
	if !info.Resolved() {
		t.Fatal("expected glob-expanded fallback to resolve")
	}
	if got := info.URL.String(); got != "file:///proj/data/alpha/dup_resource.nfo" {
		t.Errorf("URL = %q, want the alpha match", got)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := Default()
	if len(cfg.Loaders) != 2 {
		t.Fatalf("got %d loaders, want 2", len(cfg.Loaders))
	}
	if cfg.Loaders[0].Kind != KindClasspath || cfg.Loaders[1].Kind != KindFile {
		t.Errorf("kinds = %q, %q", cfg.Loaders[0].Kind, cfg.Loaders[1].Kind)
	}
}
