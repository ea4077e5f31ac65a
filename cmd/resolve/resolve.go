/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package resolve provides the resolve command for lokate.
package resolve

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/lokate/config"
	"bennypowers.dev/lokate/fs"
	"bennypowers.dev/lokate/locate"
)

// Cmd is the resolve cobra command.
var Cmd = &cobra.Command{
	Use:   "resolve [paths...]",
	Short: "Resolve resource paths through the loader chain",
	Long: `Resolve each path through the configured loader chain and print its location.

The chain comes from .config/lokate.{yaml,yml,json} under the root
directory, or defaults to bundle resources followed by the local
filesystem. Paths may carry a scheme prefix (classpath:, file:) or be
bare, in which case every loader in the chain is tried.

Examples:
  # Resolve against the default chain
  lokate resolve /etc/hosts

  # Add fallback directories for this invocation
  lokate resolve --fallback /etc --fallback ./conf hosts

  # Machine-readable output
  lokate resolve --format json classpath:META-INF/app.properties`,
	Args: cobra.MinimumNArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().StringArray("fallback", nil, "Fallback directory for every loader (repeatable, supports globs)")
	Cmd.Flags().StringP("format", "f", "text", "Output format: text, json")
}

// result is the JSON shape for one resolution.
type result struct {
	SearchPath string `json:"searchPath"`
	URL        string `json:"url,omitempty"`
	Resolved   bool   `json:"resolved"`
	Source     string `json:"source"`
}

func run(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	fallbacks, _ := cmd.Flags().GetStringArray("fallback")

	filesystem := fs.NewOSFileSystem()
	root := viper.GetString("root")

	cfg := config.LoadOrDefault(filesystem, root)
	cfg.Fallbacks = append(cfg.Fallbacks, fallbacks...)

	chain, err := cfg.BuildChain(filesystem, root)
	if err != nil {
		return err
	}
	resolver := locate.NewBuilder().WithChain(chain).Build()
	results, missing := collect(resolver, args)

	switch format {
	case "json":
		out, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
	default:
		for _, r := range results {
			if r.Resolved {
				fmt.Printf("%s\t%s\n", r.SearchPath, r.URL)
			} else {
				fmt.Fprintf(os.Stderr, "unresolved: %s\n", r.SearchPath)
			}
		}
	}

	if missing > 0 {
		return fmt.Errorf("%d of %d paths unresolved", missing, len(args))
	}
	return nil
}

// collect resolves each path and reports how many stayed unresolved.
func collect(resolver *locate.Resolver, paths []string) ([]result, int) {
	var results []result
	missing := 0

	for _, path := range paths {
		info := resolver.Resolve(path)
		r := result{
			SearchPath: info.SearchPath,
			Resolved:   info.Resolved(),
			Source:     info.Source,
		}
		if info.Resolved() {
			r.URL = info.URL.String()
		} else {
			missing++
		}
		results = append(results, r)
	}

	return results, missing
}
