/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for lokate.
package cmd

import (
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/lokate/cmd/resolve"
	"bennypowers.dev/lokate/cmd/version"
	"bennypowers.dev/lokate/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "lokate",
	Short: "Resolve logical resource paths to concrete locations",
	Long: `lokate resolves resource paths, optionally scheme-prefixed (classpath:, file:),
to concrete locations by trying a configurable chain of loaders in order.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if quiet, _ := cmd.Flags().GetBool("quiet"); quiet {
			logger.SetOutput(io.Discard)
		}
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringP("root", "r", ".", "Root directory for config discovery and fallback glob expansion")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Suppress diagnostic logging")
	_ = viper.BindPFlag("root", rootCmd.PersistentFlags().Lookup("root"))

	rootCmd.AddCommand(resolve.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
