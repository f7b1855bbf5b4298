// Package app provides the entry point for the netinstall loader daemon.
package app

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:               "netinstalld",
	DisableAutoGenTag: true,
	Short:             "Netinstall package-group loader",
	Long: `netinstalld loads a package-group definition document from a remote URL
or an embedded literal, tracks the load status, and serves the parsed
groups over a read-only HTTP API.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		// If no subcommand is provided, print help
		return cmd.Help()
	},
}

// NewRootCmd creates the root command for the loader daemon.
func NewRootCmd() *cobra.Command {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(loadCmd)
	return rootCmd
}
