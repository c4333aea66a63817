// Package cli defines the indiepages command tree.
package cli

import (
	"github.com/spf13/cobra"
)

// RootCmd builds the root command with global logging flags.
func RootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "indiepages",
		Short: "IndiePages - independent bookshop directory",
		Long:  "Server and tooling for the IndiePages bookshop directory.",
	}
	root.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	root.PersistentFlags().Bool("log-json", false, "Emit logs as JSON")
	root.PersistentFlags().Bool("log-source", false, "Include source locations in logs")
	root.PersistentFlags().String("env-file", "", "Path to an env file to load before reading configuration")
	root.AddCommand(ServeCmd())
	return root
}
