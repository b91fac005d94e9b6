// Package cli provides the command-line interface for the minijinja
// expression tool.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wrike/minijinja/internal/config"
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
)

// configKey is used to store config in context.
type configKey struct{}

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "minijinja",
		Short: "minijinja - dynamic value inspection for the template engine",
		Long: `minijinja evaluates access expressions against a data context and
prints the result, using the engine's value system: host data loaded
from YAML is exposed through the same dynamic object interfaces that
templates see at render time.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.Load(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}
			cmd.SetContext(context.WithValue(cmd.Context(), configKey{}, cfg))
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
`)

	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./minijinja.yaml)")
	rootCmd.PersistentFlags().StringP("data", "d", "", "YAML file with the data context")
	rootCmd.PersistentFlags().String("name", "", "context name used in error positions")
	rootCmd.PersistentFlags().Bool("strict", false, "fail on undefined names and absent attributes")
	rootCmd.PersistentFlags().Bool("debug", false, "print values in debug form")

	rootCmd.AddCommand(newEvalCommand())
	rootCmd.AddCommand(newFieldsCommand())
	rootCmd.AddCommand(newItemsCommand())
	rootCmd.AddCommand(newVersionCommand(Version))

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return err
	}
	return nil
}

// configFromCmd retrieves the loaded config from the command context.
func configFromCmd(cmd *cobra.Command) (*config.Config, error) {
	cfg, ok := cmd.Context().Value(configKey{}).(*config.Config)
	if !ok {
		return nil, fmt.Errorf("configuration not loaded")
	}
	return cfg, nil
}
