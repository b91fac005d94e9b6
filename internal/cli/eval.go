package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newEvalCommand creates the eval command.
func newEvalCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "eval <expr>",
		Short: "Evaluate an expression against the data context",
		Long: `Evaluate an access expression against the data context and print
the resulting value.

Expressions support attribute access, indexing and calls:
  user.name
  items[-1]
  conf["debug"]
  user.greet("hello")`,
		Example: `  # Evaluate against a data file
  minijinja eval -d context.yaml 'user.roles[0]'

  # Print the debug rendering instead of the display form
  minijinja eval -d context.yaml --debug user

  # Fail instead of yielding undefined for absent fields
  minijinja eval -d context.yaml --strict user.age`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := configFromCmd(cmd)
			if err != nil {
				return err
			}
			env, err := newEnv(cmd)
			if err != nil {
				return err
			}

			result, err := env.Eval(args[0])
			if err != nil {
				return fmt.Errorf("evaluation failed: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), renderValue(result, cfg.Debug))
			return err
		},
	}
}
