package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newItemsCommand creates the items command.
func newItemsCommand() *cobra.Command {
	var reverse bool

	cmd := &cobra.Command{
		Use:   "items <expr>",
		Short: "Iterate a sequence-shaped value",
		Long: `Resolve an expression to a sequence-shaped value and print each
element on its own line. Sparse sequences yield their gaps as
undefined, so the number of lines always matches the item count.`,
		Example: `  # Print the elements of a list
  minijinja items -d context.yaml user.roles

  # Print them back to front
  minijinja items -d context.yaml --reverse user.roles`,
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

			it, ok := result.Iter()
			if !ok {
				return fmt.Errorf("%s value is not iterable", result.Kind())
			}

			next := it.Next
			if reverse {
				next = it.NextBack
			}
			for v, more := next(); more; v, more = next() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), renderValue(v, cfg.Debug)); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&reverse, "reverse", false, "iterate back to front")
	return cmd
}
