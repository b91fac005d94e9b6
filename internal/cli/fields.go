package cli

import (
	"fmt"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/wrike/minijinja/pkg/value"
)

// newFieldsCommand creates the fields command.
func newFieldsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "fields <expr>",
		Short: "List the fields of a map-shaped value",
		Long: `Resolve an expression to a map-shaped value (a map literal or a
dynamic struct object) and render its fields as a table.`,
		Example: `  # Show the fields of a record
  minijinja fields -d context.yaml user`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newEnv(cmd)
			if err != nil {
				return err
			}

			result, err := env.Eval(args[0])
			if err != nil {
				return fmt.Errorf("evaluation failed: %w", err)
			}

			names, ok := fieldNames(result)
			if !ok {
				return fmt.Errorf("%s value has no fields", result.Kind())
			}

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"Field", "Kind", "Value"})
			for _, name := range names {
				v, present := result.GetAttr(name)
				if !present {
					v = value.Undefined
				}
				t.AppendRow(table.Row{name, v.Kind().String(), v.DebugString()})
			}
			t.Render()
			return nil
		},
	}
}

// fieldNames returns the enumerable field names of a map-shaped value:
// struct objects keep their enumeration order, plain maps sort.
func fieldNames(v value.Value) ([]string, bool) {
	if obj, ok := v.AsObject(); ok {
		if st, isStruct := obj.Kind().AsStruct(); isStruct {
			return st.Fields(), true
		}
		return nil, false
	}
	if v.Kind() != value.KindMap {
		return nil, false
	}

	it, ok := v.Iter()
	if !ok {
		return nil, false
	}
	var names []string
	for k, more := it.Next(); more; k, more = it.Next() {
		names = append(names, k.String())
	}
	sort.Strings(names)
	return names, true
}
