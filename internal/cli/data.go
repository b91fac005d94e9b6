package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/wrike/minijinja/internal/expr"
	"github.com/wrike/minijinja/pkg/value"
)

// newEnv builds the expression evaluation context for a command from
// the loaded configuration: the YAML data file becomes the globals.
func newEnv(cmd *cobra.Command) (*expr.Env, error) {
	cfg, err := configFromCmd(cmd)
	if err != nil {
		return nil, err
	}

	globals, err := loadGlobals(cfg.DataFile)
	if err != nil {
		return nil, err
	}

	env := expr.NewEnv(cfg.Name, globals)
	env.SetStrict(cfg.Strict)
	return env, nil
}

// loadGlobals reads a YAML mapping file into engine values.
func loadGlobals(path string) (map[string]value.Value, error) {
	if path == "" {
		return nil, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read data file: %w", err)
	}

	var data map[string]any
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to parse data file %s: %w", path, err)
	}

	globals := make(map[string]value.Value, len(data))
	for k, v := range data {
		ev, err := value.FromGoValue(normalizeYAML(v))
		if err != nil {
			return nil, fmt.Errorf("data key %q: %w", k, err)
		}
		globals[k] = ev
	}
	return globals, nil
}

// normalizeYAML lifts the map shapes the YAML decoder produces into
// the ones the value conversion accepts.
func normalizeYAML(v any) any {
	switch val := v.(type) {
	case map[any]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[fmt.Sprint(k)] = normalizeYAML(item)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = normalizeYAML(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = normalizeYAML(item)
		}
		return out
	case float32:
		return float64(val)
	default:
		return val
	}
}

// renderValue prints a value in display or debug form.
func renderValue(v value.Value, debug bool) string {
	if debug {
		return v.DebugString()
	}
	return v.String()
}
