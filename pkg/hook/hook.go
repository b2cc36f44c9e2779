// Package hook runs an optional Tengo script after a replay
// completes, with the replay statistics bound as script globals.
package hook

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// Context carries the values bound into the script.
type Context struct {
	ScriptPath string
	Commands   int
	Accepted   int
	Rejected   int
	Ignored    int
	Ended      bool

	// Vars are additional globals bound by the caller.
	Vars map[string]interface{}
}

// Executor holds one loaded post-run script.
type Executor struct {
	script []byte
}

// Load reads the hook script at path.
func Load(path string) (*Executor, error) {
	script, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to load hook script %s: %w", path, err)
	}
	return &Executor{script: script}, nil
}

// Execute runs the script with the given context bound as globals.
func (e *Executor) Execute(ctx context.Context, hookCtx Context) error {
	script := tengo.NewScript(e.script)

	// Standard library modules available to hook scripts.
	script.SetImports(stdlib.GetModuleMap("fmt", "os", "strings", "times"))

	bindings := map[string]interface{}{
		"script_path": hookCtx.ScriptPath,
		"commands":    hookCtx.Commands,
		"accepted":    hookCtx.Accepted,
		"rejected":    hookCtx.Rejected,
		"ignored":     hookCtx.Ignored,
		"ended":       hookCtx.Ended,
	}
	for name, value := range bindings {
		if err := script.Add(name, value); err != nil {
			return fmt.Errorf("failed to add %s to hook script: %w", name, err)
		}
	}
	for name, value := range hookCtx.Vars {
		if err := script.Add(name, value); err != nil {
			return fmt.Errorf("failed to add variable '%s' to hook script: %w", name, err)
		}
	}

	if _, err := script.RunContext(ctx); err != nil {
		return fmt.Errorf("hook script error: %w", err)
	}
	return nil
}
