package hook

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScript(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hook.tengo")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("reads the script", func(t *testing.T) {
		path := writeScript(t, `x := 1`)
		ex, err := Load(path)
		require.NoError(t, err)
		assert.NotNil(t, ex)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.tengo"))
		assert.Error(t, err)
	})
}

func TestExecute(t *testing.T) {
	t.Run("replay statistics are bound as globals", func(t *testing.T) {
		outPath := filepath.Join(t.TempDir(), "out.txt")
		path := writeScript(t, `
os := import("os")
fmt := import("fmt")
line := fmt.sprintf("%s %d %d %d %d %v", script_path, commands, accepted, rejected, ignored, ended)
file := os.create(out_path)
file.write_string(line)
file.close()
`)
		ex, err := Load(path)
		require.NoError(t, err)

		err = ex.Execute(context.Background(), Context{
			ScriptPath: "demo.txt",
			Commands:   5,
			Accepted:   3,
			Rejected:   1,
			Ignored:    1,
			Ended:      true,
			Vars:       map[string]interface{}{"out_path": outPath},
		})
		require.NoError(t, err)

		data, err := os.ReadFile(outPath)
		require.NoError(t, err)
		assert.Equal(t, "demo.txt 5 3 1 1 true", string(data))
	})

	t.Run("script error is reported", func(t *testing.T) {
		path := writeScript(t, `undefined_fn()`)
		ex, err := Load(path)
		require.NoError(t, err)

		err = ex.Execute(context.Background(), Context{})
		assert.ErrorContains(t, err, "hook script error")
	})

	t.Run("compile error is reported", func(t *testing.T) {
		path := writeScript(t, `if {`)
		ex, err := Load(path)
		require.NoError(t, err)

		err = ex.Execute(context.Background(), Context{})
		assert.Error(t, err)
	})
}
