package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the root command; flags keep their values between runs
// so every call spells out the ones it relies on
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append(args, "--config", t.TempDir()))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRenderCommand(t *testing.T) {
	t.Run("stdin to stdout", func(t *testing.T) {
		out, err := run(t, "# Hi", "render", "--theme", "minimal", "--text=false", "--out", "")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(out, "<section style="))
		assert.Contains(t, out, ">Hi</h1>")
	})

	t.Run("plain text", func(t *testing.T) {
		out, err := run(t, "# Hi\n**b**", "render", "--theme", "", "--text=true", "--out", "")
		require.NoError(t, err)
		assert.Equal(t, "Hi\nb\n", out)
	})

	t.Run("file to file", func(t *testing.T) {
		dir := t.TempDir()
		in := filepath.Join(dir, "a.md")
		outPath := filepath.Join(dir, "a.html")
		require.NoError(t, os.WriteFile(in, []byte("text"), 0644))

		_, err := run(t, "", "render", in, "--theme", "", "--text=false", "--out", outPath)
		require.NoError(t, err)
		data, err := os.ReadFile(outPath)
		require.NoError(t, err)
		assert.Contains(t, string(data), ">text</p>")
	})

	t.Run("unknown theme", func(t *testing.T) {
		_, err := run(t, "x", "render", "--theme", "neon", "--text=false", "--out", "")
		assert.ErrorContains(t, err, "unknown theme")
	})
}

func TestOutlineCommand(t *testing.T) {
	out, err := run(t, "# T\n7. a\n8. b", "outline")
	require.NoError(t, err)
	assert.Contains(t, out, "# T")
	assert.Contains(t, out, "1. a")
	assert.Contains(t, out, "2. b")
}

func TestAICommandUnknownAction(t *testing.T) {
	_, err := run(t, "x", "ai", "translate")
	assert.ErrorContains(t, err, "unknown action")
}
