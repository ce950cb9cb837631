package log

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterLevels(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriter(&buf)
	l.Info("rendered %d blocks", 3)
	l.Warning("theme %q", "x")
	l.Error("failed")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)

	want := []struct{ level, msg string }{
		{"info", "rendered 3 blocks"},
		{"warn", `theme "x"`},
		{"error", "failed"},
	}
	for i, line := range lines {
		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &rec))
		assert.Equal(t, want[i].level, rec["level"])
		assert.Equal(t, want[i].msg, rec["message"])
		assert.Contains(t, rec, "time")
	}
}

func TestFileLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "paiban.log")
	l, err := New(path)
	require.NoError(t, err)
	l.Info("hello")
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"hello"`)
}

func TestFileLogBadPath(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing", "x.log"))
	assert.Error(t, err)
}

func TestEmptyLog(t *testing.T) {
	l := NewEmptyLog()
	l.Info("x")
	l.Warning("x")
	l.Error("x")
	assert.NoError(t, l.Close())
}
