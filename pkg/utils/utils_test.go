package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "doc.json")
	require.NoError(t, Save(path, map[string]int{"a": 1}))
	assert.True(t, Exists(path))

	got, err := Load[map[string]int](path)
	require.NoError(t, err)
	assert.Equal(t, 1, got["a"])

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestLoadMissing(t *testing.T) {
	_, err := Load[map[string]int](filepath.Join(t.TempDir(), "nope.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSyncMap(t *testing.T) {
	m := NewSyncMap[string, int]()
	m.Store("a", 1)
	m.Store("b", 2)
	m.Store("c", 3)

	v, ok := m.Load("b")
	assert.True(t, ok)
	assert.Equal(t, 2, v)

	m.Delete("b")
	_, ok = m.Load("b")
	assert.False(t, ok)

	n := m.DeleteFunc(func(_ string, v int) bool { return v > 2 })
	assert.Equal(t, 1, n)
	assert.Equal(t, 1, m.Len())
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "a_b_c", SanitizeFilename("a/b\\c"))
	assert.Equal(t, "__", SanitizeFilename(".."))
	assert.Equal(t, "x_y", SanitizeFilename(" x:y "))
}

func TestLimitStr(t *testing.T) {
	assert.Equal(t, "абв...", LimitStr("абвгд", 3))
	assert.Equal(t, "аб", LimitStr("аб", 3))
}

func TestErrJSON(t *testing.T) {
	assert.Equal(t, map[string]any{"success": false, "error": "x"}, ErrJSON("x"))
}
