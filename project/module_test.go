package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeGoMod(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "go.mod"), []byte(content), 0644))
	return dir
}

func TestDetectModule(t *testing.T) {
	dir := writeGoMod(t, "module github.com/user/myapp\n\ngo 1.25\n")

	info, err := DetectModule(dir)
	require.NoError(t, err)
	assert.Equal(t, "github.com/user/myapp", info.Path)
	assert.Equal(t, "1.25", info.GoVersion)
}

func TestDetectModule_Missing(t *testing.T) {
	_, err := DetectModule(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "go.mod not found")
}

func TestDetectModule_Invalid(t *testing.T) {
	dir := writeGoMod(t, "not a go.mod at all {{{")
	_, err := DetectModule(dir)
	require.Error(t, err)
}

func TestRootNamespace(t *testing.T) {
	tests := []struct {
		modulePath string
		expected   string
	}{
		{"github.com/user/myapp", "myapp"},
		{"github.com/user/my-app", "my_app"},
		{"github.com/user/2cool", "_2cool"},
		{"myapp", "myapp"},
	}

	for _, tt := range tests {
		info := &ModuleInfo{Path: tt.modulePath}
		assert.Equal(t, tt.expected, info.RootNamespace(), "module %s", tt.modulePath)
	}
}
