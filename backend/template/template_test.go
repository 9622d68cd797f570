package template

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ekhoroshev/razorgen/generator"
)

func writeTemplate(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func newFileGenerator(t *testing.T, absPath, relPath, namespace string) generator.FileGenerator {
	t.Helper()
	bctx, err := New().CreateContext(filepath.Dir(absPath))
	require.NoError(t, err)
	t.Cleanup(func() { _ = bctx.Release() })

	gen, err := bctx.CreateGenerator(absPath, relPath, namespace)
	require.NoError(t, err)
	return gen
}

func TestGenerate(t *testing.T) {
	dir := t.TempDir()
	path := writeTemplate(t, dir, "Index.tmpl",
		"package {{ identifier .Namespace }}\n\n// {{ .Name }} from {{ .RelativePath }}\n")

	gen := newFileGenerator(t, path, "/Views/Home/Index.tmpl", "Views.Home")

	outcome, err := gen.Generate(context.Background())
	require.NoError(t, err)
	require.Empty(t, outcome.Errors)
	assert.Equal(t, "package Views_Home\n\n// Index from /Views/Home/Index.tmpl\n", outcome.Text)
}

func TestGenerate_NameTrimsConfiguredExtension(t *testing.T) {
	dir := t.TempDir()
	path := writeTemplate(t, dir, "Index.razor", "// {{ .Name }}\n")

	gen := newFileGenerator(t, path, "/Views/Index.razor", "Views")

	outcome, err := gen.Generate(context.Background())
	require.NoError(t, err)
	require.Empty(t, outcome.Errors)
	assert.Equal(t, "// Index\n", outcome.Text)
}

func TestGenerate_ParseErrorIsStructured(t *testing.T) {
	dir := t.TempDir()
	path := writeTemplate(t, dir, "Broken.tmpl", "line one\n{{ .Name }\n")

	gen := newFileGenerator(t, path, "/Broken.tmpl", "ns")

	outcome, err := gen.Generate(context.Background())
	require.NoError(t, err, "parse problems must not be hard failures")
	require.Len(t, outcome.Errors, 1)
	assert.Equal(t, 2, outcome.Errors[0].Line)
	assert.NotEmpty(t, outcome.Errors[0].Message)
}

func TestGenerate_ExecErrorIsStructured(t *testing.T) {
	dir := t.TempDir()
	path := writeTemplate(t, dir, "Bad.tmpl", `{{ template "missing" }}`)

	gen := newFileGenerator(t, path, "/Bad.tmpl", "ns")

	outcome, err := gen.Generate(context.Background())
	require.NoError(t, err)
	require.Len(t, outcome.Errors, 1)
}

func TestGenerate_MissingInputIsHardFailure(t *testing.T) {
	gen := newFileGenerator(t, filepath.Join(t.TempDir(), "gone.tmpl"), "/gone.tmpl", "ns")

	_, err := gen.Generate(context.Background())
	require.Error(t, err)
}

func TestIdentifier(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"Views.Home", "Views_Home"},
		{"2fast", "_2fast"},
		{"already_fine", "already_fine"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Identifier(tt.in), "input %q", tt.in)
	}
}

func TestOutputExtension(t *testing.T) {
	assert.Equal(t, ".go", New().OutputExtension())
}
