// Package template is the default razorgen backend: it treats each input
// file as a Go text/template and renders it into a Go source file.
//
// Parse and render problems are reported as structured generation errors so
// the driver can finish the batch; only IO-level problems (unreadable input)
// are hard failures that abort it.
package template

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"text/template"

	"github.com/ekhoroshev/razorgen/generator"
)

// Data is what every template sees as its dot.
type Data struct {
	Namespace    string // derived or overridden dotted namespace
	Name         string // input file base name without the template extension
	RelativePath string
	AbsolutePath string
	ProjectRoot  string
}

// Backend renders templates with Go's text/template engine.
type Backend struct {
	funcMap template.FuncMap
}

// New creates a template backend with the built-in helper functions.
func New() *Backend {
	return &Backend{funcMap: defaultFuncMap()}
}

// OutputExtension returns ".go": this backend always emits Go source.
func (b *Backend) OutputExtension() string { return ".go" }

// CreateContext acquires a parse cache scoped to one batch run.
func (b *Backend) CreateContext(projectRoot string) (generator.BackendContext, error) {
	return &batchContext{
		projectRoot: projectRoot,
		funcMap:     b.funcMap,
		cache:       make(map[string]*template.Template),
	}, nil
}

// batchContext holds parsed templates for the lifetime of one batch.
type batchContext struct {
	projectRoot string
	funcMap     template.FuncMap
	mu          sync.RWMutex
	cache       map[string]*template.Template
}

func (c *batchContext) CreateGenerator(absPath, relPath, namespace string) (generator.FileGenerator, error) {
	return &fileGenerator{
		ctx:       c,
		absPath:   absPath,
		relPath:   relPath,
		namespace: namespace,
	}, nil
}

// Release drops the parse cache. Templates parsed in one batch never leak
// into the next.
func (c *batchContext) Release() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache = nil
	return nil
}

func (c *batchContext) parse(absPath string, content []byte) (*template.Template, error) {
	c.mu.RLock()
	if tmpl, ok := c.cache[absPath]; ok {
		c.mu.RUnlock()
		return tmpl, nil
	}
	c.mu.RUnlock()

	tmpl, err := template.New(filepath.Base(absPath)).Funcs(c.funcMap).Parse(string(content))
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	if c.cache != nil {
		c.cache[absPath] = tmpl
	}
	c.mu.Unlock()

	return tmpl, nil
}

type fileGenerator struct {
	ctx       *batchContext
	absPath   string
	relPath   string
	namespace string
}

func (g *fileGenerator) Generate(ctx context.Context) (*generator.Outcome, error) {
	raw, err := os.ReadFile(g.absPath)
	if err != nil {
		// Unreadable input is a hard failure, not a template problem.
		return nil, fmt.Errorf("reading %s: %w", g.absPath, err)
	}

	tmpl, err := g.ctx.parse(g.absPath, raw)
	if err != nil {
		return &generator.Outcome{Errors: []generator.GenError{toGenError(err)}}, nil
	}

	name := filepath.Base(g.absPath)
	name = strings.TrimSuffix(name, filepath.Ext(name))

	var buf bytes.Buffer
	execErr := tmpl.Execute(&buf, Data{
		Namespace:    g.namespace,
		Name:         name,
		RelativePath: g.relPath,
		AbsolutePath: g.absPath,
		ProjectRoot:  g.ctx.projectRoot,
	})
	if execErr != nil {
		return &generator.Outcome{Errors: []generator.GenError{toGenError(execErr)}}, nil
	}

	return &generator.Outcome{Text: buf.String()}, nil
}

// toGenError converts a text/template error into a structured generation
// error, best-effort extracting the line number from messages shaped like
// "template: name:LINE: message" or "template: name:LINE:COL: message".
func toGenError(err error) generator.GenError {
	ge := generator.GenError{Message: err.Error()}

	msg := strings.TrimPrefix(err.Error(), "template: ")
	parts := strings.SplitN(msg, ":", 4)
	if len(parts) >= 2 {
		if line, convErr := strconv.Atoi(strings.TrimSpace(parts[1])); convErr == nil {
			ge.Line = line
		}
	}
	if len(parts) >= 3 {
		if col, convErr := strconv.Atoi(strings.TrimSpace(parts[2])); convErr == nil {
			ge.Column = col
		}
	}
	return ge
}

// defaultFuncMap returns the helper functions available inside templates.
func defaultFuncMap() template.FuncMap {
	return template.FuncMap{
		"upper":      strings.ToUpper,
		"lower":      strings.ToLower,
		"trim":       strings.TrimSpace,
		"join":       strings.Join,
		"split":      strings.Split,
		"replace":    strings.ReplaceAll,
		"hasPrefix":  strings.HasPrefix,
		"hasSuffix":  strings.HasSuffix,
		"identifier": Identifier,
	}
}

// Identifier converts an arbitrary string into a legal Go identifier:
// namespace dots and other non-alphanumerics become underscores, and a
// leading digit gets an underscore prepended.
func Identifier(s string) string {
	if s == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(s) + 1)
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
			b.WriteRune(r)
		case r >= '0' && r <= '9':
			if i == 0 {
				b.WriteRune('_')
			}
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}
