package generator

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ProjectContext holds the per-batch configuration. Values are read-only
// after the batch starts.
type ProjectContext struct {
	ProjectRoot    string // empty means current working directory
	CacheDirectory string // where generated artifacts live
	RootNamespace  string // optional prefix for derived namespaces
	TemplateExt    string // template extension marker (default TemplateExt)
}

// Input describes one template file to process.
type Input struct {
	AbsolutePath      string
	NamespaceOverride string // wins over the derived namespace when set
}

// Output describes one successfully generated artifact.
type Output struct {
	Path          string
	AutoGenerated bool
	DependentUpon string // base name of the input file
}

// Result is the overall outcome of a batch run. Outputs lists every file
// written before a failure, so partial progress is visible to the caller.
type Result struct {
	Succeeded bool
	Outputs   []Output
}

// SessionOptions configures a generation session.
type SessionOptions struct {
	Writer io.Writer // where progress lines go (defaults to os.Stdout)
}

// Session owns the lifetime of one batch run: it acquires a backend context,
// processes inputs in order, and aggregates per-file results.
type Session struct {
	backend Backend
	project ProjectContext
	writer  io.Writer
}

// NewSession creates a session for one batch run.
func NewSession(backend Backend, project ProjectContext, opts *SessionOptions) *Session {
	writer := io.Writer(os.Stdout)
	if opts != nil && opts.Writer != nil {
		writer = opts.Writer
	}
	return &Session{
		backend: backend,
		project: project,
		writer:  writer,
	}
}

// Run processes the batch sequentially and returns the overall result.
// Nothing is ever propagated to the caller as a panic or error: all failures
// are converted to log lines and a false Succeeded flag. The returned Output
// list reflects files written before any abort.
func (s *Session) Run(ctx context.Context, inputs []Input) (result *Result) {
	result = &Result{Succeeded: true}

	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(s.writer, "✗ generation aborted: %v\n", r)
			result.Succeeded = false
		}
	}()

	root := s.project.ProjectRoot
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			fmt.Fprintf(s.writer, "✗ resolving project root: %v\n", err)
			result.Succeeded = false
			return result
		}
		root = wd
	}

	bctx, err := s.backend.CreateContext(root)
	if err != nil {
		fmt.Fprintf(s.writer, "✗ acquiring backend context: %v\n", err)
		result.Succeeded = false
		return result
	}
	defer func() {
		if err := bctx.Release(); err != nil {
			fmt.Fprintf(s.writer, "✗ releasing backend context: %v\n", err)
		}
	}()

	for _, in := range inputs {
		rel := RelativePath(in.AbsolutePath, root)
		outPath := OutputPath(rel, s.project.CacheDirectory, s.project.TemplateExt, s.backend.OutputExtension())

		if !NeedsRegeneration(in.AbsolutePath, outPath) {
			fmt.Fprintf(s.writer, "• %s is up to date\n", rel)
			continue
		}

		ns := DeriveNamespace(in.NamespaceOverride, rel, s.project.RootNamespace)

		if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
			fmt.Fprintf(s.writer, "✗ creating output directory for %s: %v\n", rel, err)
			result.Succeeded = false
			return result
		}

		gen, err := bctx.CreateGenerator(in.AbsolutePath, rel, ns)
		if err != nil {
			fmt.Fprintf(s.writer, "✗ preparing generator for %s: %v\n", rel, err)
			result.Succeeded = false
			return result
		}

		outcome, err := gen.Generate(ctx)
		if err != nil {
			// Hard backend failure aborts the remaining batch.
			fmt.Fprintf(s.writer, "✗ generating %s: %v\n", rel, err)
			result.Succeeded = false
			return result
		}

		if len(outcome.Errors) > 0 {
			// Structured errors mark the file as not-written and the batch
			// as failed, but remaining inputs are still processed.
			for _, ge := range outcome.Errors {
				fmt.Fprintf(s.writer, "✗ %s: %s\n", rel, ge.Message)
			}
			result.Succeeded = false
			continue
		}

		if err := WriteOutput(outPath, Encode(outcome.Text)); err != nil {
			fmt.Fprintf(s.writer, "✗ %v\n", err)
			result.Succeeded = false
			return result
		}

		fmt.Fprintf(s.writer, "✓ Generated %s\n", outPath)
		result.Outputs = append(result.Outputs, Output{
			Path:          outPath,
			AutoGenerated: true,
			DependentUpon: filepath.Base(in.AbsolutePath),
		})
	}

	return result
}
