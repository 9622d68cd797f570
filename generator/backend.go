package generator

import "context"

// Backend is the external generation engine. The driver knows nothing about
// the template language; it only hands the backend file locations and a
// namespace and collects the outcome.
type Backend interface {
	// CreateContext acquires a backend context scoped to one batch run.
	// The session releases it before Run returns, on every exit path.
	CreateContext(projectRoot string) (BackendContext, error)

	// OutputExtension is the file extension for generated artifacts
	// (e.g. ".go"), appended after the generated marker.
	OutputExtension() string
}

// BackendContext is a scoped resource owned by a single batch run.
type BackendContext interface {
	// CreateGenerator prepares generation for one input file.
	CreateGenerator(absPath, relPath, namespace string) (FileGenerator, error)

	// Release frees any resources held by the context.
	Release() error
}

// FileGenerator produces output text for exactly one input file.
type FileGenerator interface {
	// Generate runs the backend for this file. Structured problems the
	// backend can recover from are reported in Outcome.Errors and do not
	// stop generation from completing; a non-nil error is a hard failure
	// that aborts the whole batch.
	Generate(ctx context.Context) (*Outcome, error)
}

// Outcome is the structured result of generating one file.
type Outcome struct {
	Text   string
	Errors []GenError
}

// GenError is a structured error event reported by the backend.
// Line and Column are carried for diagnostics; the driver only uses Message.
type GenError struct {
	Message string
	Line    int
	Column  int
}
