package exdoc

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// cacheDirName is the transient directory the example loader leaves behind
// next to the source file. It is removed after every capture attempt.
const cacheDirName = "__enamlcache__"

// CaptureRequest pairs an example with its snapshot destination. The
// example's own directory travels in the request so the capability can
// resolve the example without mutating any process-wide search path.
type CaptureRequest struct {
	ExamplePath string // path to the example source
	ExampleDir  string // directory the loader may resolve the example from
	ImagePath   string // destination for the PNG snapshot
}

// CaptureResult reports the outcome of a capture attempt. Failure is a
// normal outcome: the pipeline degrades to a document without a screenshot.
type CaptureResult struct {
	Success bool
	Message string
}

// Capturer renders an example and saves a snapshot image at the requested
// path. Implementations may fail with an error or a panic; the Orchestrator
// absorbs both.
type Capturer interface {
	Capture(ctx context.Context, req CaptureRequest) error
	Close() error
}

// Orchestrator runs a Capturer with isolation and cleanup guarantees: the
// capability can never abort the run, and the loader cache sibling to the
// example is removed whether or not capture succeeded.
type Orchestrator struct {
	capturer Capturer
}

// NewOrchestrator wraps a capture capability.
func NewOrchestrator(c Capturer) *Orchestrator {
	return &Orchestrator{capturer: c}
}

// Capture invokes the capability for one example and reports the outcome.
// It never returns an error and never panics.
func (o *Orchestrator) Capture(ctx context.Context, examplePath, imagePath string) CaptureResult {
	dir := filepath.Dir(examplePath)
	defer removeLoaderCache(dir)

	err := o.invoke(ctx, CaptureRequest{
		ExamplePath: examplePath,
		ExampleDir:  dir,
		ImagePath:   imagePath,
	})
	if err != nil {
		return CaptureResult{Message: err.Error()}
	}
	return CaptureResult{Success: true}
}

// invoke calls the capability and converts panics into errors so a
// misbehaving backend degrades to a missing screenshot.
func (o *Orchestrator) invoke(ctx context.Context, req CaptureRequest) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: panic: %v", ErrCaptureFailed, r)
		}
	}()
	return o.capturer.Capture(ctx, req)
}

// Close releases the underlying capture capability.
func (o *Orchestrator) Close() error {
	if o.capturer != nil {
		return o.capturer.Close()
	}
	return nil
}

// removeLoaderCache deletes the transient cache directory next to an
// example. A missing directory is not an error.
func removeLoaderCache(exampleDir string) {
	_ = os.RemoveAll(filepath.Join(exampleDir, cacheDirName))
}
