package tool

import (
	"context"
	"errors"
	"fmt"

	"github.com/vk/cliframe/internal/diag"
	"github.com/vk/cliframe/internal/logging"
)

// Runner is the single-method contract a concrete tool implements. The
// lifecycle driver wraps it with error handling and the final exit call.
type Runner interface {
	RunTool(ctx context.Context) error
}

// RunnerFunc adapts a plain function to the Runner interface.
type RunnerFunc func(ctx context.Context) error

// RunTool calls f.
func (f RunnerFunc) RunTool(ctx context.Context) error {
	return f(ctx)
}

var errDiagnostics = errors.New("diagnostics reported errors")

// Run drives r to completion and unconditionally calls the environment's
// exit function with the final status code. A run ends exactly one of three
// ways: a clean return with no error diagnostics (exit 0), an error
// returned or panicked out of r (exit 1), or a clean return after
// error-level diagnostics accumulated during the run (exit 1).
func (lc *Lifecycle[T]) Run(ctx context.Context, r Runner) {
	logger := logging.FromContext(ctx)

	if err := lc.runChecked(ctx, r); err != nil {
		lc.status = Failure
		lc.env.Engine.Emit(diag.Error, err.Error())
		logger.Debug("Tool run failed.", "tool", lc.info.Name, "error", err)
	}
	lc.env.Exit(lc.status.Code())
}

// runChecked invokes the tool logic and escalates accumulated error-level
// diagnostics to a run failure even when no error propagated, so tools can
// report multiple problems through the engine before stopping.
func (lc *Lifecycle[T]) runChecked(ctx context.Context, r Runner) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("tool panicked: %v", rec)
		}
	}()

	if err := r.RunTool(ctx); err != nil {
		return err
	}
	if lc.env.Engine.HasErrors() {
		return errDiagnostics
	}
	return nil
}
