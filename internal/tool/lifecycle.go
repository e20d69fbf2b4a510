// Package tool implements the lifecycle every command-line tool in this
// repository follows: parse and bind arguments into a typed options value,
// run the tool's logic, check accumulated diagnostics, and exit with 0 or 1.
//
// The lifecycle is single-threaded and run-to-completion. Construction is
// all-or-nothing: it either yields a fully-populated options value or
// terminates the process with a failure exit code, after printing the
// reason through the diagnostics path.
package tool

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/pflag"

	"github.com/vk/cliframe/internal/diag"
	"github.com/vk/cliframe/internal/fsutil"
	"github.com/vk/cliframe/internal/hclrc"
	"github.com/vk/cliframe/internal/logging"
)

// Info describes a tool to the argument parser.
type Info struct {
	Name     string
	Usage    string // argument synopsis, e.g. "--count <n> [--message <text>]"
	Overview string
	SeeAlso  string

	// Required lists flags that must be set explicitly, either on the
	// command line or through the defaults file.
	Required []string
}

// FlagDefiner registers a tool's flags onto fs, binding each flag to a
// field of opts. It is the binder: after a successful Parse, every declared
// field holds its parsed or default value.
type FlagDefiner[T any] func(fs *pflag.FlagSet, opts *T)

// Validator is implemented by options types that need semantic checks after
// parsing. The hook may emit diagnostics, return an error, or both.
type Validator interface {
	Validate(eng *diag.Engine) error
}

// Lifecycle owns one tool invocation from argument parsing to process exit.
// It holds the bound options value, the working directory captured at
// construction, a reference to the shared diagnostics engine, the current
// informational output handle, and the execution status.
type Lifecycle[T any] struct {
	env     *Env
	info    Info
	flags   *pflag.FlagSet
	options T
	cwd     string
	out     io.Writer // informational stream; swaps to stderr once, never back
	status  ExecutionStatus
}

// New builds a lifecycle for one tool invocation. On any construction
// failure it emits a diagnostic and calls the environment's exit function
// with a failure code; when that function actually terminates the process,
// New never returns on failure. Test environments whose exit function
// returns get nil instead of a partially-constructed lifecycle.
func New[T any](ctx context.Context, env *Env, info Info, define FlagDefiner[T], args []string) *Lifecycle[T] {
	logger := logging.FromContext(ctx)
	lc := &Lifecycle[T]{env: env, info: info, out: env.Stdout}

	cwd, err := env.Workspace.Getwd()
	if err != nil {
		// No parser exists yet; this is the one failure reported before
		// any argument handling is wired up.
		env.Engine.Emitf(diag.Error, "cannot determine working directory: %v", err)
		lc.status = Failure
		env.Exit(Failure.Code())
		return nil
	}
	lc.cwd = cwd
	logger.Debug("Captured working directory.", "tool", info.Name, "cwd", cwd)

	if err := lc.construct(ctx, define, args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			// pflag already printed the usage text.
			env.Exit(Success.Code())
			return nil
		}
		env.Engine.Emit(diag.Error, err.Error())
		lc.status = Failure
		env.Exit(Failure.Code())
		return nil
	}

	logger.Debug("Options bound.", "tool", info.Name)
	return lc
}

// construct runs the parse-and-bind sequence. Any error is handled once by
// New; there is no partial-success state.
func (lc *Lifecycle[T]) construct(ctx context.Context, define FlagDefiner[T], args []string) error {
	name := fmt.Sprintf("%s %s", lc.env.HostName, lc.info.Name)
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	// Parse errors are reported once through the diagnostics path, not by
	// the flag set itself; usage still prints through our own writer.
	fs.SetOutput(io.Discard)
	fs.Usage = func() { lc.printUsage(fs) }

	// The definer registers flags bound onto the zero-valued options
	// struct; Parse populates the fields in place.
	define(fs, &lc.options)
	lc.flags = fs

	rel := filepath.Join("."+lc.env.HostName, lc.info.Name+".hcl")
	if path, ok := fsutil.FindUp(lc.cwd, rel); ok {
		if err := hclrc.Apply(ctx, fs, path, lc.env.Engine); err != nil {
			return err
		}
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return err
		}
		return fmt.Errorf("failed to parse arguments: %w", err)
	}

	for _, required := range lc.info.Required {
		if !fs.Changed(required) {
			return fmt.Errorf("required flag --%s not set", required)
		}
	}

	if v, ok := any(&lc.options).(Validator); ok {
		if err := v.Validate(lc.env.Engine); err != nil {
			return fmt.Errorf("invalid arguments: %w", err)
		}
	}

	return nil
}

func (lc *Lifecycle[T]) printUsage(fs *pflag.FlagSet) {
	w := lc.env.Stderr
	fmt.Fprintf(w, "Usage: %s %s\n", fs.Name(), lc.info.Usage)
	if lc.info.Overview != "" {
		fmt.Fprintf(w, "\n%s\n", lc.info.Overview)
	}
	fmt.Fprintf(w, "\nOptions:\n%s", fs.FlagUsages())
	if lc.info.SeeAlso != "" {
		fmt.Fprintf(w, "\nSee also: %s\n", lc.info.SeeAlso)
	}
}

// Options returns the bound options value. Callers receive a copy; the
// lifecycle's own value never changes after construction.
func (lc *Lifecycle[T]) Options() T {
	return lc.options
}

// WorkingDirectory returns the directory captured when the lifecycle was
// constructed, before any tool logic ran.
func (lc *Lifecycle[T]) WorkingDirectory() string {
	return lc.cwd
}

// Engine returns the shared diagnostics engine for this run.
func (lc *Lifecycle[T]) Engine() *diag.Engine {
	return lc.env.Engine
}

// Args returns the positional arguments left over after flag parsing.
func (lc *Lifecycle[T]) Args() []string {
	return lc.flags.Args()
}

// Status returns the current execution status.
func (lc *Lifecycle[T]) Status() ExecutionStatus {
	return lc.status
}

// Out returns the current informational stream handle.
func (lc *Lifecycle[T]) Out() io.Writer {
	return lc.out
}

// Printf writes informational text through the lifecycle's stream handle,
// so it follows any stdout-to-stderr redirection.
func (lc *Lifecycle[T]) Printf(format string, args ...any) {
	fmt.Fprintf(lc.out, format, args...)
}

// RedirectStdoutToStderr routes the lifecycle's informational stream and
// the shared diagnostics output to the error stream, keeping the data
// output on stdout pristine for piping. One-way: no operation restores the
// previous streams for the rest of the run.
func (lc *Lifecycle[T]) RedirectStdoutToStderr() {
	lc.out = lc.env.Stderr
	lc.env.Engine.SetOutput(lc.env.Stderr)
}
