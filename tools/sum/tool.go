// Package sum implements the sum tool: add up numeric lines from a file or
// standard input and print the total on stdout. The total is the tool's
// data output; everything else goes through the lifecycle's informational
// stream so --log-to-stderr keeps stdout clean for piping.
package sum

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/vk/cliframe/internal/diag"
	"github.com/vk/cliframe/internal/registry"
	"github.com/vk/cliframe/internal/tool"
)

// Options is the tool configuration bound from arguments.
type Options struct {
	Input       string
	Precision   int
	LogToStderr bool
}

// Validate rejects values the flag grammar alone cannot reject.
func (o *Options) Validate(eng *diag.Engine) error {
	if o.Precision < 0 || o.Precision > 12 {
		return fmt.Errorf("--precision must be between 0 and 12, got %d", o.Precision)
	}
	return nil
}

var info = tool.Info{
	Name:     "sum",
	Usage:    "[--input <file>] [--precision <n>] [--log-to-stderr]",
	Overview: "Sum numeric lines and print the total.",
	SeeAlso:  "repeat",
}

func defineFlags(fs *pflag.FlagSet, opts *Options) {
	fs.StringVar(&opts.Input, "input", "-", "Input file, or '-' for stdin.")
	fs.IntVar(&opts.Precision, "precision", 2, "Decimal places in the printed total.")
	fs.BoolVar(&opts.LogToStderr, "log-to-stderr", false, "Route informational output and diagnostics to stderr.")
}

// Module implements registry.Module for this package.
type Module struct{}

// Register adds the sum tool to the host registry.
func (Module) Register(r *registry.Registry) {
	r.Register(&registry.Tool{
		Name:     info.Name,
		Overview: info.Overview,
		Run:      Run,
	})
}

// Run is the entry point the host invokes with the tool's argument list.
func Run(ctx context.Context, env *tool.Env, args []string) {
	lc := tool.New(ctx, env, info, defineFlags, args)
	if lc == nil {
		return
	}
	lc.Run(ctx, &summer{lc: lc, env: env, stdin: os.Stdin})
}

// summer holds the run state so tests can drive it with substituted streams.
type summer struct {
	lc    *tool.Lifecycle[Options]
	env   *tool.Env
	stdin io.Reader
}

// RunTool reads the input line by line. Malformed lines do not stop the
// run; each one gets its own diagnostic and the accumulated errors fail the
// run at exit time.
func (s *summer) RunTool(ctx context.Context) error {
	opts := s.lc.Options()
	if opts.LogToStderr {
		s.lc.RedirectStdoutToStderr()
	}

	in := s.stdin
	if opts.Input != "" && opts.Input != "-" {
		path := opts.Input
		if !filepath.IsAbs(path) {
			path = filepath.Join(s.lc.WorkingDirectory(), path)
		}
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("cannot open input: %w", err)
		}
		defer f.Close()
		in = f
	}

	var total float64
	var count int
	scanner := bufio.NewScanner(in)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			s.lc.Engine().Emitf(diag.Error, "line %d: not a number: %q", lineNo, text)
			continue
		}
		total += v
		count++
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	s.lc.Printf("summed %d lines\n", count)
	fmt.Fprintf(s.env.Stdout, "%.*f\n", opts.Precision, total)
	return nil
}
