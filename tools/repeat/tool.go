// Package repeat implements the repeat tool: print a message a fixed
// number of times.
package repeat

import (
	"context"
	"fmt"

	"github.com/spf13/pflag"

	"github.com/vk/cliframe/internal/diag"
	"github.com/vk/cliframe/internal/registry"
	"github.com/vk/cliframe/internal/tool"
)

// Options is the tool configuration bound from arguments.
type Options struct {
	Count   int
	Message string
}

// Validate rejects values the flag grammar alone cannot reject.
func (o *Options) Validate(eng *diag.Engine) error {
	if o.Count < 0 {
		return fmt.Errorf("--count must be non-negative, got %d", o.Count)
	}
	return nil
}

var info = tool.Info{
	Name:     "repeat",
	Usage:    "--count <n> [--message <text>]",
	Overview: "Print a message a fixed number of times.",
	Required: []string{"count"},
}

func defineFlags(fs *pflag.FlagSet, opts *Options) {
	fs.IntVar(&opts.Count, "count", 0, "Number of repetitions.")
	fs.StringVar(&opts.Message, "message", "hello", "Message to print.")
}

// Module implements registry.Module for this package.
type Module struct{}

// Register adds the repeat tool to the host registry.
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
		// Construction already exited; reachable only under test exit seams.
		return
	}
	lc.Run(ctx, tool.RunnerFunc(func(ctx context.Context) error {
		opts := lc.Options()
		for i := 0; i < opts.Count; i++ {
			lc.Printf("%s\n", opts.Message)
		}
		return nil
	}))
}
