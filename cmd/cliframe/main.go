package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/vk/cliframe/internal/cli"
	"github.com/vk/cliframe/internal/logging"
	"github.com/vk/cliframe/internal/registry"
	"github.com/vk/cliframe/internal/tool"
	"github.com/vk/cliframe/tools/repeat"
	"github.com/vk/cliframe/tools/sum"
)

const hostName = "cliframe"

// coreTools lists every tool compiled into the host binary.
var coreTools = []registry.Module{
	repeat.Module{},
	sum.Module{},
}

// main is the entrypoint for the cliframe host binary.
func main() {
	logLevel := os.Getenv("CLIFRAME_LOG_LEVEL")
	logger := logging.New(logLevel, os.Getenv("CLIFRAME_LOG_FORMAT"), os.Stderr)
	slog.SetDefault(logger)
	ctx := logging.WithLogger(context.Background(), logger)

	env := tool.ProcessEnv(hostName)
	if err := run(ctx, env, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run dispatches the selected tool. It returns only for host-level argument
// errors or a clean help exit; a dispatched tool ends in the environment's
// exit call.
func run(ctx context.Context, env *tool.Env, args []string) error {
	reg := registry.New()
	for _, mod := range coreTools {
		mod.Register(reg)
	}

	t, toolArgs, shouldExit, err := cli.Select(reg, env.HostName, args, env.Stderr)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	t.Run(ctx, env, toolArgs)
	return nil
}
