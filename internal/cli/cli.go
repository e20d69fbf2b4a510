// Package cli resolves which tool a host invocation names and handles
// process-level concerns like exit codes for host argument errors. Tool
// argument parsing itself belongs to each tool's lifecycle.
package cli

import (
	"fmt"
	"io"

	"github.com/vk/cliframe/internal/registry"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Select resolves the tool named by the raw host arguments. It returns the
// selected tool and its remaining arguments, a boolean indicating the host
// should exit cleanly (no tool or help requested; usage was printed), or an
// ExitError for an unknown tool.
func Select(reg *registry.Registry, hostName string, args []string, output io.Writer) (*registry.Tool, []string, bool, error) {
	if len(args) == 0 {
		printUsage(reg, hostName, output)
		return nil, nil, true, nil
	}

	name := args[0]
	switch name {
	case "help", "-h", "--help":
		printUsage(reg, hostName, output)
		return nil, nil, true, nil
	}

	t, ok := reg.Lookup(name)
	if !ok {
		return nil, nil, false, &ExitError{
			Code:    2,
			Message: fmt.Sprintf("%s: unknown tool %q (run '%s help' for a list)", hostName, name, hostName),
		}
	}
	return t, args[1:], false, nil
}

func printUsage(reg *registry.Registry, hostName string, output io.Writer) {
	fmt.Fprintf(output, "Usage:\n  %s <tool> [options]\n\nTools:\n", hostName)
	for _, name := range reg.Names() {
		t, _ := reg.Lookup(name)
		fmt.Fprintf(output, "  %-10s %s\n", name, t.Overview)
	}
	fmt.Fprintf(output, "\nRun '%s <tool> --help' for tool options.\n", hostName)
}
