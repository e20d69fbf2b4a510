package tool

import (
	"io"
	"os"

	"github.com/vk/cliframe/internal/diag"
	"github.com/vk/cliframe/internal/fsutil"
)

// Env carries the process-level collaborators a lifecycle depends on.
// Tests substitute each seam: an in-memory workspace, a fresh diagnostics
// engine, byte buffers for the streams, and an exit function that records
// its code instead of terminating the test process.
type Env struct {
	// HostName is the host program name, used to synthesize the parser's
	// command name as "<host> <tool>" and to locate the defaults file.
	HostName string

	Workspace fsutil.Workspace
	Engine    *diag.Engine
	Stdout    io.Writer
	Stderr    io.Writer

	// Exit terminates the process with the given code. In a real process
	// it never returns.
	Exit func(code int)
}

// ProcessEnv returns the real process environment for a host binary: OS
// streams, the shared process-wide diagnostics engine, and os.Exit.
func ProcessEnv(hostName string) *Env {
	return &Env{
		HostName:  hostName,
		Workspace: fsutil.OSWorkspace{},
		Engine:    diag.Default(),
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
		Exit:      os.Exit,
	}
}
