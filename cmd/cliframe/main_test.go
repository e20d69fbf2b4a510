package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/cliframe/internal/cli"
	"github.com/vk/cliframe/internal/diag"
	"github.com/vk/cliframe/internal/tool"
)

type fixedWorkspace string

func (w fixedWorkspace) Getwd() (string, error) {
	return string(w), nil
}

type testEnv struct {
	env    *tool.Env
	stdout *bytes.Buffer
	stderr *bytes.Buffer
	codes  []int
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	te := &testEnv{stdout: &bytes.Buffer{}, stderr: &bytes.Buffer{}}
	te.env = &tool.Env{
		HostName:  hostName,
		Workspace: fixedWorkspace(t.TempDir()),
		Engine:    diag.NewEngine(te.stderr),
		Stdout:    te.stdout,
		Stderr:    te.stderr,
	}
	te.env.Exit = func(code int) { te.codes = append(te.codes, code) }
	return te
}

func TestRun_DispatchesTool(t *testing.T) {
	te := newTestEnv(t)

	err := run(context.Background(), te.env, []string{"repeat", "--count=2", "--message=x"})

	require.NoError(t, err)
	require.Equal(t, []int{0}, te.codes)
	assert.Equal(t, "x\nx\n", te.stdout.String())
}

func TestRun_UnknownTool(t *testing.T) {
	te := newTestEnv(t)

	err := run(context.Background(), te.env, []string{"frobnicate"})

	require.Error(t, err)
	exitErr, ok := err.(*cli.ExitError)
	require.True(t, ok)
	assert.Equal(t, 2, exitErr.Code)
	assert.Empty(t, te.codes, "host errors return instead of exiting through the tool seam")
}

func TestRun_NoArgsPrintsToolListing(t *testing.T) {
	te := newTestEnv(t)

	err := run(context.Background(), te.env, nil)

	require.NoError(t, err)
	assert.Contains(t, te.stderr.String(), "Usage:")
	assert.Contains(t, te.stderr.String(), "repeat")
	assert.Contains(t, te.stderr.String(), "sum")
}

func TestRun_ToolFailureExitsOne(t *testing.T) {
	te := newTestEnv(t)

	err := run(context.Background(), te.env, []string{"repeat", "--count=abc"})

	require.NoError(t, err, "tool failures surface through the exit seam, not the error return")
	require.Equal(t, []int{1}, te.codes)
	assert.Contains(t, te.stderr.String(), "failed to parse arguments")
}
