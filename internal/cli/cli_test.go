package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/cliframe/internal/registry"
	"github.com/vk/cliframe/internal/tool"
)

func newRegistry() *registry.Registry {
	r := registry.New()
	r.Register(&registry.Tool{
		Name:     "demo",
		Overview: "Demo tool.",
		Run:      func(ctx context.Context, env *tool.Env, args []string) {},
	})
	return r
}

func TestSelect_KnownTool(t *testing.T) {
	out := &bytes.Buffer{}

	tl, rest, shouldExit, err := Select(newRegistry(), "cliframe", []string{"demo", "--count=1"}, out)

	require.NoError(t, err)
	require.False(t, shouldExit)
	require.NotNil(t, tl)
	assert.Equal(t, "demo", tl.Name)
	assert.Equal(t, []string{"--count=1"}, rest)
}

func TestSelect_UnknownTool(t *testing.T) {
	out := &bytes.Buffer{}

	_, _, _, err := Select(newRegistry(), "cliframe", []string{"nope"}, out)

	require.Error(t, err)
	exitErr, ok := err.(*ExitError)
	require.True(t, ok)
	assert.Equal(t, 2, exitErr.Code)
	assert.Contains(t, exitErr.Message, `unknown tool "nope"`)
}

func TestSelect_NoArgsPrintsUsage(t *testing.T) {
	out := &bytes.Buffer{}

	_, _, shouldExit, err := Select(newRegistry(), "cliframe", nil, out)

	require.NoError(t, err)
	assert.True(t, shouldExit)
	assert.Contains(t, out.String(), "Usage:")
	assert.Contains(t, out.String(), "demo")
	assert.Contains(t, out.String(), "Demo tool.")
}

func TestSelect_Help(t *testing.T) {
	for _, arg := range []string{"help", "-h", "--help"} {
		t.Run(arg, func(t *testing.T) {
			out := &bytes.Buffer{}

			_, _, shouldExit, err := Select(newRegistry(), "cliframe", []string{arg}, out)

			require.NoError(t, err)
			assert.True(t, shouldExit)
			assert.Contains(t, out.String(), "Usage:")
		})
	}
}
