package registry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/cliframe/internal/tool"
)

func stubTool(name string) *Tool {
	return &Tool{
		Name:     name,
		Overview: name + " overview",
		Run:      func(ctx context.Context, env *tool.Env, args []string) {},
	}
}

func TestRegisterAndLookup(t *testing.T) {
	r := New()
	r.Register(stubTool("alpha"))

	got, ok := r.Lookup("alpha")
	require.True(t, ok)
	assert.Equal(t, "alpha", got.Name)

	_, ok = r.Lookup("missing")
	assert.False(t, ok)
}

func TestNames_Sorted(t *testing.T) {
	r := New()
	r.Register(stubTool("zeta"))
	r.Register(stubTool("alpha"))
	r.Register(stubTool("mid"))

	assert.Equal(t, []string{"alpha", "mid", "zeta"}, r.Names())
}

func TestRegister_DuplicatePanics(t *testing.T) {
	r := New()
	r.Register(stubTool("alpha"))

	assert.Panics(t, func() {
		r.Register(stubTool("alpha"))
	})
}
