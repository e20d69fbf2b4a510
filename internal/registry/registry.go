// Package registry stores the mapping between tool names and the compiled
// entry points that implement them. The host binary populates one registry
// at startup and dispatches the selected tool through it.
package registry

import (
	"context"
	"fmt"
	"sort"

	"github.com/vk/cliframe/internal/tool"
)

// Tool is one registered command-line tool: its metadata plus the entry
// point the host invokes with the tool's raw argument list. Entry points
// end in the lifecycle's exit call and do not return control in a real
// process.
type Tool struct {
	Name     string
	Overview string
	Run      func(ctx context.Context, env *tool.Env, args []string)
}

// Module is the interface a tool package implements to register itself.
type Module interface {
	Register(r *Registry)
}

// Registry holds the tools available to a single host instance.
type Registry struct {
	tools map[string]*Tool
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{tools: make(map[string]*Tool)}
}

// Register adds t to the registry. A duplicate name is a programmer error
// (two packages claiming the same tool), so it panics.
func (r *Registry) Register(t *Tool) {
	if _, exists := r.tools[t.Name]; exists {
		panic(fmt.Sprintf("registry: tool %q registered twice", t.Name))
	}
	r.tools[t.Name] = t
}

// Lookup returns the tool registered under name.
func (r *Registry) Lookup(name string) (*Tool, bool) {
	t, ok := r.tools[name]
	return t, ok
}

// Names returns all registered tool names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
