// Package hclrc loads per-tool defaults from an HCL file and applies them
// to a flag set before parsing. Each top-level attribute whose name matches
// a registered flag becomes that flag's effective default; values given on
// the command line still win because Parse runs afterwards.
package hclrc

import (
	"context"
	"fmt"
	"sort"

	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/spf13/pflag"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/vk/cliframe/internal/diag"
	"github.com/vk/cliframe/internal/logging"
)

// Apply reads the defaults file at path and sets matching flags in fs.
// Attributes that name no registered flag are reported as error diagnostics
// on eng rather than aborting, so one stray entry does not mask the rest of
// the file. Parse or evaluation failures abort with an error.
func Apply(ctx context.Context, fs *pflag.FlagSet, path string, eng *diag.Engine) error {
	logger := logging.FromContext(ctx)
	logger.Debug("Applying defaults file.", "file", path)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return fmt.Errorf("failed to parse defaults file %s: %w", path, diags)
	}

	attrs, diags := file.Body.JustAttributes()
	if diags.HasErrors() {
		return fmt.Errorf("failed to read defaults file %s: %w", path, diags)
	}

	// Attribute maps have no order; sort so diagnostics are deterministic.
	names := make([]string, 0, len(attrs))
	for name := range attrs {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if fs.Lookup(name) == nil {
			eng.Emitf(diag.Error, "%s: unknown option %q", path, name)
			continue
		}

		val, vdiags := attrs[name].Expr.Value(nil)
		if vdiags.HasErrors() {
			return fmt.Errorf("failed to evaluate %q in %s: %w", name, path, vdiags)
		}
		strVal, err := convert.Convert(val, cty.String)
		if err != nil {
			return fmt.Errorf("option %q in %s has no flag representation: %w", name, path, err)
		}
		if err := fs.Set(name, strVal.AsString()); err != nil {
			return fmt.Errorf("invalid default for --%s in %s: %w", name, path, err)
		}
		logger.Debug("Applied default from file.", "flag", name)
	}

	return nil
}
