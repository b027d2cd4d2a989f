package hocon

import (
	"path/filepath"

	"github.com/chris-martin/hocon-go/origin"
	"github.com/chris-martin/hocon-go/parser"
	"github.com/chris-martin/hocon-go/value"
)

// IncludeContext carries what an Includer needs to resolve a relative
// include path (spec.md §6).
type IncludeContext = parser.IncludeContext

// Includer is the capability the parser delegates `include` directives to
// (spec.md §1, §6). The core consumes only this interface; this package's
// DefaultIncluder is the one concrete, file-only implementation it ships.
type Includer interface {
	WithFallback(other Includer) Includer
	Include(ctx IncludeContext, what string) (value.Value, error)
	IncludeFile(ctx IncludeContext, path string) (value.Value, error)
	IncludeURL(ctx IncludeContext, url string) (value.Value, error)
	IncludeClasspath(ctx IncludeContext, path string) (value.Value, error)
}

// includerAdapter lets a hocon.Includer satisfy parser.Includer, so the
// parser package never needs to know about this package's Includer type.
type includerAdapter struct{ inc Includer }

func (a includerAdapter) WithFallback(other parser.Includer) parser.Includer {
	if oa, ok := other.(includerAdapter); ok {
		return includerAdapter{a.inc.WithFallback(oa.inc)}
	}
	return a
}
func (a includerAdapter) Include(ctx parser.IncludeContext, what string) (value.Value, error) {
	return a.inc.Include(ctx, what)
}
func (a includerAdapter) IncludeFile(ctx parser.IncludeContext, path string) (value.Value, error) {
	return a.inc.IncludeFile(ctx, path)
}
func (a includerAdapter) IncludeURL(ctx parser.IncludeContext, url string) (value.Value, error) {
	return a.inc.IncludeURL(ctx, url)
}
func (a includerAdapter) IncludeClasspath(ctx parser.IncludeContext, path string) (value.Value, error) {
	return a.inc.IncludeClasspath(ctx, path)
}

// DefaultIncluder resolves `include "..."` and `include file("...")`
// relative to BaseDir by reading the named file and parsing it with
// DefaultParseOptions, its origin description set to the included file's
// path, per spec.md §6's minimal default Includer. Those options carry no
// Includer, so include directives inside the included file are skipped. It is grounded on bundle.go's
// AddTemplateFile: read the file, wrap any failure with its origin, and
// (here) delegate the actual parse to ParseFile — minus bundle.go's
// fsnotify watch half, which spec.md's Non-goals exclude.
type DefaultIncluder struct {
	BaseDir  string
	fallback Includer
}

// NewDefaultIncluder builds a file-only Includer rooted at baseDir.
func NewDefaultIncluder(baseDir string) *DefaultIncluder {
	return &DefaultIncluder{BaseDir: baseDir}
}

// WithFallback returns a new DefaultIncluder with other appended to the
// end of its fallback chain. It never returns the receiver and does not
// check whether other is already in the chain.
func (d *DefaultIncluder) WithFallback(other Includer) Includer {
	if d.fallback != nil {
		return &DefaultIncluder{BaseDir: d.BaseDir, fallback: d.fallback.WithFallback(other)}
	}
	return &DefaultIncluder{BaseDir: d.BaseDir, fallback: other}
}

// Include implements the heuristic (no-scheme) include form by trying a
// plain file read relative to BaseDir.
func (d *DefaultIncluder) Include(ctx IncludeContext, what string) (value.Value, error) {
	return d.IncludeFile(ctx, what)
}

func (d *DefaultIncluder) IncludeFile(ctx IncludeContext, path string) (value.Value, error) {
	full := path
	if !filepath.IsAbs(full) {
		full = filepath.Join(d.BaseDir, path)
	}
	cfg, err := ParseFile(full, DefaultParseOptions().WithOriginDescription(full))
	if err != nil {
		if d.fallback != nil {
			return d.fallback.IncludeFile(ctx, path)
		}
		return nil, err
	}
	return cfg.Root(), nil
}

func (d *DefaultIncluder) IncludeURL(ctx IncludeContext, url string) (value.Value, error) {
	if d.fallback != nil {
		return d.fallback.IncludeURL(ctx, url)
	}
	return nil, origin.Newf(origin.IO, origin.Simple(ctx.OriginDescription), "url(...) includes are not supported by DefaultIncluder")
}

func (d *DefaultIncluder) IncludeClasspath(ctx IncludeContext, path string) (value.Value, error) {
	if d.fallback != nil {
		return d.fallback.IncludeClasspath(ctx, path)
	}
	return nil, origin.Newf(origin.IO, origin.Simple(ctx.OriginDescription), "classpath(...) includes are not supported by DefaultIncluder")
}
