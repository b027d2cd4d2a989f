package hocon

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chris-martin/hocon-go/origin"
	hpath "github.com/chris-martin/hocon-go/path"
	"github.com/chris-martin/hocon-go/parser"
	"github.com/chris-martin/hocon-go/resolve"
	"github.com/chris-martin/hocon-go/value"
)

// Syntax selects the input dialect, auto-detected from a file extension
// when a file is the input source (spec.md §6).
type Syntax = parser.Syntax

const (
	SyntaxConf       = parser.SyntaxConf
	SyntaxJSON       = parser.SyntaxJSON
	SyntaxProperties Syntax = 100
)

// ParseOptions configures a single parse call (spec.md §6). Immutable:
// every With* method returns a copy, following the teacher's options
// style (ParseOptions in parser mirrors this shape one layer down).
type ParseOptions struct {
	Syntax            Syntax
	OriginDescription string
	AllowMissing      bool
	Includer          Includer
}

// DefaultParseOptions returns {allow-missing: true}, per
// original_source/hocon/ConfigParseOptions.py.
func DefaultParseOptions() ParseOptions {
	return ParseOptions{AllowMissing: true}
}

func (o ParseOptions) WithOriginDescription(d string) ParseOptions {
	o.OriginDescription = d
	return o
}

func (o ParseOptions) WithSyntax(s Syntax) ParseOptions {
	o.Syntax = s
	return o
}

func (o ParseOptions) WithAllowMissing(allow bool) ParseOptions {
	o.AllowMissing = allow
	return o
}

// WithIncluder returns a copy with other prepended onto any includer this
// ParseOptions already carries, per spec.md §6's `prependIncluder`/
// `appendIncluder`, implemented via the Includer's own WithFallback.
func (o ParseOptions) WithIncluder(other Includer) ParseOptions {
	if o.Includer == nil {
		o.Includer = other
	} else {
		o.Includer = other.WithFallback(o.Includer)
	}
	return o
}

func (o ParseOptions) toParserOptions() parser.Options {
	var inc parser.Includer
	if o.Includer != nil {
		inc = includerAdapter{o.Includer}
	}
	return parser.Options{
		Syntax:            o.Syntax,
		OriginDescription: o.OriginDescription,
		AllowMissing:      o.AllowMissing,
		Includer:          inc,
	}
}

// ResolveOptions configures a single Resolve call (spec.md §6).
type ResolveOptions struct {
	UseSystemEnvironment bool
	AllowUnresolved      bool
}

// DefaultResolveOptions returns {use-system-environment: true,
// allow-unresolved: false}.
func DefaultResolveOptions() ResolveOptions {
	return ResolveOptions{UseSystemEnvironment: true}
}

// NoSystem returns a copy of o with the system environment fallback
// turned off.
func (o ResolveOptions) NoSystem() ResolveOptions {
	o.UseSystemEnvironment = false
	return o
}

func (o ResolveOptions) toResolveOptions() resolve.Options {
	return resolve.Options{UseSystemEnvironment: o.UseSystemEnvironment, AllowUnresolved: o.AllowUnresolved}
}

// ParseString parses HOCON, JSON, or (with Syntax == SyntaxProperties) a
// flat key=value properties file from in-memory text.
func ParseString(input string, opts ParseOptions) (*Config, error) {
	if opts.OriginDescription == "" {
		opts.OriginDescription = "string"
	}
	if opts.Syntax == SyntaxProperties {
		v, err := parsePropertiesText(input, opts.OriginDescription)
		if err != nil {
			return nil, err
		}
		return &Config{root: v}, nil
	}
	v, err := parser.Parse(input, opts.toParserOptions())
	if err != nil {
		return nil, err
	}
	return &Config{root: v}, nil
}

// ParseReader parses from an io.Reader, eagerly consuming it to EOF.
func ParseReader(r io.Reader, opts ParseOptions) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, origin.Wrap(origin.IO, origin.Simple(opts.OriginDescription), err, "read failed")
	}
	return ParseString(string(data), opts)
}

// ParseFile parses a file, detecting Syntax from its extension
// (.conf -> HOCON, .json -> JSON, .properties -> properties) when opts
// doesn't already pin one, per spec.md §6. SyntaxConf is the zero value of
// Syntax, so it counts as not pinned: a .json or .properties file is parsed
// by its extension even when opts.Syntax is SyntaxConf.
func ParseFile(path string, opts ParseOptions) (*Config, error) {
	if opts.OriginDescription == "" {
		opts = opts.WithOriginDescription(path)
	}
	opts = opts.withSyntaxFromExtension(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && opts.AllowMissing {
			return &Config{root: value.EmptyObject(origin.Simple(path))}, nil
		}
		return nil, origin.Wrap(origin.IO, origin.Simple(path), err, "failed to read %s", path)
	}
	return ParseString(string(data), opts)
}

func (o ParseOptions) withSyntaxFromExtension(path string) ParseOptions {
	if o.Syntax != 0 {
		return o
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return o.WithSyntax(SyntaxJSON)
	case ".properties":
		return o.WithSyntax(SyntaxProperties)
	default:
		return o.WithSyntax(SyntaxConf)
	}
}

// ParseProperties builds a Config directly from a flat path->string map,
// per spec.md §1's "properties-format ingestion... path-to-string map
// contract" and §9's scalar/object collision rule.
func ParseProperties(props map[string]string, originDescription string) (*Config, error) {
	v, err := parser.ParseProperties(props, origin.Simple(originDescription))
	if err != nil {
		return nil, err
	}
	return &Config{root: v}, nil
}

// parsePropertiesText parses Java .properties-style "key = value" /
// "key: value" lines (blank lines and #/! comments ignored) into the
// same flat map contract ParseProperties consumes.
func parsePropertiesText(input, originDescription string) (value.Value, error) {
	props := map[string]string{}
	for _, line := range strings.Split(input, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "!") {
			continue
		}
		idx := strings.IndexAny(line, "=:")
		if idx < 0 {
			continue
		}
		key := strings.TrimSpace(line[:idx])
		val := strings.TrimSpace(line[idx+1:])
		props[key] = val
	}
	return parser.ParseProperties(props, origin.Simple(originDescription))
}

// Config is the accessor façade of spec.md §4.6: a wrapper around a root
// value tree exposing path reads, merge, pruning, and resolution.
type Config struct {
	root value.Value
}

// Root returns the raw, possibly-unresolved, underlying value tree.
func (c *Config) Root() value.Value { return c.root }

// Resolve returns a new Config whose root has substitutions resolved
// against itself (and, if requested, the system environment). Resolve is
// idempotent (spec.md §8).
func (c *Config) Resolve(opts ResolveOptions) (*Config, error) {
	resolved, err := resolve.Resolve(c.root, opts.toResolveOptions(), resolve.SystemEnvironment)
	if err != nil {
		return nil, err
	}
	return &Config{root: resolved}, nil
}

// GetValue reads the leaf or subtree at p (spec.md §4.6).
func (c *Config) GetValue(p hpath.Path) (value.Value, error) {
	obj, ok := c.root.(*value.Object)
	if !ok {
		return nil, origin.Newf(origin.Missing, c.root.Origin(), "path %q: root is not an object", p.String())
	}
	v, found := obj.GetPath(p.Keys())
	if !found {
		return nil, origin.Newf(origin.Missing, c.root.Origin(), "no configuration setting found for key %q", p.String())
	}
	if v.ResolveStatus() == value.Unresolved {
		return nil, origin.Newf(origin.NotResolved, v.Origin(), "value at %q still contains unresolved substitutions; call Resolve first", p.String())
	}
	return v, nil
}

// WithFallback merges other onto c as a fallback (spec.md §4.3).
func (c *Config) WithFallback(other *Config) *Config {
	return &Config{root: value.WithFallback(c.root, other.root)}
}

// WithOnlyPath returns a Config retaining only the subtree at p.
func (c *Config) WithOnlyPath(p hpath.Path) *Config {
	obj, ok := c.root.(*value.Object)
	if !ok {
		return &Config{root: value.EmptyObject(c.root.Origin())}
	}
	return &Config{root: obj.WithOnlyPath(p.Keys())}
}

// WithoutPath returns a Config with the subtree at p removed.
func (c *Config) WithoutPath(p hpath.Path) *Config {
	obj, ok := c.root.(*value.Object)
	if !ok {
		return c
	}
	return &Config{root: obj.WithoutPath(p.Keys())}
}

// WithValue returns a Config with v set at p, creating intermediate
// objects as needed.
func (c *Config) WithValue(p hpath.Path, v value.Value) *Config {
	obj, ok := c.root.(*value.Object)
	if !ok {
		obj = value.EmptyObject(c.root.Origin())
	}
	return &Config{root: obj.WithValueAt(p.Keys(), v)}
}

// RenderJSON renders the (fully resolved) config tree as compact JSON
// (spec.md §6, "Render modes").
func (c *Config) RenderJSON() string {
	return value.RenderJSON(c.root)
}

// RenderFormatted renders the (fully resolved) config tree as indented
// HOCON annotated with each field's origin and any comments that origin
// carries (spec.md §6, "Render modes"). The parser does not attach source
// comments to origins, so a parsed config renders with origin lines only.
func (c *Config) RenderFormatted() string {
	return value.RenderFormatted(c.root)
}

// Empty returns a Config with no fields, the immutable empty-config
// sentinel of spec.md §5.
func Empty() *Config {
	return &Config{root: emptyConfigSentinel}
}

var emptyConfigSentinel = value.EmptyObject(origin.Simple("empty config"))
