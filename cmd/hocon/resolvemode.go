package main

import "fmt"

// resolveMode is a pflag.Value implementing --resolve-mode=strict|lenient:
// strict (the default) fails on any unresolved substitution; lenient sets
// ResolveOptions.AllowUnresolved so a partially-resolved tree renders with
// its holes left as absent fields instead of erroring.
type resolveMode string

const (
	resolveModeStrict  resolveMode = "strict"
	resolveModeLenient resolveMode = "lenient"
)

func (m *resolveMode) String() string { return string(*m) }

func (m *resolveMode) Set(s string) error {
	switch resolveMode(s) {
	case resolveModeStrict, resolveModeLenient:
		*m = resolveMode(s)
		return nil
	default:
		return fmt.Errorf("must be %q or %q", resolveModeStrict, resolveModeLenient)
	}
}

func (m *resolveMode) Type() string { return "resolveMode" }

func (m resolveMode) allowUnresolved() bool { return m == resolveModeLenient }
