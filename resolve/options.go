package resolve

// Options configures a single Resolve call (spec.md §6, Resolve options).
type Options struct {
	UseSystemEnvironment bool
	AllowUnresolved      bool
}

// DefaultOptions returns {use-system-environment: true, allow-unresolved: false}.
func DefaultOptions() Options {
	return Options{UseSystemEnvironment: true}
}

// NoSystem returns a copy of o with the system environment fallback
// turned off.
func (o Options) NoSystem() Options {
	o.UseSystemEnvironment = false
	return o
}
