package resolve

import (
	"os"
	"strings"
	"sync"
)

// Environment is the system-environment provider a Substitution falls
// back to when its path is missing from the root (spec.md §4.5.3b).
type Environment interface {
	Lookup(name string) (string, bool)
}

// osEnvironment is the process-wide lazily-initialized environment
// snapshot spec.md §5 requires: captured once, immutable thereafter, so
// that concurrent resolve calls never race on os.Environ.
type osEnvironment struct{}

var (
	osEnvOnce sync.Once
	osEnvVars map[string]string
)

func (osEnvironment) Lookup(name string) (string, bool) {
	osEnvOnce.Do(func() {
		osEnvVars = make(map[string]string)
		for _, kv := range os.Environ() {
			i := strings.IndexByte(kv, '=')
			if i < 0 {
				continue
			}
			osEnvVars[kv[:i]] = kv[i+1:]
		}
	})
	v, ok := osEnvVars[name]
	return v, ok
}

// SystemEnvironment is the default Environment, backed by the process's
// own environment variables.
var SystemEnvironment Environment = osEnvironment{}

// mapEnvironment is a test/embedding-friendly Environment backed by a
// plain map, with no lazy caching since the caller already owns the data.
type mapEnvironment map[string]string

func (m mapEnvironment) Lookup(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}

// NewMapEnvironment builds an Environment from a plain map, for tests and
// for embedders that want to supply their own variable source instead of
// the process environment.
func NewMapEnvironment(vars map[string]string) Environment {
	return mapEnvironment(vars)
}
