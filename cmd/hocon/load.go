package main

import (
	"github.com/chris-martin/hocon-go"
	"github.com/sirupsen/logrus"
)

// loadResolved parses path (syntax auto-detected from its extension) and
// resolves it, honoring --no-system-env.
func loadResolved(path string) (*hocon.Config, error) {
	logrus.Debugf("parsing %s", path)
	cfg, err := hocon.ParseFile(path, hocon.DefaultParseOptions())
	if err != nil {
		return nil, err
	}
	ropts := hocon.DefaultResolveOptions()
	if noSystemEnv {
		ropts = ropts.NoSystem()
	}
	ropts.AllowUnresolved = resolveMd.allowUnresolved()
	logrus.Debugf("resolving %s", path)
	return cfg.Resolve(ropts)
}
