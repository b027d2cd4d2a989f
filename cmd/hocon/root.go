// Command hocon is a small CLI around the hocon package: parse a file,
// resolve it, and read values or render the result.
package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	rootCmd = &cobra.Command{
		Use:          "hocon",
		Short:        "hocon",
		Long:         `Parse, resolve, and inspect HOCON/JSON/properties configuration files.`,
		SilenceUsage: true,
	}

	noSystemEnv bool
	verbose     bool
	resolveMd   = resolveModeStrict
)

// registerFlags adds this command's persistent flags to flags.
func registerFlags(flags *pflag.FlagSet) {
	flags.BoolVar(&noSystemEnv, "no-system-env", false, "do not fall back to OS environment variables when resolving substitutions")
	flags.BoolVarP(&verbose, "verbose", "v", false, "log parse and resolve tracing to stderr")
	flags.Var(&resolveMd, "resolve-mode", `"strict" (default) fails on any unresolved substitution; "lenient" leaves unresolved fields absent`)
}

// Execute runs the root command, returning any error a subcommand's RunE
// produced.
func Execute() error {
	registerFlags(rootCmd.PersistentFlags())
	cobra.OnInitialize(func() {
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}
	})
	return rootCmd.Execute()
}
