package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/chris-martin/hocon-go"
	"github.com/chris-martin/hocon-go/value"
	"github.com/spf13/cobra"
)

var envCmd = &cobra.Command{
	Use:   "env <file>",
	Short: "list the environment variables a configuration file's substitutions may read",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := hocon.ParseFile(args[0], hocon.DefaultParseOptions())
		if err != nil {
			return err
		}
		names := substitutionEnvNames(cfg.Root())
		sort.Strings(names)
		for _, name := range names {
			if val, ok := os.LookupEnv(name); ok {
				fmt.Printf("%s=%s\n", name, val)
			} else {
				fmt.Printf("%s=<unset>\n", name)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(envCmd)
}

// substitutionEnvNames walks v collecting the dotted path string of every
// ${...} substitution still present in the tree, since unresolved
// substitutions are the only places an environment lookup can occur
// (spec.md §4.5's environment fallback).
func substitutionEnvNames(v value.Value) []string {
	var names []string
	var walk func(value.Value)
	walk = func(v value.Value) {
		switch n := v.(type) {
		case *value.Substitution:
			names = append(names, strings.Join(n.Path.Keys(), "."))
		case *value.Object:
			for _, key := range n.Keys() {
				walk(n.Get(key))
			}
		case *value.List:
			for _, item := range n.Items {
				walk(item)
			}
		case *value.DelayedMerge:
			for _, item := range n.Stack {
				walk(item)
			}
		}
	}
	walk(v)
	return names
}
