package main

import (
	"fmt"

	"github.com/chris-martin/hocon-go/path"
	"github.com/chris-martin/hocon-go/value"
	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <file> <path>",
	Short: "resolve a configuration file and print the value at a path",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := path.Parse(args[1])
		if err != nil {
			return fmt.Errorf("invalid path %q: %w", args[1], err)
		}
		cfg, err := loadResolved(args[0])
		if err != nil {
			return err
		}
		v, err := cfg.GetValue(p)
		if err != nil {
			return err
		}
		fmt.Println(value.RenderJSON(v))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
}
