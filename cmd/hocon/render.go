package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var formatted bool

var renderCmd = &cobra.Command{
	Use:   "render <file>",
	Short: "resolve a configuration file and render it as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadResolved(args[0])
		if err != nil {
			return err
		}
		if formatted {
			fmt.Println(cfg.RenderFormatted())
		} else {
			fmt.Println(cfg.RenderJSON())
		}
		return nil
	},
}

func init() {
	renderCmd.Flags().BoolVar(&formatted, "formatted", false, "render annotated, indented HOCON instead of compact JSON")
	rootCmd.AddCommand(renderCmd)
}
