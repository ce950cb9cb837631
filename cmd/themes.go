package cmd

import (
	"fmt"

	"github.com/gookit/color"
	"github.com/spf13/cobra"
	"github.com/zctpy/paiban/pkg/parser"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List available themes",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := getConfig(cmd)
		if err != nil {
			return err
		}
		for _, t := range cfg.Themes.Themes() {
			marker := " "
			if t.ID == cfg.Theme.ID {
				marker = color.Green.Sprint("➜")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %-10s %s\n", marker, color.HEX(t.PreviewColor).Sprint("■"), t.ID, t.Name)
		}
		return nil
	},
}

var outlineCmd = &cobra.Command{
	Use:   "outline [file]",
	Short: "Print the blocks a document is parsed into",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := readInput(cmd, args)
		if err != nil {
			return err
		}
		for _, b := range parser.Parse(doc) {
			for _, line := range parser.Line(b) {
				fmt.Fprintf(cmd.OutOrStdout(), "%-10s %s\n", color.Cyan.Sprint(b.Kind()), line)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(themesCmd)
	rootCmd.AddCommand(outlineCmd)
}
