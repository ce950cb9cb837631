package cmd

import (
	"github.com/spf13/cobra"
	"github.com/zctpy/paiban/pkg/render"
)

var renderCmd = &cobra.Command{
	Use:   "render [file]",
	Short: "Render a Markdown file (or stdin) to styled HTML",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := getConfig(cmd)
		if err != nil {
			return err
		}
		doc, err := readInput(cmd, args)
		if err != nil {
			return err
		}

		out, err := render.New(cfg.Theme).HTML(doc)
		if err != nil {
			return err
		}
		if text, _ := cmd.Flags().GetBool("text"); text {
			if out, err = render.PlainText(out); err != nil {
				return err
			}
		}

		path, _ := cmd.Flags().GetString("out")
		return writeOutput(cmd, path, out)
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringP("out", "o", "", "output file (default is stdout)")
	renderCmd.Flags().Bool("text", false, "output the plain text flavor")
}
