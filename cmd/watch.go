package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/zctpy/paiban/cmd/preview"
)

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Watch a Markdown file and re-render it on every change",
	Long: `Watch a Markdown file and re-render it on every change

The HTML is written next to the document (or to --out) after each save.
Internally the file is polled, bursts of writes are coalesced.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := getConfig(cmd)
		if err != nil {
			return err
		}
		logger, err := cfg.logger(true)
		if err != nil {
			return err
		}
		defer logger.Close()

		abs, err := filepath.Abs(args[0])
		if err != nil {
			return err
		}
		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			out = strings.TrimSuffix(abs, filepath.Ext(abs)) + ".html"
		}
		interval, _ := cmd.Flags().GetDuration("interval")
		debounce, _ := cmd.Flags().GetDuration("debounce")

		dir := filepath.Dir(abs)
		p := preview.NewProgram(preview.ProgramCfg{
			FS:       os.DirFS(dir),
			Name:     filepath.Base(abs),
			Out:      out,
			Themes:   cfg.Themes,
			Theme:    cfg.Theme,
			Interval: interval,
			Debounce: debounce,
			Log:      logger,
		})
		_, err = p.Run()
		return err
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringP("out", "o", "", "output file (default is the document with .html)")
	watchCmd.Flags().DurationP("interval", "i", 200*time.Millisecond, "poll interval duration (e.g. 1s, 500ms...)")
	watchCmd.Flags().Duration("debounce", 100*time.Millisecond, "quiet time before re-rendering")
}
