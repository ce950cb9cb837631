package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/zctpy/paiban/pkg/config"
	"github.com/zctpy/paiban/pkg/log"
	"github.com/zctpy/paiban/pkg/theme"
)

// programCfg is what every command needs, built from the config file,
// the environment and the flags
type programCfg struct {
	config.Config
	Themes *theme.Catalog
	Theme  *theme.Theme
}

func getConfig(cmd *cobra.Command) (programCfg, error) {
	dir, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadConfig(dir)
	if err != nil {
		return programCfg{}, err
	}

	if logPath, _ := cmd.Flags().GetString("log"); logPath != "" {
		cfg.LogPath = logPath
	}
	if themeFile, _ := cmd.Flags().GetString("themes"); themeFile != "" {
		cfg.ThemeFile = themeFile
	}

	catalog := theme.Builtin()
	if cfg.ThemeFile != "" {
		custom, err := theme.LoadFile(cfg.ThemeFile)
		if err != nil {
			return programCfg{}, err
		}
		catalog = catalog.With(custom)
	}

	t := catalog.Default()
	if id, _ := cmd.Flags().GetString("theme"); id != "" {
		if t, err = catalog.Get(id); err != nil {
			return programCfg{}, fmt.Errorf("%w (available: %v)", err, catalog.IDs())
		}
	}

	return programCfg{Config: cfg, Themes: catalog, Theme: t}, nil
}

// logger opens the configured log file. Without one, commands stay quiet
// unless quiet is false.
func (p programCfg) logger(quiet bool) (log.Logger, error) {
	if p.LogPath == "" && quiet {
		return log.NewEmptyLog(), nil
	}
	return log.New(p.LogPath)
}

// readInput reads the document named by args, stdin without one
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		return string(data), err
	}
	data, err := os.ReadFile(args[0])
	return string(data), err
}

// writeOutput writes s to path, stdout without one
func writeOutput(cmd *cobra.Command, path, s string) error {
	if path == "" || path == "-" {
		_, err := io.WriteString(cmd.OutOrStdout(), s+"\n")
		return err
	}
	return os.WriteFile(path, []byte(s), 0644)
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "paiban",
	Short: "Format Markdown articles into styled HTML for WeChat",
	Long: `Format Markdown articles into styled HTML for WeChat

Paiban understands a small Markdown subset: # to ### headings, > quotes,
- and 1. lists, ![alt](src) images, --- rules, **bold** and [links](url).
The HTML carries every style inline so it survives pasting into the
WeChat editor.

Use 'render' for a one-off conversion, 'watch' to preview while editing
and 'serve' for the HTTP API.
`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute(version string) {
	rootCmd.Version = version
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("theme", "t", "", "theme id (default is the first theme)")
	rootCmd.PersistentFlags().String("themes", "", "YAML file with additional themes")
	rootCmd.PersistentFlags().StringP("log", "l", "", "path to the log file")
	rootCmd.PersistentFlags().String("config", ".", "directory containing paiban.env")
}
