package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/zctpy/paiban/pkg/ai"
)

func actionNames() []string {
	names := make([]string, len(ai.Actions))
	for i, a := range ai.Actions {
		names[i] = string(a)
	}
	return names
}

var aiCmd = &cobra.Command{
	Use:       "ai <action> [file]",
	Short:     "Rewrite a document with Gemini",
	Long:      "Rewrite a document with Gemini. Actions: " + strings.Join(actionNames(), ", "),
	Args:      cobra.RangeArgs(1, 2),
	ValidArgs: actionNames(),
	RunE: func(cmd *cobra.Command, args []string) error {
		action, err := ai.ParseAction(args[0])
		if err != nil {
			return fmt.Errorf("%w (available: %s)", err, strings.Join(actionNames(), ", "))
		}
		cfg, err := getConfig(cmd)
		if err != nil {
			return err
		}
		logger, err := cfg.logger(false)
		if err != nil {
			return err
		}
		defer logger.Close()

		doc, err := readInput(cmd, args[1:])
		if err != nil {
			return err
		}

		g := ai.NewGemini(ai.GeminiConfig{APIKey: cfg.APIKey, Model: cfg.AIModel, BaseURL: cfg.AIBaseURL}, logger)
		result, err := g.Transform(cmd.Context(), doc, action)
		if err != nil {
			return err
		}

		merged := ai.Apply(doc, result, action)
		if write, _ := cmd.Flags().GetBool("write"); write && len(args) == 2 {
			return os.WriteFile(args[1], []byte(merged), 0644)
		}
		return writeOutput(cmd, "", merged)
	},
}

func init() {
	rootCmd.AddCommand(aiCmd)

	aiCmd.Flags().BoolP("write", "w", false, "write the result back to the file")
}
