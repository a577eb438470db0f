package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/triad369/launchpad/internal/audit"
	"github.com/triad369/launchpad/internal/scaffold"
)

var (
	generatePrompt string
	generateOut    string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Scaffold a minimal runnable project",
	Long:  "Writes a tiny runnable project into the output directory so the pack/publish pipeline has something to operate on when no generator tool is installed.",
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := scaffold.Fallback(generatePrompt, generateOut)
		if err != nil {
			return err
		}

		if hub, err := loadHub(); err == nil {
			audit.New(hub.Root).Write("generate", map[string]any{
				"ok": res.OK, "out": res.OutputDir,
			})
		}

		fmt.Printf("%s %s\n", green("✅"), res.Message)
		fmt.Printf("%s Scaffold at %s\n", green("✅"), res.OutputDir)
		return nil
	},
}

func init() {
	generateCmd.Flags().StringVar(&generatePrompt, "prompt", "A tiny app that says hello.", "prompt describing the project")
	generateCmd.Flags().StringVar(&generateOut, "out", "build/out", "output directory for the scaffold")
	rootCmd.AddCommand(generateCmd)
}
