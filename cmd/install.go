package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/triad369/launchpad/internal/orchestrator"
)

var installCmd = &cobra.Command{
	Use:   "install [apps...]",
	Short: "Run each app's install command",
	Long:  "Installs dependencies in each app's directory. Apps without an install command or a synced directory are skipped with a warning.",
	RunE: func(cmd *cobra.Command, args []string) error {
		hub, err := loadHub()
		if err != nil {
			return err
		}
		apps, err := loadApps(hub, args)
		if err != nil {
			return err
		}

		results := orchestrator.New(hub).Install(apps)
		if orchestrator.AnyFailed(results) {
			return fmt.Errorf("install finished with failures")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(installCmd)
}
