package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/triad369/launchpad/internal/orchestrator"
)

var syncCmd = &cobra.Command{
	Use:   "sync [apps...]",
	Short: "Clone or pull the registered app repos",
	Long:  "Clones each app's repo into the workspace if missing, pulls the latest otherwise. Without arguments, syncs the enabled-by-default apps.",
	RunE: func(cmd *cobra.Command, args []string) error {
		hub, err := loadHub()
		if err != nil {
			return err
		}
		apps, err := loadApps(hub, args)
		if err != nil {
			return err
		}

		results := orchestrator.New(hub).Sync(apps)
		if orchestrator.AnyFailed(results) {
			return fmt.Errorf("sync finished with failures")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(syncCmd)
}
