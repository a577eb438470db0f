package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/triad369/launchpad/internal/orchestrator"
)

var runCmd = &cobra.Command{
	Use:   "run [apps...]",
	Short: "Start apps on automatically allocated ports",
	Long: `Allocates a free port from each app's declared range, substitutes it
into the start command, launches the app detached with logs under the
config root, and records the pid in the runtime state file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		hub, err := loadHub()
		if err != nil {
			return err
		}
		apps, err := loadApps(hub, args)
		if err != nil {
			return err
		}

		results := orchestrator.New(hub).Run(apps)
		if orchestrator.AnyFailed(results) {
			return fmt.Errorf("run finished with failures")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
