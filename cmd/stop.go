package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/triad369/launchpad/internal/orchestrator"
)

var stopAll bool

var stopCmd = &cobra.Command{
	Use:   "stop [apps...]",
	Short: "Stop running apps",
	Long: `Sends a termination signal to each app's recorded pid (best-effort)
and marks the runtime record stopped. --all stops every app present in
the runtime state file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		hub, err := loadHub()
		if err != nil {
			return err
		}
		orch := orchestrator.New(hub)

		var results []orchestrator.Result
		if stopAll {
			results = orch.StopAll()
		} else {
			apps, err := loadApps(hub, args)
			if err != nil {
				return err
			}
			results = orch.Stop(apps)
		}
		if orchestrator.AnyFailed(results) {
			return fmt.Errorf("stop finished with failures")
		}
		return nil
	},
}

func init() {
	stopCmd.Flags().BoolVar(&stopAll, "all", false, "stop every app in the runtime state file")
	rootCmd.AddCommand(stopCmd)
}
