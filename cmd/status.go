package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/triad369/launchpad/internal/orchestrator"
)

var statusYAML bool

var statusCmd = &cobra.Command{
	Use:   "status [apps...]",
	Short: "Show each app's stack, process state and health",
	Long: `Reports the detected stack, the recorded pid/port, actual process
liveness and (for running apps with a health path) a best-effort HTTP
health probe. --yaml prints a machine-readable snapshot.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		hub, err := loadHub()
		if err != nil {
			return err
		}
		apps, err := loadApps(hub, args)
		if err != nil {
			return err
		}

		statuses := orchestrator.New(hub).Status(apps)

		if statusYAML {
			data, err := yaml.Marshal(statuses)
			if err != nil {
				return fmt.Errorf("failed to encode status: %w", err)
			}
			fmt.Print(string(data))
			return nil
		}

		fmt.Printf("%s\n\n", bold("🚀 Launchpad Status"))
		w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
		fmt.Fprintln(w, "APP\tSTACK\tRUNNING\tPID\tPORT\tLIVENESS\tHEALTH")
		for _, st := range statuses {
			running := red("no")
			if st.Running {
				running = green("yes")
			}
			health := st.Health
			if health == "" {
				health = "-"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%s\t%s\n",
				st.App, st.Stack, running, st.PID, st.Port, st.Liveness, health)
		}
		return w.Flush()
	},
}

func init() {
	statusCmd.Flags().BoolVar(&statusYAML, "yaml", false, "print status as YAML")
	rootCmd.AddCommand(statusCmd)
}
