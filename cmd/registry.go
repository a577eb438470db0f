package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/triad369/launchpad/internal/registry"
)

var registryValidate bool

var registryCmd = &cobra.Command{
	Use:   "registry",
	Short: "Show the app registry",
	Long:  "Prints the registered apps with their repos, commands and port ranges. --validate only checks the file and prints nothing on success.",
	RunE: func(cmd *cobra.Command, args []string) error {
		hub, err := loadHub()
		if err != nil {
			return err
		}
		if err := registry.Ensure(hub.RegistryPath()); err != nil {
			return err
		}
		apps, err := registry.Load(hub.RegistryPath())
		if err != nil {
			return err
		}

		if registryValidate {
			fmt.Printf("%s %s is valid (%d apps)\n", green("✓"), hub.RegistryPath(), len(apps))
			return nil
		}

		fmt.Printf("%s (%s)\n\n", bold("📚 App Registry"), hub.RegistryPath())
		w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tTYPE\tPORTS\tENABLED\tREPO")
		for _, app := range apps {
			enabled := red("no")
			if app.EnabledByDefault {
				enabled = green("yes")
			}
			fmt.Fprintf(w, "%s\t%s\t%d-%d\t%s\t%s\n",
				app.Name, app.AppType, app.DefaultPort, app.PortMax, enabled, app.RepoURL)
		}
		return w.Flush()
	},
}

func init() {
	registryCmd.Flags().BoolVar(&registryValidate, "validate", false, "only validate the registry file")
	rootCmd.AddCommand(registryCmd)
}
