package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/triad369/launchpad/internal/audit"
	"github.com/triad369/launchpad/internal/config"
	"github.com/triad369/launchpad/internal/registry"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the local hub config and default registry",
	Long:  "Creates the config directory with a config.toml and a starter registry.toml listing the Triad369 apps.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfgPath, err := config.Init(configRoot)
		if err != nil {
			return err
		}
		hub, err := loadHub()
		if err != nil {
			return err
		}
		if err := registry.Ensure(hub.RegistryPath()); err != nil {
			return err
		}

		audit.New(hub.Root).Write("init", map[string]any{"path": cfgPath})

		fmt.Printf("%s Initialized %s\n", green("✅"), cfgPath)
		fmt.Printf("%s Registry at %s\n", green("✅"), hub.RegistryPath())
		fmt.Printf("\n%s Edit the registry, then run %s\n", yellow("👋 Tip:"), cyan("launchpad sync"))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
