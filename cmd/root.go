/*
Launchpad — a local hub CLI for the Triad369 app family.
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/triad369/launchpad/internal/config"
	"github.com/triad369/launchpad/internal/registry"
)

var (
	green  = color.New(color.FgGreen).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
)

var configRoot string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "launchpad",
	Short: "Local hub for cloning, running and shipping your app repos",
	Long: fmt.Sprintf(`%s

Manage a registry of sibling app repos from one place:
clone them, install deps, run them on free local ports,
pack them into verified zip artifacts, and publish to CoEvo.

%s
  %s  Fetch or update every registered repo
  %s  Start apps with ports allocated automatically
  %s  Zip + manifest any directory, tamper-evident
  %s  Push artifacts to a CoEvo board in one command

Run '%s' to see available commands.
`,
		bold("🚀 Launchpad Hub"),
		bold("Highlights:"),
		green("sync   "),
		green("run    "),
		green("pack   "),
		green("publish"),
		cyan("launchpad --help"),
	),
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("\n%s %s\n\n", green("✨ Welcome to"), bold("Launchpad"))
		fmt.Println(bold("Quick Start:"))
		fmt.Printf("  %s - Initialize %s\n", cyan("launchpad init"), config.DefaultRoot)
		fmt.Printf("  %s - Clone all registered repos\n", cyan("launchpad sync"))
		fmt.Printf("  %s - Start the enabled apps\n\n", cyan("launchpad run"))
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\n%s %v\n", red("❌ Error:"), err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configRoot, "config-root", config.DefaultRoot,
		"hub config directory")
}

// loadHub resolves the hub configuration for a command invocation.
func loadHub() (config.Hub, error) {
	return config.Load(configRoot)
}

// loadApps materializes the registry if needed, loads it and resolves the
// requested app names (empty args pick the enabled-by-default apps).
func loadApps(hub config.Hub, names []string) ([]registry.AppDescriptor, error) {
	if err := registry.Ensure(hub.RegistryPath()); err != nil {
		return nil, err
	}
	apps, err := registry.Load(hub.RegistryPath())
	if err != nil {
		return nil, err
	}
	return registry.Select(apps, names)
}
