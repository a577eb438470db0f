package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/triad369/launchpad/internal/doctor"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that the host has the tools the apps need",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%s\n\n", bold("🩺 Launchpad Doctor"))

		report := doctor.Report()
		tools := make([]string, 0, len(report))
		for tool := range report {
			tools = append(tools, tool)
		}
		sort.Strings(tools)
		for _, tool := range tools {
			mark := red("✗ missing")
			if report[tool] {
				mark = green("✓ found")
			}
			fmt.Printf("  %-10s %s\n", tool, mark)
		}

		if total, available := doctor.HostMemory(); total > 0 {
			fmt.Printf("\n  memory: %.1f GiB available of %.1f GiB\n",
				float64(available)/(1<<30), float64(total)/(1<<30))
		}
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
