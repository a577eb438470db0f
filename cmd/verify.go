package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/triad369/launchpad/internal/manifest"
)

var (
	verifyDir string
	verifyZip string
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check a packed directory or zip against its manifest",
	Long: `Recomputes every digest recorded in the artifact manifest and reports
every missing or tampered file before exiting non-zero, so one pass shows
all the damage.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if (verifyDir == "") == (verifyZip == "") {
			return fmt.Errorf("provide exactly one of --dir or --zip")
		}

		var (
			ok     bool
			errs   []string
			target string
		)
		if verifyDir != "" {
			target = verifyDir
			ok, errs = manifest.VerifyDir(verifyDir)
		} else {
			target = verifyZip
			ok, errs = manifest.VerifyZip(verifyZip)
		}

		if ok {
			fmt.Printf("%s %s verified: all digests match\n", green("✅"), target)
			return nil
		}
		fmt.Printf("%s %s failed verification:\n", red("❌"), target)
		for _, e := range errs {
			fmt.Printf("  %s %s\n", red("✗"), e)
		}
		return fmt.Errorf("%d integrity error(s)", len(errs))
	},
}

func init() {
	verifyCmd.Flags().StringVar(&verifyDir, "dir", "", "packed directory to verify")
	verifyCmd.Flags().StringVar(&verifyZip, "zip", "", "zip artifact to verify")
	rootCmd.AddCommand(verifyCmd)
}
