package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/triad369/launchpad/internal/audit"
	"github.com/triad369/launchpad/internal/pack"
)

var (
	packIn           string
	packZip          string
	packName         string
	packTarget       string
	packPrompt       string
	packIncludeBuild bool
)

var packCmd = &cobra.Command{
	Use:   "pack",
	Short: "Zip a directory into a verified artifact",
	Long: `Walks the directory (excluding VCS and build noise), writes an
artifact.manifest.json with per-file SHA-256 digests, and zips everything
deterministically so unchanged content repacks byte-identically.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		info, err := os.Stat(packIn)
		if err != nil || !info.IsDir() {
			return fmt.Errorf("not a directory: %s", packIn)
		}

		name := packName
		if name == "" {
			name = filepath.Base(packIn)
		}

		manifestPath, err := pack.Pack(packIn, packZip, pack.Meta{
			ProjectName:  name,
			Target:       packTarget,
			Prompt:       packPrompt,
			IncludeBuild: packIncludeBuild,
		})
		if err != nil {
			return err
		}

		if hub, err := loadHub(); err == nil {
			audit.New(hub.Root).Write("pack", map[string]any{
				"in": packIn, "zip": packZip, "manifest": manifestPath,
			})
		}

		fmt.Printf("%s Manifest: %s\n", green("✅"), manifestPath)
		fmt.Printf("%s Zipped %s → %s\n", green("✅"), packIn, packZip)
		return nil
	},
}

func init() {
	packCmd.Flags().StringVar(&packIn, "in", "", "directory to zip")
	packCmd.Flags().StringVar(&packZip, "zip", filepath.Join("build", "artifact.zip"), "zip output path")
	packCmd.Flags().StringVar(&packName, "name", "", "project name for manifest metadata (default: directory name)")
	packCmd.Flags().StringVar(&packTarget, "target", "python", "project target for manifest metadata")
	packCmd.Flags().StringVar(&packPrompt, "prompt", "", "prompt text for manifest hash metadata")
	packCmd.Flags().BoolVar(&packIncludeBuild, "include-build", false, "keep dist/build/.next output in the artifact")
	packCmd.MarkFlagRequired("in")
	rootCmd.AddCommand(packCmd)
}
