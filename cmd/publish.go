package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/triad369/launchpad/internal/audit"
	"github.com/triad369/launchpad/internal/coevo"
	"github.com/triad369/launchpad/internal/config"
	"github.com/triad369/launchpad/internal/pack"
)

var (
	publishIn      string
	publishZip     string
	publishTitle   string
	publishBoard   string
	publishSummary string
	publishRepoURL string
	publishTags    string
)

var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Pack and publish an artifact to a CoEvo board",
	Long: `Creates a CoEvo thread, posts the summary, uploads the zip artifact
and attaches it to the thread. With --in the directory is packed first;
with --zip an existing artifact is uploaded as-is.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if publishIn == "" && publishZip == "" {
			return fmt.Errorf("provide --in or --zip")
		}

		hub, err := loadHub()
		if err != nil {
			return err
		}

		zipPath := publishZip
		if publishIn != "" {
			info, err := os.Stat(publishIn)
			if err != nil || !info.IsDir() {
				return fmt.Errorf("not a directory: %s", publishIn)
			}
			if zipPath == "" {
				zipPath = filepath.Join("build", filepath.Base(publishIn)+".zip")
			}
			if _, err := pack.Pack(publishIn, zipPath, pack.Meta{
				ProjectName: filepath.Base(publishIn),
				Target:      "python",
			}); err != nil {
				return err
			}
		}
		if _, err := os.Stat(zipPath); err != nil {
			return fmt.Errorf("missing zip: %s", zipPath)
		}

		board := publishBoard
		if board == "" {
			board = hub.CoevoBoardSlug
		}

		client, err := clientFromHub(hub)
		if err != nil {
			return err
		}

		var tags []string
		for _, tag := range strings.Split(publishTags, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				tags = append(tags, tag)
			}
		}

		res, err := client.PublishZip(zipPath, publishTitle, board, publishSummary, publishRepoURL, tags)
		if err != nil {
			return err
		}

		audit.New(hub.Root).Write("publish", map[string]any{
			"thread_id": res.ThreadID, "artifact_id": res.ArtifactID,
			"board": res.BoardSlug, "thread_url": res.ThreadURL,
		})

		fmt.Printf("%s Published to CoEvo\n", green("✅"))
		fmt.Printf("  Thread:   %d\n", res.ThreadID)
		fmt.Printf("  Artifact: %d\n", res.ArtifactID)
		fmt.Printf("  Board:    %s\n", res.BoardSlug)
		fmt.Printf("  URL:      %s\n", cyan(res.ThreadURL))
		return nil
	},
}

// clientFromHub builds a CoEvo client from the resolved config, logging in
// with handle+password when no token is configured.
func clientFromHub(hub config.Hub) (*coevo.Client, error) {
	token := hub.CoevoToken
	if token == "" {
		if hub.CoevoHandle == "" || hub.CoevoPassword == "" {
			return nil, fmt.Errorf("missing COEVO_TOKEN or (COEVO_HANDLE + COEVO_PASSWORD)")
		}
		var err error
		token, err = coevo.Login(hub.CoevoBaseURL, hub.CoevoHandle, hub.CoevoPassword)
		if err != nil {
			return nil, err
		}
	}
	return coevo.New(hub.CoevoBaseURL, token), nil
}

func init() {
	publishCmd.Flags().StringVar(&publishIn, "in", "", "directory to pack and upload")
	publishCmd.Flags().StringVar(&publishZip, "zip", "", "zip artifact to upload (or auto-created from --in)")
	publishCmd.Flags().StringVar(&publishTitle, "title", "", "thread title")
	publishCmd.Flags().StringVar(&publishBoard, "board", "", "board slug (default from config)")
	publishCmd.Flags().StringVar(&publishSummary, "summary", "Built with Launchpad.", "post body (markdown)")
	publishCmd.Flags().StringVar(&publishRepoURL, "repo-url", "", "optional repo link to add to CoEvo")
	publishCmd.Flags().StringVar(&publishTags, "tags", "369,launchpad", "comma-separated tags for the repo link")
	publishCmd.MarkFlagRequired("title")
	rootCmd.AddCommand(publishCmd)
}
