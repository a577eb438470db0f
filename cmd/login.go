package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/triad369/launchpad/internal/coevo"
)

var loginHandle string

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Exchange CoEvo credentials for an access token",
	Long:  "Logs into the configured CoEvo server and prints the access token to export as COEVO_TOKEN.",
	RunE: func(cmd *cobra.Command, args []string) error {
		hub, err := loadHub()
		if err != nil {
			return err
		}

		handle := loginHandle
		if handle == "" {
			handle = hub.CoevoHandle
		}
		if handle == "" {
			return fmt.Errorf("provide --handle or set COEVO_HANDLE")
		}

		password := hub.CoevoPassword
		if password == "" {
			fmt.Printf("Password for %s: ", handle)
			reader := bufio.NewReader(os.Stdin)
			line, err := reader.ReadString('\n')
			if err != nil {
				return fmt.Errorf("failed to read password: %w", err)
			}
			password = strings.TrimSpace(line)
		}

		token, err := coevo.Login(hub.CoevoBaseURL, handle, password)
		if err != nil {
			return err
		}

		fmt.Printf("\n%s Logged in to %s\n", green("✅"), hub.CoevoBaseURL)
		fmt.Printf("%s export COEVO_TOKEN=%s\n", yellow("👋 Tip:"), token)
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginHandle, "handle", "", "CoEvo handle")
	rootCmd.AddCommand(loginCmd)
}
