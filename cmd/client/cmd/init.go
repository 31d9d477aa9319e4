package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Configure the pinning service credentials",
	Long: `Stores the pinning service bearer token in the config directory.
The token is required for pinning new records and files; fetching existing
records through the gateway works without it.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		fmt.Print("Pinning service token: ")
		token, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Println()
		if err != nil {
			return fmt.Errorf("read token: %w", err)
		}

		trimmed := strings.TrimSpace(string(token))
		if trimmed == "" {
			return fmt.Errorf("token must not be empty")
		}

		if err := os.WriteFile(cfg.CredentialsPath(), []byte(trimmed+"\n"), 0600); err != nil {
			return fmt.Errorf("save credentials: %w", err)
		}

		fmt.Printf("Credentials saved to %s\n", cfg.CredentialsPath())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
