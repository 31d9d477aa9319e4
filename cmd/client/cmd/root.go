package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"

	"medvault/cmd/client/cmd/auth"
	"medvault/cmd/client/cmd/record"
	"medvault/cmd/client/cmd/types"
	"medvault/internal/app/client"
	"medvault/internal/app/client/config"
	"medvault/internal/utils/logger"
)

var (
	cfg        *config.Config
	log        *slog.Logger
	app        *client.App
	gatewayURL string
)

var rootCmd = &cobra.Command{
	Use:   "medvault",
	Short: "MedVault - client-side vault for medical records",
	Long: `MedVault keeps a local vault of medical records addressed by their
content identifiers. Records are resolved through an IPFS pinning gateway,
mirrored into durable local storage and filtered by the current user's role.`,
	PersistentPreRunE: setupApp,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func setupApp(cmd *cobra.Command, _ []string) error {
	cfg = config.MustLoad()

	if gatewayURL != "" {
		cfg.GatewayURL = gatewayURL
	}

	log = logger.New(cfg.Env)

	var err error
	app, err = client.New(cfg, log)
	if err != nil {
		return fmt.Errorf("init application: %w", err)
	}

	cmd.SetContext(context.WithValue(cmd.Context(), types.ClientAppKey, app))
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&gatewayURL, "gateway", "", "content gateway base URL")

	rootCmd.AddCommand(auth.Cmd)
	rootCmd.AddCommand(record.Cmd)
}
