package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	adminCmd "github.com/temizmarket/eticaret/admin/cmd"
	"github.com/temizmarket/eticaret/internal/constants"
	"github.com/temizmarket/eticaret/internal/log"
	storefrontCmd "github.com/temizmarket/eticaret/storefront/cmd"
)

func Start() {
	logger := log.InitLogger("/var/log/eticaret.log", os.Getenv("APP_ENV")).
		With().
		Str(log.KeyAppName, constants.AppMainEticaret).
		Str(log.KeyTag, "main Start").
		Logger()

	logger.Info().Msg("adding listener for SIGINT and SIGTERM")
	c, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	logger.Info().Msg("added listener for SIGINT and SIGTERM")

	c = logger.WithContext(c)

	rootCmd := &cobra.Command{Use: "eticaret"}
	commands := []*cobra.Command{
		{
			Use:   "storefront",
			Short: "Run storefront service",
			Run: func(cmd *cobra.Command, args []string) {
				storefrontCmd.RunStorefrontService(cmd.Context())
			},
		},
		{
			Use:   "admin",
			Short: "Run admin service",
			Run: func(cmd *cobra.Command, args []string) {
				adminCmd.RunAdminService(cmd.Context())
			},
		},
	}
	rootCmd.AddCommand(commands...)
	if err := rootCmd.ExecuteContext(c); err != nil {
		logger.Fatal().Err(err).Msgf("error when executing command=%s", err.Error())
	}
}
