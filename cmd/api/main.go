package main

import (
	"os"

	"healthathome/internal/adapter/http/routes"
	"healthathome/internal/config"
	"healthathome/internal/infrastructure/logging"
	"healthathome/pkg/dateonly"

	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// @title           Health At Home API
// @version         1.0
// @description     Laboratory exam catalog, home-service quotations, proformas and payments.

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	rootCmd := &cobra.Command{
		Use:          "healthathome-api",
		Short:        "Health At Home lab quotation and proforma service",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(quoteCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
	}
}

// loadConfig reads and validates the configuration and applies the
// process-wide logging and date settings.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logging.Init(cfg.Env)
	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("[config] invalid configuration")
		return nil, err
	}

	dates, err := cfg.Normalizer()
	if err != nil {
		return nil, err
	}
	dateonly.SetDefault(dates)
	return cfg, nil
}

func serve() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log.Info().
		Str("env", cfg.Env).
		Str("port", cfg.Port).
		Str("timezone", cfg.AppTimezone).
		Bool("payment_mock", cfg.PaymentGatewayMock).
		Msg("[app] starting")

	return routes.Run(cfg)
}
