package main

import (
	"fmt"
	"os"

	"github.com/amd4k/ZHV/pkg/config"
	"github.com/amd4k/ZHV/pkg/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const serviceName = "catalog"

var (
	appConfig *config.Config
	log       *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Jewelry storefront catalog service",
	Long: `catalog serves the storefront product catalog and the admin CRUD API for
products, categories and platform purchase links.

Configuration is read from the environment (and .env when present).`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(serviceName)
		if err != nil {
			return fmt.Errorf("load configuration: %w", err)
		}
		appConfig = cfg

		l, err := logger.InitLogger(logger.LogConfig{
			Level:       cfg.Log.Level,
			Environment: cfg.Server.Env,
			ServiceName: cfg.ServiceName,
		})
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		log = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if log != nil {
			_ = log.Sync()
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(userCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
