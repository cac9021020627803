package main

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/shahzaibahmadpawar1/SoftwareReqiurementApp-backend/internal/config"
	"github.com/shahzaibahmadpawar1/SoftwareReqiurementApp-backend/internal/database"
	"github.com/shahzaibahmadpawar1/SoftwareReqiurementApp-backend/internal/logger"
	"github.com/shahzaibahmadpawar1/SoftwareReqiurementApp-backend/internal/router"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Connect to the database, migrate the schema and serve the API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := bootstrap()
		if err != nil {
			return err
		}

		gin.SetMode(cfg.GinMode)

		if err := database.Migrate(); err != nil {
			return err
		}

		r := router.NewRouter(cfg, database.GetDB())

		logger.Default().Infof("Server starting on :%s", cfg.Port)
		if err := r.Run(":" + cfg.Port); err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	},
}

// bootstrap loads the configuration, sets up logging and opens the database
func bootstrap() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger.InitLogger(cfg.LogLevel)

	if err := database.Connect(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
