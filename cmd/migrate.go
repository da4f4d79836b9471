package cmd

import (
	"github.com/MyelinBots/leaderboard-go/config"
	"github.com/MyelinBots/leaderboard-go/internal/db"
	"github.com/MyelinBots/leaderboard-go/internal/logger"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database schema migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.LoadConfigOrPanic()

		database, err := db.NewDB(cfg.DBConfig)
		if err != nil {
			return err
		}
		if err := database.RunMigrations(); err != nil {
			return err
		}

		logger.Success("migrations applied")
		return nil
	},
}
