package cmd

import (
	"context"

	"github.com/MyelinBots/leaderboard-go/config"
	"github.com/MyelinBots/leaderboard-go/internal/db"
	"github.com/MyelinBots/leaderboard-go/internal/db/repositories/user"
	"github.com/MyelinBots/leaderboard-go/internal/logger"
	"github.com/MyelinBots/leaderboard-go/internal/services/leaderboard"
	"github.com/MyelinBots/leaderboard-go/internal/services/random"
	"github.com/MyelinBots/leaderboard-go/internal/services/users"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert the starter roster when the user table is empty",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.LoadConfigOrPanic()

		database, err := db.NewDB(cfg.DBConfig)
		if err != nil {
			return err
		}
		if err := database.RunMigrations(); err != nil {
			return err
		}

		userRepo := user.NewUserRepository(database)
		leaderboardService := leaderboard.NewLeaderboardService(userRepo)
		userService := users.NewUserService(userRepo, leaderboardService, random.NewRand())

		result, err := userService.SeedUsers(context.Background())
		if err != nil {
			return err
		}
		if !result.Seeded {
			logger.Info("users already exist, no seeding performed")
			return nil
		}

		logger.Success("seeded %d users", len(result.Leaderboard))
		return nil
	},
}
