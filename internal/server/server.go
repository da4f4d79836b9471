package server

import (
	"fmt"
	"net/http"

	"github.com/MyelinBots/leaderboard-go/config"
	"github.com/MyelinBots/leaderboard-go/internal/api"
	"github.com/MyelinBots/leaderboard-go/internal/api/handlers"
	"github.com/MyelinBots/leaderboard-go/internal/db"
	"github.com/MyelinBots/leaderboard-go/internal/db/repositories/claimhistory"
	"github.com/MyelinBots/leaderboard-go/internal/db/repositories/user"
	"github.com/MyelinBots/leaderboard-go/internal/logger"
	"github.com/MyelinBots/leaderboard-go/internal/middleware"
	"github.com/MyelinBots/leaderboard-go/internal/services/claims"
	"github.com/MyelinBots/leaderboard-go/internal/services/leaderboard"
	"github.com/MyelinBots/leaderboard-go/internal/services/random"
	"github.com/MyelinBots/leaderboard-go/internal/services/users"
)

// StartServer wires the service together and blocks on the HTTP listener.
// A failed database connection at startup is fatal.
func StartServer() error {
	cfg := config.LoadConfigOrPanic()

	database, err := db.NewDB(cfg.DBConfig)
	if err != nil {
		return fmt.Errorf("database connection failed: %w", err)
	}

	if err := database.RunMigrations(); err != nil {
		return fmt.Errorf("migrations failed: %w", err)
	}

	userRepo := user.NewUserRepository(database)
	historyRepo := claimhistory.NewHistoryRepository(database)

	leaderboardService := leaderboard.NewLeaderboardService(userRepo)
	userService := users.NewUserService(userRepo, leaderboardService, random.NewRand())
	claimService := claims.NewClaimService(userRepo, historyRepo, leaderboardService, random.NewRand())

	handler := handlers.NewHandler(userService, claimService, leaderboardService)
	router := api.SetupRouter(handler)

	addr := fmt.Sprintf(":%d", cfg.AppConfig.Port)
	logger.Success("%s %s listening on %s", cfg.AppConfig.APPName, cfg.AppConfig.Version, addr)

	return http.ListenAndServe(addr, middleware.CORSMiddleware(router))
}
