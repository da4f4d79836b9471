package cmd

import (
	"github.com/MyelinBots/leaderboard-go/internal/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the leaderboard HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return server.StartServer()
	},
}
