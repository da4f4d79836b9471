package main

import (
	"log"

	"github.com/MyelinBots/leaderboard-go/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}
