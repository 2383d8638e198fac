package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/footsteps/internal/server"
	"github.com/dmitrijs2005/footsteps/internal/server/config"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Printf("config error: %v", err)
		os.Exit(1)
	}

	ctx := context.Background()
	app, err := server.NewApp(ctx, cfg)
	if err != nil {
		log.Printf("failed to start server: %v", err)
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil {
		os.Exit(1)
	}
}
