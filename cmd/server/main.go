package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/Kisalay21/familytree/internal/logging"
	"github.com/Kisalay21/familytree/internal/server"
	"github.com/Kisalay21/familytree/internal/server/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	app, err := server.NewApp(cfg, logger)

	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)

}
