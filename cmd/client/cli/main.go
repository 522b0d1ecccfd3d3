package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/Kisalay21/familytree/internal/client/cli"
	"github.com/Kisalay21/familytree/internal/client/config"
	"github.com/Kisalay21/familytree/internal/logging"
)

func main() {

	cfg := config.LoadConfig()

	logFile, err := os.OpenFile("familytree.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer logFile.Close()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(logFile, nil)))

	app, err := cli.NewApp(cfg, logger)

	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(context.Background())

}
