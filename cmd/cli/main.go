package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/minseo-k/fridgekeeper/internal/client/cli"
	"github.com/minseo-k/fridgekeeper/internal/client/config"
	"github.com/minseo-k/fridgekeeper/internal/logging"
)

func main() {
	ctx := context.Background()
	cfg := config.LoadConfig()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)
}
