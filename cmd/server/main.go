package main

import (
	"context"
	"embed"
	"log/slog"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/nonogram-server/internal/app"
	"github.com/vancomm/nonogram-server/internal/config"
	"github.com/vancomm/nonogram-server/internal/nonogram"
)

//go:embed migrations/*.sql
var migrations embed.FS

func main() {
	level := slog.LevelInfo
	if config.Development() {
		level = slog.LevelDebug
		nonogram.Log.SetLevel(logrus.DebugLevel)
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	a := app.New(logger, migrations)

	if err := a.Start(ctx); err != nil {
		logger.Error("failed to start server", slog.Any("error", err))
		os.Exit(1)
	}
}
