package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/niksmo/shop-feed/config"
	"github.com/niksmo/shop-feed/internal/app"
	"github.com/niksmo/shop-feed/pkg/sigctx"
)

const closeTimeout = 5 * time.Second

// One-shot export: generate the feed into the configured output
// directory and exit. Meant to run from cron or a container job.
func main() {
	sigCtx, closeApp := sigctx.NotifyContext()
	defer closeApp()

	cfg := config.Load()

	feedService := app.New(sigCtx, cfg)

	exportErr := feedService.Export(sigCtx)

	ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	defer cancel()
	feedService.Close(ctx)

	if exportErr != nil {
		slog.Error("failed to export feed", "err", exportErr)
		os.Exit(1)
	}
}
