package main

import (
	"context"
	"time"

	"github.com/niksmo/shop-feed/config"
	"github.com/niksmo/shop-feed/internal/app"
	"github.com/niksmo/shop-feed/pkg/sigctx"
)

const closeTimeout = 5 * time.Second

func main() {
	sigCtx, closeApp := sigctx.NotifyContext()
	defer closeApp()

	cfg := config.Load()
	cfg.Print()

	feedService := app.New(sigCtx, cfg)

	feedService.Run(closeApp)

	<-sigCtx.Done()
	ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	defer cancel()

	feedService.Close(ctx)
}
