package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/niksmo/shop-feed/config"
	"github.com/niksmo/shop-feed/internal/adapter/cdn"
	"github.com/niksmo/shop-feed/internal/adapter/currency"
	"github.com/niksmo/shop-feed/internal/adapter/httphandler"
	"github.com/niksmo/shop-feed/internal/adapter/kafka"
	"github.com/niksmo/shop-feed/internal/adapter/shipping"
	"github.com/niksmo/shop-feed/internal/adapter/storage"
	"github.com/niksmo/shop-feed/internal/core/domain"
	"github.com/niksmo/shop-feed/internal/core/port"
	"github.com/niksmo/shop-feed/internal/core/service"
	"github.com/niksmo/shop-feed/pkg/schema"
	"github.com/twmb/franz-go/pkg/sr"
)

const (
	feedFileName   = "google.xml"
	headerFileName = "google.headers"
)

type App struct {
	ctx        context.Context
	cfg        config.Config
	storage    storage.SQLDB
	serde      schema.Serde
	producer   kafka.FeedRunProducer
	generator  port.FeedGenerator
	httpServer httphandler.HTTPServer
}

func New(ctx context.Context, cfg config.Config) *App {
	app := &App{ctx: ctx, cfg: cfg}

	app.initLogger()
	app.initStorage()
	if cfg.NotifyRuns() {
		app.initSerde()
		app.initProducer()
	}
	app.initCoreService()
	app.initInboundAdapters()

	return app
}

func (app *App) initLogger() {
	opts := &slog.HandlerOptions{Level: app.cfg.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

func (app *App) initStorage() {
	const op = "App.initStorage"

	s, err := storage.NewSQLDB(app.ctx, app.cfg.SQLDB)
	if err != nil {
		app.fallDown(op, err)
	}
	app.storage = s
}

func (app *App) initSerde() {
	const op = "App.initSerde"

	srClient, err := sr.NewClient(sr.URLs(app.cfg.Broker.SchemaRegistryURLs...))
	if err != nil {
		app.fallDown(op, err)
	}

	subject := app.cfg.Broker.FeedRunsTopic + "-value"
	serde, err := schema.NewSerdeFeedRunV1(
		app.ctx,
		schema.SubjectOpt(subject),
		schema.SchemaIdentifierOpt(schema.NewSchemaCreater(srClient)),
	)
	if err != nil {
		app.fallDown(op, err)
	}
	app.serde = serde
}

func (app *App) initProducer() {
	const op = "App.initProducer"

	producer, err := kafka.NewFeedRunProducer(
		kafka.ProducerClientOpt(
			app.ctx, app.cfg.Broker.SeedBrokers, app.cfg.Broker.FeedRunsTopic,
		),
		kafka.ProducerEncoderOpt(app.serde),
	)
	if err != nil {
		app.fallDown(op, err)
	}
	app.producer = producer
}

func (app *App) initCoreService() {
	const op = "App.initCoreService"

	settings := storage.NewSettingsRepository(app.storage)
	catalog := storage.NewCatalogRepository(app.storage)

	baseCode, err := settings.Setting(app.ctx, "base_currency", "shop")
	if err != nil {
		app.fallDown(op, err)
	}

	var notifier port.FeedRunNotifier
	if app.cfg.NotifyRuns() {
		notifier = app.producer
	}

	feed := service.NewGoogleFeed(
		settings,
		catalog,
		currency.New(baseCode),
		shipping.New(settings),
		cdn.New(app.cfg.CDNBaseURL),
		notifier,
	)
	feed.Configure(domain.FeedConfig{IncludeTax: app.cfg.Feed.IncludeTax})
	app.generator = feed
}

func (app *App) initInboundAdapters() {
	mux := http.NewServeMux()
	httphandler.RegisterFeed(mux, app.generator)

	handler := httphandler.NoStore(mux)
	app.httpServer = httphandler.NewHTTPServer(app.cfg.HTTPServerAddr, handler)
}

func (app *App) Run(stopFn context.CancelFunc) {
	go app.httpServer.Run(stopFn)

	slog.Info("application is running")
}

// Export runs one feed generation, writing the document and its
// transport headers as sibling files in the configured output dir.
func (app *App) Export(ctx context.Context) error {
	const op = "App.Export"

	dir := app.cfg.Feed.OutputDir
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	dataFile, err := os.Create(filepath.Join(dir, feedFileName))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer dataFile.Close()

	headerFile, err := os.Create(filepath.Join(dir, headerFileName))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer headerFile.Close()

	if err := app.generator.Generate(ctx, headerFile, dataFile); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (app *App) Close(ctx context.Context) {
	slog.Info("application is closing...")

	app.httpServer.Close(ctx)
	if app.cfg.NotifyRuns() {
		app.producer.Close()
	}
	app.storage.Close()

	slog.Info("application is closed")
}

func (app *App) fallDown(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}
