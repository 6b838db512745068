package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/nwbound/ferrydeck/internal/api/noaa"
	"github.com/nwbound/ferrydeck/internal/api/wsf"
	"github.com/nwbound/ferrydeck/internal/config"
	"github.com/nwbound/ferrydeck/internal/ferry"
	"github.com/nwbound/ferrydeck/internal/notify"
	"github.com/nwbound/ferrydeck/internal/server"
	"github.com/nwbound/ferrydeck/internal/timetable"
	"github.com/nwbound/ferrydeck/internal/watch"
)

var CLI struct {
	Config string   `help:"Path to config file" default:"config.yaml" type:"path"`
	Serve  ServeCmd `cmd:"" default:"1" help:"Run the ferry conditions HTTP API"`
	Watch  WatchCmd `cmd:"" help:"Monitor a route and push alerts on disruptions"`
}

type appCtx struct {
	cfg    *config.Config
	logger *logrus.Logger
}

func main() {
	kctx := kong.Parse(&CLI)

	// Setup structured logging with logfmt
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetLevel(logrus.DebugLevel)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableColors: true,
		FullTimestamp: true,
	})

	// Optional .env for local development; secrets stay out of config.yaml
	_ = godotenv.Load()

	cfg, err := config.Load(CLI.Config)
	if err != nil {
		logger.WithField("error", err).Fatal("failed to load config")
	}

	if err := kctx.Run(&appCtx{cfg: cfg, logger: logger}); err != nil {
		logger.WithField("error", err).Fatal("command failed")
	}
}

func buildEngine(app *appCtx) (*ferry.Engine, error) {
	store, err := timetable.NewStore()
	if err != nil {
		return nil, err
	}

	var feeds ferry.LiveFeeds
	if !app.cfg.Feeds.Disabled {
		feeds = wsf.NewClient(app.cfg.Feeds.BaseURL, app.cfg.Feeds.APIKey)
	}

	return ferry.NewEngine(store, feeds, ferry.Options{
		Commute: ferry.CommuteWindows{
			MorningStart: app.cfg.Heuristics.MorningStart,
			MorningEnd:   app.cfg.Heuristics.MorningEnd,
			EveningStart: app.cfg.Heuristics.EveningStart,
			EveningEnd:   app.cfg.Heuristics.EveningEnd,
		},
		FeedTimeout:    time.Duration(app.cfg.Feeds.TimeoutMS) * time.Millisecond,
		DepartureCount: app.cfg.Heuristics.DepartureCount,
	}, app.logger)
}

type ServeCmd struct{}

func (c *ServeCmd) Run(app *appCtx) error {
	engine, err := buildEngine(app)
	if err != nil {
		return err
	}

	observer := noaa.NewClient(app.cfg.Weather.BaseURL)
	srv := server.New(app.cfg.Server.Port, engine, observer,
		app.cfg.Weather.Latitude, app.cfg.Weather.Longitude, app.logger)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		app.logger.WithField("signal", sig).Info("received signal, shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}

type WatchCmd struct{}

func (c *WatchCmd) Run(app *appCtx) error {
	pushoverToken := os.Getenv("PUSHOVER_TOKEN")
	pushoverUser := os.Getenv("PUSHOVER_USER")
	if pushoverToken == "" || pushoverUser == "" {
		app.logger.Fatal("PUSHOVER_TOKEN and PUSHOVER_USER environment variables are required")
	}

	engine, err := buildEngine(app)
	if err != nil {
		return err
	}

	notifier := notify.NewNotifier(pushoverToken, pushoverUser, app.logger)
	watcher := watch.NewWatcher(engine, notifier, app.logger,
		app.cfg.Watch.Route, app.cfg.Watch.Direction,
		time.Duration(app.cfg.Watch.IntervalMinutes)*time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigCh
		app.logger.WithField("signal", sig).Info("received signal, shutting down")
		cancel()
	}()

	app.logger.WithFields(logrus.Fields{
		"route":    app.cfg.Watch.Route,
		"interval": app.cfg.Watch.IntervalMinutes,
	}).Info("starting route watch")

	watcher.Start(ctx)
	<-ctx.Done()
	watcher.Stop()
	app.logger.Info("watch stopped")
	return nil
}
