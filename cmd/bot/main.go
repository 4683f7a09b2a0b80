// Package main contains the entrypoint for the quote bot application.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"github.com/doston9471/telegram-quote-bot/internal/bot"
	"github.com/doston9471/telegram-quote-bot/internal/config"
	"github.com/doston9471/telegram-quote-bot/internal/database"
	"github.com/doston9471/telegram-quote-bot/internal/logger"
	"github.com/doston9471/telegram-quote-bot/internal/metrics"
	"github.com/doston9471/telegram-quote-bot/internal/scheduler"
	"github.com/doston9471/telegram-quote-bot/internal/server"
	"github.com/doston9471/telegram-quote-bot/internal/telegram"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	exitCode := run(ctx)
	stop()
	os.Exit(exitCode)
}

// run initializes all application components (config, logger, db, sender,
// processor, HTTP server, scheduler), runs them until the context is
// cancelled, and returns an exit code.
func run(ctx context.Context) int {
	configPath := flag.String("config", "./config.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		slog.Error("Failed to load configuration", "path", *configPath, "error", err)
		return 1
	}

	log := logger.NewLogger(cfg.Logger.Level, cfg.Logger.JSON)
	slog.SetDefault(log)
	log.Info("Logger initialized", "level", cfg.Logger.Level, "json", cfg.Logger.JSON)

	db, err := database.NewDB(cfg.Database.Path)
	if err != nil {
		log.Error("Failed to connect to database", "path", cfg.Database.Path, "error", err)
		return 1
	}
	defer database.CloseDB(db)
	store := database.NewStore(db, log)

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(registry)

	sender, err := telegram.NewSender(cfg.Telegram.Token, log)
	if err != nil {
		log.Error("Failed to create Telegram sender", "error", err)
		return 1
	}

	processor := bot.NewProcessor(bot.Deps{
		Logger:  log,
		Store:   store,
		Sender:  sender,
		Metrics: m,
	})

	srv := server.New(server.Deps{
		Logger:    log,
		Config:    cfg,
		Store:     store,
		Processor: processor,
		Metrics:   m,
		Registry:  registry,
	})

	sched, err := scheduler.New(log, &cfg.Scheduler, scheduler.RegisterAllTasks(scheduler.TaskDeps{
		Logger: log,
		Store:  store,
	}))
	if err != nil {
		log.Error("Failed to create scheduler", "error", err)
		return 1
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("Starting HTTP server", "addr", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		log.Info("Shutdown signal received, stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	g.Go(func() error {
		if err := sched.Start(); err != nil {
			return err
		}

		<-gCtx.Done()
		log.Info("Shutdown signal received, stopping scheduler...")
		return sched.Stop()
	})

	log.Info("Quote bot running. Waiting for shutdown signal or error...")
	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("Quote bot stopped due to error", "error", err)
		return 1
	}

	log.Info("Quote bot stopped gracefully")
	return 0
}
