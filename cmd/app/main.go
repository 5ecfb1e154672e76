package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-pg/pg/v10"
	"github.com/jackc/pgx"
	"github.com/jackc/pgx/stdlib"
	"github.com/namsral/flag"
	"github.com/pressly/goose/v3"

	"github.com/Eventhenoob/betay-server/config"
	_ "github.com/Eventhenoob/betay-server/docs"
	"github.com/Eventhenoob/betay-server/internal/app"
	"github.com/Eventhenoob/betay-server/internal/db"
)

var (
	flConfig     = flag.String("config", "config.toml", "path to TOML configuration file")
	flDebug      = flag.Bool("debug", false, "enable debug mode")
	flMigrate    = flag.Bool("migrate", false, "apply database migrations before start")
	flMigrations = flag.String("migrations", "migrations", "path to goose migrations directory")
	cfg          config.Config
	lg           *slog.Logger
)

// @title Betay News API
// @version 1.0
// @description Backend API for the betay news site: articles, newsletter subscriptions and contact mail
// @host localhost:3010
// @BasePath /

func main() {
	flag.Parse()

	lg = newLogger(*flDebug)

	_, err := toml.DecodeFile(*flConfig, &cfg)
	if err != nil {
		exitOnError(err)
	}

	if *flMigrate {
		if err := runMigrations(&cfg.Database, *flMigrations); err != nil {
			exitOnError(err)
		}
		lg.Info("database migrations applied")
	}

	dbConnect := pg.Connect(&cfg.Database)
	if *flDebug {
		dbConnect.AddQueryHook(db.NewQueryHook(lg))
	}
	if err := dbConnect.Ping(context.Background()); err != nil {
		dbConnect.Close()
		exitOnError(err)
	}

	service := app.New(&cfg, dbConnect, lg)
	ctx := context.Background()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		err := service.Run(ctx, cfg.App.Port)
		if err != nil {
			lg.Error("service run failed", "error", err)
			quit <- syscall.SIGTERM
		}
	}()

	<-quit
	lg.Info("service stopping")

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err = service.GracefulShutdown(shutdownCtx)
	if err != nil {
		lg.Error("service graceful shutdown failed", "error", err)
	}
}

func runMigrations(opt *pg.Options, dir string) error {
	connConfig, err := pgx.ParseConnectionString(databaseURL(opt))
	if err != nil {
		return fmt.Errorf("parse database URL: %w", err)
	}

	sqldb := stdlib.OpenDB(connConfig)
	defer sqldb.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	if err := goose.Up(sqldb, dir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	return nil
}

func databaseURL(opt *pg.Options) string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=disable",
		opt.User, opt.Password, opt.Addr, opt.Database)
}

func newLogger(debug bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if debug {
		logLevel = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
}

func exitOnError(err error) {
	if err != nil {
		lg.Error("app init failed", "error", err)
		os.Exit(1)
	}
}
