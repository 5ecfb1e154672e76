package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-pg/pg/v10"
	"github.com/labstack/echo/v4"

	"github.com/Eventhenoob/betay-server/config"
	"github.com/Eventhenoob/betay-server/internal/betay"
	"github.com/Eventhenoob/betay-server/internal/db"
	"github.com/Eventhenoob/betay-server/internal/mail"
	"github.com/Eventhenoob/betay-server/internal/rest"
	"github.com/Eventhenoob/betay-server/internal/rpc"
	"github.com/Eventhenoob/betay-server/internal/storage"
)

type App struct {
	DB     *db.Repository
	Logger *slog.Logger
	Echo   *echo.Echo
	Config *config.Config
}

func New(cfg *config.Config, dbConnect *pg.DB, logger *slog.Logger) *App {
	database := db.New(dbConnect)
	images := storage.NewImageStore(cfg.App.UploadDir, cfg.App.BaseURL)
	mailer := mail.New(mail.Config{
		Host:      cfg.SMTP.Host,
		Port:      cfg.SMTP.Port,
		Username:  cfg.SMTP.Username,
		Password:  cfg.SMTP.Password,
		Sender:    cfg.SMTP.Sender,
		Recipient: cfg.SMTP.Recipient,
	})

	manager := betay.NewManager(database, images, mailer, cfg.App.NewsKey)
	handler := rest.NewNewsHandler(manager, logger)

	e := handler.RegisterRoutes(cfg.App.UploadDir)
	e.Any("/rpc", echo.WrapHandler(rpc.New(logger, manager)))

	return &App{
		DB:     database,
		Logger: logger,
		Echo:   e,
		Config: cfg,
	}
}

func (a *App) Run(ctx context.Context, port int) error {
	a.Echo.Server.ReadTimeout = 30 * time.Second
	a.Echo.Server.WriteTimeout = 30 * time.Second

	addr := fmt.Sprintf(":%d", port)
	return a.Echo.Start(addr)
}

func (a *App) GracefulShutdown(ctx context.Context) error {
	err := a.Echo.Shutdown(ctx)
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}
