package rest

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// RegisterRoutes builds the echo instance with all routes and middleware.
// Uploaded images are served statically from uploadDir under /images/.
func (h *NewsHandler) RegisterRoutes(uploadDir string) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(h.requestLogger)

	e.GET("/", h.Health)
	e.GET("/news", h.News)
	e.GET("/news/:id", h.NewsByID)
	e.POST("/news", h.CreateNews)
	e.POST("/newsLetter", h.Subscribe)
	e.POST("/mail", h.ContactMail)

	e.Static("/images", uploadDir)

	return e
}

func (h *NewsHandler) requestLogger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)
		if err != nil {
			c.Error(err)
		}

		h.log.Info("HTTP request",
			"method", c.Request().Method,
			"path", c.Request().URL.Path,
			"status", c.Response().Status,
			"duration_ms", time.Since(start).Milliseconds(),
			"remote_addr", c.Request().RemoteAddr,
		)

		return nil
	}
}
