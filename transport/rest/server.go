package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const (
	readHeaderTimeout = 10 * time.Second
	idleTimeout       = 30 * time.Second
	shutdownTimeout   = 5 * time.Second
)

type Server struct {
	logger *slog.Logger
	echo   *echo.Echo
	port   string
}

// New - builds the HTTP API. socket, when not nil, is served on /ws.
func New(logger *slog.Logger, port string, allowOrigins []string, game gameUseCase, socket http.Handler) *Server {
	log := logger.With("component", "rest")

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// no read/write timeouts, hijacked websocket connections would inherit them
	e.Server.ReadHeaderTimeout = readHeaderTimeout
	e.Server.IdleTimeout = idleTimeout

	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{AllowOrigins: allowOrigins}))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogValuesFunc: func(_ echo.Context, values middleware.RequestLoggerValues) error {
			log.Debug("request",
				"method", values.Method,
				"uri", values.URI,
				"status", values.Status,
				"latency", values.Latency,
			)
			return nil
		},
	}))

	handler := newGameHandler(log, game)

	e.GET("/ping", ping)

	games := e.Group("/games")
	games.POST("", handler.createGame)
	games.GET("/:id", handler.getGame)
	games.DELETE("/:id", handler.deleteGame)
	games.POST("/:id/reset", handler.resetGame)
	games.POST("/:id/next-move", handler.nextMove)
	games.POST("/:id/human-move", handler.humanMove)
	games.POST("/:id/move", handler.move)

	// id-less routes of the first version of the API, all bound to DefaultGameID
	e.POST("/reset", handler.resetDefault)
	e.POST("/nextMove", handler.nextMove)
	e.POST("/makeHumanMove", handler.humanMove)
	e.POST("/move", handler.move)

	if socket != nil {
		e.GET("/ws", echo.WrapHandler(socket))
	}

	return &Server{
		logger: log,
		echo:   e,
		port:   port,
	}
}

func (that *Server) Handler() http.Handler {
	return that.echo
}

// Start - serves until ctx is canceled, then shuts down gracefully.
func (that *Server) Start(ctx context.Context) error {
	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := that.echo.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("could not shut down HTTP server", "error", err)
		}
	}()

	if err := that.echo.Start(":" + that.port); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
