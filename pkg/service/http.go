package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	echo "github.com/labstack/echo/v4"
	"github.com/romashorodok/meeting-authority/pkg/protocol"
	"github.com/romashorodok/meeting-authority/pkg/variables"
	"go.uber.org/atomic"
	"go.uber.org/fx"
)

// RequestCounter counts every request the router serves. The health
// endpoint reports it alongside uptime.
type RequestCounter struct {
	served atomic.Int64
}

func (c *RequestCounter) Served() int64 {
	return c.served.Load()
}

func (c *RequestCounter) Middleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		c.served.Inc()
		return next(ctx)
	}
}

func NewRequestCounter() *RequestCounter {
	return &RequestCounter{}
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			requestID := uuid.NewString()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			logger.Info("request",
				slog.String("request_id", requestID),
				slog.String("method", c.Request().Method),
				slog.String("path", c.Request().URL.Path),
				slog.Int("status", c.Response().Status),
				slog.Duration("duration", time.Since(start)),
			)
			return nil
		}
	}
}

type httpServer_Params struct {
	fx.In

	Lifecycle   fx.Lifecycle
	Controllers []protocol.HttpResolvable `group:"http.controller"`
	Counter     *RequestCounter
	Logger      *slog.Logger
}

func httpErrorHandler(e *echo.Echo, logger *slog.Logger) func(err error, c echo.Context) {
	return func(err error, c echo.Context) {
		logger.Error(err.Error(), slog.String("request", fmt.Sprintf("%+v", c.Request())))
		e.DefaultHTTPErrorHandler(err, c)
	}
}

func httpServer(params httpServer_Params) error {
	router := echo.New()
	router.HideBanner = true
	router.HTTPErrorHandler = httpErrorHandler(router, params.Logger)
	router.Use(requestLogger(params.Logger), params.Counter.Middleware)

	for _, controller := range params.Controllers {
		if err := controller.Resolve(router); err != nil {
			return err
		}
	}

	addr := fmt.Sprintf(":%s", variables.Env(variables.HTTP_PORT_NAME, variables.HTTP_PORT_DEFAULT))

	params.Lifecycle.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				if err := router.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
					// Fail fast: a dead listener outside a request handler
					// leaves the process in an unknown state.
					params.Logger.Error(fmt.Sprintf("http server stopped: %s", err))
					os.Exit(1)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return router.Shutdown(ctx)
		},
	})
	return nil
}

var HttpModule = fx.Module("http",
	fx.Provide(NewRequestCounter),
	fx.Invoke(httpServer),
)
