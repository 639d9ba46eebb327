package echoapi

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// roleMiddleware admits a request when the authenticated user holds any
// role in the allow-list. 403 otherwise; the JWT middleware upstream
// already turned a missing session into a 401.
func roleMiddleware(kit *authKit, roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			claims, err := kit.getContextClaims(ctx)
			if err != nil {
				return errors.Wrap(err, "getting context claims")
			}
			if claims.HasAnyRole(roles...) {
				return next(ctx)
			}
			return errHttpForbidden
		}
	}
}

var (
	reqCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "malezi_http_requests_total",
			Help: "Number of HTTP requests processed.",
		},
		[]string{"method", "path", "status"},
	)
	reqDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "malezi_http_request_duration_seconds",
			Help: "HTTP request latencies.",
		},
		[]string{"method", "path"},
	)
)

func metricsMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			start := time.Now()
			err := next(ctx)
			if err != nil {
				ctx.Error(err)
			}
			path := ctx.Path()
			reqCount.WithLabelValues(
				ctx.Request().Method, path, strconv.Itoa(ctx.Response().Status),
			).Inc()
			reqDuration.WithLabelValues(ctx.Request().Method, path).
				Observe(time.Since(start).Seconds())
			return nil
		}
	}
}
