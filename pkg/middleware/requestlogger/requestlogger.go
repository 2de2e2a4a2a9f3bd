package requestlogger

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/auction-network/pkg/logger"
	"github.com/gaze-network/auction-network/pkg/middleware/idempotency"
	"github.com/gaze-network/auction-network/pkg/middleware/requestcontext"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
)

type Config struct {
	// Disable drops INFO lines. Failed requests are always logged.
	Disable           bool     `mapstructure:"disable"`
	WithRequestHeader bool     `mapstructure:"request_header"`
	HiddenHeaders     []string `mapstructure:"hidden_headers"`
}

// defaultHiddenHeaders are never logged, even with WithRequestHeader.
var defaultHiddenHeaders = []string{fiber.HeaderAuthorization, fiber.HeaderCookie}

func New(config Config) fiber.Handler {
	hidden := lo.Associate(append(config.HiddenHeaders, defaultHiddenHeaders...), func(h string) (string, struct{}) {
		return strings.ToLower(strings.TrimSpace(h)), struct{}{}
	})

	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		latency := time.Since(start)
		status := c.Response().StatusCode()

		level := slog.LevelInfo
		if err != nil || status >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		if config.Disable && level == slog.LevelInfo {
			return errors.WithStack(err)
		}

		request := []slog.Attr{
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
			slog.String("route", c.Route().Path),
			slog.String("ip", requestcontext.ClientIP(c.UserContext())),
			slog.String("userAgent", string(c.Context().UserAgent())),
			slog.Int("length", len(c.Body())),
		}
		if params := c.AllParams(); len(params) > 0 {
			request = append(request, slog.Any("params", params))
		}
		if query := c.Request().URI().QueryString(); len(query) > 0 {
			request = append(request, slog.String("query", string(query)))
		}
		if config.WithRequestHeader {
			headers := make([]any, 0)
			for k, v := range c.GetReqHeaders() {
				if _, ok := hidden[strings.ToLower(k)]; ok {
					continue
				}
				headers = append(headers, slog.Any(k, v))
			}
			request = append(request, slog.Group("header", headers...))
		}

		response := []slog.Attr{
			slog.Int("status", status),
			slog.Int("length", len(c.Response().Body())),
			slog.Bool("replayed", string(c.Response().Header.Peek(idempotency.ReplayedHeader)) == "true"),
		}

		attrs := []slog.Attr{
			slog.String("event", "api_request"),
			slog.Int64("latency", latency.Milliseconds()),
			slog.String("latencyHuman", latency.String()),
			{Key: "request", Value: slog.GroupValue(request...)},
			{Key: "response", Value: slog.GroupValue(response...)},
		}
		if level == slog.LevelError {
			logErr := err
			if logErr == nil {
				logErr = fiber.NewError(status)
			}
			attrs = append(attrs, slog.Any(logger.ErrorKey, logErr))
		}

		logger.LogAttrs(c.UserContext(), level, "Request Completed", attrs...)
		return errors.WithStack(err)
	}
}
