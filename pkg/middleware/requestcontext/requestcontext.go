// Package requestcontext copies per-request values (request id, client IP,
// idempotency key) from the fiber context into the user context and its logger.
package requestcontext

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/auction-network/common"
	"github.com/gaze-network/auction-network/pkg/logger"
	"github.com/gofiber/fiber/v2"
)

// Option extracts one value from the request. Options run in order and may
// depend on values stored by earlier options.
type Option func(ctx context.Context, c *fiber.Ctx) (context.Context, error)

// rejectError stops the chain and answers the client with status.
type rejectError struct {
	status  int
	message string
}

func (r rejectError) Error() string {
	return r.message
}

func New(opts ...Option) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var err error
		ctx := c.UserContext()
		for i, opt := range opts {
			ctx, err = opt(ctx, c)
			if err == nil {
				continue
			}

			var rErr rejectError
			if errors.As(err, &rErr) {
				return c.Status(rErr.status).JSON(common.HttpResponse[any]{Error: &rErr.message})
			}

			logger.ErrorContext(ctx, "failed to extract request context", err,
				slog.String("module", "requestcontext"),
				slog.Int("optionIndex", i),
			)
			message := "internal server error"
			return c.Status(http.StatusInternalServerError).JSON(common.HttpResponse[any]{Error: &message})
		}
		c.SetUserContext(ctx)
		return c.Next()
	}
}
