package requestcontext

import (
	"context"

	"github.com/gaze-network/auction-network/pkg/logger"
	"github.com/gofiber/fiber/v2"
)

// WithIdempotencyKey adds the client's idempotency key, when sent, to the context logger
// so retried mutations can be correlated in logs.
func WithIdempotencyKey(header string) Option {
	return func(ctx context.Context, c *fiber.Ctx) (context.Context, error) {
		if key := c.Get(header); key != "" {
			ctx = logger.WithContext(ctx, "idempotencyKey", key)
		}
		return ctx, nil
	}
}
