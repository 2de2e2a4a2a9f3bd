package requestcontext

import (
	"context"

	"github.com/gaze-network/auction-network/pkg/logger"
	"github.com/gaze-network/auction-network/pkg/logger/slogx"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

type requestIDKey struct{}

// RequestID returns the request id stored by [WithRequestID], or "".
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// WithRequestID reuses the id assigned by the requestid middleware. When that
// middleware is not mounted, the inbound X-Request-ID header is trusted, or a new id is generated.
func WithRequestID() Option {
	return func(ctx context.Context, c *fiber.Ctx) (context.Context, error) {
		id, _ := c.Locals(requestid.ConfigDefault.ContextKey).(string)
		if id == "" {
			id = c.Get(fiber.HeaderXRequestID)
			if id == "" {
				id = uuid.NewString()
			}
			c.Set(fiber.HeaderXRequestID, id)
			c.Locals(requestid.ConfigDefault.ContextKey, id)
		}

		ctx = context.WithValue(ctx, requestIDKey{}, id)
		ctx = logger.WithContext(ctx, slogx.RequestIDKey, id)
		return ctx, nil
	}
}
