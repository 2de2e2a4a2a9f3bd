package idempotency

import (
	"strings"
	"time"

	"github.com/Cleverse/go-utilities/utils"
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/auction-network/common/errs"
	"github.com/gaze-network/auction-network/pkg/logger"
	"github.com/gaze-network/auction-network/pkg/logger/slogx"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
)

const (
	DefaultHeader = "Idempotency-Key"
	DefaultTTL    = 24 * time.Hour

	// ReplayedHeader is set on responses served from the store.
	ReplayedHeader = "Idempotent-Replayed"

	maxKeyLength = 255
)

var mutatingMethods = []string{fiber.MethodPost, fiber.MethodPut, fiber.MethodPatch, fiber.MethodDelete}

type Config struct {
	Store  Store
	Header string        // Default is "Idempotency-Key"
	TTL    time.Duration // Default is 24h

	// OnReplay is called every time a cached response is served.
	OnReplay func(c *fiber.Ctx)
}

// New guards mutating requests that carry an idempotency key against double submission.
// The first request with a key runs the handler; repeats get the stored response, and
// repeats that arrive while the first is still running are rejected with 409.
func New(config Config) fiber.Handler {
	header := utils.Default(config.Header, DefaultHeader)
	ttl := utils.Default(config.TTL, DefaultTTL)

	return func(c *fiber.Ctx) error {
		key := strings.TrimSpace(c.Get(header))
		if key == "" || !lo.Contains(mutatingMethods, c.Method()) {
			return c.Next()
		}
		if len(key) > maxKeyLength {
			return errs.NewPublicErrorKind(errs.InvalidArgument, "idempotency key is too long")
		}

		ctx := c.UserContext()
		storeKey := c.Method() + " " + c.Path() + " " + key

		cached, err := config.Store.Reserve(ctx, storeKey, ttl)
		if err != nil {
			if errors.Is(err, errs.Conflict) {
				return errs.NewPublicErrorKind(errs.Conflict, "a request with the same idempotency key is in progress")
			}
			return errors.Wrap(err, "failed to reserve idempotency key")
		}
		if cached != nil {
			if config.OnReplay != nil {
				config.OnReplay(c)
			}
			c.Set(ReplayedHeader, "true")
			if cached.ContentType != "" {
				c.Set(fiber.HeaderContentType, cached.ContentType)
			}
			return errors.WithStack(c.Status(cached.Status).Send(cached.Body))
		}

		if err := c.Next(); err != nil {
			if rErr := config.Store.Release(ctx, storeKey); rErr != nil {
				logger.ErrorContext(ctx, "failed to release idempotency key", rErr, slogx.String("key", key))
			}
			return errors.WithStack(err)
		}

		status := c.Response().StatusCode()
		if status >= fiber.StatusInternalServerError {
			if err := config.Store.Release(ctx, storeKey); err != nil {
				logger.ErrorContext(ctx, "failed to release idempotency key", err, slogx.String("key", key))
			}
			return nil
		}

		resp := Response{
			Status:      status,
			ContentType: string(c.Response().Header.ContentType()),
			Body:        append([]byte(nil), c.Response().Body()...),
		}
		if err := config.Store.Save(ctx, storeKey, resp, ttl); err != nil {
			logger.ErrorContext(ctx, "failed to save idempotent response", err, slogx.String("key", key))
		}
		return nil
	}
}
