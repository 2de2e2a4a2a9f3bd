package errorhandler

import (
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/auction-network/common"
	"github.com/gaze-network/auction-network/common/errs"
	"github.com/gaze-network/auction-network/pkg/logger"
	"github.com/gaze-network/auction-network/pkg/logger/slogx"
	"github.com/gofiber/fiber/v2"
)

// kindStatus is checked in order, the first matching kind wins.
var kindStatus = []struct {
	kind   errs.ErrorKind
	status int
}{
	{errs.NotFound, http.StatusNotFound},
	{errs.InvalidArgument, http.StatusUnprocessableEntity},
	{errs.InvalidState, http.StatusConflict},
	{errs.Conflict, http.StatusConflict},
	{errs.Unsupported, http.StatusBadRequest},
}

// StatusFromError resolves the HTTP status for a handled error kind.
// ok is false for errors that should be treated as internal.
func StatusFromError(err error) (status int, ok bool) {
	for _, ks := range kindStatus {
		if errors.Is(err, ks.kind) {
			return ks.status, true
		}
	}
	return http.StatusInternalServerError, false
}

func errorResponse(ctx *fiber.Ctx, status int, message string) error {
	return errors.WithStack(ctx.Status(status).JSON(common.HttpResponse[any]{
		Error: &message,
	}))
}

func NewHTTPErrorHandler() func(ctx *fiber.Ctx, err error) error {
	return func(ctx *fiber.Ctx, err error) error {
		if e := new(errs.PublicError); errors.As(err, &e) {
			status, ok := StatusFromError(err)
			if !ok {
				status = http.StatusBadRequest
			}
			return errorResponse(ctx, status, e.Message())
		}
		if e := new(fiber.Error); errors.As(err, &e) {
			return errorResponse(ctx, e.Code, e.Message)
		}
		if status, ok := StatusFromError(err); ok {
			return errorResponse(ctx, status, err.Error())
		}

		logger.ErrorContext(ctx.UserContext(), "Something went wrong, unhandled api error", err,
			slogx.String("event", "api_unhandled_error"),
		)

		return errorResponse(ctx, http.StatusInternalServerError, "Internal Server Error")
	}
}
