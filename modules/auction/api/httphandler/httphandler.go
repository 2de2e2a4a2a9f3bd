package httphandler

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/auction-network/common/errs"
	"github.com/gaze-network/auction-network/modules/auction/usecase"
	"github.com/gofiber/fiber/v2"
)

type HttpHandler struct {
	usecase *usecase.Usecase
}

func New(usecase *usecase.Usecase) *HttpHandler {
	return &HttpHandler{
		usecase: usecase,
	}
}

const dateLayout = time.DateOnly

// parseBody decodes the JSON request body. Malformed bodies are reported as validation errors.
func parseBody(ctx *fiber.Ctx, out any) error {
	if err := ctx.BodyParser(out); err != nil {
		return errs.WithPublicMessage(errs.WithKind(err, errs.InvalidArgument), "invalid request body")
	}
	return nil
}

func parseDate(field, value string, errList *[]error) time.Time {
	if value == "" {
		return time.Time{}
	}
	date, err := time.Parse(dateLayout, value)
	if err != nil {
		*errList = append(*errList, errors.Errorf("'%s' must be a date formatted as YYYY-MM-DD", field))
	}
	return date
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

func validationError(errList []error) error {
	if len(errList) == 0 {
		return nil
	}
	return errs.WithPublicMessage(errs.WithKind(errors.Join(errList...), errs.InvalidArgument), "validation error")
}
