package http

import (
	"errors"
	"net/http"
	"strings"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/generated/servers"
	"orders/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// respondError maps use case errors onto the API error shape. A missing order always
// gets the same 404 body. Anything unrecognised is logged and hidden behind a 500.
func (s *Server) respondError(ctx echo.Context, err error) error {
	var code int
	switch {
	case errs.IsValidation(err):
		code = http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrObjectNotFound):
		return orderNotFound(ctx)
	case errors.Is(err, errs.ErrEditConflict),
		errors.Is(err, errs.ErrStatusTransitionInvalid),
		errors.Is(err, commands.ErrIdempotentRequestInProgress):
		code = http.StatusConflict
	default:
		s.logger.ErrorContext(ctx.Request().Context(), "request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err,
		)
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}

	return ctx.JSON(code, servers.Error{
		Code:    code,
		Message: strings.ReplaceAll(err.Error(), "\n", "; "),
	})
}

func invalidBody(ctx echo.Context) error {
	return ctx.JSON(http.StatusUnprocessableEntity, servers.Error{
		Code:    http.StatusUnprocessableEntity,
		Message: "Invalid request body",
	})
}

func orderNotFound(ctx echo.Context) error {
	return ctx.JSON(http.StatusNotFound, servers.Error{
		Code:    http.StatusNotFound,
		Message: "Order not found",
	})
}
