package http

import (
	"context"
	"errors"
	"net/http"

	"levaai/internal/core/application/usecases/commands"
	"levaai/internal/core/application/usecases/queries"
	"levaai/internal/core/domain/model/order"
	"levaai/internal/core/domain/model/quote"
	"levaai/internal/core/domain/model/session"
	"levaai/internal/core/domain/model/user"
	"levaai/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusFor maps a use case error to an HTTP status. The first match wins.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrTransitionIsInvalid),
		errors.Is(err, quote.ErrQuoteIsSuperseded),
		errors.Is(err, quote.ErrQuoteIsExpired),
		errors.Is(err, quote.ErrQuoteIsUsed),
		errors.Is(err, quote.ErrQuoteDoesNotMatch),
		errors.Is(err, commands.ErrVerificationInProgress),
		errors.Is(err, user.ErrDriverAlreadyVerified):
		return http.StatusConflict
	case errors.Is(err, session.ErrRegistrationRequired),
		errors.Is(err, session.ErrDriverModeRequired),
		errors.Is(err, order.ErrActorIsNotAllowed):
		return http.StatusForbidden
	case errors.Is(err, commands.ErrVerificationTimedOut):
		return http.StatusGatewayTimeout
	case errors.Is(err, commands.ErrVerificationRejected):
		return http.StatusUnprocessableEntity
	case errors.Is(err, commands.ErrVerificationFailed),
		errors.Is(err, queries.ErrSupportUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, context.Canceled):
		return 499
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) fail(ctx echo.Context, err error) error {
	code := statusFor(err)
	message := err.Error()
	if code == http.StatusInternalServerError {
		s.logger.Error().Err(err).Str("path", ctx.Path()).Msg("request failed")
		message = http.StatusText(code)
	}
	return ctx.JSON(code, Error{Code: code, Message: message})
}
