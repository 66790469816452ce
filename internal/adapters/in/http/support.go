package http

import (
	"net/http"

	"levaai/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// AskSupport handles POST /api/v1/support.
func (s *Server) AskSupport(ctx echo.Context) error {
	var body SupportQuestion
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	query, err := queries.NewAskSupportQuery(body.Question)
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	answer, err := s.askSupportHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, SupportAnswer{Answer: answer})
}
