package http

import (
	"net/http"

	"levaai/internal/core/application/usecases/queries"
	"levaai/internal/core/domain/model/estimate"

	"github.com/labstack/echo/v4"
)

// CreateEstimate handles POST /api/v1/estimates. It always answers with an
// estimate unless a newer request from the same sender superseded it; the
// provenance field tells generated results from the fallback.
func (s *Server) CreateEstimate(ctx echo.Context) error {
	senderID, err := s.actingUser(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body EstimateRequest
	if err = ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	req := estimate.NewRequest(body.Product, body.Dimensions, body.Weight, body.Distance)
	query, err := queries.NewGetEstimateQuery(senderID, req)
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	result, err := s.getEstimateHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Estimate{
		QuoteID:        result.QuoteID,
		Category:       result.Category,
		EstimatedPrice: result.EstimatedPrice,
		Reasoning:      result.Reasoning,
		RiskLevel:      result.RiskLevel,
		Provenance:     result.Provenance,
		ExpiresAt:      result.ExpiresAt,
	})
}
