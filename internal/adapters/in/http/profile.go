package http

import (
	"net/http"

	"levaai/internal/core/application/usecases/commands"
	"levaai/internal/core/application/usecases/queries"
	"levaai/internal/core/domain/model/kernel"
	"levaai/internal/core/domain/model/user"

	"github.com/labstack/echo/v4"
)

// GetProfile handles GET /api/v1/me.
func (s *Server) GetProfile(ctx echo.Context) error {
	userID, err := s.actingUser(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.respondWithProfile(ctx, userID, http.StatusOK)
}

// ToggleRole handles POST /api/v1/me/role/toggle. An unverified user gets 403
// and should be sent to driver registration.
func (s *Server) ToggleRole(ctx echo.Context) error {
	userID, err := s.actingUser(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewToggleRoleCommand(userID)
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	result, err := s.toggleRoleHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ToggleResult{
		Decision:       result.Decision.String(),
		ActingAsDriver: result.ActingAsDriver,
	})
}

// RegisterDriver handles POST /api/v1/me/driver-registration. The request
// blocks until the document check finishes or times out.
func (s *Server) RegisterDriver(ctx echo.Context) error {
	userID, err := s.actingUser(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body DriverDetails
	if err = ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	details, err := user.NewDriverDetails(body.FullName, body.CPF, body.CNH, body.VehicleModel, body.VehiclePlate)
	if err != nil {
		return s.badRequest(ctx, "Invalid driver data: "+err.Error())
	}

	cmd, err := commands.NewRegisterDriverCommand(userID, details)
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	if _, err = s.registerDriverHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return s.respondWithProfile(ctx, userID, http.StatusOK)
}

func (s *Server) respondWithProfile(ctx echo.Context, userID kernel.UserID, code int) error {
	query, err := queries.NewGetProfileQuery(userID)
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	profile, err := s.getProfileHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(code, toProfile(profile))
}
