// Package http exposes the marketplace over a JSON API for the mobile client.
package http

import (
	"net/http"
	"strings"

	"levaai/internal/core/application/usecases/commands"
	"levaai/internal/core/application/usecases/queries"
	"levaai/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// UserIDHeader carries the acting user. Authentication is out of scope; a
// missing header means the demo user.
const UserIDHeader = "X-User-ID"

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler
	toggleRoleHandler        commands.ToggleRoleCommandHandler
	registerDriverHandler    commands.RegisterDriverCommandHandler

	// Query handlers
	getOrdersHandler   queries.GetOrdersQueryHandler
	getProfileHandler  queries.GetProfileQueryHandler
	getEstimateHandler queries.GetEstimateQueryHandler
	askSupportHandler  queries.AskSupportQueryHandler

	demoUserID kernel.UserID
	logger     zerolog.Logger
}

type Handlers struct {
	CreateOrder       commands.CreateOrderCommandHandler
	UpdateOrderStatus commands.UpdateOrderStatusCommandHandler
	ToggleRole        commands.ToggleRoleCommandHandler
	RegisterDriver    commands.RegisterDriverCommandHandler

	GetOrders   queries.GetOrdersQueryHandler
	GetProfile  queries.GetProfileQueryHandler
	GetEstimate queries.GetEstimateQueryHandler
	AskSupport  queries.AskSupportQueryHandler
}

func NewServer(h Handlers, demoUserID kernel.UserID, logger zerolog.Logger) *Server {
	return &Server{
		createOrderHandler:       h.CreateOrder,
		updateOrderStatusHandler: h.UpdateOrderStatus,
		toggleRoleHandler:        h.ToggleRole,
		registerDriverHandler:    h.RegisterDriver,
		getOrdersHandler:         h.GetOrders,
		getProfileHandler:        h.GetProfile,
		getEstimateHandler:       h.GetEstimate,
		askSupportHandler:        h.AskSupport,
		demoUserID:               demoUserID,
		logger:                   logger.With().Str("component", "http").Logger(),
	}
}

// Register mounts the API routes on e.
func (s *Server) Register(e *echo.Echo) {
	e.GET("/health", s.Health)

	v1 := e.Group("/api/v1")
	v1.GET("/me", s.GetProfile)
	v1.POST("/me/role/toggle", s.ToggleRole)
	v1.POST("/me/driver-registration", s.RegisterDriver)
	v1.POST("/estimates", s.CreateEstimate)
	v1.POST("/orders", s.CreateOrder)
	v1.GET("/orders", s.GetOrders)
	v1.PATCH("/orders/:id/status", s.UpdateOrderStatus)
	v1.POST("/support", s.AskSupport)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

func (s *Server) actingUser(ctx echo.Context) (kernel.UserID, error) {
	raw := strings.TrimSpace(ctx.Request().Header.Get(UserIDHeader))
	if raw == "" {
		return s.demoUserID, nil
	}
	return kernel.NewUserID(raw)
}

func (s *Server) badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: message})
}
