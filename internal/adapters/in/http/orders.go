package http

import (
	"net/http"

	"levaai/internal/core/application/usecases/commands"
	"levaai/internal/core/application/usecases/queries"
	"levaai/internal/core/domain/model/kernel"
	"levaai/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// GetOrders handles GET /api/v1/orders?view=all|active|history|available.
func (s *Server) GetOrders(ctx echo.Context) error {
	query, err := queries.NewGetOrdersQuery(ctx.QueryParam("view"))
	if err != nil {
		return s.badRequest(ctx, "Unknown view: "+ctx.QueryParam("view"))
	}

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]Order, len(orders))
	for i, o := range orders {
		response[i] = toOrder(o)
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders. The price comes from the quote.
func (s *Server) CreateOrder(ctx echo.Context) error {
	senderID, err := s.actingUser(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body NewOrder
	if err = ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	quoteID, err := kernel.UUIDFromString(body.QuoteID)
	if err != nil {
		return s.badRequest(ctx, "Invalid quote id: "+err.Error())
	}

	shipment, err := order.NewShipment(
		body.PickupAddress, body.DeliveryAddress, body.ProductType,
		body.Dimensions, body.Weight, body.Description,
	)
	if err != nil {
		return s.badRequest(ctx, "Invalid order data: "+err.Error())
	}
	if body.LatLng != nil {
		ll, llErr := kernel.NewLatLng(body.LatLng.Lat, body.LatLng.Lng)
		if llErr != nil {
			return s.badRequest(ctx, "Invalid order data: "+llErr.Error())
		}
		if shipment, err = shipment.WithLatLng(ll); err != nil {
			return s.badRequest(ctx, "Invalid order data: "+err.Error())
		}
	}

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), senderID, shipment, quoteID)
	if err != nil {
		return s.badRequest(ctx, "Invalid order data: "+err.Error())
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toOrder(queries.NewOrderResponse(created)))
}

// UpdateOrderStatus handles PATCH /api/v1/orders/:id/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	actor, err := s.actingUser(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.badRequest(ctx, "Invalid order id")
	}

	var body StatusUpdate
	if err = ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}
	status, err := order.ParseStatus(body.Status)
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, status, actor)
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	updated, err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrder(queries.NewOrderResponse(updated)))
}
