package queries

import (
	"errors"
	"time"

	"levaai/internal/core/domain/model/order"
	"levaai/internal/core/domain/services"
	"levaai/internal/pkg/errs"
	"levaai/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery lists orders through one of the derived views.
//
// Example:
//
//	query, _ := NewGetOrdersQuery("available")
//	orders, err := handler.Handle(ctx, query)
type GetOrdersQuery struct {
	view services.View

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery accepts all, active, history, available, or blank for all.
func NewGetOrdersQuery(view string) (GetOrdersQuery, error) {
	v, ok := services.ParseView(view)
	if !ok {
		return GetOrdersQuery{}, errs.NewValueIsInvalidError("view")
	}
	return GetOrdersQuery{view: v, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

func (q GetOrdersQuery) View() services.View {
	return q.view
}

// OrderResponse is a read-only snapshot of an order.
type OrderResponse struct {
	ID              string
	SenderID        string
	DriverID        *string
	PickupAddress   string
	DeliveryAddress string
	ProductType     string
	Dimensions      string
	Weight          string
	Description     string
	Price           float64
	Status          string
	CreatedAt       time.Time
	Lat, Lng        *float64
}

func NewOrderResponse(o *order.Order) OrderResponse {
	s := o.Shipment()
	r := OrderResponse{
		ID:              o.ID().String(),
		SenderID:        o.SenderID().String(),
		PickupAddress:   s.PickupAddress(),
		DeliveryAddress: s.DeliveryAddress(),
		ProductType:     s.ProductType(),
		Dimensions:      s.Dimensions(),
		Weight:          s.Weight(),
		Description:     s.Description(),
		Price:           o.Price().Float64(),
		Status:          o.Status().String(),
		CreatedAt:       o.CreatedAt(),
	}
	if d := o.DriverID(); d != nil {
		id := d.String()
		r.DriverID = &id
	}
	if ll := s.LatLng(); ll != nil {
		lat, lng := ll.Lat(), ll.Lng()
		r.Lat, r.Lng = &lat, &lng
	}
	return r
}
