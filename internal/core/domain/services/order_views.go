package services

import "levaai/internal/core/domain/model/order"

// View names a derived subset of the order list.
type View string

const (
	ViewAll       View = "all"
	ViewActive    View = "active"
	ViewHistory   View = "history"
	ViewAvailable View = "available"
)

// ParseView returns ViewAll for a blank name and false for an unknown one.
func ParseView(name string) (View, bool) {
	switch v := View(name); v {
	case "":
		return ViewAll, true
	case ViewAll, ViewActive, ViewHistory, ViewAvailable:
		return v, true
	default:
		return "", false
	}
}

// Apply selects the view's subset of orders.
func (v View) Apply(orders []*order.Order) []*order.Order {
	switch v {
	case ViewActive:
		return ActiveOrders(orders)
	case ViewHistory:
		return HistoryOrders(orders)
	case ViewAvailable:
		return AvailableOrders(orders)
	default:
		return filter(orders, func(*order.Order) bool { return true })
	}
}

// ActiveOrders keeps orders that are pending, accepted, picked up or in transit.
// ActiveOrders and HistoryOrders partition any order list.
func ActiveOrders(orders []*order.Order) []*order.Order {
	return filter(orders, func(o *order.Order) bool { return o.Status().IsActive() })
}

// HistoryOrders keeps delivered and cancelled orders.
func HistoryOrders(orders []*order.Order) []*order.Order {
	return filter(orders, func(o *order.Order) bool { return o.Status().IsTerminal() })
}

// AvailableOrders keeps the orders a driver may claim: exactly the pending ones.
func AvailableOrders(orders []*order.Order) []*order.Order {
	return filter(orders, func(o *order.Order) bool { return o.Status() == order.Pending })
}

func filter(orders []*order.Order, keep func(*order.Order) bool) []*order.Order {
	out := make([]*order.Order, 0, len(orders))
	for _, o := range orders {
		if keep(o) {
			out = append(out, o)
		}
	}
	return out
}
