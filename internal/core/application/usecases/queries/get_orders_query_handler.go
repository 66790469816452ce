package queries

import "context"

// GetOrdersQueryHandler returns the requested view, newest order first.
type GetOrdersQueryHandler struct {
	readModels ReadModelFactory
}

func NewGetOrdersQueryHandler(readModels ReadModelFactory) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{readModels: readModels}
}

func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.readModels.Create().OrderRepository().List(ctx)
	if err != nil {
		return nil, err
	}

	selected := query.View().Apply(orders)
	response := make([]OrderResponse, 0, len(selected))
	for _, o := range selected {
		response = append(response, NewOrderResponse(o))
	}
	return response, nil
}
