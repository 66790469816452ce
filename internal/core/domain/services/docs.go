// Package services holds domain logic that spans aggregates or works over
// collections of them.
//
// The package includes:
//   - ActiveOrders, HistoryOrders, AvailableOrders: pure role-scoped views
//     over an order list
//   - OrderClaimer: the driver claim, which checks the user, the session and
//     the order together
package services
