// Package order provides the DeliveryOrder aggregate of the LevaAí marketplace
// and the status state machine that every lifecycle change goes through.
//
// The package includes:
//   - Order: the aggregate root holding the shipment, price, sender, driver and status
//   - Shipment: the sender's description of what travels from where to where
//   - Status: the closed set of lifecycle states and the single transition table
//
// Key business rules:
//   - Price is fixed at creation and never recomputed
//   - The sender never changes; the driver is set exactly once, when the order is claimed
//   - Status moves pending -> accepted -> picked_up -> in_transit -> delivered,
//     accepted may skip straight to in_transit, and pending or accepted orders may be cancelled
//   - A rejected transition leaves the order untouched
package order
