// Package kernel provides the value objects shared by every LevaAí aggregate.
//
// The package includes:
//   - UUID: identifier for orders and quotes, wrapping github.com/google/uuid
//   - UserID: opaque, non-blank identifier of a marketplace user
//   - Money: BRL currency amount backed by github.com/shopspring/decimal
//   - LatLng: optional map coordinate attached to an order for display
//
// All values are immutable and safe for concurrent use. Zero values are
// invalid and fail Validate; use the constructors.
package kernel
