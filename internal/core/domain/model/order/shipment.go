package order

import (
	"errors"
	"strings"

	"levaai/internal/core/domain/model/kernel"
	"levaai/internal/pkg/errs"
	"levaai/internal/pkg/guard"
)

var (
	ErrShipmentIsNotConstructed  = errors.New("Shipment must be created via NewShipment constructor")
	ErrPickupAddressIsRequired   = errs.NewValueIsRequiredError("pickup address")
	ErrDeliveryAddressIsRequired = errs.NewValueIsRequiredError("delivery address")
)

// Shipment is what the sender typed into the create-order form. Addresses are
// required free text; product type, dimensions, weight and description are
// descriptive and may be empty.
type Shipment struct { //nolint:recvcheck //using for validation
	pickupAddress   string
	deliveryAddress string
	productType     string
	dimensions      string
	weight          string
	description     string
	latLng          *kernel.LatLng

	guard guard.ConstructorGuard
}

// NewShipment trims every field and requires both addresses.
func NewShipment(pickupAddress, deliveryAddress, productType, dimensions, weight, description string) (Shipment, error) {
	s := Shipment{
		productType: strings.TrimSpace(productType),
		dimensions:  strings.TrimSpace(dimensions),
		weight:      strings.TrimSpace(weight),
		description: strings.TrimSpace(description),
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setPickupAddress(pickupAddress),
		s.setDeliveryAddress(deliveryAddress),
	); err != nil {
		return Shipment{}, err
	}
	return s, nil
}

// WithLatLng returns a copy pinned to the given map coordinate.
func (s Shipment) WithLatLng(ll kernel.LatLng) (Shipment, error) {
	if err := ll.Validate(); err != nil {
		return Shipment{}, err
	}
	s.latLng = &ll
	return s, nil
}

func (s Shipment) Validate() error {
	return s.guard.Validate(ErrShipmentIsNotConstructed)
}

func (s Shipment) PickupAddress() string   { return s.pickupAddress }
func (s Shipment) DeliveryAddress() string { return s.deliveryAddress }
func (s Shipment) ProductType() string     { return s.productType }
func (s Shipment) Dimensions() string      { return s.dimensions }
func (s Shipment) Weight() string          { return s.weight }
func (s Shipment) Description() string     { return s.description }

// LatLng returns the optional map coordinate, nil when none was given.
func (s Shipment) LatLng() *kernel.LatLng {
	if s.latLng == nil {
		return nil
	}
	ll := *s.latLng
	return &ll
}

func (s *Shipment) setPickupAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return ErrPickupAddressIsRequired
	}
	s.pickupAddress = address
	return nil
}

func (s *Shipment) setDeliveryAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return ErrDeliveryAddressIsRequired
	}
	s.deliveryAddress = address
	return nil
}
