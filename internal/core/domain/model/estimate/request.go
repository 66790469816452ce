package estimate

import (
	"errors"
	"strings"

	"levaai/internal/pkg/guard"
)

var ErrRequestIsNotConstructed = errors.New("Request must be created via NewRequest constructor")

// Request carries the shipment attributes the generator prices. All fields are
// free text and may be blank.
type Request struct { //nolint:recvcheck //using for validation
	product    string
	dimensions string
	weight     string
	distance   string

	guard guard.ConstructorGuard
}

func NewRequest(product, dimensions, weight, distance string) Request {
	return Request{
		product:    strings.TrimSpace(product),
		dimensions: strings.TrimSpace(dimensions),
		weight:     strings.TrimSpace(weight),
		distance:   strings.TrimSpace(distance),
		guard:      guard.NewConstructorGuard(),
	}
}

func (r Request) Validate() error {
	return r.guard.Validate(ErrRequestIsNotConstructed)
}

// WithDefaultDistance fills a blank distance.
func (r Request) WithDefaultDistance(distance string) Request {
	if r.distance == "" {
		r.distance = strings.TrimSpace(distance)
	}
	return r
}

// SameParcel reports whether both requests describe the same goods: product,
// dimensions and weight, compared without regard to case. Distance is not
// part of the parcel.
func (r Request) SameParcel(other Request) bool {
	return strings.EqualFold(r.product, other.product) &&
		strings.EqualFold(r.dimensions, other.dimensions) &&
		strings.EqualFold(r.weight, other.weight)
}

func (r Request) Product() string    { return r.product }
func (r Request) Dimensions() string { return r.dimensions }
func (r Request) Weight() string     { return r.weight }
func (r Request) Distance() string   { return r.distance }
