package order

import (
	"fmt"

	"levaai/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
//
//	pending ──> accepted ──> picked_up ──> in_transit ──> delivered
//	   │            │  └──────────────────────^
//	   └────────────┴──> cancelled
//
// delivered and cancelled are terminal.
type Status int

const (
	// Unknown catches uninitialised values.
	Unknown Status = iota
	Pending
	Accepted
	PickedUp
	InTransit
	Delivered
	Cancelled
)

var statusNames = map[Status]string{
	Pending:   "pending",
	Accepted:  "accepted",
	PickedUp:  "picked_up",
	InTransit: "in_transit",
	Delivered: "delivered",
	Cancelled: "cancelled",
}

// transitions is the only place that decides which status changes exist.
var transitions = map[Status]map[Status]struct{}{
	Pending: {
		Accepted:  {},
		Cancelled: {},
	},
	Accepted: {
		PickedUp:  {},
		InTransit: {},
		Cancelled: {},
	},
	PickedUp: {
		InTransit: {},
	},
	InTransit: {
		Delivered: {},
	},
}

// ParseStatus maps the wire name ("picked_up") back to a Status.
func ParseStatus(name string) (Status, error) {
	for s, n := range statusNames {
		if n == name {
			return s, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", name))
}

// Validate rejects Unknown and out-of-range values.
func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name, or "unknown" for invalid values.
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown"
}

// IsTerminal reports whether no transition leaves s.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// IsActive reports whether an order in s still needs work: pending, accepted,
// picked_up or in_transit.
func (s Status) IsActive() bool {
	return s.Validate() == nil && !s.IsTerminal()
}

// CanTransitionTo reports whether next is reachable from s in one step.
func (s Status) CanTransitionTo(next Status) bool {
	_, ok := transitions[s][next]
	return ok
}

// TransitionTo returns next when the table allows it, and a
// *errs.TransitionIsInvalidError otherwise.
func (s Status) TransitionTo(next Status) (Status, error) {
	if !s.CanTransitionTo(next) {
		return s, errs.NewTransitionIsInvalidError(s, next)
	}
	return next, nil
}
