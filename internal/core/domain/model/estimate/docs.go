// Package estimate models the advisory quote a sender sees before confirming
// an order: a category, a price, a short reasoning and a risk level.
//
// Estimates come from an external generator and are validated here. When the
// generator fails the gateway substitutes Fallback, and every estimate records
// its Provenance so the two are never confused.
package estimate
