// Package user holds the User aggregate: identity, advisory role, rating,
// wallet balance and the driver verification state.
//
// A user becomes a verified driver only through CompleteDriverRegistration,
// which attaches DriverDetails and sets the verified flag in one step, so
// DriverDetails is present if and only if the user is verified.
package user
