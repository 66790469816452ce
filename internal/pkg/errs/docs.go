// Package errs holds the error types shared by the domain and the use cases.
//
// Every type unwraps to a sentinel, so callers (the HTTP layer in particular)
// classify failures with errors.Is:
//
//	ErrValueIsRequired     ValueIsRequiredError     missing input
//	ErrValueIsInvalid      ValueIsInvalidError      malformed input
//	ErrValueIsOutOfRange   ValueIsOutOfRangeError   input outside its bounds
//	ErrObjectNotFound      ObjectNotFoundError      unknown id
//	ErrTransitionIsInvalid TransitionIsInvalidError lifecycle step not allowed
//
// Constructors come in pairs, with and without a cause. TransitionIsInvalidError
// also matches its cause, so a refused claim is both an invalid transition and
// order.ErrAlreadyClaimed.
package errs
