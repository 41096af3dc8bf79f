// internal/session/errors.go
package session

// ValidationError blocks the triggering action and leaves session state
// untouched. It is the only error class surfaced to the shopper.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

var (
	ErrSizeNotSelected = &ValidationError{Reason: "size not selected"}
	ErrSizeUnavailable = &ValidationError{Reason: "size unavailable"}
	ErrUnknownProduct  = &ValidationError{Reason: "unknown product"}
	ErrNoSuchLineItem  = &ValidationError{Reason: "no such line item"}
	ErrSlotOutOfRange  = &ValidationError{Reason: "image slot out of range"}
	ErrIncompleteOrder = &ValidationError{Reason: "checkout details incomplete"}
	ErrSubmitInFlight  = &ValidationError{Reason: "order submission already in progress"}
	ErrSiteLocked      = &ValidationError{Reason: "site is locked"}
	ErrBadTransition   = &ValidationError{Reason: "checkout is reachable only from the bag"}
	ErrUnknownView     = &ValidationError{Reason: "unknown view"}
)
