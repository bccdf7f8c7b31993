package booking

import "errors"

var (
	// ErrSessionNotFound means the session expired or never existed.
	ErrSessionNotFound = errors.New("booking session not found or expired")

	// ErrInvalidStep means the requested transition is not legal from the
	// session's current step.
	ErrInvalidStep = errors.New("operation not valid for current booking step")

	// ErrUnknownService means the service id is not in the catalog category.
	ErrUnknownService = errors.New("unknown service for category")

	// ErrMissingDateTime blocks the datetime step until both a date and a
	// time have been chosen.
	ErrMissingDateTime = errors.New("please select both date and time")

	// ErrInvalidSlot means the chosen date or time is outside what is offered.
	ErrInvalidSlot = errors.New("selected date or time is not available")

	// ErrMissingCustomerDetails blocks submission until name and phone are
	// filled in.
	ErrMissingCustomerDetails = errors.New("please fill in all required fields")

	// ErrMissingBookingInfo means the draft is incomplete at submission time.
	ErrMissingBookingInfo = errors.New("missing required booking information")
)
