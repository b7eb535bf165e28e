package domain

import (
	"errors"
	"fmt"
)

// AuthenticationError covers rejected credentials and expired sessions.
type AuthenticationError struct {
	Msg string
	Err error
}

func (e AuthenticationError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "login failed, please check your credentials"
}

func (e AuthenticationError) Unwrap() error { return e.Err }

// RegistrationError covers rejected signup requests.
type RegistrationError struct {
	Msg string
	Err error
}

func (e RegistrationError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "registration failed"
}

func (e RegistrationError) Unwrap() error { return e.Err }

// ProfileResolutionError means a token is present but could not be resolved
// into a user profile. During initialization this forces a logout.
type ProfileResolutionError struct {
	Msg string
	Err error
}

func (e ProfileResolutionError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "could not retrieve user profile"
}

func (e ProfileResolutionError) Unwrap() error { return e.Err }

// SearchError covers missing search criteria and trip-search transport
// failures. An empty result list is not a SearchError.
type SearchError struct {
	Msg string
	Err error
}

func (e SearchError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "failed to fetch buses"
}

func (e SearchError) Unwrap() error { return e.Err }

// BookingError means at least one seat request in a booking fan-out failed.
// Seats confirmed before the failure stay booked; the message is the first
// failure's server message.
type BookingError struct {
	Msg string
	Err error
}

func (e BookingError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "one or more bookings failed, please try again"
}

func (e BookingError) Unwrap() error { return e.Err }

// AdminRequestError covers stats and bus-add failures, surfaced inline.
type AdminRequestError struct {
	Msg string
	Err error
}

func (e AdminRequestError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "admin request failed"
}

func (e AdminRequestError) Unwrap() error { return e.Err }

// ValidationError reports input rejected locally before any request is sent.
type ValidationError struct {
	Field string
	Msg   string
	Err   error
}

func (e ValidationError) Error() string {
	switch {
	case e.Msg != "" && e.Field != "":
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	case e.Msg != "":
		return e.Msg
	case e.Field != "":
		return fmt.Sprintf("invalid %s", e.Field)
	default:
		return "validation error"
	}
}

func (e ValidationError) Unwrap() error { return e.Err }

func IsAuthentication(err error) bool {
	var target AuthenticationError
	return errors.As(err, &target)
}

func IsRegistration(err error) bool {
	var target RegistrationError
	return errors.As(err, &target)
}

func IsProfileResolution(err error) bool {
	var target ProfileResolutionError
	return errors.As(err, &target)
}

func IsSearch(err error) bool {
	var target SearchError
	return errors.As(err, &target)
}

func IsBooking(err error) bool {
	var target BookingError
	return errors.As(err, &target)
}

func IsAdminRequest(err error) bool {
	var target AdminRequestError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}
