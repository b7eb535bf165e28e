package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRole(t *testing.T) {
	assert.True(t, RoleAdmin.IsAdmin())
	assert.False(t, RoleUser.IsAdmin())
	assert.True(t, RoleUser.Known())
	assert.False(t, Role("SUPERVISOR").Known())
}

func TestRouteLegs(t *testing.T) {
	origin, destination := Route{Name: "Dhaka-Chittagong"}.Legs()
	assert.Equal(t, "Dhaka", origin)
	assert.Equal(t, "Chittagong", destination)

	origin, destination = Route{Name: "Dhaka"}.Legs()
	assert.Equal(t, "Dhaka", origin)
	assert.Empty(t, destination)
}

func TestRouteName(t *testing.T) {
	assert.Equal(t, "Dhaka-Sylhet", RouteName(" Dhaka ", " Sylhet "))
}

func TestBookingReference(t *testing.T) {
	b := Booking{ID: 9, SeatNumber: "S17"}
	assert.Equal(t, "BJ-9-S17", b.Reference())
}

func TestErrorDefaultsAndUnwrap(t *testing.T) {
	cause := errors.New("connection refused")

	err := AuthenticationError{Err: cause}
	assert.Equal(t, "login failed, please check your credentials", err.Error())
	assert.ErrorIs(t, err, cause)

	withMsg := BookingError{Msg: "Seat taken"}
	assert.Equal(t, "Seat taken", withMsg.Error())

	v := ValidationError{Field: "seats", Msg: "seat count must be between 1 and 40"}
	assert.Equal(t, "seats: seat count must be between 1 and 40", v.Error())
}

func TestErrorPredicatesMatchWrappedErrors(t *testing.T) {
	wrapped := ProfileResolutionError{Msg: "session expired or invalid", Err: errors.New("401")}
	assert.True(t, IsProfileResolution(wrapped))
	assert.False(t, IsAuthentication(wrapped))
	assert.False(t, IsProfileResolution(errors.New("unrelated")))
}
