package workflow

import (
	"context"
	"fmt"
	"math/rand"
	"sync"

	"busjet/internal/domain"
)

// BookingAPI is the authenticated slice of the backend contract the
// booking step needs.
type BookingAPI interface {
	CreateBooking(ctx context.Context, token string, tripID int64, seatNumber string) (domain.Booking, error)
}

// SeatOutcome is the result of one per-seat booking request.
type SeatOutcome struct {
	SeatNumber string
	Booking    domain.Booking
	Err        error
}

// Result is the joint outcome of a multi-seat booking. Requests that
// succeeded before a failure are not rolled back, so a Result can be
// partially confirmed.
type Result struct {
	Trip     domain.Trip
	Outcomes []SeatOutcome
}

// Confirmed returns the bookings that went through, in request order.
func (r Result) Confirmed() []domain.Booking {
	var out []domain.Booking
	for _, o := range r.Outcomes {
		if o.Err == nil {
			out = append(out, o.Booking)
		}
	}
	return out
}

// Succeeded reports whether every seat request went through.
func (r Result) Succeeded() bool {
	for _, o := range r.Outcomes {
		if o.Err != nil {
			return false
		}
	}
	return true
}

// FirstFailure returns the earliest failed request's error, nil when all
// succeeded. "Earliest" is request order, matching the message the user
// sees.
func (r Result) FirstFailure() error {
	for _, o := range r.Outcomes {
		if o.Err != nil {
			return o.Err
		}
	}
	return nil
}

// TotalPrice is the price of the confirmed seats.
func (r Result) TotalPrice() float64 {
	return float64(len(r.Confirmed())) * r.Trip.Price
}

// placeholderSeat generates a client-side seat label. There is no seat
// map, so seats are placeholders; uniqueness is best effort and collisions
// are the backend's to reject or tolerate.
func placeholderSeat(i int) string {
	return fmt.Sprintf("S%d", rand.Intn(100)+i)
}

// BookSeats fires one booking request per requested seat, all in parallel,
// and waits for every one to settle. Overall success is the logical AND of
// the individual responses; on failure the returned error is the first
// failed request's, and the Result still lists what was confirmed. Nothing
// is cancelled or retried.
func BookSeats(ctx context.Context, api BookingAPI, token string, trip domain.Trip, seats int) (Result, error) {
	res := Result{Trip: trip}

	if token == "" {
		return res, domain.AuthenticationError{Msg: "booking requires login"}
	}
	if !trip.Bookable() {
		return res, domain.ValidationError{Field: "trip", Msg: "no seats available on this trip"}
	}
	if seats < 1 || seats > trip.AvailableSeats {
		return res, domain.ValidationError{
			Field: "seats",
			Msg:   fmt.Sprintf("seat count must be between 1 and %d", trip.AvailableSeats),
		}
	}

	res.Outcomes = make([]SeatOutcome, seats)
	var wg sync.WaitGroup
	for i := 0; i < seats; i++ {
		seat := placeholderSeat(i)
		res.Outcomes[i].SeatNumber = seat

		wg.Add(1)
		go func(i int, seat string) {
			defer wg.Done()
			booking, err := api.CreateBooking(ctx, token, trip.ID, seat)
			res.Outcomes[i].Booking = booking
			res.Outcomes[i].Err = err
		}(i, seat)
	}
	wg.Wait()

	if err := res.FirstFailure(); err != nil {
		return res, err
	}
	return res, nil
}
