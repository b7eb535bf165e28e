package ticket

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"busjet/internal/domain"
)

func sampleBooking() domain.Booking {
	departure := time.Date(2026, 9, 1, 8, 0, 0, 0, time.Local)
	return domain.Booking{
		ID:          9,
		SeatNumber:  "S17",
		BookingTime: time.Date(2026, 8, 29, 12, 30, 0, 0, time.Local),
		Trip: domain.Trip{
			ID:            42,
			DepartureTime: departure,
			ArrivalTime:   departure.Add(6 * time.Hour),
			Price:         18.50,
			Bus: domain.Bus{
				Name:    "Green Line Express",
				Company: domain.Company{Name: "Green Line"},
			},
			Route: domain.Route{Name: "Dhaka-Chittagong"},
		},
	}
}

func TestBuildETicket(t *testing.T) {
	holder := domain.User{Name: "Rahim Uddin", Email: "rahim@example.test"}

	data, filename, err := BuildETicket(sampleBooking(), holder)
	require.NoError(t, err)

	require.Greater(t, len(data), 4)
	assert.Equal(t, "%PDF", string(data[:4]))
	assert.Equal(t, "ETICKET_9_S17.pdf", filename)
}

func TestBuildETicketToleratesSparseData(t *testing.T) {
	booking := domain.Booking{ID: 1, SeatNumber: "A/1 *"}

	data, filename, err := BuildETicket(booking, domain.User{})
	require.NoError(t, err)
	assert.NotEmpty(t, data)
	// The seat label is sanitized for the filesystem.
	assert.Equal(t, "ETICKET_1_A_1__.pdf", filename)
}

func TestSafeFilenamePart(t *testing.T) {
	assert.Equal(t, "S17", safeFilenamePart("S17"))
	assert.Equal(t, "a_b", safeFilenamePart("a b"))
	assert.Equal(t, "ticket", safeFilenamePart(""))
}
