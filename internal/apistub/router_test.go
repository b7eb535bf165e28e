package apistub

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"busjet/internal/api"
	"busjet/internal/config"
	"busjet/internal/domain"
	"busjet/internal/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testEnv() config.StubEnv {
	return config.StubEnv{
		JWTSecret:          "test-secret",
		CORSAllowedOrigins: []string{"http://localhost:3000"},
	}
}

// startStub spins up the stub behind httptest and returns a real client
// pointed at it, plus the store for seeding test data directly.
func startStub(t *testing.T) (*api.Client, *Store) {
	t.Helper()

	store := NewStore()
	srv := httptest.NewServer(NewRouter(testEnv(), store))
	t.Cleanup(srv.Close)

	return api.New(srv.URL), store
}

func seedTrip(t *testing.T, store *Store, seats int) domain.Trip {
	t.Helper()

	bus := store.AddBus("Green Line Express", 40, domain.Company{Name: "Green Line"},
		[]domain.Route{{Name: "Dhaka-Chittagong"}})
	day, err := utils.ParseDate("2026-09-01")
	require.NoError(t, err)
	trip, err := store.AddTrip(bus.ID, "Dhaka-Chittagong",
		day.Add(8*time.Hour), day.Add(14*time.Hour), 18.50, seats)
	require.NoError(t, err)
	return trip
}

func signupAndLogin(t *testing.T, client *api.Client, name, email string) string {
	t.Helper()

	ctx := context.Background()
	require.NoError(t, client.Signup(ctx, name, email, "password123"))
	token, err := client.Login(ctx, email, "password123")
	require.NoError(t, err)
	return token
}

func TestSignupLoginProfileFlow(t *testing.T) {
	client, _ := startStub(t)
	ctx := context.Background()

	token := signupAndLogin(t, client, "Rahim Uddin", "rahim@example.test")

	user, err := client.Profile(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "Rahim Uddin", user.Name)
	assert.Equal(t, "rahim@example.test", user.Email)
	// Public signup can never mint an admin.
	assert.Equal(t, domain.RoleUser, user.Role)
}

func TestSignupDuplicateEmail(t *testing.T) {
	client, _ := startStub(t)
	ctx := context.Background()

	require.NoError(t, client.Signup(ctx, "Rahim", "rahim@example.test", "password123"))

	err := client.Signup(ctx, "Impostor", "rahim@example.test", "different")
	require.Error(t, err)
	assert.True(t, domain.IsRegistration(err))
	assert.EqualError(t, err, "email already registered")
}

func TestLoginWrongPassword(t *testing.T) {
	client, _ := startStub(t)
	ctx := context.Background()

	require.NoError(t, client.Signup(ctx, "Rahim", "rahim@example.test", "password123"))

	_, err := client.Login(ctx, "rahim@example.test", "nope")
	require.Error(t, err)
	assert.True(t, domain.IsAuthentication(err))
	assert.EqualError(t, err, "invalid email or password")
}

func TestProfileRequiresToken(t *testing.T) {
	client, _ := startStub(t)

	_, err := client.Profile(context.Background(), "garbage")
	require.Error(t, err)
	assert.True(t, domain.IsProfileResolution(err))
}

func TestSearchAndBookFlow(t *testing.T) {
	client, store := startStub(t)
	ctx := context.Background()

	trip := seedTrip(t, store, 40)
	token := signupAndLogin(t, client, "Rahim", "rahim@example.test")

	trips, err := client.SearchTrips(ctx, "Dhaka-Chittagong", "2026-09-01", "2026-09-01")
	require.NoError(t, err)
	require.Len(t, trips, 1)
	assert.Equal(t, trip.ID, trips[0].ID)
	assert.Equal(t, 40, trips[0].AvailableSeats)

	booking, err := client.CreateBooking(ctx, token, trip.ID, "S1")
	require.NoError(t, err)
	assert.Equal(t, "S1", booking.SeatNumber)
	assert.Equal(t, trip.ID, booking.Trip.ID)

	// The seat count dropped and the booking shows up under the user.
	trips, err = client.SearchTrips(ctx, "Dhaka-Chittagong", "2026-09-01", "2026-09-01")
	require.NoError(t, err)
	assert.Equal(t, 39, trips[0].AvailableSeats)

	mine, err := client.MyBookings(ctx, token)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, booking.ID, mine[0].ID)
}

func TestSearchOutsideWindowIsEmpty(t *testing.T) {
	client, store := startStub(t)
	seedTrip(t, store, 40)

	trips, err := client.SearchTrips(context.Background(), "Dhaka-Chittagong", "2026-10-01", "2026-10-01")
	require.NoError(t, err)
	assert.Empty(t, trips)
}

func TestSearchValidatesParams(t *testing.T) {
	client, _ := startStub(t)

	_, err := client.SearchTrips(context.Background(), "", "2026-09-01", "2026-09-01")
	require.Error(t, err)
	assert.True(t, domain.IsSearch(err))

	_, err = client.SearchTrips(context.Background(), "Dhaka-Chittagong", "01/09/2026", "2026-09-01")
	require.Error(t, err)
	assert.True(t, domain.IsSearch(err))
}

func TestBookingSeatTaken(t *testing.T) {
	client, store := startStub(t)
	ctx := context.Background()

	trip := seedTrip(t, store, 40)
	token := signupAndLogin(t, client, "Rahim", "rahim@example.test")

	_, err := client.CreateBooking(ctx, token, trip.ID, "S1")
	require.NoError(t, err)

	_, err = client.CreateBooking(ctx, token, trip.ID, "S1")
	require.Error(t, err)
	assert.True(t, domain.IsBooking(err))
	assert.EqualError(t, err, "Seat taken")
}

func TestBookingSoldOut(t *testing.T) {
	client, store := startStub(t)
	ctx := context.Background()

	trip := seedTrip(t, store, 1)
	token := signupAndLogin(t, client, "Rahim", "rahim@example.test")

	_, err := client.CreateBooking(ctx, token, trip.ID, "S1")
	require.NoError(t, err)

	_, err = client.CreateBooking(ctx, token, trip.ID, "S2")
	require.Error(t, err)
	assert.EqualError(t, err, "no seats available on this trip")
}

func TestBookingRequiresAuth(t *testing.T) {
	client, store := startStub(t)
	trip := seedTrip(t, store, 40)

	_, err := client.CreateBooking(context.Background(), "", trip.ID, "S1")
	require.Error(t, err)
	assert.EqualError(t, err, "missing bearer token")
}

func TestAdminEndpointsRequireAdminRole(t *testing.T) {
	client, store := startStub(t)
	ctx := context.Background()

	// A signed-up customer is authenticated but not authorized.
	customerToken := signupAndLogin(t, client, "Rahim", "rahim@example.test")
	_, err := client.AdminStats(ctx, customerToken)
	require.Error(t, err)
	assert.True(t, domain.IsAdminRequest(err))
	assert.EqualError(t, err, "admin access required")

	// No token at all is unauthenticated.
	_, err = client.AdminStats(ctx, "")
	require.Error(t, err)
	assert.EqualError(t, err, "missing bearer token")

	// A seeded admin account gets through.
	_, err = store.CreateUser("Admin", "admin@busjet.test", "admin123", domain.RoleAdmin)
	require.NoError(t, err)
	adminToken, err := client.Login(ctx, "admin@busjet.test", "admin123")
	require.NoError(t, err)

	stats, err := client.AdminStats(ctx, adminToken)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalCustomers)
}

func TestAdminAddBus(t *testing.T) {
	client, store := startStub(t)
	ctx := context.Background()

	_, err := store.CreateUser("Admin", "admin@busjet.test", "admin123", domain.RoleAdmin)
	require.NoError(t, err)
	adminToken, err := client.Login(ctx, "admin@busjet.test", "admin123")
	require.NoError(t, err)

	err = client.AddBus(ctx, adminToken, api.AddBusRequest{
		Name:     "Shyamoli Deluxe",
		Capacity: 36,
		Company:  domain.Company{Name: "Shyamoli Paribahan"},
		Routes:   []domain.Route{{Name: "Dhaka-Rajshahi"}},
	})
	require.NoError(t, err)

	stats, err := client.AdminStats(ctx, adminToken)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalBuses)

	// Route rows with no name are rejected server-side too.
	err = client.AddBus(ctx, adminToken, api.AddBusRequest{
		Name:     "Ghost Bus",
		Capacity: 10,
		Company:  domain.Company{Name: "Nowhere"},
		Routes:   []domain.Route{{Name: "  "}},
	})
	require.Error(t, err)
	assert.EqualError(t, err, "at least one route is required")
}

func TestParallelSeatFanOutAgainstStub(t *testing.T) {
	client, store := startStub(t)
	ctx := context.Background()

	// Two remaining seats, three parallel requests: exactly one must lose.
	trip := seedTrip(t, store, 2)
	token := signupAndLogin(t, client, "Rahim", "rahim@example.test")

	type outcome struct{ err error }
	results := make(chan outcome, 3)
	for i := 0; i < 3; i++ {
		seat := []string{"S1", "S2", "S3"}[i]
		go func(seat string) {
			_, err := client.CreateBooking(ctx, token, trip.ID, seat)
			results <- outcome{err}
		}(seat)
	}

	failures := 0
	for i := 0; i < 3; i++ {
		if r := <-results; r.err != nil {
			failures++
		}
	}
	assert.Equal(t, 1, failures)

	mine, err := client.MyBookings(ctx, token)
	require.NoError(t, err)
	assert.Len(t, mine, 2)
}
