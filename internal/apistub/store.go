// Package apistub is an in-memory implementation of the BusJet HTTP
// contract for local development and the test suite. It is not a
// production backend: nothing survives a restart.
package apistub

import (
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"busjet/internal/domain"
)

var (
	ErrEmailTaken    = errors.New("email already registered")
	ErrBadCredential = errors.New("invalid email or password")
	ErrUserNotFound  = errors.New("user not found")
	ErrTripNotFound  = errors.New("trip not found")
	ErrSoldOut       = errors.New("no seats available on this trip")
	ErrSeatTaken     = errors.New("Seat taken")
)

type userRecord struct {
	user         domain.User
	passwordHash []byte
}

type bookingRecord struct {
	id     int64
	userID int64
	tripID int64
	seat   string
	at     time.Time
}

// Store holds all stub state behind one mutex. Handlers run concurrently
// under gin, so every access goes through the lock. Over-booking is
// rejected per request even when the client fans out per-seat requests
// in parallel.
type Store struct {
	mu       sync.RWMutex
	users    map[int64]*userRecord
	emails   map[string]int64
	buses    map[int64]*domain.Bus
	trips    map[int64]*domain.Trip
	bookings map[int64]*bookingRecord
	seats    map[int64]map[string]bool
	lastID   int64
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		users:    make(map[int64]*userRecord),
		emails:   make(map[string]int64),
		buses:    make(map[int64]*domain.Bus),
		trips:    make(map[int64]*domain.Trip),
		bookings: make(map[int64]*bookingRecord),
		seats:    make(map[int64]map[string]bool),
	}
}

func (s *Store) next() int64 {
	s.lastID++
	return s.lastID
}

// CreateUser registers an account. Emails are unique.
func (s *Store) CreateUser(name, email, password string, role domain.Role) (domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.emails[email]; exists {
		return domain.User{}, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, err
	}

	user := domain.User{ID: s.next(), Name: strings.TrimSpace(name), Email: email, Role: role}
	s.users[user.ID] = &userRecord{user: user, passwordHash: hash}
	s.emails[email] = user.ID
	return user, nil
}

// Authenticate checks credentials. The same error covers unknown emails
// and wrong passwords.
func (s *Store) Authenticate(email, password string) (domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.emails[email]
	if !ok {
		return domain.User{}, ErrBadCredential
	}
	rec := s.users[id]
	if err := bcrypt.CompareHashAndPassword(rec.passwordHash, []byte(password)); err != nil {
		return domain.User{}, ErrBadCredential
	}
	return rec.user, nil
}

// UserByID looks up a profile.
func (s *Store) UserByID(id int64) (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.users[id]
	if !ok {
		return domain.User{}, ErrUserNotFound
	}
	return rec.user, nil
}

// AddBus registers a bus with its company and routes, assigning ids.
func (s *Store) AddBus(name string, capacity int, company domain.Company, routes []domain.Route) domain.Bus {
	s.mu.Lock()
	defer s.mu.Unlock()

	bus := &domain.Bus{
		ID:       s.next(),
		Name:     strings.TrimSpace(name),
		Capacity: capacity,
		Company:  domain.Company{ID: s.next(), Name: strings.TrimSpace(company.Name)},
	}
	for _, r := range routes {
		bus.Routes = append(bus.Routes, domain.Route{ID: s.next(), Name: strings.TrimSpace(r.Name)})
	}
	s.buses[bus.ID] = bus
	return *bus
}

// AddTrip schedules a trip on one of the bus's routes.
func (s *Store) AddTrip(busID int64, routeName string, departure, arrival time.Time, price float64, seats int) (domain.Trip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bus, ok := s.buses[busID]
	if !ok {
		return domain.Trip{}, errors.New("bus not found")
	}

	var route domain.Route
	for _, r := range bus.Routes {
		if r.Name == routeName {
			route = r
			break
		}
	}
	if route.Name == "" {
		return domain.Trip{}, errors.New("bus does not serve this route")
	}

	trip := &domain.Trip{
		ID:             s.next(),
		DepartureTime:  departure,
		ArrivalTime:    arrival,
		Price:          price,
		AvailableSeats: seats,
		Bus:            *bus,
		Route:          route,
	}
	s.trips[trip.ID] = trip
	s.seats[trip.ID] = make(map[string]bool)
	return *trip, nil
}

// SearchTrips filters by route name and a departure window covering the
// whole to-date day.
func (s *Store) SearchTrips(route string, fromDate, toDate time.Time) []domain.Trip {
	s.mu.RLock()
	defer s.mu.RUnlock()

	end := toDate.AddDate(0, 0, 1)
	out := []domain.Trip{}
	for _, t := range s.trips {
		if t.Route.Name != route {
			continue
		}
		if t.DepartureTime.Before(fromDate) || !t.DepartureTime.Before(end) {
			continue
		}
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DepartureTime.Before(out[j].DepartureTime) })
	return out
}

// CreateBooking reserves one named seat on a trip. Each request is checked
// against the remaining seat count and the already-taken seat labels; the
// store rejects over-booking per request, it does not batch.
func (s *Store) CreateBooking(userID, tripID int64, seat string) (domain.Booking, error) {
	seat = strings.TrimSpace(seat)

	s.mu.Lock()
	defer s.mu.Unlock()

	trip, ok := s.trips[tripID]
	if !ok {
		return domain.Booking{}, ErrTripNotFound
	}
	if trip.AvailableSeats <= 0 {
		return domain.Booking{}, ErrSoldOut
	}
	if seat == "" || s.seats[tripID][seat] {
		return domain.Booking{}, ErrSeatTaken
	}

	trip.AvailableSeats--
	s.seats[tripID][seat] = true

	rec := &bookingRecord{id: s.next(), userID: userID, tripID: tripID, seat: seat, at: time.Now().UTC()}
	s.bookings[rec.id] = rec
	return s.materialize(rec), nil
}

// BookingsByUser lists one user's bookings with a current trip snapshot.
func (s *Store) BookingsByUser(userID int64) []domain.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []domain.Booking{}
	for _, rec := range s.bookings {
		if rec.userID == userID {
			out = append(out, s.materialize(rec))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Stats is the admin dashboard snapshot. Customers are non-admin accounts.
func (s *Store) Stats() domain.Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	customers := 0
	for _, rec := range s.users {
		if !rec.user.Role.IsAdmin() {
			customers++
		}
	}
	return domain.Stats{
		TotalBuses:     len(s.buses),
		TotalCustomers: customers,
		TotalBookings:  len(s.bookings),
	}
}

// materialize builds the wire Booking from a record. Callers hold the lock.
func (s *Store) materialize(rec *bookingRecord) domain.Booking {
	b := domain.Booking{ID: rec.id, SeatNumber: rec.seat, BookingTime: rec.at}
	if trip, ok := s.trips[rec.tripID]; ok {
		b.Trip = *trip
	}
	return b
}
