package domain

import (
	"fmt"
	"strings"
	"time"
)

// Role distinguishes administrators from regular customers. Treating it as
// a closed type keeps role checks out of raw string comparisons.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

// IsAdmin reports whether the role grants access to /admin endpoints.
func (r Role) IsAdmin() bool { return r == RoleAdmin }

// Known reports whether the role is one the client understands.
func (r Role) Known() bool { return r == RoleAdmin || r == RoleUser }

// User is the account profile returned by /api/user/profile. Created by the
// backend on registration and read-only from the client's side.
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// Company owns buses. The id is absent when the company is embedded in an
// add-bus request.
type Company struct {
	ID   int64  `json:"id,omitempty"`
	Name string `json:"name"`
}

// Route is a named origin-destination pair, encoded "Origin-Destination".
// Distinct from a navigable client path.
type Route struct {
	ID   int64  `json:"id,omitempty"`
	Name string `json:"name"`
}

// RouteName builds the wire encoding of a route from its two legs.
func RouteName(origin, destination string) string {
	return strings.TrimSpace(origin) + "-" + strings.TrimSpace(destination)
}

// Legs splits the route name into origin and destination. Routes with no
// separator come back as (name, "").
func (r Route) Legs() (origin, destination string) {
	origin, destination, _ = strings.Cut(r.Name, "-")
	return origin, destination
}

// Display renders the route for humans, "Dhaka → Chittagong".
func (r Route) Display() string {
	return strings.Replace(r.Name, "-", " → ", 1)
}

// Bus is a physical vehicle with its operating company and served routes.
type Bus struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Capacity int     `json:"capacity"`
	Company  Company `json:"company"`
	Routes   []Route `json:"routes"`
}

// Trip is one scheduled, bookable journey of a bus on a route. Created
// server-side; the client only reads it.
type Trip struct {
	ID             int64     `json:"id"`
	DepartureTime  time.Time `json:"departureTime"`
	ArrivalTime    time.Time `json:"arrivalTime"`
	Price          float64   `json:"price"`
	AvailableSeats int       `json:"availableSeats"`
	Bus            Bus       `json:"bus"`
	Route          Route     `json:"route"`
}

// Bookable reports whether the trip still has seats to sell.
func (t Trip) Bookable() bool { return t.AvailableSeats > 0 }

// Booking is one customer's reservation of a single seat on a trip.
type Booking struct {
	ID          int64     `json:"id"`
	SeatNumber  string    `json:"seatNumber"`
	BookingTime time.Time `json:"bookingTime"`
	Trip        Trip      `json:"trip"`
}

// Reference is a short human-readable booking code for tickets.
func (b Booking) Reference() string {
	return fmt.Sprintf("BJ-%d-%s", b.ID, b.SeatNumber)
}

// Stats is the aggregate snapshot served to admins.
type Stats struct {
	TotalBuses     int `json:"totalBuses"`
	TotalCustomers int `json:"totalCustomers"`
	TotalBookings  int `json:"totalBookings"`
}
