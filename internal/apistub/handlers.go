package apistub

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"busjet/internal/domain"
	"busjet/internal/utils"
)

// Handlers implements the HTTP contract over the in-memory store.
type Handlers struct {
	store  *Store
	tokens *TokenManager
}

// NewHandlers wires the store and token manager.
func NewHandlers(store *Store, tokens *TokenManager) *Handlers {
	return &Handlers{store: store, tokens: tokens}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/auth/login
func (h *Handlers) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	user, err := h.store.Authenticate(req.Email, req.Password)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "invalid email or password")
		return
	}

	token, err := h.tokens.Issue(user)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to issue token")
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// POST /api/auth/signup
//
// The role field in the payload is ignored: public signup always creates
// a regular customer account.
func (h *Handlers) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" || req.Password == "" {
		respondError(c, http.StatusBadRequest, "name, email and password are required")
		return
	}

	user, err := h.store.CreateUser(req.Name, req.Email, req.Password, domain.RoleUser)
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			respondError(c, http.StatusConflict, "email already registered")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to create user")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "registration successful", "user": user})
}

// GET /api/user/profile
func (h *Handlers) Profile(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "missing bearer token")
		return
	}
	c.JSON(http.StatusOK, user)
}

// GET /api/buses/search?route=&fromDate=&toDate=
func (h *Handlers) SearchTrips(c *gin.Context) {
	route := strings.TrimSpace(c.Query("route"))
	fromRaw := strings.TrimSpace(c.Query("fromDate"))
	toRaw := strings.TrimSpace(c.Query("toDate"))
	if route == "" || fromRaw == "" || toRaw == "" {
		respondError(c, http.StatusBadRequest, "route, fromDate and toDate are required")
		return
	}

	from, err := utils.ParseDate(fromRaw)
	if err != nil {
		respondError(c, http.StatusBadRequest, "fromDate must be YYYY-MM-DD")
		return
	}
	to, err := utils.ParseDate(toRaw)
	if err != nil {
		respondError(c, http.StatusBadRequest, "toDate must be YYYY-MM-DD")
		return
	}

	c.JSON(http.StatusOK, h.store.SearchTrips(route, from, to))
}

type bookingRequest struct {
	TripID     int64  `json:"tripId"`
	SeatNumber string `json:"seatNumber"`
}

// POST /api/bookings
func (h *Handlers) CreateBooking(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "missing bearer token")
		return
	}

	var req bookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	booking, err := h.store.CreateBooking(user.ID, req.TripID, req.SeatNumber)
	if err != nil {
		switch {
		case errors.Is(err, ErrTripNotFound):
			respondError(c, http.StatusNotFound, "trip not found")
		case errors.Is(err, ErrSoldOut):
			respondError(c, http.StatusConflict, "no seats available on this trip")
		case errors.Is(err, ErrSeatTaken):
			respondError(c, http.StatusConflict, "Seat taken")
		default:
			respondError(c, http.StatusInternalServerError, "failed to create booking")
		}
		return
	}

	utils.LogEvent(GetRequestID(c), "booking", "create", booking.Reference())
	c.JSON(http.StatusCreated, booking)
}

// GET /api/bookings/my
func (h *Handlers) MyBookings(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "missing bearer token")
		return
	}
	c.JSON(http.StatusOK, h.store.BookingsByUser(user.ID))
}

// GET /admin/stats
func (h *Handlers) AdminStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Stats())
}

type addBusRequest struct {
	Name     string         `json:"name"`
	Capacity int            `json:"capacity"`
	Company  domain.Company `json:"company"`
	Routes   []domain.Route `json:"routes"`
}

// POST /admin/bus/add
func (h *Handlers) AddBus(c *gin.Context) {
	var req addBusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	if strings.TrimSpace(req.Name) == "" || req.Capacity <= 0 || strings.TrimSpace(req.Company.Name) == "" {
		respondError(c, http.StatusBadRequest, "name, capacity and company are required")
		return
	}
	var routes []domain.Route
	for _, r := range req.Routes {
		if strings.TrimSpace(r.Name) != "" {
			routes = append(routes, r)
		}
	}
	if len(routes) == 0 {
		respondError(c, http.StatusBadRequest, "at least one route is required")
		return
	}

	bus := h.store.AddBus(req.Name, req.Capacity, req.Company, routes)
	utils.LogEvent(GetRequestID(c), "bus", "add", bus.Name)
	c.JSON(http.StatusCreated, bus)
}
