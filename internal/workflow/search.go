package workflow

import (
	"context"
	"strings"
	"time"

	"busjet/internal/domain"
)

// SearchAPI is the unauthenticated slice of the backend contract the
// search step needs.
type SearchAPI interface {
	SearchTrips(ctx context.Context, route, fromDate, toDate string) ([]domain.Trip, error)
}

const dateLayout = "2006-01-02"

// Criteria is one search submission: origin, destination and travel day.
// The wire encoding is a synthesized route string plus a from/to date pair
// both set to the chosen day.
type Criteria struct {
	From string
	To   string
	Date string
}

// WithDefaultDate fills in today when no date was chosen.
func (c Criteria) WithDefaultDate() Criteria {
	if strings.TrimSpace(c.Date) == "" {
		c.Date = time.Now().Format(dateLayout)
	}
	return c
}

// RouteName is the "Origin-Destination" encoding the search endpoint
// expects.
func (c Criteria) RouteName() string {
	return domain.RouteName(c.From, c.To)
}

// Validate rejects incomplete criteria. A missing field is terminal, not
// retryable: no request is issued for it.
func (c Criteria) Validate() error {
	if strings.TrimSpace(c.From) == "" || strings.TrimSpace(c.To) == "" || strings.TrimSpace(c.Date) == "" {
		return domain.SearchError{Msg: "please provide a route and date to search for buses"}
	}
	if _, err := time.Parse(dateLayout, strings.TrimSpace(c.Date)); err != nil {
		return domain.SearchError{Msg: "please provide the travel date as YYYY-MM-DD"}
	}
	return nil
}

// Search issues exactly one trip-search request for valid criteria and
// none for invalid ones. The returned list may be empty; "no trips" is a
// result, not an error.
func Search(ctx context.Context, api SearchAPI, c Criteria) ([]domain.Trip, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	date := strings.TrimSpace(c.Date)
	return api.SearchTrips(ctx, c.RouteName(), date, date)
}
