package workflow

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"busjet/internal/domain"
)

type fakeSearchAPI struct {
	trips []domain.Trip
	err   error

	calls    int
	route    string
	fromDate string
	toDate   string
}

func (f *fakeSearchAPI) SearchTrips(ctx context.Context, route, fromDate, toDate string) ([]domain.Trip, error) {
	f.calls++
	f.route, f.fromDate, f.toDate = route, fromDate, toDate
	return f.trips, f.err
}

func TestSearchIssuesOneRequest(t *testing.T) {
	api := &fakeSearchAPI{trips: []domain.Trip{{ID: 1}, {ID: 2}}}

	trips, err := Search(context.Background(), api, Criteria{From: "Dhaka", To: "Chittagong", Date: "2026-09-01"})
	require.NoError(t, err)
	assert.Len(t, trips, 2)

	assert.Equal(t, 1, api.calls)
	assert.Equal(t, "Dhaka-Chittagong", api.route)
	// The single chosen day is sent as both ends of the range.
	assert.Equal(t, "2026-09-01", api.fromDate)
	assert.Equal(t, "2026-09-01", api.toDate)
}

func TestSearchRejectsIncompleteCriteria(t *testing.T) {
	tests := []struct {
		name string
		c    Criteria
	}{
		{"missing origin", Criteria{To: "Chittagong", Date: "2026-09-01"}},
		{"missing destination", Criteria{From: "Dhaka", Date: "2026-09-01"}},
		{"missing date", Criteria{From: "Dhaka", To: "Chittagong"}},
		{"blank everything", Criteria{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &fakeSearchAPI{}
			_, err := Search(context.Background(), api, tt.c)
			require.Error(t, err)
			assert.True(t, domain.IsSearch(err))
			assert.EqualError(t, err, "please provide a route and date to search for buses")
			// Incomplete criteria never reach the network.
			assert.Zero(t, api.calls)
		})
	}
}

func TestSearchRejectsMalformedDate(t *testing.T) {
	api := &fakeSearchAPI{}
	_, err := Search(context.Background(), api, Criteria{From: "Dhaka", To: "Sylhet", Date: "01/09/2026"})
	require.Error(t, err)
	assert.True(t, domain.IsSearch(err))
	assert.Zero(t, api.calls)
}

func TestSearchEmptyResultIsNotAnError(t *testing.T) {
	api := &fakeSearchAPI{trips: []domain.Trip{}}

	trips, err := Search(context.Background(), api, Criteria{From: "Dhaka", To: "Khulna", Date: "2026-09-01"})
	require.NoError(t, err)
	assert.Empty(t, trips)
	assert.Equal(t, 1, api.calls)
}

func TestSearchPropagatesAPIError(t *testing.T) {
	api := &fakeSearchAPI{err: domain.SearchError{}}

	_, err := Search(context.Background(), api, Criteria{From: "Dhaka", To: "Sylhet", Date: "2026-09-01"})
	require.Error(t, err)
	assert.True(t, domain.IsSearch(err))
}

func TestWithDefaultDate(t *testing.T) {
	c := Criteria{From: "Dhaka", To: "Sylhet"}.WithDefaultDate()
	assert.Equal(t, time.Now().Format("2006-01-02"), c.Date)

	chosen := Criteria{From: "Dhaka", To: "Sylhet", Date: "2026-09-05"}.WithDefaultDate()
	assert.Equal(t, "2026-09-05", chosen.Date)
}
