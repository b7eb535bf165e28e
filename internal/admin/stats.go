package admin

import (
	"context"

	"busjet/internal/domain"
)

// FetchStats grabs one statistics snapshot. A fetch failure renders the
// dashboard as unavailable rather than blocking: ok is false and the
// zero snapshot is returned.
func FetchStats(ctx context.Context, busAPI BusAPI, token string) (stats domain.Stats, ok bool) {
	stats, err := busAPI.AdminStats(ctx, token)
	if err != nil {
		return domain.Stats{}, false
	}
	return stats, true
}
