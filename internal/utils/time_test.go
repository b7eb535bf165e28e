package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate(" 2026-09-01 ")
	require.NoError(t, err)
	assert.Equal(t, 2026, parsed.Year())
	assert.Equal(t, time.September, parsed.Month())
	assert.Equal(t, 1, parsed.Day())
	assert.Equal(t, time.Local, parsed.Location())

	_, err = ParseDate("01/09/2026")
	assert.Error(t, err)
}

func TestFormatDateRoundTrip(t *testing.T) {
	parsed, err := ParseDate("2026-09-01")
	require.NoError(t, err)
	assert.Equal(t, "2026-09-01", FormatDate(parsed))
}

func TestToday(t *testing.T) {
	assert.Equal(t, time.Now().Format("2006-01-02"), Today())
}
