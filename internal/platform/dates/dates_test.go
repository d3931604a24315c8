package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaysBetween(t *testing.T) {
	a := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	b := time.Date(2025, 1, 1, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, -14, DaysBetween(a, b))
	assert.Equal(t, 14, DaysBetween(b, a))
}

func TestMonthBounds(t *testing.T) {
	start, end := MonthBounds(2024, time.February)
	assert.Equal(t, "2024-02-01", start.Format(Layout))
	assert.Equal(t, "2024-02-29", end.Format(Layout))

	_, end = MonthBounds(2025, time.December)
	assert.Equal(t, "2025-12-31", end.Format(Layout))
}

func TestParseOptional(t *testing.T) {
	p, err := ParseOptional("  ")
	require.NoError(t, err)
	assert.Nil(t, p)

	p, err = ParseOptional("2025-03-04")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, time.UTC, p.Location())

	_, err = ParseOptional("04/03/2025")
	assert.Error(t, err)
}
