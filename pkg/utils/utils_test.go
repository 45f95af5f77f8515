package utils

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRound2(t *testing.T) {
	assert.Equal(t, 1.23, Round2(1.234))
	assert.Equal(t, 1.24, Round2(1.235))
	assert.Equal(t, -2.57, Round2(-2.567))
	assert.Equal(t, 100.0, Round2(100))
}

func TestRound2SentinelsPassThrough(t *testing.T) {
	assert.True(t, math.IsNaN(Round2(math.NaN())))
	assert.True(t, math.IsInf(Round2(math.Inf(1)), 1))
	assert.True(t, math.IsInf(Round2(math.Inf(-1)), -1))
}

func TestBusinessDays(t *testing.T) {
	// 2022-01-01 is a Saturday; the first business day is Monday the 3rd.
	start := time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2022, 1, 9, 0, 0, 0, 0, time.UTC)

	days := BusinessDays(start, end)

	require.Len(t, days, 5)
	assert.Equal(t, time.Monday, days[0].Weekday())
	assert.Equal(t, time.Friday, days[4].Weekday())
}

func TestBusinessDaysEmptyRange(t *testing.T) {
	saturday := time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Empty(t, BusinessDays(saturday, saturday))
}
