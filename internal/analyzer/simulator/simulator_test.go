package simulator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestSimulateDeterministic(t *testing.T) {
	start, end := date("2022-01-01"), date("2022-06-30")

	first := Simulate("AAPL", 130, start, end, Config{})
	second := Simulate("AAPL", 130, start, end, Config{})

	require.NotEmpty(t, first)
	assert.Equal(t, first, second)
}

func TestSimulateTickersIndependent(t *testing.T) {
	start, end := date("2022-01-01"), date("2022-03-31")

	aapl := Simulate("AAPL", 130, start, end, Config{})
	msft := Simulate("MSFT", 130, start, end, Config{})

	require.Equal(t, len(aapl), len(msft))
	assert.NotEqual(t, aapl, msft)
}

func TestSimulateBarInvariants(t *testing.T) {
	bars := Simulate("TSLA", 220, date("2022-01-01"), date("2023-12-29"), Config{})
	require.NotEmpty(t, bars)

	for _, b := range bars {
		assert.Greater(t, b.Open, 0.0)
		assert.Greater(t, b.High, 0.0)
		assert.Greater(t, b.Low, 0.0)
		assert.Greater(t, b.Close, 0.0)
		assert.GreaterOrEqual(t, b.Open, b.Low)
		assert.LessOrEqual(t, b.Open, b.High)
		assert.GreaterOrEqual(t, b.Close, b.Low)
		assert.LessOrEqual(t, b.Close, b.High)
		assert.GreaterOrEqual(t, b.Volume, int64(20_000_000))
		assert.LessOrEqual(t, b.Volume, int64(120_000_000))
	}
}

func TestSimulateBusinessDayGrid(t *testing.T) {
	// 2022-01-03 is a Monday; two full weeks.
	bars := Simulate("AMZN", 165, date("2022-01-03"), date("2022-01-14"), Config{})

	require.Len(t, bars, 10)
	for i, b := range bars {
		wd := b.Date.Weekday()
		assert.NotEqual(t, time.Saturday, wd)
		assert.NotEqual(t, time.Sunday, wd)
		if i > 0 {
			assert.True(t, b.Date.After(bars[i-1].Date), "bars must be chronological")
		}
	}
	assert.Equal(t, date("2022-01-03"), bars[0].Date)
	assert.Equal(t, date("2022-01-14"), bars[9].Date)
}

func TestSimulateEmptyRange(t *testing.T) {
	// A weekend-only range yields no bars.
	bars := Simulate("GOOGL", 140, date("2022-01-01"), date("2022-01-02"), Config{})
	assert.Empty(t, bars)
}

func TestSeedStablePerTicker(t *testing.T) {
	assert.Equal(t, Seed("AAPL"), Seed("AAPL"))
	assert.NotEqual(t, Seed("AAPL"), Seed("MSFT"))
}
