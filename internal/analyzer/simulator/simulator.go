// Package simulator generates reproducible synthetic daily OHLCV series.
// Each ticker follows a seeded geometric random walk, so the same ticker
// and date range always produce the same path.
package simulator

import (
	"hash/fnv"
	"math"
	"math/rand"
	"time"

	"stock-market-analyzer/pkg/utils"
)

const (
	// DefaultDrift and DefaultVolatility calibrate the daily log-return so
	// that ~25 trading days amount to one simulated month of modest drift.
	DefaultDrift      = 0.0003
	DefaultVolatility = 0.018

	minVolume = 20_000_000
	maxVolume = 120_000_000
)

// Bar is one simulated trading day. Low <= Open <= High and
// Low <= Close <= High hold by construction.
type Bar struct {
	Date   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume int64
}

// Config carries the random-walk parameters. Zero values fall back to the
// defaults.
type Config struct {
	Drift      float64
	Volatility float64
}

// Seed derives the deterministic per-ticker generator seed.
func Seed(ticker string) int64 {
	h := fnv.New64a()
	h.Write([]byte(ticker))
	return int64(h.Sum64() % 9999)
}

// Simulate produces one OHLCV bar per business day between start and end,
// inclusive, in chronological order. The generator is constructed locally
// from the ticker-derived seed and never shared, so concurrent per-ticker
// simulations stay independent.
func Simulate(ticker string, basePrice float64, start, end time.Time, cfg Config) []Bar {
	drift := cfg.Drift
	if drift == 0 {
		drift = DefaultDrift
	}
	volatility := cfg.Volatility
	if volatility == 0 {
		volatility = DefaultVolatility
	}

	rng := rand.New(rand.NewSource(Seed(ticker)))
	price := basePrice

	var bars []Bar
	for _, day := range utils.BusinessDays(start, end) {
		ret := drift + volatility*rng.NormFloat64()
		price *= math.Exp(ret)

		// Intraday range scales with a per-day volatility drawn in
		// [0.5, 1.5] of the base volatility.
		dailyVol := volatility * (0.5 + rng.Float64())
		high := price * (1 + math.Abs(rng.NormFloat64()*dailyVol))
		low := price * (1 - math.Abs(rng.NormFloat64()*dailyVol))
		open := low + rng.Float64()*(high-low)
		volume := minVolume + int64(rng.Float64()*float64(maxVolume-minVolume))

		bars = append(bars, Bar{
			Date:   day,
			Open:   utils.Round2(open),
			High:   utils.Round2(high),
			Low:    utils.Round2(low),
			Close:  utils.Round2(price),
			Volume: volume,
		})
	}
	return bars
}
