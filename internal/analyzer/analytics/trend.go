package analytics

import (
	"time"

	"stock-market-analyzer/internal/entity"
	"stock-market-analyzer/pkg/utils"
)

// Default trailing windows for the moving-average query.
const (
	DefaultShortWindow = 50
	DefaultLongWindow  = 200
)

// MovingAveragePoint is one day of a company's trend series. ShortMA and
// LongMA are nil until their trailing windows fill; DailyReturn is nil on
// the first day.
type MovingAveragePoint struct {
	Date        time.Time
	Close       float64
	Volume      int64
	ShortMA     *float64
	LongMA      *float64
	DailyReturn *float64
}

// MovingAverages computes trailing simple moving averages over the short
// and long windows plus the day-over-day close return in percent. The
// windows are strictly trailing; no look-ahead.
func MovingAverages(prices []entity.DailyPrice, short, long int) []MovingAveragePoint {
	if short <= 0 {
		short = DefaultShortWindow
	}
	if long <= 0 {
		long = DefaultLongWindow
	}

	points := make([]MovingAveragePoint, 0, len(prices))
	var shortSum, longSum float64
	for i, p := range prices {
		shortSum += p.Close
		longSum += p.Close
		if i >= short {
			shortSum -= prices[i-short].Close
		}
		if i >= long {
			longSum -= prices[i-long].Close
		}

		point := MovingAveragePoint{Date: p.Date, Close: p.Close, Volume: p.Volume}
		if i >= short-1 {
			ma := shortSum / float64(short)
			point.ShortMA = &ma
		}
		if i >= long-1 {
			ma := longSum / float64(long)
			point.LongMA = &ma
		}
		if i > 0 && prices[i-1].Close != 0 {
			ret := 100 * (p.Close/prices[i-1].Close - 1)
			point.DailyReturn = &ret
		}
		points = append(points, point)
	}
	return points
}

// VolatilityStats is the aggregate volatility summary for one ticker's
// whole stored series.
type VolatilityStats struct {
	Ticker      string
	Name        string
	TradingDays int
	AvgClose    float64
	MinClose    float64
	MaxClose    float64
	AvgVolumeM  float64
}

// Volatility aggregates a chronological price series into a single summary
// row: trading-day count, mean/min/max close, and mean volume in millions.
func Volatility(ticker, name string, prices []entity.DailyPrice) VolatilityStats {
	stats := VolatilityStats{Ticker: ticker, Name: name, TradingDays: len(prices)}
	if len(prices) == 0 {
		return stats
	}

	minClose, maxClose := prices[0].Close, prices[0].Close
	var closeSum, volumeSum float64
	for _, p := range prices {
		closeSum += p.Close
		volumeSum += float64(p.Volume)
		if p.Close < minClose {
			minClose = p.Close
		}
		if p.Close > maxClose {
			maxClose = p.Close
		}
	}

	n := float64(len(prices))
	stats.AvgClose = utils.Round2(closeSum / n)
	stats.MinClose = utils.Round2(minClose)
	stats.MaxClose = utils.Round2(maxClose)
	stats.AvgVolumeM = utils.Round2(volumeSum / n / 1e6)
	return stats
}
