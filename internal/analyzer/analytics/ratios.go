// Package analytics holds the pure derived-metrics engines: financial
// ratios, rolling trend statistics, volatility summaries, and the
// rule-based anomaly scan. Nothing here touches storage; callers fetch the
// rows and feed them in.
package analytics

import (
	"math"

	"stock-market-analyzer/internal/entity"
	"stock-market-analyzer/pkg/utils"
)

// RatioRow is one company-year of raw statement figures plus the derived
// ratios, all rounded to two decimals. Ratios with a zero denominator are
// NaN; consumers must treat NaN as "not computable", not as a value.
type RatioRow struct {
	Ticker           string
	Name             string
	Sector           string
	Year             int
	Revenue          float64
	GrossProfit      float64
	NetIncome        float64
	TotalAssets      float64
	TotalLiabilities float64
	Equity           float64
	GrossMarginPct   float64
	NetMarginPct     float64
	ROAPct           float64
	ROEPct           float64
	LeverageRatio    float64
}

// ComputeRatios derives profitability and leverage ratios for every
// statement row. The input must already be ordered by ticker then year;
// the output preserves that order, which the anomaly scan relies on.
func ComputeRatios(financials []entity.Financial) []RatioRow {
	rows := make([]RatioRow, 0, len(financials))
	for _, f := range financials {
		rows = append(rows, RatioRow{
			Ticker:           f.Company.Ticker,
			Name:             f.Company.Name,
			Sector:           f.Company.Sector,
			Year:             f.Year,
			Revenue:          f.Revenue,
			GrossProfit:      f.GrossProfit,
			NetIncome:        f.NetIncome,
			TotalAssets:      f.TotalAssets,
			TotalLiabilities: f.TotalLiabilities,
			Equity:           f.Equity,
			GrossMarginPct:   utils.Round2(safeDiv(f.GrossProfit*100, f.Revenue)),
			NetMarginPct:     utils.Round2(safeDiv(f.NetIncome*100, f.Revenue)),
			ROAPct:           utils.Round2(safeDiv(f.NetIncome*100, f.TotalAssets)),
			ROEPct:           utils.Round2(safeDiv(f.NetIncome*100, f.Equity)),
			LeverageRatio:    utils.Round2(safeDiv(f.TotalAssets, f.Equity)),
		})
	}
	return rows
}

// safeDiv returns NaN instead of panicking or producing Inf when the
// denominator is zero.
func safeDiv(num, den float64) float64 {
	if den == 0 {
		return math.NaN()
	}
	return num / den
}
