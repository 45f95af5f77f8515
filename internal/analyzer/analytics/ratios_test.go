package analytics

import (
	"math"
	"testing"

	"stock-market-analyzer/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func statement(ticker string, year int, revenue, grossProfit, netIncome, totalAssets, equity float64) entity.Financial {
	return entity.Financial{
		Company:     entity.Company{Ticker: ticker, Name: ticker + " Corp.", Sector: "Technology"},
		Year:        year,
		Revenue:     revenue,
		GrossProfit: grossProfit,
		NetIncome:   netIncome,
		TotalAssets: totalAssets,
		Equity:      equity,
	}
}

func TestComputeRatios(t *testing.T) {
	rows := ComputeRatios([]entity.Financial{
		statement("ACME", 2022, 100, 40, 10, 200, 50),
	})

	require.Len(t, rows, 1)
	r := rows[0]
	assert.Equal(t, "ACME", r.Ticker)
	assert.Equal(t, 2022, r.Year)
	assert.Equal(t, 40.0, r.GrossMarginPct)
	assert.Equal(t, 10.0, r.NetMarginPct)
	assert.Equal(t, 5.0, r.ROAPct)
	assert.Equal(t, 20.0, r.ROEPct)
	assert.Equal(t, 4.0, r.LeverageRatio)
}

func TestComputeRatiosRounding(t *testing.T) {
	rows := ComputeRatios([]entity.Financial{
		statement("ACME", 2022, 3, 1, 1, 3, 3),
	})

	require.Len(t, rows, 1)
	assert.Equal(t, 33.33, rows[0].GrossMarginPct)
	assert.Equal(t, 33.33, rows[0].ROAPct)
}

func TestComputeRatiosZeroRevenue(t *testing.T) {
	rows := ComputeRatios([]entity.Financial{
		statement("ACME", 2022, 0, 40, 10, 200, 50),
	})

	require.Len(t, rows, 1)
	assert.True(t, math.IsNaN(rows[0].GrossMarginPct))
	assert.True(t, math.IsNaN(rows[0].NetMarginPct))
	assert.Equal(t, 5.0, rows[0].ROAPct, "asset ratios stay computable")
}

func TestComputeRatiosZeroEquity(t *testing.T) {
	rows := ComputeRatios([]entity.Financial{
		statement("ACME", 2022, 100, 40, 10, 200, 0),
	})

	require.Len(t, rows, 1)
	assert.True(t, math.IsNaN(rows[0].ROEPct))
	assert.True(t, math.IsNaN(rows[0].LeverageRatio))
	assert.Equal(t, 40.0, rows[0].GrossMarginPct)
}

func TestComputeRatiosPreservesOrder(t *testing.T) {
	rows := ComputeRatios([]entity.Financial{
		statement("AAA", 2020, 100, 40, 10, 200, 50),
		statement("AAA", 2021, 110, 44, 11, 210, 55),
		statement("BBB", 2020, 90, 30, 5, 100, 40),
	})

	require.Len(t, rows, 3)
	assert.Equal(t, []string{"AAA", "AAA", "BBB"}, []string{rows[0].Ticker, rows[1].Ticker, rows[2].Ticker})
	assert.Equal(t, []int{2020, 2021, 2020}, []int{rows[0].Year, rows[1].Year, rows[2].Year})
}

func TestComputeRatiosEmptyInput(t *testing.T) {
	rows := ComputeRatios(nil)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}
