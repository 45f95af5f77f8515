package analytics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ratioRow(ticker string, year int, grossMargin, leverage, revenue, netIncome float64) RatioRow {
	return RatioRow{
		Ticker:         ticker,
		Year:           year,
		GrossMarginPct: grossMargin,
		LeverageRatio:  leverage,
		Revenue:        revenue,
		NetIncome:      netIncome,
	}
}

func TestDetectAnomaliesGrossMarginDrop(t *testing.T) {
	flags := DetectAnomalies([]RatioRow{
		ratioRow("ACME", 2021, 45.0, 2.0, 100, 10),
		ratioRow("ACME", 2022, 38.0, 2.0, 100, 10),
	})

	require.Len(t, flags, 1)
	assert.Equal(t, "ACME", flags[0].Ticker)
	assert.Equal(t, 2022, flags[0].Year)
	assert.Equal(t, SeverityWarning, flags[0].Severity)
	assert.Equal(t, "Gross margin dropped 7.0pp", flags[0].Message)
}

func TestDetectAnomaliesMarginDropAtThresholdDoesNotFire(t *testing.T) {
	// Exactly a 5pp drop is not a flag; the rule requires more than 5pp.
	flags := DetectAnomalies([]RatioRow{
		ratioRow("ACME", 2021, 45.0, 2.0, 100, 10),
		ratioRow("ACME", 2022, 40.0, 2.0, 100, 10),
	})
	assert.Empty(t, flags)
}

func TestDetectAnomaliesHighLeverage(t *testing.T) {
	flags := DetectAnomalies([]RatioRow{
		ratioRow("ACME", 2021, 40.0, 3.9, 100, 10),
		ratioRow("ACME", 2022, 40.0, 4.5, 100, 10),
	})

	require.Len(t, flags, 1)
	assert.Equal(t, SeverityDanger, flags[0].Severity)
	assert.Equal(t, "High leverage ratio: 4.50x", flags[0].Message)
}

func TestDetectAnomaliesRevenueDecline(t *testing.T) {
	flags := DetectAnomalies([]RatioRow{
		ratioRow("ACME", 2021, 40.0, 2.0, 200, 10),
		ratioRow("ACME", 2022, 40.0, 2.0, 180, 10),
	})

	require.Len(t, flags, 1)
	assert.Equal(t, SeverityWarning, flags[0].Severity)
	assert.Equal(t, "Revenue declined 10.0%", flags[0].Message)
}

func TestDetectAnomaliesNetLoss(t *testing.T) {
	flags := DetectAnomalies([]RatioRow{
		ratioRow("ACME", 2021, 40.0, 2.0, 100, 10),
		ratioRow("ACME", 2022, 40.0, 2.0, 100, -2722),
	})

	require.Len(t, flags, 1)
	assert.Equal(t, SeverityDanger, flags[0].Severity)
	assert.Equal(t, "Net loss recorded: $-2722M", flags[0].Message)
}

func TestDetectAnomaliesRulesIndependent(t *testing.T) {
	// One year pair can trip several rules at once.
	flags := DetectAnomalies([]RatioRow{
		ratioRow("ACME", 2021, 45.0, 2.0, 200, 10),
		ratioRow("ACME", 2022, 38.0, 4.5, 180, -50),
	})

	require.Len(t, flags, 4)
	severities := make([]Severity, 0, len(flags))
	for _, f := range flags {
		assert.Equal(t, 2022, f.Year)
		severities = append(severities, f.Severity)
	}
	assert.Equal(t, []Severity{SeverityWarning, SeverityDanger, SeverityWarning, SeverityDanger}, severities)
}

func TestDetectAnomaliesZeroPriorRevenueSkipsRule(t *testing.T) {
	flags := DetectAnomalies([]RatioRow{
		ratioRow("ACME", 2021, 40.0, 2.0, 0, 10),
		ratioRow("ACME", 2022, 40.0, 2.0, 50, -5),
	})

	// The growth rule is not applicable, but the net-loss rule still fires.
	require.Len(t, flags, 1)
	assert.Equal(t, SeverityDanger, flags[0].Severity)
}

func TestDetectAnomaliesNaNMarginSkipsRule(t *testing.T) {
	flags := DetectAnomalies([]RatioRow{
		ratioRow("ACME", 2021, math.NaN(), 2.0, 100, 10),
		ratioRow("ACME", 2022, 38.0, 2.0, 100, 10),
	})
	assert.Empty(t, flags)
}

func TestDetectAnomaliesTickerBoundary(t *testing.T) {
	// The last year of one ticker is never compared with the first year of
	// the next.
	flags := DetectAnomalies([]RatioRow{
		ratioRow("AAA", 2022, 60.0, 2.0, 500, 10),
		ratioRow("BBB", 2022, 20.0, 2.0, 100, 10),
	})
	assert.Empty(t, flags)
}

func TestDetectAnomaliesCleanHistory(t *testing.T) {
	flags := DetectAnomalies([]RatioRow{
		ratioRow("ACME", 2020, 40.0, 2.0, 100, 10),
		ratioRow("ACME", 2021, 42.0, 2.1, 120, 15),
		ratioRow("ACME", 2022, 44.0, 2.2, 150, 20),
	})

	require.NotNil(t, flags)
	assert.Empty(t, flags)
}

func TestDetectAnomaliesEmptyInput(t *testing.T) {
	flags := DetectAnomalies(nil)
	require.NotNil(t, flags)
	assert.Empty(t, flags)
}
