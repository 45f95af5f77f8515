package analytics

import (
	"fmt"
	"math"
)

// Severity classifies an anomaly flag.
type Severity string

const (
	SeverityWarning Severity = "WARNING"
	SeverityDanger  Severity = "DANGER"
)

// Threshold rules evaluated on each consecutive year pair.
const (
	grossMarginDropPP  = -5.0 // percentage points, year over year
	leverageRatioLimit = 4.0
	revenueDeclinePct  = -5.0 // percent, year over year
)

// Flag is one rule violation for a company-year.
type Flag struct {
	Ticker   string
	Year     int
	Severity Severity
	Message  string
}

// DetectAnomalies iterates consecutive year pairs within each ticker's
// ratio history and evaluates the four threshold rules independently, so a
// single year can emit several flags. NaN ratios and a zero prior-year
// revenue disable only the rule that needs them. rows must be ordered by
// ticker then year; the result keeps that order and is never nil.
func DetectAnomalies(rows []RatioRow) []Flag {
	flags := make([]Flag, 0)
	for i := 1; i < len(rows); i++ {
		prev, curr := rows[i-1], rows[i]
		if prev.Ticker != curr.Ticker {
			continue
		}

		// NaN comparisons are false, which skips the rule for
		// not-computable ratios.
		if marginDrop := curr.GrossMarginPct - prev.GrossMarginPct; marginDrop < grossMarginDropPP {
			flags = append(flags, Flag{
				Ticker:   curr.Ticker,
				Year:     curr.Year,
				Severity: SeverityWarning,
				Message:  fmt.Sprintf("Gross margin dropped %.1fpp", math.Abs(marginDrop)),
			})
		}
		if curr.LeverageRatio > leverageRatioLimit {
			flags = append(flags, Flag{
				Ticker:   curr.Ticker,
				Year:     curr.Year,
				Severity: SeverityDanger,
				Message:  fmt.Sprintf("High leverage ratio: %.2fx", curr.LeverageRatio),
			})
		}
		if prev.Revenue != 0 {
			if growth := 100 * (curr.Revenue - prev.Revenue) / prev.Revenue; growth < revenueDeclinePct {
				flags = append(flags, Flag{
					Ticker:   curr.Ticker,
					Year:     curr.Year,
					Severity: SeverityWarning,
					Message:  fmt.Sprintf("Revenue declined %.1f%%", math.Abs(growth)),
				})
			}
		}
		if curr.NetIncome < 0 {
			flags = append(flags, Flag{
				Ticker:   curr.Ticker,
				Year:     curr.Year,
				Severity: SeverityDanger,
				Message:  fmt.Sprintf("Net loss recorded: $%.0fM", curr.NetIncome),
			})
		}
	}
	return flags
}
