package dto

// FinancialRatioResponse is one company-year of statement figures with
// derived ratios. Not-computable ratios are null.
type FinancialRatioResponse struct {
	Ticker           string   `json:"ticker"`
	Name             string   `json:"name"`
	Sector           string   `json:"sector"`
	Year             int      `json:"year"`
	Revenue          float64  `json:"revenue"`
	GrossProfit      float64  `json:"gross_profit"`
	NetIncome        float64  `json:"net_income"`
	TotalAssets      float64  `json:"total_assets"`
	TotalLiabilities float64  `json:"total_liabilities"`
	Equity           float64  `json:"equity"`
	GrossMarginPct   *float64 `json:"gross_margin_pct"`
	NetMarginPct     *float64 `json:"net_margin_pct"`
	ROAPct           *float64 `json:"roa_pct"`
	ROEPct           *float64 `json:"roe_pct"`
	LeverageRatio    *float64 `json:"leverage_ratio"`
}

// VolatilitySummaryResponse is the aggregate volatility row for one ticker.
type VolatilitySummaryResponse struct {
	Ticker      string  `json:"ticker"`
	Name        string  `json:"name"`
	TradingDays int     `json:"trading_days"`
	AvgClose    float64 `json:"avg_close"`
	MinClose    float64 `json:"min_close"`
	MaxClose    float64 `json:"max_close"`
	AvgVolumeM  float64 `json:"avg_volume_m"`
}

// MovingAverageResponse is one day of a ticker's trend series. Window
// fields are null until the trailing window fills.
type MovingAverageResponse struct {
	Date        string   `json:"date"`
	Close       float64  `json:"close"`
	Volume      int64    `json:"volume"`
	ShortMA     *float64 `json:"ma_short"`
	LongMA      *float64 `json:"ma_long"`
	DailyReturn *float64 `json:"daily_return"`
}

// AnomalyFlagResponse is one severity-tagged anomaly flag.
type AnomalyFlagResponse struct {
	Ticker   string `json:"ticker"`
	Year     int    `json:"year"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

// ErrorResponse is the generic error payload.
type ErrorResponse struct {
	Error string `json:"error"`
}
