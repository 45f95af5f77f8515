package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"stock-market-analyzer/internal/analyzer/analytics"
	"stock-market-analyzer/internal/analyzer/config"
	"stock-market-analyzer/internal/analyzer/dto"
	"stock-market-analyzer/internal/analyzer/repository"
	"stock-market-analyzer/pkg/logger"
	"stock-market-analyzer/pkg/utils"

	"github.com/patrickmn/go-cache"
)

const cacheKeyRatios = "analytics:ratios"

// AnalyticsService exposes the derived-metrics queries. Every method
// returns a well-formed (possibly empty) result.
type AnalyticsService interface {
	FinancialRatios(ctx context.Context) ([]dto.FinancialRatioResponse, error)
	VolatilitySummary(ctx context.Context) ([]dto.VolatilitySummaryResponse, error)
	MovingAverages(ctx context.Context, ticker string, short, long int) ([]dto.MovingAverageResponse, error)
	DetectAnomalies(ctx context.Context) ([]dto.AnomalyFlagResponse, error)
}

// NewAnalyticsService creates a new analytics service. Derived tables are
// recomputed from storage on each call; the in-memory cache is a pure
// optimization with a short TTL.
func NewAnalyticsService(
	cfg *config.Config,
	log *logger.Logger,
	companyRepo repository.CompanyRepository,
	priceRepo repository.DailyPriceRepository,
	financialRepo repository.FinancialRepository,
) AnalyticsService {
	ttl := 5 * time.Minute
	if cfg.Analytics.CacheTTL != "" {
		if parsed, err := time.ParseDuration(cfg.Analytics.CacheTTL); err == nil {
			ttl = parsed
		} else {
			log.Warn("Invalid analytics cache_ttl, using default", logger.ErrorField(err))
		}
	}
	return &analyticsService{
		cfg:           cfg,
		logger:        log,
		companyRepo:   companyRepo,
		priceRepo:     priceRepo,
		financialRepo: financialRepo,
		memCache:      cache.New(ttl, 2*ttl),
	}
}

type analyticsService struct {
	cfg           *config.Config
	logger        *logger.Logger
	companyRepo   repository.CompanyRepository
	priceRepo     repository.DailyPriceRepository
	financialRepo repository.FinancialRepository
	memCache      *cache.Cache
}

// ratioRows fetches the ordered statement rows and derives ratios,
// consulting the cache first.
func (s *analyticsService) ratioRows(ctx context.Context) ([]analytics.RatioRow, error) {
	if cached, found := s.memCache.Get(cacheKeyRatios); found {
		return cached.([]analytics.RatioRow), nil
	}

	financials, err := s.financialRepo.FindAllWithCompany(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching financials: %w", err)
	}
	rows := analytics.ComputeRatios(financials)
	s.memCache.Set(cacheKeyRatios, rows, cache.DefaultExpiration)
	return rows, nil
}

// FinancialRatios returns one row per company-year with derived ratios,
// ordered by ticker then year.
func (s *analyticsService) FinancialRatios(ctx context.Context) ([]dto.FinancialRatioResponse, error) {
	rows, err := s.ratioRows(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.FinancialRatioResponse, 0, len(rows))
	for _, r := range rows {
		responses = append(responses, dto.FinancialRatioResponse{
			Ticker:           r.Ticker,
			Name:             r.Name,
			Sector:           r.Sector,
			Year:             r.Year,
			Revenue:          r.Revenue,
			GrossProfit:      r.GrossProfit,
			NetIncome:        r.NetIncome,
			TotalAssets:      r.TotalAssets,
			TotalLiabilities: r.TotalLiabilities,
			Equity:           r.Equity,
			GrossMarginPct:   finitePtr(r.GrossMarginPct),
			NetMarginPct:     finitePtr(r.NetMarginPct),
			ROAPct:           finitePtr(r.ROAPct),
			ROEPct:           finitePtr(r.ROEPct),
			LeverageRatio:    finitePtr(r.LeverageRatio),
		})
	}
	return responses, nil
}

// VolatilitySummary returns one aggregate row per company, ordered by
// ticker.
func (s *analyticsService) VolatilitySummary(ctx context.Context) ([]dto.VolatilitySummaryResponse, error) {
	companies, err := s.companyRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching companies: %w", err)
	}

	responses := make([]dto.VolatilitySummaryResponse, 0, len(companies))
	for _, c := range companies {
		prices, err := s.priceRepo.FindByTicker(ctx, c.Ticker)
		if err != nil {
			return nil, fmt.Errorf("fetching prices for %s: %w", c.Ticker, err)
		}
		stats := analytics.Volatility(c.Ticker, c.Name, prices)
		responses = append(responses, dto.VolatilitySummaryResponse{
			Ticker:      stats.Ticker,
			Name:        stats.Name,
			TradingDays: stats.TradingDays,
			AvgClose:    stats.AvgClose,
			MinClose:    stats.MinClose,
			MaxClose:    stats.MaxClose,
			AvgVolumeM:  stats.AvgVolumeM,
		})
	}
	return responses, nil
}

// MovingAverages returns a ticker's chronological trend series. Window
// sizes fall back to the configured defaults when non-positive.
func (s *analyticsService) MovingAverages(ctx context.Context, ticker string, short, long int) ([]dto.MovingAverageResponse, error) {
	if short <= 0 {
		short = s.cfg.Analytics.ShortWindow
	}
	if long <= 0 {
		long = s.cfg.Analytics.LongWindow
	}

	cacheKey := fmt.Sprintf("analytics:ma:%s:%d:%d", ticker, short, long)
	if cached, found := s.memCache.Get(cacheKey); found {
		return cached.([]dto.MovingAverageResponse), nil
	}

	if _, err := s.companyRepo.FindByTicker(ctx, ticker); err != nil {
		return nil, fmt.Errorf("unknown ticker %s: %w", ticker, err)
	}
	prices, err := s.priceRepo.FindByTicker(ctx, ticker)
	if err != nil {
		return nil, fmt.Errorf("fetching prices for %s: %w", ticker, err)
	}

	points := analytics.MovingAverages(prices, short, long)
	responses := make([]dto.MovingAverageResponse, 0, len(points))
	for _, p := range points {
		responses = append(responses, dto.MovingAverageResponse{
			Date:        p.Date.Format(utils.DateLayout),
			Close:       p.Close,
			Volume:      p.Volume,
			ShortMA:     p.ShortMA,
			LongMA:      p.LongMA,
			DailyReturn: p.DailyReturn,
		})
	}
	s.memCache.Set(cacheKey, responses, cache.DefaultExpiration)
	return responses, nil
}

// DetectAnomalies scans the ratio history and returns every flag in
// ticker-then-year order. An empty slice is the valid no-anomalies result.
func (s *analyticsService) DetectAnomalies(ctx context.Context) ([]dto.AnomalyFlagResponse, error) {
	rows, err := s.ratioRows(ctx)
	if err != nil {
		return nil, err
	}

	flags := analytics.DetectAnomalies(rows)
	responses := make([]dto.AnomalyFlagResponse, 0, len(flags))
	for _, f := range flags {
		responses = append(responses, dto.AnomalyFlagResponse{
			Ticker:   f.Ticker,
			Year:     f.Year,
			Severity: string(f.Severity),
			Message:  f.Message,
		})
	}
	return responses, nil
}

// finitePtr maps NaN and infinities to nil so they serialize as JSON null.
func finitePtr(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
