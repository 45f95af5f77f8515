package service

import (
	"context"
	"fmt"
	"time"

	"stock-market-analyzer/internal/analyzer/config"
	"stock-market-analyzer/internal/analyzer/repository"
	"stock-market-analyzer/internal/analyzer/seed"
	"stock-market-analyzer/internal/analyzer/simulator"
	"stock-market-analyzer/internal/entity"
	"stock-market-analyzer/pkg/logger"
	"stock-market-analyzer/pkg/utils"
)

// LoaderService loads the seed universe: company reference data, simulated
// price history, and annual statements.
type LoaderService interface {
	Load(ctx context.Context) error
}

// NewLoaderService creates a new loader service.
func NewLoaderService(
	cfg *config.Config,
	log *logger.Logger,
	companyRepo repository.CompanyRepository,
	priceRepo repository.DailyPriceRepository,
	financialRepo repository.FinancialRepository,
) LoaderService {
	return &loaderService{
		cfg:           cfg,
		logger:        log,
		companyRepo:   companyRepo,
		priceRepo:     priceRepo,
		financialRepo: financialRepo,
	}
}

type loaderService struct {
	cfg           *config.Config
	logger        *logger.Logger
	companyRepo   repository.CompanyRepository
	priceRepo     repository.DailyPriceRepository
	financialRepo repository.FinancialRepository
}

// Load upserts every seed company and appends its simulated prices and
// statements. Inserts ignore existing rows, so repeated loads do not
// duplicate history. A company without a configured base price is a
// configuration error fatal for that ticker only; the remaining tickers
// still load.
func (s *loaderService) Load(ctx context.Context) error {
	start, err := time.Parse(utils.DateLayout, s.cfg.Simulation.StartDate)
	if err != nil {
		return fmt.Errorf("invalid simulation start_date: %w", err)
	}
	end, err := time.Parse(utils.DateLayout, s.cfg.Simulation.EndDate)
	if err != nil {
		return fmt.Errorf("invalid simulation end_date: %w", err)
	}
	simCfg := simulator.Config{
		Drift:      s.cfg.Simulation.Drift,
		Volatility: s.cfg.Simulation.Volatility,
	}

	for _, cs := range seed.Companies {
		company := &entity.Company{
			Ticker:   cs.Ticker,
			Name:     cs.Name,
			Sector:   cs.Sector,
			Industry: cs.Industry,
		}
		if err := s.companyRepo.Upsert(ctx, company); err != nil {
			return fmt.Errorf("upserting company %s: %w", cs.Ticker, err)
		}

		basePrice, ok := seed.BasePrices[cs.Ticker]
		if !ok {
			s.logger.Error("No base price configured, skipping simulation",
				logger.Field("ticker", cs.Ticker))
			continue
		}

		bars := simulator.Simulate(cs.Ticker, basePrice, start, end, simCfg)
		prices := make([]entity.DailyPrice, 0, len(bars))
		for _, b := range bars {
			prices = append(prices, entity.DailyPrice{
				CompanyID: company.ID,
				Date:      b.Date,
				Open:      b.Open,
				High:      b.High,
				Low:       b.Low,
				Close:     b.Close,
				Volume:    b.Volume,
			})
		}
		if err := s.priceRepo.BulkInsertIgnore(ctx, prices); err != nil {
			return fmt.Errorf("inserting prices for %s: %w", cs.Ticker, err)
		}

		statements := seed.Financials[cs.Ticker]
		financials := make([]entity.Financial, 0, len(statements))
		for _, st := range statements {
			financials = append(financials, entity.Financial{
				CompanyID:        company.ID,
				Year:             st.Year,
				Revenue:          st.Revenue,
				GrossProfit:      st.GrossProfit,
				NetIncome:        st.NetIncome,
				TotalAssets:      st.TotalAssets,
				TotalLiabilities: st.TotalLiabilities,
				Equity:           st.Equity,
			})
		}
		if err := s.financialRepo.BulkInsertIgnore(ctx, financials); err != nil {
			return fmt.Errorf("inserting financials for %s: %w", cs.Ticker, err)
		}

		s.logger.Info("Loaded ticker",
			logger.Field("ticker", cs.Ticker),
			logger.Field("price_rows", len(prices)),
			logger.Field("financial_years", len(financials)))
	}

	return nil
}
