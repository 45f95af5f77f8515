package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"stock-market-analyzer/internal/analyzer/config"
	delivery "stock-market-analyzer/internal/analyzer/delivery/http"
	"stock-market-analyzer/internal/analyzer/repository"
	"stock-market-analyzer/internal/analyzer/service"
	"stock-market-analyzer/pkg/logger"
	"stock-market-analyzer/pkg/postgres"

	"github.com/labstack/echo/v4"
	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "analyzer-service",
	Short: "Synthetic market data simulator and financial analytics service",
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Load the dataset and print the analytics tables once",
	Run:   runOnce,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Load the dataset and serve the analytics API",
	Run:   runServe,
}

// deps bundles the wired application services.
type deps struct {
	logger       *logger.Logger
	loaderSvc    service.LoaderService
	analyticsSvc service.AnalyticsService
}

func buildDeps(cfg *config.Config) (*deps, func(), error) {
	appLogger, err := logger.New(cfg.Logger.Level, cfg.Logger.Encoding)
	if err != nil {
		return nil, nil, fmt.Errorf("initializing logger: %w", err)
	}

	db, err := postgres.NewDB(postgres.Config{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		DBName:          cfg.Database.DBName,
		SSLMode:         cfg.Database.SSLMode,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("initializing database: %w", err)
	}

	cleanup := func() {
		if sqlDB, err := db.DB.DB(); err == nil {
			_ = sqlDB.Close()
		}
		_ = appLogger.Sync()
	}

	companyRepo := repository.NewCompanyRepository(db.DB)
	priceRepo := repository.NewDailyPriceRepository(db.DB)
	financialRepo := repository.NewFinancialRepository(db.DB)

	return &deps{
		logger:       appLogger,
		loaderSvc:    service.NewLoaderService(cfg, appLogger, companyRepo, priceRepo, financialRepo),
		analyticsSvc: service.NewAnalyticsService(cfg, appLogger, companyRepo, priceRepo, financialRepo),
	}, cleanup, nil
}

func runOnce(cmd *cobra.Command, args []string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	app, cleanup, err := buildDeps(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize service: %v", err)
	}
	defer cleanup()

	if err := app.loaderSvc.Load(ctx); err != nil {
		app.logger.Fatal("Data load failed", logger.ErrorField(err))
	}

	if err := printTables(ctx, app.analyticsSvc); err != nil {
		app.logger.Fatal("Analytics failed", logger.ErrorField(err))
	}
}

// printTables writes the ratio, anomaly, and volatility tables to stdout.
func printTables(ctx context.Context, svc service.AnalyticsService) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)

	ratios, err := svc.FinancialRatios(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "\nFINANCIAL RATIOS")
	fmt.Fprintln(w, "TICKER\tYEAR\tGROSS MARGIN %\tNET MARGIN %\tROA %\tLEVERAGE")
	for _, r := range ratios {
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\t%s\n",
			r.Ticker, r.Year,
			fmtRatio(r.GrossMarginPct), fmtRatio(r.NetMarginPct),
			fmtRatio(r.ROAPct), fmtRatio(r.LeverageRatio))
	}

	flags, err := svc.DetectAnomalies(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "\nANOMALY FLAGS")
	if len(flags) == 0 {
		fmt.Fprintln(w, "No anomalies detected.")
	}
	for _, f := range flags {
		fmt.Fprintf(w, "[%s]\t%s %d\t%s\n", f.Severity, f.Ticker, f.Year, f.Message)
	}

	summary, err := svc.VolatilitySummary(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "\nVOLATILITY SUMMARY")
	fmt.Fprintln(w, "TICKER\tDAYS\tAVG CLOSE\tMIN\tMAX\tAVG VOLUME (M)")
	for _, v := range summary {
		fmt.Fprintf(w, "%s\t%d\t%.2f\t%.2f\t%.2f\t%.2f\n",
			v.Ticker, v.TradingDays, v.AvgClose, v.MinClose, v.MaxClose, v.AvgVolumeM)
	}

	return w.Flush()
}

func fmtRatio(v *float64) string {
	if v == nil {
		return "n/a"
	}
	return fmt.Sprintf("%.2f", *v)
}

func runServe(cmd *cobra.Command, args []string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	app, cleanup, err := buildDeps(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize service: %v", err)
	}
	defer cleanup()

	app.logger.Info("Starting Analyzer Service", logger.Field("name", cfg.App.Name))

	if err := app.loaderSvc.Load(ctx); err != nil {
		app.logger.Fatal("Initial data load failed", logger.ErrorField(err))
	}

	// Periodic idempotent re-load; the unique keys keep history append-only.
	if spec := cfg.Analytics.RefreshCron; spec != "" {
		scheduler := cron.New()
		if _, err := scheduler.AddFunc(spec, func() {
			if err := app.loaderSvc.Load(context.Background()); err != nil {
				app.logger.Error("Scheduled data refresh failed", logger.ErrorField(err))
			}
		}); err != nil {
			app.logger.Fatal("Invalid refresh cron expression", logger.ErrorField(err))
		}
		scheduler.Start()
		defer scheduler.Stop()
	}

	e := echo.New()
	e.HideBanner = true

	analyticsHandler := delivery.NewAnalyticsHandler(app.analyticsSvc, app.logger)
	apiV1 := e.Group("/api/v1")
	analyticsGroup := apiV1.Group("/analytics")
	analyticsHandler.RegisterRoutes(analyticsGroup)

	go func() {
		addr := fmt.Sprintf(":%d", cfg.API.Port)
		app.logger.Info("HTTP server starting", logger.Field("address", addr))
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			app.logger.Error("HTTP server failed to start", logger.ErrorField(err))
			stop()
		}
	}()

	<-ctx.Done()

	app.logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		app.logger.Fatal("Server forced to shutdown", logger.ErrorField(err))
	}

	app.logger.Info("Server exiting")
}

func main() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "configs/config-analyzer.yaml", "Path to the configuration file")
	rootCmd.AddCommand(runCmd, serveCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing analyzer CLI: %s\n", err)
		os.Exit(1)
	}
}
