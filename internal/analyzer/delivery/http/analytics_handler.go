package http

import (
	"net/http"
	"strconv"

	"stock-market-analyzer/internal/analyzer/service"
	"stock-market-analyzer/pkg/logger"

	"github.com/labstack/echo/v4"
)

// AnalyticsHandler handles HTTP requests for the derived analytics tables.
type AnalyticsHandler struct {
	analyticsService service.AnalyticsService
	logger           *logger.Logger
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(analyticsService service.AnalyticsService, logger *logger.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService, logger: logger}
}

// RegisterRoutes registers the analytics routes to the Echo group.
func (h *AnalyticsHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/ratios", h.GetFinancialRatios)
	g.GET("/volatility", h.GetVolatilitySummary)
	g.GET("/anomalies", h.GetAnomalies)
	g.GET("/prices/:ticker/moving-averages", h.GetMovingAverages)
}

// GetFinancialRatios returns one row per company-year with derived ratios.
func (h *AnalyticsHandler) GetFinancialRatios(c echo.Context) error {
	ratios, err := h.analyticsService.FinancialRatios(c.Request().Context())
	if err != nil {
		h.logger.Error("Failed to compute financial ratios", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, ratios)
}

// GetVolatilitySummary returns the per-ticker aggregate volatility rows.
func (h *AnalyticsHandler) GetVolatilitySummary(c echo.Context) error {
	summary, err := h.analyticsService.VolatilitySummary(c.Request().Context())
	if err != nil {
		h.logger.Error("Failed to compute volatility summary", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, summary)
}

// GetAnomalies returns every anomaly flag across the ratio history.
func (h *AnalyticsHandler) GetAnomalies(c echo.Context) error {
	flags, err := h.analyticsService.DetectAnomalies(c.Request().Context())
	if err != nil {
		h.logger.Error("Failed to run anomaly scan", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, flags)
}

// GetMovingAverages returns a ticker's trend series. Optional short/long
// query parameters override the configured windows.
func (h *AnalyticsHandler) GetMovingAverages(c echo.Context) error {
	ticker := c.Param("ticker")
	if ticker == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Missing ticker"})
	}

	short, err := windowParam(c.QueryParam("short"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid short window"})
	}
	long, err := windowParam(c.QueryParam("long"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid long window"})
	}

	series, err := h.analyticsService.MovingAverages(c.Request().Context(), ticker, short, long)
	if err != nil {
		h.logger.Error("Failed to compute moving averages",
			logger.ErrorField(err), logger.Field("ticker", ticker))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, series)
}

// windowParam parses an optional positive window size; empty means "use
// the default".
func windowParam(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	window, err := strconv.Atoi(raw)
	if err != nil || window <= 0 {
		return 0, echo.ErrBadRequest
	}
	return window, nil
}
