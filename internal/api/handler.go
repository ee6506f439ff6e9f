package api

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/findata/internal/domain/dto"
	"github.com/guttosm/findata/internal/service"
)

// Handler provides HTTP handlers for the market data endpoints.
//
// Responsibilities:
//   - Normalize path parameters
//   - Call the MarketService
//   - Shape results into response DTOs
//   - Map service errors to HTTP status codes
type Handler struct {
	svc service.MarketService
}

// NewHandler constructs a new Handler instance.
func NewHandler(svc service.MarketService) *Handler {
	return &Handler{svc: svc}
}

// GetStock handles GET /stock/{ticker}.
//
// GetStock godoc
// @Summary      Get a live stock quote
// @Description  Returns price, valuation fields and the last month of daily closes for one ticker
// @Tags         market
// @Produce      json
// @Param        ticker  path      string  true  "Ticker symbol" example(AAPL)
// @Success      200     {object}  dto.StockResponse  "Success"
// @Failure      500     {object}  dto.ErrorResponse  "Upstream failure"
// @Failure      504     {object}  dto.ErrorResponse  "Request timed out"
// @Router       /stock/{ticker} [get]
func (h *Handler) GetStock(c *gin.Context) {
	ticker := strings.ToUpper(strings.TrimSpace(c.Param("ticker")))

	snap, err := h.svc.GetStock(c.Request.Context(), ticker)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewStockResponse(*snap))
}

// GetEconomicIndicators handles GET /economic-indicators.
//
// GetEconomicIndicators godoc
// @Summary      Get economic indicators
// @Description  Returns the latest and previous value of each configured FRED series; series that fail are omitted
// @Tags         market
// @Produce      json
// @Success      200  {object}  dto.IndicatorsResponse  "Success"
// @Failure      503  {object}  dto.ErrorResponse       "FRED_API_KEY not configured"
// @Failure      504  {object}  dto.ErrorResponse       "Request timed out"
// @Router       /economic-indicators [get]
func (h *Handler) GetEconomicIndicators(c *gin.Context) {
	res, err := h.svc.GetEconomicIndicators(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewIndicatorsResponse(*res))
}

// GetMarketSummary handles GET /market-summary.
//
// GetMarketSummary godoc
// @Summary      Get major market indices
// @Description  Returns current level, previous close and change percent of the major indices; indices that fail are omitted
// @Tags         market
// @Produce      json
// @Success      200  {object}  dto.MarketSummaryResponse  "Success"
// @Failure      504  {object}  dto.ErrorResponse          "Request timed out"
// @Router       /market-summary [get]
func (h *Handler) GetMarketSummary(c *gin.Context) {
	res, err := h.svc.GetMarketSummary(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewMarketSummaryResponse(*res))
}

// fail maps a service error to its status and attaches the error body for
// middleware.ErrorHandler to render. The upstream message is passed through as
// the error string. Only the inbound request's own deadline maps to 504; an
// upstream client timeout is an ordinary failure.
func (h *Handler) fail(c *gin.Context, err error) {
	status, resp := http.StatusInternalServerError, dto.NewErrorResponse(err.Error(), nil)
	switch {
	case errors.Is(err, service.ErrIndicatorsUnconfigured):
		status = http.StatusServiceUnavailable
	case c.Request.Context().Err() != nil:
		status = http.StatusGatewayTimeout
		resp = dto.NewErrorResponse("upstream request timed out", context.Cause(c.Request.Context()))
	}

	c.Status(status)
	_ = c.Error(resp)
	c.Abort()
}
