package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/stockmetrics/internal/domain/dto"
	"github.com/guttosm/stockmetrics/internal/domain/models"
	"github.com/guttosm/stockmetrics/internal/service"
)

// Handler provides HTTP handlers for the return and alpha endpoints.
//
// Responsibilities:
//   - Read the query parameters into service queries
//   - Delegate computation to the MetricsService
//   - Translate results into response DTOs
//   - Push failures to the error middleware with c.Error
type Handler struct {
	svc service.MetricsService
}

// NewHandler constructs a new Handler instance.
func NewHandler(svc service.MetricsService) *Handler {
	return &Handler{svc: svc}
}

// GetReturn handles GET /api/return requests.
//
// GetReturn godoc
// @Summary      Daily returns of a stock
// @Description  Returns the daily returns of a ticker between from and to (max 30 days). Without from, the window starts on January 1 of the current year.
// @Tags         metrics
// @Produce      json
// @Param        symbol  query     string  true   "Stock ticker" example(AAPL)
// @Param        from    query     string  false  "Start date in YYYY-MM-DD" example(2024-03-01)
// @Param        to      query     string  false  "End date in YYYY-MM-DD" example(2024-03-28)
// @Success      200     {object}  dto.ReturnsResponse  "Success"
// @Failure      400     {object}  dto.ErrorResponse    "Bad Request"
// @Failure      404     {object}  dto.ErrorResponse    "Not Found"
// @Failure      429     {object}  dto.ErrorResponse    "Too Many Requests"
// @Failure      500     {object}  dto.ErrorResponse    "Internal Error"
// @Failure      502     {object}  dto.ErrorResponse    "Upstream Error"
// @Router       /api/return [get]
func (h *Handler) GetReturn(c *gin.Context) {
	records, err := h.svc.ComputeReturn(c.Request.Context(), models.ReturnQuery{
		Symbol: c.Query("symbol"),
		From:   c.Query("from"),
		To:     c.Query("to"),
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.NewReturnsResponse(records))
}

// GetAlpha handles GET /api/alpha requests.
//
// GetAlpha godoc
// @Summary      Alpha of a stock over a benchmark
// @Description  Returns the daily excess return of symbol over benchmark, aligned by trading day position.
// @Tags         metrics
// @Produce      json
// @Param        symbol     query     string  true   "Stock ticker" example(AAPL)
// @Param        benchmark  query     string  true   "Benchmark ticker" example(SPY)
// @Param        from       query     string  false  "Start date in YYYY-MM-DD" example(2024-03-01)
// @Param        to         query     string  false  "End date in YYYY-MM-DD" example(2024-03-28)
// @Success      200        {object}  dto.AlphaResponse  "Success"
// @Failure      400        {object}  dto.ErrorResponse  "Bad Request"
// @Failure      404        {object}  dto.ErrorResponse  "Not Found"
// @Failure      429        {object}  dto.ErrorResponse  "Too Many Requests"
// @Failure      500        {object}  dto.ErrorResponse  "Internal Error"
// @Failure      502        {object}  dto.ErrorResponse  "Upstream Error"
// @Router       /api/alpha [get]
func (h *Handler) GetAlpha(c *gin.Context) {
	records, err := h.svc.ComputeAlpha(c.Request.Context(), models.AlphaQuery{
		Symbol:    c.Query("symbol"),
		Benchmark: c.Query("benchmark"),
		From:      c.Query("from"),
		To:        c.Query("to"),
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAlphaResponse(records))
}
