package ginserver

import (
	"net/http"

	gin "github.com/gin-gonic/gin"

	"stayops/internal/app/commands"
	"stayops/internal/app/dto"
	pricingapp "stayops/internal/app/handlers/pricing"
	rulesapp "stayops/internal/app/handlers/rules"
	"stayops/internal/app/queries"
	"stayops/internal/domain/shared/calday"
)

type PricingHandler struct {
	Queries  queries.Bus
	Commands commands.Bus
}

func (h PricingHandler) Daily(c *gin.Context) {
	day, err := calday.Parse(c.Query("date"))
	if err != nil {
		badRequest(c, err)
		return
	}
	query := pricingapp.GetDailyPricingQuery{PropertyID: c.Param("id"), Date: day}
	result, err := queries.Ask[pricingapp.GetDailyPricingQuery, dto.DailyPricing](c.Request.Context(), h.Queries, query)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h PricingHandler) Range(c *gin.Context) {
	from, err := calday.Parse(c.Query("from"))
	if err != nil {
		badRequest(c, err)
		return
	}
	to, err := calday.Parse(c.Query("to"))
	if err != nil {
		badRequest(c, err)
		return
	}
	query := pricingapp.GetPricingRangeQuery{PropertyID: c.Param("id"), From: from, To: to}
	result, err := queries.Ask[pricingapp.GetPricingRangeQuery, []dto.DailyPricing](c.Request.Context(), h.Queries, query)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

type setPriceRequest struct {
	From        string  `json:"from" binding:"required"`
	To          string  `json:"to" binding:"required"`
	TargetPrice float64 `json:"target_price" binding:"required,gt=0"`
}

// SetPriceForRange applies a batch price edit over a committed selection.
func (h PricingHandler) SetPriceForRange(c *gin.Context) {
	var req setPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	from, err := calday.Parse(req.From)
	if err != nil {
		badRequest(c, err)
		return
	}
	to, err := calday.Parse(req.To)
	if err != nil {
		badRequest(c, err)
		return
	}
	cmd := rulesapp.SetPriceForRangeCommand{
		PropertyID:  c.Param("id"),
		From:        from,
		To:          to,
		TargetPrice: req.TargetPrice,
	}
	result, err := commands.Dispatch[rulesapp.SetPriceForRangeCommand, dto.Rule](c.Request.Context(), h.Commands, cmd)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

var _ PricingHTTP = PricingHandler{}
