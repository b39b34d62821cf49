package ginserver

import (
	"net/http"
	"strconv"

	gin "github.com/gin-gonic/gin"

	"stayops/internal/app/dto"
	calendarapp "stayops/internal/app/handlers/calendar"
	"stayops/internal/app/queries"
	"stayops/internal/domain/shared/calday"
)

type CalendarHandler struct {
	Queries          queries.Bus
	DefaultCellWidth float64
}

func (h CalendarHandler) Row(c *gin.Context) {
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
	cellWidth := h.DefaultCellWidth
	if raw := c.Query("cell_width"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil && v > 0 {
			cellWidth = v
		}
	}
	query := calendarapp.GetCalendarRowQuery{
		PropertyID: c.Param("id"),
		From:       from,
		To:         to,
		CellWidth:  cellWidth,
	}
	result, err := queries.Ask[calendarapp.GetCalendarRowQuery, dto.CalendarRow](c.Request.Context(), h.Queries, query)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

var _ CalendarHTTP = CalendarHandler{}
