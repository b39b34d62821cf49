package ginserver

import (
	"errors"
	"net/http"

	gin "github.com/gin-gonic/gin"

	rulesapp "stayops/internal/app/handlers/rules"
	domaincalendar "stayops/internal/domain/calendar"
	domainpricing "stayops/internal/domain/pricing"
	"stayops/internal/domain/shared/calday"
)

// writeError maps domain sentinels onto HTTP statuses; anything unknown is a
// plain 500 so handlers stay thin.
func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domainpricing.ErrRuleNotFound),
		errors.Is(err, domaincalendar.ErrUnknownProperty):
		status = http.StatusNotFound
	case errors.Is(err, domainpricing.ErrInvalidDateRange),
		errors.Is(err, domainpricing.ErrMissingField),
		errors.Is(err, domainpricing.ErrUnknownRuleType),
		errors.Is(err, calday.ErrInvalidWindow),
		errors.Is(err, rulesapp.ErrEmptyRuleName),
		errors.Is(err, rulesapp.ErrNoTargets),
		errors.Is(err, rulesapp.ErrNoBasePrice),
		errors.Is(err, rulesapp.ErrInvalidPrice),
		errors.Is(err, rulesapp.ErrInvalidRangeEnd):
		status = http.StatusBadRequest
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
