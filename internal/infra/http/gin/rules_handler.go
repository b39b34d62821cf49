package ginserver

import (
	"net/http"

	gin "github.com/gin-gonic/gin"

	"stayops/internal/app/commands"
	"stayops/internal/app/dto"
	rulesapp "stayops/internal/app/handlers/rules"
	"stayops/internal/app/queries"
	domainpricing "stayops/internal/domain/pricing"
	"stayops/internal/domain/shared/calday"
)

type RulesHandler struct {
	Queries  queries.Bus
	Commands commands.Bus
}

func (h RulesHandler) List(c *gin.Context) {
	query := rulesapp.ListRulesQuery{PropertyID: c.Query("property_id")}
	result, err := queries.Ask[rulesapp.ListRulesQuery, []dto.Rule](c.Request.Context(), h.Queries, query)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

type createRuleRequest struct {
	Name            string   `json:"name" binding:"required"`
	Type            string   `json:"type" binding:"required,oneof=min_stay max_stay closing_block channel_restriction promotion price_override"`
	PropertyID      string   `json:"property_id"`
	Enabled         *bool    `json:"enabled"`
	Priority        int      `json:"priority"`
	StartDate       string   `json:"start_date" binding:"required"`
	EndDate         string   `json:"end_date" binding:"required"`
	MinStay         int      `json:"min_stay"`
	MaxStay         int      `json:"max_stay"`
	PriceAdjustment float64  `json:"price_adjustment"`
	PromotionType   string   `json:"promotion_type"`
	BlockReason     string   `json:"block_reason"`
	Channels        []string `json:"channels"`
}

func (h RulesHandler) Create(c *gin.Context) {
	var req createRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	start, err := calday.Parse(req.StartDate)
	if err != nil {
		badRequest(c, err)
		return
	}
	end, err := calday.Parse(req.EndDate)
	if err != nil {
		badRequest(c, err)
		return
	}
	enabled := true
	if req.Enabled != nil {
		enabled = *req.Enabled
	}
	cmd := rulesapp.AddRuleCommand{Payload: rulesapp.RulePayload{
		Name:            req.Name,
		Type:            domainpricing.RuleType(req.Type),
		PropertyID:      req.PropertyID,
		Enabled:         enabled,
		Priority:        req.Priority,
		StartDate:       start,
		EndDate:         end,
		MinStay:         req.MinStay,
		MaxStay:         req.MaxStay,
		PriceAdjustment: req.PriceAdjustment,
		PromotionType:   req.PromotionType,
		BlockReason:     req.BlockReason,
		Channels:        req.Channels,
	}}
	result, err := commands.Dispatch[rulesapp.AddRuleCommand, dto.Rule](c.Request.Context(), h.Commands, cmd)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

type updateRuleRequest struct {
	Name            *string  `json:"name"`
	Enabled         *bool    `json:"enabled"`
	Priority        *int     `json:"priority"`
	StartDate       *string  `json:"start_date"`
	EndDate         *string  `json:"end_date"`
	MinStay         *int     `json:"min_stay"`
	MaxStay         *int     `json:"max_stay"`
	PriceAdjustment *float64 `json:"price_adjustment"`
	PromotionType   *string  `json:"promotion_type"`
	BlockReason     *string  `json:"block_reason"`
	Channels        []string `json:"channels"`
}

func (h RulesHandler) Update(c *gin.Context) {
	var req updateRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	patch := rulesapp.RulePatch{
		Name:            req.Name,
		Enabled:         req.Enabled,
		Priority:        req.Priority,
		MinStay:         req.MinStay,
		MaxStay:         req.MaxStay,
		PriceAdjustment: req.PriceAdjustment,
		PromotionType:   req.PromotionType,
		BlockReason:     req.BlockReason,
		Channels:        req.Channels,
	}
	if req.StartDate != nil {
		start, err := calday.Parse(*req.StartDate)
		if err != nil {
			badRequest(c, err)
			return
		}
		patch.StartDate = &start
	}
	if req.EndDate != nil {
		end, err := calday.Parse(*req.EndDate)
		if err != nil {
			badRequest(c, err)
			return
		}
		patch.EndDate = &end
	}
	cmd := rulesapp.UpdateRuleCommand{ID: c.Param("id"), Patch: patch}
	result, err := commands.Dispatch[rulesapp.UpdateRuleCommand, dto.Rule](c.Request.Context(), h.Commands, cmd)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h RulesHandler) Delete(c *gin.Context) {
	cmd := rulesapp.DeleteRuleCommand{ID: c.Param("id")}
	if _, err := commands.Dispatch[rulesapp.DeleteRuleCommand, struct{}](c.Request.Context(), h.Commands, cmd); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type duplicateRuleRequest struct {
	PropertyIDs []string `json:"property_ids" binding:"required,min=1"`
}

func (h RulesHandler) Duplicate(c *gin.Context) {
	var req duplicateRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	cmd := rulesapp.DuplicateRuleCommand{ID: c.Param("id"), TargetPropertyIDs: req.PropertyIDs}
	result, err := commands.Dispatch[rulesapp.DuplicateRuleCommand, []dto.Rule](c.Request.Context(), h.Commands, cmd)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

func (h RulesHandler) ApplyToAll(c *gin.Context) {
	cmd := rulesapp.ApplyRuleToAllCommand{ID: c.Param("id")}
	result, err := commands.Dispatch[rulesapp.ApplyRuleToAllCommand, dto.Rule](c.Request.Context(), h.Commands, cmd)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

var _ RulesHTTP = RulesHandler{}
