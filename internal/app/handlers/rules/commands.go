package rules

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"stayops/internal/app/dto"
	"stayops/internal/app/policies"
	domaincalendar "stayops/internal/domain/calendar"
	domainpricing "stayops/internal/domain/pricing"
	"stayops/internal/domain/shared/calday"
	"stayops/internal/domain/shared/events"
)

const (
	addRuleKey          = "rules.add"
	updateRuleKey       = "rules.update"
	deleteRuleKey       = "rules.delete"
	duplicateRuleKey    = "rules.duplicate"
	applyRuleToAllKey   = "rules.apply_to_all"
	setPriceForRangeKey = "rules.set_price_for_range"
)

// Priority given to overrides created from a batch price edit; high enough
// to beat authored promotions without competing with closing blocks.
const manualOverridePriority = 100

var (
	ErrEmptyRuleName   = errors.New("rules: rule name is required")
	ErrNoTargets       = errors.New("rules: at least one target property is required")
	ErrNoBasePrice     = errors.New("rules: property has no base price to derive an override from")
	ErrInvalidPrice    = errors.New("rules: target price must be positive")
	ErrInvalidRangeEnd = errors.New("rules: range end precedes range start")
)

// RulePayload carries the authorable fields of a pricing rule.
type RulePayload struct {
	Name            string
	Type            domainpricing.RuleType
	PropertyID      string
	Enabled         bool
	Priority        int
	StartDate       calday.Day
	EndDate         calday.Day
	MinStay         int
	MaxStay         int
	PriceAdjustment float64
	PromotionType   string
	BlockReason     string
	Channels        []string
}

func publish(ctx context.Context, port policies.RuleEvents, logger *slog.Logger, ev events.DomainEvent) {
	if port == nil {
		return
	}
	if err := port.Publish(ctx, ev); err != nil && logger != nil {
		logger.Warn("rule event publish failed", "event", ev.EventName(), "error", err)
	}
}

type AddRuleCommand struct {
	Payload RulePayload
}

func (c AddRuleCommand) Key() string { return addRuleKey }

type AddRuleHandler struct {
	Rules  domainpricing.RuleRepository
	Events policies.RuleEvents
	Logger *slog.Logger
}

func (h *AddRuleHandler) Handle(ctx context.Context, cmd AddRuleCommand) (dto.Rule, error) {
	if strings.TrimSpace(cmd.Payload.Name) == "" {
		return dto.Rule{}, ErrEmptyRuleName
	}
	rule := domainpricing.Rule{
		ID:              uuid.NewString(),
		Name:            cmd.Payload.Name,
		Type:            cmd.Payload.Type,
		PropertyID:      cmd.Payload.PropertyID,
		Enabled:         cmd.Payload.Enabled,
		Priority:        cmd.Payload.Priority,
		Start:           cmd.Payload.StartDate,
		End:             cmd.Payload.EndDate,
		MinStay:         cmd.Payload.MinStay,
		MaxStay:         cmd.Payload.MaxStay,
		PriceAdjustment: cmd.Payload.PriceAdjustment,
		PromotionType:   cmd.Payload.PromotionType,
		BlockReason:     cmd.Payload.BlockReason,
		Channels:        cmd.Payload.Channels,
	}
	if err := rule.Validate(); err != nil {
		return dto.Rule{}, err
	}
	saved, err := h.Rules.Save(ctx, rule)
	if err != nil {
		return dto.Rule{}, err
	}
	publish(ctx, h.Events, h.Logger, domainpricing.RuleCreated{Rule: saved, At: time.Now().UTC()})
	return dto.MapRule(saved), nil
}

// RulePatch is a partial update; nil fields are left unchanged.
type RulePatch struct {
	Name            *string
	Enabled         *bool
	Priority        *int
	StartDate       *calday.Day
	EndDate         *calday.Day
	MinStay         *int
	MaxStay         *int
	PriceAdjustment *float64
	PromotionType   *string
	BlockReason     *string
	Channels        []string
}

type UpdateRuleCommand struct {
	ID    string
	Patch RulePatch
}

func (c UpdateRuleCommand) Key() string { return updateRuleKey }

type UpdateRuleHandler struct {
	Rules  domainpricing.RuleRepository
	Events policies.RuleEvents
	Logger *slog.Logger
}

func (h *UpdateRuleHandler) Handle(ctx context.Context, cmd UpdateRuleCommand) (dto.Rule, error) {
	rule, err := h.Rules.ByID(ctx, cmd.ID)
	if err != nil {
		return dto.Rule{}, err
	}
	p := cmd.Patch
	if p.Name != nil {
		rule.Name = *p.Name
	}
	if p.Enabled != nil {
		rule.Enabled = *p.Enabled
	}
	if p.Priority != nil {
		rule.Priority = *p.Priority
	}
	if p.StartDate != nil {
		rule.Start = *p.StartDate
	}
	if p.EndDate != nil {
		rule.End = *p.EndDate
	}
	if p.MinStay != nil {
		rule.MinStay = *p.MinStay
	}
	if p.MaxStay != nil {
		rule.MaxStay = *p.MaxStay
	}
	if p.PriceAdjustment != nil {
		rule.PriceAdjustment = *p.PriceAdjustment
	}
	if p.PromotionType != nil {
		rule.PromotionType = *p.PromotionType
	}
	if p.BlockReason != nil {
		rule.BlockReason = *p.BlockReason
	}
	if p.Channels != nil {
		rule.Channels = p.Channels
	}
	if err := rule.Validate(); err != nil {
		return dto.Rule{}, err
	}
	saved, err := h.Rules.Save(ctx, rule)
	if err != nil {
		return dto.Rule{}, err
	}
	publish(ctx, h.Events, h.Logger, domainpricing.RuleUpdated{Rule: saved, At: time.Now().UTC()})
	return dto.MapRule(saved), nil
}

type DeleteRuleCommand struct {
	ID string
}

func (c DeleteRuleCommand) Key() string { return deleteRuleKey }

type DeleteRuleHandler struct {
	Rules  domainpricing.RuleRepository
	Events policies.RuleEvents
	Logger *slog.Logger
}

func (h *DeleteRuleHandler) Handle(ctx context.Context, cmd DeleteRuleCommand) (struct{}, error) {
	if err := h.Rules.Delete(ctx, cmd.ID); err != nil {
		return struct{}{}, err
	}
	publish(ctx, h.Events, h.Logger, domainpricing.RuleDeleted{RuleID: cmd.ID, At: time.Now().UTC()})
	return struct{}{}, nil
}

type DuplicateRuleCommand struct {
	ID                string
	TargetPropertyIDs []string
}

func (c DuplicateRuleCommand) Key() string { return duplicateRuleKey }

type DuplicateRuleHandler struct {
	Rules  domainpricing.RuleRepository
	Events policies.RuleEvents
	Logger *slog.Logger
}

// Handle clones the rule once per target property; clones get fresh IDs and
// sequence numbers, so they count as the most recently created on ties.
func (h *DuplicateRuleHandler) Handle(ctx context.Context, cmd DuplicateRuleCommand) ([]dto.Rule, error) {
	if len(cmd.TargetPropertyIDs) == 0 {
		return nil, ErrNoTargets
	}
	rule, err := h.Rules.ByID(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.Rule, 0, len(cmd.TargetPropertyIDs))
	for _, propertyID := range cmd.TargetPropertyIDs {
		clone := rule.Clone(uuid.NewString(), propertyID)
		saved, err := h.Rules.Save(ctx, clone)
		if err != nil {
			return nil, err
		}
		publish(ctx, h.Events, h.Logger, domainpricing.RuleCreated{Rule: saved, At: time.Now().UTC()})
		out = append(out, dto.MapRule(saved))
	}
	return out, nil
}

type ApplyRuleToAllCommand struct {
	ID string
}

func (c ApplyRuleToAllCommand) Key() string { return applyRuleToAllKey }

type ApplyRuleToAllHandler struct {
	Rules  domainpricing.RuleRepository
	Events policies.RuleEvents
	Logger *slog.Logger
}

func (h *ApplyRuleToAllHandler) Handle(ctx context.Context, cmd ApplyRuleToAllCommand) (dto.Rule, error) {
	rule, err := h.Rules.ByID(ctx, cmd.ID)
	if err != nil {
		return dto.Rule{}, err
	}
	rule.PropertyID = ""
	saved, err := h.Rules.Save(ctx, rule)
	if err != nil {
		return dto.Rule{}, err
	}
	publish(ctx, h.Events, h.Logger, domainpricing.RuleUpdated{Rule: saved, At: time.Now().UTC()})
	return dto.MapRule(saved), nil
}

// SetPriceForRangeCommand is the batch price edit applied to a committed
// selection: it materializes as a price_override rule covering the range.
type SetPriceForRangeCommand struct {
	PropertyID  string
	From        calday.Day
	To          calday.Day
	TargetPrice float64
}

func (c SetPriceForRangeCommand) Key() string { return setPriceForRangeKey }

type SetPriceForRangeHandler struct {
	Rules    domainpricing.RuleRepository
	Calendar domaincalendar.Repository
	Events   policies.RuleEvents
	Logger   *slog.Logger
}

func (h *SetPriceForRangeHandler) Handle(ctx context.Context, cmd SetPriceForRangeCommand) (dto.Rule, error) {
	if cmd.To < cmd.From {
		return dto.Rule{}, ErrInvalidRangeEnd
	}
	if cmd.TargetPrice <= 0 {
		return dto.Rule{}, ErrInvalidPrice
	}
	prop, err := h.Calendar.Property(ctx, cmd.PropertyID)
	if err != nil {
		return dto.Rule{}, err
	}
	if prop.BasePrice <= 0 {
		return dto.Rule{}, ErrNoBasePrice
	}

	// The override stores the edit as a percentage of the base price, same
	// shape as an authored override rule.
	adjustment := (cmd.TargetPrice/prop.BasePrice - 1) * 100
	rule := domainpricing.Rule{
		ID:              uuid.NewString(),
		Name:            fmt.Sprintf("Manual price %s to %s", cmd.From, cmd.To),
		Type:            domainpricing.RulePriceOverride,
		PropertyID:      cmd.PropertyID,
		Enabled:         true,
		Priority:        manualOverridePriority,
		Start:           cmd.From,
		End:             cmd.To,
		PriceAdjustment: adjustment,
	}
	saved, err := h.Rules.Save(ctx, rule)
	if err != nil {
		return dto.Rule{}, err
	}
	publish(ctx, h.Events, h.Logger, domainpricing.RuleCreated{Rule: saved, At: time.Now().UTC()})
	return dto.MapRule(saved), nil
}
