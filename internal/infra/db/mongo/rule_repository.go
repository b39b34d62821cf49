package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	domainpricing "stayops/internal/domain/pricing"
	"stayops/internal/domain/shared/calday"
)

const (
	rulesCollection    = "pricing_rules"
	countersCollection = "counters"
	rulesSeqCounter    = "pricing_rules_seq"
)

// RuleRepository persists pricing rules in Mongo behind the same interface
// the in-memory store implements. Creation order is materialized as a seq
// field drawn from a counters document, so tie-breaks survive restarts.
type RuleRepository struct {
	rules    *mongo.Collection
	counters *mongo.Collection
}

func NewRuleRepository(client *Client) *RuleRepository {
	return &RuleRepository{
		rules:    client.DB.Collection(rulesCollection),
		counters: client.DB.Collection(countersCollection),
	}
}

type ruleDoc struct {
	ID              string    `bson:"_id"`
	Name            string    `bson:"name"`
	Type            string    `bson:"type"`
	PropertyID      string    `bson:"property_id,omitempty"`
	Enabled         bool      `bson:"enabled"`
	Priority        int       `bson:"priority"`
	Seq             int64     `bson:"seq"`
	StartDay        int       `bson:"start_day"`
	EndDay          int       `bson:"end_day"`
	CreatedAt       time.Time `bson:"created_at"`
	MinStay         int       `bson:"min_stay,omitempty"`
	MaxStay         int       `bson:"max_stay,omitempty"`
	PriceAdjustment float64   `bson:"price_adjustment,omitempty"`
	PromotionType   string    `bson:"promotion_type,omitempty"`
	BlockReason     string    `bson:"block_reason,omitempty"`
	Channels        []string  `bson:"channels,omitempty"`
}

func toDoc(r domainpricing.Rule) ruleDoc {
	return ruleDoc{
		ID:              r.ID,
		Name:            r.Name,
		Type:            string(r.Type),
		PropertyID:      r.PropertyID,
		Enabled:         r.Enabled,
		Priority:        r.Priority,
		Seq:             r.Seq,
		StartDay:        int(r.Start),
		EndDay:          int(r.End),
		CreatedAt:       r.CreatedAt,
		MinStay:         r.MinStay,
		MaxStay:         r.MaxStay,
		PriceAdjustment: r.PriceAdjustment,
		PromotionType:   r.PromotionType,
		BlockReason:     r.BlockReason,
		Channels:        r.Channels,
	}
}

func fromDoc(d ruleDoc) domainpricing.Rule {
	return domainpricing.Rule{
		ID:              d.ID,
		Name:            d.Name,
		Type:            domainpricing.RuleType(d.Type),
		PropertyID:      d.PropertyID,
		Enabled:         d.Enabled,
		Priority:        d.Priority,
		Seq:             d.Seq,
		Start:           calday.Day(d.StartDay),
		End:             calday.Day(d.EndDay),
		CreatedAt:       d.CreatedAt,
		MinStay:         d.MinStay,
		MaxStay:         d.MaxStay,
		PriceAdjustment: d.PriceAdjustment,
		PromotionType:   d.PromotionType,
		BlockReason:     d.BlockReason,
		Channels:        d.Channels,
	}
}

func (r *RuleRepository) List(ctx context.Context) ([]domainpricing.Rule, error) {
	cursor, err := r.rules.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "seq", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	var out []domainpricing.Rule
	for cursor.Next(ctx) {
		var doc ruleDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		out = append(out, fromDoc(doc))
	}
	return out, cursor.Err()
}

func (r *RuleRepository) ByID(ctx context.Context, id string) (domainpricing.Rule, error) {
	var doc ruleDoc
	err := r.rules.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domainpricing.Rule{}, domainpricing.ErrRuleNotFound
	}
	if err != nil {
		return domainpricing.Rule{}, err
	}
	return fromDoc(doc), nil
}

func (r *RuleRepository) Save(ctx context.Context, rule domainpricing.Rule) (domainpricing.Rule, error) {
	existing, err := r.ByID(ctx, rule.ID)
	switch {
	case err == nil:
		// Updates keep their place in the creation order.
		rule.Seq = existing.Seq
		rule.CreatedAt = existing.CreatedAt
	case errors.Is(err, domainpricing.ErrRuleNotFound):
		seq, err := r.nextSeq(ctx)
		if err != nil {
			return domainpricing.Rule{}, err
		}
		rule.Seq = seq
		if rule.CreatedAt.IsZero() {
			rule.CreatedAt = time.Now().UTC()
		}
	default:
		return domainpricing.Rule{}, err
	}

	_, err = r.rules.ReplaceOne(ctx, bson.M{"_id": rule.ID}, toDoc(rule), options.Replace().SetUpsert(true))
	if err != nil {
		return domainpricing.Rule{}, err
	}
	return rule, nil
}

func (r *RuleRepository) Delete(ctx context.Context, id string) error {
	res, err := r.rules.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domainpricing.ErrRuleNotFound
	}
	return nil
}

func (r *RuleRepository) nextSeq(ctx context.Context) (int64, error) {
	var counter struct {
		Value int64 `bson:"value"`
	}
	err := r.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": rulesSeqCounter},
		bson.M{"$inc": bson.M{"value": int64(1)}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&counter)
	if err != nil {
		return 0, err
	}
	return counter.Value, nil
}

var _ domainpricing.RuleRepository = (*RuleRepository)(nil)
