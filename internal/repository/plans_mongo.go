package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/chucky-1/finfine/internal/model"
)

const (
	plansDatabase   = "finfine"
	plansCollection = "plans"
)

type PlansMongo struct {
	cli *mongo.Client
}

func NewPlansMongo(cli *mongo.Client) *PlansMongo {
	return &PlansMongo{
		cli: cli,
	}
}

// Save replaces the stored fields of the plan, so a field left out of a later save is gone.
func (m *PlansMongo) Save(ctx context.Context, plan *model.Plan) error {
	fields := plan.Fields
	if fields == nil {
		fields = map[string]float64{}
	}
	_, err := m.collection().UpdateOne(ctx,
		bson.D{{Key: "user", Value: plan.UserID}, {Key: "kind", Value: plan.Kind}},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "fields", Value: fields},
			{Key: "updated_at", Value: plan.UpdatedAt},
		}}}, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("mongo couldn't UpdateOne in Save method: %v", err)
	}
	return nil
}

func (m *PlansMongo) Get(ctx context.Context, userID, kind string) (*model.Plan, error) {
	result := m.collection().FindOne(ctx,
		bson.D{{Key: "user", Value: userID}, {Key: "kind", Value: kind}})
	if errors.Is(result.Err(), mongo.ErrNoDocuments) {
		return nil, ErrPlanNotFound
	}
	if result.Err() != nil {
		return nil, fmt.Errorf("mongo couldn't FindOne in Get method: %v", result.Err())
	}

	var plan model.Plan
	if err := result.Decode(&plan); err != nil {
		return nil, fmt.Errorf("mongo couldn't Decode in Get method: %v", err)
	}
	return &plan, nil
}

func (m *PlansMongo) collection() *mongo.Collection {
	return m.cli.Database(plansDatabase).Collection(plansCollection)
}
