package repository

import (
	"context"
	"errors"
	"sync"

	"github.com/chucky-1/finfine/internal/model"
)

var ErrPlanNotFound = errors.New("plan not found")

//go:generate mockery --name=Plans

// Plans keeps the inputs users saved on planner pages, one plan per user and kind.
type Plans interface {
	Save(ctx context.Context, plan *model.Plan) error
	Get(ctx context.Context, userID, kind string) (*model.Plan, error)
}

type PlansLocalStorage struct {
	mu sync.RWMutex
	m  map[string]model.Plan
}

func NewPlansLocalStorage() *PlansLocalStorage {
	return &PlansLocalStorage{
		m: make(map[string]model.Plan),
	}
}

func (l *PlansLocalStorage) Save(_ context.Context, plan *model.Plan) error {
	fields := make(map[string]float64, len(plan.Fields))
	for k, v := range plan.Fields {
		fields[k] = v
	}
	stored := *plan
	stored.Fields = fields

	l.mu.Lock()
	defer l.mu.Unlock()
	l.m[planKey(plan.UserID, plan.Kind)] = stored
	return nil
}

func (l *PlansLocalStorage) Get(_ context.Context, userID, kind string) (*model.Plan, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	p, ok := l.m[planKey(userID, kind)]
	if !ok {
		return nil, ErrPlanNotFound
	}
	return &p, nil
}

func planKey(userID, kind string) string {
	return userID + "/" + kind
}
