package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chucky-1/finfine/internal/model"
	"github.com/chucky-1/finfine/internal/repository"
)

var planKinds = map[string]struct{}{
	model.PlanBudget:   {},
	model.PlanCashFlow: {},
	model.PlanSafety:   {},
	model.PlanChildren: {},
	model.PlanMarriage: {},
}

type Plans struct {
	repo repository.Plans
	now  func() time.Time
}

func NewPlans(repo repository.Plans) *Plans {
	return &Plans{
		repo: repo,
		now:  time.Now,
	}
}

func (p *Plans) Save(ctx context.Context, session *model.Session, kind string, fields map[string]float64) error {
	if _, ok := planKinds[kind]; !ok {
		return fmt.Errorf("service.Plans, save error: unknown plan %q", kind)
	}
	return p.repo.Save(ctx, &model.Plan{
		UserID:    session.User.ID,
		Kind:      kind,
		Fields:    fields,
		UpdatedAt: p.now().UTC(),
	})
}

// Load returns the saved inputs of a planner page, or false when nothing was saved.
func (p *Plans) Load(ctx context.Context, session *model.Session, kind string) (map[string]float64, bool, error) {
	plan, err := p.repo.Get(ctx, session.User.ID, kind)
	if errors.Is(err, repository.ErrPlanNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("service.Plans, load error: %w", err)
	}
	return plan.Fields, true, nil
}
