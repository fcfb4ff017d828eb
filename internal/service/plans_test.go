package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chucky-1/finfine/internal/model"
	"github.com/chucky-1/finfine/internal/repository"
)

func TestPlans_SaveLoad(t *testing.T) {
	plans := NewPlans(repository.NewPlansLocalStorage())
	ctx := context.Background()

	_, ok, err := plans.Load(ctx, testSession, model.PlanSafety)
	require.NoError(t, err)
	require.False(t, ok)

	fields := map[string]float64{"expenses": 2500, "savings": 4000}
	require.NoError(t, plans.Save(ctx, testSession, model.PlanSafety, fields))

	got, ok, err := plans.Load(ctx, testSession, model.PlanSafety)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, fields, got)
}

func TestPlans_UnknownKind(t *testing.T) {
	plans := NewPlans(repository.NewPlansLocalStorage())
	err := plans.Save(context.Background(), testSession, "retirement", map[string]float64{"age": 60})
	require.Error(t, err)
}
