package costing_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fabcore/internal/costing"
	"fabcore/internal/seed"
	"fabcore/testutil"
)

// Exercises the full chain over the bundled dataset: seed the store, resolve
// the linked BOM, work order, process steps and engineering project for the
// panel quotation, and write the roll-up back.
func TestSeededQuotationRollUp(t *testing.T) {
	ctx := context.Background()
	s := newStore(t, testutil.NewFakeSubstrate())
	seeded, err := seed.New(s).Ensure(ctx)
	require.NoError(t, err)
	require.True(t, seeded)

	engine := costing.NewEngine(s, costing.DefaultConfig())
	b, ok := engine.Breakdown("seed-quot-pcc")
	require.True(t, ok)

	// Material from the linked BOM's items.
	assert.Equal(t, 97460.0, b.MaterialCost)
	assert.False(t, b.MaterialEstimated)
	assert.Equal(t, 42.0, b.CopperWeight)
	assert.Equal(t, 32760.0, b.Materials.Copper)
	assert.Equal(t, 44200.0, b.Materials.Steel)
	assert.Equal(t, 8100.0, b.Materials.Hardware)
	assert.Equal(t, 12400.0, b.Materials.Other)

	// Labor from the work order's three process steps at quantity 2:
	// 3h*1400*2 + 4h*900*2 + 10h*default 250*2.
	assert.Equal(t, 8400.0+7200.0+5000.0, b.LaborCost)
	assert.False(t, b.LaborEstimated)
	assert.Equal(t, 3090.0, b.OverheadCost)

	// Engineering from the linked project's estimated hours.
	assert.Equal(t, 36*500.0, b.EngineeringCost)

	assert.Equal(t, 97460.0+20600.0+3090.0+18000.0, b.TotalCost)
	assert.Equal(t, b.TotalCost/2, b.UnitCost)

	updated, ok, err := engine.UpdateQuotationWithIntegratedData(ctx, "seed-quot-pcc")
	require.NoError(t, err)
	require.True(t, ok)
	require.NotNil(t, updated.MaterialCost)
	assert.Equal(t, b.MaterialCost, *updated.MaterialCost)
	assert.Equal(t, updated.Subtotal+b.EngineeringCost+updated.Tax, updated.Total)
}

// A quotation with no links at all in the seeded dataset falls back to the
// configured ratios.
func TestSeededQuotationFallback(t *testing.T) {
	ctx := context.Background()
	s := newStore(t, testutil.NewFakeSubstrate())
	_, err := seed.New(s).Ensure(ctx)
	require.NoError(t, err)

	b, ok := costing.NewEngine(s, costing.DefaultConfig()).Breakdown("seed-quot-conveyor")
	require.True(t, ok)

	assert.True(t, b.MaterialEstimated)
	assert.Equal(t, 52000*0.6, b.MaterialCost)
	assert.True(t, b.LaborEstimated)
	assert.Equal(t, 52000*0.3, b.LaborCost)
}
