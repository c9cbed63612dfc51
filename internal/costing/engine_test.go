package costing_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fabcore/internal/costing"
	"fabcore/internal/store"
	"fabcore/pkg/domain"
	"fabcore/testutil"
)

func newStore(t *testing.T, sub *testutil.FakeSubstrate) *store.Store {
	t.Helper()
	s, err := store.New(context.Background(), sub)
	require.NoError(t, err)
	return s
}

func newEngine(s *store.Store) *costing.Engine {
	return costing.NewEngine(s, costing.DefaultConfig())
}

func createQuotation(t *testing.T, s *store.Store, q domain.Quotation) domain.Quotation {
	t.Helper()
	created, err := s.CreateQuotation(context.Background(), q)
	require.NoError(t, err)
	return created
}

func TestBreakdownFallbackHeuristics(t *testing.T) {
	ctx := context.Background()
	s := newStore(t, testutil.NewFakeSubstrate())

	customer, err := s.CreateCustomer(ctx, domain.Customer{Name: "C1"})
	require.NoError(t, err)
	q := createQuotation(t, s, domain.Quotation{
		Number:     "QT-1",
		CustomerID: customer.ID,
		Items:      []domain.QuotationItem{{Quantity: 2, UnitPrice: 100, Amount: 200}},
		Subtotal:   200,
	})

	b, ok := newEngine(s).Breakdown(q.ID)
	require.True(t, ok)

	assert.Equal(t, 120.0, b.MaterialCost)
	assert.True(t, b.MaterialEstimated)
	assert.Equal(t, 60.0, b.LaborCost)
	assert.True(t, b.LaborEstimated)
	assert.Equal(t, 9.0, b.OverheadCost)
	assert.Equal(t, 0.0, b.EngineeringCost)
	assert.Equal(t, 189.0, b.TotalCost)
	assert.Equal(t, 94.5, b.UnitCost)
	assert.Equal(t, 30.0, b.ProfitMargin)
	assert.Equal(t, 109.5, b.UnitPrice)
}

func TestBreakdownPrefersQuotationCostFields(t *testing.T) {
	s := newStore(t, testutil.NewFakeSubstrate())
	material := 75.0
	labor := 40.0
	engineering := 10.0
	q := createQuotation(t, s, domain.Quotation{
		Subtotal:        200,
		MaterialCost:    &material,
		LaborCost:       &labor,
		EngineeringCost: &engineering,
	})

	b, ok := newEngine(s).Breakdown(q.ID)
	require.True(t, ok)

	assert.Equal(t, 75.0, b.MaterialCost)
	assert.False(t, b.MaterialEstimated)
	assert.Equal(t, 40.0, b.LaborCost)
	assert.False(t, b.LaborEstimated)
	assert.Equal(t, 6.0, b.OverheadCost)
	assert.Equal(t, 10.0, b.EngineeringCost)
}

func TestLinkedBOMOverridesMaterialFallback(t *testing.T) {
	ctx := context.Background()
	s := newStore(t, testutil.NewFakeSubstrate())

	projectID := "proj-shared"
	_, err := s.CreateBillOfMaterials(ctx, domain.BillOfMaterials{
		Number:               "B1",
		EngineeringProjectID: &projectID,
		Items:                []domain.BOMItem{{Description: "bar", Quantity: 10, UnitCost: 5, TotalCost: 50}},
		TotalCost:            50,
	})
	require.NoError(t, err)

	stale := 9999.0
	q := createQuotation(t, s, domain.Quotation{
		Subtotal:             200,
		MaterialCost:         &stale,
		EngineeringProjectID: &projectID,
	})

	b, ok := newEngine(s).Breakdown(q.ID)
	require.True(t, ok)
	assert.Equal(t, 50.0, b.MaterialCost, "a resolved BOM wins over stored and estimated material cost")
	assert.False(t, b.MaterialEstimated)
}

func TestMaterialBreakdownAndCopperWeight(t *testing.T) {
	ctx := context.Background()
	s := newStore(t, testutil.NewFakeSubstrate())

	projectID := "proj-cu"
	_, err := s.CreateBillOfMaterials(ctx, domain.BillOfMaterials{
		EngineeringProjectID: &projectID,
		Items: []domain.BOMItem{
			{Category: domain.MaterialCopper, Quantity: 42, UnitCost: 780},
			{Category: domain.MaterialSteel, Quantity: 650, UnitCost: 68},
			{Category: domain.MaterialHardware, Quantity: 1800, UnitCost: 4.5},
			{MaterialGrade: "C11000 copper strip", Quantity: 8, UnitCost: 800},
			{Description: "powder coat", Quantity: 40, UnitCost: 310},
		},
	})
	require.NoError(t, err)
	q := createQuotation(t, s, domain.Quotation{EngineeringProjectID: &projectID})

	b, ok := newEngine(s).Breakdown(q.ID)
	require.True(t, ok)

	assert.Equal(t, 42*780.0+8*800.0, b.Materials.Copper)
	assert.Equal(t, 650*68.0, b.Materials.Steel)
	assert.Equal(t, 1800*4.5, b.Materials.Hardware)
	assert.Equal(t, 40*310.0, b.Materials.Other)
	assert.Equal(t, 50.0, b.CopperWeight, "copper weight sums quantities of copper-tagged lines")
	sum := b.Materials.Copper + b.Materials.Steel + b.Materials.Hardware + b.Materials.Other
	assert.InDelta(t, b.MaterialCost, sum, 1e-9)
}

func TestLaborFromProcessSteps(t *testing.T) {
	ctx := context.Background()
	s := newStore(t, testutil.NewFakeSubstrate())

	q := createQuotation(t, s, domain.Quotation{Subtotal: 1000})
	woRef := q.ID
	wo, err := s.CreateProductionWorkOrder(ctx, domain.ProductionWorkOrder{
		SalesOrderID: &woRef,
		Quantity:     2,
	})
	require.NoError(t, err)

	rate := 1400.0
	_, err = s.CreateProcessStep(ctx, domain.ProcessStep{
		WorkOrderID: wo.ID, Sequence: 1, EstimatedDuration: 180, RatePerHour: &rate,
	})
	require.NoError(t, err)
	_, err = s.CreateProcessStep(ctx, domain.ProcessStep{
		WorkOrderID: wo.ID, Sequence: 2, EstimatedDuration: 60,
	})
	require.NoError(t, err)

	b, ok := newEngine(s).Breakdown(q.ID)
	require.True(t, ok)

	// 3h * 1400 * 2 + 1h * default 250 * 2
	assert.Equal(t, 8400.0+500.0, b.LaborCost)
	assert.False(t, b.LaborEstimated)
	assert.InDelta(t, b.LaborCost*0.15, b.OverheadCost, 1e-9)
}

func TestOverheadSplitsAtFixedProportions(t *testing.T) {
	s := newStore(t, testutil.NewFakeSubstrate())
	labor := 1000.0
	q := createQuotation(t, s, domain.Quotation{Subtotal: 500, LaborCost: &labor})

	b, ok := newEngine(s).Breakdown(q.ID)
	require.True(t, ok)

	assert.Equal(t, 150.0, b.OverheadCost)
	assert.Equal(t, 60.0, b.Overheads.Facility)
	assert.Equal(t, 45.0, b.Overheads.Equipment)
	assert.Equal(t, 30.0, b.Overheads.Management)
	assert.Equal(t, 15.0, b.Overheads.Utilities)
}

func TestEngineeringCostFromProject(t *testing.T) {
	ctx := context.Background()
	s := newStore(t, testutil.NewFakeSubstrate())

	project, err := s.CreateEngineeringProject(ctx, domain.EngineeringProject{
		Name: "Panel design", EstimatedHours: 10,
	})
	require.NoError(t, err)
	q := createQuotation(t, s, domain.Quotation{
		Subtotal:             200,
		EngineeringProjectID: &project.ID,
	})

	b, ok := newEngine(s).Breakdown(q.ID)
	require.True(t, ok)
	assert.Equal(t, 5000.0, b.EngineeringCost, "10 estimated hours at the default 500/h rate")
	assert.False(t, b.EngineeringEstimated)
}

func TestZeroQuantityGuard(t *testing.T) {
	s := newStore(t, testutil.NewFakeSubstrate())
	q := createQuotation(t, s, domain.Quotation{Subtotal: 200})

	b, ok := newEngine(s).Breakdown(q.ID)
	require.True(t, ok)

	assert.Equal(t, 0.0, b.UnitCost)
	assert.Equal(t, b.ProfitMargin, b.UnitPrice, "unit price degrades to the margin when quantity is zero")
	assert.False(t, isNaNOrInf(b.UnitCost) || isNaNOrInf(b.UnitPrice))
}

func TestUnknownQuotation(t *testing.T) {
	s := newStore(t, testutil.NewFakeSubstrate())
	e := newEngine(s)

	_, ok := e.Breakdown("missing")
	assert.False(t, ok)
	_, ok = e.UnitEconomics("missing")
	assert.False(t, ok)
	_, ok, err := e.UpdateQuotationWithIntegratedData(context.Background(), "missing")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUnitEconomicsSurfacesCommodityInputs(t *testing.T) {
	ctx := context.Background()
	s := newStore(t, testutil.NewFakeSubstrate())

	projectID := "proj-ue"
	_, err := s.CreateBillOfMaterials(ctx, domain.BillOfMaterials{
		EngineeringProjectID: &projectID,
		Items:                []domain.BOMItem{{Category: domain.MaterialCopper, Quantity: 12, UnitCost: 700}},
	})
	require.NoError(t, err)
	q := createQuotation(t, s, domain.Quotation{
		Subtotal:             8400,
		Items:                []domain.QuotationItem{{Quantity: 4, UnitPrice: 2100, Amount: 8400}},
		EngineeringProjectID: &projectID,
	})

	cfg := costing.DefaultConfig()
	cfg.CopperLMEPrice = 900
	ue, ok := costing.NewEngine(s, cfg).UnitEconomics(q.ID)
	require.True(t, ok)

	assert.Equal(t, 12.0, ue.CopperWeight)
	assert.Equal(t, 900.0, ue.CopperLMEPrice)
	assert.Equal(t, 4.0, ue.Quantity)
	assert.Greater(t, ue.UnitPrice, ue.UnitCost)
}

func TestWriteBackUpdatesQuotation(t *testing.T) {
	ctx := context.Background()
	s := newStore(t, testutil.NewFakeSubstrate())

	project, err := s.CreateEngineeringProject(ctx, domain.EngineeringProject{EstimatedHours: 10})
	require.NoError(t, err)
	q := createQuotation(t, s, domain.Quotation{
		Subtotal:             200,
		Tax:                  36,
		Total:                236,
		Items:                []domain.QuotationItem{{Quantity: 2, UnitPrice: 100, Amount: 200}},
		EngineeringProjectID: &project.ID,
	})

	updated, ok, err := newEngine(s).UpdateQuotationWithIntegratedData(ctx, q.ID)
	require.NoError(t, err)
	require.True(t, ok)

	require.NotNil(t, updated.MaterialCost)
	require.NotNil(t, updated.LaborCost)
	require.NotNil(t, updated.OverheadCost)
	require.NotNil(t, updated.EngineeringCost)
	require.NotNil(t, updated.ProfitMargin)
	assert.Equal(t, 120.0, *updated.MaterialCost)
	assert.Equal(t, 60.0, *updated.LaborCost)
	assert.Equal(t, 9.0, *updated.OverheadCost)
	assert.Equal(t, 5000.0, *updated.EngineeringCost)
	assert.Equal(t, 30.0, *updated.ProfitMargin)
	assert.Equal(t, 200+5000.0+36, updated.Total)

	persisted, found := s.GetQuotation(q.ID)
	require.True(t, found)
	assert.Equal(t, updated.Total, persisted.Total)
}

// Quotation and BOM writes are independent single-collection transactions; a
// failure on one leaves the other committed. The store makes no attempt to
// reconcile this.
func TestCrossCollectionWritesAreIndependent(t *testing.T) {
	ctx := context.Background()
	sub := testutil.NewFakeSubstrate()
	s := newStore(t, sub)

	projectID := "proj-gap"
	bom, err := s.CreateBillOfMaterials(ctx, domain.BillOfMaterials{
		EngineeringProjectID: &projectID,
		Items:                []domain.BOMItem{{Quantity: 1, UnitCost: 100, TotalCost: 100}},
		TotalCost:            100,
	})
	require.NoError(t, err)
	q := createQuotation(t, s, domain.Quotation{Subtotal: 500, EngineeringProjectID: &projectID})

	sub.FailWritesTo = store.KeyPrefix + string(domain.EntityBillOfMaterials)
	sub.WriteErrFor = errors.New("write rejected")

	_, ok, err := s.UpdateQuotation(ctx, q.ID, func(qq *domain.Quotation) error {
		qq.Status = domain.QuotationStatusSent
		return nil
	})
	require.NoError(t, err)
	require.True(t, ok)

	_, _, err = s.UpdateBillOfMaterials(ctx, bom.ID, func(b *domain.BillOfMaterials) error {
		b.TotalCost = 200
		return nil
	})
	require.Error(t, err)

	gotQ, _ := s.GetQuotation(q.ID)
	gotB, _ := s.GetBillOfMaterials(bom.ID)
	assert.Equal(t, domain.QuotationStatusSent, gotQ.Status)
	assert.Equal(t, 100.0, gotB.TotalCost)
}

func isNaNOrInf(v float64) bool {
	return v != v || v > 1e308 || v < -1e308
}
