// Package costing implements the cost roll-up engine: it resolves the records
// linked to a quotation (BOM, production work order, process steps,
// engineering project), folds them into a CostBreakdown and UnitEconomics
// view, and can write the result back onto the quotation record.
package costing

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"fabcore/pkg/domain"
)

// Reader is the slice of the entity store the engine reads. All methods
// return defensive copies; the engine never mutates through them.
type Reader interface {
	GetQuotation(id string) (domain.Quotation, bool)
	ListBillsOfMaterials() []domain.BillOfMaterials
	ListProductionWorkOrders() []domain.ProductionWorkOrder
	ListProcessSteps() []domain.ProcessStep
	GetEngineeringProject(id string) (domain.EngineeringProject, bool)
}

// Writer extends Reader with the single mutating operation the engine uses
// for cost write-back.
type Writer interface {
	Reader
	UpdateQuotation(ctx context.Context, id string, mutate func(*domain.Quotation) error) (domain.Quotation, bool, error)
}

// MaterialBreakdown splits material cost by category.
type MaterialBreakdown struct {
	Steel    float64 `json:"steel"`
	Copper   float64 `json:"copper"`
	Hardware float64 `json:"hardware"`
	Other    float64 `json:"other"`
}

// OverheadBreakdown splits overhead cost into its reporting buckets.
type OverheadBreakdown struct {
	Facility   float64 `json:"facility"`
	Equipment  float64 `json:"equipment"`
	Management float64 `json:"management"`
	Utilities  float64 `json:"utilities"`
}

// CostBreakdown is the rolled-up cost picture for one quotation. The
// *Estimated flags mark figures produced by a configured ratio rather than a
// resolved record.
type CostBreakdown struct {
	QuotationID string `json:"quotation_id"`

	MaterialCost      float64           `json:"material_cost"`
	Materials         MaterialBreakdown `json:"materials"`
	CopperWeight      float64           `json:"copper_weight"`
	MaterialEstimated bool              `json:"material_estimated"`

	LaborCost      float64 `json:"labor_cost"`
	LaborEstimated bool    `json:"labor_estimated"`

	OverheadCost float64           `json:"overhead_cost"`
	Overheads    OverheadBreakdown `json:"overheads"`

	EngineeringCost      float64 `json:"engineering_cost"`
	EngineeringEstimated bool    `json:"engineering_estimated"`

	TotalCost    float64 `json:"total_cost"`
	Quantity     float64 `json:"quantity"`
	UnitCost     float64 `json:"unit_cost"`
	ProfitMargin float64 `json:"profit_margin"`
	UnitPrice    float64 `json:"unit_price"`
}

// UnitEconomics is the per-unit margin view. CopperWeight and CopperLMEPrice
// are independent inputs for commodity-indexed pricing; they are not folded
// into the totals.
type UnitEconomics struct {
	QuotationID    string  `json:"quotation_id"`
	Quantity       float64 `json:"quantity"`
	TotalCost      float64 `json:"total_cost"`
	UnitCost       float64 `json:"unit_cost"`
	ProfitMargin   float64 `json:"profit_margin"`
	UnitPrice      float64 `json:"unit_price"`
	CopperWeight   float64 `json:"copper_weight"`
	CopperLMEPrice float64 `json:"copper_lme_price"`
}

// Engine computes cost roll-ups over an entity store.
type Engine struct {
	store Writer
	cfg   Config
	log   *zap.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger installs a logger. Defaults to a no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(e *Engine) {
		if log != nil {
			e.log = log
		}
	}
}

// NewEngine builds an engine over the given store slice.
func NewEngine(store Writer, cfg Config, opts ...Option) *Engine {
	e := &Engine{store: store, cfg: cfg, log: zap.NewNop()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Breakdown resolves the records linked to the quotation and computes its
// cost roll-up. The second return is false when the quotation does not exist.
func (e *Engine) Breakdown(quotationID string) (CostBreakdown, bool) {
	q, ok := e.store.GetQuotation(quotationID)
	if !ok {
		return CostBreakdown{}, false
	}
	return e.breakdown(q), true
}

// UnitEconomics computes the per-unit margin view for the quotation.
func (e *Engine) UnitEconomics(quotationID string) (UnitEconomics, bool) {
	b, ok := e.Breakdown(quotationID)
	if !ok {
		return UnitEconomics{}, false
	}
	return UnitEconomics{
		QuotationID:    b.QuotationID,
		Quantity:       b.Quantity,
		TotalCost:      b.TotalCost,
		UnitCost:       b.UnitCost,
		ProfitMargin:   b.ProfitMargin,
		UnitPrice:      b.UnitPrice,
		CopperWeight:   b.CopperWeight,
		CopperLMEPrice: e.cfg.CopperLMEPrice,
	}, true
}

// UpdateQuotationWithIntegratedData recomputes the breakdown and writes the
// cost fields back onto the quotation, along with a recomputed total of
// subtotal + engineering cost + tax. It is the only engine operation that
// mutates the store. The bool return is false when the quotation is unknown.
func (e *Engine) UpdateQuotationWithIntegratedData(ctx context.Context, quotationID string) (domain.Quotation, bool, error) {
	b, ok := e.Breakdown(quotationID)
	if !ok {
		return domain.Quotation{}, false, nil
	}
	updated, ok, err := e.store.UpdateQuotation(ctx, quotationID, func(q *domain.Quotation) error {
		q.MaterialCost = ptr(b.MaterialCost)
		q.LaborCost = ptr(b.LaborCost)
		q.OverheadCost = ptr(b.OverheadCost)
		q.EngineeringCost = ptr(b.EngineeringCost)
		q.ProfitMargin = ptr(b.ProfitMargin)
		q.Total = decimal.NewFromFloat(q.Subtotal).
			Add(decimal.NewFromFloat(b.EngineeringCost)).
			Add(decimal.NewFromFloat(q.Tax)).
			InexactFloat64()
		return nil
	})
	if err != nil || !ok {
		return domain.Quotation{}, ok, err
	}
	e.log.Info("quotation costs written back",
		zap.String("quotation_id", quotationID),
		zap.Float64("total_cost", b.TotalCost),
		zap.Float64("unit_cost", b.UnitCost))
	return updated, true, nil
}

func (e *Engine) breakdown(q domain.Quotation) CostBreakdown {
	b := CostBreakdown{QuotationID: q.ID}

	bom, bomFound := e.resolveBOM(q)
	wo, woFound := e.resolveWorkOrder(q)
	steps := e.resolveSteps(wo, woFound)
	project, projectFound := e.resolveProject(q)

	subtotal := decimal.NewFromFloat(q.Subtotal)

	material := decimal.Zero
	if bomFound {
		for _, it := range bom.Items {
			line := decimal.NewFromFloat(it.Quantity).Mul(decimal.NewFromFloat(it.UnitCost))
			material = material.Add(line)
			switch categorize(it) {
			case domain.MaterialSteel:
				b.Materials.Steel += line.InexactFloat64()
			case domain.MaterialCopper:
				b.Materials.Copper += line.InexactFloat64()
				b.CopperWeight += it.Quantity
			case domain.MaterialHardware:
				b.Materials.Hardware += line.InexactFloat64()
			default:
				b.Materials.Other += line.InexactFloat64()
			}
		}
	} else if q.MaterialCost != nil {
		material = decimal.NewFromFloat(*q.MaterialCost)
	} else {
		material = subtotal.Mul(decimal.NewFromFloat(e.cfg.MaterialSubtotalRatio))
		b.MaterialEstimated = true
	}

	labor := decimal.Zero
	if len(steps) > 0 {
		woQty := decimal.NewFromFloat(wo.Quantity)
		for _, st := range steps {
			hours := decimal.NewFromFloat(st.EstimatedDuration).Div(decimal.NewFromInt(60))
			rate := e.cfg.DefaultLaborRate
			if st.RatePerHour != nil {
				rate = *st.RatePerHour
			}
			labor = labor.Add(hours.Mul(decimal.NewFromFloat(rate)).Mul(woQty))
		}
	} else if q.LaborCost != nil {
		labor = decimal.NewFromFloat(*q.LaborCost)
	} else {
		labor = subtotal.Mul(decimal.NewFromFloat(e.cfg.LaborSubtotalRatio))
		b.LaborEstimated = true
	}

	overhead := labor.Mul(decimal.NewFromFloat(e.cfg.OverheadRate))
	b.Overheads = OverheadBreakdown{
		Facility:   overhead.Mul(decimal.NewFromFloat(e.cfg.OverheadFacilityShare)).InexactFloat64(),
		Equipment:  overhead.Mul(decimal.NewFromFloat(e.cfg.OverheadEquipmentShare)).InexactFloat64(),
		Management: overhead.Mul(decimal.NewFromFloat(e.cfg.OverheadManagementShare)).InexactFloat64(),
		Utilities:  overhead.Mul(decimal.NewFromFloat(e.cfg.OverheadUtilitiesShare)).InexactFloat64(),
	}

	engineering := decimal.Zero
	if projectFound {
		engineering = decimal.NewFromFloat(project.EstimatedHours).
			Mul(decimal.NewFromFloat(e.cfg.EngineeringRate))
	} else if q.EngineeringCost != nil {
		engineering = decimal.NewFromFloat(*q.EngineeringCost)
	} else {
		b.EngineeringEstimated = true
	}

	total := material.Add(labor).Add(overhead).Add(engineering)

	qty := decimal.Zero
	for _, it := range q.Items {
		qty = qty.Add(decimal.NewFromFloat(it.Quantity))
	}

	margin := decimal.Zero
	if q.ProfitMargin != nil {
		margin = decimal.NewFromFloat(*q.ProfitMargin)
	} else {
		margin = subtotal.Mul(decimal.NewFromFloat(e.cfg.ProfitSubtotalRatio))
	}

	unitCost := decimal.Zero
	unitPrice := margin
	if !qty.IsZero() {
		unitCost = total.Div(qty)
		unitPrice = unitCost.Add(margin.Div(qty))
	}

	b.MaterialCost = material.InexactFloat64()
	b.LaborCost = labor.InexactFloat64()
	b.OverheadCost = overhead.InexactFloat64()
	b.EngineeringCost = engineering.InexactFloat64()
	b.TotalCost = total.InexactFloat64()
	b.Quantity = qty.InexactFloat64()
	b.UnitCost = unitCost.InexactFloat64()
	b.ProfitMargin = margin.InexactFloat64()
	b.UnitPrice = unitPrice.InexactFloat64()
	return b
}

// resolveBOM prefers a direct BOM reference, then a BOM on the quotation's
// engineering project, then a BOM whose BOQ reference names the quotation.
func (e *Engine) resolveBOM(q domain.Quotation) (domain.BillOfMaterials, bool) {
	boms := e.store.ListBillsOfMaterials()
	if q.BOMID != nil {
		for _, b := range boms {
			if b.ID == *q.BOMID {
				return b, true
			}
		}
	}
	if q.EngineeringProjectID != nil {
		for _, b := range boms {
			if b.EngineeringProjectID != nil && *b.EngineeringProjectID == *q.EngineeringProjectID {
				return b, true
			}
		}
	}
	for _, b := range boms {
		if b.BOQID != nil && *b.BOQID == q.ID {
			return b, true
		}
	}
	return domain.BillOfMaterials{}, false
}

// resolveWorkOrder prefers a work order raised against the quotation, then
// one on the quotation's engineering project.
func (e *Engine) resolveWorkOrder(q domain.Quotation) (domain.ProductionWorkOrder, bool) {
	orders := e.store.ListProductionWorkOrders()
	for _, w := range orders {
		if w.SalesOrderID != nil && *w.SalesOrderID == q.ID {
			return w, true
		}
	}
	if q.SalesOrderID != nil {
		for _, w := range orders {
			if w.SalesOrderID != nil && *w.SalesOrderID == *q.SalesOrderID {
				return w, true
			}
		}
	}
	if q.EngineeringProjectID != nil {
		for _, w := range orders {
			if w.ProjectID != nil && *w.ProjectID == *q.EngineeringProjectID {
				return w, true
			}
		}
	}
	return domain.ProductionWorkOrder{}, false
}

func (e *Engine) resolveSteps(wo domain.ProductionWorkOrder, found bool) []domain.ProcessStep {
	if !found {
		return nil
	}
	var steps []domain.ProcessStep
	for _, st := range e.store.ListProcessSteps() {
		if st.WorkOrderID == wo.ID {
			steps = append(steps, st)
		}
	}
	return steps
}

func (e *Engine) resolveProject(q domain.Quotation) (domain.EngineeringProject, bool) {
	if q.EngineeringProjectID == nil {
		return domain.EngineeringProject{}, false
	}
	return e.store.GetEngineeringProject(*q.EngineeringProjectID)
}

// categorize maps a BOM line to a material category, falling back to grade
// and description text when the line carries no explicit category.
func categorize(it domain.BOMItem) domain.MaterialCategory {
	switch it.Category {
	case domain.MaterialSteel, domain.MaterialCopper, domain.MaterialHardware, domain.MaterialOther:
		return it.Category
	}
	hint := strings.ToLower(it.MaterialGrade + " " + it.Description)
	switch {
	case strings.Contains(hint, "copper") || strings.Contains(hint, "cu-"):
		return domain.MaterialCopper
	case strings.Contains(hint, "steel"):
		return domain.MaterialSteel
	}
	return domain.MaterialOther
}

func ptr(v float64) *float64 { return &v }
