package store

import (
	"context"

	"fabcore/pkg/domain"
)

// Snapshot maps collection names to full collection contents. It is the
// interchange shape for bulk export/import and the seed fixture dataset.
// Unknown fields in a serialized snapshot are ignored on decode.
type Snapshot struct {
	Customers      []domain.Customer               `json:"customers" yaml:"customers"`
	Suppliers      []domain.Supplier               `json:"suppliers" yaml:"suppliers"`
	Quotations     []domain.Quotation              `json:"quotations" yaml:"quotations"`
	SalesOrders    []domain.SalesOrder             `json:"sales_orders" yaml:"sales_orders"`
	Projects       []domain.EngineeringProject     `json:"engineering_projects" yaml:"engineering_projects"`
	Drawings       []domain.EngineeringDrawing     `json:"engineering_drawings" yaml:"engineering_drawings"`
	Changes        []domain.EngineeringChange      `json:"engineering_changes" yaml:"engineering_changes"`
	BOMs           []domain.BillOfMaterials        `json:"bills_of_materials" yaml:"bills_of_materials"`
	BOQs           []domain.BillOfQuantities       `json:"bills_of_quantities" yaml:"bills_of_quantities"`
	WorkOrders     []domain.ProductionWorkOrder    `json:"production_work_orders" yaml:"production_work_orders"`
	ProcessSteps   []domain.ProcessStep            `json:"process_steps" yaml:"process_steps"`
	Workstations   []domain.Workstation            `json:"workstations" yaml:"workstations"`
	Operators      []domain.Operator               `json:"operators" yaml:"operators"`
	Activities     []domain.ShopfloorActivity      `json:"shopfloor_activities" yaml:"shopfloor_activities"`
	Inspections    []domain.QualityInspection      `json:"quality_inspections" yaml:"quality_inspections"`
	QualityTests   []domain.QualityTest            `json:"quality_tests" yaml:"quality_tests"`
	Items          []domain.Item                   `json:"items" yaml:"items"`
	Locations      []domain.Location               `json:"locations" yaml:"locations"`
	Invoices       []domain.Invoice                `json:"invoices" yaml:"invoices"`
	PurchaseOrders []domain.PurchaseOrder          `json:"purchase_orders" yaml:"purchase_orders"`
	Subcontractors []domain.ProjectSubcontractor   `json:"project_subcontractors" yaml:"project_subcontractors"`
	SubWorkOrders  []domain.SubcontractorWorkOrder `json:"subcontractor_work_orders" yaml:"subcontractor_work_orders"`
}

// ExportState clones every collection into a snapshot suitable for
// serialization to a single interchange document.
func (s *Store) ExportState() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Customers:      cloneSlice(s.customers.items),
		Suppliers:      cloneSlice(s.suppliers.items),
		Quotations:     cloneSlice(s.quotations.items),
		SalesOrders:    cloneSlice(s.salesOrders.items),
		Projects:       cloneSlice(s.projects.items),
		Drawings:       cloneSlice(s.drawings.items),
		Changes:        cloneSlice(s.changes.items),
		BOMs:           cloneSlice(s.boms.items),
		BOQs:           cloneSlice(s.boqs.items),
		WorkOrders:     cloneSlice(s.workOrders.items),
		ProcessSteps:   cloneSlice(s.processSteps.items),
		Workstations:   cloneSlice(s.workstations.items),
		Operators:      cloneSlice(s.operators.items),
		Activities:     cloneSlice(s.activities.items),
		Inspections:    cloneSlice(s.inspections.items),
		QualityTests:   cloneSlice(s.qualityTests.items),
		Items:          cloneSlice(s.items.items),
		Locations:      cloneSlice(s.locations.items),
		Invoices:       cloneSlice(s.invoices.items),
		PurchaseOrders: cloneSlice(s.purchaseOrders.items),
		Subcontractors: cloneSlice(s.subcontractors.items),
		SubWorkOrders:  cloneSlice(s.subWorkOrders.items),
	}
}

// ImportState overwrites every collection with the snapshot contents,
// persisting each collection before swapping it in. Last writer wins at
// whole-collection granularity. A substrate failure aborts the import
// mid-way; collections not yet reached keep their previous contents.
func (s *Store) ImportState(ctx context.Context, snapshot Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := importCollection(ctx, s, &s.customers, snapshot.Customers); err != nil {
		return err
	}
	if err := importCollection(ctx, s, &s.suppliers, snapshot.Suppliers); err != nil {
		return err
	}
	if err := importCollection(ctx, s, &s.quotations, snapshot.Quotations); err != nil {
		return err
	}
	if err := importCollection(ctx, s, &s.salesOrders, snapshot.SalesOrders); err != nil {
		return err
	}
	if err := importCollection(ctx, s, &s.projects, snapshot.Projects); err != nil {
		return err
	}
	if err := importCollection(ctx, s, &s.drawings, snapshot.Drawings); err != nil {
		return err
	}
	if err := importCollection(ctx, s, &s.changes, snapshot.Changes); err != nil {
		return err
	}
	if err := importCollection(ctx, s, &s.boms, snapshot.BOMs); err != nil {
		return err
	}
	if err := importCollection(ctx, s, &s.boqs, snapshot.BOQs); err != nil {
		return err
	}
	if err := importCollection(ctx, s, &s.workOrders, snapshot.WorkOrders); err != nil {
		return err
	}
	if err := importCollection(ctx, s, &s.processSteps, snapshot.ProcessSteps); err != nil {
		return err
	}
	if err := importCollection(ctx, s, &s.workstations, snapshot.Workstations); err != nil {
		return err
	}
	if err := importCollection(ctx, s, &s.operators, snapshot.Operators); err != nil {
		return err
	}
	if err := importCollection(ctx, s, &s.activities, snapshot.Activities); err != nil {
		return err
	}
	if err := importCollection(ctx, s, &s.inspections, snapshot.Inspections); err != nil {
		return err
	}
	if err := importCollection(ctx, s, &s.qualityTests, snapshot.QualityTests); err != nil {
		return err
	}
	if err := importCollection(ctx, s, &s.items, snapshot.Items); err != nil {
		return err
	}
	if err := importCollection(ctx, s, &s.locations, snapshot.Locations); err != nil {
		return err
	}
	if err := importCollection(ctx, s, &s.invoices, snapshot.Invoices); err != nil {
		return err
	}
	if err := importCollection(ctx, s, &s.purchaseOrders, snapshot.PurchaseOrders); err != nil {
		return err
	}
	if err := importCollection(ctx, s, &s.subcontractors, snapshot.Subcontractors); err != nil {
		return err
	}
	return importCollection(ctx, s, &s.subWorkOrders, snapshot.SubWorkOrders)
}

func importCollection[E record[E]](ctx context.Context, s *Store, c *collection[E], items []E) error {
	next := cloneSlice(items)
	if next == nil {
		next = []E{}
	}
	if err := persistCollection(ctx, s, c.entity, next); err != nil {
		return err
	}
	c.items = next
	return nil
}

func cloneSlice[E record[E]](items []E) []E {
	if items == nil {
		return nil
	}
	out := make([]E, 0, len(items))
	for _, e := range items {
		out = append(out, e.Clone())
	}
	return out
}
