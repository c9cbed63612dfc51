package domain

// Clone methods return defensive copies of records crossing the store
// boundary. Inline item slices are copied; identifier pointers are shared
// because callers treat records as immutable snapshots.

// Clone returns a copy of the customer.
func (c Customer) Clone() Customer { return c }

// Clone returns a copy of the supplier.
func (s Supplier) Clone() Supplier { return s }

// Clone returns a copy of the quotation including its owned line items.
func (q Quotation) Clone() Quotation {
	cp := q
	cp.Items = append([]QuotationItem(nil), q.Items...)
	return cp
}

// Clone returns a copy of the sales order.
func (o SalesOrder) Clone() SalesOrder { return o }

// Clone returns a copy of the engineering project.
func (p EngineeringProject) Clone() EngineeringProject { return p }

// Clone returns a copy of the drawing.
func (d EngineeringDrawing) Clone() EngineeringDrawing { return d }

// Clone returns a copy of the change request.
func (c EngineeringChange) Clone() EngineeringChange { return c }

// Clone returns a copy of the BOM including its owned material lines.
func (b BillOfMaterials) Clone() BillOfMaterials {
	cp := b
	cp.Items = append([]BOMItem(nil), b.Items...)
	return cp
}

// Clone returns a copy of the BOQ including its owned quantity lines.
func (b BillOfQuantities) Clone() BillOfQuantities {
	cp := b
	cp.Items = append([]BOQItem(nil), b.Items...)
	return cp
}

// Clone returns a copy of the work order.
func (w ProductionWorkOrder) Clone() ProductionWorkOrder { return w }

// Clone returns a copy of the process step.
func (p ProcessStep) Clone() ProcessStep { return p }

// Clone returns a copy of the workstation.
func (w Workstation) Clone() Workstation { return w }

// Clone returns a copy of the operator.
func (o Operator) Clone() Operator { return o }

// Clone returns a copy of the shopfloor activity.
func (a ShopfloorActivity) Clone() ShopfloorActivity { return a }

// Clone returns a copy of the inspection.
func (q QualityInspection) Clone() QualityInspection { return q }

// Clone returns a copy of the quality test.
func (q QualityTest) Clone() QualityTest { return q }

// Clone returns a copy of the inventory item.
func (i Item) Clone() Item { return i }

// Clone returns a copy of the location.
func (l Location) Clone() Location { return l }

// Clone returns a copy of the invoice.
func (i Invoice) Clone() Invoice { return i }

// Clone returns a copy of the purchase order including its owned lines.
func (p PurchaseOrder) Clone() PurchaseOrder {
	cp := p
	cp.Items = append([]PurchaseOrderItem(nil), p.Items...)
	return cp
}

// Clone returns a copy of the project subcontractor.
func (p ProjectSubcontractor) Clone() ProjectSubcontractor { return p }

// Clone returns a copy of the subcontractor work order.
func (s SubcontractorWorkOrder) Clone() SubcontractorWorkOrder { return s }
