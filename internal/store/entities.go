package store

import (
	"context"

	"fabcore/pkg/domain"
)

// Customers

// ListCustomers returns all customers in insertion order.
func (s *Store) ListCustomers() []domain.Customer { return listRecords(s, &s.customers) }

// GetCustomer looks up a customer by id.
func (s *Store) GetCustomer(id string) (domain.Customer, bool) {
	return getRecord[domain.Customer, *domain.Customer](s, &s.customers, id)
}

// CreateCustomer stores a new customer.
func (s *Store) CreateCustomer(ctx context.Context, c domain.Customer) (domain.Customer, error) {
	return createRecord[domain.Customer, *domain.Customer](ctx, s, &s.customers, c)
}

// UpdateCustomer mutates a customer using the provided mutator.
func (s *Store) UpdateCustomer(ctx context.Context, id string, mutate func(*domain.Customer) error) (domain.Customer, bool, error) {
	return updateRecord[domain.Customer, *domain.Customer](ctx, s, &s.customers, id, mutate)
}

// DeleteCustomer removes a customer record.
func (s *Store) DeleteCustomer(ctx context.Context, id string) (bool, error) {
	return deleteRecord[domain.Customer, *domain.Customer](ctx, s, &s.customers, id)
}

// Suppliers

// ListSuppliers returns all suppliers in insertion order.
func (s *Store) ListSuppliers() []domain.Supplier { return listRecords(s, &s.suppliers) }

// GetSupplier looks up a supplier by id.
func (s *Store) GetSupplier(id string) (domain.Supplier, bool) {
	return getRecord[domain.Supplier, *domain.Supplier](s, &s.suppliers, id)
}

// CreateSupplier stores a new supplier.
func (s *Store) CreateSupplier(ctx context.Context, v domain.Supplier) (domain.Supplier, error) {
	return createRecord[domain.Supplier, *domain.Supplier](ctx, s, &s.suppliers, v)
}

// UpdateSupplier mutates a supplier.
func (s *Store) UpdateSupplier(ctx context.Context, id string, mutate func(*domain.Supplier) error) (domain.Supplier, bool, error) {
	return updateRecord[domain.Supplier, *domain.Supplier](ctx, s, &s.suppliers, id, mutate)
}

// DeleteSupplier removes a supplier record.
func (s *Store) DeleteSupplier(ctx context.Context, id string) (bool, error) {
	return deleteRecord[domain.Supplier, *domain.Supplier](ctx, s, &s.suppliers, id)
}

// Quotations

// ListQuotations returns all quotations in insertion order.
func (s *Store) ListQuotations() []domain.Quotation { return listRecords(s, &s.quotations) }

// GetQuotation looks up a quotation by id.
func (s *Store) GetQuotation(id string) (domain.Quotation, bool) {
	return getRecord[domain.Quotation, *domain.Quotation](s, &s.quotations, id)
}

// CreateQuotation stores a new quotation.
func (s *Store) CreateQuotation(ctx context.Context, q domain.Quotation) (domain.Quotation, error) {
	return createRecord[domain.Quotation, *domain.Quotation](ctx, s, &s.quotations, q)
}

// UpdateQuotation mutates a quotation.
func (s *Store) UpdateQuotation(ctx context.Context, id string, mutate func(*domain.Quotation) error) (domain.Quotation, bool, error) {
	return updateRecord[domain.Quotation, *domain.Quotation](ctx, s, &s.quotations, id, mutate)
}

// DeleteQuotation removes a quotation. Dependents keep dangling references;
// readers resolve them as missing.
func (s *Store) DeleteQuotation(ctx context.Context, id string) (bool, error) {
	return deleteRecord[domain.Quotation, *domain.Quotation](ctx, s, &s.quotations, id)
}

// Sales orders

// ListSalesOrders returns all sales orders in insertion order.
func (s *Store) ListSalesOrders() []domain.SalesOrder { return listRecords(s, &s.salesOrders) }

// GetSalesOrder looks up a sales order by id.
func (s *Store) GetSalesOrder(id string) (domain.SalesOrder, bool) {
	return getRecord[domain.SalesOrder, *domain.SalesOrder](s, &s.salesOrders, id)
}

// CreateSalesOrder stores a new sales order.
func (s *Store) CreateSalesOrder(ctx context.Context, o domain.SalesOrder) (domain.SalesOrder, error) {
	return createRecord[domain.SalesOrder, *domain.SalesOrder](ctx, s, &s.salesOrders, o)
}

// UpdateSalesOrder mutates a sales order.
func (s *Store) UpdateSalesOrder(ctx context.Context, id string, mutate func(*domain.SalesOrder) error) (domain.SalesOrder, bool, error) {
	return updateRecord[domain.SalesOrder, *domain.SalesOrder](ctx, s, &s.salesOrders, id, mutate)
}

// DeleteSalesOrder removes a sales order record.
func (s *Store) DeleteSalesOrder(ctx context.Context, id string) (bool, error) {
	return deleteRecord[domain.SalesOrder, *domain.SalesOrder](ctx, s, &s.salesOrders, id)
}

// Engineering projects

// ListEngineeringProjects returns all engineering projects in insertion order.
func (s *Store) ListEngineeringProjects() []domain.EngineeringProject {
	return listRecords(s, &s.projects)
}

// GetEngineeringProject looks up an engineering project by id.
func (s *Store) GetEngineeringProject(id string) (domain.EngineeringProject, bool) {
	return getRecord[domain.EngineeringProject, *domain.EngineeringProject](s, &s.projects, id)
}

// CreateEngineeringProject stores a new engineering project.
func (s *Store) CreateEngineeringProject(ctx context.Context, p domain.EngineeringProject) (domain.EngineeringProject, error) {
	return createRecord[domain.EngineeringProject, *domain.EngineeringProject](ctx, s, &s.projects, p)
}

// UpdateEngineeringProject mutates an engineering project.
func (s *Store) UpdateEngineeringProject(ctx context.Context, id string, mutate func(*domain.EngineeringProject) error) (domain.EngineeringProject, bool, error) {
	return updateRecord[domain.EngineeringProject, *domain.EngineeringProject](ctx, s, &s.projects, id, mutate)
}

// DeleteEngineeringProject removes an engineering project record.
func (s *Store) DeleteEngineeringProject(ctx context.Context, id string) (bool, error) {
	return deleteRecord[domain.EngineeringProject, *domain.EngineeringProject](ctx, s, &s.projects, id)
}

// Engineering drawings

// ListEngineeringDrawings returns all drawings in insertion order.
func (s *Store) ListEngineeringDrawings() []domain.EngineeringDrawing {
	return listRecords(s, &s.drawings)
}

// GetEngineeringDrawing looks up a drawing by id.
func (s *Store) GetEngineeringDrawing(id string) (domain.EngineeringDrawing, bool) {
	return getRecord[domain.EngineeringDrawing, *domain.EngineeringDrawing](s, &s.drawings, id)
}

// CreateEngineeringDrawing stores a new drawing.
func (s *Store) CreateEngineeringDrawing(ctx context.Context, d domain.EngineeringDrawing) (domain.EngineeringDrawing, error) {
	return createRecord[domain.EngineeringDrawing, *domain.EngineeringDrawing](ctx, s, &s.drawings, d)
}

// UpdateEngineeringDrawing mutates a drawing.
func (s *Store) UpdateEngineeringDrawing(ctx context.Context, id string, mutate func(*domain.EngineeringDrawing) error) (domain.EngineeringDrawing, bool, error) {
	return updateRecord[domain.EngineeringDrawing, *domain.EngineeringDrawing](ctx, s, &s.drawings, id, mutate)
}

// DeleteEngineeringDrawing removes a drawing record.
func (s *Store) DeleteEngineeringDrawing(ctx context.Context, id string) (bool, error) {
	return deleteRecord[domain.EngineeringDrawing, *domain.EngineeringDrawing](ctx, s, &s.drawings, id)
}

// Engineering changes

// ListEngineeringChanges returns all change requests in insertion order.
func (s *Store) ListEngineeringChanges() []domain.EngineeringChange {
	return listRecords(s, &s.changes)
}

// GetEngineeringChange looks up a change request by id.
func (s *Store) GetEngineeringChange(id string) (domain.EngineeringChange, bool) {
	return getRecord[domain.EngineeringChange, *domain.EngineeringChange](s, &s.changes, id)
}

// CreateEngineeringChange stores a new change request.
func (s *Store) CreateEngineeringChange(ctx context.Context, c domain.EngineeringChange) (domain.EngineeringChange, error) {
	return createRecord[domain.EngineeringChange, *domain.EngineeringChange](ctx, s, &s.changes, c)
}

// UpdateEngineeringChange mutates a change request.
func (s *Store) UpdateEngineeringChange(ctx context.Context, id string, mutate func(*domain.EngineeringChange) error) (domain.EngineeringChange, bool, error) {
	return updateRecord[domain.EngineeringChange, *domain.EngineeringChange](ctx, s, &s.changes, id, mutate)
}

// DeleteEngineeringChange removes a change request record.
func (s *Store) DeleteEngineeringChange(ctx context.Context, id string) (bool, error) {
	return deleteRecord[domain.EngineeringChange, *domain.EngineeringChange](ctx, s, &s.changes, id)
}

// Bills of materials

// ListBillsOfMaterials returns all BOMs in insertion order.
func (s *Store) ListBillsOfMaterials() []domain.BillOfMaterials { return listRecords(s, &s.boms) }

// GetBillOfMaterials looks up a BOM by id.
func (s *Store) GetBillOfMaterials(id string) (domain.BillOfMaterials, bool) {
	return getRecord[domain.BillOfMaterials, *domain.BillOfMaterials](s, &s.boms, id)
}

// CreateBillOfMaterials stores a new BOM. TotalCost is taken as supplied; the
// store never recomputes it from the item lines.
func (s *Store) CreateBillOfMaterials(ctx context.Context, b domain.BillOfMaterials) (domain.BillOfMaterials, error) {
	return createRecord[domain.BillOfMaterials, *domain.BillOfMaterials](ctx, s, &s.boms, b)
}

// UpdateBillOfMaterials mutates a BOM.
func (s *Store) UpdateBillOfMaterials(ctx context.Context, id string, mutate func(*domain.BillOfMaterials) error) (domain.BillOfMaterials, bool, error) {
	return updateRecord[domain.BillOfMaterials, *domain.BillOfMaterials](ctx, s, &s.boms, id, mutate)
}

// DeleteBillOfMaterials removes a BOM record.
func (s *Store) DeleteBillOfMaterials(ctx context.Context, id string) (bool, error) {
	return deleteRecord[domain.BillOfMaterials, *domain.BillOfMaterials](ctx, s, &s.boms, id)
}

// Bills of quantities

// ListBillsOfQuantities returns all BOQs in insertion order.
func (s *Store) ListBillsOfQuantities() []domain.BillOfQuantities { return listRecords(s, &s.boqs) }

// GetBillOfQuantities looks up a BOQ by id.
func (s *Store) GetBillOfQuantities(id string) (domain.BillOfQuantities, bool) {
	return getRecord[domain.BillOfQuantities, *domain.BillOfQuantities](s, &s.boqs, id)
}

// CreateBillOfQuantities stores a new BOQ.
func (s *Store) CreateBillOfQuantities(ctx context.Context, b domain.BillOfQuantities) (domain.BillOfQuantities, error) {
	return createRecord[domain.BillOfQuantities, *domain.BillOfQuantities](ctx, s, &s.boqs, b)
}

// UpdateBillOfQuantities mutates a BOQ.
func (s *Store) UpdateBillOfQuantities(ctx context.Context, id string, mutate func(*domain.BillOfQuantities) error) (domain.BillOfQuantities, bool, error) {
	return updateRecord[domain.BillOfQuantities, *domain.BillOfQuantities](ctx, s, &s.boqs, id, mutate)
}

// DeleteBillOfQuantities removes a BOQ record.
func (s *Store) DeleteBillOfQuantities(ctx context.Context, id string) (bool, error) {
	return deleteRecord[domain.BillOfQuantities, *domain.BillOfQuantities](ctx, s, &s.boqs, id)
}

// Production work orders

// ListProductionWorkOrders returns all work orders in insertion order.
func (s *Store) ListProductionWorkOrders() []domain.ProductionWorkOrder {
	return listRecords(s, &s.workOrders)
}

// GetProductionWorkOrder looks up a work order by id.
func (s *Store) GetProductionWorkOrder(id string) (domain.ProductionWorkOrder, bool) {
	return getRecord[domain.ProductionWorkOrder, *domain.ProductionWorkOrder](s, &s.workOrders, id)
}

// CreateProductionWorkOrder stores a new work order.
func (s *Store) CreateProductionWorkOrder(ctx context.Context, w domain.ProductionWorkOrder) (domain.ProductionWorkOrder, error) {
	return createRecord[domain.ProductionWorkOrder, *domain.ProductionWorkOrder](ctx, s, &s.workOrders, w)
}

// UpdateProductionWorkOrder mutates a work order.
func (s *Store) UpdateProductionWorkOrder(ctx context.Context, id string, mutate func(*domain.ProductionWorkOrder) error) (domain.ProductionWorkOrder, bool, error) {
	return updateRecord[domain.ProductionWorkOrder, *domain.ProductionWorkOrder](ctx, s, &s.workOrders, id, mutate)
}

// DeleteProductionWorkOrder removes a work order record. Its process steps
// keep their WorkOrderID and dangle.
func (s *Store) DeleteProductionWorkOrder(ctx context.Context, id string) (bool, error) {
	return deleteRecord[domain.ProductionWorkOrder, *domain.ProductionWorkOrder](ctx, s, &s.workOrders, id)
}

// Process steps

// ListProcessSteps returns all process steps in insertion order.
func (s *Store) ListProcessSteps() []domain.ProcessStep { return listRecords(s, &s.processSteps) }

// GetProcessStep looks up a process step by id.
func (s *Store) GetProcessStep(id string) (domain.ProcessStep, bool) {
	return getRecord[domain.ProcessStep, *domain.ProcessStep](s, &s.processSteps, id)
}

// CreateProcessStep stores a new process step.
func (s *Store) CreateProcessStep(ctx context.Context, p domain.ProcessStep) (domain.ProcessStep, error) {
	return createRecord[domain.ProcessStep, *domain.ProcessStep](ctx, s, &s.processSteps, p)
}

// UpdateProcessStep mutates a process step.
func (s *Store) UpdateProcessStep(ctx context.Context, id string, mutate func(*domain.ProcessStep) error) (domain.ProcessStep, bool, error) {
	return updateRecord[domain.ProcessStep, *domain.ProcessStep](ctx, s, &s.processSteps, id, mutate)
}

// DeleteProcessStep removes a process step record.
func (s *Store) DeleteProcessStep(ctx context.Context, id string) (bool, error) {
	return deleteRecord[domain.ProcessStep, *domain.ProcessStep](ctx, s, &s.processSteps, id)
}

// Workstations

// ListWorkstations returns all workstations in insertion order.
func (s *Store) ListWorkstations() []domain.Workstation { return listRecords(s, &s.workstations) }

// GetWorkstation looks up a workstation by id.
func (s *Store) GetWorkstation(id string) (domain.Workstation, bool) {
	return getRecord[domain.Workstation, *domain.Workstation](s, &s.workstations, id)
}

// CreateWorkstation stores a new workstation.
func (s *Store) CreateWorkstation(ctx context.Context, w domain.Workstation) (domain.Workstation, error) {
	return createRecord[domain.Workstation, *domain.Workstation](ctx, s, &s.workstations, w)
}

// UpdateWorkstation mutates a workstation.
func (s *Store) UpdateWorkstation(ctx context.Context, id string, mutate func(*domain.Workstation) error) (domain.Workstation, bool, error) {
	return updateRecord[domain.Workstation, *domain.Workstation](ctx, s, &s.workstations, id, mutate)
}

// DeleteWorkstation removes a workstation record.
func (s *Store) DeleteWorkstation(ctx context.Context, id string) (bool, error) {
	return deleteRecord[domain.Workstation, *domain.Workstation](ctx, s, &s.workstations, id)
}

// Operators

// ListOperators returns all operators in insertion order.
func (s *Store) ListOperators() []domain.Operator { return listRecords(s, &s.operators) }

// GetOperator looks up an operator by id.
func (s *Store) GetOperator(id string) (domain.Operator, bool) {
	return getRecord[domain.Operator, *domain.Operator](s, &s.operators, id)
}

// CreateOperator stores a new operator.
func (s *Store) CreateOperator(ctx context.Context, o domain.Operator) (domain.Operator, error) {
	return createRecord[domain.Operator, *domain.Operator](ctx, s, &s.operators, o)
}

// UpdateOperator mutates an operator.
func (s *Store) UpdateOperator(ctx context.Context, id string, mutate func(*domain.Operator) error) (domain.Operator, bool, error) {
	return updateRecord[domain.Operator, *domain.Operator](ctx, s, &s.operators, id, mutate)
}

// DeleteOperator removes an operator record.
func (s *Store) DeleteOperator(ctx context.Context, id string) (bool, error) {
	return deleteRecord[domain.Operator, *domain.Operator](ctx, s, &s.operators, id)
}

// Shopfloor activities

// ListShopfloorActivities returns all activities in insertion order.
func (s *Store) ListShopfloorActivities() []domain.ShopfloorActivity {
	return listRecords(s, &s.activities)
}

// GetShopfloorActivity looks up an activity by id.
func (s *Store) GetShopfloorActivity(id string) (domain.ShopfloorActivity, bool) {
	return getRecord[domain.ShopfloorActivity, *domain.ShopfloorActivity](s, &s.activities, id)
}

// CreateShopfloorActivity stores a new activity.
func (s *Store) CreateShopfloorActivity(ctx context.Context, a domain.ShopfloorActivity) (domain.ShopfloorActivity, error) {
	return createRecord[domain.ShopfloorActivity, *domain.ShopfloorActivity](ctx, s, &s.activities, a)
}

// UpdateShopfloorActivity mutates an activity.
func (s *Store) UpdateShopfloorActivity(ctx context.Context, id string, mutate func(*domain.ShopfloorActivity) error) (domain.ShopfloorActivity, bool, error) {
	return updateRecord[domain.ShopfloorActivity, *domain.ShopfloorActivity](ctx, s, &s.activities, id, mutate)
}

// DeleteShopfloorActivity removes an activity record.
func (s *Store) DeleteShopfloorActivity(ctx context.Context, id string) (bool, error) {
	return deleteRecord[domain.ShopfloorActivity, *domain.ShopfloorActivity](ctx, s, &s.activities, id)
}

// Quality inspections

// ListQualityInspections returns all inspections in insertion order.
func (s *Store) ListQualityInspections() []domain.QualityInspection {
	return listRecords(s, &s.inspections)
}

// GetQualityInspection looks up an inspection by id.
func (s *Store) GetQualityInspection(id string) (domain.QualityInspection, bool) {
	return getRecord[domain.QualityInspection, *domain.QualityInspection](s, &s.inspections, id)
}

// CreateQualityInspection stores a new inspection.
func (s *Store) CreateQualityInspection(ctx context.Context, q domain.QualityInspection) (domain.QualityInspection, error) {
	return createRecord[domain.QualityInspection, *domain.QualityInspection](ctx, s, &s.inspections, q)
}

// UpdateQualityInspection mutates an inspection.
func (s *Store) UpdateQualityInspection(ctx context.Context, id string, mutate func(*domain.QualityInspection) error) (domain.QualityInspection, bool, error) {
	return updateRecord[domain.QualityInspection, *domain.QualityInspection](ctx, s, &s.inspections, id, mutate)
}

// DeleteQualityInspection removes an inspection record.
func (s *Store) DeleteQualityInspection(ctx context.Context, id string) (bool, error) {
	return deleteRecord[domain.QualityInspection, *domain.QualityInspection](ctx, s, &s.inspections, id)
}

// Quality tests

// ListQualityTests returns all quality tests in insertion order.
func (s *Store) ListQualityTests() []domain.QualityTest { return listRecords(s, &s.qualityTests) }

// GetQualityTest looks up a quality test by id.
func (s *Store) GetQualityTest(id string) (domain.QualityTest, bool) {
	return getRecord[domain.QualityTest, *domain.QualityTest](s, &s.qualityTests, id)
}

// CreateQualityTest stores a new quality test.
func (s *Store) CreateQualityTest(ctx context.Context, q domain.QualityTest) (domain.QualityTest, error) {
	return createRecord[domain.QualityTest, *domain.QualityTest](ctx, s, &s.qualityTests, q)
}

// UpdateQualityTest mutates a quality test.
func (s *Store) UpdateQualityTest(ctx context.Context, id string, mutate func(*domain.QualityTest) error) (domain.QualityTest, bool, error) {
	return updateRecord[domain.QualityTest, *domain.QualityTest](ctx, s, &s.qualityTests, id, mutate)
}

// DeleteQualityTest removes a quality test record.
func (s *Store) DeleteQualityTest(ctx context.Context, id string) (bool, error) {
	return deleteRecord[domain.QualityTest, *domain.QualityTest](ctx, s, &s.qualityTests, id)
}

// Items

// ListItems returns all inventory items in insertion order.
func (s *Store) ListItems() []domain.Item { return listRecords(s, &s.items) }

// GetItem looks up an inventory item by id.
func (s *Store) GetItem(id string) (domain.Item, bool) {
	return getRecord[domain.Item, *domain.Item](s, &s.items, id)
}

// CreateItem stores a new inventory item.
func (s *Store) CreateItem(ctx context.Context, i domain.Item) (domain.Item, error) {
	return createRecord[domain.Item, *domain.Item](ctx, s, &s.items, i)
}

// UpdateItem mutates an inventory item.
func (s *Store) UpdateItem(ctx context.Context, id string, mutate func(*domain.Item) error) (domain.Item, bool, error) {
	return updateRecord[domain.Item, *domain.Item](ctx, s, &s.items, id, mutate)
}

// DeleteItem removes an inventory item record.
func (s *Store) DeleteItem(ctx context.Context, id string) (bool, error) {
	return deleteRecord[domain.Item, *domain.Item](ctx, s, &s.items, id)
}

// Locations

// ListLocations returns all locations in insertion order.
func (s *Store) ListLocations() []domain.Location { return listRecords(s, &s.locations) }

// GetLocation looks up a location by id.
func (s *Store) GetLocation(id string) (domain.Location, bool) {
	return getRecord[domain.Location, *domain.Location](s, &s.locations, id)
}

// CreateLocation stores a new location.
func (s *Store) CreateLocation(ctx context.Context, l domain.Location) (domain.Location, error) {
	return createRecord[domain.Location, *domain.Location](ctx, s, &s.locations, l)
}

// UpdateLocation mutates a location.
func (s *Store) UpdateLocation(ctx context.Context, id string, mutate func(*domain.Location) error) (domain.Location, bool, error) {
	return updateRecord[domain.Location, *domain.Location](ctx, s, &s.locations, id, mutate)
}

// DeleteLocation removes a location record.
func (s *Store) DeleteLocation(ctx context.Context, id string) (bool, error) {
	return deleteRecord[domain.Location, *domain.Location](ctx, s, &s.locations, id)
}

// Invoices

// ListInvoices returns all invoices in insertion order.
func (s *Store) ListInvoices() []domain.Invoice { return listRecords(s, &s.invoices) }

// GetInvoice looks up an invoice by id.
func (s *Store) GetInvoice(id string) (domain.Invoice, bool) {
	return getRecord[domain.Invoice, *domain.Invoice](s, &s.invoices, id)
}

// CreateInvoice stores a new invoice.
func (s *Store) CreateInvoice(ctx context.Context, i domain.Invoice) (domain.Invoice, error) {
	return createRecord[domain.Invoice, *domain.Invoice](ctx, s, &s.invoices, i)
}

// UpdateInvoice mutates an invoice.
func (s *Store) UpdateInvoice(ctx context.Context, id string, mutate func(*domain.Invoice) error) (domain.Invoice, bool, error) {
	return updateRecord[domain.Invoice, *domain.Invoice](ctx, s, &s.invoices, id, mutate)
}

// DeleteInvoice removes an invoice record.
func (s *Store) DeleteInvoice(ctx context.Context, id string) (bool, error) {
	return deleteRecord[domain.Invoice, *domain.Invoice](ctx, s, &s.invoices, id)
}

// Purchase orders

// ListPurchaseOrders returns all purchase orders in insertion order.
func (s *Store) ListPurchaseOrders() []domain.PurchaseOrder { return listRecords(s, &s.purchaseOrders) }

// GetPurchaseOrder looks up a purchase order by id.
func (s *Store) GetPurchaseOrder(id string) (domain.PurchaseOrder, bool) {
	return getRecord[domain.PurchaseOrder, *domain.PurchaseOrder](s, &s.purchaseOrders, id)
}

// CreatePurchaseOrder stores a new purchase order.
func (s *Store) CreatePurchaseOrder(ctx context.Context, p domain.PurchaseOrder) (domain.PurchaseOrder, error) {
	return createRecord[domain.PurchaseOrder, *domain.PurchaseOrder](ctx, s, &s.purchaseOrders, p)
}

// UpdatePurchaseOrder mutates a purchase order.
func (s *Store) UpdatePurchaseOrder(ctx context.Context, id string, mutate func(*domain.PurchaseOrder) error) (domain.PurchaseOrder, bool, error) {
	return updateRecord[domain.PurchaseOrder, *domain.PurchaseOrder](ctx, s, &s.purchaseOrders, id, mutate)
}

// DeletePurchaseOrder removes a purchase order record.
func (s *Store) DeletePurchaseOrder(ctx context.Context, id string) (bool, error) {
	return deleteRecord[domain.PurchaseOrder, *domain.PurchaseOrder](ctx, s, &s.purchaseOrders, id)
}

// Project subcontractors

// ListProjectSubcontractors returns all subcontractors in insertion order.
func (s *Store) ListProjectSubcontractors() []domain.ProjectSubcontractor {
	return listRecords(s, &s.subcontractors)
}

// GetProjectSubcontractor looks up a subcontractor by id.
func (s *Store) GetProjectSubcontractor(id string) (domain.ProjectSubcontractor, bool) {
	return getRecord[domain.ProjectSubcontractor, *domain.ProjectSubcontractor](s, &s.subcontractors, id)
}

// CreateProjectSubcontractor stores a new subcontractor.
func (s *Store) CreateProjectSubcontractor(ctx context.Context, p domain.ProjectSubcontractor) (domain.ProjectSubcontractor, error) {
	return createRecord[domain.ProjectSubcontractor, *domain.ProjectSubcontractor](ctx, s, &s.subcontractors, p)
}

// UpdateProjectSubcontractor mutates a subcontractor.
func (s *Store) UpdateProjectSubcontractor(ctx context.Context, id string, mutate func(*domain.ProjectSubcontractor) error) (domain.ProjectSubcontractor, bool, error) {
	return updateRecord[domain.ProjectSubcontractor, *domain.ProjectSubcontractor](ctx, s, &s.subcontractors, id, mutate)
}

// DeleteProjectSubcontractor removes a subcontractor record.
func (s *Store) DeleteProjectSubcontractor(ctx context.Context, id string) (bool, error) {
	return deleteRecord[domain.ProjectSubcontractor, *domain.ProjectSubcontractor](ctx, s, &s.subcontractors, id)
}

// Subcontractor work orders

// ListSubcontractorWorkOrders returns all subcontractor work orders in
// insertion order.
func (s *Store) ListSubcontractorWorkOrders() []domain.SubcontractorWorkOrder {
	return listRecords(s, &s.subWorkOrders)
}

// GetSubcontractorWorkOrder looks up a subcontractor work order by id.
func (s *Store) GetSubcontractorWorkOrder(id string) (domain.SubcontractorWorkOrder, bool) {
	return getRecord[domain.SubcontractorWorkOrder, *domain.SubcontractorWorkOrder](s, &s.subWorkOrders, id)
}

// CreateSubcontractorWorkOrder stores a new subcontractor work order.
func (s *Store) CreateSubcontractorWorkOrder(ctx context.Context, w domain.SubcontractorWorkOrder) (domain.SubcontractorWorkOrder, error) {
	return createRecord[domain.SubcontractorWorkOrder, *domain.SubcontractorWorkOrder](ctx, s, &s.subWorkOrders, w)
}

// UpdateSubcontractorWorkOrder mutates a subcontractor work order.
func (s *Store) UpdateSubcontractorWorkOrder(ctx context.Context, id string, mutate func(*domain.SubcontractorWorkOrder) error) (domain.SubcontractorWorkOrder, bool, error) {
	return updateRecord[domain.SubcontractorWorkOrder, *domain.SubcontractorWorkOrder](ctx, s, &s.subWorkOrders, id, mutate)
}

// DeleteSubcontractorWorkOrder removes a subcontractor work order record.
func (s *Store) DeleteSubcontractorWorkOrder(ctx context.Context, id string) (bool, error) {
	return deleteRecord[domain.SubcontractorWorkOrder, *domain.SubcontractorWorkOrder](ctx, s, &s.subWorkOrders, id)
}
