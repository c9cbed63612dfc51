// Package domain defines the persistent entities and value types used by
// fabcore: the quoting, engineering, production, quality, inventory and
// commercial records that the entity store keeps and the cost roll-up engine
// reads.
package domain

import "time"

// EntityType identifies the kind of record stored in a collection.
type EntityType string

// Supported entity type identifiers, used as collection names in the
// persistence substrate key space.
const (
	// EntityCustomer identifies a customer master record.
	EntityCustomer EntityType = "customer"
	// EntitySupplier identifies a supplier master record.
	EntitySupplier EntityType = "supplier"
	// EntityQuotation identifies a sales quotation record.
	EntityQuotation EntityType = "quotation"
	// EntitySalesOrder identifies a confirmed sales order record.
	EntitySalesOrder EntityType = "sales_order"
	// EntityEngineeringProject identifies an engineering project record.
	EntityEngineeringProject EntityType = "engineering_project"
	// EntityEngineeringDrawing identifies a drawing under a project.
	EntityEngineeringDrawing EntityType = "engineering_drawing"
	// EntityEngineeringChange identifies an engineering change request.
	EntityEngineeringChange EntityType = "engineering_change"
	// EntityBillOfMaterials identifies a bill of materials record.
	EntityBillOfMaterials EntityType = "bill_of_materials"
	// EntityBillOfQuantities identifies a bill of quantities record.
	EntityBillOfQuantities EntityType = "bill_of_quantities"
	// EntityProductionWorkOrder identifies a production work order.
	EntityProductionWorkOrder EntityType = "production_work_order"
	// EntityProcessStep identifies a routing step owned by a work order.
	EntityProcessStep EntityType = "process_step"
	// EntityWorkstation identifies a shopfloor workstation.
	EntityWorkstation EntityType = "workstation"
	// EntityOperator identifies a shopfloor operator.
	EntityOperator EntityType = "operator"
	// EntityShopfloorActivity identifies a logged shopfloor activity.
	EntityShopfloorActivity EntityType = "shopfloor_activity"
	// EntityQualityInspection identifies a quality inspection record.
	EntityQualityInspection EntityType = "quality_inspection"
	// EntityQualityTest identifies a measured quality test.
	EntityQualityTest EntityType = "quality_test"
	// EntityItem identifies an inventory item master record.
	EntityItem EntityType = "item"
	// EntityLocation identifies an inventory storage location.
	EntityLocation EntityType = "location"
	// EntityInvoice identifies a customer invoice.
	EntityInvoice EntityType = "invoice"
	// EntityPurchaseOrder identifies a supplier purchase order.
	EntityPurchaseOrder EntityType = "purchase_order"
	// EntityProjectSubcontractor identifies a subcontractor engaged on a project.
	EntityProjectSubcontractor EntityType = "project_subcontractor"
	// EntitySubcontractorWorkOrder identifies a work order issued to a subcontractor.
	EntitySubcontractorWorkOrder EntityType = "subcontractor_work_order"
)

// QuotationStatus enumerates the quotation workflow states.
type QuotationStatus string

// Canonical quotation statuses.
const (
	QuotationStatusDraft    QuotationStatus = "draft"
	QuotationStatusSent     QuotationStatus = "sent"
	QuotationStatusAccepted QuotationStatus = "accepted"
	QuotationStatusRejected QuotationStatus = "rejected"
	QuotationStatusExpired  QuotationStatus = "expired"
)

// WorkOrderStatus enumerates production work order states.
type WorkOrderStatus string

// Canonical work order statuses.
const (
	WorkOrderStatusPlanned    WorkOrderStatus = "planned"
	WorkOrderStatusReleased   WorkOrderStatus = "released"
	WorkOrderStatusInProgress WorkOrderStatus = "in_progress"
	WorkOrderStatusCompleted  WorkOrderStatus = "completed"
	WorkOrderStatusCancelled  WorkOrderStatus = "cancelled"
)

// MaterialCategory tags a BOM item for the categorized material cost
// breakdown. Unrecognised categories fold into MaterialOther.
type MaterialCategory string

// Material categories recognised by the cost roll-up engine.
const (
	MaterialSteel    MaterialCategory = "steel"
	MaterialCopper   MaterialCategory = "copper"
	MaterialHardware MaterialCategory = "hardware"
	MaterialOther    MaterialCategory = "other"
)

// Base contains common fields for all persistent records. CreatedAt is set
// once at creation; UpdatedAt is bumped on every mutation.
type Base struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RecordBase exposes the embedded metadata for generic store plumbing.
func (b *Base) RecordBase() *Base { return b }

// Customer is a buying party referenced by quotations, orders and invoices.
type Customer struct {
	Base
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Notes   string `json:"notes,omitempty"`
}

// Supplier is a selling party referenced by purchase orders.
type Supplier struct {
	Base
	Name     string `json:"name"`
	Contact  string `json:"contact"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Category string `json:"category,omitempty"`
}

// QuotationItem is a quoted line owned inline by a Quotation. It is not
// separately addressable.
type QuotationItem struct {
	ItemID      *string `json:"item_id"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Amount      float64 `json:"amount"`
}

// Quotation is a priced offer to a customer. Cost fields stay nil until a
// caller (typically the cost roll-up engine) writes them back. Cross-entity
// references are identifiers resolved lazily and may dangle after deletes.
type Quotation struct {
	Base
	Number               string          `json:"number"`
	CustomerID           string          `json:"customer_id"`
	Status               QuotationStatus `json:"status"`
	Items                []QuotationItem `json:"items"`
	Subtotal             float64         `json:"subtotal"`
	Tax                  float64         `json:"tax"`
	Total                float64         `json:"total"`
	MaterialCost         *float64        `json:"material_cost"`
	LaborCost            *float64        `json:"labor_cost"`
	OverheadCost         *float64        `json:"overhead_cost"`
	EngineeringCost      *float64        `json:"engineering_cost"`
	ProfitMargin         *float64        `json:"profit_margin"`
	EngineeringProjectID *string         `json:"engineering_project_id"`
	BOQID                *string         `json:"boq_id"`
	BOMID                *string         `json:"bom_id"`
	SalesOrderID         *string         `json:"sales_order_id"`
	InvoiceID            *string         `json:"invoice_id"`
	ValidUntil           *time.Time      `json:"valid_until"`
}

// SalesOrder is a confirmed customer order, usually raised from a quotation.
type SalesOrder struct {
	Base
	Number      string     `json:"number"`
	CustomerID  string     `json:"customer_id"`
	QuotationID *string    `json:"quotation_id"`
	Status      string     `json:"status"`
	Total       float64    `json:"total"`
	OrderedAt   time.Time  `json:"ordered_at"`
	DueAt       *time.Time `json:"due_at"`
}

// EngineeringProject tracks design work feeding a quotation or work order.
type EngineeringProject struct {
	Base
	Name           string     `json:"name"`
	CustomerID     *string    `json:"customer_id"`
	QuotationID    *string    `json:"quotation_id"`
	Status         string     `json:"status"`
	EstimatedHours float64    `json:"estimated_hours"`
	ActualHours    float64    `json:"actual_hours"`
	StartedAt      *time.Time `json:"started_at"`
	CompletedAt    *time.Time `json:"completed_at"`
}

// EngineeringDrawing is a drawing revision under a project.
type EngineeringDrawing struct {
	Base
	ProjectID string `json:"project_id"`
	Number    string `json:"number"`
	Title     string `json:"title"`
	Revision  string `json:"revision"`
	Status    string `json:"status"`
}

// EngineeringChange records a change request against a project or drawing.
type EngineeringChange struct {
	Base
	ProjectID   string  `json:"project_id"`
	DrawingID   *string `json:"drawing_id"`
	Description string  `json:"description"`
	Reason      string  `json:"reason,omitempty"`
	Status      string  `json:"status"`
}

// BOMItem is a material line owned inline by a BillOfMaterials. Category and
// MaterialGrade drive the categorized cost breakdown; copper-tagged lines
// also accumulate into the copper weight figure.
type BOMItem struct {
	ItemID        *string          `json:"item_id"`
	Description   string           `json:"description"`
	Category      MaterialCategory `json:"category"`
	MaterialGrade string           `json:"material_grade,omitempty"`
	Quantity      float64          `json:"quantity"`
	Unit          string           `json:"unit"`
	UnitCost      float64          `json:"unit_cost"`
	TotalCost     float64          `json:"total_cost"`
}

// BillOfMaterials lists the materials needed to build a quoted product.
// TotalCost is a caller-maintained fold over Items; the store never
// recomputes it.
type BillOfMaterials struct {
	Base
	Number               string    `json:"number"`
	EngineeringProjectID *string   `json:"engineering_project_id"`
	BOQID                *string   `json:"boq_id"`
	Items                []BOMItem `json:"items"`
	TotalCost            float64   `json:"total_cost"`
	Status               string    `json:"status"`
}

// BOQItem is a quantity line owned inline by a BillOfQuantities.
type BOQItem struct {
	ItemID      *string `json:"item_id"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit"`
	UnitRate    float64 `json:"unit_rate"`
	Amount      float64 `json:"amount"`
}

// BillOfQuantities is a pre-engineering quantity take-off, convertible into a
// BOM that references it by BOQID.
type BillOfQuantities struct {
	Base
	Number      string    `json:"number"`
	QuotationID *string   `json:"quotation_id"`
	Items       []BOQItem `json:"items"`
	TotalAmount float64   `json:"total_amount"`
	Status      string    `json:"status"`
}

// ProductionWorkOrder authorizes manufacture of a quantity against a BOM.
// Process steps reference it by WorkOrderID.
type ProductionWorkOrder struct {
	Base
	Number       string          `json:"number"`
	BOMID        *string         `json:"bom_id"`
	SalesOrderID *string         `json:"sales_order_id"`
	ProjectID    *string         `json:"project_id"`
	Quantity     float64         `json:"quantity"`
	Status       WorkOrderStatus `json:"status"`
	DueAt        *time.Time      `json:"due_at"`
}

// ProcessStep is a routing operation under a work order. EstimatedDuration is
// in minutes; RatePerHour overrides the configured default labor rate when set.
type ProcessStep struct {
	Base
	WorkOrderID       string   `json:"work_order_id"`
	Sequence          int      `json:"sequence"`
	Name              string   `json:"name"`
	WorkstationID     *string  `json:"workstation_id"`
	OperatorID        *string  `json:"operator_id"`
	EstimatedDuration float64  `json:"estimated_duration"`
	ActualDuration    *float64 `json:"actual_duration"`
	RatePerHour       *float64 `json:"rate_per_hour"`
	Status            string   `json:"status"`
}

// Workstation is a machine or cell on the shopfloor.
type Workstation struct {
	Base
	Name       string  `json:"name"`
	Type       string  `json:"type"`
	HourlyRate float64 `json:"hourly_rate"`
	Status     string  `json:"status"`
}

// Operator is a shopfloor worker assignable to process steps.
type Operator struct {
	Base
	Name       string  `json:"name"`
	Skill      string  `json:"skill"`
	HourlyRate float64 `json:"hourly_rate"`
	Shift      string  `json:"shift"`
}

// ShopfloorActivity logs time spent against a work order step.
type ShopfloorActivity struct {
	Base
	WorkOrderID   string     `json:"work_order_id"`
	StepID        *string    `json:"step_id"`
	OperatorID    *string    `json:"operator_id"`
	WorkstationID *string    `json:"workstation_id"`
	StartedAt     time.Time  `json:"started_at"`
	EndedAt       *time.Time `json:"ended_at"`
	Notes         string     `json:"notes,omitempty"`
}

// QualityInspection records an inspection event against a work order or item.
type QualityInspection struct {
	Base
	WorkOrderID *string   `json:"work_order_id"`
	ItemID      *string   `json:"item_id"`
	Inspector   string    `json:"inspector"`
	Type        string    `json:"type"`
	Result      string    `json:"result"`
	InspectedAt time.Time `json:"inspected_at"`
	Notes       string    `json:"notes,omitempty"`
}

// QualityTest is a measured test under an inspection.
type QualityTest struct {
	Base
	InspectionID  *string `json:"inspection_id"`
	Name          string  `json:"name"`
	Specification string  `json:"specification"`
	Measured      string  `json:"measured"`
	Passed        bool    `json:"passed"`
}

// Item is the inventory master record referenced by BOM/BOQ lines by
// identifier only, never duplicated into them.
type Item struct {
	Base
	Code           string           `json:"code"`
	Name           string           `json:"name"`
	Category       MaterialCategory `json:"category"`
	MaterialGrade  string           `json:"material_grade,omitempty"`
	Unit           string           `json:"unit"`
	UnitCost       float64          `json:"unit_cost"`
	QuantityOnHand float64          `json:"quantity_on_hand"`
	ReorderLevel   float64          `json:"reorder_level"`
	LocationID     *string          `json:"location_id"`
}

// Location is a physical storage location for inventory items.
type Location struct {
	Base
	Code string `json:"code"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// Invoice bills a customer for a quotation or sales order.
type Invoice struct {
	Base
	Number       string     `json:"number"`
	CustomerID   string     `json:"customer_id"`
	QuotationID  *string    `json:"quotation_id"`
	SalesOrderID *string    `json:"sales_order_id"`
	Amount       float64    `json:"amount"`
	Tax          float64    `json:"tax"`
	Total        float64    `json:"total"`
	Status       string     `json:"status"`
	IssuedAt     time.Time  `json:"issued_at"`
	DueAt        *time.Time `json:"due_at"`
}

// PurchaseOrderItem is a purchased line owned inline by a PurchaseOrder.
type PurchaseOrderItem struct {
	ItemID      *string `json:"item_id"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitCost    float64 `json:"unit_cost"`
	Amount      float64 `json:"amount"`
}

// PurchaseOrder orders materials from a supplier.
type PurchaseOrder struct {
	Base
	Number     string              `json:"number"`
	SupplierID string              `json:"supplier_id"`
	Items      []PurchaseOrderItem `json:"items"`
	Total      float64             `json:"total"`
	Status     string              `json:"status"`
	OrderedAt  time.Time           `json:"ordered_at"`
}

// ProjectSubcontractor is an external party engaged on an engineering project.
type ProjectSubcontractor struct {
	Base
	ProjectID string `json:"project_id"`
	Name      string `json:"name"`
	Scope     string `json:"scope"`
	Email     string `json:"email"`
	Status    string `json:"status"`
}

// SubcontractorWorkOrder is a work order issued to a subcontractor.
type SubcontractorWorkOrder struct {
	Base
	SubcontractorID string    `json:"subcontractor_id"`
	ProjectID       *string   `json:"project_id"`
	Description     string    `json:"description"`
	Amount          float64   `json:"amount"`
	Status          string    `json:"status"`
	IssuedAt        time.Time `json:"issued_at"`
}
