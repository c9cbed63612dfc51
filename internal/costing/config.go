package costing

// Config carries the tunable rates and estimation ratios used by the cost
// roll-up engine. The ratio fields are business heuristics applied only when a
// linked record is absent; they are deliberately configuration, not constants.
type Config struct {
	// MaterialSubtotalRatio estimates material cost as a share of the
	// quotation subtotal when no BOM is linked.
	MaterialSubtotalRatio float64 `yaml:"material_subtotal_ratio" env:"FABCORE_COST_MATERIAL_RATIO" env-default:"0.60"`
	// LaborSubtotalRatio estimates labor cost as a share of the quotation
	// subtotal when no process steps are linked.
	LaborSubtotalRatio float64 `yaml:"labor_subtotal_ratio" env:"FABCORE_COST_LABOR_RATIO" env-default:"0.30"`
	// OverheadRate is applied to labor cost.
	OverheadRate float64 `yaml:"overhead_rate" env:"FABCORE_COST_OVERHEAD_RATE" env-default:"0.15"`
	// ProfitSubtotalRatio estimates profit margin as a share of the subtotal
	// when the quotation carries none.
	ProfitSubtotalRatio float64 `yaml:"profit_subtotal_ratio" env:"FABCORE_COST_PROFIT_RATIO" env-default:"0.15"`

	// DefaultLaborRate is the hourly rate for process steps that specify none.
	DefaultLaborRate float64 `yaml:"default_labor_rate" env:"FABCORE_COST_DEFAULT_LABOR_RATE" env-default:"250"`
	// EngineeringRate prices engineering project hours.
	EngineeringRate float64 `yaml:"engineering_rate" env:"FABCORE_COST_ENGINEERING_RATE" env-default:"500"`
	// CopperLMEPrice is the reference commodity price per kilogram surfaced on
	// the unit economics view. It is never folded into the cost total.
	CopperLMEPrice float64 `yaml:"copper_lme_price" env:"FABCORE_COST_COPPER_LME_PRICE" env-default:"845"`

	// Fixed proportions splitting overhead into its reporting buckets.
	OverheadFacilityShare   float64 `yaml:"overhead_facility_share" env:"FABCORE_COST_OVERHEAD_FACILITY" env-default:"0.40"`
	OverheadEquipmentShare  float64 `yaml:"overhead_equipment_share" env:"FABCORE_COST_OVERHEAD_EQUIPMENT" env-default:"0.30"`
	OverheadManagementShare float64 `yaml:"overhead_management_share" env:"FABCORE_COST_OVERHEAD_MANAGEMENT" env-default:"0.20"`
	OverheadUtilitiesShare  float64 `yaml:"overhead_utilities_share" env:"FABCORE_COST_OVERHEAD_UTILITIES" env-default:"0.10"`
}

// DefaultConfig returns the configuration with every field at its documented
// default, matching the env-default tags.
func DefaultConfig() Config {
	return Config{
		MaterialSubtotalRatio:   0.60,
		LaborSubtotalRatio:      0.30,
		OverheadRate:            0.15,
		ProfitSubtotalRatio:     0.15,
		DefaultLaborRate:        250,
		EngineeringRate:         500,
		CopperLMEPrice:          845,
		OverheadFacilityShare:   0.40,
		OverheadEquipmentShare:  0.30,
		OverheadManagementShare: 0.20,
		OverheadUtilitiesShare:  0.10,
	}
}
