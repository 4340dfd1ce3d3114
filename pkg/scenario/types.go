package scenario

// Category classifies a load by its daily usage pattern.
type Category string

const (
	CategoryLighting  Category = "lighting"
	CategoryCooling   Category = "cooling"
	CategoryComputing Category = "computing"
	CategoryMedical   Category = "medical"
	CategoryKitchen   Category = "kitchen"
	CategoryOther     Category = "other"
)

// Known reports whether c is one of the defined categories.
func (c Category) Known() bool {
	switch c {
	case CategoryLighting, CategoryCooling, CategoryComputing,
		CategoryMedical, CategoryKitchen, CategoryOther:
		return true
	}
	return false
}

// Priority ranks how critical a load is to facility operation.
type Priority string

const (
	PriorityEssential Priority = "essential"
	PriorityImportant Priority = "important"
	PriorityOptional  Priority = "optional"
)

// Known reports whether p is one of the defined priorities.
func (p Priority) Known() bool {
	switch p {
	case PriorityEssential, PriorityImportant, PriorityOptional:
		return true
	}
	return false
}

// Equipment is one physical or logical load in a facility inventory.
// Entries are plain values; editing one means rebuilding the owning
// scenario and regenerating everything derived from it.
type Equipment struct {
	Name             string   `yaml:"name" json:"name"`
	Category         Category `yaml:"category" json:"category"`
	PowerRatingWatts float64  `yaml:"power_rating_watts" json:"power_rating_watts"`
	HoursPerDay      float64  `yaml:"hours_per_day" json:"hours_per_day"`
	Quantity         int      `yaml:"quantity" json:"quantity"`
	Efficiency       float64  `yaml:"efficiency" json:"efficiency"`
	Priority         Priority `yaml:"priority" json:"priority"`

	// Archetype optionally names a catalog entry whose ratings fill in
	// any zero-valued fields above.
	Archetype string `yaml:"archetype,omitempty" json:"archetype,omitempty"`
}

// Scenario is one facility equipment configuration to analyze.
type Scenario struct {
	FacilityName string      `yaml:"name" json:"facility_name"`
	FacilityType string      `yaml:"type" json:"facility_type"`
	Equipment    []Equipment `yaml:"equipment" json:"equipment"`
}

// ProfileOptions controls load-profile generation.
type ProfileOptions struct {
	SeasonalVariation bool    `yaml:"seasonal_variation" json:"seasonal_variation"`
	SafetyMargin      float64 `yaml:"safety_margin" json:"safety_margin"`
	SystemEfficiency  float64 `yaml:"system_efficiency" json:"system_efficiency"`
}

// Environment holds the site and component parameters that drive system
// sizing. SolarIrradianceFactor is the site's irradiance derating relative
// to standard test conditions (1.0 = STC, lower for hazier or hotter
// sites), so PV capacity always covers peak demand through the inverter.
type Environment struct {
	SolarIrradianceFactor      float64 `yaml:"solar_irradiance_factor" json:"solar_irradiance_factor"`
	SystemSizingFactor         float64 `yaml:"system_sizing_factor" json:"system_sizing_factor"`
	InverterEfficiency         float64 `yaml:"inverter_efficiency" json:"inverter_efficiency"`
	InverterSizingMargin       float64 `yaml:"inverter_sizing_margin" json:"inverter_sizing_margin"`
	BatteryAutonomyDays        float64 `yaml:"battery_autonomy_days" json:"battery_autonomy_days"`
	BatteryDepthOfDischarge    float64 `yaml:"battery_depth_of_discharge" json:"battery_depth_of_discharge"`
	BatteryRoundTripEfficiency float64 `yaml:"battery_round_trip_efficiency" json:"battery_round_trip_efficiency"`
	AmbientTemperatureC        float64 `yaml:"ambient_temperature_c" json:"ambient_temperature_c"`
	BatteryTempDeratingPctPerC float64 `yaml:"battery_temp_derating_pct_per_c" json:"battery_temp_derating_pct_per_c"`
	PanelRatingWatts           float64 `yaml:"panel_rating_watts" json:"panel_rating_watts"`
}

// CostingConfig is the serialized form of a costing methodology choice.
// Only the fields belonging to the selected method may be set; the costing
// package converts this into its typed methodology and rejects mismatches.
type CostingConfig struct {
	Method string `yaml:"method" json:"method"`

	// per_watt
	SystemCostPerWatt float64 `yaml:"system_cost_per_watt,omitempty" json:"system_cost_per_watt,omitempty"`

	// fixed_variable and component_based
	FixedCosts         float64 `yaml:"fixed_costs,omitempty" json:"fixed_costs,omitempty"`
	PanelCostPerKW     float64 `yaml:"panel_cost_per_kw,omitempty" json:"panel_cost_per_kw,omitempty"`
	BatteryCostPerKWh  float64 `yaml:"battery_cost_per_kwh,omitempty" json:"battery_cost_per_kwh,omitempty"`
	InverterCostPerKW  float64 `yaml:"inverter_cost_per_kw,omitempty" json:"inverter_cost_per_kw,omitempty"`
	StructureCostPerKW float64 `yaml:"structure_cost_per_kw,omitempty" json:"structure_cost_per_kw,omitempty"`

	// component_based only
	PanelUnitCost       float64 `yaml:"panel_unit_cost,omitempty" json:"panel_unit_cost,omitempty"`
	NumPanels           int     `yaml:"num_panels,omitempty" json:"num_panels,omitempty"`
	PanelRatingWatts    float64 `yaml:"panel_rating_watts,omitempty" json:"panel_rating_watts,omitempty"`
	BalanceOfSystemCost float64 `yaml:"balance_of_system_cost,omitempty" json:"balance_of_system_cost,omitempty"`

	// PV operations & maintenance, fraction of initial cost per year.
	AnnualMaintenanceRate float64 `yaml:"annual_maintenance_rate,omitempty" json:"annual_maintenance_rate,omitempty"`
}

// DieselConfig parameterizes the diesel-generator baseline. The generator
// sizing heuristic (peak demand times margin, priced per kW) is deliberately
// configuration, not a built-in curve.
type DieselConfig struct {
	GeneratorSizingMargin float64 `yaml:"generator_sizing_margin" json:"generator_sizing_margin"`
	GeneratorCostPerKW    float64 `yaml:"generator_cost_per_kw" json:"generator_cost_per_kw"`
	FuelPricePerKWh       float64 `yaml:"fuel_price_per_kwh" json:"fuel_price_per_kwh"`
	FixedAnnualService    float64 `yaml:"fixed_annual_service" json:"fixed_annual_service"`
}

// FinanceConfig holds the lifecycle analysis parameters.
type FinanceConfig struct {
	ProjectLifetimeYears      int     `yaml:"project_lifetime_years" json:"project_lifetime_years"`
	DiscountRate              float64 `yaml:"discount_rate" json:"discount_rate"`
	FuelPriceEscalation       float64 `yaml:"fuel_price_escalation" json:"fuel_price_escalation"`
	MaintenanceCostEscalation float64 `yaml:"maintenance_cost_escalation" json:"maintenance_cost_escalation"`
	BatteryLifetimeYears      int     `yaml:"battery_lifetime_years" json:"battery_lifetime_years"`

	// BatteryReplacementCost of 0 means "use the battery line item from
	// the cost breakdown".
	BatteryReplacementCost float64 `yaml:"battery_replacement_cost,omitempty" json:"battery_replacement_cost,omitempty"`
}

// CarbonConfig holds the emission factor used for carbon-reduction
// estimates. It must be supplied explicitly; the engine never assumes one.
type CarbonConfig struct {
	EmissionFactorKgPerKWh float64 `yaml:"emission_factor_kg_per_kwh" json:"emission_factor_kg_per_kwh"`
}

// Parameters aggregates every configuration input the engine accepts.
// The orchestration layer owns defaulting policy; DefaultParameters is a
// convenience starting point, not hidden global state.
type Parameters struct {
	Profile     ProfileOptions `yaml:"profile" json:"profile"`
	Environment Environment    `yaml:"environment" json:"environment"`
	Costing     CostingConfig  `yaml:"costing" json:"costing"`
	Diesel      DieselConfig   `yaml:"diesel" json:"diesel"`
	Finance     FinanceConfig  `yaml:"finance" json:"finance"`
	Carbon      CarbonConfig   `yaml:"carbon" json:"carbon"`
}

// DefaultParameters returns a fully populated parameter set suitable for a
// small off-grid facility. Callers override fields as needed.
func DefaultParameters() Parameters {
	return Parameters{
		Profile: ProfileOptions{
			SeasonalVariation: false,
			SafetyMargin:      1.2,
			SystemEfficiency:  0.9,
		},
		Environment: Environment{
			SolarIrradianceFactor:      0.75,
			SystemSizingFactor:         1.25,
			InverterEfficiency:         0.95,
			InverterSizingMargin:       1.2,
			BatteryAutonomyDays:        2.0,
			BatteryDepthOfDischarge:    0.8,
			BatteryRoundTripEfficiency: 0.9,
			AmbientTemperatureC:        25.0,
			BatteryTempDeratingPctPerC: 0.5,
			PanelRatingWatts:           450,
		},
		Costing: CostingConfig{
			Method:                "fixed_variable",
			FixedCosts:            1500,
			PanelCostPerKW:        700,
			BatteryCostPerKWh:     350,
			InverterCostPerKW:     400,
			StructureCostPerKW:    250,
			AnnualMaintenanceRate: 0.02,
		},
		Diesel: DieselConfig{
			GeneratorSizingMargin: 1.25,
			GeneratorCostPerKW:    500,
			FuelPricePerKWh:       0.45,
			FixedAnnualService:    300,
		},
		Finance: FinanceConfig{
			ProjectLifetimeYears:      20,
			DiscountRate:              0.08,
			FuelPriceEscalation:       0.05,
			MaintenanceCostEscalation: 0.02,
			BatteryLifetimeYears:      10,
		},
		Carbon: CarbonConfig{
			EmissionFactorKgPerKWh: 0.85,
		},
	}
}
