package costing

import (
	"github.com/racewinner/dreamtool/pkg/scenario"
	"github.com/racewinner/dreamtool/pkg/validation"
)

// Methodology names used for serialization and selection.
const (
	MethodPerWatt        = "per_watt"
	MethodFixedVariable  = "fixed_variable"
	MethodComponentBased = "component_based"
	MethodDiesel         = "diesel"
)

// Methodology is one way of pricing a sized PV system. Each variant carries
// only its own required fields, so a field set for the wrong method cannot
// exist, let alone be silently ignored.
type Methodology interface {
	Method() string
	validate() error
}

// PerWatt prices the whole installed system at a single rate per watt of
// PV capacity.
type PerWatt struct {
	SystemCostPerWatt     float64
	AnnualMaintenanceRate float64
}

func (PerWatt) Method() string { return MethodPerWatt }

func (m PerWatt) validate() error {
	if m.SystemCostPerWatt <= 0 {
		return validation.Errf(validation.LevelCosting, "costing.system_cost_per_watt",
			m.SystemCostPerWatt, "required for %s method", MethodPerWatt)
	}
	if m.AnnualMaintenanceRate < 0 {
		return validation.Errf(validation.LevelCosting, "costing.annual_maintenance_rate",
			m.AnnualMaintenanceRate, "must be >= 0")
	}
	return nil
}

// FixedVariable prices the system as a fixed base cost plus per-capacity
// rates for panels, battery, inverter, and mounting structure.
type FixedVariable struct {
	FixedCosts            float64
	PanelCostPerKW        float64
	BatteryCostPerKWh     float64
	InverterCostPerKW     float64
	StructureCostPerKW    float64
	AnnualMaintenanceRate float64
}

func (FixedVariable) Method() string { return MethodFixedVariable }

func (m FixedVariable) validate() error {
	required := []struct {
		field string
		value float64
	}{
		{"panel_cost_per_kw", m.PanelCostPerKW},
		{"battery_cost_per_kwh", m.BatteryCostPerKWh},
		{"inverter_cost_per_kw", m.InverterCostPerKW},
	}
	for _, f := range required {
		if f.value <= 0 {
			return validation.Errf(validation.LevelCosting, "costing."+f.field,
				f.value, "required for %s method", MethodFixedVariable)
		}
	}
	if m.FixedCosts < 0 {
		return validation.Errf(validation.LevelCosting, "costing.fixed_costs",
			m.FixedCosts, "must be >= 0")
	}
	if m.StructureCostPerKW < 0 {
		return validation.Errf(validation.LevelCosting, "costing.structure_cost_per_kw",
			m.StructureCostPerKW, "must be >= 0")
	}
	if m.AnnualMaintenanceRate < 0 {
		return validation.Errf(validation.LevelCosting, "costing.annual_maintenance_rate",
			m.AnnualMaintenanceRate, "must be >= 0")
	}
	return nil
}

// ComponentBased itemizes every line explicitly: a panel count at a unit
// price, plus battery, inverter, structure, and balance-of-system lines.
// The declared panel count is reconciled against the sized PV capacity.
type ComponentBased struct {
	PanelUnitCost         float64
	NumPanels             int
	PanelRatingWatts      float64
	BatteryCostPerKWh     float64
	InverterCostPerKW     float64
	StructureCostPerKW    float64
	BalanceOfSystemCost   float64
	FixedCosts            float64
	AnnualMaintenanceRate float64
}

func (ComponentBased) Method() string { return MethodComponentBased }

func (m ComponentBased) validate() error {
	if m.PanelUnitCost <= 0 {
		return validation.Errf(validation.LevelCosting, "costing.panel_unit_cost",
			m.PanelUnitCost, "required for %s method", MethodComponentBased)
	}
	if m.NumPanels < 1 {
		return validation.Errf(validation.LevelCosting, "costing.num_panels",
			m.NumPanels, "required for %s method", MethodComponentBased)
	}
	if m.PanelRatingWatts <= 0 {
		return validation.Errf(validation.LevelCosting, "costing.panel_rating_watts",
			m.PanelRatingWatts, "required for %s method", MethodComponentBased)
	}
	for field, v := range map[string]float64{
		"battery_cost_per_kwh":    m.BatteryCostPerKWh,
		"inverter_cost_per_kw":    m.InverterCostPerKW,
		"structure_cost_per_kw":   m.StructureCostPerKW,
		"balance_of_system_cost":  m.BalanceOfSystemCost,
		"fixed_costs":             m.FixedCosts,
		"annual_maintenance_rate": m.AnnualMaintenanceRate,
	} {
		if v < 0 {
			return validation.Errf(validation.LevelCosting, "costing."+field,
				v, "must be >= 0")
		}
	}
	return nil
}

// FromConfig converts the serialized costing configuration into its typed
// methodology, rejecting unknown methods and missing required fields.
func FromConfig(cfg scenario.CostingConfig) (Methodology, error) {
	var m Methodology
	switch cfg.Method {
	case MethodPerWatt:
		m = PerWatt{
			SystemCostPerWatt:     cfg.SystemCostPerWatt,
			AnnualMaintenanceRate: cfg.AnnualMaintenanceRate,
		}
	case MethodFixedVariable:
		m = FixedVariable{
			FixedCosts:            cfg.FixedCosts,
			PanelCostPerKW:        cfg.PanelCostPerKW,
			BatteryCostPerKWh:     cfg.BatteryCostPerKWh,
			InverterCostPerKW:     cfg.InverterCostPerKW,
			StructureCostPerKW:    cfg.StructureCostPerKW,
			AnnualMaintenanceRate: cfg.AnnualMaintenanceRate,
		}
	case MethodComponentBased:
		m = ComponentBased{
			PanelUnitCost:         cfg.PanelUnitCost,
			NumPanels:             cfg.NumPanels,
			PanelRatingWatts:      cfg.PanelRatingWatts,
			BatteryCostPerKWh:     cfg.BatteryCostPerKWh,
			InverterCostPerKW:     cfg.InverterCostPerKW,
			StructureCostPerKW:    cfg.StructureCostPerKW,
			BalanceOfSystemCost:   cfg.BalanceOfSystemCost,
			FixedCosts:            cfg.FixedCosts,
			AnnualMaintenanceRate: cfg.AnnualMaintenanceRate,
		}
	default:
		return nil, validation.Errf(validation.LevelCosting, "costing.method",
			cfg.Method, "unknown methodology")
	}
	if err := m.validate(); err != nil {
		return nil, err
	}
	return m, nil
}
