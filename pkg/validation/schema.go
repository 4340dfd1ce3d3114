package validation

import (
	"fmt"

	"github.com/racewinner/dreamtool/pkg/scenario"
)

// ValidateScenario performs schema-level validation of a scenario and its
// parameters before any computation. Engine stages repeat the checks that
// guard their own arithmetic; this pass exists so a caller can surface every
// problem in one report instead of failing on the first.
func ValidateScenario(s *scenario.Scenario, p *scenario.Parameters) *Report {
	r := NewReport()

	validateFacility(s, r)
	validateEquipment(s, r)
	validateProfileOptions(p, r)
	validateEnvironment(p, r)
	validateCosting(p, r)
	validateDiesel(p, r)
	validateFinance(p, r)
	validateCarbon(p, r)

	return r
}

func validateFacility(s *scenario.Scenario, r *Report) {
	if s.FacilityName == "" {
		r.AddWarning(Result{
			Level:     LevelSchema,
			Message:   "facility.name is empty",
			FieldPath: "facility.name",
			Expected:  "non-empty name",
		})
	}
	if len(s.Equipment) == 0 {
		r.AddInfo(Result{
			Level:     LevelSchema,
			Message:   "equipment list is empty; analysis will produce a zero-load system",
			FieldPath: "equipment",
		})
	}
}

func validateEquipment(s *scenario.Scenario, r *Report) {
	for i, eq := range s.Equipment {
		path := func(field string) string {
			return fmt.Sprintf("equipment[%d].%s", i, field)
		}

		if eq.Name == "" {
			r.AddError(Result{
				Level:     LevelSchema,
				Message:   fmt.Sprintf("equipment[%d]: name must not be empty", i),
				FieldPath: path("name"),
				Expected:  "non-empty name",
			})
		}
		if !eq.Category.Known() {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("equipment[%d] (%s): unknown category %q", i, eq.Name, eq.Category),
				FieldPath:   path("category"),
				ActualValue: string(eq.Category),
				Expected:    "lighting|cooling|computing|medical|kitchen|other",
			})
		}
		if eq.PowerRatingWatts <= 0 {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("equipment[%d] (%s): power_rating_watts must be > 0", i, eq.Name),
				FieldPath:   path("power_rating_watts"),
				ActualValue: eq.PowerRatingWatts,
				Expected:    "> 0",
			})
		}
		if eq.HoursPerDay <= 0 || eq.HoursPerDay > 24 {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("equipment[%d] (%s): hours_per_day must be in (0, 24]", i, eq.Name),
				FieldPath:   path("hours_per_day"),
				ActualValue: eq.HoursPerDay,
				Expected:    "0 < h <= 24",
			})
		}
		if eq.Quantity < 1 {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("equipment[%d] (%s): quantity must be >= 1", i, eq.Name),
				FieldPath:   path("quantity"),
				ActualValue: eq.Quantity,
				Expected:    ">= 1",
			})
		}
		if eq.Efficiency <= 0 || eq.Efficiency > 1 {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("equipment[%d] (%s): efficiency must be in (0, 1]", i, eq.Name),
				FieldPath:   path("efficiency"),
				ActualValue: eq.Efficiency,
				Expected:    "0 < e <= 1",
			})
		}
		if eq.Priority != "" && !eq.Priority.Known() {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("equipment[%d] (%s): unknown priority %q", i, eq.Name, eq.Priority),
				FieldPath:   path("priority"),
				ActualValue: string(eq.Priority),
				Expected:    "essential|important|optional",
			})
		}
	}
}

func validateProfileOptions(p *scenario.Parameters, r *Report) {
	if p.Profile.SafetyMargin < 1 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "profile.safety_margin must be >= 1",
			FieldPath:   "parameters.profile.safety_margin",
			ActualValue: p.Profile.SafetyMargin,
			Expected:    ">= 1",
			Suggestions: []string{"Use 1.0 for no margin; typical designs use 1.1-1.3"},
		})
	}
	if p.Profile.SystemEfficiency <= 0 || p.Profile.SystemEfficiency > 1 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "profile.system_efficiency must be in (0, 1]",
			FieldPath:   "parameters.profile.system_efficiency",
			ActualValue: p.Profile.SystemEfficiency,
			Expected:    "0 < e <= 1",
		})
	}
}

func validateEnvironment(p *scenario.Parameters, r *Report) {
	env := p.Environment

	positive := map[string]float64{
		"solar_irradiance_factor": env.SolarIrradianceFactor,
		"system_sizing_factor":    env.SystemSizingFactor,
		"panel_rating_watts":      env.PanelRatingWatts,
	}
	for field, v := range positive {
		if v <= 0 {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("environment.%s must be > 0", field),
				FieldPath:   "parameters.environment." + field,
				ActualValue: v,
				Expected:    "> 0",
			})
		}
	}

	unitRange := map[string]float64{
		"inverter_efficiency":           env.InverterEfficiency,
		"battery_depth_of_discharge":    env.BatteryDepthOfDischarge,
		"battery_round_trip_efficiency": env.BatteryRoundTripEfficiency,
	}
	for field, v := range unitRange {
		if v <= 0 || v > 1 {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("environment.%s must be in (0, 1]", field),
				FieldPath:   "parameters.environment." + field,
				ActualValue: v,
				Expected:    "0 < e <= 1",
			})
		}
	}

	if env.InverterSizingMargin < 1 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "environment.inverter_sizing_margin must be >= 1",
			FieldPath:   "parameters.environment.inverter_sizing_margin",
			ActualValue: env.InverterSizingMargin,
			Expected:    ">= 1",
		})
	}
	if env.BatteryAutonomyDays < 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "environment.battery_autonomy_days must be >= 0",
			FieldPath:   "parameters.environment.battery_autonomy_days",
			ActualValue: env.BatteryAutonomyDays,
			Expected:    ">= 0",
		})
	}
	if env.BatteryTempDeratingPctPerC < 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "environment.battery_temp_derating_pct_per_c must be >= 0",
			FieldPath:   "parameters.environment.battery_temp_derating_pct_per_c",
			ActualValue: env.BatteryTempDeratingPctPerC,
			Expected:    ">= 0",
		})
	}
}

func validateCosting(p *scenario.Parameters, r *Report) {
	cfg := p.Costing
	switch cfg.Method {
	case "per_watt":
		if cfg.SystemCostPerWatt <= 0 {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     "costing.system_cost_per_watt is required for the per_watt method",
				FieldPath:   "parameters.costing.system_cost_per_watt",
				ActualValue: cfg.SystemCostPerWatt,
				Expected:    "> 0",
			})
		}
	case "fixed_variable":
		required := map[string]float64{
			"panel_cost_per_kw":    cfg.PanelCostPerKW,
			"battery_cost_per_kwh": cfg.BatteryCostPerKWh,
			"inverter_cost_per_kw": cfg.InverterCostPerKW,
		}
		for field, v := range required {
			if v <= 0 {
				r.AddError(Result{
					Level:       LevelSchema,
					Message:     fmt.Sprintf("costing.%s is required for the fixed_variable method", field),
					FieldPath:   "parameters.costing." + field,
					ActualValue: v,
					Expected:    "> 0",
				})
			}
		}
	case "component_based":
		if cfg.PanelUnitCost <= 0 {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     "costing.panel_unit_cost is required for the component_based method",
				FieldPath:   "parameters.costing.panel_unit_cost",
				ActualValue: cfg.PanelUnitCost,
				Expected:    "> 0",
			})
		}
		if cfg.NumPanels < 1 {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     "costing.num_panels is required for the component_based method",
				FieldPath:   "parameters.costing.num_panels",
				ActualValue: cfg.NumPanels,
				Expected:    ">= 1",
			})
		}
		if cfg.PanelRatingWatts <= 0 {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     "costing.panel_rating_watts is required for the component_based method",
				FieldPath:   "parameters.costing.panel_rating_watts",
				ActualValue: cfg.PanelRatingWatts,
				Expected:    "> 0",
			})
		}
	default:
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("unknown costing method %q", cfg.Method),
			FieldPath:   "parameters.costing.method",
			ActualValue: cfg.Method,
			Expected:    "per_watt|fixed_variable|component_based",
		})
	}

	if cfg.AnnualMaintenanceRate < 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "costing.annual_maintenance_rate must be >= 0",
			FieldPath:   "parameters.costing.annual_maintenance_rate",
			ActualValue: cfg.AnnualMaintenanceRate,
			Expected:    ">= 0",
		})
	}
}

func validateDiesel(p *scenario.Parameters, r *Report) {
	d := p.Diesel
	if d.GeneratorSizingMargin < 1 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "diesel.generator_sizing_margin must be >= 1",
			FieldPath:   "parameters.diesel.generator_sizing_margin",
			ActualValue: d.GeneratorSizingMargin,
			Expected:    ">= 1",
		})
	}
	if d.GeneratorCostPerKW <= 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "diesel.generator_cost_per_kw must be > 0",
			FieldPath:   "parameters.diesel.generator_cost_per_kw",
			ActualValue: d.GeneratorCostPerKW,
			Expected:    "> 0",
		})
	}
	if d.FuelPricePerKWh <= 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "diesel.fuel_price_per_kwh must be > 0",
			FieldPath:   "parameters.diesel.fuel_price_per_kwh",
			ActualValue: d.FuelPricePerKWh,
			Expected:    "> 0",
		})
	}
	if d.FixedAnnualService < 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "diesel.fixed_annual_service must be >= 0",
			FieldPath:   "parameters.diesel.fixed_annual_service",
			ActualValue: d.FixedAnnualService,
			Expected:    ">= 0",
		})
	}
}

func validateFinance(p *scenario.Parameters, r *Report) {
	f := p.Finance
	if f.ProjectLifetimeYears < 1 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "finance.project_lifetime_years must be >= 1",
			FieldPath:   "parameters.finance.project_lifetime_years",
			ActualValue: f.ProjectLifetimeYears,
			Expected:    ">= 1",
		})
	}
	if f.DiscountRate <= -1 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "finance.discount_rate must be > -1",
			FieldPath:   "parameters.finance.discount_rate",
			ActualValue: f.DiscountRate,
			Expected:    "> -1",
		})
	}
	for field, v := range map[string]float64{
		"fuel_price_escalation":       f.FuelPriceEscalation,
		"maintenance_cost_escalation": f.MaintenanceCostEscalation,
	} {
		if v <= -1 {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("finance.%s must be > -1", field),
				FieldPath:   "parameters.finance." + field,
				ActualValue: v,
				Expected:    "> -1",
			})
		}
	}
	if f.BatteryLifetimeYears < 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "finance.battery_lifetime_years must be >= 0",
			FieldPath:   "parameters.finance.battery_lifetime_years",
			ActualValue: f.BatteryLifetimeYears,
			Expected:    ">= 0 (0 disables replacement)",
		})
	}
	if f.BatteryLifetimeYears > 0 && f.BatteryLifetimeYears < f.ProjectLifetimeYears {
		r.AddInfo(Result{
			Level:     LevelSchema,
			Message:   fmt.Sprintf("battery will be replaced every %d years within the %d year project", f.BatteryLifetimeYears, f.ProjectLifetimeYears),
			FieldPath: "parameters.finance.battery_lifetime_years",
		})
	}
}

func validateCarbon(p *scenario.Parameters, r *Report) {
	if p.Carbon.EmissionFactorKgPerKWh <= 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "carbon.emission_factor_kg_per_kwh must be configured explicitly",
			FieldPath:   "parameters.carbon.emission_factor_kg_per_kwh",
			ActualValue: p.Carbon.EmissionFactorKgPerKWh,
			Expected:    "> 0",
			Suggestions: []string{"Diesel burn is commonly around 0.85 kgCO2e per kWh generated"},
		})
	}
}
