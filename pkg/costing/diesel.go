package costing

import (
	"github.com/racewinner/dreamtool/pkg/loadprofile"
	"github.com/racewinner/dreamtool/pkg/scenario"
	"github.com/racewinner/dreamtool/pkg/validation"
)

// daysPerYear for annualizing daily consumption.
const daysPerYear = 365

// DieselBaseline prices the diesel generator that would serve the same
// profile: a generator sized at peak demand times the sizing margin, priced
// per kW, with annual cost from fuel burn plus a fixed service charge.
func DieselBaseline(p *loadprofile.Profile, cfg scenario.DieselConfig) (*Breakdown, error) {
	if err := validateDiesel(cfg); err != nil {
		return nil, err
	}

	generatorKW := p.PeakDemandKW * cfg.GeneratorSizingMargin
	fuel := p.DailyConsumptionKWh * daysPerYear * cfg.FuelPricePerKWh

	return &Breakdown{
		Method:            MethodDiesel,
		InitialCost:       generatorKW * cfg.GeneratorCostPerKW,
		AnnualMaintenance: fuel + cfg.FixedAnnualService,
	}, nil
}

func validateDiesel(cfg scenario.DieselConfig) error {
	if cfg.GeneratorSizingMargin < 1 {
		return validation.Errf(validation.LevelCosting, "diesel.generator_sizing_margin",
			cfg.GeneratorSizingMargin, "must be >= 1")
	}
	if cfg.GeneratorCostPerKW <= 0 {
		return validation.Errf(validation.LevelCosting, "diesel.generator_cost_per_kw",
			cfg.GeneratorCostPerKW, "must be > 0")
	}
	if cfg.FuelPricePerKWh <= 0 {
		return validation.Errf(validation.LevelCosting, "diesel.fuel_price_per_kwh",
			cfg.FuelPricePerKWh, "must be > 0")
	}
	if cfg.FixedAnnualService < 0 {
		return validation.Errf(validation.LevelCosting, "diesel.fixed_annual_service",
			cfg.FixedAnnualService, "must be >= 0")
	}
	return nil
}
