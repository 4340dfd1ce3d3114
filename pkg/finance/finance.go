// Package finance computes lifecycle cost, NPV, IRR, and payback for sized
// and priced systems over a project horizon.
package finance

import (
	"math"

	"github.com/racewinner/dreamtool/pkg/costing"
	"github.com/racewinner/dreamtool/pkg/scenario"
	"github.com/racewinner/dreamtool/pkg/validation"
)

// Result holds the lifecycle financial metrics for one system.
//
// IRR and payback are frequently undefined in real scenarios (all-positive
// or all-negative cashflows, savings that never cover the investment); the
// Defined/WithinHorizon flags make that explicit instead of reporting a
// number that looks meaningful.
type Result struct {
	System               string    `json:"system"`
	LifecycleCost        float64   `json:"lifecycle_cost"`
	NPV                  float64   `json:"npv"`
	IRR                  float64   `json:"irr,omitempty"`
	IRRDefined           bool      `json:"irr_defined"`
	PaybackMonths        int       `json:"payback_months,omitempty"`
	PaybackWithinHorizon bool      `json:"payback_within_horizon"`
	EquivalentAnnualCost float64   `json:"equivalent_annual_cost"`
	Cashflows            []float64 `json:"cashflows"`
}

// CapitalEvent is a mid-lifecycle capital cost, such as a battery
// replacement, occurring at the end of the given project year.
type CapitalEvent struct {
	Year int     `json:"year"`
	Cost float64 `json:"cost"`
}

// LifecycleCost discounts the initial cost, escalated annual costs, and any
// capital events over the project lifetime.
func LifecycleCost(initial, annual, escalation float64, events []CapitalEvent, cfg scenario.FinanceConfig) float64 {
	total := initial
	for y := 1; y <= cfg.ProjectLifetimeYears; y++ {
		total += annual * math.Pow(1+escalation, float64(y)) / math.Pow(1+cfg.DiscountRate, float64(y))
	}
	for _, ev := range events {
		if ev.Year >= 1 && ev.Year <= cfg.ProjectLifetimeYears {
			total += ev.Cost / math.Pow(1+cfg.DiscountRate, float64(ev.Year))
		}
	}
	return total
}

// EquivalentAnnualCost spreads a lifecycle cost over the project lifetime
// with the standard annuity formula. At a zero discount rate it degrades to
// a straight division.
func EquivalentAnnualCost(lifecycle float64, cfg scenario.FinanceConfig) float64 {
	n := float64(cfg.ProjectLifetimeYears)
	if n <= 0 {
		return 0
	}
	r := cfg.DiscountRate
	if r <= 0 {
		return lifecycle / n
	}
	factor := math.Pow(1+r, n)
	return lifecycle * r * factor / (factor - 1)
}

// BatteryReplacements returns the capital events needed to keep the battery
// bank alive through the project: one replacement at every whole battery
// lifetime that falls strictly inside the horizon. A zero battery lifetime
// or replacement cost disables replacement.
func BatteryReplacements(pv *costing.Breakdown, cfg scenario.FinanceConfig) []CapitalEvent {
	cost := cfg.BatteryReplacementCost
	if cost == 0 {
		cost = pv.Battery
	}
	if cost <= 0 || cfg.BatteryLifetimeYears <= 0 || cfg.BatteryLifetimeYears >= cfg.ProjectLifetimeYears {
		return nil
	}
	var events []CapitalEvent
	for y := cfg.BatteryLifetimeYears; y < cfg.ProjectLifetimeYears; y += cfg.BatteryLifetimeYears {
		events = append(events, CapitalEvent{Year: y, Cost: cost})
	}
	return events
}

// Analyze computes the PV system's financial result against the diesel
// baseline it displaces. Yearly cashflow is the escalated avoided diesel
// cost minus escalated PV maintenance, with battery replacement capital
// deducted in its replacement years.
func Analyze(pv, diesel *costing.Breakdown, cfg scenario.FinanceConfig) (*Result, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	replacements := BatteryReplacements(pv, cfg)
	replacementByYear := make(map[int]float64, len(replacements))
	for _, ev := range replacements {
		replacementByYear[ev.Year] += ev.Cost
	}

	flows := make([]float64, cfg.ProjectLifetimeYears)
	for y := 1; y <= cfg.ProjectLifetimeYears; y++ {
		avoided := diesel.AnnualMaintenance * math.Pow(1+cfg.FuelPriceEscalation, float64(y))
		upkeep := pv.AnnualMaintenance * math.Pow(1+cfg.MaintenanceCostEscalation, float64(y))
		flows[y-1] = avoided - upkeep - replacementByYear[y]
	}

	lifecycle := LifecycleCost(pv.InitialCost, pv.AnnualMaintenance,
		cfg.MaintenanceCostEscalation, replacements, cfg)

	res := &Result{
		System:               "pv",
		LifecycleCost:        lifecycle,
		NPV:                  NPV(cfg.DiscountRate, pv.InitialCost, flows),
		EquivalentAnnualCost: EquivalentAnnualCost(lifecycle, cfg),
		Cashflows:            flows,
	}
	res.IRR, res.IRRDefined = IRR(pv.InitialCost, flows)
	res.PaybackMonths, res.PaybackWithinHorizon = PaybackMonths(pv.InitialCost, flows, cfg.DiscountRate)
	return res, nil
}

// AnalyzeBaseline computes the diesel system's own result. A baseline has
// no investment to recover, so IRR and payback are undefined by
// construction and its NPV is simply the negative of its discounted costs.
func AnalyzeBaseline(diesel *costing.Breakdown, cfg scenario.FinanceConfig) (*Result, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	flows := make([]float64, cfg.ProjectLifetimeYears)
	for y := 1; y <= cfg.ProjectLifetimeYears; y++ {
		flows[y-1] = -diesel.AnnualMaintenance * math.Pow(1+cfg.FuelPriceEscalation, float64(y))
	}

	lifecycle := LifecycleCost(diesel.InitialCost, diesel.AnnualMaintenance,
		cfg.FuelPriceEscalation, nil, cfg)

	return &Result{
		System:               "diesel",
		LifecycleCost:        lifecycle,
		NPV:                  NPV(cfg.DiscountRate, diesel.InitialCost, flows),
		EquivalentAnnualCost: EquivalentAnnualCost(lifecycle, cfg),
		Cashflows:            flows,
	}, nil
}

func validateConfig(cfg scenario.FinanceConfig) error {
	if cfg.ProjectLifetimeYears < 1 {
		return validation.Errf(validation.LevelFinancial, "finance.project_lifetime_years",
			cfg.ProjectLifetimeYears, "must be >= 1")
	}
	if cfg.DiscountRate <= -1 {
		return validation.Errf(validation.LevelFinancial, "finance.discount_rate",
			cfg.DiscountRate, "must be > -1")
	}
	if cfg.FuelPriceEscalation <= -1 {
		return validation.Errf(validation.LevelFinancial, "finance.fuel_price_escalation",
			cfg.FuelPriceEscalation, "must be > -1")
	}
	if cfg.MaintenanceCostEscalation <= -1 {
		return validation.Errf(validation.LevelFinancial, "finance.maintenance_cost_escalation",
			cfg.MaintenanceCostEscalation, "must be > -1")
	}
	if cfg.BatteryLifetimeYears < 0 {
		return validation.Errf(validation.LevelFinancial, "finance.battery_lifetime_years",
			cfg.BatteryLifetimeYears, "must be >= 0")
	}
	return nil
}
