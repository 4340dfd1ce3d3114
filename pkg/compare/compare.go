// Package compare diffs two full scenario analyses: the facility as it
// stands against an optimized equipment configuration.
package compare

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/racewinner/dreamtool/pkg/finance"
	"github.com/racewinner/dreamtool/pkg/pipeline"
	"github.com/racewinner/dreamtool/pkg/scenario"
	"github.com/racewinner/dreamtool/pkg/validation"
)

// Comparison pairs the current and ideal analyses with the deltas between
// them. Both embedded results are snapshots; regenerating a comparison
// never touches a previously produced one.
type Comparison struct {
	Current *pipeline.Result `json:"current"`
	Ideal   *pipeline.Result `json:"ideal"`

	DemandReductionKW             float64 `json:"demand_reduction_kw"`
	ConsumptionReductionKWhPerDay float64 `json:"consumption_reduction_kwh_per_day"`
	CostSavings                   float64 `json:"cost_savings"`

	// Payback of the incremental upgrade investment against incremental
	// annual savings. Never the absolute payback of either scenario.
	IncrementalInvestment    float64 `json:"incremental_investment"`
	IncrementalAnnualSavings float64 `json:"incremental_annual_savings"`
	PaybackMonths            int     `json:"payback_months,omitempty"`
	PaybackWithinHorizon     bool    `json:"payback_within_horizon"`

	CarbonReductionKgPerYear float64 `json:"carbon_reduction_kg_per_year"`
}

// Compare runs the full pipeline for both scenarios and computes the
// structured delta. The two pipelines share no state and run concurrently.
func Compare(current, ideal *scenario.Scenario, p *scenario.Parameters) (*Comparison, error) {
	if p.Carbon.EmissionFactorKgPerKWh <= 0 {
		return nil, validation.Errf(validation.LevelFinancial,
			"carbon.emission_factor_kg_per_kwh", p.Carbon.EmissionFactorKgPerKWh,
			"must be configured explicitly")
	}

	var cur, idl *pipeline.Result
	var g errgroup.Group
	g.Go(func() error {
		r, err := pipeline.Run(current, p)
		if err != nil {
			return fmt.Errorf("current scenario: %w", err)
		}
		cur = r
		return nil
	})
	g.Go(func() error {
		r, err := pipeline.Run(ideal, p)
		if err != nil {
			return fmt.Errorf("ideal scenario: %w", err)
		}
		idl = r
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	c := &Comparison{
		Current:                       cur,
		Ideal:                         idl,
		DemandReductionKW:             cur.Profile.PeakDemandKW - idl.Profile.PeakDemandKW,
		ConsumptionReductionKWhPerDay: cur.Profile.DailyConsumptionKWh - idl.Profile.DailyConsumptionKWh,
		CostSavings:                   cur.PV.LifecycleCost - idl.PV.LifecycleCost,
		IncrementalInvestment:         idl.PVCost.InitialCost - cur.PVCost.InitialCost,
		IncrementalAnnualSavings:      cur.PV.EquivalentAnnualCost - idl.PV.EquivalentAnnualCost,
	}
	c.PaybackMonths, c.PaybackWithinHorizon = incrementalPayback(c, p.Finance)
	c.CarbonReductionKgPerYear = c.ConsumptionReductionKWhPerDay * 365 * p.Carbon.EmissionFactorKgPerKWh

	return c, nil
}

// incrementalPayback evaluates the upgrade investment against the yearly
// savings it produces. An upgrade that saves nothing (or costs more to run)
// reports no payback rather than a nonsensical month count.
func incrementalPayback(c *Comparison, cfg scenario.FinanceConfig) (int, bool) {
	if c.IncrementalInvestment <= 0 {
		return 0, true
	}
	if c.IncrementalAnnualSavings <= 0 {
		return 0, false
	}
	flows := make([]float64, cfg.ProjectLifetimeYears)
	for i := range flows {
		flows[i] = c.IncrementalAnnualSavings
	}
	return finance.PaybackMonths(c.IncrementalInvestment, flows, cfg.DiscountRate)
}
