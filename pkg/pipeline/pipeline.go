// Package pipeline runs the full analysis for one scenario: load profile,
// system sizing, PV and diesel costing, and lifecycle financials.
package pipeline

import (
	"fmt"

	"github.com/racewinner/dreamtool/pkg/costing"
	"github.com/racewinner/dreamtool/pkg/finance"
	"github.com/racewinner/dreamtool/pkg/loadprofile"
	"github.com/racewinner/dreamtool/pkg/scenario"
	"github.com/racewinner/dreamtool/pkg/sizing"
)

// Result is the complete analysis of one scenario. Every stage output is a
// pure function of the scenario and parameters, so a Result is an immutable
// snapshot that may be cached or archived by its inputs.
type Result struct {
	FacilityName string `json:"facility_name"`
	FacilityType string `json:"facility_type"`

	Profile    *loadprofile.Profile `json:"profile"`
	Sizing     *sizing.System       `json:"sizing"`
	PVCost     *costing.Breakdown   `json:"pv_cost"`
	DieselCost *costing.Breakdown   `json:"diesel_cost"`
	PV         *finance.Result      `json:"pv"`
	Diesel     *finance.Result      `json:"diesel"`
}

// Run executes the four engine stages for one scenario.
func Run(sc *scenario.Scenario, p *scenario.Parameters) (*Result, error) {
	profile, err := loadprofile.Generate(sc.Equipment, p.Profile)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}

	system, err := sizing.Size(profile, p.Environment)
	if err != nil {
		return nil, fmt.Errorf("system sizing: %w", err)
	}

	methodology, err := costing.FromConfig(p.Costing)
	if err != nil {
		return nil, fmt.Errorf("costing: %w", err)
	}
	pvCost, err := costing.Cost(system, methodology)
	if err != nil {
		return nil, fmt.Errorf("costing: %w", err)
	}
	dieselCost, err := costing.DieselBaseline(profile, p.Diesel)
	if err != nil {
		return nil, fmt.Errorf("diesel baseline: %w", err)
	}

	pvFin, err := finance.Analyze(pvCost, dieselCost, p.Finance)
	if err != nil {
		return nil, fmt.Errorf("financial analysis: %w", err)
	}
	dieselFin, err := finance.AnalyzeBaseline(dieselCost, p.Finance)
	if err != nil {
		return nil, fmt.Errorf("financial analysis: %w", err)
	}

	return &Result{
		FacilityName: sc.FacilityName,
		FacilityType: sc.FacilityType,
		Profile:      profile,
		Sizing:       system,
		PVCost:       pvCost,
		DieselCost:   dieselCost,
		PV:           pvFin,
		Diesel:       dieselFin,
	}, nil
}
