// Package costing prices sized PV systems under configurable methodologies
// and produces the diesel-generator cost baseline they are compared with.
package costing

import (
	"fmt"
	"math"

	"github.com/racewinner/dreamtool/pkg/sizing"
)

// panelReconciliationTolerance is the relative mismatch between declared
// panel capacity and sized PV capacity that is accepted without comment.
// Panel counts are rounded up in practice, so small overshoots are normal.
const panelReconciliationTolerance = 0.02

// Breakdown itemizes the initial cost of one system and its annual
// maintenance. Line items not used by the selected methodology stay zero.
type Breakdown struct {
	Method          string  `json:"method"`
	Panels          float64 `json:"panels"`
	Battery         float64 `json:"battery"`
	Inverter        float64 `json:"inverter"`
	Structure       float64 `json:"structure"`
	BalanceOfSystem float64 `json:"balance_of_system"`
	Fixed           float64 `json:"fixed"`

	InitialCost       float64 `json:"initial_cost"`
	AnnualMaintenance float64 `json:"annual_maintenance"`

	// Warnings carries non-fatal findings such as panel-count
	// reconciliation mismatches.
	Warnings []string `json:"warnings,omitempty"`
}

// Cost prices a sized system under the given methodology.
func Cost(sz *sizing.System, m Methodology) (*Breakdown, error) {
	if err := m.validate(); err != nil {
		return nil, err
	}

	b := &Breakdown{Method: m.Method()}
	switch m := m.(type) {
	case PerWatt:
		b.InitialCost = sz.PVSystemSizeKW * 1000.0 * m.SystemCostPerWatt
		b.AnnualMaintenance = b.InitialCost * m.AnnualMaintenanceRate

	case FixedVariable:
		b.Panels = sz.PVSystemSizeKW * m.PanelCostPerKW
		b.Battery = sz.BatteryCapacityKWh * m.BatteryCostPerKWh
		b.Inverter = sz.InverterCapacityKW * m.InverterCostPerKW
		b.Structure = sz.PVSystemSizeKW * m.StructureCostPerKW
		b.Fixed = m.FixedCosts
		b.InitialCost = b.Panels + b.Battery + b.Inverter + b.Structure + b.Fixed
		b.AnnualMaintenance = b.InitialCost * m.AnnualMaintenanceRate

	case ComponentBased:
		b.Panels = float64(m.NumPanels) * m.PanelUnitCost
		b.Battery = sz.BatteryCapacityKWh * m.BatteryCostPerKWh
		b.Inverter = sz.InverterCapacityKW * m.InverterCostPerKW
		b.Structure = sz.PVSystemSizeKW * m.StructureCostPerKW
		b.BalanceOfSystem = m.BalanceOfSystemCost
		b.Fixed = m.FixedCosts
		b.InitialCost = b.Panels + b.Battery + b.Inverter + b.Structure + b.BalanceOfSystem + b.Fixed
		b.AnnualMaintenance = b.InitialCost * m.AnnualMaintenanceRate

		if w := reconcilePanels(m, sz); w != "" {
			b.Warnings = append(b.Warnings, w)
		}
	}

	return b, nil
}

// reconcilePanels checks declared panel capacity against the sized PV
// capacity. A mismatch is a warning, not an error: counts are commonly
// rounded up to whole strings.
func reconcilePanels(m ComponentBased, sz *sizing.System) string {
	if sz.PVSystemSizeKW == 0 {
		return ""
	}
	declaredKW := float64(m.NumPanels) * m.PanelRatingWatts / 1000.0
	mismatch := math.Abs(declaredKW-sz.PVSystemSizeKW) / sz.PVSystemSizeKW
	if mismatch <= panelReconciliationTolerance {
		return ""
	}
	return fmt.Sprintf("declared panel capacity %.2f kW differs from sized PV capacity %.2f kW by %.1f%%",
		declaredKW, sz.PVSystemSizeKW, mismatch*100)
}
