// Package sizing derives PV array, battery, and inverter ratings from a
// load profile and site parameters.
package sizing

import (
	"math"

	"github.com/racewinner/dreamtool/pkg/loadprofile"
	"github.com/racewinner/dreamtool/pkg/scenario"
	"github.com/racewinner/dreamtool/pkg/validation"
)

// System is a sized PV/battery/inverter design for one load profile.
type System struct {
	PVSystemSizeKW     float64 `json:"pv_system_size_kw"`
	BatteryCapacityKWh float64 `json:"battery_capacity_kwh"`
	InverterCapacityKW float64 `json:"inverter_capacity_kw"`
	PanelCount         int     `json:"panel_count"`

	// BatteryDerate records the temperature adjustment applied to the
	// battery bank, 1.0 when the site sits at the 25 C reference.
	BatteryDerate float64 `json:"battery_derate"`
}

// referenceTemperatureC is the cell temperature battery capacity ratings
// assume.
const referenceTemperatureC = 25.0

// Size computes the system required to serve the given profile.
//
// A zero-demand profile sizes to a zero system; that is a valid answer for
// a facility with no load, not an error. Environment values that would
// divide by zero or invert the sizing direction are rejected before any
// arithmetic runs.
func Size(p *loadprofile.Profile, env scenario.Environment) (*System, error) {
	if err := validateEnvironment(env); err != nil {
		return nil, err
	}

	derate := 1.0 - env.BatteryTempDeratingPctPerC/100.0*math.Abs(env.AmbientTemperatureC-referenceTemperatureC)
	if derate <= 0 {
		return nil, validation.Errf(validation.LevelSizing,
			"environment.battery_temp_derating_pct_per_c", env.BatteryTempDeratingPctPerC,
			"derating eliminates all battery capacity at %.1f C", env.AmbientTemperatureC)
	}

	if p.PeakDemandKW == 0 && p.DailyConsumptionKWh == 0 {
		return &System{BatteryDerate: derate}, nil
	}

	pvKW := p.PeakDemandKW * env.SystemSizingFactor / (env.InverterEfficiency * env.SolarIrradianceFactor)
	batteryKWh := p.DailyConsumptionKWh * env.BatteryAutonomyDays /
		(env.BatteryDepthOfDischarge * env.BatteryRoundTripEfficiency) / derate
	inverterKW := p.PeakDemandKW * env.InverterSizingMargin
	panels := int(math.Ceil(pvKW * 1000.0 / env.PanelRatingWatts))

	return &System{
		PVSystemSizeKW:     pvKW,
		BatteryCapacityKWh: batteryKWh,
		InverterCapacityKW: inverterKW,
		PanelCount:         panels,
		BatteryDerate:      derate,
	}, nil
}

func validateEnvironment(env scenario.Environment) error {
	if env.SolarIrradianceFactor <= 0 {
		return validation.Errf(validation.LevelSizing, "environment.solar_irradiance_factor",
			env.SolarIrradianceFactor, "must be > 0")
	}
	if env.SystemSizingFactor <= 0 {
		return validation.Errf(validation.LevelSizing, "environment.system_sizing_factor",
			env.SystemSizingFactor, "must be > 0")
	}
	if env.InverterEfficiency <= 0 || env.InverterEfficiency > 1 {
		return validation.Errf(validation.LevelSizing, "environment.inverter_efficiency",
			env.InverterEfficiency, "must be in (0, 1]")
	}
	if env.InverterSizingMargin < 1 {
		return validation.Errf(validation.LevelSizing, "environment.inverter_sizing_margin",
			env.InverterSizingMargin, "must be >= 1")
	}
	if env.BatteryAutonomyDays < 0 {
		return validation.Errf(validation.LevelSizing, "environment.battery_autonomy_days",
			env.BatteryAutonomyDays, "must be >= 0")
	}
	if env.BatteryDepthOfDischarge <= 0 || env.BatteryDepthOfDischarge > 1 {
		return validation.Errf(validation.LevelSizing, "environment.battery_depth_of_discharge",
			env.BatteryDepthOfDischarge, "must be in (0, 1]")
	}
	if env.BatteryRoundTripEfficiency <= 0 || env.BatteryRoundTripEfficiency > 1 {
		return validation.Errf(validation.LevelSizing, "environment.battery_round_trip_efficiency",
			env.BatteryRoundTripEfficiency, "must be in (0, 1]")
	}
	if env.PanelRatingWatts <= 0 {
		return validation.Errf(validation.LevelSizing, "environment.panel_rating_watts",
			env.PanelRatingWatts, "must be > 0")
	}
	return nil
}
