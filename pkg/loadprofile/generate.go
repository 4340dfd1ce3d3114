package loadprofile

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/racewinner/dreamtool/pkg/scenario"
	"github.com/racewinner/dreamtool/pkg/validation"
)

// HoursPerProfile is the profile resolution. Every profile covers one day
// at one-hour steps.
const HoursPerProfile = 24

// HourlyDemand is the demand at one hour of the day, with the contribution
// of each equipment entry broken out by name.
type HourlyDemand struct {
	Hour               int                `json:"hour"`
	DemandKW           float64            `json:"demand_kw"`
	EquipmentBreakdown map[string]float64 `json:"equipment_breakdown"`
}

// Profile is a 24-hour demand curve derived from an equipment inventory.
// Profiles are immutable snapshots: when the inventory changes, the owner
// regenerates the profile rather than patching it.
type Profile struct {
	Hours               []HourlyDemand `json:"hours"`
	DailyConsumptionKWh float64        `json:"daily_consumption_kwh"`
	PeakDemandKW        float64        `json:"peak_demand_kw"`
	PeakHour            int            `json:"peak_hour"`
	SafetyMargin        float64        `json:"safety_margin"`
	SeasonalMultiplier  float64        `json:"seasonal_multiplier"`
}

// Generate converts an equipment inventory into an hourly demand profile.
//
// Each entry contributes power x quantity x category load factor x
// efficiency at every hour of its category window, scaled by
// min(1, hours_per_day / window hours) so equipment used less than the full
// window shrinks proportionally. The summed curve is scaled by the safety
// margin, divided by system efficiency to account for distribution losses,
// and, when seasonal variation is enabled, scaled by the design-season
// multiplier.
//
// An empty inventory yields an all-zero profile. Invalid equipment or
// options are rejected with a *validation.FieldError naming the field.
func Generate(equipment []scenario.Equipment, opts scenario.ProfileOptions) (*Profile, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}
	for i, eq := range equipment {
		if err := validateEquipment(i, eq); err != nil {
			return nil, err
		}
	}

	seasonal := 1.0
	if opts.SeasonalVariation {
		seasonal = DesignSeasonMultiplier()
	}
	scale := opts.SafetyMargin * seasonal / opts.SystemEfficiency

	demand := make([]float64, HoursPerProfile)
	hours := make([]HourlyDemand, HoursPerProfile)
	for h := range hours {
		breakdown := make(map[string]float64, len(equipment))
		for _, eq := range equipment {
			factor := loadFactor(eq.Category, h)
			if factor == 0 {
				continue
			}
			usage := eq.HoursPerDay / windowHours(eq.Category)
			if usage > 1 {
				usage = 1
			}
			kw := eq.PowerRatingWatts * float64(eq.Quantity) * factor * eq.Efficiency / 1000.0
			breakdown[eq.Name] += kw * usage * scale
		}

		total := 0.0
		for _, kw := range breakdown {
			total += kw
		}
		demand[h] = total
		hours[h] = HourlyDemand{Hour: h, DemandKW: total, EquipmentBreakdown: breakdown}
	}

	peakHour := floats.MaxIdx(demand)
	return &Profile{
		Hours:               hours,
		DailyConsumptionKWh: floats.Sum(demand),
		PeakDemandKW:        demand[peakHour],
		PeakHour:            peakHour,
		SafetyMargin:        opts.SafetyMargin,
		SeasonalMultiplier:  seasonal,
	}, nil
}

func validateOptions(opts scenario.ProfileOptions) error {
	if opts.SafetyMargin < 1 {
		return validation.Errf(validation.LevelProfile, "profile.safety_margin",
			opts.SafetyMargin, "must be >= 1")
	}
	if opts.SystemEfficiency <= 0 || opts.SystemEfficiency > 1 {
		return validation.Errf(validation.LevelProfile, "profile.system_efficiency",
			opts.SystemEfficiency, "must be in (0, 1]")
	}
	return nil
}

func validateEquipment(i int, eq scenario.Equipment) error {
	field := func(name string) string {
		return fmt.Sprintf("equipment[%d].%s", i, name)
	}
	if eq.Name == "" {
		return validation.Errf(validation.LevelProfile, field("name"), nil, "must not be empty")
	}
	if !eq.Category.Known() {
		return validation.Errf(validation.LevelProfile, field("category"),
			string(eq.Category), "unknown category for %q", eq.Name)
	}
	if eq.PowerRatingWatts <= 0 {
		return validation.Errf(validation.LevelProfile, field("power_rating_watts"),
			eq.PowerRatingWatts, "must be > 0 for %q", eq.Name)
	}
	if eq.HoursPerDay <= 0 || eq.HoursPerDay > 24 {
		return validation.Errf(validation.LevelProfile, field("hours_per_day"),
			eq.HoursPerDay, "must be in (0, 24] for %q", eq.Name)
	}
	if eq.Quantity < 1 {
		return validation.Errf(validation.LevelProfile, field("quantity"),
			eq.Quantity, "must be >= 1 for %q", eq.Name)
	}
	if eq.Efficiency <= 0 || eq.Efficiency > 1 {
		return validation.Errf(validation.LevelProfile, field("efficiency"),
			eq.Efficiency, "must be in (0, 1] for %q", eq.Name)
	}
	return nil
}
