package loadprofile

import (
	"math"
	"testing"

	"github.com/racewinner/dreamtool/pkg/scenario"
	"github.com/racewinner/dreamtool/pkg/validation"
)

func defaultOptions() scenario.ProfileOptions {
	return scenario.ProfileOptions{
		SeasonalVariation: false,
		SafetyMargin:      1.2,
		SystemEfficiency:  1.0,
	}
}

func clinicEquipment() []scenario.Equipment {
	return []scenario.Equipment{
		{Name: "LED", Category: scenario.CategoryLighting, PowerRatingWatts: 20, HoursPerDay: 12, Quantity: 10, Efficiency: 0.9, Priority: scenario.PriorityEssential},
		{Name: "Fridge", Category: scenario.CategoryMedical, PowerRatingWatts: 150, HoursPerDay: 24, Quantity: 1, Efficiency: 0.85, Priority: scenario.PriorityEssential},
	}
}

func TestGenerateClinicScenario(t *testing.T) {
	p, err := Generate(clinicEquipment(), defaultOptions())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if len(p.Hours) != HoursPerProfile {
		t.Fatalf("expected %d hours, got %d", HoursPerProfile, len(p.Hours))
	}

	// LED: 0.02 kW * 10 * 0.9 = 0.18 kW across the lighting window,
	// factor 1.0 for 10 night hours and 0.5 for the 18:00-20:00 shoulder,
	// usage ratio 12h/12h = 1. Daily = 0.18 * 11 * 1.2 = 2.376 kWh.
	// Fridge: 0.15 * 0.85 = 0.1275 kW for 24h. Daily = 0.1275*24*1.2 = 3.672.
	wantDaily := 2.376 + 3.672
	if math.Abs(p.DailyConsumptionKWh-wantDaily) > 1e-9 {
		t.Errorf("daily consumption = %v kWh, want %v", p.DailyConsumptionKWh, wantDaily)
	}

	// Peak is a night hour: both lighting (full factor) and the fridge
	// are active there.
	wantPeak := (0.18 + 0.1275) * 1.2
	if math.Abs(p.PeakDemandKW-wantPeak) > 1e-9 {
		t.Errorf("peak demand = %v kW, want %v", p.PeakDemandKW, wantPeak)
	}
	if !(p.PeakHour < 6 || p.PeakHour >= 20) {
		t.Errorf("peak hour = %d, want a night hour", p.PeakHour)
	}
}

func TestGenerateConservation(t *testing.T) {
	p, err := Generate(clinicEquipment(), defaultOptions())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	for _, h := range p.Hours {
		sum := 0.0
		for _, kw := range h.EquipmentBreakdown {
			sum += kw
		}
		if math.Abs(h.DemandKW-sum) > 1e-6 {
			t.Errorf("hour %d: demand %v != breakdown sum %v", h.Hour, h.DemandKW, sum)
		}
	}
}

func TestGenerateEmptyEquipment(t *testing.T) {
	p, err := Generate(nil, defaultOptions())
	if err != nil {
		t.Fatalf("empty equipment should not error: %v", err)
	}
	if p.PeakDemandKW != 0 {
		t.Errorf("peak = %v, want 0", p.PeakDemandKW)
	}
	if p.DailyConsumptionKWh != 0 {
		t.Errorf("daily = %v, want 0", p.DailyConsumptionKWh)
	}
	for _, h := range p.Hours {
		if h.DemandKW != 0 {
			t.Errorf("hour %d demand = %v, want 0", h.Hour, h.DemandKW)
		}
	}
}

func TestGenerateMonotonicInQuantity(t *testing.T) {
	eq := clinicEquipment()
	base, err := Generate(eq, defaultOptions())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	eq[0].Quantity = 11
	more, err := Generate(eq, defaultOptions())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if more.DailyConsumptionKWh <= base.DailyConsumptionKWh {
		t.Errorf("daily with more quantity = %v, want > %v",
			more.DailyConsumptionKWh, base.DailyConsumptionKWh)
	}
}

func TestGenerateMonotonicInHours(t *testing.T) {
	eq := clinicEquipment()
	eq[0].HoursPerDay = 6
	short, err := Generate(eq, defaultOptions())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	eq[0].HoursPerDay = 9
	long, err := Generate(eq, defaultOptions())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if long.DailyConsumptionKWh <= short.DailyConsumptionKWh {
		t.Errorf("daily with more hours = %v, want > %v",
			long.DailyConsumptionKWh, short.DailyConsumptionKWh)
	}
}

func TestGenerateHoursSaturateAtWindow(t *testing.T) {
	// HoursPerDay beyond the category window cannot add consumption; the
	// equipment is already on for every active hour.
	eq := []scenario.Equipment{
		{Name: "PC", Category: scenario.CategoryComputing, PowerRatingWatts: 200, HoursPerDay: 10, Quantity: 1, Efficiency: 0.9},
	}
	atWindow, err := Generate(eq, defaultOptions())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	eq[0].HoursPerDay = 16
	beyond, err := Generate(eq, defaultOptions())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if math.Abs(beyond.DailyConsumptionKWh-atWindow.DailyConsumptionKWh) > 1e-9 {
		t.Errorf("daily beyond window = %v, want %v",
			beyond.DailyConsumptionKWh, atWindow.DailyConsumptionKWh)
	}
}

func TestGenerateSeasonalVariation(t *testing.T) {
	opts := defaultOptions()
	base, err := Generate(clinicEquipment(), opts)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	opts.SeasonalVariation = true
	seasonal, err := Generate(clinicEquipment(), opts)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	want := base.DailyConsumptionKWh * DesignSeasonMultiplier()
	if math.Abs(seasonal.DailyConsumptionKWh-want) > 1e-9 {
		t.Errorf("seasonal daily = %v, want %v", seasonal.DailyConsumptionKWh, want)
	}
	if seasonal.SeasonalMultiplier != DesignSeasonMultiplier() {
		t.Errorf("seasonal multiplier = %v, want %v",
			seasonal.SeasonalMultiplier, DesignSeasonMultiplier())
	}
}

func TestGenerateSystemEfficiencyScalesDemand(t *testing.T) {
	opts := defaultOptions()
	base, err := Generate(clinicEquipment(), opts)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	opts.SystemEfficiency = 0.8
	lossy, err := Generate(clinicEquipment(), opts)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	want := base.DailyConsumptionKWh / 0.8
	if math.Abs(lossy.DailyConsumptionKWh-want) > 1e-9 {
		t.Errorf("daily with 80%% system efficiency = %v, want %v",
			lossy.DailyConsumptionKWh, want)
	}
}

func TestGenerateRejectsInvalidEquipment(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*scenario.Equipment)
		field  string
	}{
		{"negative power", func(e *scenario.Equipment) { e.PowerRatingWatts = -5 }, "power_rating_watts"},
		{"zero efficiency", func(e *scenario.Equipment) { e.Efficiency = 0 }, "efficiency"},
		{"efficiency above one", func(e *scenario.Equipment) { e.Efficiency = 1.5 }, "efficiency"},
		{"zero hours", func(e *scenario.Equipment) { e.HoursPerDay = 0 }, "hours_per_day"},
		{"too many hours", func(e *scenario.Equipment) { e.HoursPerDay = 25 }, "hours_per_day"},
		{"zero quantity", func(e *scenario.Equipment) { e.Quantity = 0 }, "quantity"},
		{"unknown category", func(e *scenario.Equipment) { e.Category = "hvac" }, "category"},
		{"empty name", func(e *scenario.Equipment) { e.Name = "" }, "name"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			eq := clinicEquipment()
			tc.mutate(&eq[0])
			_, err := Generate(eq, defaultOptions())
			if err == nil {
				t.Fatal("expected a validation error")
			}
			fe, ok := validation.AsFieldError(err)
			if !ok {
				t.Fatalf("expected FieldError, got %T: %v", err, err)
			}
			if fe.Field != "equipment[0]."+tc.field {
				t.Errorf("field = %q, want equipment[0].%s", fe.Field, tc.field)
			}
		})
	}
}

func TestGenerateRejectsInvalidOptions(t *testing.T) {
	eq := clinicEquipment()

	opts := defaultOptions()
	opts.SafetyMargin = 0.9
	if _, err := Generate(eq, opts); err == nil {
		t.Error("expected error for safety margin < 1")
	}

	opts = defaultOptions()
	opts.SystemEfficiency = 0
	if _, err := Generate(eq, opts); err == nil {
		t.Error("expected error for zero system efficiency")
	}
}

func TestDesignSeasonMultiplierIsPeak(t *testing.T) {
	design := DesignSeasonMultiplier()
	for season, m := range SeasonalMultipliers {
		if m > design {
			t.Errorf("season %s multiplier %v exceeds design multiplier %v", season, m, design)
		}
	}
}
