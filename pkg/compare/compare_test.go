package compare

import (
	"math"
	"reflect"
	"testing"

	"github.com/racewinner/dreamtool/pkg/pipeline"
	"github.com/racewinner/dreamtool/pkg/scenario"
)

func currentScenario() *scenario.Scenario {
	return &scenario.Scenario{
		FacilityName: "Test Clinic",
		FacilityType: "clinic",
		Equipment: []scenario.Equipment{
			{Name: "Incandescent Lights", Category: scenario.CategoryLighting, PowerRatingWatts: 60, HoursPerDay: 12, Quantity: 10, Efficiency: 0.9, Priority: scenario.PriorityEssential},
			{Name: "Fridge", Category: scenario.CategoryMedical, PowerRatingWatts: 150, HoursPerDay: 24, Quantity: 1, Efficiency: 0.85, Priority: scenario.PriorityEssential},
			{Name: "Desktop", Category: scenario.CategoryComputing, PowerRatingWatts: 200, HoursPerDay: 8, Quantity: 2, Efficiency: 0.9, Priority: scenario.PriorityImportant},
		},
	}
}

func idealScenario() *scenario.Scenario {
	return &scenario.Scenario{
		FacilityName: "Test Clinic",
		FacilityType: "clinic",
		Equipment: []scenario.Equipment{
			{Name: "LED Lights", Category: scenario.CategoryLighting, PowerRatingWatts: 10, HoursPerDay: 12, Quantity: 10, Efficiency: 0.95, Priority: scenario.PriorityEssential},
			{Name: "Fridge", Category: scenario.CategoryMedical, PowerRatingWatts: 120, HoursPerDay: 24, Quantity: 1, Efficiency: 0.9, Priority: scenario.PriorityEssential},
			{Name: "Laptop", Category: scenario.CategoryComputing, PowerRatingWatts: 65, HoursPerDay: 8, Quantity: 2, Efficiency: 0.9, Priority: scenario.PriorityImportant},
		},
	}
}

func testParameters() *scenario.Parameters {
	p := scenario.DefaultParameters()
	return &p
}

func TestCompareReductions(t *testing.T) {
	c, err := Compare(currentScenario(), idealScenario(), testParameters())
	if err != nil {
		t.Fatalf("Compare failed: %v", err)
	}

	if c.DemandReductionKW <= 0 {
		t.Errorf("demand reduction = %v, want > 0", c.DemandReductionKW)
	}
	if c.ConsumptionReductionKWhPerDay <= 0 {
		t.Errorf("consumption reduction = %v, want > 0", c.ConsumptionReductionKWhPerDay)
	}
	if c.CostSavings <= 0 {
		t.Errorf("cost savings = %v, want > 0", c.CostSavings)
	}

	// Deltas must agree with the embedded snapshots.
	wantDemand := c.Current.Profile.PeakDemandKW - c.Ideal.Profile.PeakDemandKW
	if math.Abs(c.DemandReductionKW-wantDemand) > 1e-9 {
		t.Errorf("demand reduction = %v, want %v", c.DemandReductionKW, wantDemand)
	}
	wantSavings := c.Current.PV.LifecycleCost - c.Ideal.PV.LifecycleCost
	if math.Abs(c.CostSavings-wantSavings) > 1e-9 {
		t.Errorf("cost savings = %v, want %v", c.CostSavings, wantSavings)
	}
}

func TestCompareCarbonReduction(t *testing.T) {
	params := testParameters()
	params.Carbon.EmissionFactorKgPerKWh = 0.7

	c, err := Compare(currentScenario(), idealScenario(), params)
	if err != nil {
		t.Fatalf("Compare failed: %v", err)
	}

	want := c.ConsumptionReductionKWhPerDay * 365 * 0.7
	if math.Abs(c.CarbonReductionKgPerYear-want) > 1e-9 {
		t.Errorf("carbon reduction = %v, want %v", c.CarbonReductionKgPerYear, want)
	}
}

func TestCompareRequiresEmissionFactor(t *testing.T) {
	params := testParameters()
	params.Carbon.EmissionFactorKgPerKWh = 0

	if _, err := Compare(currentScenario(), idealScenario(), params); err == nil {
		t.Fatal("expected error for unset emission factor")
	}
}

func TestCompareCheaperIdealPaysBackImmediately(t *testing.T) {
	// The ideal system serves a smaller load, so its PV investment is
	// smaller: there is no incremental investment to recover.
	c, err := Compare(currentScenario(), idealScenario(), testParameters())
	if err != nil {
		t.Fatalf("Compare failed: %v", err)
	}
	if c.IncrementalInvestment > 0 {
		t.Fatalf("incremental investment = %v, expected <= 0", c.IncrementalInvestment)
	}
	if !c.PaybackWithinHorizon || c.PaybackMonths != 0 {
		t.Errorf("payback = (%d, %v), want (0, true)", c.PaybackMonths, c.PaybackWithinHorizon)
	}
}

func TestCompareWorseIdealHasNoPayback(t *testing.T) {
	// Swapping the scenarios makes the "ideal" strictly worse: a bigger
	// system that costs more to buy and to run must report no payback,
	// never a negative month count.
	c, err := Compare(idealScenario(), currentScenario(), testParameters())
	if err != nil {
		t.Fatalf("Compare failed: %v", err)
	}

	if c.CostSavings >= 0 {
		t.Fatalf("cost savings = %v, expected negative for a worse ideal", c.CostSavings)
	}
	if c.IncrementalInvestment <= 0 {
		t.Fatalf("incremental investment = %v, expected > 0", c.IncrementalInvestment)
	}
	if c.PaybackWithinHorizon {
		t.Error("expected no payback for a strictly worse ideal")
	}
	if c.PaybackMonths < 0 {
		t.Errorf("payback months = %d, must never be negative", c.PaybackMonths)
	}
}

func TestCompareMatchesSequentialPipelines(t *testing.T) {
	params := testParameters()

	c, err := Compare(currentScenario(), idealScenario(), params)
	if err != nil {
		t.Fatalf("Compare failed: %v", err)
	}

	cur, err := pipeline.Run(currentScenario(), params)
	if err != nil {
		t.Fatalf("pipeline.Run failed: %v", err)
	}
	idl, err := pipeline.Run(idealScenario(), params)
	if err != nil {
		t.Fatalf("pipeline.Run failed: %v", err)
	}

	if !reflect.DeepEqual(c.Current, cur) {
		t.Error("concurrent current result differs from sequential run")
	}
	if !reflect.DeepEqual(c.Ideal, idl) {
		t.Error("concurrent ideal result differs from sequential run")
	}
}

func TestCompareSnapshotsAreIndependent(t *testing.T) {
	params := testParameters()
	first, err := Compare(currentScenario(), idealScenario(), params)
	if err != nil {
		t.Fatalf("Compare failed: %v", err)
	}
	firstSavings := first.CostSavings

	// A second comparison with different inputs must not disturb the
	// first snapshot.
	if _, err := Compare(idealScenario(), currentScenario(), params); err != nil {
		t.Fatalf("Compare failed: %v", err)
	}
	if first.CostSavings != firstSavings {
		t.Error("regenerating a comparison mutated a prior snapshot")
	}
}
