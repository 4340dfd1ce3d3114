package catalog

import (
	"testing"

	"github.com/racewinner/dreamtool/pkg/scenario"
	"github.com/racewinner/dreamtool/pkg/validation"
)

func TestDefaultCatalogLookup(t *testing.T) {
	c := Default()
	if c.Len() == 0 {
		t.Fatal("default catalog is empty")
	}

	fridge, ok := c.Lookup("Vaccine Refrigerator")
	if !ok {
		t.Fatal("Vaccine Refrigerator missing from default catalog")
	}
	if fridge.Category != scenario.CategoryMedical || fridge.HoursPerDay != 24 {
		t.Errorf("Vaccine Refrigerator = %+v, want medical, 24h", fridge)
	}
	if fridge.Priority != scenario.PriorityEssential {
		t.Errorf("Vaccine Refrigerator priority = %q, want essential", fridge.Priority)
	}

	if _, ok := c.Lookup("Teleporter"); ok {
		t.Error("lookup of an absent archetype succeeded")
	}
}

func TestResolveFillsZeroFields(t *testing.T) {
	eq, err := Default().Resolve(scenario.Equipment{Archetype: "Laptop", Quantity: 3})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if eq.Name != "Laptop" || eq.Category != scenario.CategoryComputing {
		t.Errorf("resolved = %q/%q, want Laptop/computing", eq.Name, eq.Category)
	}
	if eq.PowerRatingWatts != 65 || eq.HoursPerDay != 8 || eq.Efficiency != 0.9 {
		t.Errorf("resolved ratings = %vW x %vh @ %v, want 65W x 8h @ 0.9",
			eq.PowerRatingWatts, eq.HoursPerDay, eq.Efficiency)
	}
	if eq.Quantity != 3 {
		t.Errorf("quantity = %d, want the caller's 3", eq.Quantity)
	}
}

func TestResolveKeepsExplicitOverrides(t *testing.T) {
	eq, err := Default().Resolve(scenario.Equipment{
		Name:             "Lab Laptop",
		Archetype:        "Laptop",
		PowerRatingWatts: 90,
		HoursPerDay:      12,
	})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if eq.Name != "Lab Laptop" {
		t.Errorf("name = %q, explicit name must win", eq.Name)
	}
	if eq.PowerRatingWatts != 90 || eq.HoursPerDay != 12 {
		t.Errorf("ratings = %vW x %vh, explicit ratings must win", eq.PowerRatingWatts, eq.HoursPerDay)
	}
	if eq.Quantity != 1 {
		t.Errorf("quantity = %d, want the implied 1", eq.Quantity)
	}
}

func TestResolveWithoutArchetypePassesThrough(t *testing.T) {
	in := scenario.Equipment{Name: "Custom Incubator", Category: scenario.CategoryMedical, PowerRatingWatts: 400}
	out, err := Default().Resolve(in)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if out != in {
		t.Errorf("resolved = %+v, want untouched %+v", out, in)
	}
}

func TestResolveUnknownArchetype(t *testing.T) {
	_, err := Default().Resolve(scenario.Equipment{Archetype: "Teleporter"})
	if err == nil {
		t.Fatal("expected error for unknown archetype")
	}
	fe, ok := validation.AsFieldError(err)
	if !ok {
		t.Fatalf("error %v is not a field error", err)
	}
	if fe.Field != "equipment.archetype" {
		t.Errorf("field = %q, want equipment.archetype", fe.Field)
	}
}

func TestResolveAll(t *testing.T) {
	out, err := Default().ResolveAll([]scenario.Equipment{
		{Archetype: "LED Bulb", Quantity: 10},
		{Name: "Custom Pump", Category: scenario.CategoryOther, PowerRatingWatts: 500, HoursPerDay: 3, Quantity: 1, Efficiency: 0.8, Priority: scenario.PriorityImportant},
	})
	if err != nil {
		t.Fatalf("ResolveAll failed: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("resolved count = %d, want 2", len(out))
	}
	if out[0].PowerRatingWatts != 10 || out[0].Quantity != 10 {
		t.Errorf("resolved[0] = %+v, want 10W x10 from the LED Bulb archetype", out[0])
	}
	if out[1].Name != "Custom Pump" {
		t.Errorf("resolved[1] = %+v, want the untouched custom entry", out[1])
	}
}

func TestResolveAllReportsIndex(t *testing.T) {
	_, err := Default().ResolveAll([]scenario.Equipment{
		{Archetype: "LED Bulb"},
		{Archetype: "Teleporter"},
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if _, ok := validation.AsFieldError(err); !ok {
		t.Errorf("error %v should wrap a field error", err)
	}
}

func TestNewLaterDuplicateWins(t *testing.T) {
	c := New(
		Archetype{Name: "Lamp", PowerRatingWatts: 40},
		Archetype{Name: "Lamp", PowerRatingWatts: 12},
	)
	a, ok := c.Lookup("Lamp")
	if !ok || a.PowerRatingWatts != 12 {
		t.Errorf("lookup = (%+v, %v), want the later 12W entry", a, ok)
	}
}
