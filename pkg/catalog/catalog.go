// Package catalog holds reference data for common facility equipment.
// Scenario files may name an archetype instead of spelling out ratings.
package catalog

import (
	"fmt"

	"github.com/racewinner/dreamtool/pkg/scenario"
	"github.com/racewinner/dreamtool/pkg/validation"
)

// Archetype is a reference equipment definition.
type Archetype struct {
	Name             string            `json:"name"`
	Category         scenario.Category `json:"category"`
	PowerRatingWatts float64           `json:"power_rating_watts"`
	HoursPerDay      float64           `json:"hours_per_day"`
	Efficiency       float64           `json:"efficiency"`
	Priority         scenario.Priority `json:"priority"`
}

// Catalog is a lookup table of archetypes.
type Catalog struct {
	byName map[string]Archetype
}

// New builds a catalog from the given archetypes. Later duplicates replace
// earlier ones.
func New(archetypes ...Archetype) *Catalog {
	c := &Catalog{byName: make(map[string]Archetype, len(archetypes))}
	for _, a := range archetypes {
		c.byName[a.Name] = a
	}
	return c
}

// Lookup returns the archetype with the given name.
func (c *Catalog) Lookup(name string) (Archetype, bool) {
	a, ok := c.byName[name]
	return a, ok
}

// Names returns the number of archetypes in the catalog.
func (c *Catalog) Len() int { return len(c.byName) }

// Resolve fills zero-valued fields of an equipment entry from its named
// archetype. Entries without an archetype reference pass through untouched;
// an unknown archetype name is a validation error.
func (c *Catalog) Resolve(eq scenario.Equipment) (scenario.Equipment, error) {
	if eq.Archetype == "" {
		return eq, nil
	}
	a, ok := c.Lookup(eq.Archetype)
	if !ok {
		return eq, validation.Errf(validation.LevelSchema, "equipment.archetype",
			eq.Archetype, "unknown archetype")
	}

	if eq.Name == "" {
		eq.Name = a.Name
	}
	if eq.Category == "" {
		eq.Category = a.Category
	}
	if eq.PowerRatingWatts == 0 {
		eq.PowerRatingWatts = a.PowerRatingWatts
	}
	if eq.HoursPerDay == 0 {
		eq.HoursPerDay = a.HoursPerDay
	}
	if eq.Quantity == 0 {
		eq.Quantity = 1
	}
	if eq.Efficiency == 0 {
		eq.Efficiency = a.Efficiency
	}
	if eq.Priority == "" {
		eq.Priority = a.Priority
	}
	return eq, nil
}

// ResolveAll resolves every entry of an inventory against the catalog.
func (c *Catalog) ResolveAll(equipment []scenario.Equipment) ([]scenario.Equipment, error) {
	out := make([]scenario.Equipment, len(equipment))
	for i, eq := range equipment {
		resolved, err := c.Resolve(eq)
		if err != nil {
			return nil, fmt.Errorf("equipment[%d]: %w", i, err)
		}
		out[i] = resolved
	}
	return out, nil
}

// Default returns the built-in archetype catalog for off-grid clinics,
// schools, and community centers.
func Default() *Catalog {
	return New(
		Archetype{Name: "LED Bulb", Category: scenario.CategoryLighting, PowerRatingWatts: 10, HoursPerDay: 12, Efficiency: 0.9, Priority: scenario.PriorityEssential},
		Archetype{Name: "Fluorescent Tube", Category: scenario.CategoryLighting, PowerRatingWatts: 36, HoursPerDay: 12, Efficiency: 0.8, Priority: scenario.PriorityImportant},
		Archetype{Name: "Security Floodlight", Category: scenario.CategoryLighting, PowerRatingWatts: 50, HoursPerDay: 12, Efficiency: 0.85, Priority: scenario.PriorityImportant},
		Archetype{Name: "Ceiling Fan", Category: scenario.CategoryCooling, PowerRatingWatts: 70, HoursPerDay: 10, Efficiency: 0.85, Priority: scenario.PriorityOptional},
		Archetype{Name: "Air Conditioner", Category: scenario.CategoryCooling, PowerRatingWatts: 1200, HoursPerDay: 8, Efficiency: 0.8, Priority: scenario.PriorityOptional},
		Archetype{Name: "Desktop Computer", Category: scenario.CategoryComputing, PowerRatingWatts: 200, HoursPerDay: 8, Efficiency: 0.9, Priority: scenario.PriorityImportant},
		Archetype{Name: "Laptop", Category: scenario.CategoryComputing, PowerRatingWatts: 65, HoursPerDay: 8, Efficiency: 0.9, Priority: scenario.PriorityImportant},
		Archetype{Name: "Router", Category: scenario.CategoryComputing, PowerRatingWatts: 15, HoursPerDay: 10, Efficiency: 0.95, Priority: scenario.PriorityImportant},
		Archetype{Name: "Vaccine Refrigerator", Category: scenario.CategoryMedical, PowerRatingWatts: 150, HoursPerDay: 24, Efficiency: 0.85, Priority: scenario.PriorityEssential},
		Archetype{Name: "Oxygen Concentrator", Category: scenario.CategoryMedical, PowerRatingWatts: 300, HoursPerDay: 24, Efficiency: 0.85, Priority: scenario.PriorityEssential},
		Archetype{Name: "Microscope", Category: scenario.CategoryMedical, PowerRatingWatts: 30, HoursPerDay: 24, Efficiency: 0.9, Priority: scenario.PriorityEssential},
		Archetype{Name: "Electric Kettle", Category: scenario.CategoryKitchen, PowerRatingWatts: 1800, HoursPerDay: 2, Efficiency: 0.95, Priority: scenario.PriorityOptional},
		Archetype{Name: "Hot Plate", Category: scenario.CategoryKitchen, PowerRatingWatts: 1500, HoursPerDay: 3, Efficiency: 0.9, Priority: scenario.PriorityOptional},
		Archetype{Name: "Water Pump", Category: scenario.CategoryOther, PowerRatingWatts: 750, HoursPerDay: 4, Efficiency: 0.8, Priority: scenario.PriorityImportant},
	)
}
