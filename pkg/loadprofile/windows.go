package loadprofile

import "github.com/racewinner/dreamtool/pkg/scenario"

// Category activity windows. Each category has a fixed set of active hours
// and a load factor per hour; equipment contributes nothing outside its
// window. Factors are design constants, not tunables: changing them changes
// every consumption figure downstream, so they live here in one place.
const (
	lightingShoulderFactor = 0.5 // 18:00-20:00, daylight still fading
	coolingOffPeakFactor   = 0.6 // outside the 12:00-16:00 heat peak
	otherLoadFactor        = 0.8 // uncategorized loads, deliberately conservative
)

// loadFactor returns the category's load factor at the given hour, or 0
// when the category is inactive.
func loadFactor(c scenario.Category, hour int) float64 {
	switch c {
	case scenario.CategoryLighting:
		// Active outside daylight (18:00-06:00), full after dark.
		switch {
		case hour >= 20 || hour < 6:
			return 1.0
		case hour >= 18:
			return lightingShoulderFactor
		}
		return 0
	case scenario.CategoryCooling:
		// Active 10:00-22:00, peaking through the afternoon.
		switch {
		case hour >= 12 && hour < 16:
			return 1.0
		case hour >= 10 && hour < 22:
			return coolingOffPeakFactor
		}
		return 0
	case scenario.CategoryComputing:
		if hour >= 8 && hour < 18 {
			return 1.0
		}
		return 0
	case scenario.CategoryMedical:
		// Vaccine fridges, monitors: always on.
		return 1.0
	case scenario.CategoryKitchen:
		// Meal preparation windows.
		if (hour >= 6 && hour < 9) || (hour >= 11 && hour < 14) || (hour >= 17 && hour < 20) {
			return 1.0
		}
		return 0
	case scenario.CategoryOther:
		if hour >= 8 && hour < 18 {
			return otherLoadFactor
		}
		return 0
	}
	return 0
}

// windowHours returns the number of active hours in the category's window.
func windowHours(c scenario.Category) float64 {
	switch c {
	case scenario.CategoryLighting:
		return 12 // 18:00-06:00
	case scenario.CategoryCooling:
		return 12 // 10:00-22:00
	case scenario.CategoryComputing:
		return 10 // 08:00-18:00
	case scenario.CategoryMedical:
		return 24
	case scenario.CategoryKitchen:
		return 9 // three 3-hour meal windows
	case scenario.CategoryOther:
		return 10 // 08:00-18:00
	}
	return 24
}

// Season names one of the four demand seasons.
type Season string

const (
	SeasonDry  Season = "dry"
	SeasonHot  Season = "hot"
	SeasonMild Season = "mild"
	SeasonCool Season = "cool"
)

// SeasonalMultipliers scales a whole profile per season. The curve is a
// single documented choice: the source system's UI components disagreed on
// placeholder values, so the engine commits to one deterministic table.
var SeasonalMultipliers = map[Season]float64{
	SeasonDry:  1.15,
	SeasonHot:  1.10,
	SeasonMild: 1.00,
	SeasonCool: 0.90,
}

// DesignSeasonMultiplier returns the worst-case seasonal multiplier, so a
// system sized from a seasonal profile covers the peak season.
func DesignSeasonMultiplier() float64 {
	max := 1.0
	for _, m := range SeasonalMultipliers {
		if m > max {
			max = m
		}
	}
	return max
}
