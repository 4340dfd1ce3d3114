package main

import (
	"fmt"

	"github.com/racewinner/dreamtool/pkg/compare"
	"github.com/racewinner/dreamtool/pkg/validation"
)

func printValidationReport(r *validation.Report) {
	if len(r.Errors) > 0 {
		fmt.Printf("ERRORS (%d):\n", len(r.Errors))
		for _, e := range r.Errors {
			fmt.Printf("  [%s] %s\n", e.Level, e.Message)
			if e.FieldPath != "" {
				fmt.Printf("    -> %s = %v\n", e.FieldPath, e.ActualValue)
			}
			if e.Expected != "" {
				fmt.Printf("    expected: %s\n", e.Expected)
			}
			for _, s := range e.Suggestions {
				fmt.Printf("    * %s\n", s)
			}
		}
		fmt.Println()
	}

	if len(r.Warnings) > 0 {
		fmt.Printf("WARNINGS (%d):\n", len(r.Warnings))
		for _, w := range r.Warnings {
			fmt.Printf("  [%s] %s\n", w.Level, w.Message)
			if w.FieldPath != "" {
				fmt.Printf("    -> %s = %v\n", w.FieldPath, w.ActualValue)
			}
			if w.Expected != "" {
				fmt.Printf("    expected: %s\n", w.Expected)
			}
		}
		fmt.Println()
	}

	if len(r.Info) > 0 {
		fmt.Printf("INFO (%d):\n", len(r.Info))
		for _, i := range r.Info {
			fmt.Printf("  [%s] %s\n", i.Level, i.Message)
		}
		fmt.Println()
	}

	fmt.Println(r.Summary)
}

func printComparisonSummary(c *compare.Comparison) {
	fmt.Printf("Scenario comparison: %s\n", c.Current.FacilityName)
	fmt.Printf("  Peak demand:       %.2f kW -> %.2f kW (-%.2f kW)\n",
		c.Current.Profile.PeakDemandKW, c.Ideal.Profile.PeakDemandKW, c.DemandReductionKW)
	fmt.Printf("  Daily consumption: %.1f kWh -> %.1f kWh (-%.1f kWh)\n",
		c.Current.Profile.DailyConsumptionKWh, c.Ideal.Profile.DailyConsumptionKWh, c.ConsumptionReductionKWhPerDay)
	fmt.Printf("  Lifecycle savings: $%.0f\n", c.CostSavings)
	fmt.Printf("  Upgrade cost:      $%.0f\n", c.IncrementalInvestment)
	if c.PaybackWithinHorizon {
		fmt.Printf("  Upgrade payback:   %d months\n", c.PaybackMonths)
	} else {
		fmt.Println("  Upgrade payback:   none within project horizon")
	}
	fmt.Printf("  CO2 avoided:       %.0f kg/year\n\n", c.CarbonReductionKgPerYear)
}
