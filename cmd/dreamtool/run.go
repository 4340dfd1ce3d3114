package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/racewinner/dreamtool/pkg/catalog"
	"github.com/racewinner/dreamtool/pkg/compare"
	"github.com/racewinner/dreamtool/pkg/pipeline"
	"github.com/racewinner/dreamtool/pkg/scenario"
	"github.com/racewinner/dreamtool/pkg/validation"
)

// loadAndValidate loads a project scenario, resolves catalog archetypes,
// and runs schema validation.
func loadAndValidate(projectPath string) (*scenario.Scenario, *scenario.Parameters, *validation.Report, error) {
	sc, params, err := scenario.LoadProject(projectPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("loading scenario: %w", err)
	}
	sc.Equipment, err = catalog.Default().ResolveAll(sc.Equipment)
	if err != nil {
		return nil, nil, nil, err
	}
	report := validation.ValidateScenario(sc, params)
	return sc, params, report, nil
}

func runValidate(projectPath string) error {
	_, _, report, err := loadAndValidate(projectPath)
	if err != nil {
		return err
	}

	printValidationReport(report)

	if !report.Valid {
		os.Exit(1)
	}
	return nil
}

func runAnalyze(projectPath string) error {
	sc, params, report, err := loadAndValidate(projectPath)
	if err != nil {
		return err
	}
	if !report.Valid {
		printValidationReport(report)
		return fmt.Errorf("scenario has validation errors; fix before analyzing")
	}

	result, err := pipeline.Run(sc, params)
	if err != nil {
		return err
	}

	output := map[string]any{
		"result":     result,
		"validation": report,
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}

func runCompare(projectPath string) error {
	current, ideal, params, err := scenario.LoadComparison(projectPath)
	if err != nil {
		return err
	}

	cat := catalog.Default()
	if current.Equipment, err = cat.ResolveAll(current.Equipment); err != nil {
		return err
	}
	if ideal.Equipment, err = cat.ResolveAll(ideal.Equipment); err != nil {
		return err
	}

	report := validation.ValidateScenario(current, params)
	report.Merge(validation.ValidateScenario(ideal, params))
	if !report.Valid {
		printValidationReport(report)
		return fmt.Errorf("scenarios have validation errors; fix before comparing")
	}

	comparison, err := compare.Compare(current, ideal, params)
	if err != nil {
		return err
	}

	printComparisonSummary(comparison)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(comparison)
}
