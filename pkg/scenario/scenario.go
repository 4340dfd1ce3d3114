package scenario

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ProjectFile is the on-disk YAML layout of one scenario.
type ProjectFile struct {
	Facility struct {
		Name string `yaml:"name"`
		Type string `yaml:"type"`
	} `yaml:"facility"`
	Equipment  []Equipment `yaml:"equipment"`
	Parameters Parameters  `yaml:"parameters"`
}

// Load reads a scenario from a YAML file. Parameter fields absent from the
// file keep their DefaultParameters values.
func Load(path string) (*Scenario, *Parameters, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading scenario file: %w", err)
	}

	file := ProjectFile{Parameters: DefaultParameters()}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, nil, fmt.Errorf("parsing scenario YAML: %w", err)
	}

	sc := &Scenario{
		FacilityName: file.Facility.Name,
		FacilityType: file.Facility.Type,
		Equipment:    file.Equipment,
	}
	params := file.Parameters
	return sc, &params, nil
}

// LoadProject loads the current scenario from a project directory.
// It looks for scenario.yaml in the given directory.
func LoadProject(projectDir string) (*Scenario, *Parameters, error) {
	return Load(filepath.Join(projectDir, "scenario.yaml"))
}

// LoadComparison loads the current and ideal scenarios from a project
// directory (scenario.yaml and ideal.yaml). Both pipelines run under the
// current scenario's parameters so the comparison is apples to apples.
func LoadComparison(projectDir string) (current, ideal *Scenario, params *Parameters, err error) {
	current, params, err = LoadProject(projectDir)
	if err != nil {
		return nil, nil, nil, err
	}
	ideal, _, err = Load(filepath.Join(projectDir, "ideal.yaml"))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("loading ideal scenario: %w", err)
	}
	return current, ideal, params, nil
}
