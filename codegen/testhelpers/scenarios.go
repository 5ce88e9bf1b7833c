package testhelpers

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type (
	// ScenarioFile is the root of a YAML file of template scenarios.
	ScenarioFile struct {
		Scenarios []Scenario `yaml:"scenarios"`
	}

	// Scenario describes a single template interpolation and its expected
	// rendering.
	Scenario struct {
		Name string `yaml:"name"`
		// Mode is "code" for Template and "str" for StrTemplate.
		Mode     string   `yaml:"mode"`
		Segments []string `yaml:"segments"`
		Args     []Arg    `yaml:"args"`
		// Optimize runs the constant folder before rendering.
		Optimize bool   `yaml:"optimize"`
		Want     string `yaml:"want"`
		// WantNames is the expected usage map, nil to skip the check.
		WantNames map[string]int `yaml:"wantNames"`
	}

	// Arg is a template argument. Exactly one of Name, Code, List or Value is
	// meaningful: Name builds an identifier, Code a raw code fragment, List a
	// string list and Value any YAML scalar or structure (null included).
	Arg struct {
		Name  string   `yaml:"name"`
		Code  string   `yaml:"code"`
		List  []string `yaml:"list"`
		Value any      `yaml:"value"`
	}
)

// LoadScenarios reads the scenario file at path.
func LoadScenarios(t *testing.T, path string) []Scenario {
	t.Helper()
	data, err := os.ReadFile(path) // #nosec G304 -- test helper reads scenarios file from testdata path
	require.NoError(t, err)
	var f ScenarioFile
	require.NoError(t, yaml.Unmarshal(data, &f))
	require.NotEmpty(t, f.Scenarios, "no scenarios in %s", path)
	return f.Scenarios
}
