package code_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goa.design/jscodegen/codegen/code"
	"goa.design/jscodegen/codegen/testhelpers"
)

func TestTemplateScenarios(t *testing.T) {
	for _, sc := range testhelpers.LoadScenarios(t, "testdata/scenarios.yaml") {
		t.Run(sc.Name, func(t *testing.T) {
			args := make([]any, len(sc.Args))
			for i, a := range sc.Args {
				args[i] = scenarioArg(t, a)
			}
			var f *code.Fragment
			switch sc.Mode {
			case "code":
				f = code.Template(sc.Segments, args...)
			case "str":
				f = code.StrTemplate(sc.Segments, args...)
			default:
				require.FailNowf(t, "invalid scenario", "unknown mode %q", sc.Mode)
			}
			if sc.Optimize {
				f.Optimize()
			}
			assert.Equal(t, sc.Want, f.String())
			if sc.WantNames != nil {
				assert.Equal(t, code.UsedNames(sc.WantNames), f.UsedNames())
			}
		})
	}
}

func scenarioArg(t *testing.T, a testhelpers.Arg) any {
	t.Helper()
	switch {
	case a.Name != "":
		n, err := code.NewName(a.Name)
		require.NoError(t, err)
		return n
	case a.Code != "":
		return code.New(a.Code)
	case a.List != nil:
		return a.List
	}
	return a.Value
}
