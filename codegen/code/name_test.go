package code

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewName(t *testing.T) {
	cases := []struct {
		Name  string
		Text  string
		Valid bool
	}{
		{"lower", "data", true},
		{"upper", "Data", true},
		{"dollar", "$ref", true},
		{"underscore", "_tmp", true},
		{"digits after first", "valid0", true},
		{"only dollar", "$", true},
		{"empty", "", false},
		{"leading digit", "0valid", false},
		{"dash", "foo-bar", false},
		{"space", "foo bar", false},
		{"dot", "a.b", false},
		{"unicode", "café", false},
	}
	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			n, err := NewName(c.Text)
			if !c.Valid {
				var ierr *InvalidIdentifierError
				require.True(t, errors.As(err, &ierr))
				assert.Equal(t, c.Text, ierr.Text)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.Text, n.String())
			assert.False(t, n.EmptyStr())
			assert.False(t, n.IsExpr())
		})
	}
}

func TestMustNamePanics(t *testing.T) {
	require.Panics(t, func() { MustName("not valid") })
	require.NotPanics(t, func() { MustName("valid") })
}

func TestNameValueEquality(t *testing.T) {
	assert.Equal(t, MustName("x"), MustName("x"))
	assert.True(t, MustName("x") == MustName("x"))
	assert.NotEqual(t, MustName("x"), MustName("y"))
}

func TestNameOptimizeReturnsItself(t *testing.T) {
	n := MustName("x")
	assert.Equal(t, Code(n), n.Optimize())
	assert.Equal(t, UsedNames{"x": 1}, n.UsedNames())
}
