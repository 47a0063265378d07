package fares

import (
	"testing"

	"github.com/le0holt/Fares/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRegistry() *RouteRegistry {
	return NewRouteRegistry(testSnapshot().Routes)
}

func TestServiceCodeAndRouteName(t *testing.T) {
	r := testRegistry()

	code, ok := r.ServiceCode("52 Outer Circle")
	require.True(t, ok)
	assert.Equal(t, "SVC001", code)

	name, ok := r.RouteName("SVC004")
	require.True(t, ok)
	assert.Equal(t, "27 Cross City", name)

	_, ok = r.ServiceCode("12 Nowhere")
	assert.False(t, ok)
	_, ok = r.RouteName("SVC999")
	assert.False(t, ok)
}

func TestServiceCode_Trims(t *testing.T) {
	r := NewRouteRegistry(dataset.Table{Rows: []dataset.Row{
		{" SVC001 ", " 52 Outer Circle "},
	}})
	code, ok := r.ServiceCode("  52 Outer Circle")
	require.True(t, ok)
	assert.Equal(t, "SVC001", code)
}

func TestServiceCode_FirstMatchWins(t *testing.T) {
	r := NewRouteRegistry(dataset.Table{Rows: []dataset.Row{
		{"SVC001", "52 Outer Circle"},
		{"SVC002", "52 Outer Circle"},
	}})
	code, ok := r.ServiceCode("52 Outer Circle")
	require.True(t, ok)
	assert.Equal(t, "SVC001", code)
}

func TestIsSchoolService(t *testing.T) {
	r := testRegistry()
	assert.False(t, r.IsSchoolService("SVC001"))
	assert.True(t, r.IsSchoolService("SVC003"))
	assert.True(t, r.IsSchoolRoute("School Special"))
	assert.False(t, r.IsSchoolRoute("52 Outer Circle"))

	// Without a flag column no service counts as school.
	narrow := NewRouteRegistry(dataset.Table{Rows: []dataset.Row{
		{"SVC001", "52 Outer Circle"},
	}})
	assert.False(t, narrow.IsSchoolService("SVC001"))
}

func TestIsSchoolService_CaseInsensitive(t *testing.T) {
	r := NewRouteRegistry(dataset.Table{Rows: []dataset.Row{
		{"SVC001", "52 Outer Circle", "YES"},
		{"SVC002", "27 Cross City", "Yes "},
		{"SVC003", "9 Short", "no"},
	}})
	assert.True(t, r.IsSchoolService("SVC001"))
	assert.True(t, r.IsSchoolService("SVC002"))
	assert.False(t, r.IsSchoolService("SVC003"))
}

func TestNonSchoolCodes(t *testing.T) {
	r := testRegistry()
	codes := r.NonSchoolCodes()
	require.NotNil(t, codes)
	assert.Contains(t, codes, "SVC001")
	assert.Contains(t, codes, "SVC004")
	assert.NotContains(t, codes, "SVC003")

	narrow := NewRouteRegistry(dataset.Table{Rows: []dataset.Row{
		{"SVC001", "52 Outer Circle"},
	}})
	assert.Nil(t, narrow.NonSchoolCodes())
}

func TestDisplayNumber_Fallbacks(t *testing.T) {
	full := testRegistry()
	assert.Equal(t, "52", full.DisplayNumber("SVC001"))
	assert.Equal(t, "952", full.DisplayNumber("SVC002"))

	// No number column: the route name column stands in.
	named := NewRouteRegistry(dataset.Table{Rows: []dataset.Row{
		{"SVC001", "52 Outer Circle", "no"},
	}})
	assert.Equal(t, "52 Outer Circle", named.DisplayNumber("SVC001"))

	// Codes only: the raw code stands in.
	bare := NewRouteRegistry(dataset.Table{Rows: []dataset.Row{
		{"SVC001"},
	}})
	assert.Equal(t, "SVC001", bare.DisplayNumber("SVC001"))

	// Unknown codes come back verbatim.
	assert.Equal(t, "SVC999", full.DisplayNumber("SVC999"))
}

func TestRouteNames_DistinctTableOrder(t *testing.T) {
	r := NewRouteRegistry(dataset.Table{Rows: []dataset.Row{
		{"SVC001", "52 Outer Circle"},
		{"SVC002", "27 Cross City"},
		{"SVC003", "52 Outer Circle"},
		{"SVC004", "nan"},
		{"SVC005", ""},
	}})
	assert.Equal(t, []string{"52 Outer Circle", "27 Cross City"}, r.RouteNames())
}
