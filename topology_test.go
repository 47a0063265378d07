package fares

import (
	"testing"

	"github.com/le0holt/Fares/dataset"
	"github.com/stretchr/testify/assert"
)

func testTopology() *Topology {
	snap := testSnapshot()
	registry := NewRouteRegistry(snap.Routes)
	return NewTopology(snap.Stops, registry)
}

func TestPlaceToStage(t *testing.T) {
	topo := testTopology()
	p2s := topo.PlaceToStage("SVC001")
	assert.Equal(t, []string{"Stage A"}, p2s["Ash"])
	assert.Equal(t, []string{"Stage B", "Stage C"}, p2s["Boundary"])
	assert.NotContains(t, p2s, "Elm")
}

func TestStageToPlace(t *testing.T) {
	topo := testTopology()
	s2p := topo.StageToPlace("SVC001")
	assert.Equal(t, []string{"Birch", "Boundary"}, s2p["Stage B"])
	assert.Equal(t, []string{"Boundary", "Cedar"}, s2p["Stage C"])
}

func TestStageMaps_SkipsMissingCells(t *testing.T) {
	registry := NewRouteRegistry(dataset.Table{})
	topo := NewTopology(dataset.Table{Rows: []dataset.Row{
		stopRow("SVC001", "Stage A", "Ash"),
		stopRow("SVC001", "nan", "Birch"),
		stopRow("SVC001", "Stage B", "NaN"),
		stopRow("SVC001", "", "Cedar"),
	}}, registry)
	p2s := topo.PlaceToStage("SVC001")
	assert.Len(t, p2s, 1)
	assert.Equal(t, []string{"Stage A"}, p2s["Ash"])
}

func TestTopology_NarrowTableUnusable(t *testing.T) {
	registry := NewRouteRegistry(dataset.Table{})
	topo := NewTopology(dataset.Table{Rows: []dataset.Row{
		{"SVC001", "Stage A", "Ash"},
	}}, registry)
	assert.Empty(t, topo.PlaceToStage("SVC001"))
	assert.Empty(t, topo.ServicesAt("Ash"))
	assert.Equal(t, []string{}, topo.Reachable("Ash"))
	assert.Equal(t, []string{}, topo.AllPlaces(true))
}

func TestServicesAt(t *testing.T) {
	topo := testTopology()
	at := topo.ServicesAt("Ash")
	assert.Len(t, at, 4)
	assert.Contains(t, at, "SVC001")
	assert.Contains(t, at, "SVC004")
	assert.Empty(t, topo.ServicesAt("Nowhere"))
}

func TestCommonServices(t *testing.T) {
	topo := testTopology()
	common := topo.CommonServices("Ash", "Cedar")
	assert.Len(t, common, 2)
	assert.Contains(t, common, "SVC001")
	assert.Contains(t, common, "SVC002")
	assert.Empty(t, topo.CommonServices("Elm", "Derwent"))
}

func TestReachable(t *testing.T) {
	topo := testTopology()
	got := topo.Reachable("Ash")
	assert.Equal(t, []string{"Birch", "Boundary", "Cedar", "Derwent", "Dunmore", "Elm"}, got)
	assert.NotContains(t, got, "Ash")
	assert.Equal(t, []string{}, topo.Reachable("Nowhere"))
}

func TestAllPlaces_SchoolFiltering(t *testing.T) {
	topo := testTopology()
	// Derwent is only served by the school service.
	withSchool := topo.AllPlaces(true)
	assert.Contains(t, withSchool, "Derwent")

	withoutSchool := topo.AllPlaces(false)
	assert.NotContains(t, withoutSchool, "Derwent")
	assert.Contains(t, withoutSchool, "Ash")
	assert.Contains(t, withoutSchool, "Elm")
}

func TestAllPlaces_NoSchoolInfoKeepsAll(t *testing.T) {
	snap := testSnapshot()
	registry := NewRouteRegistry(dataset.Table{Rows: []dataset.Row{
		{"SVC003", "School Special"},
	}})
	topo := NewTopology(snap.Stops, registry)
	assert.Contains(t, topo.AllPlaces(false), "Derwent")
}
