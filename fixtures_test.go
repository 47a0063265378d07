package fares

import (
	"github.com/le0holt/Fares/config"
	"github.com/le0holt/Fares/dataset"
	"github.com/le0holt/Fares/netex"
)

// testSnapshot builds the small network used across the package tests.
//
// Services: SVC001 "52 Outer Circle" (public, number 52), SVC002
// "52A Outer Circle" (public variant, number 952, no tariffs), SVC003
// "School Special" (school flagged), SVC004 "27 Cross City" (public).
func testSnapshot() *dataset.Snapshot {
	snap := dataset.NewSnapshot()

	snap.Routes = dataset.Table{Rows: []dataset.Row{
		{"SVC001", "52 Outer Circle", "no", "52"},
		{"SVC002", "52A Outer Circle", "no", "952"},
		{"SVC003", "School Special", "yes", "760"},
		{"SVC004", "27 Cross City", "no", "27"},
	}}

	snap.Stops = dataset.Table{Rows: []dataset.Row{
		stopRow("SVC001", "Stage A", "Ash"),
		stopRow("SVC001", "Stage B", "Birch"),
		stopRow("SVC001", "Stage C", "Cedar"),
		stopRow("SVC001", "Stage B", "Boundary"),
		stopRow("SVC001", "Stage C", "Boundary"),
		stopRow("SVC001", "Stage D", "Dunmore"),
		stopRow("SVC002", "Stage A", "Ash"),
		stopRow("SVC002", "Stage C", "Cedar"),
		stopRow("SVC003", "S1", "Ash"),
		stopRow("SVC003", "S2", "Derwent"),
		stopRow("SVC004", "X1", "Ash"),
		stopRow("SVC004", "X2", "Elm"),
	}}

	snap.Documents["52 Outer Circle Adult Single"] = netex.Document{
		Zones: map[string]string{
			"z1": "Stage A", "z2": "Stage B", "z3": "Stage C", "z4": "Stage D",
		},
		Prices: map[netex.ZonePair]string{
			{Start: "z1", End: "z2"}: "2.00",
			{Start: "z1", End: "z3"}: "3.00",
			{Start: "z2", End: "z3"}: "1.50",
		},
	}
	snap.Documents["52 Outer Circle U19 Single"] = netex.Document{
		Zones: map[string]string{"z1": "Stage A", "z2": "Stage B", "z3": "Stage C"},
		Prices: map[netex.ZonePair]string{
			{Start: "z1", End: "z2"}: "1.00",
		},
	}
	snap.Documents["52 Outer Circle igo Single"] = netex.Document{
		Zones: map[string]string{"z1": "Stage A", "z2": "Stage B"},
		Prices: map[netex.ZonePair]string{
			{Start: "z1", End: "z2"}: "0.80",
			{Start: "z2", End: "z3"}: "0.90",
		},
	}
	snap.Documents["27 Cross City Adult Single"] = netex.Document{
		Zones: map[string]string{"x1": "X1", "x2": "X2"},
		Prices: map[netex.ZonePair]string{
			{Start: "x1", End: "x2"}: "2.50",
		},
	}

	return snap
}

func stopRow(code, stage, place string) dataset.Row {
	return dataset.Row{code, stage, "", "", "", "", "", place}
}

func testEngine() *Engine {
	return NewEngine(testSnapshot(), config.DefaultResolver())
}
