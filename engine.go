package fares

import (
	"sort"
	"strings"

	"github.com/le0holt/Fares/config"
	"github.com/le0holt/Fares/dataset"
)

// Engine answers fare queries over one immutable dataset snapshot. It owns
// nothing mutable: every derived structure is recomputed from the snapshot,
// so an engine can be built per request and discarded.
type Engine struct {
	snap     *dataset.Snapshot
	cfg      config.ResolverConfig
	registry *RouteRegistry
	topo     *Topology
}

// NewEngine creates an engine over a snapshot with the given policy knobs
func NewEngine(snap *dataset.Snapshot, cfg config.ResolverConfig) *Engine {
	registry := NewRouteRegistry(snap.Routes)
	return &Engine{
		snap:     snap,
		cfg:      cfg,
		registry: registry,
		topo:     NewTopology(snap.Stops, registry),
	}
}

// Registry exposes the route table lookups
func (e *Engine) Registry() *RouteRegistry { return e.registry }

// Topology exposes the stop table connectivity queries
func (e *Engine) Topology() *Topology { return e.topo }

// validName reports whether a trimmed cell value is usable as a place or
// stage name. The literal "nan" is a spreadsheet export artifact for a
// missing cell.
func validName(s string) bool {
	return s != "" && !strings.EqualFold(s, "nan")
}

func trimmed(s string) string { return strings.TrimSpace(s) }

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
