package fares

import (
	"sort"
	"strings"

	"github.com/le0holt/Fares/netex"
)

// Tariff is the merged pricing view for one (route, fare type) selection:
// zone name lookups and the zone-pair price map aggregated from every
// matching tariff document. Zone ids and pairs already present are never
// overwritten by later documents; with documents merged in ascending key
// order this makes the merge deterministic.
type Tariff struct {
	ZoneNames map[string]string         // zone id -> stage name
	StageIDs  map[string]string         // stage name -> zone id
	Prices    map[netex.ZonePair]string // directional pair -> amount
	Documents int                       // documents merged into this view
}

func newTariff() *Tariff {
	return &Tariff{
		ZoneNames: map[string]string{},
		StageIDs:  map[string]string{},
		Prices:    map[netex.ZonePair]string{},
	}
}

// Price looks up the fare between two zone ids. The matrix is stored
// directionally but read symmetrically: the reverse entry stands in when
// the forward one is absent.
func (t *Tariff) Price(start, end string) (string, bool) {
	if p, ok := t.Prices[netex.ZonePair{Start: start, End: end}]; ok && p != "" {
		return p, true
	}
	if p, ok := t.Prices[netex.ZonePair{Start: end, End: start}]; ok && p != "" {
		return p, true
	}
	return "", false
}

// merge folds one document in, first write wins. Zones are visited in
// ascending id order so duplicate stage names inside one document resolve
// the same way on every run.
func (t *Tariff) merge(doc netex.Document) {
	t.Documents++
	ids := make([]string, 0, len(doc.Zones))
	for id := range doc.Zones {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		name := doc.Zones[id]
		if _, ok := t.ZoneNames[id]; !ok {
			t.ZoneNames[id] = name
		}
		if _, ok := t.StageIDs[name]; !ok {
			t.StageIDs[name] = id
		}
	}
	for pair, price := range doc.Prices {
		if _, ok := t.Prices[pair]; !ok {
			t.Prices[pair] = price
		}
	}
}

// CanonicalFareType folds alias labels to their canonical form. Folding is
// idempotent: canonical labels map to themselves.
func (e *Engine) CanonicalFareType(faretype string) string {
	if canonical, ok := e.cfg.FareTypeAliases[faretype]; ok {
		return canonical
	}
	return faretype
}

// routeDocumentKeys returns, in ascending order, the keys of every tariff
// document belonging to the route (key = "<route> <faretype>").
func (e *Engine) routeDocumentKeys(route string) []string {
	out := []string{}
	for _, key := range e.snap.DocumentKeys() {
		if strings.HasPrefix(key, route+" ") {
			out = append(out, key)
		}
	}
	return out
}

// fareTypeFromKey extracts the fare-type suffix of a document key
func fareTypeFromKey(route, key string) string {
	if !strings.HasPrefix(key, route+" ") {
		return ""
	}
	return strings.TrimSpace(key[len(route):])
}

// buildTariffForRoute merges every document of the route whose fare type
// folds to the requested canonical label.
func (e *Engine) buildTariffForRoute(route, canonical string) *Tariff {
	t := newTariff()
	for _, key := range e.routeDocumentKeys(route) {
		ft := fareTypeFromKey(route, key)
		if ft == "" || e.CanonicalFareType(ft) != canonical {
			continue
		}
		t.merge(e.snap.Documents[key])
	}
	return t
}

// buildTariffForPlaces merges documents across every service common to
// both places whose fare type folds to the canonical label. This can mix
// tariffs of unrelated services under one label; the behavior is kept
// because callers depend on it.
func (e *Engine) buildTariffForPlaces(start, end, canonical string) *Tariff {
	keySet := map[string]struct{}{}
	for code := range e.topo.CommonServices(start, end) {
		routeName, ok := e.registry.RouteName(code)
		if !ok || routeName == "" {
			continue
		}
		for _, key := range e.routeDocumentKeys(routeName) {
			ft := fareTypeFromKey(routeName, key)
			if ft == "" || e.CanonicalFareType(ft) != canonical {
				continue
			}
			keySet[key] = struct{}{}
		}
	}
	t := newTariff()
	for _, key := range sortedKeys(keySet) {
		t.merge(e.snap.Documents[key])
	}
	return t
}
