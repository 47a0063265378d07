package fares

import (
	"sort"

	"github.com/le0holt/Fares/netex"
)

// Outcome classifies the result of a fare resolution.
type Outcome string

const (
	OutcomePriced           Outcome = "priced"
	OutcomeAmbiguous        Outcome = "ambiguous"
	OutcomeNeedsStages      Outcome = "needs_stage_selection"
	OutcomeNoMatchingStages Outcome = "no_matching_stages"
	OutcomeNoFareFound      Outcome = "no_fare_found"
	OutcomeIncomplete       Outcome = "incomplete"
	OutcomeRouteNotFound    Outcome = "route_not_found"
)

// FareQuery identifies one fare lookup. Route is optional; when empty the
// lookup aggregates tariffs across every service common to both places.
type FareQuery struct {
	Route    string `json:"route,omitempty"`
	FareType string `json:"faretype"`
	Start    string `json:"start"`
	End      string `json:"end"`
}

// FareResult carries the resolution outcome. Price is set only for a
// single resolved fare; Prices lists the distinct candidates of an
// ambiguous result; the candidate lists are populated only for the sides
// that still need narrowing.
type FareResult struct {
	Outcome         Outcome  `json:"outcome"`
	Price           string   `json:"price,omitempty"`
	Prices          []string `json:"prices,omitempty"`
	StartCandidates []string `json:"startCandidates,omitempty"`
	EndCandidates   []string `json:"endCandidates,omitempty"`
}

func trimQuery(q FareQuery) FareQuery {
	q.Route = trimmed(q.Route)
	q.FareType = trimmed(q.FareType)
	q.Start = trimmed(q.Start)
	q.End = trimmed(q.End)
	return q
}

// tariffFor builds the tariff view for a query and the per-side stage name
// candidates. A non-nil FareResult short-circuits resolution.
func (e *Engine) tariffFor(q FareQuery) (*Tariff, []string, []string, *FareResult) {
	canonical := e.CanonicalFareType(q.FareType)
	if q.Route != "" {
		code, ok := e.registry.ServiceCode(q.Route)
		if !ok {
			return nil, nil, nil, &FareResult{Outcome: OutcomeRouteNotFound}
		}
		t := e.buildTariffForRoute(q.Route, canonical)
		if t.Documents == 0 {
			return nil, nil, nil, &FareResult{Outcome: OutcomeRouteNotFound}
		}
		placeToStage := e.topo.PlaceToStage(code)
		return t, placeToStage[q.Start], placeToStage[q.End], nil
	}
	t := e.buildTariffForPlaces(q.Start, q.End, canonical)
	startSet := map[string]struct{}{}
	endSet := map[string]struct{}{}
	for code := range e.topo.CommonServices(q.Start, q.End) {
		placeToStage := e.topo.PlaceToStage(code)
		for _, s := range placeToStage[q.Start] {
			startSet[s] = struct{}{}
		}
		for _, s := range placeToStage[q.End] {
			endSet[s] = struct{}{}
		}
	}
	return t, sortedKeys(startSet), sortedKeys(endSet), nil
}

// ResolveFare answers a fare query against the snapshot the engine was
// built over.
func (e *Engine) ResolveFare(q FareQuery) FareResult {
	q = trimQuery(q)
	if q.FareType == "" || q.Start == "" || q.End == "" {
		return FareResult{Outcome: OutcomeIncomplete}
	}
	t, startStages, endStages, early := e.tariffFor(q)
	if early != nil {
		return *early
	}

	startIDs := translateStages(t, startStages)
	endIDs := translateStages(t, endStages)
	if len(startIDs) == 0 || len(endIDs) == 0 {
		return FareResult{Outcome: OutcomeNoMatchingStages}
	}

	priceSet := map[string]struct{}{}
	matched := map[netex.ZonePair]string{}
	for startName, startID := range startIDs {
		for endName, endID := range endIDs {
			if p, ok := t.Price(startID, endID); ok {
				priceSet[p] = struct{}{}
				matched[netex.ZonePair{Start: startName, End: endName}] = p
			}
		}
	}

	switch len(priceSet) {
	case 0:
		return FareResult{Outcome: OutcomeNoFareFound}
	case 1:
		for p := range priceSet {
			return FareResult{Outcome: OutcomePriced, Price: p}
		}
	}

	// Multiple candidate prices. Narrow each side down to the stage names
	// that participate in at least one priced pairing; a side is surfaced
	// only when more than one stage survives.
	startNarrow := participatingStages(matched, startStages, true)
	endNarrow := participatingStages(matched, endStages, false)
	if len(startNarrow) <= 1 && len(endNarrow) <= 1 {
		return FareResult{Outcome: OutcomeAmbiguous, Prices: sortedKeys(priceSet)}
	}
	res := FareResult{Outcome: OutcomeNeedsStages}
	if len(startNarrow) > 1 {
		res.StartCandidates = startNarrow
	}
	if len(endNarrow) > 1 {
		res.EndCandidates = endNarrow
	}
	return res
}

// ResolveStages prices one explicit stage pair for the query's tariff.
func (e *Engine) ResolveStages(q FareQuery, startStage, endStage string) FareResult {
	q = trimQuery(q)
	startStage = trimmed(startStage)
	endStage = trimmed(endStage)
	if q.FareType == "" || startStage == "" || endStage == "" {
		return FareResult{Outcome: OutcomeIncomplete}
	}
	t, _, _, early := e.tariffFor(q)
	if early != nil {
		return *early
	}
	return t.ResolveStagePair(startStage, endStage)
}

// ResolveStagePair prices a single named stage pair against the tariff.
func (t *Tariff) ResolveStagePair(startStage, endStage string) FareResult {
	startID, ok := t.StageIDs[startStage]
	if !ok {
		return FareResult{Outcome: OutcomeNoFareFound}
	}
	endID, ok := t.StageIDs[endStage]
	if !ok {
		return FareResult{Outcome: OutcomeNoFareFound}
	}
	if p, ok := t.Price(startID, endID); ok {
		return FareResult{Outcome: OutcomePriced, Price: p}
	}
	return FareResult{Outcome: OutcomeNoFareFound}
}

// translateStages maps stage names to zone ids, dropping names the tariff
// does not know.
func translateStages(t *Tariff, stages []string) map[string]string {
	out := map[string]string{}
	for _, name := range stages {
		if id, ok := t.StageIDs[name]; ok {
			out[name] = id
		}
	}
	return out
}

// participatingStages keeps, in input order deduplicated and sorted, the
// stage names appearing on the given side of at least one priced pairing.
func participatingStages(matched map[netex.ZonePair]string, stages []string, startSide bool) []string {
	seen := map[string]struct{}{}
	for pair := range matched {
		if startSide {
			seen[pair.Start] = struct{}{}
		} else {
			seen[pair.End] = struct{}{}
		}
	}
	out := []string{}
	for _, name := range stages {
		if _, ok := seen[name]; ok {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}
