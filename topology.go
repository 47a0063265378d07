package fares

import (
	"sort"
	"strings"

	"github.com/le0holt/Fares/dataset"
)

// Stop table column positions, fixed by the source workbook. A table
// narrower than the place column is structurally unusable and yields
// empty results everywhere.
const (
	stopColCode  = 0
	stopColStage = 1
	stopColPlace = 7

	stopTableMinWidth = 8
)

// Topology answers place/stage/service connectivity questions over the
// stop table: a bipartite place-service-stage graph. Derived maps are
// recomputed per call from the snapshot, never maintained incrementally.
type Topology struct {
	stops    dataset.Table
	registry *RouteRegistry
}

// NewTopology creates a topology over a stop table
func NewTopology(stops dataset.Table, registry *RouteRegistry) *Topology {
	return &Topology{stops: stops, registry: registry}
}

func (t *Topology) usable() bool {
	return !t.stops.Empty() && t.stops.Width() >= stopTableMinWidth
}

// stageMaps builds both derived maps for one service code in a single
// pass: place -> sorted stages and stage -> sorted places. Rows with a
// missing stage or place are skipped.
func (t *Topology) stageMaps(code string) (map[string][]string, map[string][]string) {
	placeToStage := map[string][]string{}
	stageToPlace := map[string][]string{}
	if !t.usable() {
		return placeToStage, stageToPlace
	}
	code = strings.TrimSpace(code)
	p2s := map[string]map[string]struct{}{}
	s2p := map[string]map[string]struct{}{}
	for _, row := range t.stops.Rows {
		if strings.TrimSpace(row.Col(stopColCode)) != code {
			continue
		}
		stage := strings.TrimSpace(row.Col(stopColStage))
		place := strings.TrimSpace(row.Col(stopColPlace))
		if !validName(stage) || !validName(place) {
			continue
		}
		if p2s[place] == nil {
			p2s[place] = map[string]struct{}{}
		}
		p2s[place][stage] = struct{}{}
		if s2p[stage] == nil {
			s2p[stage] = map[string]struct{}{}
		}
		s2p[stage][place] = struct{}{}
	}
	for place, stages := range p2s {
		placeToStage[place] = sortedKeys(stages)
	}
	for stage, places := range s2p {
		stageToPlace[stage] = sortedKeys(places)
	}
	return placeToStage, stageToPlace
}

// PlaceToStage maps each place served by the service to its sorted fare
// stages. A place spanning a fare-zone boundary has more than one stage.
func (t *Topology) PlaceToStage(code string) map[string][]string {
	p2s, _ := t.stageMaps(code)
	return p2s
}

// StageToPlace maps each fare stage of the service to its sorted places
func (t *Topology) StageToPlace(code string) map[string][]string {
	_, s2p := t.stageMaps(code)
	return s2p
}

// ServicesAt returns the service codes with at least one stop row at the
// place
func (t *Topology) ServicesAt(place string) map[string]struct{} {
	out := map[string]struct{}{}
	if !t.usable() {
		return out
	}
	place = strings.TrimSpace(place)
	if place == "" {
		return out
	}
	for _, row := range t.stops.Rows {
		if strings.TrimSpace(row.Col(stopColPlace)) == place {
			out[strings.TrimSpace(row.Col(stopColCode))] = struct{}{}
		}
	}
	return out
}

// CommonServices returns the service codes serving both places
func (t *Topology) CommonServices(a, b string) map[string]struct{} {
	out := map[string]struct{}{}
	atA := t.ServicesAt(a)
	if len(atA) == 0 {
		return out
	}
	for code := range t.ServicesAt(b) {
		if _, ok := atA[code]; ok {
			out[code] = struct{}{}
		}
	}
	return out
}

// Reachable returns every place sharing at least one service with the
// given place, sorted. This is a one-hop bipartite traversal answering
// "is there a service connecting these places", not a path search.
func (t *Topology) Reachable(place string) []string {
	place = strings.TrimSpace(place)
	services := t.ServicesAt(place)
	if len(services) == 0 {
		return []string{}
	}
	reachable := map[string]struct{}{}
	for _, row := range t.stops.Rows {
		if _, ok := services[strings.TrimSpace(row.Col(stopColCode))]; !ok {
			continue
		}
		p := strings.TrimSpace(row.Col(stopColPlace))
		if validName(p) && p != place {
			reachable[p] = struct{}{}
		}
	}
	return sortedKeys(reachable)
}

// AllPlaces lists every distinct place in the stop table, sorted. When
// school services are excluded, a place is kept only if at least one
// non-school service serves it; without school information in the route
// table every place is kept.
func (t *Topology) AllPlaces(includeSchool bool) []string {
	if !t.usable() {
		return []string{}
	}
	places := map[string]struct{}{}
	for _, row := range t.stops.Rows {
		p := strings.TrimSpace(row.Col(stopColPlace))
		if validName(p) {
			places[p] = struct{}{}
		}
	}
	all := sortedKeys(places)
	if includeSchool {
		return all
	}
	nonSchool := t.registry.NonSchoolCodes()
	if nonSchool == nil {
		return all
	}
	out := []string{}
	for _, place := range all {
		for code := range t.ServicesAt(place) {
			if _, ok := nonSchool[code]; ok {
				out = append(out, place)
				break
			}
		}
	}
	sort.Strings(out)
	return out
}
