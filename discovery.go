package fares

import "strings"

// OtherServices lists the display numbers of the other public services
// connecting the two places. Service variants, recognizable by the
// configured display-number prefix when a current route is set, are
// folded away along with the current route itself and any school service.
func (e *Engine) OtherServices(start, end, currentRoute string) []string {
	start = trimmed(start)
	end = trimmed(end)
	currentRoute = trimmed(currentRoute)

	currentCode := ""
	currentNumber := ""
	if currentRoute != "" {
		if code, ok := e.registry.ServiceCode(currentRoute); ok {
			currentCode = code
			currentNumber = e.registry.DisplayNumber(code)
		}
	}

	numbers := map[string]struct{}{}
	for code := range e.topo.CommonServices(start, end) {
		if !e.registry.Known(code) || e.registry.IsSchoolService(code) {
			continue
		}
		if currentCode != "" && code == currentCode {
			continue
		}
		number := e.registry.DisplayNumber(code)
		if !validName(number) {
			continue
		}
		if currentRoute != "" && e.cfg.VariantPrefix != "" &&
			strings.HasPrefix(number, e.cfg.VariantPrefix) {
			continue
		}
		numbers[number] = struct{}{}
	}
	if currentNumber != "" {
		delete(numbers, currentNumber)
	}
	return sortedKeys(numbers)
}

// Routes lists the selectable route names: those with at least one tariff
// document, in table order. School routes are dropped unless asked for.
func (e *Engine) Routes(includeSchool bool) []string {
	out := []string{}
	for _, name := range e.registry.RouteNames() {
		if !includeSchool && e.registry.IsSchoolRoute(name) {
			continue
		}
		if !e.hasFareTypes(name) {
			continue
		}
		out = append(out, name)
	}
	return out
}

func (e *Engine) hasFareTypes(route string) bool {
	return len(e.routeDocumentKeys(route)) > 0
}

// FareTypes lists the canonical fare-type labels available for a
// selection, sorted. With a route the labels come from that route's
// documents; without one, from the documents of every service common to
// both places.
func (e *Engine) FareTypes(route, start, end string) []string {
	route = trimmed(route)
	start = trimmed(start)
	end = trimmed(end)

	labels := map[string]struct{}{}
	addRoute := func(name string) {
		for _, key := range e.routeDocumentKeys(name) {
			if ft := fareTypeFromKey(name, key); ft != "" {
				labels[e.CanonicalFareType(ft)] = struct{}{}
			}
		}
	}
	if route != "" {
		addRoute(route)
		return sortedKeys(labels)
	}
	for code := range e.topo.CommonServices(start, end) {
		if name, ok := e.registry.RouteName(code); ok && name != "" {
			addRoute(name)
		}
	}
	return sortedKeys(labels)
}

// Destinations lists the places reachable from the start, sorted. With a
// route set the reachable set is restricted to the route's own places;
// without one, places served only by school services are dropped when the
// route table carries school information.
func (e *Engine) Destinations(start, route string) []string {
	start = trimmed(start)
	route = trimmed(route)

	reachable := e.topo.Reachable(start)
	if route != "" {
		code, ok := e.registry.ServiceCode(route)
		if !ok {
			return []string{}
		}
		routePlaces := map[string]struct{}{}
		for place := range e.topo.PlaceToStage(code) {
			routePlaces[place] = struct{}{}
		}
		out := []string{}
		for _, place := range reachable {
			if _, ok := routePlaces[place]; ok {
				out = append(out, place)
			}
		}
		return out
	}

	nonSchool := e.registry.NonSchoolCodes()
	if nonSchool == nil {
		return reachable
	}
	out := []string{}
	for _, place := range reachable {
		for code := range e.topo.CommonServices(start, place) {
			if _, ok := nonSchool[code]; ok {
				out = append(out, place)
				break
			}
		}
	}
	return out
}

// PlacesForRoute lists the places served by a route, sorted
func (e *Engine) PlacesForRoute(route string) []string {
	route = trimmed(route)
	code, ok := e.registry.ServiceCode(route)
	if !ok {
		return []string{}
	}
	places := map[string]struct{}{}
	for place := range e.topo.PlaceToStage(code) {
		places[place] = struct{}{}
	}
	return sortedKeys(places)
}
