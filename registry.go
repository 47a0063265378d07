package fares

import (
	"strings"

	"github.com/le0holt/Fares/dataset"
)

// Route table column positions, fixed by the source workbook.
const (
	routeColCode   = 0
	routeColName   = 1
	routeColSchool = 2
	routeColNumber = 3
)

// RouteRegistry is a bidirectional lookup over the route table. Lookups
// are first-match-wins: the table is only many-to-one safe by convention.
type RouteRegistry struct {
	routes dataset.Table
}

// NewRouteRegistry creates a registry over a route table
func NewRouteRegistry(routes dataset.Table) *RouteRegistry {
	return &RouteRegistry{routes: routes}
}

// ServiceCode resolves a route display name to its service code
func (r *RouteRegistry) ServiceCode(routeName string) (string, bool) {
	if r.routes.Width() < 2 {
		return "", false
	}
	name := strings.TrimSpace(routeName)
	if name == "" {
		return "", false
	}
	for _, row := range r.routes.Rows {
		if strings.TrimSpace(row.Col(routeColName)) == name {
			return strings.TrimSpace(row.Col(routeColCode)), true
		}
	}
	return "", false
}

// RouteName resolves a service code to its route display name
func (r *RouteRegistry) RouteName(code string) (string, bool) {
	if r.routes.Width() < 2 {
		return "", false
	}
	code = strings.TrimSpace(code)
	if code == "" {
		return "", false
	}
	for _, row := range r.routes.Rows {
		if strings.TrimSpace(row.Col(routeColCode)) == code {
			return strings.TrimSpace(row.Col(routeColName)), true
		}
	}
	return "", false
}

// Known reports whether the service code appears in the route table
func (r *RouteRegistry) Known(code string) bool {
	code = strings.TrimSpace(code)
	for _, row := range r.routes.Rows {
		if strings.TrimSpace(row.Col(routeColCode)) == code {
			return true
		}
	}
	return false
}

// IsSchoolService reports whether the service is flagged as a school
// service. The flag column holds "yes", compared case-insensitively; a
// table without the column means no service is school-flagged.
func (r *RouteRegistry) IsSchoolService(code string) bool {
	if r.routes.Width() < 3 {
		return false
	}
	code = strings.TrimSpace(code)
	for _, row := range r.routes.Rows {
		if strings.TrimSpace(row.Col(routeColCode)) == code {
			return strings.EqualFold(strings.TrimSpace(row.Col(routeColSchool)), "yes")
		}
	}
	return false
}

// IsSchoolRoute is IsSchoolService keyed by route display name
func (r *RouteRegistry) IsSchoolRoute(routeName string) bool {
	if r.routes.Width() < 3 {
		return false
	}
	name := strings.TrimSpace(routeName)
	for _, row := range r.routes.Rows {
		if strings.TrimSpace(row.Col(routeColName)) == name {
			return strings.EqualFold(strings.TrimSpace(row.Col(routeColSchool)), "yes")
		}
	}
	return false
}

// NonSchoolCodes returns the service codes not flagged as school services.
// It returns nil when the table carries no school flag column at all, so
// callers can tell "no information" from "none qualify".
func (r *RouteRegistry) NonSchoolCodes() map[string]struct{} {
	if r.routes.Width() < 3 {
		return nil
	}
	out := map[string]struct{}{}
	for _, row := range r.routes.Rows {
		if !strings.EqualFold(strings.TrimSpace(row.Col(routeColSchool)), "yes") {
			out[strings.TrimSpace(row.Col(routeColCode))] = struct{}{}
		}
	}
	return out
}

// DisplayNumber returns the customer-facing route number for a service
// code. Tables without a number column fall back to the route name
// column, and tables without that fall back to the raw code.
func (r *RouteRegistry) DisplayNumber(code string) string {
	code = strings.TrimSpace(code)
	w := r.routes.Width()
	for _, row := range r.routes.Rows {
		if strings.TrimSpace(row.Col(routeColCode)) != code {
			continue
		}
		if w >= 4 {
			return strings.TrimSpace(row.Col(routeColNumber))
		}
		if w >= 2 {
			return strings.TrimSpace(row.Col(routeColName))
		}
		break
	}
	return code
}

// RouteNames returns the distinct route display names in table order
func (r *RouteRegistry) RouteNames() []string {
	out := []string{}
	if r.routes.Width() < 2 {
		return out
	}
	seen := map[string]struct{}{}
	for _, row := range r.routes.Rows {
		name := strings.TrimSpace(row.Col(routeColName))
		if !validName(name) {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}
