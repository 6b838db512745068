package ferry

import "strings"

// queryRule maps keywords in a free-text route query to a route ID. Rules
// are evaluated top to bottom, first match wins: terminal-pair rules come
// before single-terminal rules so "seattle to bremerton" never falls through
// to the Seattle default via a partial match.
type queryRule struct {
	routeID string
	all     []string // every keyword must appear
	any     []string // at least one keyword must appear
	none    []string // no keyword may appear
}

var queryRules = []queryRule{
	// Terminal pairs and canonical slugs.
	{routeID: "seattle-bainbridge", all: []string{"seattle", "bainbridge"}},
	{routeID: "edmonds-kingston", all: []string{"edmonds", "kingston"}},
	{routeID: "seattle-bremerton", all: []string{"seattle", "bremerton"}},
	{routeID: "mukilteo-clinton", all: []string{"mukilteo", "clinton"}},
	{routeID: "anacortes-sanjuans", all: []string{"anacortes", "friday"}},

	// Single distinguishing terminals.
	{routeID: "edmonds-kingston", any: []string{"kingston", "edmonds"}},
	{routeID: "seattle-bremerton", any: []string{"bremerton"}},
	{routeID: "mukilteo-clinton", any: []string{"clinton", "whidbey", "mukilteo"}},
	{routeID: "anacortes-sanjuans", any: []string{"islands", "friday harbor", "orcas", "lopez", "san juan", "anacortes"}},
	// "bainbridge" yields to Edmonds/Kingston when both appear in a query.
	{routeID: "seattle-bainbridge", any: []string{"bainbridge"}, none: []string{"edmonds"}},
}

// ResolveRouteQuery maps a free-text query (natural language or slug) to a
// known route ID. It never fails: anything unrecognized gets defaultID.
func ResolveRouteQuery(query, defaultID string) string {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return defaultID
	}
	for _, rule := range queryRules {
		if rule.matches(q) {
			return rule.routeID
		}
	}
	return defaultID
}

func (r queryRule) matches(q string) bool {
	for _, kw := range r.all {
		if !strings.Contains(q, kw) {
			return false
		}
	}
	for _, kw := range r.none {
		if strings.Contains(q, kw) {
			return false
		}
	}
	if len(r.any) == 0 {
		return len(r.all) > 0
	}
	for _, kw := range r.any {
		if strings.Contains(q, kw) {
			return true
		}
	}
	return false
}
