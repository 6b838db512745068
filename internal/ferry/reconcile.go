package ferry

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/nwbound/ferrydeck/internal/api/wsf"
	"github.com/nwbound/ferrydeck/internal/timetable"
)

// reconcileVessels maps the vessel feed onto the route, or synthesizes a
// deterministic set from the clock when the feed is unusable or matches
// nothing. Entries are kept only when the vessel belongs to the route's
// fleet and, if the feed names a departing terminal, when it is consistent
// with the resolved direction.
func reconcileVessels(route *timetable.Route, dir timetable.Direction, feed Feed[[]wsf.VesselLocation], ref time.Time) ([]ActiveVessel, string) {
	if feed.Live() {
		var active []ActiveVessel
		for _, loc := range feed.Data {
			if !fleetHasVessel(route, loc.VesselName) {
				continue
			}
			if loc.DepartingTerminal != "" && !terminalMatches(loc.DepartingTerminal, dir.From) {
				continue
			}
			active = append(active, ActiveVessel{
				Name:     vesselDisplayName(loc.VesselName),
				Location: vesselLocation(loc),
				Status:   vesselState(loc),
			})
		}
		if len(active) > 0 {
			return active, SourceLive
		}
	}
	return synthesizeVessels(route, dir, ref), SourceFallback
}

func vesselState(loc wsf.VesselLocation) string {
	switch {
	case !loc.InService:
		return "out-of-service"
	case loc.AtDock:
		return "loading"
	default:
		return "in-transit"
	}
}

func vesselLocation(loc wsf.VesselLocation) string {
	if loc.AtDock {
		return loc.DepartingTerminal + " Terminal"
	}
	if loc.ArrivingTerminal != "" {
		return "En route to " + loc.ArrivingTerminal
	}
	return "Underway"
}

// synthesizeVessels fabricates a plausible vessel picture from the clock:
// two boats working the crossing during operating hours, one tied up
// overnight otherwise.
func synthesizeVessels(route *timetable.Route, dir timetable.Direction, ref time.Time) []ActiveVessel {
	if !inOperatingHours(ref) {
		return []ActiveVessel{{
			Name:     vesselDisplayName(route.Vessels[0]),
			Location: dir.From + " Terminal",
			Status:   "suspended",
		}}
	}
	active := []ActiveVessel{{
		Name:     vesselDisplayName(route.Vessels[0]),
		Location: dir.From + " Terminal",
		Status:   "loading",
	}}
	if len(route.Vessels) > 1 {
		active = append(active, ActiveVessel{
			Name:     vesselDisplayName(route.Vessels[1]),
			Location: "En route to " + dir.To,
			Status:   "in-transit",
		})
	}
	return active
}

// reconcileSchedule prefers live future sailings for the route when the feed
// delivered any, else the static projection.
func reconcileSchedule(route *timetable.Route, dir timetable.Direction, feed Feed[*wsf.RouteSchedule], fallback []Departure, ref time.Time, count int) ([]Departure, string) {
	if feed.Live() && feed.Data != nil && strings.EqualFold(feed.Data.RouteAbbrev, route.Abbrev) {
		if live := liveDepartures(feed.Data.Departures, dir, ref, count); len(live) > 0 {
			return live, SourceLive
		}
	}
	return fallback, SourceFallback
}

func liveDepartures(sailings []wsf.ScheduledDeparture, dir timetable.Direction, ref time.Time, count int) []Departure {
	var deps []Departure
	for _, s := range sailings {
		at, err := time.Parse(time.RFC3339, s.DepartingTime)
		if err != nil {
			continue
		}
		at = at.In(ref.Location())
		if !at.After(ref) {
			continue
		}
		if s.DepartingTerminal != "" && !terminalMatches(s.DepartingTerminal, dir.From) {
			continue
		}
		deps = append(deps, Departure{
			At:          at,
			Display:     at.Format("3:04 PM"),
			Vessel:      strings.ToUpper(s.VesselName),
			WaitMinutes: int(math.Round(at.Sub(ref).Minutes())),
			Tomorrow:    at.YearDay() != ref.YearDay(),
		})
	}
	sort.Slice(deps, func(i, j int) bool { return deps[i].At.Before(deps[j].At) })
	if len(deps) > count {
		deps = deps[:count]
	}
	return deps
}

// reconcileTerminals derives the departure terminal snapshot from the
// terminal feed when it carries a matching entry, else marks it unknown with
// a generic estimate. The arrival side never carries congestion data.
func reconcileTerminals(dir timetable.Direction, feed Feed[[]wsf.TerminalSpace]) (TerminalsGroup, string) {
	group := TerminalsGroup{
		Departure: TerminalInfo{
			Name:          dir.From,
			VehicleSpaces: "Unknown",
			WalkOnWait:    "Minimal",
			VehicleWait:   "15-30 minutes (estimated)",
		},
		Arrival: TerminalInfo{
			Name:          dir.To,
			VehicleSpaces: "N/A (arrival terminal)",
			WalkOnWait:    "N/A",
			VehicleWait:   "N/A",
		},
	}
	if !feed.Live() {
		return group, SourceFallback
	}
	for _, t := range feed.Data {
		if !terminalMatches(t.TerminalName, dir.From) {
			continue
		}
		group.Departure.VehicleSpaces = fmt.Sprintf("%d spaces available", t.SpaceForAutos)
		group.Departure.WalkOnWait = "Minimal"
		group.Departure.VehicleWait = vehicleWaitEstimate(t.SpaceForAutos)
		return group, SourceLive
	}
	return group, SourceFallback
}

func vehicleWaitEstimate(spaces int) string {
	switch {
	case spaces > 50:
		return "5-15 minutes"
	case spaces > 20:
		return "15-30 minutes"
	case spaces > 5:
		return "30-60 minutes"
	default:
		return "Next sailing recommended"
	}
}

// terminalMatches compares terminal names loosely in both directions, since
// the feed says "Seattle" where the registry says "Seattle (Colman Dock)".
func terminalMatches(feedName, routeName string) bool {
	a := strings.ToLower(strings.TrimSpace(feedName))
	b := strings.ToLower(strings.TrimSpace(routeName))
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}

func fleetHasVessel(route *timetable.Route, name string) bool {
	for _, v := range route.Vessels {
		if strings.EqualFold(v, name) {
			return true
		}
	}
	return false
}

// vesselDisplayName renders a fleet name like "WALLA WALLA" as
// "M/V Walla Walla".
func vesselDisplayName(name string) string {
	words := strings.Fields(strings.ToLower(name))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return "M/V " + strings.Join(words, " ")
}
