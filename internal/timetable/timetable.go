package timetable

import (
	"fmt"
	"strings"
)

// Category groups routes by service pattern. The direction heuristic and
// several advisory rules key off it.
type Category string

const (
	CategoryCommuter      Category = "commuter"
	CategoryFrequent      Category = "frequent"
	CategoryLongHaul      Category = "long-haul"
	CategoryIslandHopping Category = "island-hopping"
)

// Slot is a scheduled time-of-day departure in a static timetable.
type Slot struct {
	Hour   int
	Minute int
}

// Direction identifies one travel direction on a route. From and To are
// terminal display names; Key is the stable identifier callers pass in.
type Direction struct {
	Key  string
	From string
	To   string
}

// Route is the static metadata for one ferry crossing. Terminals are ordered
// with the urban endpoint first; Directions are ordered with the
// first-terminal-outbound direction first.
type Route struct {
	ID                   string
	Abbrev               string
	Name                 string
	ShortName            string
	Terminals            []string
	Directions           []Direction
	CrossingMinutes      int
	Frequency            string
	OperatingHours       string
	ReservationsRequired bool
	Category             Category
	Vessels              []string
}

// Direction returns the route's direction with the given key.
func (r *Route) Direction(key string) (Direction, bool) {
	for _, d := range r.Directions {
		if strings.EqualFold(d.Key, key) {
			return d, true
		}
	}
	return Direction{}, false
}

// NotFoundError reports an unknown route or direction lookup.
type NotFoundError struct {
	RouteID      string
	DirectionKey string
}

func (e *NotFoundError) Error() string {
	if e.DirectionKey != "" {
		return fmt.Sprintf("no timetable for route %q direction %q", e.RouteID, e.DirectionKey)
	}
	return fmt.Sprintf("unknown route %q", e.RouteID)
}

// Store is the read-only timetable registry. It is built once at startup and
// never mutated afterwards.
type Store struct {
	routes []Route
	byID   map[string]*Route
	slots  map[string]map[string][]Slot
}

// NewStore builds the embedded route registry and verifies its invariants:
// every route has at least two terminals, every direction has a slot list,
// and every slot list is strictly increasing with no duplicates.
func NewStore() (*Store, error) {
	s := &Store{
		routes: routeData(),
		byID:   make(map[string]*Route),
		slots:  slotData(),
	}
	for i := range s.routes {
		r := &s.routes[i]
		if len(r.Terminals) < 2 {
			return nil, fmt.Errorf("route %s: need at least two terminals", r.ID)
		}
		byDir, ok := s.slots[r.ID]
		if !ok {
			return nil, fmt.Errorf("route %s: no timetable data", r.ID)
		}
		for _, d := range r.Directions {
			slots, ok := byDir[d.Key]
			if !ok {
				return nil, fmt.Errorf("route %s: no slots for direction %s", r.ID, d.Key)
			}
			for j := 1; j < len(slots); j++ {
				prev, cur := slots[j-1], slots[j]
				if cur.Hour*60+cur.Minute <= prev.Hour*60+prev.Minute {
					return nil, fmt.Errorf("route %s direction %s: slots not strictly increasing at index %d", r.ID, d.Key, j)
				}
			}
		}
		s.byID[r.ID] = r
	}
	return s, nil
}

// Route returns the route with the given ID.
func (s *Store) Route(routeID string) (*Route, error) {
	r, ok := s.byID[routeID]
	if !ok {
		return nil, &NotFoundError{RouteID: routeID}
	}
	return r, nil
}

// Lookup returns the slot list for one route direction.
func (s *Store) Lookup(routeID, directionKey string) ([]Slot, error) {
	byDir, ok := s.slots[routeID]
	if !ok {
		return nil, &NotFoundError{RouteID: routeID}
	}
	slots, ok := byDir[directionKey]
	if !ok {
		return nil, &NotFoundError{RouteID: routeID, DirectionKey: directionKey}
	}
	return slots, nil
}

// ListRoutes returns all routes in declaration order.
func (s *Store) ListRoutes() []Route {
	out := make([]Route, len(s.routes))
	copy(out, s.routes)
	return out
}

// DefaultRouteID is the route used when a free-text query matches nothing.
func (s *Store) DefaultRouteID() string {
	return "seattle-bainbridge"
}
