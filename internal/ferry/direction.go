package ferry

import (
	"time"

	"github.com/nwbound/ferrydeck/internal/timetable"
)

// DirectionAuto asks the resolver to pick a direction from the clock.
const DirectionAuto = "auto"

// CommuteWindows are the local-hour bounds of the direction heuristic,
// half-open [start, end). They are configuration, not fixed behavior.
type CommuteWindows struct {
	MorningStart int
	MorningEnd   int
	EveningStart int
	EveningEnd   int
}

// DefaultCommuteWindows returns the stock commute windows: 06-09 inbound,
// 16-19 outbound.
func DefaultCommuteWindows() CommuteWindows {
	return CommuteWindows{MorningStart: 6, MorningEnd: 9, EveningStart: 16, EveningEnd: 19}
}

// ResolveDirection maps a requested direction to one of the route's defined
// directions. Explicit known keys pass through unchanged; unknown explicit
// keys fail with InvalidDirectionError. "auto" (or empty) applies the
// commute heuristic on commuter routes (mornings point at the urban
// terminal, evenings away from it) and otherwise falls back to the route's
// first declared direction.
func ResolveDirection(route *timetable.Route, requested string, ref time.Time, w CommuteWindows) (timetable.Direction, error) {
	if requested != "" && requested != DirectionAuto {
		dir, ok := route.Direction(requested)
		if !ok {
			return timetable.Direction{}, &InvalidDirectionError{RouteID: route.ID, Requested: requested}
		}
		return dir, nil
	}

	if route.Category == timetable.CategoryCommuter {
		urban := route.Terminals[0]
		hour := ref.Hour()
		switch {
		case hour >= w.MorningStart && hour < w.MorningEnd:
			for _, d := range route.Directions {
				if d.To == urban {
					return d, nil
				}
			}
		case hour >= w.EveningStart && hour < w.EveningEnd:
			for _, d := range route.Directions {
				if d.From == urban {
					return d, nil
				}
			}
		}
	}
	return route.Directions[0], nil
}
