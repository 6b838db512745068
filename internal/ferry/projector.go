package ferry

import (
	"math"
	"time"

	"github.com/nwbound/ferrydeck/internal/timetable"
)

// Departure is one projected sailing, built fresh per request.
type Departure struct {
	At          time.Time
	Display     string
	Vessel      string
	WaitMinutes int
	Tomorrow    bool
}

// Project scans the slot list and returns the next count departures strictly
// after ref, rolling into the following day when today's slots run out. The
// scan covers at most two calendar days, so an empty or short timetable
// yields fewer than count departures rather than looping.
//
// Vessel assignment is a display heuristic: vessels rotate by position in the
// output, not by which boat actually serves the slot.
func Project(slots []timetable.Slot, vessels []string, ref time.Time, count int) []Departure {
	if count <= 0 || len(slots) == 0 {
		return nil
	}

	departures := make([]Departure, 0, count)
	for dayOffset := 0; dayOffset <= 1 && len(departures) < count; dayOffset++ {
		day := ref.AddDate(0, 0, dayOffset)
		for _, slot := range slots {
			candidate := time.Date(day.Year(), day.Month(), day.Day(),
				slot.Hour, slot.Minute, 0, 0, ref.Location())
			if !candidate.After(ref) {
				continue
			}
			dep := Departure{
				At:          candidate,
				Display:     candidate.Format("3:04 PM"),
				WaitMinutes: int(math.Round(candidate.Sub(ref).Minutes())),
				Tomorrow:    dayOffset > 0,
			}
			if len(vessels) > 0 {
				dep.Vessel = vessels[len(departures)%len(vessels)]
			}
			departures = append(departures, dep)
			if len(departures) >= count {
				break
			}
		}
	}
	return departures
}
