package ferry

import (
	"fmt"
	"time"

	"github.com/nwbound/ferrydeck/internal/timetable"
)

// Advisory rules are a flat ordered table rather than nested conditionals:
// every applicable rule fires, in declaration order.
type alertRule struct {
	when func(r *timetable.Route, ref time.Time) bool
	text func(r *timetable.Route, ref time.Time) string
}

var alertRules = []alertRule{
	{
		when: func(_ *timetable.Route, ref time.Time) bool {
			wd := ref.Weekday()
			return wd == time.Saturday || wd == time.Sunday
		},
		text: func(*timetable.Route, time.Time) string {
			return "Weekend schedule in effect - expect higher traffic volumes"
		},
	},
	{
		when: func(r *timetable.Route, _ time.Time) bool { return r.ReservationsRequired },
		text: func(r *timetable.Route, _ time.Time) string {
			return fmt.Sprintf("Vehicle reservations recommended on the %s route - book ahead", r.ShortName)
		},
	},
	{
		when: func(_ *timetable.Route, ref time.Time) bool {
			h := ref.Hour()
			return (h >= 7 && h <= 9) || (h >= 16 && h <= 18)
		},
		text: func(*timetable.Route, time.Time) string {
			return "Peak commute hours - vehicle queues likely at the departure terminal"
		},
	},
	{
		when: func(r *timetable.Route, _ time.Time) bool {
			return r.Category == timetable.CategoryIslandHopping
		},
		text: func(*timetable.Route, time.Time) string {
			return "Multi-stop route - crossing times vary by sailing"
		},
	},
	{
		when: func(_ *timetable.Route, ref time.Time) bool {
			h := ref.Hour()
			return h >= 22 || h < 5
		},
		text: func(*timetable.Route, time.Time) string {
			return "Reduced late-night service - confirm your sailing before traveling"
		},
	},
}

// SynthesizeAlerts derives the advisory strings for a route at the given
// local instant. The list is never empty.
func SynthesizeAlerts(route *timetable.Route, ref time.Time) []string {
	var alerts []string
	for _, rule := range alertRules {
		if rule.when(route, ref) {
			alerts = append(alerts, rule.text(route, ref))
		}
	}
	if len(alerts) == 0 {
		alerts = []string{"Normal operations"}
	}
	return alerts
}

// inOperatingHours reports whether sailings run at the given local instant.
// Service starts at 5:20 and the last boats land shortly after midnight, so
// the midnight hour still counts as operating.
func inOperatingHours(ref time.Time) bool {
	minutes := ref.Hour()*60 + ref.Minute()
	return minutes >= 5*60+20 || ref.Hour() == 0
}

// ServiceStatus derives the human-readable service status string.
func ServiceStatus(_ *timetable.Route, ref time.Time) string {
	if !inOperatingHours(ref) {
		return "Service Suspended - Resumes Early Morning"
	}
	wd := ref.Weekday()
	if wd == time.Saturday || wd == time.Sunday {
		return "Weekend Service"
	}
	return "Normal Operations"
}
