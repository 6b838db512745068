package ferry

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/nwbound/ferrydeck/internal/api/wsf"
	"github.com/nwbound/ferrydeck/internal/timetable"
)

// Options are the engine's tunables. Zero values select the defaults.
type Options struct {
	Commute        CommuteWindows
	FeedTimeout    time.Duration
	DepartureCount int
	TimeZone       string
}

func (o Options) withDefaults() Options {
	if o.Commute == (CommuteWindows{}) {
		o.Commute = DefaultCommuteWindows()
	}
	if o.FeedTimeout <= 0 {
		o.FeedTimeout = 5 * time.Second
	}
	if o.DepartureCount <= 0 {
		o.DepartureCount = 4
	}
	if o.TimeZone == "" {
		o.TimeZone = "America/Los_Angeles"
	}
	return o
}

// Engine answers "when is the next ferry" for one request at a time. It is
// stateless across requests: every payload is assembled fresh from the
// static timetable plus whatever live data arrived in time.
type Engine struct {
	store  *timetable.Store
	feeds  LiveFeeds
	opts   Options
	loc    *time.Location
	logger *logrus.Logger
	now    func() time.Time
}

// NewEngine wires the engine. feeds may be nil, in which case every response
// group comes from the static fallback.
func NewEngine(store *timetable.Store, feeds LiveFeeds, opts Options, logger *logrus.Logger) (*Engine, error) {
	opts = opts.withDefaults()
	loc, err := time.LoadLocation(opts.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("loading time zone %s: %w", opts.TimeZone, err)
	}
	return &Engine{
		store:  store,
		feeds:  feeds,
		opts:   opts,
		loc:    loc,
		logger: logger,
		now:    time.Now,
	}, nil
}

// Store exposes the route registry backing the engine.
func (e *Engine) Store() *timetable.Store { return e.store }

// Report assembles the full conditions payload for a free-text route query
// and a direction key (or "auto"). The only error it returns is
// InvalidDirectionError for an explicit unknown direction; every upstream
// problem degrades into fallback-sourced groups instead.
func (e *Engine) Report(ctx context.Context, routeQuery, direction string) (*Payload, error) {
	ref := e.now().In(e.loc)

	routeID := ResolveRouteQuery(routeQuery, e.store.DefaultRouteID())
	route, err := e.store.Route(routeID)
	if err != nil {
		// The resolver only emits registered IDs; treat a miss as a bug.
		return nil, fmt.Errorf("resolved route missing from store: %w", err)
	}

	dir, err := ResolveDirection(route, direction, ref, e.opts.Commute)
	if err != nil {
		return nil, err
	}

	slots, err := e.store.Lookup(route.ID, dir.Key)
	if err != nil {
		return nil, fmt.Errorf("timetable lookup: %w", err)
	}

	// The projection always runs; it is the instant-available fallback.
	fallback := Project(slots, route.Vessels, ref, e.opts.DepartureCount)

	set := fetchFeeds(ctx, e.feeds, route, e.opts.FeedTimeout)
	e.logger.WithFields(logrus.Fields{
		"route":     route.ID,
		"direction": dir.Key,
		"vessels":   set.vessels.Status.String(),
		"schedule":  set.schedule.Status.String(),
		"terminals": set.terminals.Status.String(),
	}).Debug("live feeds fetched")

	active, vesselSrc := reconcileVessels(route, dir, set.vessels, ref)
	departures, scheduleSrc := reconcileSchedule(route, dir, set.schedule, fallback, ref, e.opts.DepartureCount)
	terminals, terminalSrc := reconcileTerminals(dir, set.terminals)

	payload := &Payload{
		Route:              route.Name,
		Direction:          dir.Key,
		Timestamp:          e.now().UTC().Format(time.RFC3339),
		CurrentPacificTime: ref.Format("1/2/2006, 3:04:05 PM"),
		Service:            e.serviceInfo(route, ref),
		Vessels: VesselsGroup{
			Active:         active,
			NextDepartures: departureViews(departures),
		},
		Terminals: terminals,
		Alerts:    SynthesizeAlerts(route, ref),
		Sources: SourceInfo{
			Vessels:   vesselSrc,
			Schedule:  scheduleSrc,
			Terminals: terminalSrc,
		},
		DataSource: overallSource(vesselSrc, scheduleSrc, terminalSrc),
		Debug: &DebugInfo{
			CurrentHour:     ref.Hour(),
			CurrentMinute:   ref.Minute(),
			DeparturesFound: len(departures),
		},
	}
	return payload, nil
}

// ErrorFallback builds the degraded payload served when assembly fails
// unexpectedly. It is pure static projection with the failure recorded under
// debug.error; the HTTP layer still answers 200 with it.
func (e *Engine) ErrorFallback(routeQuery, direction, errMsg string) *Payload {
	ref := e.now().In(e.loc)
	routeID := ResolveRouteQuery(routeQuery, e.store.DefaultRouteID())
	route, err := e.store.Route(routeID)
	if err != nil {
		route, _ = e.store.Route(e.store.DefaultRouteID())
	}

	dir := route.Directions[0]
	if direction != "" && direction != DirectionAuto {
		if d, ok := route.Direction(direction); ok {
			dir = d
		}
	}
	var fallback []Departure
	if slots, err := e.store.Lookup(route.ID, dir.Key); err == nil {
		fallback = Project(slots, route.Vessels, ref, e.opts.DepartureCount)
	}
	terminals, _ := reconcileTerminals(dir, absentFeed[[]wsf.TerminalSpace]())

	return &Payload{
		Route:              route.Name,
		Direction:          dir.Key,
		Timestamp:          e.now().UTC().Format(time.RFC3339),
		CurrentPacificTime: ref.Format("1/2/2006, 3:04:05 PM"),
		Service:            e.serviceInfo(route, ref),
		Vessels: VesselsGroup{
			Active:         synthesizeVessels(route, dir, ref),
			NextDepartures: departureViews(fallback),
		},
		Terminals: terminals,
		Alerts:    SynthesizeAlerts(route, ref),
		Sources: SourceInfo{
			Vessels:   SourceFallback,
			Schedule:  SourceFallback,
			Terminals: SourceFallback,
		},
		DataSource: DataSourceError,
		Debug: &DebugInfo{
			CurrentHour:     ref.Hour(),
			CurrentMinute:   ref.Minute(),
			DeparturesFound: len(fallback),
			Error:           errMsg,
		},
	}
}

func (e *Engine) serviceInfo(route *timetable.Route, ref time.Time) ServiceInfo {
	info := ServiceInfo{
		Status:         ServiceStatus(route, ref),
		Frequency:      route.Frequency,
		CrossingTime:   fmt.Sprintf("%d minutes", route.CrossingMinutes),
		OperatingHours: route.OperatingHours,
	}
	if route.ReservationsRequired {
		info.Reservations = "Recommended - especially for vehicles in summer"
	}
	return info
}

func departureViews(departures []Departure) []DepartureView {
	views := make([]DepartureView, 0, len(departures))
	for _, d := range departures {
		view := DepartureView{
			Time:     d.Display,
			Vessel:   d.Vessel,
			Tomorrow: d.Tomorrow,
		}
		if d.Tomorrow {
			view.Time += " (tomorrow)"
		} else {
			wait := d.WaitMinutes
			view.WaitMinutes = &wait
		}
		views = append(views, view)
	}
	return views
}

func overallSource(sources ...string) string {
	live, fallback := 0, 0
	for _, s := range sources {
		if s == SourceLive {
			live++
		} else {
			fallback++
		}
	}
	switch {
	case live == 0:
		return DataSourceFallback
	case fallback == 0:
		return DataSourceLive
	default:
		return DataSourceMixed
	}
}
