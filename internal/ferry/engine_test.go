package ferry

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nwbound/ferrydeck/internal/api/wsf"
	"github.com/nwbound/ferrydeck/internal/timetable"
)

type stubFeeds struct {
	vessels      []wsf.VesselLocation
	vesselsErr   error
	schedule     *wsf.RouteSchedule
	scheduleErr  error
	terminals    []wsf.TerminalSpace
	terminalsErr error
}

func (s *stubFeeds) VesselLocations(context.Context) ([]wsf.VesselLocation, error) {
	return s.vessels, s.vesselsErr
}

func (s *stubFeeds) RouteSchedule(context.Context, string) (*wsf.RouteSchedule, error) {
	return s.schedule, s.scheduleErr
}

func (s *stubFeeds) TerminalSpace(context.Context) ([]wsf.TerminalSpace, error) {
	return s.terminals, s.terminalsErr
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newTestEngine(t *testing.T, feeds LiveFeeds, ref time.Time) *Engine {
	t.Helper()
	store, err := timetable.NewStore()
	require.NoError(t, err)
	e, err := NewEngine(store, feeds, Options{TimeZone: "UTC"}, quietLogger())
	require.NoError(t, err)
	e.now = func() time.Time { return ref }
	return e
}

func TestReportStaticFallbackWithoutFeeds(t *testing.T) {
	ref := time.Date(2026, 1, 7, 14, 0, 0, 0, time.UTC) // Wednesday
	e := newTestEngine(t, nil, ref)

	payload, err := e.Report(context.Background(), "seattle to bainbridge", "seattle-to-bainbridge")
	require.NoError(t, err)

	assert.Equal(t, "Seattle → Bainbridge Island", payload.Route)
	assert.Equal(t, "seattle-to-bainbridge", payload.Direction)
	assert.Equal(t, DataSourceFallback, payload.DataSource)
	assert.Equal(t, SourceInfo{Vessels: SourceFallback, Schedule: SourceFallback, Terminals: SourceFallback}, payload.Sources)

	require.Len(t, payload.Vessels.NextDepartures, 4)
	assert.Equal(t, "2:10 PM", payload.Vessels.NextDepartures[0].Time)
	assert.Equal(t, "WENATCHEE", payload.Vessels.NextDepartures[0].Vessel)
	require.NotNil(t, payload.Vessels.NextDepartures[0].WaitMinutes)
	assert.Equal(t, 10, *payload.Vessels.NextDepartures[0].WaitMinutes)

	// Synthesized operating-hours vessels: one loading, one in transit.
	require.Len(t, payload.Vessels.Active, 2)
	assert.Equal(t, "M/V Wenatchee", payload.Vessels.Active[0].Name)
	assert.Equal(t, "loading", payload.Vessels.Active[0].Status)
	assert.Equal(t, "in-transit", payload.Vessels.Active[1].Status)

	assert.Equal(t, "Seattle (Colman Dock)", payload.Terminals.Departure.Name)
	assert.Equal(t, "N/A (arrival terminal)", payload.Terminals.Arrival.VehicleSpaces)

	require.NotNil(t, payload.Debug)
	assert.Equal(t, 14, payload.Debug.CurrentHour)
	assert.Equal(t, 4, payload.Debug.DeparturesFound)
}

func TestReportAllFeedsDownEqualsPureFallback(t *testing.T) {
	ref := time.Date(2026, 1, 7, 14, 0, 0, 0, time.UTC)
	broken := &stubFeeds{
		vesselsErr:   fmt.Errorf("executing request: %w", context.DeadlineExceeded),
		scheduleErr:  errors.New("unexpected status code: 503"),
		terminalsErr: &wsf.DecodeError{Endpoint: "/terminals", Err: errors.New("unexpected EOF")},
	}

	withFeeds, err := newTestEngine(t, broken, ref).Report(context.Background(), "", "")
	require.NoError(t, err)
	pure, err := newTestEngine(t, nil, ref).Report(context.Background(), "", "")
	require.NoError(t, err)

	// Identical modulo timestamp.
	withFeeds.Timestamp = pure.Timestamp
	assert.Equal(t, pure, withFeeds)
}

func TestReportLiveTerminalSpaces(t *testing.T) {
	ref := time.Date(2026, 1, 7, 14, 0, 0, 0, time.UTC)
	feeds := &stubFeeds{
		vesselsErr: &wsf.DecodeError{Endpoint: "/vessels", Err: errors.New("invalid character '<'")},
		terminals: []wsf.TerminalSpace{
			{TerminalName: "Bainbridge Island", SpaceForAutos: 12},
			{TerminalName: "Seattle", SpaceForAutos: 60},
		},
	}
	e := newTestEngine(t, feeds, ref)

	payload, err := e.Report(context.Background(), "seattle bainbridge", "seattle-to-bainbridge")
	require.NoError(t, err)

	assert.Equal(t, "60 spaces available", payload.Terminals.Departure.VehicleSpaces)
	assert.Equal(t, "5-15 minutes", payload.Terminals.Departure.VehicleWait)
	assert.Equal(t, SourceLive, payload.Sources.Terminals)

	// The malformed vessel feed degrades to the synthesized heuristic.
	assert.Equal(t, SourceFallback, payload.Sources.Vessels)
	require.Len(t, payload.Vessels.Active, 2)
	assert.Equal(t, DataSourceMixed, payload.DataSource)
}

func TestReportLiveVesselFiltering(t *testing.T) {
	ref := time.Date(2026, 1, 7, 14, 0, 0, 0, time.UTC)
	feeds := &stubFeeds{
		vessels: []wsf.VesselLocation{
			{VesselName: "Wenatchee", DepartingTerminal: "Seattle", ArrivingTerminal: "Bainbridge Island", AtDock: true, InService: true},
			{VesselName: "Spokane", DepartingTerminal: "Bainbridge Island", ArrivingTerminal: "Seattle", InService: true},
			{VesselName: "Tillikum", DepartingTerminal: "Seattle", InService: true},
		},
	}
	e := newTestEngine(t, feeds, ref)

	payload, err := e.Report(context.Background(), "", "seattle-to-bainbridge")
	require.NoError(t, err)

	// Spokane departs the wrong terminal for this direction and Tillikum is
	// not in the route's fleet; only Wenatchee survives.
	require.Len(t, payload.Vessels.Active, 1)
	assert.Equal(t, "M/V Wenatchee", payload.Vessels.Active[0].Name)
	assert.Equal(t, "loading", payload.Vessels.Active[0].Status)
	assert.Equal(t, "Seattle Terminal", payload.Vessels.Active[0].Location)
	assert.Equal(t, SourceLive, payload.Sources.Vessels)
}

func TestReportLiveSchedulePreferred(t *testing.T) {
	ref := time.Date(2026, 1, 7, 14, 0, 0, 0, time.UTC)
	feeds := &stubFeeds{
		schedule: &wsf.RouteSchedule{
			RouteAbbrev: "sea-bi",
			Departures: []wsf.ScheduledDeparture{
				// Deliberately out of order, one already sailed.
				{VesselName: "Spokane", DepartingTerminal: "Seattle", DepartingTime: "2026-01-07T15:40:00Z"},
				{VesselName: "Wenatchee", DepartingTerminal: "Seattle", DepartingTime: "2026-01-07T14:25:00Z"},
				{VesselName: "Puyallup", DepartingTerminal: "Seattle", DepartingTime: "2026-01-07T13:10:00Z"},
			},
		},
	}
	e := newTestEngine(t, feeds, ref)

	payload, err := e.Report(context.Background(), "", "seattle-to-bainbridge")
	require.NoError(t, err)

	assert.Equal(t, SourceLive, payload.Sources.Schedule)
	require.Len(t, payload.Vessels.NextDepartures, 2)
	assert.Equal(t, "2:25 PM", payload.Vessels.NextDepartures[0].Time)
	assert.Equal(t, "WENATCHEE", payload.Vessels.NextDepartures[0].Vessel)
	assert.Equal(t, "3:40 PM", payload.Vessels.NextDepartures[1].Time)
}

func TestReportScheduleWrongRouteFallsBack(t *testing.T) {
	ref := time.Date(2026, 1, 7, 14, 0, 0, 0, time.UTC)
	feeds := &stubFeeds{
		schedule: &wsf.RouteSchedule{
			RouteAbbrev: "ed-king",
			Departures: []wsf.ScheduledDeparture{
				{VesselName: "Spokane", DepartingTime: "2026-01-07T15:40:00Z"},
			},
		},
	}
	e := newTestEngine(t, feeds, ref)

	payload, err := e.Report(context.Background(), "bainbridge", "seattle-to-bainbridge")
	require.NoError(t, err)
	assert.Equal(t, SourceFallback, payload.Sources.Schedule)
	assert.Equal(t, "2:10 PM", payload.Vessels.NextDepartures[0].Time)
}

func TestReportInvalidDirectionSurfaces(t *testing.T) {
	ref := time.Date(2026, 1, 7, 14, 0, 0, 0, time.UTC)
	e := newTestEngine(t, nil, ref)

	_, err := e.Report(context.Background(), "bainbridge", "seattle-to-tacoma")
	var dirErr *InvalidDirectionError
	require.True(t, errors.As(err, &dirErr))
}

func TestReportNightVesselSynthesis(t *testing.T) {
	ref := time.Date(2026, 1, 7, 3, 0, 0, 0, time.UTC)
	e := newTestEngine(t, nil, ref)

	payload, err := e.Report(context.Background(), "", "")
	require.NoError(t, err)
	require.Len(t, payload.Vessels.Active, 1)
	assert.Equal(t, "suspended", payload.Vessels.Active[0].Status)
	assert.Contains(t, payload.Service.Status, "Suspended")
}

func TestErrorFallback(t *testing.T) {
	ref := time.Date(2026, 1, 7, 14, 0, 0, 0, time.UTC)
	e := newTestEngine(t, nil, ref)

	payload := e.ErrorFallback("kingston", "auto", "boom")
	assert.Equal(t, DataSourceError, payload.DataSource)
	assert.Equal(t, "Edmonds → Kingston", payload.Route)
	require.NotNil(t, payload.Debug)
	assert.Equal(t, "boom", payload.Debug.Error)
	assert.NotEmpty(t, payload.Vessels.NextDepartures)
	assert.NotEmpty(t, payload.Alerts)
}

func TestClassifyFeedErr(t *testing.T) {
	assert.Equal(t, FeedTimeout, classifyFeedErr(fmt.Errorf("executing request: %w", context.DeadlineExceeded)))
	assert.Equal(t, FeedMalformed, classifyFeedErr(&wsf.DecodeError{Endpoint: "/x", Err: errors.New("bad json")}))
	assert.Equal(t, FeedUnavailable, classifyFeedErr(errors.New("unexpected status code: 502")))
}

func TestVehicleWaitEstimateBands(t *testing.T) {
	tests := []struct {
		spaces int
		want   string
	}{
		{120, "5-15 minutes"},
		{51, "5-15 minutes"},
		{50, "15-30 minutes"},
		{21, "15-30 minutes"},
		{20, "30-60 minutes"},
		{6, "30-60 minutes"},
		{5, "Next sailing recommended"},
		{0, "Next sailing recommended"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, vehicleWaitEstimate(tt.spaces), "spaces=%d", tt.spaces)
	}
}
