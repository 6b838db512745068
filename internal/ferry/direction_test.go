package ferry

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nwbound/ferrydeck/internal/timetable"
)

func testRoute(t *testing.T, id string) *timetable.Route {
	t.Helper()
	s, err := timetable.NewStore()
	require.NoError(t, err)
	r, err := s.Route(id)
	require.NoError(t, err)
	return r
}

func at(hour, minute int) time.Time {
	return time.Date(2026, 1, 7, hour, minute, 0, 0, time.UTC)
}

func TestResolveDirectionExplicit(t *testing.T) {
	route := testRoute(t, "seattle-bainbridge")
	dir, err := ResolveDirection(route, "bainbridge-to-seattle", at(12, 0), DefaultCommuteWindows())
	require.NoError(t, err)
	assert.Equal(t, "bainbridge-to-seattle", dir.Key)
}

func TestResolveDirectionUnknownExplicit(t *testing.T) {
	route := testRoute(t, "seattle-bainbridge")
	_, err := ResolveDirection(route, "seattle-to-tacoma", at(12, 0), DefaultCommuteWindows())
	var dirErr *InvalidDirectionError
	require.True(t, errors.As(err, &dirErr))
	assert.Equal(t, "seattle-to-tacoma", dirErr.Requested)
}

func TestResolveDirectionAutoCommuter(t *testing.T) {
	route := testRoute(t, "seattle-bainbridge")
	w := DefaultCommuteWindows()

	tests := []struct {
		name string
		ref  time.Time
		want string
	}{
		{"morning commute heads to the city", at(7, 30), "bainbridge-to-seattle"},
		{"evening commute heads home", at(17, 30), "seattle-to-bainbridge"},
		{"midday defaults to first declared", at(12, 0), "seattle-to-bainbridge"},
		{"late night defaults to first declared", at(23, 0), "seattle-to-bainbridge"},
		{"window end is exclusive", at(9, 0), "seattle-to-bainbridge"},
		{"window start is inclusive", at(6, 0), "bainbridge-to-seattle"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir, err := ResolveDirection(route, DirectionAuto, tt.ref, w)
			require.NoError(t, err)
			assert.Equal(t, tt.want, dir.Key)
		})
	}
}

func TestResolveDirectionAutoNonCommuter(t *testing.T) {
	route := testRoute(t, "anacortes-sanjuans")
	w := DefaultCommuteWindows()

	// Non-commuter routes ignore the clock entirely.
	for _, ref := range []time.Time{at(7, 30), at(12, 0), at(17, 30)} {
		dir, err := ResolveDirection(route, DirectionAuto, ref, w)
		require.NoError(t, err)
		assert.Equal(t, route.Directions[0].Key, dir.Key, "ref %v", ref)
	}
}

func TestResolveDirectionEmptyMeansAuto(t *testing.T) {
	route := testRoute(t, "edmonds-kingston")
	dir, err := ResolveDirection(route, "", at(7, 0), DefaultCommuteWindows())
	require.NoError(t, err)
	// Morning commute on a commuter route: toward the urban terminal.
	assert.Equal(t, "kingston-to-edmonds", dir.Key)
}
