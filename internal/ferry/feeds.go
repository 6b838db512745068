package ferry

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/nwbound/ferrydeck/internal/api/wsf"
	"github.com/nwbound/ferrydeck/internal/timetable"
)

// FeedStatus classifies the outcome of one live-feed fetch. Everything but
// FeedLive is recovered locally: it only decides which source supplies the
// corresponding response group.
type FeedStatus int

const (
	FeedLive FeedStatus = iota
	FeedAbsent
	FeedTimeout
	FeedMalformed
	FeedUnavailable
)

func (s FeedStatus) String() string {
	switch s {
	case FeedLive:
		return "live"
	case FeedAbsent:
		return "absent"
	case FeedTimeout:
		return "timeout"
	case FeedMalformed:
		return "malformed"
	default:
		return "unavailable"
	}
}

// Feed is a tagged fetch result. Data is only meaningful when Status is
// FeedLive.
type Feed[T any] struct {
	Status FeedStatus
	Data   T
	Err    error
}

// Live reports whether the feed parsed successfully.
func (f Feed[T]) Live() bool { return f.Status == FeedLive }

func liveFeed[T any](data T) Feed[T] {
	return Feed[T]{Status: FeedLive, Data: data}
}

func failedFeed[T any](err error) Feed[T] {
	return Feed[T]{Status: classifyFeedErr(err), Err: err}
}

func absentFeed[T any]() Feed[T] {
	return Feed[T]{Status: FeedAbsent}
}

func classifyFeedErr(err error) FeedStatus {
	var decodeErr *wsf.DecodeError
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return FeedTimeout
	case errors.As(err, &decodeErr):
		return FeedMalformed
	default:
		return FeedUnavailable
	}
}

// LiveFeeds is the upstream surface the engine consumes. *wsf.Client
// implements it; tests substitute stubs.
type LiveFeeds interface {
	VesselLocations(ctx context.Context) ([]wsf.VesselLocation, error)
	RouteSchedule(ctx context.Context, routeAbbrev string) (*wsf.RouteSchedule, error)
	TerminalSpace(ctx context.Context) ([]wsf.TerminalSpace, error)
}

// feedSet holds the three independently fetched live data sets.
type feedSet struct {
	vessels   Feed[[]wsf.VesselLocation]
	schedule  Feed[*wsf.RouteSchedule]
	terminals Feed[[]wsf.TerminalSpace]
}

// fetchFeeds issues the three fetches concurrently, each bounded by its own
// timeout. It never fails: a slow or broken feed is tagged and the others
// proceed. Nothing is retried within a request.
func fetchFeeds(ctx context.Context, feeds LiveFeeds, route *timetable.Route, timeout time.Duration) feedSet {
	if feeds == nil {
		return feedSet{
			vessels:   absentFeed[[]wsf.VesselLocation](),
			schedule:  absentFeed[*wsf.RouteSchedule](),
			terminals: absentFeed[[]wsf.TerminalSpace](),
		}
	}

	var (
		set feedSet
		wg  sync.WaitGroup
	)
	wg.Add(3)
	go func() {
		defer wg.Done()
		fctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		if data, err := feeds.VesselLocations(fctx); err != nil {
			set.vessels = failedFeed[[]wsf.VesselLocation](err)
		} else {
			set.vessels = liveFeed(data)
		}
	}()
	go func() {
		defer wg.Done()
		fctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		if data, err := feeds.RouteSchedule(fctx, route.Abbrev); err != nil {
			set.schedule = failedFeed[*wsf.RouteSchedule](err)
		} else {
			set.schedule = liveFeed(data)
		}
	}()
	go func() {
		defer wg.Done()
		fctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		if data, err := feeds.TerminalSpace(fctx); err != nil {
			set.terminals = failedFeed[[]wsf.TerminalSpace](err)
		} else {
			set.terminals = liveFeed(data)
		}
	}()
	wg.Wait()
	return set
}
