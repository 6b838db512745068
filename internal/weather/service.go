package weather

import (
	"context"
	"fmt"
	"time"

	"github.com/nwbound/ferrydeck/internal/api/noaa"
)

// Observer is the weather-feed surface the service consumes. *noaa.Client
// implements it.
type Observer interface {
	Point(ctx context.Context, lat, lon float64) (*noaa.PointProperties, error)
	Gridpoint(ctx context.Context, gridID string, gridX, gridY int) (*noaa.GridData, error)
	DetailedForecast(ctx context.Context, forecastURL string) (string, error)
}

// Current runs the three-step observation chain (point lookup, gridpoint
// measurements, text forecast) and formats the maritime report. A missing
// text forecast is tolerated; a failed point or gridpoint lookup is not.
func Current(ctx context.Context, obs Observer, lat, lon float64) (*Report, error) {
	point, err := obs.Point(ctx, lat, lon)
	if err != nil {
		return nil, fmt.Errorf("resolving forecast grid: %w", err)
	}

	grid, err := obs.Gridpoint(ctx, point.GridID, point.GridX, point.GridY)
	if err != nil {
		return nil, fmt.Errorf("fetching gridpoint data: %w", err)
	}

	forecast, err := obs.DetailedForecast(ctx, point.Forecast)
	if err != nil {
		forecast = "Forecast unavailable"
	}

	return BuildReport(grid, forecast, time.Now()), nil
}
