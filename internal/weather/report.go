package weather

import (
	"fmt"
	"math"
	"time"

	"github.com/nwbound/ferrydeck/internal/api/noaa"
)

// Report is the maritime weather payload for the ferry corridor.
type Report struct {
	Location   string     `json:"location"`
	Timestamp  string     `json:"timestamp"`
	Conditions Conditions `json:"conditions"`
	Maritime   Maritime   `json:"maritime"`
}

// Conditions are the formatted observations, converted from the weather
// service's SI units to the maritime units mariners actually read.
type Conditions struct {
	Wind        string `json:"wind"`
	Temperature string `json:"temperature"`
	Visibility  string `json:"visibility"`
	Humidity    string `json:"humidity"`
	Pressure    string `json:"pressure"`
	Forecast    string `json:"forecast"`
}

// Maritime is the derived crossing-conditions summary.
type Maritime struct {
	SeaState           string `json:"seaState"`
	SmallCraftAdvisory bool   `json:"smallCraftAdvisory"`
	Conditions         string `json:"conditions"`
}

var compassPoints = []string{
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
}

// CompassDirection converts degrees to a 16-point compass heading.
func CompassDirection(degrees float64) string {
	idx := int(math.Round(degrees/22.5)) % 16
	if idx < 0 {
		idx += 16
	}
	return compassPoints[idx]
}

// SeaState estimates wave conditions from sustained wind.
func SeaState(windKnots int) string {
	switch {
	case windKnots < 4:
		return "Calm (0-1 ft)"
	case windKnots < 7:
		return "Light (1-2 ft)"
	case windKnots < 11:
		return "Moderate (2-3 ft)"
	case windKnots < 17:
		return "Choppy (3-5 ft)"
	case windKnots < 22:
		return "Rough (5-8 ft)"
	default:
		return "Very Rough (8+ ft)"
	}
}

// CategorizeConditions grades crossing conditions from wind and visibility.
func CategorizeConditions(windKnots int, visibilityNM float64) string {
	switch {
	case windKnots > 25 || visibilityNM < 2:
		return "Poor - Small craft advisory"
	case windKnots > 15 || visibilityNM < 5:
		return "Fair - Use caution"
	default:
		return "Good - Favorable conditions"
	}
}

// BuildReport formats raw gridpoint measurements into the maritime report.
// Missing measurements render as "N/A" and degrade the maritime summary to
// "Unknown" rather than failing.
func BuildReport(grid *noaa.GridData, forecast string, now time.Time) *Report {
	r := &Report{
		Location:  "Puget Sound / Seattle Area",
		Timestamp: now.UTC().Format(time.RFC3339),
		Conditions: Conditions{
			Wind:        "Variable",
			Temperature: "N/A",
			Visibility:  "N/A",
			Humidity:    "N/A",
			Pressure:    "N/A",
			Forecast:    forecast,
		},
		Maritime: Maritime{
			SeaState:   "Unknown",
			Conditions: "Unknown",
		},
	}

	windKnots, haveWind := -1, false
	if ms, ok := grid.WindSpeed.Current(); ok {
		windKnots = int(math.Round(ms * 1.944))
		haveWind = true
		dir := "Variable"
		if deg, ok := grid.WindDirection.Current(); ok {
			dir = CompassDirection(deg)
		}
		r.Conditions.Wind = fmt.Sprintf("%s %d knots", dir, windKnots)
	}
	if c, ok := grid.Temperature.Current(); ok {
		r.Conditions.Temperature = fmt.Sprintf("%d°F", int(math.Round(c*9/5+32)))
	}
	if h, ok := grid.RelativeHumidity.Current(); ok {
		r.Conditions.Humidity = fmt.Sprintf("%d%%", int(math.Round(h)))
	}
	if pa, ok := grid.BarometricPressure.Current(); ok {
		r.Conditions.Pressure = fmt.Sprintf("%.2f\" Hg", pa/3386.39)
	}

	visibilityNM, haveVis := 0.0, false
	if m, ok := grid.Visibility.Current(); ok {
		visibilityNM = math.Round(m/1852*10) / 10
		haveVis = true
		r.Conditions.Visibility = fmt.Sprintf("%.1f nautical miles", visibilityNM)
	}

	if haveWind {
		r.Maritime.SeaState = SeaState(windKnots)
		r.Maritime.SmallCraftAdvisory = windKnots > 25
	}
	if haveWind && haveVis {
		r.Maritime.Conditions = CategorizeConditions(windKnots, visibilityNM)
	}
	return r
}
