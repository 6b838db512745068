package noaa

// Point is the /points response; it tells us which forecast grid covers a
// coordinate.
type Point struct {
	Properties PointProperties `json:"properties"`
}

// PointProperties identifies the forecast grid for a coordinate.
type PointProperties struct {
	GridID   string `json:"gridId"`
	GridX    int    `json:"gridX"`
	GridY    int    `json:"gridY"`
	Forecast string `json:"forecast"`
}

// GridValue is a single timestamped measurement. Value is nil when the
// station reported nothing for the period.
type GridValue struct {
	Value *float64 `json:"value"`
}

// GridSeries is a time series of measurements; the first entry is current.
type GridSeries struct {
	Values []GridValue `json:"values"`
}

// GridData holds the raw gridpoint measurements in SI units: wind in m/s,
// temperature in °C, visibility in meters, pressure in Pa.
type GridData struct {
	WindSpeed          GridSeries `json:"windSpeed"`
	WindDirection      GridSeries `json:"windDirection"`
	Temperature        GridSeries `json:"temperature"`
	RelativeHumidity   GridSeries `json:"relativeHumidity"`
	BarometricPressure GridSeries `json:"barometricPressure"`
	Visibility         GridSeries `json:"visibility"`
}

// Gridpoint is the /gridpoints response.
type Gridpoint struct {
	Properties GridData `json:"properties"`
}

// ForecastPeriod is one named period of the text forecast.
type ForecastPeriod struct {
	Name             string `json:"name"`
	DetailedForecast string `json:"detailedForecast"`
}

// Forecast is the forecast-URL response.
type Forecast struct {
	Properties struct {
		Periods []ForecastPeriod `json:"periods"`
	} `json:"properties"`
}

// Current returns the series' first reported value.
func (s GridSeries) Current() (float64, bool) {
	if len(s.Values) == 0 || s.Values[0].Value == nil {
		return 0, false
	}
	return *s.Values[0].Value, true
}
