package ferry

// Response payload shapes. Field names follow the public JSON contract:
// callers watch for dataSource "Error Fallback" and debug.error rather than
// HTTP status codes.

const (
	SourceLive     = "live"
	SourceFallback = "fallback"

	DataSourceLive     = "Live Feeds"
	DataSourceMixed    = "Mixed"
	DataSourceFallback = "Static Fallback"
	DataSourceError    = "Error Fallback"
)

// Payload is the single response object assembled per request.
type Payload struct {
	Route              string         `json:"route"`
	Direction          string         `json:"direction"`
	Timestamp          string         `json:"timestamp"`
	CurrentPacificTime string         `json:"currentPacificTime"`
	Service            ServiceInfo    `json:"service"`
	Vessels            VesselsGroup   `json:"vessels"`
	Terminals          TerminalsGroup `json:"terminals"`
	Alerts             []string       `json:"alerts"`
	Sources            SourceInfo     `json:"sources"`
	DataSource         string         `json:"dataSource"`
	Debug              *DebugInfo     `json:"debug,omitempty"`
}

// ServiceInfo describes the route's service level.
type ServiceInfo struct {
	Status         string `json:"status"`
	Frequency      string `json:"frequency"`
	CrossingTime   string `json:"crossingTime"`
	OperatingHours string `json:"operatingHours"`
	Reservations   string `json:"reservations,omitempty"`
}

// ActiveVessel is one vessel currently working the route.
type ActiveVessel struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Status   string `json:"status"`
}

// DepartureView is one upcoming sailing. WaitMinutes is omitted once the
// departure has rolled into the following day.
type DepartureView struct {
	Time        string `json:"time"`
	Vessel      string `json:"vessel"`
	WaitMinutes *int   `json:"waitMinutes,omitempty"`
	Tomorrow    bool   `json:"tomorrow,omitempty"`
}

// VesselsGroup bundles vessel positions with upcoming departures.
type VesselsGroup struct {
	Active         []ActiveVessel  `json:"active"`
	NextDepartures []DepartureView `json:"nextDepartures"`
}

// TerminalInfo is the congestion snapshot for one terminal.
type TerminalInfo struct {
	Name          string `json:"name"`
	VehicleSpaces string `json:"vehicleSpaces"`
	WalkOnWait    string `json:"walkOnWait"`
	VehicleWait   string `json:"vehicleWait"`
}

// TerminalsGroup holds both ends of the resolved direction.
type TerminalsGroup struct {
	Departure TerminalInfo `json:"departure"`
	Arrival   TerminalInfo `json:"arrival"`
}

// SourceInfo records which source supplied each response group.
type SourceInfo struct {
	Vessels   string `json:"vessels"`
	Schedule  string `json:"schedule"`
	Terminals string `json:"terminals"`
}

// DebugInfo mirrors the projection inputs for observability.
type DebugInfo struct {
	CurrentHour     int    `json:"currentHour"`
	CurrentMinute   int    `json:"currentMinute"`
	DeparturesFound int    `json:"totalDeparturesFound"`
	Error           string `json:"error,omitempty"`
}
