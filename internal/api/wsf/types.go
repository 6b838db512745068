package wsf

// The upstream field names belong to the ferry authority's API and are
// intentionally mirrored here; everything beyond these types is mapped into
// the engine's own model so the adapter stays replaceable.

// VesselLocation is one entry of the vessel-location feed.
type VesselLocation struct {
	VesselName        string `json:"VesselName"`
	DepartingTerminal string `json:"DepartingTerminalName"`
	ArrivingTerminal  string `json:"ArrivingTerminalName"`
	AtDock            bool   `json:"AtDock"`
	InService         bool   `json:"InService"`
}

// ScheduledDeparture is one sailing in the live schedule feed. DepartingTime
// is an RFC 3339 timestamp.
type ScheduledDeparture struct {
	VesselName        string `json:"VesselName"`
	DepartingTerminal string `json:"DepartingTerminalName"`
	DepartingTime     string `json:"DepartingTime"`
}

// RouteSchedule is the live schedule feed for a single route.
type RouteSchedule struct {
	RouteAbbrev string               `json:"RouteAbbrev"`
	Departures  []ScheduledDeparture `json:"ScheduledDepartures"`
}

// TerminalSpace is one entry of the terminal-congestion feed.
type TerminalSpace struct {
	TerminalName  string `json:"TerminalName"`
	SpaceForAutos int    `json:"SpaceForAutos"`
}
