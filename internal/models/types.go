package models

// CommandType labels the verb parsed from an inbound message.
type CommandType string

const (
	CommandHelp    CommandType = "HELP"
	CommandWalk    CommandType = "WALK"
	CommandTransit CommandType = "TRANSIT"
	CommandDrive   CommandType = "DRIVE"
	CommandUnknown CommandType = "UNKNOWN"
)

// Routing mode tokens understood by the directions provider.
const (
	ModeWalking = "walking"
	ModeTransit = "transit"
	ModeDriving = "driving"
)

// Command is a parsed verb plus the routing mode it selects.
// Mode is empty for HELP and UNKNOWN.
type Command struct {
	Type CommandType
	Mode string
}

// RoutePair is the origin/destination pair extracted from free-form text by
// the LLM. The names are not guaranteed to be resolvable.
type RoutePair struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
}

// LatLng is a geographic coordinate.
type LatLng struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Valid reports whether the coordinate is inside the usual bounds.
func (l LatLng) Valid() bool {
	return l.Latitude >= -90 && l.Latitude <= 90 &&
		l.Longitude >= -180 && l.Longitude <= 180
}

// ResolvedPlace is a place-search candidate taken as authoritative.
// Name is the provider's canonical display name, not the input query.
type ResolvedPlace struct {
	Name     string `json:"name"`
	Location LatLng `json:"location"`
}

// RouteResult is the first leg of the first route returned by the directions
// provider. Steps are numbered instruction lines in traversal order.
// NoRoute marks the valid empty result for unroutable pairs.
type RouteResult struct {
	Duration string
	Steps    []string
	NoRoute  bool
}
