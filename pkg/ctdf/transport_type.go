package ctdf

type TransportMode string

const (
	TransportModeWalk      TransportMode = "WALK"
	TransportModeBus       TransportMode = "BUS"
	TransportModeSubway    TransportMode = "SUBWAY"
	TransportModeTram      TransportMode = "TRAM"
	TransportModeRail      TransportMode = "RAIL"
	TransportModeFerry     TransportMode = "FERRY"
	TransportModeGondola   TransportMode = "GONDOLA"
	TransportModeCableCar  TransportMode = "CABLE_CAR"
	TransportModeFunicular TransportMode = "FUNICULAR"

	// Routing service shorthand for every transit mode, only valid in a TripQuery
	TransportModeTransit TransportMode = "TRANSIT"
)

// AllTransitModes is every mode a vehicle can carry a leg on, in declaration order.
// Adding a mode here requires adding its variant to the planner.
var AllTransitModes = []TransportMode{
	TransportModeBus,
	TransportModeSubway,
	TransportModeTram,
	TransportModeRail,
	TransportModeFerry,
	TransportModeGondola,
	TransportModeCableCar,
	TransportModeFunicular,
}

func (m TransportMode) IsTransit() bool {
	return m != "" && m != TransportModeWalk
}
