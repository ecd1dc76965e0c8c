package ctdf

const UnknownTransportName = "Desconocido"

type IncidentRecord struct {
	StationID   int    `groups:"basic"`
	StationName string `groups:"basic"`
	Description string `groups:"basic"`
	LineID      int    `groups:"basic"`
}

type StopGeometry struct {
	StopID   string   `groups:"basic"`
	Name     string   `groups:"basic"`
	Location Location `groups:"basic"`
}

// IncidentMarker is an incident that could be placed on the map
type IncidentMarker struct {
	Incident IncidentRecord `groups:"basic"`
	Stop     StopGeometry   `groups:"basic"`

	LineName      string `groups:"basic"`
	TransportName string `groups:"basic"`

	// Routing service agency the transport resolves to, empty when unmapped
	AgencyName string `groups:"basic"`
}
