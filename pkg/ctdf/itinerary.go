package ctdf

import (
	"fmt"
	"strings"
	"time"

	"github.com/twpayne/go-polyline"
)

const SignatureSeparator = "|"

type Place struct {
	Name     string   `groups:"basic"`
	Location Location `groups:"basic"`
	StopID   string   `groups:"basic" json:",omitempty"`
}

type RouteRef struct {
	ID         string `groups:"basic"`
	ShortName  string `groups:"basic"`
	LongName   string `groups:"basic"`
	Color      string `groups:"basic"`
	TextColor  string `groups:"basic"`
	AgencyName string `groups:"basic"`
}

func (r *RouteRef) DisplayName() string {
	return routeDisplayName(r.ShortName, r.LongName)
}

type Leg struct {
	Mode TransportMode `groups:"basic"`

	From Place `groups:"basic"`
	To   Place `groups:"basic"`

	Distance float64       `groups:"basic"`
	Duration time.Duration `groups:"basic"`

	StartTime time.Time `groups:"basic"`
	EndTime   time.Time `groups:"basic"`

	Route *RouteRef `groups:"basic" json:",omitempty"`

	// Encoded polyline of the path travelled
	Geometry string `groups:"detailed" json:",omitempty"`
}

func (l *Leg) RouteID() string {
	if l.Route == nil {
		return ""
	}

	return l.Route.ID
}

// Path decodes the leg geometry into locations
func (l *Leg) Path() ([]Location, error) {
	if l.Geometry == "" {
		return nil, nil
	}

	coords, _, err := polyline.DecodeCoords([]byte(l.Geometry))
	if err != nil {
		return nil, fmt.Errorf("decode leg geometry: %w", err)
	}

	path := make([]Location, 0, len(coords))
	for _, coord := range coords {
		path = append(path, Location{Latitude: coord[0], Longitude: coord[1]})
	}

	return path, nil
}

type Itinerary struct {
	Legs []Leg `groups:"basic"`

	Duration     time.Duration `groups:"basic"`
	WaitingTime  time.Duration `groups:"basic"`
	WalkTime     time.Duration `groups:"basic"`
	WalkDistance float64       `groups:"basic"`
	Transfers    int           `groups:"basic"`

	StartTime time.Time `groups:"basic"`
	EndTime   time.Time `groups:"basic"`

	// Display labels attached by the caller after planning
	OriginName      string `groups:"basic"`
	DestinationName string `groups:"basic"`

	Variant string `groups:"detailed"`
}

// Signature identifies itineraries that take the same route. It only depends on the
// mode and endpoint names of each leg in traversal order.
func (i *Itinerary) Signature() string {
	parts := make([]string, 0, len(i.Legs))

	for _, leg := range i.Legs {
		parts = append(parts, fmt.Sprintf("%s-%s-%s", leg.Mode, leg.From.Name, leg.To.Name))
	}

	return strings.Join(parts, SignatureSeparator)
}

func (i *Itinerary) TransitLegs() int {
	count := 0
	for _, leg := range i.Legs {
		if leg.Mode.IsTransit() {
			count++
		}
	}

	return count
}

func routeDisplayName(shortName string, longName string) string {
	switch {
	case shortName != "" && longName != "":
		return fmt.Sprintf("%s - %s", shortName, longName)
	case shortName != "":
		return shortName
	default:
		return longName
	}
}
