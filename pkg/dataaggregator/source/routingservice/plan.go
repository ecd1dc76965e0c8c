package routingservice

import (
	"context"
	"time"

	"github.com/travigo/navigator/pkg/ctdf"
	"github.com/travigo/navigator/pkg/dataaggregator/query"
)

const planDocument = `query Plan($from: InputCoordinates!, $to: InputCoordinates!, $date: String!, $time: String!, $maxTransfers: Int, $numItineraries: Int, $transportModes: [TransportMode]) {
  plan(from: $from, to: $to, date: $date, time: $time, maxTransfers: $maxTransfers, numItineraries: $numItineraries, transportModes: $transportModes) {
    itineraries {
      duration
      waitingTime
      walkTime
      walkDistance
      startTime
      endTime
      legs {
        mode
        distance
        duration
        startTime
        endTime
        from { name lat lon stop { gtfsId } }
        to { name lat lon stop { gtfsId } }
        route { gtfsId shortName longName color textColor agency { name } }
        legGeometry { points }
      }
    }
  }
}`

type planData struct {
	Plan struct {
		Itineraries []itineraryRecord `json:"itineraries"`
	} `json:"plan"`
}

type itineraryRecord struct {
	Duration     float64     `json:"duration"`
	WaitingTime  float64     `json:"waitingTime"`
	WalkTime     float64     `json:"walkTime"`
	WalkDistance float64     `json:"walkDistance"`
	StartTime    int64       `json:"startTime"`
	EndTime      int64       `json:"endTime"`
	Legs         []legRecord `json:"legs"`
}

type legRecord struct {
	Mode      string       `json:"mode"`
	Distance  float64      `json:"distance"`
	Duration  float64      `json:"duration"`
	StartTime int64        `json:"startTime"`
	EndTime   int64        `json:"endTime"`
	From      placeRecord  `json:"from"`
	To        placeRecord  `json:"to"`
	Route     *routeRecord `json:"route"`

	LegGeometry *struct {
		Points string `json:"points"`
	} `json:"legGeometry"`
}

type placeRecord struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
	Stop *struct {
		GtfsID string `json:"gtfsId"`
	} `json:"stop"`
}

type routeRecord struct {
	GtfsID    string `json:"gtfsId"`
	ShortName string `json:"shortName"`
	LongName  string `json:"longName"`
	Color     string `json:"color"`
	TextColor string `json:"textColor"`
	Agency    *struct {
		Name string `json:"name"`
	} `json:"agency"`
}

func (s Source) TripPlanQuery(ctx context.Context, q query.TripPlan) ([]ctdf.Itinerary, error) {
	modes := make([]map[string]string, 0, len(q.Query.Modes))
	for _, mode := range q.Query.Modes {
		modes = append(modes, map[string]string{"mode": string(mode)})
	}

	variables := map[string]any{
		"from":           coordinates(q.Query.Origin),
		"to":             coordinates(q.Query.Destination),
		"date":           q.Query.DateTime.Format("2006-01-02"),
		"time":           q.Query.DateTime.Format("15:04"),
		"maxTransfers":   q.Query.MaxTransfers,
		"numItineraries": q.Query.ResultCount,
		"transportModes": modes,
	}

	var data planData
	if err := s.execute(ctx, planDocument, variables, &data); err != nil {
		return nil, err
	}

	itineraries := make([]ctdf.Itinerary, 0, len(data.Plan.Itineraries))
	for _, record := range data.Plan.Itineraries {
		itineraries = append(itineraries, record.toCTDF())
	}

	return itineraries, nil
}

func coordinates(location ctdf.Location) map[string]float64 {
	return map[string]float64{
		"lat": location.Latitude,
		"lon": location.Longitude,
	}
}

func seconds(value float64) time.Duration {
	return time.Duration(value * float64(time.Second))
}

func (r itineraryRecord) toCTDF() ctdf.Itinerary {
	itinerary := ctdf.Itinerary{
		Legs:         make([]ctdf.Leg, 0, len(r.Legs)),
		Duration:     seconds(r.Duration),
		WaitingTime:  seconds(r.WaitingTime),
		WalkTime:     seconds(r.WalkTime),
		WalkDistance: r.WalkDistance,
		StartTime:    time.UnixMilli(r.StartTime),
		EndTime:      time.UnixMilli(r.EndTime),
	}

	for _, leg := range r.Legs {
		itinerary.Legs = append(itinerary.Legs, leg.toCTDF())
	}

	// Transfers are boardings after the first one
	if transitLegs := itinerary.TransitLegs(); transitLegs > 1 {
		itinerary.Transfers = transitLegs - 1
	}

	return itinerary
}

func (r legRecord) toCTDF() ctdf.Leg {
	leg := ctdf.Leg{
		Mode:      ctdf.TransportMode(r.Mode),
		From:      r.From.toCTDF(),
		To:        r.To.toCTDF(),
		Distance:  r.Distance,
		Duration:  seconds(r.Duration),
		StartTime: time.UnixMilli(r.StartTime),
		EndTime:   time.UnixMilli(r.EndTime),
	}

	if r.Route != nil {
		leg.Route = &ctdf.RouteRef{
			ID:        r.Route.GtfsID,
			ShortName: r.Route.ShortName,
			LongName:  r.Route.LongName,
			Color:     r.Route.Color,
			TextColor: r.Route.TextColor,
		}

		if r.Route.Agency != nil {
			leg.Route.AgencyName = r.Route.Agency.Name
		}
	}

	if r.LegGeometry != nil {
		leg.Geometry = r.LegGeometry.Points
	}

	return leg
}

func (r placeRecord) toCTDF() ctdf.Place {
	place := ctdf.Place{
		Name: r.Name,
		Location: ctdf.Location{
			Latitude:  r.Lat,
			Longitude: r.Lon,
		},
	}

	if r.Stop != nil {
		place.StopID = r.Stop.GtfsID
	}

	return place
}
