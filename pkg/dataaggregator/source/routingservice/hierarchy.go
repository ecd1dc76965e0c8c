package routingservice

import (
	"context"

	"github.com/travigo/navigator/pkg/ctdf"
)

const hierarchyDocument = `query Hierarchy {
  agencies {
    gtfsId
    name
    routes {
      gtfsId
      shortName
      longName
      color
      textColor
      patterns {
        code
        geometry { lat lon }
        stops { gtfsId name lat lon }
      }
    }
  }
}`

type hierarchyData struct {
	Agencies []struct {
		GtfsID string `json:"gtfsId"`
		Name   string `json:"name"`
		Routes []struct {
			GtfsID    string `json:"gtfsId"`
			ShortName string `json:"shortName"`
			LongName  string `json:"longName"`
			Color     string `json:"color"`
			TextColor string `json:"textColor"`
			Patterns  []struct {
				Code     string `json:"code"`
				Geometry []struct {
					Lat float64 `json:"lat"`
					Lon float64 `json:"lon"`
				} `json:"geometry"`
				Stops []struct {
					GtfsID string  `json:"gtfsId"`
					Name   string  `json:"name"`
					Lat    float64 `json:"lat"`
					Lon    float64 `json:"lon"`
				} `json:"stops"`
			} `json:"patterns"`
		} `json:"routes"`
	} `json:"agencies"`
}

func (s Source) NetworkHierarchyQuery(ctx context.Context) ([]ctdf.Agency, error) {
	var data hierarchyData
	if err := s.execute(ctx, hierarchyDocument, nil, &data); err != nil {
		return nil, err
	}

	agencies := make([]ctdf.Agency, 0, len(data.Agencies))

	for _, agencyRecord := range data.Agencies {
		agency := ctdf.Agency{
			ID:   agencyRecord.GtfsID,
			Name: agencyRecord.Name,
		}

		for _, routeRecord := range agencyRecord.Routes {
			route := ctdf.Route{
				ID:         routeRecord.GtfsID,
				ShortName:  routeRecord.ShortName,
				LongName:   routeRecord.LongName,
				Color:      routeRecord.Color,
				TextColor:  routeRecord.TextColor,
				AgencyName: agencyRecord.Name,
			}

			for _, patternRecord := range routeRecord.Patterns {
				pattern := ctdf.Pattern{Code: patternRecord.Code}

				for _, point := range patternRecord.Geometry {
					pattern.Geometry = append(pattern.Geometry, ctdf.Location{Latitude: point.Lat, Longitude: point.Lon})
				}

				for _, stopRecord := range patternRecord.Stops {
					pattern.Stops = append(pattern.Stops, ctdf.Stop{
						ID:       stopRecord.GtfsID,
						Name:     stopRecord.Name,
						Location: ctdf.Location{Latitude: stopRecord.Lat, Longitude: stopRecord.Lon},
					})
				}

				route.Patterns = append(route.Patterns, pattern)
			}

			agency.Routes = append(agency.Routes, route)
		}

		agencies = append(agencies, agency)
	}

	return agencies, nil
}
