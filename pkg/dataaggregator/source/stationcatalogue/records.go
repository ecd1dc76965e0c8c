package stationcatalogue

import (
	"context"
	"fmt"
	"net/http"

	"github.com/travigo/navigator/pkg/ctdf"
)

type stationRecord struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	LineID      int    `json:"line_id"`
	Incident    string `json:"incident"`
	Services    string `json:"services"`
	Information string `json:"information"`
}

type lineRecord struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Transport   string  `json:"transport"`
	Incident    string  `json:"incident"`
	Speed       float64 `json:"speed"`
	Information string  `json:"information"`
}

type routeRecord struct {
	ID     int     `json:"id"`
	Name   string  `json:"name"`
	LineID int     `json:"line_id"`
	Price  float64 `json:"price"`
}

type opinionRecord struct {
	ID      int    `json:"id,omitempty"`
	Author  string `json:"author"`
	Comment string `json:"comment"`
	Rating  int    `json:"rating"`
}

type transferRecord struct {
	StationID int    `json:"station_id"`
	LineID    int    `json:"line_id"`
	LineName  string `json:"line_name"`
}

func (s Source) StationsQuery(ctx context.Context) ([]ctdf.Station, error) {
	var records []stationRecord
	if err := s.do(ctx, http.MethodGet, "stations", nil, &records); err != nil {
		return nil, err
	}

	stations := make([]ctdf.Station, 0, len(records))
	for _, record := range records {
		stations = append(stations, ctdf.Station(record))
	}

	return stations, nil
}

func (s Source) LinesQuery(ctx context.Context) ([]ctdf.Line, error) {
	var records []lineRecord
	if err := s.do(ctx, http.MethodGet, "lines", nil, &records); err != nil {
		return nil, err
	}

	lines := make([]ctdf.Line, 0, len(records))
	for _, record := range records {
		lines = append(lines, ctdf.Line(record))
	}

	return lines, nil
}

func (s Source) RoutePricesQuery(ctx context.Context) ([]ctdf.RoutePrice, error) {
	var records []routeRecord
	if err := s.do(ctx, http.MethodGet, "routes", nil, &records); err != nil {
		return nil, err
	}

	routes := make([]ctdf.RoutePrice, 0, len(records))
	for _, record := range records {
		routes = append(routes, ctdf.RoutePrice(record))
	}

	return routes, nil
}

func (s Source) TransfersQuery(ctx context.Context, stationID int) ([]ctdf.Transfer, error) {
	var records []transferRecord
	if err := s.do(ctx, http.MethodGet, fmt.Sprintf("stations/%d/transfers", stationID), nil, &records); err != nil {
		return nil, err
	}

	transfers := make([]ctdf.Transfer, 0, len(records))
	for _, record := range records {
		transfers = append(transfers, ctdf.Transfer(record))
	}

	return transfers, nil
}

func (s Source) opinions(ctx context.Context, path string) ([]ctdf.Opinion, error) {
	var records []opinionRecord
	if err := s.do(ctx, http.MethodGet, path, nil, &records); err != nil {
		return nil, err
	}

	opinions := make([]ctdf.Opinion, 0, len(records))
	for _, record := range records {
		opinions = append(opinions, ctdf.Opinion(record))
	}

	return opinions, nil
}

// CreateStationOpinion posts a new opinion for a station. Writes are not routed through
// the aggregator as they have no result type to match on.
func (s Source) CreateStationOpinion(ctx context.Context, stationID int, opinion ctdf.Opinion) error {
	return s.do(ctx, http.MethodPost, fmt.Sprintf("stations/%d/opinions", stationID), opinionRecord(opinion), nil)
}

func (s Source) CreateLineOpinion(ctx context.Context, lineID int, opinion ctdf.Opinion) error {
	return s.do(ctx, http.MethodPost, fmt.Sprintf("lines/%d/opinions", lineID), opinionRecord(opinion), nil)
}
