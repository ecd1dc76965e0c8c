package stationcatalogue

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/travigo/navigator/pkg/ctdf"
	"github.com/travigo/navigator/pkg/dataaggregator/query"
	"github.com/travigo/navigator/pkg/dataaggregator/source"
)

const userAgent = "travigo-navigator"

type Source struct {
	URL string

	HTTPClient *http.Client
}

func (s Source) GetName() string {
	return "Station Catalogue"
}

func (s Source) Supports() []reflect.Type {
	return []reflect.Type{
		reflect.TypeOf([]ctdf.Station{}),
		reflect.TypeOf([]ctdf.Line{}),
		reflect.TypeOf([]ctdf.RoutePrice{}),
		reflect.TypeOf([]ctdf.Opinion{}),
		reflect.TypeOf([]ctdf.Transfer{}),
	}
}

func (s Source) Lookup(ctx context.Context, q any) (interface{}, error) {
	switch q := q.(type) {
	case query.Stations:
		return s.StationsQuery(ctx)
	case query.Lines:
		return s.LinesQuery(ctx)
	case query.RoutePrices:
		return s.RoutePricesQuery(ctx)
	case query.StationOpinions:
		return s.opinions(ctx, fmt.Sprintf("stations/%d/opinions", q.StationID))
	case query.LineOpinions:
		return s.opinions(ctx, fmt.Sprintf("lines/%d/opinions", q.LineID))
	case query.Transfers:
		return s.TransfersQuery(ctx, q.StationID)
	default:
		return nil, source.UnsupportedSourceError
	}
}

func (s Source) client() *http.Client {
	if s.HTTPClient != nil {
		return s.HTTPClient
	}

	return http.DefaultClient
}

func (s Source) endpoint(path string) string {
	return strings.TrimSuffix(s.URL, "/") + "/" + path
}

func (s Source) do(ctx context.Context, method string, path string, body any, into any) error {
	var requestBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}
		requestBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.endpoint(path), requestBody)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.client().Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("station catalogue %s %s responded %s", method, path, resp.Status)
	}

	if into == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(into); err != nil {
		return fmt.Errorf("decode station catalogue %s: %w", path, err)
	}

	return nil
}
