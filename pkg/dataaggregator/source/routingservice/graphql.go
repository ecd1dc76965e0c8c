package routingservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

const userAgent = "travigo-navigator"

type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

func (s Source) client() HTTPDoer {
	if s.HTTPClient != nil {
		return s.HTTPClient
	}

	return http.DefaultClient
}

func (s Source) execute(ctx context.Context, document string, variables map[string]any, data any) error {
	body, err := json.Marshal(graphQLRequest{
		Query:     document,
		Variables: variables,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.URL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.client().Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("routing service responded %s", resp.Status)
	}

	var response graphQLResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return fmt.Errorf("decode routing service response: %w", err)
	}

	if len(response.Errors) > 0 {
		return fmt.Errorf("routing service error: %s", response.Errors[0].Message)
	}

	if len(response.Data) == 0 || string(response.Data) == "null" {
		return fmt.Errorf("routing service returned no data")
	}

	return json.Unmarshal(response.Data, data)
}
