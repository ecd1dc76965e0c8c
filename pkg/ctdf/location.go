package ctdf

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

type Location struct {
	Latitude  float64 `groups:"basic"`
	Longitude float64 `groups:"basic"`
}

func (l Location) String() string {
	return fmt.Sprintf("%f,%f", l.Latitude, l.Longitude)
}

// ParseLocation reads a "lat,lon" pair
func ParseLocation(s string) (*Location, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return nil, errors.New("location must be formatted as lat,lon")
	}

	latitude, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid latitude: %w", err)
	}
	longitude, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid longitude: %w", err)
	}

	if latitude < -90 || latitude > 90 || longitude < -180 || longitude > 180 {
		return nil, fmt.Errorf("location %s is out of range", s)
	}

	return &Location{Latitude: latitude, Longitude: longitude}, nil
}
