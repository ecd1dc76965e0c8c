package ctdf

// StationExclusion is always scoped to the route it was selected under
type StationExclusion struct {
	RouteID string `groups:"basic"`
	StopID  string `groups:"basic"`
}

type ExclusionCriteria struct {
	Agencies []string           `groups:"basic"`
	RouteIDs []string           `groups:"basic"`
	Stations []StationExclusion `groups:"basic"`
}

func (c ExclusionCriteria) IsEmpty() bool {
	return len(c.RouteIDs) == 0 && len(c.Stations) == 0
}
