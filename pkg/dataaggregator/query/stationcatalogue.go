package query

type Stations struct{}

type Lines struct{}

type RoutePrices struct{}

type StationOpinions struct {
	StationID int
}

type LineOpinions struct {
	LineID int
}

type Transfers struct {
	StationID int
}
