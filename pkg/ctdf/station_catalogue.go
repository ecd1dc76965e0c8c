package ctdf

// Records served by the station catalogue backend. They describe the same network as
// the routing service catalogue under unrelated integer identifiers.

type Station struct {
	ID          int    `groups:"basic"`
	Name        string `groups:"basic"`
	LineID      int    `groups:"basic"`
	Incident    string `groups:"basic"`
	Services    string `groups:"detailed"`
	Information string `groups:"detailed"`
}

type Line struct {
	ID          int     `groups:"basic"`
	Name        string  `groups:"basic"`
	Transport   string  `groups:"basic"`
	Incident    string  `groups:"basic"`
	Speed       float64 `groups:"detailed"`
	Information string  `groups:"detailed"`
}

type RoutePrice struct {
	ID     int     `groups:"basic"`
	Name   string  `groups:"basic"`
	LineID int     `groups:"basic"`
	Price  float64 `groups:"basic"`
}

type Opinion struct {
	ID      int    `groups:"basic"`
	Author  string `groups:"basic"`
	Comment string `groups:"basic"`
	Rating  int    `groups:"basic"`
}

type Transfer struct {
	StationID int    `groups:"basic"`
	LineID    int    `groups:"basic"`
	LineName  string `groups:"basic"`
}
