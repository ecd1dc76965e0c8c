package ctdf

// Agency is the top of the routing service catalogue hierarchy
type Agency struct {
	ID   string `groups:"basic"`
	Name string `groups:"basic"`

	Routes []Route `groups:"detailed"`
}

type Route struct {
	ID         string `groups:"basic"`
	ShortName  string `groups:"basic"`
	LongName   string `groups:"basic"`
	Color      string `groups:"basic"`
	TextColor  string `groups:"basic"`
	AgencyName string `groups:"basic"`

	Patterns []Pattern `groups:"detailed"`
}

func (r *Route) DisplayName() string {
	return routeDisplayName(r.ShortName, r.LongName)
}

func (r *Route) Ref() RouteRef {
	return RouteRef{
		ID:         r.ID,
		ShortName:  r.ShortName,
		LongName:   r.LongName,
		Color:      r.Color,
		TextColor:  r.TextColor,
		AgencyName: r.AgencyName,
	}
}

type Pattern struct {
	Code     string     `groups:"basic"`
	Geometry []Location `groups:"detailed"`
	Stops    []Stop     `groups:"basic"`
}

type Stop struct {
	ID       string   `groups:"basic"`
	Name     string   `groups:"basic"`
	Location Location `groups:"basic"`
}
