package ctdf

type CataloguePart string

const (
	CataloguePartHierarchy   CataloguePart = "hierarchy"
	CataloguePartStations    CataloguePart = "stations"
	CataloguePartRoutePrices CataloguePart = "routeprices"
)

// NetworkCatalogue is a read-only snapshot of both network catalogues. Any part may
// still be empty while its load is outstanding or after it failed.
type NetworkCatalogue struct {
	Agencies []Agency `groups:"basic"`

	Stations    []Station    `groups:"basic"`
	Lines       []Line       `groups:"basic"`
	RoutePrices []RoutePrice `groups:"basic"`

	Loaded map[CataloguePart]bool `groups:"basic"`
}

func (c *NetworkCatalogue) IsLoaded(part CataloguePart) bool {
	if c == nil {
		return false
	}

	return c.Loaded[part]
}

func (c *NetworkCatalogue) FindRoute(id string) (*Route, bool) {
	if c == nil {
		return nil, false
	}

	for i := range c.Agencies {
		for j := range c.Agencies[i].Routes {
			if c.Agencies[i].Routes[j].ID == id {
				return &c.Agencies[i].Routes[j], true
			}
		}
	}

	return nil, false
}

func (c *NetworkCatalogue) FindLine(id int) (*Line, bool) {
	if c == nil {
		return nil, false
	}

	for i := range c.Lines {
		if c.Lines[i].ID == id {
			return &c.Lines[i], true
		}
	}

	return nil, false
}
