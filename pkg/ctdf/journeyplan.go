package ctdf

type JourneyPlanResults struct {
	Itineraries []Itinerary `groups:"basic"`

	Origin      Location `groups:"basic"`
	Destination Location `groups:"basic"`

	OriginName      string `groups:"basic"`
	DestinationName string `groups:"basic"`

	Variants       int      `groups:"detailed"`
	FailedVariants []string `groups:"detailed"`
}
