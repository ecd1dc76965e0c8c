package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/travigo/navigator/pkg/api/session"
	"github.com/travigo/navigator/pkg/catalogue"
	"github.com/travigo/navigator/pkg/ctdf"
	"github.com/travigo/navigator/pkg/selection"
)

type selectionResponse struct {
	Criteria ctdf.ExclusionCriteria    `groups:"basic"`
	Routes   []selection.RouteOption   `groups:"basic"`
	Stations []selection.StationOption `groups:"basic"`
}

func SelectionRouter(router fiber.Router, store *catalogue.Store) {
	router.Get("/", func(c *fiber.Ctx) error {
		return sendSelection(c, store)
	})

	router.Put("/agencies", func(c *fiber.Ctx) error {
		var body struct {
			Agencies []string `json:"agencies"`
		}
		if err := c.BodyParser(&body); err != nil {
			return sendError(c, fiber.StatusBadRequest, "Body should contain an agencies list")
		}

		session.FromContext(c).Selection.SetAgencies(body.Agencies)

		return sendSelection(c, store)
	})

	router.Put("/routes", func(c *fiber.Ctx) error {
		var body struct {
			Routes []string `json:"routes"`
		}
		if err := c.BodyParser(&body); err != nil {
			return sendError(c, fiber.StatusBadRequest, "Body should contain a routes list")
		}

		if err := session.FromContext(c).Selection.SetRoutes(store.Snapshot(), body.Routes); err != nil {
			return sendError(c, fiber.StatusBadRequest, err.Error())
		}

		return sendSelection(c, store)
	})

	router.Put("/stations", func(c *fiber.Ctx) error {
		var body struct {
			Stations []struct {
				RouteID string `json:"route"`
				StopID  string `json:"stop"`
			} `json:"stations"`
		}
		if err := c.BodyParser(&body); err != nil {
			return sendError(c, fiber.StatusBadRequest, "Body should contain a stations list")
		}

		stations := make([]ctdf.StationExclusion, 0, len(body.Stations))
		for _, station := range body.Stations {
			stations = append(stations, ctdf.StationExclusion{RouteID: station.RouteID, StopID: station.StopID})
		}

		if err := session.FromContext(c).Selection.SetStations(store.Snapshot(), stations); err != nil {
			return sendError(c, fiber.StatusBadRequest, err.Error())
		}

		return sendSelection(c, store)
	})
}

func sendSelection(c *fiber.Ctx, store *catalogue.Store) error {
	state := session.FromContext(c).Selection
	snapshot := store.Snapshot()

	return sendReduced(c, selectionResponse{
		Criteria: state.Criteria(),
		Routes:   state.RouteOptions(snapshot),
		Stations: state.StationOptions(snapshot),
	})
}
