package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/travigo/navigator/pkg/catalogue"
	"github.com/travigo/navigator/pkg/datalinker"
)

func NetworkRouter(router fiber.Router, store *catalogue.Store, aliases *datalinker.AliasTable) {
	router.Get("/agencies", func(c *fiber.Ctx) error {
		return sendReduced(c, store.Snapshot().Agencies)
	})

	router.Get("/status", func(c *fiber.Ctx) error {
		snapshot := store.Snapshot()

		return c.JSON(fiber.Map{
			"loaded":      snapshot.Loaded,
			"agencies":    len(snapshot.Agencies),
			"stations":    len(snapshot.Stations),
			"lines":       len(snapshot.Lines),
			"routeprices": len(snapshot.RoutePrices),
		})
	})

	router.Get("/routes/:identifier/line", func(c *fiber.Ctx) error {
		snapshot := store.Snapshot()

		route, found := snapshot.FindRoute(c.Params("identifier"))
		if !found {
			return sendError(c, fiber.StatusNotFound, "Could not find route")
		}

		line, found := datalinker.NewLineIndex(snapshot, aliases).ResolveRoute(route.Ref())
		if !found {
			return sendError(c, fiber.StatusNotFound, "Could not resolve route to a line")
		}

		return sendReduced(c, line)
	})
}
