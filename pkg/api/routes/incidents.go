package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/travigo/navigator/pkg/datalinker"
)

func IncidentsRouter(router fiber.Router, feed *datalinker.Feed) {
	router.Get("/", func(c *fiber.Ctx) error {
		return sendReduced(c, feed.Current())
	})
}
