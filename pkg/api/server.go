package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/travigo/navigator/pkg/api/routes"
	"github.com/travigo/navigator/pkg/api/session"
	"github.com/travigo/navigator/pkg/catalogue"
	"github.com/travigo/navigator/pkg/ctdf"
	"github.com/travigo/navigator/pkg/datalinker"
	"github.com/travigo/navigator/pkg/planner"
)

const (
	sessionCacheSize = 10000
	sessionExpiry    = 12 * time.Hour
)

type Config struct {
	Catalogue *catalogue.Store
	Aliases   *datalinker.AliasTable

	// Builds the planner for each new session
	NewPlanner func() *planner.Planner
}

func NewApp(config Config) *fiber.App {
	sessions := session.NewStore(sessionCacheSize, sessionExpiry, config.NewPlanner)
	incidents := datalinker.NewFeed(config.Aliases)

	config.Catalogue.Subscribe(func(snapshot *ctdf.NetworkCatalogue) {
		incidents.Update(snapshot)
		sessions.Prune(snapshot)
	})
	incidents.Update(config.Catalogue.Snapshot())

	webApp := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})
	webApp.Use(NewLogger())

	group := webApp.Group("/core")

	group.Get("version", routes.APIVersion)

	routes.NetworkRouter(group.Group("/network"), config.Catalogue, config.Aliases)
	routes.IncidentsRouter(group.Group("/incidents"), incidents)

	routes.PlannerRouter(group.Group("/planner", sessions.Middleware()))
	routes.SelectionRouter(group.Group("/selection", sessions.Middleware()), config.Catalogue)

	return webApp
}

func SetupServer(listen string, config Config) error {
	return NewApp(config).Listen(listen)
}
