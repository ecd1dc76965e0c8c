package global

import (
	"github.com/rs/zerolog/log"
	"github.com/travigo/navigator/pkg/dataaggregator"
	"github.com/travigo/navigator/pkg/dataaggregator/source/cachedresults"
	"github.com/travigo/navigator/pkg/dataaggregator/source/journeyplanner"
	"github.com/travigo/navigator/pkg/dataaggregator/source/routingservice"
	"github.com/travigo/navigator/pkg/dataaggregator/source/stationcatalogue"
	"github.com/travigo/navigator/pkg/planner"
	"github.com/travigo/navigator/pkg/redis_client"
	"github.com/travigo/navigator/pkg/util"
)

func Setup() {
	dataaggregator.GlobalAggregator = dataaggregator.Aggregator{}

	env := util.GetEnvironmentVariables()

	if env["TRAVIGO_ROUTING_URL"] == "" {
		log.Warn().Msg("TRAVIGO_ROUTING_URL is not set, trip planning and the network hierarchy are unavailable")
	} else {
		dataaggregator.GlobalAggregator.RegisterSource(routingservice.Source{
			URL: env["TRAVIGO_ROUTING_URL"],
		})
	}

	if env["TRAVIGO_STATIONS_URL"] == "" {
		log.Warn().Msg("TRAVIGO_STATIONS_URL is not set, stations and incidents are unavailable")
	} else {
		dataaggregator.GlobalAggregator.RegisterSource(stationcatalogue.Source{
			URL: env["TRAVIGO_STATIONS_URL"],
		})
	}

	dataaggregator.GlobalAggregator.RegisterSource(journeyplanner.Source{
		Planner: Planner(),
	})
}

// Planner returns a planner routed through the global aggregator
func Planner() *planner.Planner {
	return journeyplanner.NewPlanner(journeyplanner.AggregatorRouter{}, util.GetEnvironmentVariables())
}

// CatalogueCache connects to redis when one is configured. Without redis the catalogue
// is loaded from the backends every time.
func CatalogueCache() *cachedresults.Cache {
	if !redis_client.IsConfigured() {
		return nil
	}

	env := util.GetEnvironmentVariables()

	ttl, err := cachedresults.ParseTTL(env["TRAVIGO_CATALOGUE_CACHE_TTL"])
	if err != nil {
		log.Error().Err(err).Msg("Invalid catalogue cache TTL, caching disabled")
		return nil
	}

	if err := redis_client.Connect(); err != nil {
		log.Error().Err(err).Msg("Failed to connect to Redis, caching disabled")
		return nil
	}

	return cachedresults.New(redis_client.Client, ttl)
}
