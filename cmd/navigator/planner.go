package main

import (
	"errors"
	"time"

	"github.com/kr/pretty"
	"github.com/travigo/navigator/pkg/ctdf"
	"github.com/travigo/navigator/pkg/dataaggregator"
	"github.com/travigo/navigator/pkg/dataaggregator/global"
	"github.com/travigo/navigator/pkg/dataaggregator/query"
	"github.com/travigo/navigator/pkg/util"
	"github.com/urfave/cli/v2"
)

func plannerCommand() *cli.Command {
	return &cli.Command{
		Name:  "planner",
		Usage: "Plan journeys against the routing service",
		Subcommands: []*cli.Command{
			{
				Name:  "plan",
				Usage: "Run a single search round and print the ranked itineraries",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "from",
						Usage:    "origin as lat,lon",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "to",
						Usage:    "destination as lat,lon",
						Required: true,
					},
					&cli.TimestampFlag{
						Name:   "at",
						Usage:  "departure time, defaults to now",
						Layout: time.RFC3339,
					},
					&cli.StringFlag{
						Name:  "exclude-routes",
						Usage: "comma separated routing service route ids to avoid",
					},
				},
				Action: func(c *cli.Context) error {
					origin, err := ctdf.ParseLocation(c.String("from"))
					if err != nil {
						return err
					}
					destination, err := ctdf.ParseLocation(c.String("to"))
					if err != nil {
						return err
					}

					global.Setup()

					q := query.JourneyPlan{
						Origin:      origin,
						Destination: destination,
						Exclusions: ctdf.ExclusionCriteria{
							RouteIDs: util.SplitList(c.String("exclude-routes")),
						},
					}
					if at := c.Timestamp("at"); at != nil {
						q.DateTime = *at
					}

					results, err := dataaggregator.Lookup[*ctdf.JourneyPlanResults](c.Context, q)
					if err != nil {
						return err
					}

					if len(results.Itineraries) == 0 {
						return errors.New("no itineraries found")
					}

					pretty.Println(results)

					return nil
				},
			},
		},
	}
}
