package api

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/travigo/navigator/pkg/catalogue"
	"github.com/travigo/navigator/pkg/dataaggregator/global"
	"github.com/travigo/navigator/pkg/datalinker"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "web-api",
		Usage: "Provides the navigator web API",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run web api server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "listen",
						Value: ":8080",
						Usage: "listen target for the web server",
					},
				},
				Action: func(c *cli.Context) error {
					global.Setup()

					aliases, err := datalinker.DefaultAliasTable()
					if err != nil {
						return err
					}

					store := catalogue.NewStore()
					loader := catalogue.Loader{
						Cache: global.CatalogueCache(),
						Store: store,
					}

					config := Config{
						Catalogue:  store,
						Aliases:    aliases,
						NewPlanner: global.Planner,
					}

					app := NewApp(config)

					go func() {
						failures := <-loader.Start(context.Background())
						if len(failures) > 0 {
							log.Warn().Int("failed", len(failures)).Msg("Network catalogue partially loaded")
						}
					}()

					return app.Listen(c.String("listen"))
				},
			},
		},
	}
}
