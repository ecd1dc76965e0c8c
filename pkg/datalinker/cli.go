package datalinker

import (
	"github.com/kr/pretty"
	"github.com/rs/zerolog/log"
	"github.com/travigo/navigator/pkg/catalogue"
	"github.com/travigo/navigator/pkg/dataaggregator/global"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "incidents",
		Usage: "Link station catalogue incidents to routing service stops",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "Load both catalogues and list the incident markers",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "unresolved",
						Usage: "also list incidents that could not be placed on a stop",
					},
				},
				Action: func(c *cli.Context) error {
					global.Setup()

					aliases, err := DefaultAliasTable()
					if err != nil {
						return err
					}

					store := catalogue.NewStore()
					loader := catalogue.Loader{
						Cache: global.CatalogueCache(),
						Store: store,
					}
					loader.Load(c.Context)

					result := ReconcileCatalogue(store.Snapshot(), aliases)

					log.Info().
						Int("markers", len(result.Markers)).
						Int("unresolved", len(result.Unresolved)).
						Msg("Reconciled incidents")

					pretty.Println(result.Markers)

					if c.Bool("unresolved") {
						pretty.Println(result.Unresolved)
					}

					return nil
				},
			},
		},
	}
}
