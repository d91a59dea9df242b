package components

import (
	"salon-site/internal/infra/readstore"
	"salon-site/internal/infra/writerepo"
	"salon-site/internal/usecase/commands"
	"salon-site/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			writerepo.NewReservationRepository,
			fx.As(new(commands.ReservationRepository)),
		),
		fx.Annotate(
			writerepo.NewSiteRepository,
			fx.As(new(commands.SiteRepository)),
		),
		// Read-side stores for queries
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
		fx.Annotate(
			readstore.NewSiteReadStore,
			fx.As(new(queries.SiteReadStore)),
		),
	),
)
