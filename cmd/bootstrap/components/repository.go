package components

import (
	"parkspace/internal/infra/db"
	"parkspace/internal/infra/nicepay"
	"parkspace/internal/infra/readstore"
	repo_impl "parkspace/internal/infra/repository"
	"parkspace/internal/pkg/config"
	"parkspace/internal/usecase/commands"
	"parkspace/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		fx.Annotate(
			repo_impl.NewUserRepository,
			fx.As(new(commands.UserRepository)),
		),
		fx.Annotate(
			repo_impl.NewSpaceRepository,
			fx.As(new(commands.SpaceRepository)),
		),
		fx.Annotate(
			repo_impl.NewReservationRepository,
			fx.As(new(commands.ReservationRepository)),
		),
		fx.Annotate(
			repo_impl.NewPaymentRepository,
			fx.As(new(commands.PaymentRepository)),
		),
		func(cfg config.Config) nicepay.Gateway {
			return nicepay.NewClient(cfg.NicePay)
		},
		// Read-side stores for queries
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationViewRepo)),
		),
		fx.Annotate(
			readstore.NewSpaceReadStore,
			fx.As(new(queries.SpaceViewRepo)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
