package components

import (
	"time"

	"parkspace/internal/domain/reservation"
	"parkspace/internal/pkg/clock"
	"parkspace/internal/pkg/config"
	"parkspace/internal/usecase"
	"parkspace/internal/usecase/commands"
	"parkspace/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	usecase.NewTokenValidator,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewSpaceQueries,
		queries.NewReservationQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthUseCase,
		commands.NewSpaceUseCase,
		commands.NewPaymentUseCase,
		NewReservationCommands,
	),
)

func NewReservationCommands(
	reservationRepo commands.ReservationRepository,
	spaceRepo commands.SpaceRepository,
	userRepo commands.UserRepository,
	services *reservation.Services,
	reservationViews queries.ReservationViewRepo,
	pool *pgxpool.Pool,
	clk clock.Clock,
	loc *time.Location,
	cfg config.Config,
) commands.ReservationCommands {
	return commands.NewReservationUseCase(
		reservationRepo, spaceRepo, userRepo, services, reservationViews,
		pool, clk, loc, cfg.Booking.CancellationWindow,
	)
}
