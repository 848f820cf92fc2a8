package components

import (
	"fmt"
	"time"

	"parkspace/internal/handler"
	"parkspace/internal/handler/api"
	"parkspace/internal/handler/middleware"
	"parkspace/internal/pkg/config"
	"parkspace/internal/usecase/commands"
	"parkspace/internal/usecase/queries"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		newAuthHandler,
		api.NewSpaceHandler,
		api.NewReservationHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

func newAuthHandler(
	authCommands commands.AuthCommands,
	userQueries queries.UserQueries,
	cfg config.Config,
) *api.AuthHandler {
	jwtDuration, err := time.ParseDuration(cfg.JWT.Duration)
	if err != nil {
		panic(fmt.Sprintf("invalid JWT duration: %v", err))
	}
	return api.NewAuthHandler(authCommands, userQueries, cfg.Cookie, jwtDuration)
}
