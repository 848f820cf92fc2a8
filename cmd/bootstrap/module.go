package bootstrap

import (
	"parkspace/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	BookingModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
