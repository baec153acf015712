package memory

import "go.uber.org/fx"

// Module wires the in-process storage driver
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		New,
		NewTransactionManager,
		NewUserRepository,
		NewProductRepository,
		NewZoneRepository,
		NewCartRepository,
		NewOrderRepository,
	),
)
