package remote

import "go.uber.org/fx"

// Module provides the fx dependency injection options for the remote package
var Module = fx.Options(
	fx.Provide(
		NewExecutor,
		NewRegistry,
	),
)
