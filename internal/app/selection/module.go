package selection

import "go.uber.org/fx"

// Module provides the fx dependency injection options for the selection package
var Module = fx.Options(
	fx.Provide(NewSelector),
)
