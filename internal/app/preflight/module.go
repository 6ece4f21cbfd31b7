package preflight

import "go.uber.org/fx"

// Module provides the fx dependency injection options for the preflight package
var Module = fx.Options(
	fx.Provide(NewPreflight),
)
