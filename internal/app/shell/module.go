package shell

import "go.uber.org/fx"

// Module provides the fx dependency injection options for the shell package
var Module = fx.Options(
	fx.Provide(NewCommander),
)
