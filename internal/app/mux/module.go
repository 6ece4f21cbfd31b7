package mux

import "go.uber.org/fx"

// Module provides the fx dependency injection options for the mux package
var Module = fx.Options(
	fx.Provide(NewMux),
)
