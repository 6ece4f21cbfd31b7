package app

import (
	"go.uber.org/fx"

	"overlog/internal/app/cli"
	"overlog/internal/app/mux"
	"overlog/internal/app/preflight"
	"overlog/internal/app/reader"
	"overlog/internal/app/remote"
	"overlog/internal/app/selection"
	"overlog/internal/app/shell"
	"overlog/internal/app/worker"
	"overlog/internal/config/logger"
)

var Module = fx.Options(
	cli.Module,
	logger.Module,
	mux.Module,
	preflight.Module,
	reader.Module,
	remote.Module,
	selection.Module,
	shell.Module,
	worker.Module,
	fx.Provide(NewApp),
	fx.Invoke(Register),
)
