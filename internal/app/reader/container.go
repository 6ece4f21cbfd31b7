package reader

import (
	"context"

	"overlog/internal/app/remote"
	"overlog/internal/config"
	"overlog/internal/config/logger"
)

// container implements the Container interface by tailing a log file
// inside the consolidated container
type container struct {
	cfg *config.Config
	rem remote.Executor
	log logger.Logger
}

// NewContainer creates a new Container reader instance
func NewContainer(cfg *config.Config, rem remote.Executor, log logger.Logger) Container {
	return &container{
		cfg: cfg,
		rem: rem,
		log: log.WithComponent("TAIL"),
	}
}

// Stream tails one service log file and emits its lines. A missing log
// file produces no output and registers no pid; it is not an error.
func (r *container) Stream(ctx context.Context, service string, opts Options, emit func(line string)) {
	path := r.cfg.LogBase() + "/" + service + ".log"
	script := Script(path, config.PidRegistryPath, opts)

	r.log.Debug().Msgf("Tailing '%s' from '%s'", service, path)
	r.rem.Exec(ctx, script, emit)
}
