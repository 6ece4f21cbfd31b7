package reader

import (
	"context"

	"overlog/internal/app/shell"
	"overlog/internal/config"
	"overlog/internal/config/logger"
)

// compose implements the Compose interface on top of the orchestrator's
// native log command
type compose struct {
	cfg *config.Config
	sh  shell.Commander
	log logger.Logger
}

// NewCompose creates a new Compose reader instance
func NewCompose(cfg *config.Config, sh shell.Commander, log logger.Logger) Compose {
	return &compose{
		cfg: cfg,
		sh:  sh,
		log: log.WithComponent("COMPOSE"),
	}
}

// Stream invokes the compose log command for one service and emits its
// output line by line. Invocation errors surface as silence for this
// service only.
func (r *compose) Stream(ctx context.Context, service string, opts Options, emit func(line string)) {
	argv := r.args(service, opts)

	r.log.Debug().Msgf("Streaming '%s' via %v", service, argv)
	r.sh.Stream(ctx, emit, argv[0], argv[1:]...)
}

// args builds the compose log command for one service from the options
func (r *compose) args(service string, opts Options) []string {
	args := append(r.cfg.ComposeArgs(), "logs", "--no-color")

	if opts.Follow {
		args = append(args, "-f")
	}

	if opts.Tail != config.TailAll {
		args = append(args, "--tail="+opts.Tail)
	}

	if opts.Single {
		args = append(args, "--no-log-prefix")
	}

	return append(args, service)
}
