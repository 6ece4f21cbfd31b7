//go:generate mockgen -source=remote.go -destination=remote_mock.go -package=remote
package remote

import (
	"context"

	"overlog/internal/app/shell"
	"overlog/internal/config"
	"overlog/internal/config/logger"
)

// Executor runs a command string inside the consolidated container,
// non-interactively, and streams its output. Channel failures (container
// unreachable, non-zero exit) are discarded: the caller receives whatever
// partial output was produced and no error signal.
type Executor interface {
	Exec(ctx context.Context, script string, emit func(line string))
}

// executor implements the Executor interface
type executor struct {
	cfg *config.Config
	sh  shell.Commander
	log logger.Logger
}

// NewExecutor creates a new Executor instance
func NewExecutor(cfg *config.Config, sh shell.Commander, log logger.Logger) Executor {
	return &executor{
		cfg: cfg,
		sh:  sh,
		log: log.WithComponent("REMOTE"),
	}
}

// Exec runs a script inside the container via the compose exec channel
func (e *executor) Exec(ctx context.Context, script string, emit func(line string)) {
	argv := execArgs(e.cfg, script)

	e.log.Debug().Msgf("Executing in '%s': %s", e.cfg.Container.Name, script)
	e.sh.Stream(ctx, emit, argv[0], argv[1:]...)
}

// execArgs builds the non-interactive compose exec argv for a script
func execArgs(cfg *config.Config, script string) []string {
	args := append(cfg.ComposeArgs(), "exec", "-T", cfg.Container.Name)

	return append(args, "bash", "-c", script)
}
