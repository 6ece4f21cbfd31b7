//go:generate mockgen -source=registry.go -destination=registry_mock.go -package=remote
package remote

import (
	"context"
	"fmt"

	"overlog/internal/app/shell"
	"overlog/internal/config"
	"overlog/internal/config/logger"
)

// Registry clears the remote pid registry accumulated by in-container
// readers. Every pid appended to the registry belongs to a tail that must
// be signalled before the invocation ends, or it keeps tailing forever.
type Registry interface {
	Sweep()
}

// registry implements the Registry interface
type registry struct {
	cfg *config.Config
	sh  shell.Commander
	log logger.Logger
}

// NewRegistry creates a new Registry instance
func NewRegistry(cfg *config.Config, sh shell.Commander, log logger.Logger) Registry {
	return &registry{
		cfg: cfg,
		sh:  sh,
		log: log.WithComponent("REGISTRY"),
	}
}

// Sweep terminates every registered tail pid and removes the registry file.
// A missing registry means no in-container readers launched; that is
// success. Individual kills are best-effort, the pids may already be gone.
// The invocation context is cancelled by the time cleanup runs, so the
// sweep uses its own bounded context.
func (r *registry) Sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), config.SweepTimeout)
	defer cancel()

	script := sweepScript(config.PidRegistryPath)
	argv := execArgs(r.cfg, script)

	r.log.Debug().Msgf("Sweeping pid registry '%s'", config.PidRegistryPath)
	r.sh.Run(ctx, argv[0], argv[1:]...)
}

// sweepScript builds the kill-and-remove script for the registry file
func sweepScript(path string) string {
	return fmt.Sprintf("if [ -f '%[1]s' ]; then kill $(cat '%[1]s') 2>/dev/null; rm -f '%[1]s'; fi", path)
}
