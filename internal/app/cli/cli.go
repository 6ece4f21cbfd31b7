//go:generate mockgen -source=cli.go -destination=cli_mock.go -package=cli
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"overlog/internal/app/mux"
	"overlog/internal/app/reader"
	"overlog/internal/app/selection"
	"overlog/internal/config"
	"overlog/internal/config/logger"
)

// CLI defines the interface for cli operations
type CLI interface {
	Run(args []string) int
}

// cli represents the command-line interface for the application
type cli struct {
	cfg      *config.Config
	selector selection.Selector
	mux      mux.Mux
	log      logger.Logger
}

// NewCLI creates a new cli instance
func NewCLI(
	cfg *config.Config,
	selector selection.Selector,
	mux mux.Mux,
	log logger.Logger,
) CLI {
	return &cli{
		cfg:      cfg,
		selector: selector,
		mux:      mux,
		log:      log.WithComponent("CLI"),
	}
}

// Run processes command-line arguments and streams logs, returning the
// process exit code. Zero means normal completion or graceful
// cancellation; non-zero is reserved for usage errors.
func (c *cli) Run(args []string) int {
	if len(args) > 0 && isHelp(args[0]) {
		printHelp(os.Stdout)

		return 0
	}

	opts, err := Parse(args, c.cfg.Logs.Tail)
	if err != nil {
		return c.usageError(err)
	}

	if opts.Help {
		printHelp(os.Stdout)

		return 0
	}

	if err := config.ValidateTail(opts.Tail); err != nil {
		return c.usageError(err)
	}

	services, err := c.selector.Expand(opts.Services, c.cfg.ServiceSet())
	if err != nil {
		return c.usageError(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ropts := reader.Options{
		Follow: opts.Follow,
		Tail:   opts.Tail,
		Single: len(services) == 1,
	}

	c.log.Debug().Msgf("Streaming %d services (follow=%v, tail=%s)", len(services), ropts.Follow, ropts.Tail)

	return c.stream(ctx, services, ropts)
}

// stream runs the multiplexer for the selected services
func (c *cli) stream(ctx context.Context, services []string, opts reader.Options) int {
	if err := c.mux.Run(ctx, os.Stdout, services, opts); err != nil {
		c.log.Error().Err(err).Msg("Log streaming failed")

		return 1
	}

	return 0
}

// usageError reports a usage problem on stderr and returns the exit code
func (c *cli) usageError(err error) int {
	fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
	printUsage(os.Stderr)

	return 1
}

// isHelp reports whether an argument requests help
func isHelp(arg string) bool {
	return arg == "help" || arg == "--help" || arg == "-h"
}
