//go:generate mockgen -source=mux.go -destination=mux_mock.go -package=mux
package mux

import (
	"context"
	"fmt"
	"io"
	"sync"

	"overlog/internal/app/preflight"
	"overlog/internal/app/reader"
	"overlog/internal/app/remote"
	"overlog/internal/app/selection"
	"overlog/internal/config"
	"overlog/internal/config/logger"
)

// Mux fans out one log reader per selected service and merges their output
// into a single stream. It owns cancellation and cleanup of all spawned
// work, local and remote.
type Mux interface {
	Run(ctx context.Context, out io.Writer, services []string, opts reader.Options) error
}

// line is one merged-output entry from a reader
type line struct {
	service  string
	text     string
	prefixed bool
}

// mux implements the Mux interface
type mux struct {
	cfg       *config.Config
	compose   reader.Compose
	container reader.Container
	registry  remote.Registry
	pre       preflight.Preflight
	formatter *Formatter
	log       logger.Logger
}

// NewMux creates a new Mux instance
func NewMux(
	cfg *config.Config,
	compose reader.Compose,
	container reader.Container,
	registry remote.Registry,
	pre preflight.Preflight,
	log logger.Logger,
) Mux {
	return &mux{
		cfg:       cfg,
		compose:   compose,
		container: container,
		registry:  registry,
		pre:       pre,
		formatter: NewFormatter(),
		log:       log.WithComponent("MUX"),
	}
}

// Run dispatches one reader per service, merges their lines into out, and
// tears everything down on exit. In follow mode the readers are unbounded
// and completion comes only from context cancellation; otherwise Run
// returns once every reader reaches end of stream and the sink drains.
func (m *mux) Run(ctx context.Context, out io.Writer, services []string, opts reader.Options) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// cleanup must run on every exit path, and exactly once per invocation
	var cleanup sync.Once
	defer cleanup.Do(m.sweep)

	if killed := m.pre.Cleanup(ctx); len(killed) > 0 {
		m.log.Info().Msgf("Preflight killed %d orphaned readers", len(killed))
	}

	// the sink channel bounds local buffering; when the consumer stalls,
	// readers block on send rather than dropping lines
	lines := make(chan line, m.cfg.Logs.Buffer)

	var wg sync.WaitGroup

	for _, service := range services {
		handle := NewHandle(service, m.log)

		wg.Add(1)

		go func(service string, handle *Handle) {
			defer wg.Done()
			defer handle.Stop()

			handle.Start()
			m.dispatch(ctx, service, opts, lines)
		}(service, handle)
	}

	drained := make(chan struct{})

	go func() {
		defer close(drained)

		for l := range lines {
			fmt.Fprint(out, m.formatter.Line(l.service, l.text, l.prefixed))
		}
	}()

	wg.Wait()
	close(lines)
	<-drained

	return nil
}

// dispatch classifies a service and runs the matching reader until its
// stream ends. A reader failure is silence for that service, never an
// error for the run.
func (m *mux) dispatch(ctx context.Context, service string, opts reader.Options, lines chan<- line) {
	switch selection.Classify(service) {
	case selection.StrategyOrchestrated:
		m.compose.Stream(ctx, service, opts, func(text string) {
			lines <- line{service: service, text: text}
		})
	default:
		m.container.Stream(ctx, service, opts, func(text string) {
			lines <- line{service: service, text: text, prefixed: !opts.Single}
		})
	}
}

// sweep releases every remote resource the run accumulated. Local reader
// processes die with the context; the remote tails they launched do not,
// so the pid registry sweep is mandatory no matter how Run exits.
func (m *mux) sweep() {
	m.log.Debug().Msg("Sweeping remote readers")
	m.registry.Sweep()
}
