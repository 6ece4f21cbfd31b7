//go:generate mockgen -source=preflight.go -destination=preflight_mock.go -package=preflight
package preflight

import (
	"context"
	"strings"
	"sync"
	"syscall"

	"github.com/shirou/gopsutil/v4/process"

	"overlog/internal/app/worker"
	"overlog/internal/config"
	"overlog/internal/config/logger"
)

// composeLogsMarker identifies a compose log invocation on a process cmdline
const composeLogsMarker = "logs --no-color"

// Result represents a process killed during preflight
type Result struct {
	Name string
	PID  int32
}

// Preflight kills log-reader processes orphaned by a previous crashed
// invocation before new readers are dispatched
type Preflight interface {
	Cleanup(ctx context.Context) []Result
}

// entry holds information about a running process
type entry struct {
	name    string
	cmdline string
	pid     int32
	ppid    int32
}

type scanFunc func() ([]entry, error)
type killFunc func(pid int32) error

// preflight implements the Preflight interface
type preflight struct {
	scan scanFunc
	kill killFunc
	pool worker.Pool
	log  logger.Logger
}

// NewPreflight creates a new Preflight instance
func NewPreflight(pool worker.Pool, log logger.Logger) Preflight {
	return &preflight{
		scan: scan,
		kill: kill,
		pool: pool,
		log:  log.WithComponent("PREFLIGHT"),
	}
}

// Cleanup scans for orphaned reader processes and terminates them.
// Everything here is best-effort: a failed scan or kill is logged and
// never blocks the run.
func (p *preflight) Cleanup(ctx context.Context) []Result {
	entries, err := p.scan()
	if err != nil {
		p.log.Warn().Err(err).Msg("Process scan failed, skipping preflight")

		return nil
	}

	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		results []Result
	)

	for _, e := range entries {
		if !isOrphanedReader(e) {
			continue
		}

		if err := p.pool.Acquire(ctx); err != nil {
			break
		}

		wg.Add(1)

		go func(e entry) {
			defer wg.Done()
			defer p.pool.Release()

			if err := p.kill(e.pid); err != nil {
				p.log.Debug().Err(err).Msgf("Failed to kill orphaned reader (PID: %d)", e.pid)

				return
			}

			p.log.Info().Msgf("Killed orphaned log reader '%s' (PID: %d)", e.name, e.pid)

			mu.Lock()
			results = append(results, Result{Name: e.name, PID: e.pid})
			mu.Unlock()
		}(e)
	}

	wg.Wait()

	return results
}

// isOrphanedReader reports whether a process is a log reader left behind by
// a previous invocation: reparented to init and carrying one of our
// invocation markers on its cmdline
func isOrphanedReader(e entry) bool {
	if e.ppid != 1 {
		return false
	}

	return strings.Contains(e.cmdline, config.PidRegistryPath) ||
		strings.Contains(e.cmdline, composeLogsMarker)
}

// scan lists running processes with their cmdlines
func scan() ([]entry, error) {
	procs, err := process.Processes()
	if err != nil {
		return nil, err
	}

	entries := make([]entry, 0, len(procs))

	for _, proc := range procs {
		name, err := proc.Name()
		if err != nil {
			continue
		}

		cmdline, err := proc.Cmdline()
		if err != nil || cmdline == "" {
			continue
		}

		ppid, err := proc.Ppid()
		if err != nil {
			continue
		}

		entries = append(entries, entry{
			name:    name,
			cmdline: cmdline,
			pid:     proc.Pid,
			ppid:    ppid,
		})
	}

	return entries, nil
}

// kill sends SIGTERM to a process
func kill(pid int32) error {
	return syscall.Kill(int(pid), syscall.SIGTERM)
}
