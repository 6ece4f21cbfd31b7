//go:generate mockgen -source=shell.go -destination=shell_mock.go -package=shell
package shell

import (
	"bufio"
	"context"
	"os/exec"
	"syscall"

	"overlog/internal/config/logger"
)

// Scanner buffer size constants
const (
	// scannerBufferSize is the initial buffer size for reading command output (64KB)
	scannerBufferSize = 64 * 1024
	// scannerMaxBufferSize is the maximum buffer size for reading command output (4MB)
	scannerMaxBufferSize = 4 * 1024 * 1024
)

// Commander runs external commands on behalf of the log readers.
// All failures are swallowed at this boundary: a command that cannot start,
// errors, or is killed produces whatever output it managed to emit and
// nothing else. Log retrieval for one service must never abort the rest
// of the run.
type Commander interface {
	Stream(ctx context.Context, emit func(line string), name string, args ...string)
	Run(ctx context.Context, name string, args ...string)
}

// commander implements the Commander interface
type commander struct {
	log logger.Logger
}

// NewCommander creates a new Commander instance
func NewCommander(log logger.Logger) Commander {
	return &commander{log: log.WithComponent("SHELL")}
}

// Stream starts a command in its own process group and emits each stdout line.
// It blocks until the command exits; cancelling the context terminates the
// process group. Stderr is discarded so transport noise never reaches the
// merged output.
func (c *commander) Stream(ctx context.Context, emit func(line string), name string, args ...string) {
	cmd := exec.Command(name, args...)
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		c.log.Debug().Err(err).Msgf("Failed to create pipe for '%s'", name)

		return
	}

	if err := cmd.Start(); err != nil {
		c.log.Debug().Err(err).Msgf("Failed to start '%s'", name)

		return
	}

	done := make(chan struct{})

	go func() {
		select {
		case <-ctx.Done():
			c.terminate(cmd)
		case <-done:
		}
	}()

	scanner := bufio.NewScanner(stdout)
	scanner.Buffer(make([]byte, scannerBufferSize), scannerMaxBufferSize)

	for scanner.Scan() {
		emit(scanner.Text())
	}

	if err := cmd.Wait(); err != nil {
		c.log.Debug().Err(err).Msgf("Command '%s' exited with error", name)
	}

	close(done)
}

// Run executes a command to completion, discarding its output.
// Errors are swallowed like everywhere else on this boundary.
func (c *commander) Run(ctx context.Context, name string, args ...string) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}

	if err := cmd.Run(); err != nil {
		c.log.Debug().Err(err).Msgf("Command '%s' exited with error", name)
	}
}

// terminate stops a running command's process group
func (c *commander) terminate(cmd *exec.Cmd) {
	if cmd.Process == nil {
		return
	}

	pid := cmd.Process.Pid

	if err := syscall.Kill(-pid, syscall.SIGTERM); err != nil {
		c.log.Debug().Err(err).Msgf("Failed to signal process group %d, trying direct kill", pid)

		if killErr := cmd.Process.Kill(); killErr != nil {
			c.log.Debug().Err(killErr).Msgf("Failed to kill process %d", pid)
		}
	}
}
