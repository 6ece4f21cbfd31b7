package reader

import (
	"fmt"

	"overlog/internal/config"
)

// Script builds the remote shell pipeline for one in-container service log.
//
// The sequence is one script so the registered pid is the pid of the actual
// tailing process: the existence check short-circuits before anything is
// registered, the shell appends its own pid to the registry as a single
// line (O_APPEND keeps concurrent readers from garbling each other), and
// exec replaces the shell with tail so that killing the registered pid
// ends the stream.
func Script(path, registry string, opts Options) string {
	return fmt.Sprintf("[ -f '%s' ] || exit 0\necho $$ >> '%s'\nexec tail %s '%s'",
		path, registry, tailArgs(opts), path)
}

// tailArgs renders the tail flags for the requested history and follow mode
func tailArgs(opts Options) string {
	args := "-n " + opts.Tail
	if opts.Tail == config.TailAll {
		args = "-n +1"
	}

	if opts.Follow {
		args += " -f"
	}

	return args
}
