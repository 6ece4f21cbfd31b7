package mux

import (
	"fmt"

	"overlog/internal/config"
)

// Formatter renders merged output lines. In-container lines carry a
// service-name prefix column approximating the orchestrator's native
// multi-service prefix; orchestrated lines pass through as produced.
type Formatter struct {
	width int
}

// NewFormatter creates a new Formatter with the fixed prefix column width
func NewFormatter() *Formatter {
	return &Formatter{width: config.PrefixWidth}
}

// Line renders one output line. When prefixed is false the message passes
// through untouched; otherwise the service name is padded or truncated to
// the fixed column width and separated from the message.
func (f *Formatter) Line(service, message string, prefixed bool) string {
	if !prefixed {
		return message + "\n"
	}

	name := service
	if len(name) > f.width {
		name = name[:f.width]
	}

	return fmt.Sprintf("%-*s | %s\n", f.width, name, message)
}
