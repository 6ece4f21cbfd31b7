package mux

import (
	"context"

	"github.com/looplab/fsm"

	"overlog/internal/config/logger"
)

// Handle states
const (
	StatePending   = "pending"
	StateStreaming = "streaming"
	StateStopped   = "stopped"
)

// Handle events
const (
	eventStart = "start"
	eventStop  = "stop"
)

// Handle tracks the lifecycle of one in-flight log reader
type Handle struct {
	service string
	fsm     *fsm.FSM
}

// NewHandle creates a new Handle for a service reader
func NewHandle(service string, log logger.Logger) *Handle {
	h := &Handle{service: service}

	h.fsm = fsm.NewFSM(
		StatePending,
		fsm.Events{
			{Name: eventStart, Src: []string{StatePending}, Dst: StateStreaming},
			{Name: eventStop, Src: []string{StatePending, StateStreaming}, Dst: StateStopped},
		},
		fsm.Callbacks{
			"after_event": func(ctx context.Context, e *fsm.Event) {
				log.Debug().Msgf("Reader '%s': %s -> %s", service, e.Src, e.Dst)
			},
		},
	)

	return h
}

// Service returns the service name this handle tracks
func (h *Handle) Service() string {
	return h.service
}

// State returns the current reader state
func (h *Handle) State() string {
	return h.fsm.Current()
}

// Start marks the reader as streaming
func (h *Handle) Start() {
	// transition errors mean the event is a no-op for the current state
	_ = h.fsm.Event(context.Background(), eventStart)
}

// Stop marks the reader as stopped; safe to call more than once
func (h *Handle) Stop() {
	_ = h.fsm.Event(context.Background(), eventStop)
}
