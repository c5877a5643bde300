// Package recovery implements the crash-only fault boundary around the
// scheduling loop. Local state is never trusted after a fault escapes the
// step: the only recovery primitive is a full process restart, which re-runs
// all startup initialization from a clean slate.
package recovery

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"strings"
	"syscall"
	"time"

	"sports-ticker/internal/logging"
	"sports-ticker/internal/metrics"
)

// Class partitions faults by how they are recovered.
type Class string

const (
	// ClassResource covers allocation failures and memory-pressure signals.
	// In-process state cannot be trusted to recover, so the restart happens
	// after only a short reclaim-and-wait.
	ClassResource Class = "resource"
	// ClassGeneric covers every other unhandled fault.
	ClassGeneric Class = "generic"
)

// ErrResourceExhausted marks a fault as resource exhaustion. Wrap it (or
// panic with a wrapping error) to route a fault to the resource policy.
var ErrResourceExhausted = errors.New("resource exhausted")

const (
	shortDelay = 5 * time.Second
	longDelay  = 10 * time.Second
)

type opKind int

const (
	opWait opKind = iota
	opReclaim
	opRestart
)

type op struct {
	kind  opKind
	delay time.Duration
}

// policies is the declarative recovery action table, keyed by fault class.
// Both sequences end in an unconditional restart with no retry budget.
var policies = map[Class][]op{
	ClassResource: {
		{kind: opReclaim},
		{kind: opWait, delay: shortDelay},
		{kind: opRestart},
	},
	ClassGeneric: {
		{kind: opWait, delay: longDelay},
		{kind: opReclaim},
		{kind: opWait, delay: shortDelay},
		{kind: opRestart},
	},
}

// Restarter performs the full process restart. The production implementation
// never returns; test doubles do, which lets the policy run under test.
type Restarter interface {
	Restart()
}

// Boundary wraps scheduler steps in a classified fault boundary.
type Boundary struct {
	restarter Restarter
	sleep     func(time.Duration)
	reclaim   func()
	logger    *slog.Logger
	metrics   *metrics.Recorder
}

// Options bundles Boundary dependencies. Sleep and Reclaim default to the
// real thing; Restarter is required.
type Options struct {
	Restarter Restarter
	Sleep     func(time.Duration)
	Reclaim   func()
	Logger    *slog.Logger
	Metrics   *metrics.Recorder
}

// New constructs a Boundary.
func New(opts Options) *Boundary {
	sleep := opts.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}
	reclaim := opts.Reclaim
	if reclaim == nil {
		reclaim = func() { debug.FreeOSMemory() }
	}
	return &Boundary{
		restarter: opts.Restarter,
		sleep:     sleep,
		reclaim:   reclaim,
		logger:    opts.Logger,
		metrics:   opts.Metrics,
	}
}

// Run executes fn inside the fault boundary. A panic or a returned error is
// classified and drives that class's recovery policy. With a real restarter
// Run does not return after a fault.
func (b *Boundary) Run(fn func() error) {
	defer func() {
		if r := recover(); r != nil {
			b.recover(Classify(r), faultError(r))
		}
	}()

	if err := fn(); err != nil {
		b.recover(Classify(err), err)
	}
}

func (b *Boundary) recover(class Class, err error) {
	logging.Error(b.logger, "fault escaped scheduling loop, restarting", err,
		logging.FieldFaultClass, string(class),
	)
	if b.metrics != nil {
		b.metrics.RecordRestart(string(class))
	}
	for _, step := range policies[class] {
		switch step.kind {
		case opWait:
			b.sleep(step.delay)
		case opReclaim:
			b.reclaim()
		case opRestart:
			b.restarter.Restart()
		}
	}
}

// Classify maps a fault value (error or panic payload) to its class.
func Classify(v any) Class {
	err, ok := v.(error)
	if !ok {
		if s, isStr := v.(string); isStr && looksLikeOOM(s) {
			return ClassResource
		}
		return ClassGeneric
	}
	if errors.Is(err, ErrResourceExhausted) || errors.Is(err, syscall.ENOMEM) {
		return ClassResource
	}
	if looksLikeOOM(err.Error()) {
		return ClassResource
	}
	return ClassGeneric
}

// looksLikeOOM matches the runtime's allocation-failure messages, which
// arrive as strings rather than typed errors.
func looksLikeOOM(msg string) bool {
	msg = strings.ToLower(msg)
	return strings.Contains(msg, "out of memory") || strings.Contains(msg, "cannot allocate memory")
}

func faultError(v any) error {
	if err, ok := v.(error); ok {
		return err
	}
	return fmt.Errorf("panic: %v", v)
}
