package dispatcher

import (
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/dshills/rewind/history"
)

// Strategy selects how mutations are recorded.
type Strategy int

const (
	// StrategySnapshot records a full pre-mutation snapshot of the subject.
	StrategySnapshot Strategy = iota

	// StrategyDelta records the command itself; each command carries the
	// minimal backup needed to reverse itself.
	StrategyDelta
)

// String returns the string representation of the strategy.
func (s Strategy) String() string {
	switch s {
	case StrategySnapshot:
		return "snapshot"
	case StrategyDelta:
		return "delta"
	default:
		return "unknown"
	}
}

// Dispatcher runs commands against a subject and records the mutating ones.
// One dispatcher commits to one strategy for one subject.
type Dispatcher struct {
	engine   *history.Engine
	subject  history.Originator
	strategy Strategy
	config   Config
	metrics  *Metrics
}

// NewSnapshot creates a dispatcher that records full-state snapshots of
// subject before every mutating command.
func NewSnapshot(subject history.Originator, cfg Config) *Dispatcher {
	d := newDispatcher(StrategySnapshot, cfg)
	d.subject = subject
	return d
}

// NewDelta creates a dispatcher for commands that reverse themselves.
func NewDelta(cfg Config) *Dispatcher {
	return newDispatcher(StrategyDelta, cfg)
}

func newDispatcher(strategy Strategy, cfg Config) *Dispatcher {
	d := &Dispatcher{
		engine:   history.NewEngine(cfg.MaxHistory),
		strategy: strategy,
		config:   cfg,
	}
	if cfg.EnableMetrics {
		d.metrics = NewMetrics()
	}
	return d
}

// Strategy returns the recording strategy the dispatcher committed to.
func (d *Dispatcher) Strategy() Strategy {
	return d.strategy
}

// Engine returns the underlying history engine, for embedding systems that
// need grouping or capacity control.
func (d *Dispatcher) Engine() *history.Engine {
	return d.engine
}

// Metrics returns the metrics collector, or nil when metrics are disabled.
func (d *Dispatcher) Metrics() *Metrics {
	return d.metrics
}

// Run executes a command against the subject. If the command mutated state,
// the mutation is recorded: under StrategySnapshot the pre-command snapshot
// enters history, under StrategyDelta the command itself does. Errors from
// capture or execution propagate untouched.
func (d *Dispatcher) Run(cmd history.Command) error {
	startTime := time.Now()

	var before *history.Snapshot
	if d.strategy == StrategySnapshot {
		if d.subject == nil {
			return ErrNoSubject
		}
		snap, err := d.subject.Capture(cmd.Description())
		if err != nil {
			return fmt.Errorf("capture before %s: %w", cmd.Description(), err)
		}
		before = snap
	}

	mutated, err := d.execute(cmd)

	if d.metrics != nil {
		d.metrics.RecordRun(cmd.Description(), time.Since(startTime), mutated, err != nil)
	}
	if err != nil {
		return err
	}

	if mutated {
		if d.strategy == StrategySnapshot {
			d.engine.Record(history.NewSnapshotEntry(before))
		} else {
			d.engine.Record(history.NewCommandEntry(cmd))
		}
	}
	return nil
}

// execute runs the command, optionally wrapped in panic recovery.
func (d *Dispatcher) execute(cmd history.Command) (mutated bool, err error) {
	if !d.config.RecoverFromPanic {
		return cmd.Execute()
	}

	defer func() {
		if r := recover(); r != nil {
			stack := make([]byte, 4096)
			n := runtime.Stack(stack, false)

			mutated = false
			err = fmt.Errorf("%w: %s: %v\n%s", ErrPanic, cmd.Description(), r, string(stack[:n]))

			if d.metrics != nil {
				d.metrics.RecordPanic(cmd.Description())
			}
		}
	}()

	return cmd.Execute()
}

// UndoLast reverses the most recent recorded mutation. An empty undo stack
// is a no-op, never an error; subject failures propagate.
func (d *Dispatcher) UndoLast() error {
	_, err := d.engine.Undo(d.subject)
	if errors.Is(err, history.ErrNothingToUndo) {
		return nil
	}
	if err != nil {
		return err
	}

	if d.metrics != nil {
		d.metrics.RecordUndo()
	}
	return nil
}

// RedoLast re-applies the most recently undone mutation. An empty redo stack
// is a no-op, never an error; subject failures propagate.
func (d *Dispatcher) RedoLast() error {
	_, err := d.engine.Redo(d.subject)
	if errors.Is(err, history.ErrNothingToRedo) {
		return nil
	}
	if err != nil {
		return err
	}

	if d.metrics != nil {
		d.metrics.RecordRedo()
	}
	return nil
}

// CanUndo returns true if undo is available.
func (d *Dispatcher) CanUndo() bool {
	return d.engine.CanUndo()
}

// CanRedo returns true if redo is available.
func (d *Dispatcher) CanRedo() bool {
	return d.engine.CanRedo()
}

// History returns display metadata for the undo stack, oldest first. It
// exposes labels and timestamps only, never captured state.
func (d *Dispatcher) History() []history.EntryInfo {
	return d.engine.UndoInfo()
}

// RedoHistory returns display metadata for the redo stack, oldest first.
func (d *Dispatcher) RedoHistory() []history.EntryInfo {
	return d.engine.RedoInfo()
}

// Clear empties both history stacks. Used on session reset.
func (d *Dispatcher) Clear() {
	d.engine.Clear()
}
