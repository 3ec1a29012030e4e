package dispatcher

import (
	"sort"
	"sync"
	"time"
)

// Metrics collects run/undo/redo statistics.
type Metrics struct {
	mu sync.RWMutex

	// Per-command metrics
	commandMetrics map[string]*CommandMetrics

	// Global counters
	totalRuns   uint64
	totalErrors uint64
	totalPanics uint64
	totalUndos  uint64
	totalRedos  uint64

	// Timing
	totalDuration time.Duration
}

// CommandMetrics holds metrics for a specific command description.
type CommandMetrics struct {
	Name          string
	RunCount      uint64
	MutationCount uint64
	ErrorCount    uint64
	TotalDuration time.Duration
	MinDuration   time.Duration
	MaxDuration   time.Duration
	LastRun       time.Time
}

// NewMetrics creates a new metrics collector.
func NewMetrics() *Metrics {
	return &Metrics{
		commandMetrics: make(map[string]*CommandMetrics),
	}
}

// RecordRun records one command execution.
func (m *Metrics) RecordRun(name string, duration time.Duration, mutated, failed bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.totalRuns++
	m.totalDuration += duration
	if failed {
		m.totalErrors++
	}

	cm := m.commandMetrics[name]
	if cm == nil {
		cm = &CommandMetrics{
			Name:        name,
			MinDuration: duration,
			MaxDuration: duration,
		}
		m.commandMetrics[name] = cm
	}

	cm.RunCount++
	cm.TotalDuration += duration
	cm.LastRun = time.Now()

	if duration < cm.MinDuration {
		cm.MinDuration = duration
	}
	if duration > cm.MaxDuration {
		cm.MaxDuration = duration
	}

	if mutated {
		cm.MutationCount++
	}
	if failed {
		cm.ErrorCount++
	}
}

// RecordPanic records a panic recovery.
func (m *Metrics) RecordPanic(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.totalPanics++

	if cm := m.commandMetrics[name]; cm != nil {
		cm.ErrorCount++
	}
}

// RecordUndo records one successful undo.
func (m *Metrics) RecordUndo() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.totalUndos++
}

// RecordRedo records one successful redo.
func (m *Metrics) RecordRedo() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.totalRedos++
}

// TotalRuns returns the total number of command executions.
func (m *Metrics) TotalRuns() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.totalRuns
}

// TotalErrors returns the total number of failed executions.
func (m *Metrics) TotalErrors() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.totalErrors
}

// TotalPanics returns the total number of recovered panics.
func (m *Metrics) TotalPanics() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.totalPanics
}

// TotalUndos returns the total number of successful undos.
func (m *Metrics) TotalUndos() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.totalUndos
}

// TotalRedos returns the total number of successful redos.
func (m *Metrics) TotalRedos() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.totalRedos
}

// TotalDuration returns the accumulated execution time.
func (m *Metrics) TotalDuration() time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.totalDuration
}

// Command returns the metrics for one command description.
func (m *Metrics) Command(name string) (CommandMetrics, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	cm := m.commandMetrics[name]
	if cm == nil {
		return CommandMetrics{}, false
	}
	return *cm, true
}

// CommandNames returns all recorded command descriptions, sorted.
func (m *Metrics) CommandNames() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.commandMetrics))
	for name := range m.commandMetrics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Reset clears all collected metrics.
func (m *Metrics) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.commandMetrics = make(map[string]*CommandMetrics)
	m.totalRuns = 0
	m.totalErrors = 0
	m.totalPanics = 0
	m.totalUndos = 0
	m.totalRedos = 0
	m.totalDuration = 0
}
