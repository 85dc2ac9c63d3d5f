// Package presence reports whether the target application is running.
package presence

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/shirou/gopsutil/process"
)

// Process is a single entry of the OS process table.
type Process interface {
	PID() int32
	Name() (string, error)
}

// Lister enumerates the processes currently running.
type Lister func() ([]Process, error)

// ProcessQueryError is a per-process lookup failure, typically a process
// that exited or is not accessible. It never aborts a scan.
type ProcessQueryError struct {
	PID int32
	Err error
}

func (e *ProcessQueryError) Error() string {
	return fmt.Sprintf("query process %d: %v", e.PID, e.Err)
}

func (e *ProcessQueryError) Unwrap() error {
	return e.Err
}

// Monitor matches process names against a fixed allow-list.
type Monitor struct {
	names []string
	list  Lister
	log   *slog.Logger
}

// NewMonitor creates a monitor over the OS process table.
func NewMonitor(names []string, log *slog.Logger) *Monitor {
	return NewMonitorWithLister(names, SystemProcesses, log)
}

// NewMonitorWithLister creates a monitor over a custom process source.
func NewMonitorWithLister(names []string, list Lister, log *slog.Logger) *Monitor {
	return &Monitor{
		names: lo.Map(names, func(n string, _ int) string { return strings.ToLower(n) }),
		list:  list,
		log:   log,
	}
}

// IsTargetRunning scans the process table and returns true on the first
// process whose name matches. A failed listing counts as not running; the
// next poll retries.
func (m *Monitor) IsTargetRunning() bool {
	procs, err := m.list()
	if err != nil {
		m.log.Warn("Failed to list processes", "err", err)
		return false
	}

	for _, p := range procs {
		name, err := p.Name()
		if err != nil {
			m.log.Debug("Skipping process", "err", &ProcessQueryError{PID: p.PID(), Err: err})
			continue
		}
		if lo.Contains(m.names, strings.ToLower(name)) {
			return true
		}
	}
	return false
}

// Watch checks presence, reports it to fn, and re-arms a timer for interval
// once the check has finished. It returns when ctx is cancelled; the
// context is checked before every reschedule.
func (m *Monitor) Watch(ctx context.Context, interval time.Duration, fn func(running bool)) {
	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
		}

		fn(m.IsTargetRunning())

		if ctx.Err() != nil {
			return
		}
		timer.Reset(interval)
	}
}

// SystemProcesses lists processes through gopsutil.
func SystemProcesses() ([]Process, error) {
	procs, err := process.Processes()
	if err != nil {
		return nil, err
	}
	return lo.Map(procs, func(p *process.Process, _ int) Process {
		return systemProcess{p: p}
	}), nil
}

type systemProcess struct {
	p *process.Process
}

func (s systemProcess) PID() int32 {
	return s.p.Pid
}

func (s systemProcess) Name() (string, error) {
	return s.p.Name()
}
