// Package progress defines the progress-reporting capability used by the
// shortest-path engines and provides a few ready-made trackers.
//
// A Tracker receives begin/end events that bracket each named phase and a
// stream of unit counts while a phase runs. LogProgress is called from many
// goroutines at once; BeginSubTask and EndSubTask are only called by the
// driving goroutine.
package progress

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
)

// Tracker receives progress events.
type Tracker interface {
	BeginSubTask(name string)
	EndSubTask(name string)
	LogProgress(units int64)
}

// Noop discards every event.
type Noop struct{}

func (Noop) BeginSubTask(string) {}
func (Noop) EndSubTask(string)   {}
func (Noop) LogProgress(int64)   {}

// LogTracker writes phase boundaries to a logrus logger at debug level.
type LogTracker struct {
	log   logrus.FieldLogger
	task  string
	units atomic.Int64

	mu     sync.Mutex
	starts map[string]time.Time
}

// NewLogTracker returns a tracker logging under the given task name.
// A nil logger falls back to the logrus standard logger.
func NewLogTracker(log logrus.FieldLogger, task string) *LogTracker {
	if log == nil {
		log = logrus.StandardLogger()
	}

	return &LogTracker{
		log:    log.WithField("task", task),
		task:   task,
		starts: make(map[string]time.Time),
	}
}

// BeginSubTask records the start time of name and resets the unit counter.
func (t *LogTracker) BeginSubTask(name string) {
	t.mu.Lock()
	t.starts[name] = time.Now()
	t.mu.Unlock()
	t.units.Store(0)

	t.log.WithField("phase", name).Debug("phase started")
}

// EndSubTask logs the duration of name and the units reported since it began.
func (t *LogTracker) EndSubTask(name string) {
	t.mu.Lock()
	start, ok := t.starts[name]
	delete(t.starts, name)
	t.mu.Unlock()

	fields := logrus.Fields{
		"phase": name,
		"units": t.units.Load(),
	}
	if ok {
		fields["duration"] = time.Since(start)
	}
	t.log.WithFields(fields).Debug("phase finished")
}

// LogProgress adds units to the running counter.
func (t *LogTracker) LogProgress(units int64) {
	t.units.Add(units)
}

// Units returns the units reported since the last BeginSubTask.
func (t *LogTracker) Units() int64 { return t.units.Load() }

// multi fans events out to several trackers.
type multi []Tracker

// Multi returns a Tracker forwarding every event to each non-nil tracker in
// order. With no trackers it returns Noop.
func Multi(trackers ...Tracker) Tracker {
	var m multi
	for _, t := range trackers {
		if t != nil {
			m = append(m, t)
		}
	}
	switch len(m) {
	case 0:
		return Noop{}
	case 1:
		return m[0]
	}

	return m
}

func (m multi) BeginSubTask(name string) {
	for _, t := range m {
		t.BeginSubTask(name)
	}
}

func (m multi) EndSubTask(name string) {
	for _, t := range m {
		t.EndSubTask(name)
	}
}

func (m multi) LogProgress(units int64) {
	for _, t := range m {
		t.LogProgress(units)
	}
}
