package tracker

import (
	"math"
	"slices"
	"time"

	"github.com/Wagomu056/time-tracker-core/errors"
	"github.com/Wagomu056/time-tracker-core/logger"
	"github.com/Wagomu056/time-tracker-core/tracker/store"
)

// Clock abstracts time.Now to allow injection of real vs fake implementations.
// Timestamp handling, including the backwards-clock guard in EndTask, can be
// validated deterministically in unit tests this way.
type Clock interface {
	Now() time.Time
}

// realClock is the production implementation of Clock.
// It delegates directly to time.Now.
type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// Task represents one timed unit of work. Both timestamps are set to the
// creation time; StartTime is rewritten when the task starts and EndTime
// when it ends.
type Task struct {
	ID        uint32
	Name      string
	StartTime time.Time
	EndTime   time.Time
}

// Tracker owns the task registry, the set of running task ids, and the
// persistence targets. It assigns sequential ids starting from the value
// loaded out of the counter store, so ids stay unique across restarts when
// a file-backed counter is used.
//
// A Tracker is not safe for concurrent use; every operation runs to
// completion before the next is invoked.
type Tracker struct {
	currentID uint32
	tasks     map[uint32]Task
	running   []uint32
	log       store.RecordLog
	counter   store.CounterStore
	logger    *logger.Logger
	clock     Clock
}

// New constructs a Tracker on top of the given record log and counter store.
// The persisted counter is read once here; a counter that cannot be read or
// parsed is a fatal condition because continuing would reuse ids.
func New(log store.RecordLog, counter store.CounterStore, lg *logger.Logger) (*Tracker, error) {
	return NewWithClock(log, counter, lg, realClock{})
}

// NewWithClock is New with an explicit time source.
func NewWithClock(log store.RecordLog, counter store.CounterStore, lg *logger.Logger, clock Clock) (*Tracker, error) {
	next, err := counter.Load()
	if err != nil {
		return nil, errors.NewCacheError("failed to load id counter", map[string]any{
			"error": err.Error(),
		})
	}

	return &Tracker{
		currentID: next,
		tasks:     make(map[uint32]Task),
		running:   nil,
		log:       log,
		counter:   counter,
		logger:    lg,
		clock:     clock,
	}, nil
}

// NewTask allocates the next id and registers a task under the given name.
// The task is not running yet. The advanced counter is persisted before
// returning; if that write fails the in-memory allocation stands and the id
// is returned together with a fatal cache error, leaving the halt-or-continue
// decision to the caller.
func (t *Tracker) NewTask(name string) (uint32, error) {
	if t.currentID == math.MaxUint32 {
		// Advancing past this point would wrap the counter to 0 and reuse ids.
		return 0, errors.NewCacheError("task id space exhausted", map[string]any{
			"next_id": t.currentID,
		})
	}

	now := t.clock.Now()
	id := t.currentID

	t.tasks[id] = Task{
		ID:        id,
		Name:      name,
		StartTime: now,
		EndTime:   now,
	}
	t.currentID++

	if err := t.counter.Save(t.currentID); err != nil {
		return id, errors.NewCacheError("failed to persist id counter", map[string]any{
			"error":   err.Error(),
			"next_id": t.currentID,
		})
	}

	t.logger.Task("task created", id, map[string]any{
		"task_name": name,
	})

	return id, nil
}

// TaskCount returns the number of tasks ever created in this process,
// regardless of their running or ended state.
func (t *Tracker) TaskCount() int {
	return len(t.tasks)
}

// NextID returns the id the next created task would receive.
func (t *Tracker) NextID() uint32 {
	return t.currentID
}

// StartTask transitions a task into the running set and resets its start
// time. It returns false for an unknown id and for a task that is already
// running; a double start is an expected rejection, not an error.
func (t *Tracker) StartTask(id uint32) bool {
	if t.isRunning(id) {
		return false
	}

	task, ok := t.tasks[id]
	if !ok {
		return false
	}

	task.StartTime = t.clock.Now()
	t.tasks[id] = task
	t.running = append(t.running, id)

	t.logger.Task("task started", id, map[string]any{
		"task_name": task.Name,
	})

	return true
}

// EndTask transitions a running task to ended and returns its elapsed
// duration. It returns ok=false when the task is not currently running,
// which covers unknown ids, tasks never started, and tasks already ended.
//
// The completed record is appended to the record log best-effort: a write
// failure is logged but the task is still considered ended and the duration
// is still returned. A wall clock that moved backwards between start and end
// yields a zero duration and an ERROR log entry instead of a negative value.
func (t *Tracker) EndTask(id uint32) (time.Duration, bool) {
	if !t.isRunning(id) {
		return 0, false
	}

	// Running ids are always registered; StartTask checks the registry.
	task := t.tasks[id]
	task.EndTime = t.clock.Now()
	t.tasks[id] = task
	t.running = slices.DeleteFunc(t.running, func(x uint32) bool { return x == id })

	elapsed := task.EndTime.Sub(task.StartTime)
	if elapsed < 0 {
		clockErr := errors.NewClockError("wall clock moved backwards during task", map[string]any{
			"start_time": task.StartTime.Unix(),
			"end_time":   task.EndTime.Unix(),
		})
		t.logger.Error(clockErr.Error(), map[string]any{
			"task_id": id,
			"details": clockErr.Details,
		})
		elapsed = 0
	}

	if err := t.log.Append(store.Record{
		ID:    task.ID,
		Name:  task.Name,
		Start: task.StartTime,
		End:   task.EndTime,
	}); err != nil {
		// The task is ended either way; persistence is best-effort here.
		persistErr := errors.NewPersistenceError("failed to append task record", map[string]any{
			"error": err.Error(),
		})
		t.logger.Error(persistErr.Error(), map[string]any{
			"task_id": id,
			"details": persistErr.Details,
		})
	}

	t.logger.Task("task ended", id, map[string]any{
		"task_name":   task.Name,
		"duration_ns": elapsed.Nanoseconds(),
	})

	return elapsed, true
}

// Reset clears the save file, the cache file, and the in-memory id counter.
// Missing files are fine. The registry itself is untouched; already created
// tasks keep their ids for the rest of the process lifetime.
func (t *Tracker) Reset() error {
	if err := t.log.Clear(); err != nil {
		return errors.NewPersistenceError("failed to clear save file", map[string]any{
			"error": err.Error(),
		})
	}
	if err := t.counter.Clear(); err != nil {
		return errors.NewCacheError("failed to clear id counter", map[string]any{
			"error": err.Error(),
		})
	}

	t.currentID = 0
	return nil
}

func (t *Tracker) isRunning(id uint32) bool {
	return slices.Contains(t.running, id)
}
