package store

import "time"

// Record is one completed task as written to the save file.
type Record struct {
	ID    uint32
	Name  string
	Start time.Time
	End   time.Time
}

// RecordLog defines the contract for the append-only log of completed tasks.
type RecordLog interface {
	Append(rec Record) error
	Clear() error
}

// CounterStore defines the contract for the persisted next-id counter.
// Load returns 0 when no counter has ever been saved.
type CounterStore interface {
	Load() (uint32, error)
	Save(next uint32) error
	Clear() error
}
