package store

// Compile-time checks to ensure the memory stores implement their interfaces
var _ RecordLog = (*MemoryRecordLog)(nil)
var _ CounterStore = (*MemoryCounterStore)(nil)

// MemoryRecordLog keeps completed task records in memory. It backs the
// non-persistent tracker configuration and is the default test double.
type MemoryRecordLog struct {
	records []Record
}

// NewMemoryRecordLog creates and initializes a new MemoryRecordLog.
func NewMemoryRecordLog() *MemoryRecordLog {
	return &MemoryRecordLog{}
}

// Append stores the record in memory.
func (l *MemoryRecordLog) Append(rec Record) error {
	l.records = append(l.records, rec)
	return nil
}

// Clear drops all stored records.
func (l *MemoryRecordLog) Clear() error {
	l.records = nil
	return nil
}

// Records returns a copy of the stored records to prevent external callers
// from mutating the log's internal state.
func (l *MemoryRecordLog) Records() []Record {
	out := make([]Record, len(l.records))
	copy(out, l.records)
	return out
}

// MemoryCounterStore keeps the next-id counter in memory only; ids restart
// at 0 with every process, matching the tracker variants without a cache file.
type MemoryCounterStore struct {
	next uint32
}

// NewMemoryCounterStore creates and initializes a new MemoryCounterStore.
func NewMemoryCounterStore() *MemoryCounterStore {
	return &MemoryCounterStore{}
}

// Load returns the last saved counter value, 0 if none was saved.
func (s *MemoryCounterStore) Load() (uint32, error) {
	return s.next, nil
}

// Save records the counter value.
func (s *MemoryCounterStore) Save(next uint32) error {
	s.next = next
	return nil
}

// Clear resets the counter to 0.
func (s *MemoryCounterStore) Clear() error {
	s.next = 0
	return nil
}
