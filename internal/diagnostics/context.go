package diagnostics

import "sync"

// Recorder is a thread-safe, append-only sink for diagnostic entries
// produced while decoding. The decoder never blocks or aborts on a Recorder
// write; recording is purely observational.
//
// Create a Recorder exclusively through NewRecorder(). A single Recorder may
// be shared across many calls to decoder.Read, including concurrent ones
// over disjoint buffers (see the decoder's concurrency model).
type Recorder struct {
	stage   string   // Current decoding stage.
	entries []*Entry // Recorded entries in insertion order.
	mu      sync.Mutex
}

// NewRecorder returns an empty Recorder with no active stage.
func NewRecorder() *Recorder {
	return &Recorder{entries: make([]*Entry, 0)}
}

// SetStage sets the current decoding stage. Subsequent entries are tagged
// with this stage until it is changed again.
func (r *Recorder) SetStage(name string) {
	r.mu.Lock()
	r.stage = name
	r.mu.Unlock()
}

// Stage returns the current decoding stage name.
func (r *Recorder) Stage() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stage
}

func (r *Recorder) record(severity string, location Location, message string) *Entry {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry := &Entry{
		severity: severity,
		stage:    r.stage,
		message:  message,
		location: location,
	}
	r.entries = append(r.entries, entry)
	return entry
}

// Warning records an entry with severity "warning" and returns the *Entry
// for optional chaining (WithHint). This is the hook the operand resolver
// uses for a recognised-but-unsupported operand kind.
func (r *Recorder) Warning(location Location, message string) *Entry {
	return r.record(SeverityWarning, location, message)
}

// Error records an entry with severity "error".
func (r *Recorder) Error(location Location, message string) *Entry {
	return r.record(SeverityError, location, message)
}

// Info records an entry with severity "info".
func (r *Recorder) Info(location Location, message string) *Entry {
	return r.record(SeverityInfo, location, message)
}

// Entries returns all recorded entries in insertion order.
func (r *Recorder) Entries() []*Entry {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]*Entry, len(r.entries))
	copy(result, r.entries)
	return result
}

// Warnings returns only entries with severity "warning".
func (r *Recorder) Warnings() []*Entry {
	return r.filter(SeverityWarning)
}

// Count returns the total number of entries.
func (r *Recorder) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

func (r *Recorder) filter(severity string) []*Entry {
	r.mu.Lock()
	defer r.mu.Unlock()

	var result []*Entry
	for _, e := range r.entries {
		if e.severity == severity {
			result = append(result, e)
		}
	}
	return result
}
