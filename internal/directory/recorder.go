package directory

import (
	"sync"

	"hr-directory/internal/models"
)

// Recorder receives an audit entry for every successful mutation and login.
type Recorder interface {
	Record(entry models.AuditLog) error
}

type nopRecorder struct{}

func (nopRecorder) Record(models.AuditLog) error { return nil }

// MemoryRecorder keeps audit entries in process memory.
type MemoryRecorder struct {
	mu      sync.Mutex
	entries []models.AuditLog
}

func NewMemoryRecorder() *MemoryRecorder {
	return &MemoryRecorder{}
}

func (r *MemoryRecorder) Record(entry models.AuditLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry)
	return nil
}

// Entries returns a copy of the recorded entries, oldest first.
func (r *MemoryRecorder) Entries() []models.AuditLog {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.AuditLog(nil), r.entries...)
}

// Actions returns the recorded action names, oldest first.
func (r *MemoryRecorder) Actions() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.Action
	}
	return out
}

// Recent returns up to limit entries, newest first.
func (r *MemoryRecorder) Recent(limit int) ([]models.AuditLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if limit < 0 {
		limit = 0
	}
	out := make([]models.AuditLog, 0, min(limit, len(r.entries)))
	for i := len(r.entries) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.entries[i])
	}
	return out, nil
}

// ForTarget returns the entries about one account of one directory
// instance, oldest first.
func (r *MemoryRecorder) ForTarget(instance string, id int) ([]models.AuditLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.AuditLog
	for _, e := range r.entries {
		if e.InstanceID == instance && e.TargetID != nil && *e.TargetID == id {
			out = append(out, e)
		}
	}
	return out, nil
}
