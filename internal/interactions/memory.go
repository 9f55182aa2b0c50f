package interactions

import (
	"context"
	"sync"

	"github.com/Ranatar/philosophical-concepts-service/pkg/models"
)

// MemoryRecorder keeps records in memory. Used in tests and when no
// database is configured.
type MemoryRecorder struct {
	mu      sync.Mutex
	records []models.InteractionRecord
}

func NewMemoryRecorder() *MemoryRecorder {
	return &MemoryRecorder{}
}

func (m *MemoryRecorder) Append(_ context.Context, rec models.InteractionRecord) error {
	m.mu.Lock()
	m.records = append(m.records, rec)
	m.mu.Unlock()
	return nil
}

// Records returns a copy of everything appended so far.
func (m *MemoryRecorder) Records() []models.InteractionRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.InteractionRecord, len(m.records))
	copy(out, m.records)
	return out
}
