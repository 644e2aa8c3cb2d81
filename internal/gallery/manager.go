package gallery

import (
	"fmt"
	"strings"
	"sync"

	json "github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/easelart/easel/internal/logging"
	"github.com/easelart/easel/internal/settings"
)

// MaxRecords is the gallery capacity. Adding a record to a full gallery
// evicts the oldest one and releases its image resource.
const MaxRecords = 12

// StateKey is the key the serialized gallery is stored under.
const StateKey = "recentImages"

// Repository persists the serialized gallery state.
// *store.Value satisfies this interface.
type Repository interface {
	Load() (string, bool)
	Save(value string) error
}

// Releaser frees the image resource behind a handle once no record
// references it. *store.BlobStore satisfies this interface.
type Releaser interface {
	Release(handle string) error
}

// Manager owns the rolling gallery of recent generations.
// All methods are safe for concurrent use.
type Manager struct {
	mu       sync.Mutex
	repo     Repository
	releaser Releaser
	records  []Record // Newest first
}

// NewManager creates a gallery backed by the given repository and releaser.
// Previously persisted state is loaded immediately; unreadable state is
// discarded with a warning rather than surfaced, so a corrupt file can
// never keep the application from starting.
func NewManager(repo Repository, releaser Releaser) *Manager {
	return &Manager{
		repo:     repo,
		releaser: releaser,
		records:  loadRecords(repo),
	}
}

func loadRecords(repo Repository) []Record {
	raw, ok := repo.Load()
	if !ok || raw == "" {
		return nil
	}

	var records []Record
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		logging.Warn("Discarding unreadable gallery state", zap.Error(err))
		return nil
	}

	// Hand-edited state files may exceed the capacity; the cap holds anyway.
	if len(records) > MaxRecords {
		records = records[:MaxRecords]
	}
	return records
}

// Add records a new generation at the head of the gallery. If the gallery
// is full the oldest record is evicted and its image resource released.
// The updated gallery is persisted before returning; on a persistence
// failure the in-memory gallery keeps the new record and the error is
// returned so callers can surface it.
func (m *Manager) Add(handle, prompt string, aspect settings.AspectRatio) (Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec := NewRecord(handle, prompt, aspect)
	m.records = append([]Record{rec}, m.records...)

	for len(m.records) > MaxRecords {
		evicted := m.records[len(m.records)-1]
		m.records = m.records[:len(m.records)-1]
		m.release(evicted)
		logging.LogGalleryEvent("evict", evicted.ID, len(m.records))
	}

	logging.LogGalleryEvent("add", rec.ID, len(m.records))
	return rec, m.persist()
}

// Delete removes the record with the given ID and releases its image
// resource. Deleting an ID that is not in the gallery is a no-op.
func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, rec := range m.records {
		if rec.ID == id {
			m.records = append(m.records[:i], m.records[i+1:]...)
			m.release(rec)
			logging.LogGalleryEvent("delete", id, len(m.records))
			return m.persist()
		}
	}
	return nil
}

// Clear removes every record and releases every image resource.
func (m *Manager) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.records) == 0 {
		return nil
	}

	for _, rec := range m.records {
		m.release(rec)
	}
	m.records = nil
	logging.LogGalleryEvent("clear", "", 0)
	return m.persist()
}

// Records returns the gallery contents, newest first.
func (m *Manager) Records() []Record {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]Record, len(m.records))
	copy(out, m.records)
	return out
}

// Len returns the number of records in the gallery.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.records)
}

// Get returns the record with the given ID.
func (m *Manager) Get(id string) (Record, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, rec := range m.records {
		if rec.ID == id {
			return rec, true
		}
	}
	return Record{}, false
}

// Find locates a record by full ID or by a unique ID prefix, so CLI
// commands can accept the short IDs shown in listings. An ambiguous or
// unknown prefix returns false.
func (m *Manager) Find(idOrPrefix string) (Record, bool) {
	if idOrPrefix == "" {
		return Record{}, false
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	var match Record
	matches := 0
	for _, rec := range m.records {
		if rec.ID == idOrPrefix {
			return rec, true
		}
		if strings.HasPrefix(rec.ID, idOrPrefix) {
			match = rec
			matches++
		}
	}
	if matches == 1 {
		return match, true
	}
	return Record{}, false
}

// release frees a record's image resource. Release failures are logged
// and swallowed: a stuck blob must not block gallery mutations.
func (m *Manager) release(rec Record) {
	if m.releaser == nil {
		return
	}
	if err := m.releaser.Release(rec.Handle); err != nil {
		logging.Warn("Failed to release image resource",
			zap.String("handle", rec.Handle),
			zap.Error(err))
	}
}

// persist serializes the full gallery and writes it through the
// repository. Callers hold m.mu.
func (m *Manager) persist() error {
	records := m.records
	if records == nil {
		records = []Record{}
	}

	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode gallery state: %w", err)
	}
	if err := m.repo.Save(string(data)); err != nil {
		return fmt.Errorf("failed to persist gallery state: %w", err)
	}
	return nil
}
