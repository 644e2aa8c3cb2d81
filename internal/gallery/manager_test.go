package gallery

import (
	"fmt"
	"strings"
	"testing"

	json "github.com/goccy/go-json"

	"github.com/easelart/easel/internal/settings"
)

// memRepo is an in-memory Repository for tests.
type memRepo struct {
	value string
	ok    bool
	fail  bool
	saves int
}

func (m *memRepo) Load() (string, bool) { return m.value, m.ok }

func (m *memRepo) Save(value string) error {
	if m.fail {
		return fmt.Errorf("disk full")
	}
	m.value = value
	m.ok = true
	m.saves++
	return nil
}

// memReleaser records released handles.
type memReleaser struct {
	released []string
	fail     bool
}

func (m *memReleaser) Release(handle string) error {
	if m.fail {
		return fmt.Errorf("cannot remove file")
	}
	m.released = append(m.released, handle)
	return nil
}

func newTestManager() (*Manager, *memRepo, *memReleaser) {
	repo := &memRepo{}
	releaser := &memReleaser{}
	return NewManager(repo, releaser), repo, releaser
}

func TestNewManagerEmpty(t *testing.T) {
	mgr, _, _ := newTestManager()

	if mgr.Len() != 0 {
		t.Errorf("Len() = %d, want 0 for a fresh gallery", mgr.Len())
	}
	if records := mgr.Records(); len(records) != 0 {
		t.Errorf("Records() returned %d records, want 0", len(records))
	}
}

func TestAddInsertsAtHead(t *testing.T) {
	mgr, _, _ := newTestManager()

	for i := 1; i <= 3; i++ {
		if _, err := mgr.Add(fmt.Sprintf("img-%d.png", i), fmt.Sprintf("prompt %d", i), settings.AspectRatio1x1); err != nil {
			t.Fatalf("Add() error = %v", err)
		}
	}

	records := mgr.Records()
	if len(records) != 3 {
		t.Fatalf("Len() = %d, want 3", len(records))
	}
	if records[0].Prompt != "prompt 3" {
		t.Errorf("Records()[0].Prompt = %q, want the newest prompt", records[0].Prompt)
	}
	if records[2].Prompt != "prompt 1" {
		t.Errorf("Records()[2].Prompt = %q, want the oldest prompt", records[2].Prompt)
	}
}

func TestAddAssignsUniqueIDs(t *testing.T) {
	mgr, _, _ := newTestManager()

	seen := make(map[string]bool)
	for i := 0; i < 5; i++ {
		rec, err := mgr.Add("img.png", "prompt", settings.AspectRatio1x1)
		if err != nil {
			t.Fatalf("Add() error = %v", err)
		}
		if rec.ID == "" {
			t.Fatal("Add() assigned an empty ID")
		}
		if seen[rec.ID] {
			t.Errorf("Add() repeated ID %s", rec.ID)
		}
		seen[rec.ID] = true
	}
}

func TestCapEvictsOldest(t *testing.T) {
	mgr, _, releaser := newTestManager()

	var first Record
	for i := 1; i <= MaxRecords+1; i++ {
		rec, err := mgr.Add(fmt.Sprintf("img-%d.png", i), fmt.Sprintf("prompt %d", i), settings.AspectRatio16x9)
		if err != nil {
			t.Fatalf("Add() error = %v", err)
		}
		if i == 1 {
			first = rec
		}
	}

	if mgr.Len() != MaxRecords {
		t.Errorf("Len() = %d, want %d after overflow", mgr.Len(), MaxRecords)
	}

	if _, found := mgr.Get(first.ID); found {
		t.Error("oldest record should have been evicted")
	}

	if len(releaser.released) != 1 {
		t.Fatalf("released %d handles, want 1", len(releaser.released))
	}
	if releaser.released[0] != "img-1.png" {
		t.Errorf("released handle = %s, want img-1.png", releaser.released[0])
	}

	// The survivors are the 12 newest, still newest first.
	records := mgr.Records()
	if records[0].Prompt != fmt.Sprintf("prompt %d", MaxRecords+1) {
		t.Errorf("head prompt = %q, want the newest", records[0].Prompt)
	}
	if records[len(records)-1].Prompt != "prompt 2" {
		t.Errorf("tail prompt = %q, want prompt 2", records[len(records)-1].Prompt)
	}
}

func TestAddPersistsWriteThrough(t *testing.T) {
	mgr, repo, _ := newTestManager()

	for i := 1; i <= 3; i++ {
		if _, err := mgr.Add("img.png", fmt.Sprintf("prompt %d", i), settings.AspectRatio1x1); err != nil {
			t.Fatalf("Add() error = %v", err)
		}

		if repo.saves != i {
			t.Errorf("after %d adds repo saw %d saves, want %d", i, repo.saves, i)
		}

		var persisted []Record
		if err := json.Unmarshal([]byte(repo.value), &persisted); err != nil {
			t.Fatalf("persisted state is not valid JSON: %v", err)
		}
		if len(persisted) != i {
			t.Errorf("persisted %d records, want %d", len(persisted), i)
		}
	}
}

func TestDeleteRemovesAndReleases(t *testing.T) {
	mgr, repo, releaser := newTestManager()

	rec, err := mgr.Add("img-del.png", "doomed", settings.AspectRatio1x1)
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if _, err := mgr.Add("img-keep.png", "kept", settings.AspectRatio1x1); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	if err := mgr.Delete(rec.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	if mgr.Len() != 1 {
		t.Errorf("Len() = %d, want 1", mgr.Len())
	}
	if _, found := mgr.Get(rec.ID); found {
		t.Error("deleted record still present")
	}
	if len(releaser.released) != 1 || releaser.released[0] != "img-del.png" {
		t.Errorf("released = %v, want [img-del.png]", releaser.released)
	}

	if !strings.Contains(repo.value, "img-keep.png") {
		t.Error("persisted state should still contain the surviving record")
	}
	if strings.Contains(repo.value, "img-del.png") {
		t.Error("persisted state should not contain the deleted record")
	}
}

func TestDeleteMissingIsNoOp(t *testing.T) {
	mgr, repo, releaser := newTestManager()

	if _, err := mgr.Add("img.png", "prompt", settings.AspectRatio1x1); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	savesBefore := repo.saves

	if err := mgr.Delete("no-such-id"); err != nil {
		t.Errorf("Delete() of unknown ID should be a no-op, got error %v", err)
	}

	if mgr.Len() != 1 {
		t.Errorf("Len() = %d, want 1", mgr.Len())
	}
	if repo.saves != savesBefore {
		t.Error("Delete() of unknown ID should not rewrite state")
	}
	if len(releaser.released) != 0 {
		t.Errorf("Delete() of unknown ID released %v", releaser.released)
	}
}

func TestClearReleasesEverything(t *testing.T) {
	mgr, repo, releaser := newTestManager()

	for i := 1; i <= 4; i++ {
		if _, err := mgr.Add(fmt.Sprintf("img-%d.png", i), "prompt", settings.AspectRatio1x1); err != nil {
			t.Fatalf("Add() error = %v", err)
		}
	}

	if err := mgr.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}

	if mgr.Len() != 0 {
		t.Errorf("Len() = %d, want 0 after Clear", mgr.Len())
	}
	if len(releaser.released) != 4 {
		t.Errorf("released %d handles, want 4", len(releaser.released))
	}
	if repo.value != "[]" {
		t.Errorf("persisted state = %q, want empty array", repo.value)
	}

	// Clearing an already empty gallery changes nothing.
	savesBefore := repo.saves
	if err := mgr.Clear(); err != nil {
		t.Errorf("Clear() on empty gallery error = %v", err)
	}
	if repo.saves != savesBefore {
		t.Error("Clear() on empty gallery should not rewrite state")
	}
}

func TestLoadRoundTrip(t *testing.T) {
	repo := &memRepo{}
	mgr := NewManager(repo, &memReleaser{})

	want, err := mgr.Add("img-rt.png", "round trip", settings.AspectRatio9x16)
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	// A second manager over the same repository sees the same gallery.
	reloaded := NewManager(repo, &memReleaser{})
	records := reloaded.Records()
	if len(records) != 1 {
		t.Fatalf("reloaded gallery has %d records, want 1", len(records))
	}

	got := records[0]
	if got.ID != want.ID {
		t.Errorf("ID = %s, want %s", got.ID, want.ID)
	}
	if got.Handle != want.Handle {
		t.Errorf("Handle = %s, want %s", got.Handle, want.Handle)
	}
	if got.Prompt != want.Prompt {
		t.Errorf("Prompt = %q, want %q", got.Prompt, want.Prompt)
	}
	if got.AspectRatio != want.AspectRatio {
		t.Errorf("AspectRatio = %s, want %s", got.AspectRatio, want.AspectRatio)
	}
	if !got.CreatedAt.Equal(want.CreatedAt) {
		t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, want.CreatedAt)
	}
}

func TestLoadStateFieldNames(t *testing.T) {
	repo := &memRepo{}
	mgr := NewManager(repo, &memReleaser{})

	if _, err := mgr.Add("img.png", "prompt", settings.AspectRatio1x1); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	for _, field := range []string{`"id"`, `"resourceHandle"`, `"prompt"`, `"createdAt"`, `"aspectRatio"`} {
		if !strings.Contains(repo.value, field) {
			t.Errorf("persisted state missing field %s\nGot: %s", field, repo.value)
		}
	}
}

func TestLoadCorruptStateStartsEmpty(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"not JSON", "{definitely not json"},
		{"wrong shape", `{"id":"x"}`},
		{"empty string", ""},
		{"null", "null"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &memRepo{value: tt.value, ok: true}
			mgr := NewManager(repo, &memReleaser{})

			if mgr.Len() != 0 {
				t.Errorf("Len() = %d, want 0 for unusable state", mgr.Len())
			}
		})
	}
}

func TestLoadTrimsOversizedState(t *testing.T) {
	var oversized []Record
	for i := 0; i < MaxRecords+5; i++ {
		oversized = append(oversized, Record{ID: fmt.Sprintf("id-%d", i), Handle: "img.png"})
	}
	data, err := json.Marshal(oversized)
	if err != nil {
		t.Fatalf("failed to build fixture: %v", err)
	}

	repo := &memRepo{value: string(data), ok: true}
	mgr := NewManager(repo, &memReleaser{})

	if mgr.Len() != MaxRecords {
		t.Errorf("Len() = %d, want %d", mgr.Len(), MaxRecords)
	}
}

func TestSaveFailureKeepsMemoryState(t *testing.T) {
	repo := &memRepo{fail: true}
	mgr := NewManager(repo, &memReleaser{})

	rec, err := mgr.Add("img.png", "prompt", settings.AspectRatio1x1)
	if err == nil {
		t.Fatal("Add() should surface the persistence failure")
	}

	// The record is still usable for this session.
	if _, found := mgr.Get(rec.ID); !found {
		t.Error("record should remain in memory when persistence fails")
	}
}

func TestReleaseFailureDoesNotBlockMutation(t *testing.T) {
	repo := &memRepo{}
	releaser := &memReleaser{fail: true}
	mgr := NewManager(repo, releaser)

	rec, err := mgr.Add("img.png", "prompt", settings.AspectRatio1x1)
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	if err := mgr.Delete(rec.ID); err != nil {
		t.Errorf("Delete() error = %v, release failures should not surface", err)
	}
	if mgr.Len() != 0 {
		t.Errorf("Len() = %d, want 0", mgr.Len())
	}
}

func TestFind(t *testing.T) {
	mgr, _, _ := newTestManager()

	rec, err := mgr.Add("img.png", "prompt", settings.AspectRatio1x1)
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	if got, found := mgr.Find(rec.ID); !found || got.ID != rec.ID {
		t.Error("Find() should match a full ID")
	}
	if got, found := mgr.Find(rec.ID[:8]); !found || got.ID != rec.ID {
		t.Error("Find() should match a unique prefix")
	}
	if _, found := mgr.Find("zzzz"); found {
		t.Error("Find() should not match an unknown prefix")
	}
	if _, found := mgr.Find(""); found {
		t.Error("Find() should not match an empty prefix")
	}
}

func BenchmarkAdd(b *testing.B) {
	mgr := NewManager(&memRepo{}, &memReleaser{})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = mgr.Add("img.png", "a lighthouse in a storm", settings.AspectRatio16x9)
	}
}
