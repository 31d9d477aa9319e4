package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/exp/slog"

	"medvault/internal/domain/record"
)

// Store holds the authoritative client-side set of medical records. Every
// mutation is mirrored to the durable slot store; if the mirror write fails
// the in-memory collection stays authoritative until the next mutation
// retries it. A single mutex serializes mutations so an in-flight import
// cannot race a concurrent delete.
type Store struct {
	storage  SlotStorage
	resolver Resolver
	log      *slog.Logger

	mu      sync.RWMutex
	records []*record.MedicalRecord
	loading bool
}

// NewStore loads the persisted snapshot and builds the store. A missing or
// unparseable snapshot is not an error: the store starts empty.
func NewStore(storage SlotStorage, resolver Resolver, log *slog.Logger) *Store {
	s := &Store{
		storage:  storage,
		resolver: resolver,
		log:      log.With("component", "record_store"),
		records:  make([]*record.MedicalRecord, 0),
	}

	data, err := storage.Get(SlotMedicalRecords)
	if err != nil {
		if err != ErrSlotNotFound {
			s.log.Warn("failed to read record snapshot", "error", err)
		}
		return s
	}

	var records []*record.MedicalRecord
	if err := json.Unmarshal(data, &records); err != nil {
		s.log.Warn("record snapshot unreadable, starting empty", "error", err)
		return s
	}

	s.records = records
	if s.records == nil {
		s.records = make([]*record.MedicalRecord, 0)
	}

	return s
}

// AddRecord resolves a content identifier and appends the resulting record
// to the collection. Duplicate identifiers are not deduplicated: importing
// the same reference twice yields two entries, which callers may use to
// represent re-imports. On resolution failure nothing is appended and the
// error names the failed reference.
func (s *Store) AddRecord(ctx context.Context, ref string) error {
	s.setLoading(true)
	defer s.setLoading(false)

	res, err := s.resolver.Resolve(ctx, ref)
	if err != nil {
		s.log.Error("failed to resolve record", "ref", ref, "error", err)
		return fmt.Errorf("resolve %s: %w", ref, ErrResolveFailed)
	}
	if !res.Success || res.Data == nil {
		s.log.Error("resolver reported failure", "ref", ref, "message", res.Message)
		return fmt.Errorf("resolve %s: %w", ref, ErrResolveFailed)
	}

	rec := record.NewFromData(ref, *res.Data)

	s.mu.Lock()
	s.records = append(s.records, rec)
	s.persistLocked()
	s.mu.Unlock()

	s.log.Info("record imported", "ref", ref, "type", rec.Type)
	return nil
}

// DeleteRecord removes every record with the given identifier. Removing an
// unknown identifier is a no-op. The store performs no authorization; any
// permission check belongs to the caller, before this point.
func (s *Store) DeleteRecord(id string) {
	s.mu.Lock()
	kept := s.records[:0]
	for _, rec := range s.records {
		if rec.ID != id {
			kept = append(kept, rec)
		}
	}
	removed := len(s.records) - len(kept)
	s.records = kept
	s.persistLocked()
	s.mu.Unlock()

	if removed > 0 {
		s.log.Info("record deleted", "id", id, "removed", removed)
	}
}

// Records returns the current collection in insertion order.
func (s *Store) Records() []*record.MedicalRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]*record.MedicalRecord(nil), s.records...)
}

// RecordsByPatient returns all records whose patient field equals the given
// identifier, in store order.
func (s *Store) RecordsByPatient(patientID string) []*record.MedicalRecord {
	return s.filter(func(rec *record.MedicalRecord) bool {
		return rec.PatientID == patientID
	})
}

// RecordsByDoctor returns all records whose doctor field equals the given
// identifier, in store order.
func (s *Store) RecordsByDoctor(doctorID string) []*record.MedicalRecord {
	return s.filter(func(rec *record.MedicalRecord) bool {
		return rec.DoctorID == doctorID
	})
}

// Search returns every record whose keyword projection contains all of the
// query's whitespace-separated terms as substrings. An empty or
// whitespace-only query returns the full collection.
func (s *Store) Search(query string) []*record.MedicalRecord {
	if strings.TrimSpace(query) == "" {
		return s.Records()
	}

	terms := strings.Fields(strings.ToLower(query))

	return s.filter(func(rec *record.MedicalRecord) bool {
		text := rec.SearchText()
		for _, term := range terms {
			if !strings.Contains(text, term) {
				return false
			}
		}
		return true
	})
}

// Len returns the number of records in the collection.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Loading reports whether an import is in flight.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *Store) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

func (s *Store) filter(keep func(*record.MedicalRecord) bool) []*record.MedicalRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*record.MedicalRecord, 0)
	for _, rec := range s.records {
		if keep(rec) {
			out = append(out, rec)
		}
	}
	return out
}

// persistLocked mirrors the current collection to durable storage. It runs
// under s.mu so snapshots reach the slot in mutation order; an overlapping
// import and delete can never leave a stale snapshot as the last write.
// Failures are logged and absorbed: the in-memory collection stays
// authoritative and the next mutation writes a fresh snapshot.
func (s *Store) persistLocked() {
	snapshot, err := json.Marshal(s.records)
	if err != nil {
		s.log.Error("failed to serialize record snapshot", "error", err)
		return
	}
	if err := s.storage.Put(SlotMedicalRecords, snapshot); err != nil {
		s.log.Warn("failed to persist record snapshot", "error", err)
	}
}
