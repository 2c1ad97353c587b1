// Package store persists completed screening records to a local JSON
// collection, keyed by a pseudonymous candidate id derived from the email.
package store

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/talentscout/screening-assistant/internal/candidate"
)

const (
	candidatesFile = "candidates.json"

	// StatusScreeningCompleted is the only terminal status the conversation
	// flow produces.
	StatusScreeningCompleted = "screening_completed"
)

// Entry is the persisted projection of a completed screening record.
type Entry struct {
	candidate.Record

	CandidateID         string    `json:"candidate_id"`
	ConsentTimestamp    time.Time `json:"consent_timestamp"`
	DataRetentionUntil  time.Time `json:"data_retention_until"`
	SubmissionTimestamp time.Time `json:"submission_timestamp"`
	Status              string    `json:"status"`
}

type document struct {
	Candidates []*Entry `json:"candidates"`
	Metadata   metadata `json:"metadata"`
}

type metadata struct {
	CreatedAt       time.Time `json:"created_at"`
	TotalCandidates int       `json:"total_candidates"`
	LastUpdated     time.Time `json:"last_updated"`
}

// Store is a JSON-file backed collection of screening entries. It is shared
// across sessions, so every read-modify-write cycle holds the mutex.
type Store struct {
	mu     sync.Mutex
	path   string
	logger *zap.Logger

	retentionMonths int
	now             func() time.Time
}

// Option adjusts Store construction.
type Option func(*Store)

// WithRetentionMonths overrides the default 12 month retention window.
func WithRetentionMonths(months int) Option {
	return func(s *Store) {
		if months > 0 {
			s.retentionMonths = months
		}
	}
}

// WithClock injects the time source, used by tests for deterministic
// timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New creates a store under dataDir, initializing the directory and an empty
// collection on first use.
func New(dataDir string, logger *zap.Logger, opts ...Option) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Store{
		path:            filepath.Join(dataDir, candidatesFile),
		logger:          logger,
		retentionMonths: 12,
		now:             time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory %q: %w", dataDir, err)
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		now := s.now()
		doc := &document{
			Candidates: []*Entry{},
			Metadata:   metadata{CreatedAt: now, LastUpdated: now},
		}
		if err := s.write(doc); err != nil {
			return nil, fmt.Errorf("initializing storage: %w", err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("checking storage file: %w", err)
	}

	return s, nil
}

// CandidateID derives the pseudonymous lookup key for an email. An absent
// email hashes the empty string. The hash is one-way but reversible by brute
// force over known emails, so it is not true anonymization.
func CandidateID(email string) string {
	sum := sha256.Sum256([]byte(email))
	return hex.EncodeToString(sum[:])
}

// Save appends the record to the collection and returns the candidate id.
// Duplicate submissions for the same email are never merged or deduplicated.
func (s *Store) Save(rec *candidate.Record) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return "", err
	}

	now := s.now()
	entry := &Entry{
		Record:              *rec,
		CandidateID:         CandidateID(rec.Email),
		ConsentTimestamp:    now,
		DataRetentionUntil:  now.AddDate(0, 0, s.retentionMonths*30),
		SubmissionTimestamp: now,
		Status:              StatusScreeningCompleted,
	}

	doc.Candidates = append(doc.Candidates, entry)
	doc.Metadata.TotalCandidates = len(doc.Candidates)
	doc.Metadata.LastUpdated = now

	if err := s.write(doc); err != nil {
		return "", err
	}

	s.logger.Info("candidate record saved",
		zap.String("candidate_id", entry.CandidateID),
		zap.Int("total_candidates", doc.Metadata.TotalCandidates),
	)

	return entry.CandidateID, nil
}

// FindByEmail returns the first entry matching the email's candidate id, or
// nil when no entry matches.
func (s *Store) FindByEmail(email string) (*Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return nil, err
	}

	id := CandidateID(email)
	for _, entry := range doc.Candidates {
		if entry.CandidateID == id {
			return entry, nil
		}
	}
	return nil, nil
}

// ListAll returns every persisted entry in submission order.
func (s *Store) ListAll() ([]*Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return nil, err
	}
	return doc.Candidates, nil
}

// DeleteByEmail removes every entry sharing the email's candidate id and
// reports how many were removed. Used for right-to-erasure requests.
func (s *Store) DeleteByEmail(email string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return 0, err
	}

	id := CandidateID(email)
	kept := make([]*Entry, 0, len(doc.Candidates))
	for _, entry := range doc.Candidates {
		if entry.CandidateID != id {
			kept = append(kept, entry)
		}
	}

	removed := len(doc.Candidates) - len(kept)
	if removed == 0 {
		return 0, nil
	}

	doc.Candidates = kept
	doc.Metadata.TotalCandidates = len(kept)
	doc.Metadata.LastUpdated = s.now()

	if err := s.write(doc); err != nil {
		return 0, err
	}

	s.logger.Info("candidate records deleted",
		zap.String("candidate_id", id),
		zap.Int("removed", removed),
	)

	return removed, nil
}

func (s *Store) read() (*document, error) {
	file, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("opening storage file: %w", err)
	}
	defer file.Close()

	var doc document
	if err := json.NewDecoder(file).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding storage file %q: %w", s.path, err)
	}
	if doc.Candidates == nil {
		doc.Candidates = []*Entry{}
	}
	return &doc, nil
}

// write lands the document through a temp file and rename so a crash mid-write
// cannot truncate the collection.
func (s *Store) write(doc *document) error {
	tmp, err := os.CreateTemp(filepath.Dir(s.path), "candidates_*.json")
	if err != nil {
		return fmt.Errorf("creating temp storage file: %w", err)
	}

	enc := json.NewEncoder(tmp)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("encoding storage file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("closing temp storage file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replacing storage file: %w", err)
	}
	return nil
}
