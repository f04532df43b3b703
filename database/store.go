package database

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"profitpilot/models"
	"profitpilot/utils"
)

// Store persists the booking state as a single JSON document, read fully on
// each operation and rewritten fully on each mutation. A single-writer
// mutex forms the transaction boundary: check+reserve and record creation
// run inside one Update closure, so concurrent requests cannot double-book
// a slot.
type Store struct {
	path string
	mu   sync.Mutex
}

// New returns a store backed by the given file path. The file is created
// with defaults on first Update/View.
func New(path string) *Store {
	return &Store{path: path}
}

// View runs fn against a loaded copy of the document without persisting.
func (s *Store) View(fn func(*Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}
	return fn(doc)
}

// Update runs fn against the document and persists the result if fn
// succeeds. A failing fn discards every mutation it made, which is what
// rolls a slot reservation back when record creation fails.
func (s *Store) Update(fn func(*Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}
	if err := fn(doc); err != nil {
		return err
	}
	return s.persist(doc)
}

func (s *Store) load() (*Document, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewDocument(), nil
	}
	if err != nil {
		return nil, utils.NewStorageError("failed to read data file", err)
	}

	doc := NewDocument()
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, utils.NewStorageError("failed to decode data file", err)
	}
	if doc.Availability == nil {
		doc.Availability = models.AvailabilityMap{}
	}
	return doc, nil
}

func (s *Store) persist(doc *Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return utils.NewStorageError("failed to encode data file", err)
	}

	// Write-then-rename so a crash mid-write cannot truncate the document.
	tmp := s.path + ".tmp"
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return utils.NewStorageError("failed to create data directory", err)
		}
	}
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return utils.NewStorageError("failed to write data file", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return utils.NewStorageError("failed to replace data file", err)
	}
	return nil
}
