package shop

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"sync"
)

// Store owns the persisted book document and the single in-memory working
// copy.
//
// All access is serialized on the store's lock: every update reads the
// latest snapshot, transforms it, and has the result written back before
// the next update runs. That is the whole concurrency story; mutations
// themselves stay pure.
type Store struct {
	path string

	mu     sync.Mutex
	book   Book
	loaded bool
}

// OpenStore returns a store persisting the book at path. The file is not
// read until the first access.
func OpenStore(path string) *Store { return &Store{path: path} }

// Path returns the location of the persisted document.
func (s *Store) Path() string { return s.path }

// load reads, heals and caches the document. Callers hold mu.
func (s *Store) load() error {
	if s.loaded {
		return nil
	}
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, book does not exist, starting an empty book instead")
		s.book = NewBook()
		s.loaded = true
		return nil
	}
	if err != nil {
		return fmt.Errorf("could not read book file %q: %w", s.path, err)
	}
	book, changed := Migrate(data)
	if changed {
		// Write the healed document back right away so the next load is
		// clean even if no mutation follows.
		log.Printf("book file %q migrated to the current format", s.path)
		if err := s.save(book); err != nil {
			return err
		}
	}
	s.book = book
	s.loaded = true
	return nil
}

// save writes the canonical encoding of b to the book file. Callers hold
// mu.
func (s *Store) save(b Book) error {
	var buf bytes.Buffer
	if err := ExportBook(&buf, b); err != nil {
		return err
	}
	if err := os.WriteFile(s.path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("could not write book file %q: %w", s.path, err)
	}
	return nil
}

// Book returns the current snapshot, loading the file on first use.
func (s *Store) Book() (Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.load(); err != nil {
		return Book{}, err
	}
	return s.book, nil
}

// Update applies fn to the latest snapshot and persists its result. When fn
// returns an error neither the snapshot nor the file changes.
func (s *Store) Update(fn func(Book) (Book, error)) (Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.load(); err != nil {
		return Book{}, err
	}
	next, err := fn(s.book)
	if err != nil {
		return Book{}, err
	}
	next = next.Sanitized()
	if err := s.save(next); err != nil {
		return Book{}, err
	}
	s.book = next
	return next, nil
}

// Replace overwrites the whole document. This is the import path's
// full-overwrite contract; everything else goes through Update.
func (s *Store) Replace(b Book) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	b = b.Sanitized()
	if err := s.save(b); err != nil {
		return err
	}
	s.book = b
	s.loaded = true
	return nil
}
