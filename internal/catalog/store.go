// Package catalog persists class-registry snapshots to a local SQLite
// database and compares them across runs. A class that disappears or
// changes base between two builds is exactly what makes previously
// stored data unreadable; diffing snapshots surfaces that before any
// data is touched.
// See docs/ARCHITECTURE § Catalog Store.
package catalog

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/lineage/pkg/rtti"
)

// Store lifecycle and lookup errors.
var (
	ErrAlreadyOpen      = errors.New("catalog store is already open")
	ErrClosed           = errors.New("catalog store is closed")
	ErrSnapshotNotFound = errors.New("snapshot not found")
)

// catalogFile is the database file name inside the data directory.
const catalogFile = "catalog.db"

// Snapshot is one recorded registry state.
type Snapshot struct {
	SnapshotID string    `json:"snapshot_id"`
	CreatedAt  time.Time `json:"created_at"`
	ClassCount int       `json:"class_count"`
}

// Class is one registered class inside a snapshot.
type Class struct {
	Name          string `json:"name"`
	Base          string `json:"base,omitempty"` // empty for root classes
	Constructible bool   `json:"constructible"`
}

// Store records and reads registry snapshots in <dataDir>/catalog.db.
// Open before use; Close releases the database. Safe for concurrent use.
type Store struct {
	mu   sync.RWMutex
	open bool
	db   *sql.DB
}

// NewStore creates a catalog store. The store is not open; call Open
// with a data directory.
func NewStore() *Store {
	return &Store{}
}

// Open creates dataDir if needed, opens the catalog database, and
// ensures the schema. Returns ErrAlreadyOpen when called while open.
func (s *Store) Open(dataDir string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.open {
		return ErrAlreadyOpen
	}

	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", filepath.Join(dataDir, catalogFile))
	if err != nil {
		return err
	}

	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return fmt.Errorf("ensure schema: %w", err)
		}
	}

	s.db = db
	s.open = true
	return nil
}

// Close releases the database. Idempotent: closing a closed store
// succeeds.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return nil
	}
	s.open = false
	err := s.db.Close()
	s.db = nil
	return err
}

// newUUID generates a UUID v7 string.
func newUUID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// Record writes the current contents of reg as a new snapshot and
// returns it. Classes are stored in registry enumeration order.
func (s *Store) Record(reg *rtti.Registry) (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return nil, ErrClosed
	}

	snap := &Snapshot{
		SnapshotID: newUUID(),
		CreatedAt:  time.Now().UTC(),
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, err
	}

	position := 0
	for d := range reg.All() {
		base := ""
		if b := d.Base(); b != nil {
			base = b.Name()
		}
		constructible := 0
		if d.Constructible() {
			constructible = 1
		}
		_, err := tx.Exec(
			`INSERT INTO snapshot_classes (snapshot_id, name, base, constructible, position)
             VALUES (?, ?, ?, ?, ?)`,
			snap.SnapshotID, d.Name(), base, constructible, position,
		)
		if err != nil {
			tx.Rollback()
			return nil, fmt.Errorf("insert class %q: %w", d.Name(), err)
		}
		position++
	}
	snap.ClassCount = position

	_, err = tx.Exec(
		`INSERT INTO snapshots (snapshot_id, created_at, class_count) VALUES (?, ?, ?)`,
		snap.SnapshotID, snap.CreatedAt.Format(time.RFC3339Nano), snap.ClassCount,
	)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("insert snapshot: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return snap, nil
}

// Snapshots returns all recorded snapshots, newest first. Snapshot IDs
// are UUIDv7, so ID order is creation order even within one timestamp.
func (s *Store) Snapshots() ([]*Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.open {
		return nil, ErrClosed
	}

	rows, err := s.db.Query(
		`SELECT snapshot_id, created_at, class_count FROM snapshots ORDER BY snapshot_id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Snapshot
	for rows.Next() {
		var snap Snapshot
		var createdAt string
		if err := rows.Scan(&snap.SnapshotID, &createdAt, &snap.ClassCount); err != nil {
			return nil, err
		}
		snap.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parse created_at: %w", err)
		}
		out = append(out, &snap)
	}
	return out, rows.Err()
}

// Classes returns the classes of one snapshot in recorded order.
// Returns ErrSnapshotNotFound for an unknown snapshot ID.
func (s *Store) Classes(snapshotID string) ([]Class, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.open {
		return nil, ErrClosed
	}
	return s.classesLocked(snapshotID)
}

// classesLocked reads one snapshot's classes. Caller holds mu.
func (s *Store) classesLocked(snapshotID string) ([]Class, error) {
	var exists int
	err := s.db.QueryRow(
		`SELECT COUNT(*) FROM snapshots WHERE snapshot_id = ?`, snapshotID).Scan(&exists)
	if err != nil {
		return nil, err
	}
	if exists == 0 {
		return nil, ErrSnapshotNotFound
	}

	rows, err := s.db.Query(
		`SELECT name, base, constructible FROM snapshot_classes
         WHERE snapshot_id = ? ORDER BY position`, snapshotID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Class
	for rows.Next() {
		var c Class
		var constructible int
		if err := rows.Scan(&c.Name, &c.Base, &constructible); err != nil {
			return nil, err
		}
		c.Constructible = constructible != 0
		out = append(out, c)
	}
	return out, rows.Err()
}
