// Shared helpers for lineage CLI commands.
package main

import (
	"errors"
	"fmt"

	"github.com/mesh-intelligence/lineage/internal/catalog"
	"github.com/mesh-intelligence/lineage/pkg/rtti"
)

// openCatalog resolves the data directory, creates a catalog store, and
// opens it. The caller must defer store.Close().
func openCatalog() (*catalog.Store, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	store := catalog.NewStore()
	if err := store.Open(dataDir); err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}

	return store, nil
}

// classRow is the JSON and tabular projection of one descriptor.
type classRow struct {
	Name          string `json:"name"`
	Base          string `json:"base,omitempty"`
	Constructible bool   `json:"constructible"`
}

// rowFor projects a descriptor for output.
func rowFor(d *rtti.Descriptor) classRow {
	row := classRow{Name: d.Name(), Constructible: d.Constructible()}
	if b := d.Base(); b != nil {
		row.Base = b.Name()
	}
	return row
}

// kindOf names the constructibility of a row for text output.
func kindOf(row classRow) string {
	if row.Constructible {
		return "concrete"
	}
	return "abstract"
}

// isNotRegistered returns true if the error wraps ErrNotRegistered.
func isNotRegistered(err error) bool {
	return errors.Is(err, rtti.ErrNotRegistered)
}

// isNotConstructible returns true if the error wraps ErrNotConstructible.
func isNotConstructible(err error) bool {
	return errors.Is(err, rtti.ErrNotConstructible)
}

// isSnapshotNotFound returns true if the error wraps ErrSnapshotNotFound.
func isSnapshotNotFound(err error) bool {
	return errors.Is(err, catalog.ErrSnapshotNotFound)
}
