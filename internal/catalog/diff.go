package catalog

import "sort"

// Diff lists class-level differences between two snapshots.
type Diff struct {
	OlderID string   `json:"older_id"`
	NewerID string   `json:"newer_id"`
	Added   []string `json:"added,omitempty"`   // classes only in the newer snapshot
	Removed []string `json:"removed,omitempty"` // classes only in the older snapshot
	Rebased []string `json:"rebased,omitempty"` // classes whose base class changed
}

// Empty reports whether the two snapshots registered identical classes.
func (d *Diff) Empty() bool {
	return len(d.Added) == 0 && len(d.Removed) == 0 && len(d.Rebased) == 0
}

// Diff compares two snapshots by class name. A removed or rebased class
// means data recorded by the older build may no longer resolve.
// Returns ErrSnapshotNotFound when either ID is unknown.
func (s *Store) Diff(olderID, newerID string) (*Diff, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.open {
		return nil, ErrClosed
	}

	older, err := s.classesLocked(olderID)
	if err != nil {
		return nil, err
	}
	newer, err := s.classesLocked(newerID)
	if err != nil {
		return nil, err
	}

	olderBase := make(map[string]string, len(older))
	for _, c := range older {
		olderBase[c.Name] = c.Base
	}
	newerBase := make(map[string]string, len(newer))
	for _, c := range newer {
		newerBase[c.Name] = c.Base
	}

	diff := &Diff{OlderID: olderID, NewerID: newerID}
	for name, base := range newerBase {
		old, ok := olderBase[name]
		switch {
		case !ok:
			diff.Added = append(diff.Added, name)
		case old != base:
			diff.Rebased = append(diff.Rebased, name)
		}
	}
	for name := range olderBase {
		if _, ok := newerBase[name]; !ok {
			diff.Removed = append(diff.Removed, name)
		}
	}

	sort.Strings(diff.Added)
	sort.Strings(diff.Removed)
	sort.Strings(diff.Rebased)
	return diff, nil
}
