package config

import (
	"fmt"

	"diskfarm/internal/capacity"
)

// ResolveError wraps the capacity.ParseError of the entry that failed.
type ResolveError struct {
	Directory string
	Err       error
}

func (e *ResolveError) Error() string {
	return fmt.Sprintf("storage entry %q: allocated_space: %v", e.Directory, e.Err)
}

func (e *ResolveError) Unwrap() error { return e.Err }

// Resolve converts the capacity string of a single entry.
func (e StorageEntry) Resolve() (ResolvedStorageEntry, error) {
	resolved := ResolvedStorageEntry{Directory: e.Directory}
	if e.AllocatedSpace == nil {
		return resolved, nil
	}

	n, err := capacity.Parse(*e.AllocatedSpace)
	if err != nil {
		return ResolvedStorageEntry{}, &ResolveError{Directory: e.Directory, Err: err}
	}
	resolved.AllocatedSpaceBytes = &n
	return resolved, nil
}

// Resolve converts every storage entry, in order. The first failing entry
// aborts the whole resolution and no partial result is returned.
func (c *Config) Resolve() ([]ResolvedStorageEntry, error) {
	resolved := make([]ResolvedStorageEntry, 0, len(c.StorageEntries))
	for _, entry := range c.StorageEntries {
		r, err := entry.Resolve()
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, r)
	}
	return resolved, nil
}
