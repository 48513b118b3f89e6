package config

import (
	"fmt"
	"unicode/utf8"

	"diskfarm/internal/shared"
)

// Validate checks the uniqueness rules. Server addresses are checked before
// storage directories, so a config breaking both reports ErrDuplicateServer.
// Every string must be valid UTF-8, since TOML cannot carry anything else.
func (c *Config) Validate() error {
	for _, addr := range c.ServerAddresses {
		if !utf8.ValidString(addr) {
			return invalidUTF8("server address", addr)
		}
	}
	if addr, ok := firstDuplicate(c.ServerAddresses); ok {
		return fmt.Errorf("%w: %q", shared.ErrDuplicateServer, addr)
	}

	dirs := make([]string, 0, len(c.StorageEntries))
	for i, entry := range c.StorageEntries {
		if entry.Directory == "" {
			return fmt.Errorf("storage entry %d: %w", i, shared.ErrMissingStorageDirectory)
		}
		if !utf8.ValidString(entry.Directory) {
			return invalidUTF8("storage directory", entry.Directory)
		}
		if entry.AllocatedSpace != nil && !utf8.ValidString(*entry.AllocatedSpace) {
			return invalidUTF8("allocated_space of "+entry.Directory, *entry.AllocatedSpace)
		}
		dirs = append(dirs, entry.Directory)
	}
	if dir, ok := firstDuplicate(dirs); ok {
		return fmt.Errorf("%w: %q", shared.ErrDuplicateStorageDirectory, dir)
	}

	return nil
}

func invalidUTF8(field, value string) error {
	return fmt.Errorf("%w: %w: %s %q", shared.ErrConfigSyntax, shared.ErrInvalidUTF8, field, value)
}

// firstDuplicate returns the first item that was already seen earlier in items.
func firstDuplicate[T comparable](items []T) (T, bool) {
	seen := make(map[T]struct{}, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			return item, true
		}
		seen[item] = struct{}{}
	}
	var zero T
	return zero, false
}
