package config

// Config is the farm configuration as it is stored on disk.
// Capacity strings are kept verbatim; see Resolve.
type Config struct {
	ServerAddresses []string       `toml:"server_addresses"`
	StorageEntries  []StorageEntry `toml:"storage_entries"`
}

// StorageEntry is a farm directory with its optional capacity budget,
// e.g. "1500G". A nil AllocatedSpace means the farm may use all available space.
type StorageEntry struct {
	Directory      string  `toml:"directory"`
	AllocatedSpace *string `toml:"allocated_space,omitempty"`
}

// ResolvedStorageEntry is a StorageEntry with its capacity converted to bytes.
// AllocatedSpaceBytes is nil iff the raw entry had no capacity string.
type ResolvedStorageEntry struct {
	Directory           string
	AllocatedSpaceBytes *uint64
}

// Example returns the sample configuration written by "diskfarm init".
func Example() *Config {
	space := "1500G"
	return &Config{
		ServerAddresses: []string{"localhost:12345"},
		StorageEntries: []StorageEntry{
			{Directory: "/tmp/plot", AllocatedSpace: &space},
			{Directory: "/tmp/plot1"},
		},
	}
}
