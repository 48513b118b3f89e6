// Package disks lists the host's mounted disks and matches farm directories
// against them. It is only used for display and advisory checks.
package disks

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"diskfarm/internal/config"
	"diskfarm/internal/shared"

	"github.com/dustin/go-humanize"
	"github.com/shirou/gopsutil/v4/disk"
)

// Disk describes one mounted filesystem.
type Disk struct {
	Device     string
	MountPoint string
	FileSystem string
	TotalBytes uint64
	FreeBytes  uint64
}

// Lister enumerates mounted disks.
type Lister interface {
	List(ctx context.Context) ([]Disk, error)
}

var _ Lister = (*HostLister)(nil)

// HostLister reads the mount table of the local host.
// All includes pseudo filesystems such as proc and tmpfs.
type HostLister struct {
	All bool
}

func NewHostLister() *HostLister {
	return &HostLister{}
}

// List returns every partition whose usage could be read.
func (l *HostLister) List(ctx context.Context) ([]Disk, error) {
	partitions, err := disk.PartitionsWithContext(ctx, l.All)
	if err != nil {
		return nil, fmt.Errorf("listing partitions: %w", err)
	}

	disks := make([]Disk, 0, len(partitions))
	for _, p := range partitions {
		usage, err := disk.UsageWithContext(ctx, p.Mountpoint)
		if err != nil {
			continue
		}
		disks = append(disks, Disk{
			Device:     p.Device,
			MountPoint: p.Mountpoint,
			FileSystem: p.Fstype,
			TotalBytes: usage.Total,
			FreeBytes:  usage.Free,
		})
	}
	return disks, nil
}

// FindMount returns the disk whose mount point is the deepest ancestor of dir.
func FindMount(disks []Disk, dir string) (Disk, bool) {
	var best Disk
	found := false
	for _, d := range disks {
		if !contains(d.MountPoint, dir) {
			continue
		}
		if !found || len(filepath.Clean(d.MountPoint)) > len(filepath.Clean(best.MountPoint)) {
			best = d
			found = true
		}
	}
	return best, found
}

// contains reports whether path is root or lies below it, comparing whole
// path components ("/mnt/a" does not contain "/mnt/ab").
func contains(root, path string) bool {
	rel, err := filepath.Rel(filepath.Clean(root), filepath.Clean(path))
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// CheckAllocation reports farms that were given more space than the disk
// they live on holds. Farms without an allocation or without a known disk pass.
// Mount points are absolute, so a relative directory never has a known disk.
func CheckAllocation(farm config.ResolvedStorageEntry, disks []Disk) error {
	if farm.AllocatedSpaceBytes == nil {
		return nil
	}
	d, ok := FindMount(disks, farm.Directory)
	if !ok {
		return nil
	}
	if *farm.AllocatedSpaceBytes > d.TotalBytes {
		return fmt.Errorf("%w: %s wants %s but %s (%s) holds %s",
			shared.ErrAllocationExceedsDisk,
			farm.Directory, humanize.Bytes(*farm.AllocatedSpaceBytes),
			d.MountPoint, d.Device, humanize.Bytes(d.TotalBytes))
	}
	return nil
}
