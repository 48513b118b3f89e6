package cli

import (
	"context"
	"fmt"
	"io"
	"math"
	"math/bits"

	"diskfarm/internal/config"
	"diskfarm/internal/disks"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func NewCheckCommand(globalOptions *GlobalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the configuration and print the resolved farms",
		Long: `Loads the configuration, checks that farm directories and server addresses are unique,
converts every allocated_space into bytes and prints the result.
Farms that were given more space than their disk holds are reported as warnings.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd.Context(), cmd.OutOrStdout(), globalOptions)
		},
	}
}

func runCheck(ctx context.Context, out io.Writer, globalOptions *GlobalOptions) error {
	logger := globalOptions.Logger
	path := globalOptions.CfgFilePath

	cfg, err := config.LoadFrom(globalOptions.Store, path)
	if err != nil {
		return fmt.Errorf("failed to load configuration from %s: %w", path, err)
	}

	farms, err := cfg.Resolve()
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// host disks only feed the warnings below
	hostDisks, err := globalOptions.Disks.List(ctx)
	if err != nil {
		logger.Warnf("Could not list host disks: %v", err)
	}

	fmt.Fprintf(out, "Disk farms (%d):\n", len(farms))
	for _, farm := range farms {
		if farm.AllocatedSpaceBytes == nil {
			fmt.Fprintf(out, "  %s  unbounded\n", farm.Directory)
		} else {
			size := *farm.AllocatedSpaceBytes
			fmt.Fprintf(out, "  %s  %d bytes (%s)\n", farm.Directory, size, humanize.Bytes(size))
		}

		if farm.AllocatedSpaceBytes != nil && len(hostDisks) > 0 {
			if _, ok := disks.FindMount(hostDisks, farm.Directory); !ok {
				logger.WithField("directory", farm.Directory).Debug("No mounted disk contains this directory, skipping size check")
			}
		}
		if err := disks.CheckAllocation(farm, hostDisks); err != nil {
			logger.WithField("directory", farm.Directory).Warn(err.Error())
		}
	}

	fmt.Fprintf(out, "Servers (%d):\n", len(cfg.ServerAddresses))
	for _, addr := range cfg.ServerAddresses {
		fmt.Fprintf(out, "  %s\n", addr)
	}

	bounded, allocated, overflow := farmSummary(farms)
	allocatedStr := humanize.Bytes(allocated)
	if overflow {
		allocatedStr = "overflow"
	}
	logger.WithFields(logrus.Fields{
		"path":          path,
		"farms":         len(farms),
		"bounded_farms": bounded,
		"allocated":     allocatedStr,
		"servers":       len(cfg.ServerAddresses),
	}).Info("Configuration is valid")

	return nil
}

// farmSummary counts the farms with an allocation and sums their bytes.
// The sum saturates at math.MaxUint64 and overflow reports that it did.
func farmSummary(farms []config.ResolvedStorageEntry) (bounded int, total uint64, overflow bool) {
	for _, farm := range farms {
		if farm.AllocatedSpaceBytes == nil {
			continue
		}
		bounded++
		sum, carry := bits.Add64(total, *farm.AllocatedSpaceBytes, 0)
		if carry != 0 {
			total, overflow = math.MaxUint64, true
			continue
		}
		if !overflow {
			total = sum
		}
	}
	return bounded, total, overflow
}
