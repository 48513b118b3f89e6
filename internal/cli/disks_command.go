package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func NewDisksCommand(globalOptions *GlobalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "disks",
		Short: "List the disks mounted on this host",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDisks(cmd.Context(), cmd.OutOrStdout(), globalOptions)
		},
	}
}

func runDisks(ctx context.Context, out io.Writer, globalOptions *GlobalOptions) error {
	hostDisks, err := globalOptions.Disks.List(ctx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DEVICE\tMOUNT\tFS\tTOTAL\tFREE")
	for _, d := range hostDisks {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			d.Device, d.MountPoint, d.FileSystem,
			humanize.IBytes(d.TotalBytes), humanize.IBytes(d.FreeBytes))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	globalOptions.Logger.Debugf("Listed %d disks", len(hostDisks))
	return nil
}
