package commands

import (
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/doeshing/orgai/internal/version"
)

const unknownValue = "unknown"

// NewVersionCommand creates the version command
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show orgai version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			displayVersionInformation(cmd.OutOrStdout(), version.Get())
			return nil
		},
	}
}

// displayVersionInformation prints every build field, marking missing ones as unknown
func displayVersionInformation(out io.Writer, info version.Info) {
	fmt.Fprintf(out, "orgai %s\n", info.Version)
	fmt.Fprintf(out, "  commit:   %s\n", orUnknown(info.Commit))
	fmt.Fprintf(out, "  built:    %s\n", orUnknown(info.BuildDate))
	fmt.Fprintf(out, "  go:       %s\n", runtime.Version())
	fmt.Fprintf(out, "  platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
}

func orUnknown(value string) string {
	if value == "" {
		return unknownValue
	}
	return value
}
