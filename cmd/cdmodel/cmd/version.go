package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version information, set from main
var (
	Version   = "dev"
	GitCommit = "none"
	BuildDate = "unknown"
)

// VersionInfo holds version information for structured output.
type VersionInfo struct {
	Version   string `json:"version" yaml:"version"`
	GitCommit string `json:"gitCommit" yaml:"gitCommit"`
	BuildDate string `json:"buildDate" yaml:"buildDate"`
}

// SetVersionInfo records the build information printed by the version command.
func SetVersionInfo(version, commit, date string) {
	Version = version
	GitCommit = commit
	BuildDate = date
}

// newVersionCmd creates the version command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := VersionInfo{Version: Version, GitCommit: GitCommit, BuildDate: BuildDate}
			if ok, err := writeStructured(cmd, info); ok {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "cdmodel version %s\n", info.Version)
			fmt.Fprintf(cmd.OutOrStdout(), "  commit: %s\n", info.GitCommit)
			fmt.Fprintf(cmd.OutOrStdout(), "  built: %s\n", info.BuildDate)
			return nil
		},
	}
}
