// Package cmd provides the commands of the cdmodel CLI.
package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jvreagan/codedeploy-model/pkg/logging"
)

var (
	// verbose enables debug logging on stderr
	verbose bool
	// outputFormat specifies the output format (plain, json, yaml)
	outputFormat string
)

// Execute builds the command tree and runs it against os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd creates a fresh command tree.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cdmodel",
		Short: "Inspect and check AWS CodeDeploy requests",
		Long: `cdmodel works with the AWS CodeDeploy data model offline.

It lists the API's operations, enumerations and service error codes, and
loads request documents to validate them against the documented service
constraints or print them in another format.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	cmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "plain", "output format (plain|json|yaml)")

	cmd.AddCommand(newOperationsCmd())
	cmd.AddCommand(newEnumsCmd())
	cmd.AddCommand(newErrorsCmd())
	cmd.AddCommand(newValidateCmd())
	cmd.AddCommand(newRenderCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func setup(cmd *cobra.Command, args []string) error {
	switch outputFormat {
	case "plain", "json", "yaml":
	default:
		return fmt.Errorf("unsupported output format %q (use plain, json or yaml)", outputFormat)
	}

	if verbose {
		logging.SetLogger(logging.New(cmd.ErrOrStderr(), true))
	}
	logging.Debug("running command", "command", cmd.CommandPath(), "args", args)
	return nil
}

// writeStructured prints v as JSON or YAML according to --output. It reports false for
// plain output, which each command renders itself.
func writeStructured(cmd *cobra.Command, v any) (bool, error) {
	switch outputFormat {
	case "json":
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return true, encoder.Encode(v)
	case "yaml":
		encoder := yaml.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent(2)
		if err := encoder.Encode(v); err != nil {
			return true, err
		}
		return true, encoder.Close()
	default:
		return false, nil
	}
}
