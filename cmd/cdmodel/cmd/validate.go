package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jvreagan/codedeploy-model/pkg/document"
	"github.com/jvreagan/codedeploy-model/pkg/logging"
	"github.com/jvreagan/codedeploy-model/pkg/validation"
)

// ValidationReport is the structured result of the validate command.
type ValidationReport struct {
	File       string                 `json:"file" yaml:"file"`
	Operation  string                 `json:"operation" yaml:"operation"`
	Valid      bool                   `json:"valid" yaml:"valid"`
	Violations []validation.Violation `json:"violations,omitempty" yaml:"violations,omitempty"`
}

// newValidateCmd creates the validate command.
func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Check a request document against the service constraints",
		Long: `Load a request document and check its input against the constraints the
CodeDeploy service documents: required members, name and ARN lengths, and
enumeration values.

Exit code 0 indicates a valid request, non-zero indicates errors.`,
		Args: cobra.ExactArgs(1),
		Example: `  cdmodel validate create-deployment.yaml
  cdmodel validate --output json create-deployment.yaml`,
		RunE: runValidate,
	}

	return cmd
}

func runValidate(cmd *cobra.Command, args []string) error {
	filename := args[0]

	doc, err := document.Load(filename)
	if err != nil {
		return err
	}

	report := ValidationReport{File: filename, Operation: doc.Operation, Valid: true}
	if err := doc.ValidateRequest(); err != nil {
		var verr *validation.Error
		if !errors.As(err, &verr) {
			return err
		}
		report.Valid = false
		report.Violations = verr.Violations
	}

	logging.DebugContext("validated document", map[string]any{
		"file":       filename,
		"operation":  report.Operation,
		"violations": len(report.Violations),
	})

	if ok, err := writeStructured(cmd, report); ok {
		if err != nil {
			return err
		}
	} else {
		for _, v := range report.Violations {
			fmt.Fprintf(cmd.OutOrStdout(), "  - %s\n", v)
		}
		if report.Valid {
			fmt.Fprintf(cmd.OutOrStdout(), "%s request is valid: %s\n", report.Operation, filename)
		}
	}

	if !report.Valid {
		return fmt.Errorf("%s request is invalid: %d violation(s)", report.Operation, len(report.Violations))
	}
	return nil
}
