package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jvreagan/codedeploy-model/pkg/apierror"
)

// ErrorInfo describes a service error kind for structured output.
type ErrorInfo struct {
	Code  string `json:"code" yaml:"code"`
	Fault string `json:"fault" yaml:"fault"`
}

// newErrorsCmd creates the errors command.
func newErrorsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "errors [code]",
		Short: "List service error codes or resolve one",
		Long: `List the error codes the CodeDeploy service documents, or resolve one
code. The "Exception" suffix may be left off.`,
		Args: cobra.MaximumNArgs(1),
		Example: `  cdmodel errors
  cdmodel errors DeploymentAlreadyCompleted`,
		RunE: runErrors,
	}

	return cmd
}

func runErrors(cmd *cobra.Command, args []string) error {
	kinds := apierror.Kinds()
	if len(args) == 1 {
		k, err := resolveKind(args[0])
		if err != nil {
			return err
		}
		kinds = []apierror.Kind{k}
	}

	infos := make([]ErrorInfo, len(kinds))
	for i, k := range kinds {
		infos[i] = ErrorInfo{
			Code:  k.String(),
			Fault: apierror.New(k, "").ErrorFault().String(),
		}
	}

	if ok, err := writeStructured(cmd, infos); ok {
		return err
	}
	for _, info := range infos {
		fmt.Fprintln(cmd.OutOrStdout(), info.Code)
	}
	return nil
}

func resolveKind(code string) (apierror.Kind, error) {
	k, err := apierror.ParseKind(code)
	if err == nil || strings.HasSuffix(code, "Exception") {
		return k, err
	}
	if k, err2 := apierror.ParseKind(code + "Exception"); err2 == nil {
		return k, nil
	}
	return "", err
}
