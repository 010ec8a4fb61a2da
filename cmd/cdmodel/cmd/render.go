package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jvreagan/codedeploy-model/pkg/document"
)

// newRenderCmd creates the render command.
func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render <file>",
		Short: "Print the request decoded from a document",
		Long: `Load a request document and print the decoded request.

plain output is the diagnostic rendering, json output is the request with
its wire member names, and yaml output is a normalized request document.`,
		Args: cobra.ExactArgs(1),
		Example: `  cdmodel render create-deployment.yaml
  cdmodel render --output json create-deployment.yaml`,
		RunE: runRender,
	}

	return cmd
}

func runRender(cmd *cobra.Command, args []string) error {
	doc, err := document.Load(args[0])
	if err != nil {
		return err
	}
	req := doc.Request()

	switch outputFormat {
	case "json":
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(req)
	case "yaml":
		data, err := document.Encode(doc.Operation, req)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	default:
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", doc.Operation, req)
		return nil
	}
}
