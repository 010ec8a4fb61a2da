package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jvreagan/codedeploy-model/pkg/types"
)

// newEnumsCmd creates the enums command.
func newEnumsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "enums [name]",
		Short: "List enumerations or the wire values of one",
		Args:  cobra.MaximumNArgs(1),
		Example: `  cdmodel enums
  cdmodel enums DeploymentStatus
  cdmodel enums parse MinimumHealthyHostsType HOST_COUNT`,
		RunE: runEnums,
	}

	cmd.AddCommand(newEnumsParseCmd())
	return cmd
}

func runEnums(cmd *cobra.Command, args []string) error {
	list := types.EnumNames()
	if len(args) == 1 {
		values, err := types.EnumValues(args[0])
		if err != nil {
			return err
		}
		list = values
	}

	if ok, err := writeStructured(cmd, list); ok {
		return err
	}
	for _, s := range list {
		fmt.Fprintln(cmd.OutOrStdout(), s)
	}
	return nil
}

func newEnumsParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <name> <value>",
		Short: "Check a wire string against an enumeration",
		Long: `Check a wire string against an enumeration. Matching is exact and
case-sensitive; the command fails for an empty or unknown value.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := types.ParseEnum(args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s.%s\n", args[0], v)
			return nil
		},
	}
}
