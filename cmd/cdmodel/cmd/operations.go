package cmd

import (
	"fmt"
	"reflect"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/jvreagan/codedeploy-model/pkg/types"
)

// MemberInfo describes one request member.
type MemberInfo struct {
	Name  string `json:"name" yaml:"name"`
	Type  string `json:"type" yaml:"type"`
	Rules string `json:"rules,omitempty" yaml:"rules,omitempty"`
}

// OperationInfo describes one operation for structured output.
type OperationInfo struct {
	Name    string       `json:"name" yaml:"name"`
	Members []MemberInfo `json:"members,omitempty" yaml:"members,omitempty"`
}

// newOperationsCmd creates the operations command.
func newOperationsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "operations [name]",
		Short: "List CodeDeploy operations or describe one",
		Long: `List every CodeDeploy operation, or describe the request members of one
operation with their wire types and local validation rules.`,
		Args: cobra.MaximumNArgs(1),
		Example: `  cdmodel operations
  cdmodel operations CreateDeployment --output json`,
		RunE: runOperations,
	}

	return cmd
}

func runOperations(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		return describeOperation(cmd, args[0])
	}

	ops := types.Operations()
	names := make([]string, len(ops))
	for i, op := range ops {
		names[i] = op.Name
	}

	if ok, err := writeStructured(cmd, names); ok {
		return err
	}
	for _, name := range names {
		fmt.Fprintln(cmd.OutOrStdout(), name)
	}
	return nil
}

func describeOperation(cmd *cobra.Command, name string) error {
	op, err := types.LookupOperation(name)
	if err != nil {
		return err
	}

	info := OperationInfo{Name: op.Name, Members: requestMembers(op.NewRequest())}
	if ok, err := writeStructured(cmd, info); ok {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s\n", info.Name)
	if len(info.Members) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "  (no members)")
		return nil
	}
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	for _, m := range info.Members {
		fmt.Fprintf(w, "  %s\t%s\t%s\n", m.Name, m.Type, m.Rules)
	}
	return w.Flush()
}

func requestMembers(req types.Request) []MemberInfo {
	t := reflect.TypeOf(req).Elem()
	members := make([]MemberInfo, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		members = append(members, MemberInfo{
			Name:  name,
			Type:  wireType(f.Type),
			Rules: f.Tag.Get("validate"),
		})
	}
	return members
}

// wireType names t the way the service documents it.
func wireType(t reflect.Type) string {
	switch t.Kind() {
	case reflect.Pointer:
		return wireType(t.Elem())
	case reflect.Slice:
		return "list<" + wireType(t.Elem()) + ">"
	case reflect.Map:
		return "map<" + wireType(t.Key()) + "," + wireType(t.Elem()) + ">"
	case reflect.Struct:
		if t == reflect.TypeOf(time.Time{}) {
			return "timestamp"
		}
		return t.Name()
	case reflect.String:
		if t.Name() != "string" {
			return "enum " + t.Name()
		}
		return "string"
	default:
		return t.Kind().String()
	}
}
