package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// executeCommand runs root with args and returns what it wrote to stdout and stderr.
func executeCommand(root *cobra.Command, args ...string) (string, error) {
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)

	err := root.Execute()
	return buf.String(), err
}

func writeDocument(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "request.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const validDeployment = `version: "1.0"
operation: CreateDeployment
input:
  applicationName: my-app
  deploymentGroupName: prod
  revision:
    revisionType: S3
    s3Location:
      bucket: releases
      key: my-app/1.2.0.zip
      bundleType: zip
`

const invalidDeployment = `operation: CreateDeployment
input:
  deploymentGroupName: prod
  fileExistsBehavior: CLOBBER
`

func TestOperationsCommand(t *testing.T) {
	t.Run("lists operations", func(t *testing.T) {
		output, err := executeCommand(NewRootCmd(), "operations")

		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(output), "\n")
		assert.Len(t, lines, 47)
		assert.Contains(t, lines, "CreateDeployment")
		assert.Contains(t, lines, "StopDeployment")
	})

	t.Run("describes one operation", func(t *testing.T) {
		output, err := executeCommand(NewRootCmd(), "operations", "GetDeploymentGroup")

		require.NoError(t, err)
		assert.Contains(t, output, "GetDeploymentGroup")
		assert.Contains(t, output, "applicationName")
		assert.Contains(t, output, "required,min=1,max=100")
	})

	t.Run("describes members as json", func(t *testing.T) {
		output, err := executeCommand(NewRootCmd(), "operations", "ListDeployments", "--output", "json")
		require.NoError(t, err)

		var info OperationInfo
		require.NoError(t, json.Unmarshal([]byte(output), &info))
		assert.Equal(t, "ListDeployments", info.Name)
		assert.Contains(t, info.Members, MemberInfo{
			Name:  "includeOnlyStatuses",
			Type:  "list<enum DeploymentStatus>",
			Rules: "omitempty,dive,enum",
		})
		assert.Contains(t, info.Members, MemberInfo{Name: "createTimeRange", Type: "TimeRange"})
	})

	t.Run("unknown operation", func(t *testing.T) {
		_, err := executeCommand(NewRootCmd(), "operations", "LaunchRocket")
		assert.ErrorContains(t, err, "unknown operation")
	})
}

func TestEnumsCommand(t *testing.T) {
	t.Run("lists enums", func(t *testing.T) {
		output, err := executeCommand(NewRootCmd(), "enums")

		require.NoError(t, err)
		assert.Contains(t, output, "DeploymentStatus\n")
		assert.Contains(t, output, "MinimumHealthyHostsType\n")
	})

	t.Run("lists values", func(t *testing.T) {
		output, err := executeCommand(NewRootCmd(), "enums", "MinimumHealthyHostsType")

		require.NoError(t, err)
		assert.Equal(t, "HOST_COUNT\nFLEET_PERCENT\n", output)
	})

	t.Run("values as json", func(t *testing.T) {
		output, err := executeCommand(NewRootCmd(), "enums", "InstanceType", "-o", "json")
		require.NoError(t, err)

		var values []string
		require.NoError(t, json.Unmarshal([]byte(output), &values))
		assert.Equal(t, []string{"Blue", "Green"}, values)
	})

	t.Run("parse known value", func(t *testing.T) {
		output, err := executeCommand(NewRootCmd(), "enums", "parse", "DeploymentStatus", "InProgress")

		require.NoError(t, err)
		assert.Equal(t, "DeploymentStatus.InProgress\n", output)
	})

	t.Run("parse unknown value", func(t *testing.T) {
		_, err := executeCommand(NewRootCmd(), "enums", "parse", "MinimumHealthyHostsType", "BOGUS")
		assert.ErrorContains(t, err, "unknown enum value")
	})

	t.Run("parse empty value", func(t *testing.T) {
		_, err := executeCommand(NewRootCmd(), "enums", "parse", "MinimumHealthyHostsType", "")
		assert.ErrorContains(t, err, "value cannot be empty")
	})

	t.Run("unknown enum", func(t *testing.T) {
		_, err := executeCommand(NewRootCmd(), "enums", "Colour")
		assert.ErrorContains(t, err, "unknown enum")
	})
}

func TestErrorsCommand(t *testing.T) {
	t.Run("lists codes", func(t *testing.T) {
		output, err := executeCommand(NewRootCmd(), "errors")

		require.NoError(t, err)
		assert.Len(t, strings.Split(strings.TrimSpace(output), "\n"), 109)
		assert.Contains(t, output, "ThrottlingException\n")
	})

	t.Run("resolves code without suffix", func(t *testing.T) {
		output, err := executeCommand(NewRootCmd(), "errors", "DeploymentAlreadyCompleted", "--output", "json")
		require.NoError(t, err)

		var infos []ErrorInfo
		require.NoError(t, json.Unmarshal([]byte(output), &infos))
		assert.Equal(t, []ErrorInfo{{Code: "DeploymentAlreadyCompletedException", Fault: "client"}}, infos)
	})

	t.Run("unknown code", func(t *testing.T) {
		_, err := executeCommand(NewRootCmd(), "errors", "AccessDeniedException")
		assert.ErrorContains(t, err, "unknown error kind")
	})
}

func TestValidateCommand(t *testing.T) {
	t.Run("valid request", func(t *testing.T) {
		path := writeDocument(t, validDeployment)
		output, err := executeCommand(NewRootCmd(), "validate", path)

		require.NoError(t, err)
		assert.Contains(t, output, "CreateDeployment request is valid")
	})

	t.Run("invalid request", func(t *testing.T) {
		path := writeDocument(t, invalidDeployment)
		output, err := executeCommand(NewRootCmd(), "validate", path)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "2 violation(s)")
		assert.Contains(t, output, "applicationName is required")
		assert.Contains(t, output, "fileExistsBehavior is not a known enum value")
	})

	t.Run("json report", func(t *testing.T) {
		path := writeDocument(t, invalidDeployment)
		output, err := executeCommand(NewRootCmd(), "validate", path, "--output", "json")
		require.Error(t, err)

		var report ValidationReport
		require.NoError(t, json.Unmarshal([]byte(output), &report))
		assert.False(t, report.Valid)
		assert.Equal(t, "CreateDeployment", report.Operation)
		assert.Len(t, report.Violations, 2)
	})

	t.Run("malformed document", func(t *testing.T) {
		path := writeDocument(t, "operation: NoSuchThing\n")
		_, err := executeCommand(NewRootCmd(), "validate", path)
		assert.ErrorContains(t, err, "invalid document")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := executeCommand(NewRootCmd(), "validate", filepath.Join(t.TempDir(), "nope.yaml"))
		assert.ErrorContains(t, err, "failed to read document")
	})

	t.Run("requires a file", func(t *testing.T) {
		_, err := executeCommand(NewRootCmd(), "validate")
		assert.Error(t, err)
	})
}

func TestRenderCommand(t *testing.T) {
	path := writeDocument(t, validDeployment)

	t.Run("plain", func(t *testing.T) {
		output, err := executeCommand(NewRootCmd(), "render", path)

		require.NoError(t, err)
		assert.Equal(t, `CreateDeployment {applicationName: "my-app" deploymentGroupName: "prod" `+
			`revision: {revisionType: S3 s3Location: {bucket: "releases" key: "my-app/1.2.0.zip" bundleType: zip}}}`+"\n", output)
	})

	t.Run("json", func(t *testing.T) {
		output, err := executeCommand(NewRootCmd(), "render", path, "-o", "json")
		require.NoError(t, err)

		var got map[string]any
		require.NoError(t, json.Unmarshal([]byte(output), &got))
		assert.Equal(t, "my-app", got["applicationName"])
		assert.NotContains(t, got, "description")
	})

	t.Run("yaml", func(t *testing.T) {
		output, err := executeCommand(NewRootCmd(), "render", path, "-o", "yaml")
		require.NoError(t, err)

		var got struct {
			Version   string         `yaml:"version"`
			Operation string         `yaml:"operation"`
			Input     map[string]any `yaml:"input"`
		}
		require.NoError(t, yaml.Unmarshal([]byte(output), &got))
		assert.Equal(t, "1.0", got.Version)
		assert.Equal(t, "CreateDeployment", got.Operation)
		assert.Equal(t, "prod", got.Input["deploymentGroupName"])
	})
}

func TestVersionCommand(t *testing.T) {
	SetVersionInfo("1.2.3", "abc123", "2024-01-01")

	output, err := executeCommand(NewRootCmd(), "version")
	require.NoError(t, err)
	assert.Contains(t, output, "cdmodel version 1.2.3")
	assert.Contains(t, output, "commit: abc123")

	output, err = executeCommand(NewRootCmd(), "version", "--output", "json")
	require.NoError(t, err)

	var info VersionInfo
	require.NoError(t, json.Unmarshal([]byte(output), &info))
	assert.Equal(t, VersionInfo{Version: "1.2.3", GitCommit: "abc123", BuildDate: "2024-01-01"}, info)
}

func TestUnsupportedOutputFormat(t *testing.T) {
	_, err := executeCommand(NewRootCmd(), "operations", "--output", "table")
	assert.ErrorContains(t, err, "unsupported output format")
}
