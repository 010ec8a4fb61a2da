package document

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jvreagan/codedeploy-model/pkg/types"
	"github.com/jvreagan/codedeploy-model/pkg/validation"
)

const createGroup = `version: "1.0"
operation: CreateDeploymentGroup
input:
  applicationName: my-app
  deploymentGroupName: prod
  serviceRoleArn: arn:aws:iam::123456789012:role/CodeDeploy
  deploymentStyle:
    deploymentType: BLUE_GREEN
    deploymentOption: WITH_TRAFFIC_CONTROL
  ec2TagFilters:
    - Key: env
      Value: prod
      Type: KEY_AND_VALUE
`

func TestParse(t *testing.T) {
	doc, err := Parse([]byte(createGroup))
	require.NoError(t, err)

	assert.Equal(t, "CreateDeploymentGroup", doc.Operation)
	req, ok := doc.Request().(*types.CreateDeploymentGroupRequest)
	require.True(t, ok, "unexpected request type %T", doc.Request())

	want := (&types.CreateDeploymentGroupRequest{}).
		SetApplicationName("my-app").
		SetDeploymentGroupName("prod").
		SetServiceRoleArn("arn:aws:iam::123456789012:role/CodeDeploy").
		SetDeploymentStyle(&types.DeploymentStyle{
			DeploymentType:   types.DeploymentTypeBlueGreen,
			DeploymentOption: types.DeploymentOptionWithTrafficControl,
		}).
		AddEc2TagFilters(types.EC2TagFilter{
			Key:   aws.String("env"),
			Value: aws.String("prod"),
			Type:  types.EC2TagFilterTypeKeyAndValue,
		})
	assert.True(t, want.Equal(req), "got %s", req)
	assert.NoError(t, doc.ValidateRequest())
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		wantInvalid bool
		errorMsg    string
	}{
		{
			name:        "missing operation",
			content:     "version: \"1.0\"\ninput: {}\n",
			wantInvalid: true,
			errorMsg:    "operation is required",
		},
		{
			name:        "unknown operation",
			content:     "operation: LaunchRocket\n",
			wantInvalid: true,
			errorMsg:    "LaunchRocket",
		},
		{
			name:        "unsupported version",
			content:     "version: \"2.0\"\noperation: ListApplications\n",
			wantInvalid: true,
			errorMsg:    "unsupported version",
		},
		{
			name:     "unknown input member",
			content:  "operation: GetApplication\ninput:\n  applicationName: a\n  appName: b\n",
			errorMsg: "appName",
		},
		{
			name:        "input is not a mapping",
			content:     "operation: GetApplication\ninput: [a, b]\n",
			wantInvalid: true,
			errorMsg:    "input must be a mapping",
		},
		{
			name:     "malformed yaml",
			content:  "operation: [unclosed\n",
			errorMsg: "failed to parse document",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)
			if tt.wantInvalid {
				assert.ErrorIs(t, err, ErrInvalidDocument)
			}
		})
	}
}

func TestParseWithoutInput(t *testing.T) {
	for _, content := range []string{
		"operation: ListApplications\n",
		"operation: ListApplications\ninput:\n",
	} {
		doc, err := Parse([]byte(content))
		require.NoError(t, err)
		assert.Equal(t, &types.ListApplicationsRequest{}, doc.Request())
	}
}

func TestValidateRequestReportsViolations(t *testing.T) {
	doc, err := Parse([]byte("operation: CreateDeployment\ninput:\n  fileExistsBehavior: CLOBBER\n"))
	require.NoError(t, err)

	err = doc.ValidateRequest()
	var verr *validation.Error
	require.ErrorAs(t, err, &verr)
	assert.ElementsMatch(t, []string{"applicationName", "fileExistsBehavior"}, verr.Fields())
}

func TestValidateRequestWithoutParse(t *testing.T) {
	doc := &Document{Operation: "ListApplications"}
	assert.ErrorIs(t, doc.ValidateRequest(), ErrInvalidDocument)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "request.yaml")
	require.NoError(t, os.WriteFile(path, []byte(createGroup), 0o600))

	doc, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "CreateDeploymentGroup", doc.Operation)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read document")
}

func TestLoadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "request.json")
	content := `{"operation": "StopDeployment", "input": {"deploymentId": "d-ABC123", "autoRollbackEnabled": true}}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	doc, err := Load(path)
	require.NoError(t, err)

	want := (&types.StopDeploymentRequest{}).SetDeploymentId("d-ABC123").SetAutoRollbackEnabled(true)
	assert.True(t, want.Equal(doc.Request().(*types.StopDeploymentRequest)))
}

func TestEncodeRoundTrip(t *testing.T) {
	req := (&types.CreateApplicationRequest{}).
		SetApplicationName("my-app").
		SetComputePlatform(types.ComputePlatformLambda).
		AddTags(types.Tag{Key: aws.String("team"), Value: aws.String("deploy")})

	data, err := Encode("CreateApplication", req)
	require.NoError(t, err)

	doc, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, CurrentVersion, doc.Version)
	assert.True(t, req.Equal(doc.Request().(*types.CreateApplicationRequest)))

	_, err = Encode("NoSuchOperation", req)
	assert.ErrorIs(t, err, ErrInvalidDocument)
}

func TestEncodeIndentsTwoSpaces(t *testing.T) {
	req := (&types.CreateDeploymentRequest{}).
		SetApplicationName("app").
		SetRevision((&types.RevisionLocation{}).
			SetRevisionType(types.RevisionLocationTypeS3).
			SetS3Location((&types.S3Location{}).SetBucket("b")))

	data, err := Encode("CreateDeployment", req)
	require.NoError(t, err)

	want := `version: "1.0"
operation: CreateDeployment
input:
  applicationName: app
  revision:
    revisionType: S3
    s3Location:
      bucket: b
`
	assert.Equal(t, want, string(data))
}
