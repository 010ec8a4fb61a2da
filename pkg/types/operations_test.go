package types

import (
	"reflect"
	"sort"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jvreagan/codedeploy-model/pkg/validation"
)

func TestOperations(t *testing.T) {
	ops := Operations()
	require.Len(t, ops, 47)

	assert.True(t, sort.SliceIsSorted(ops, func(i, j int) bool { return ops[i].Name < ops[j].Name }))

	for _, op := range ops {
		t.Run(op.Name, func(t *testing.T) {
			req := op.NewRequest()
			res := op.NewResult()
			require.NotNil(t, req)
			require.NotNil(t, res)

			assert.NotSame(t, req, op.NewRequest(), "each call must return a fresh request")
			assert.Equal(t, "{}", res.String())
			assert.Equal(t, op.Name+"Request", typeName(req))
			assert.Equal(t, op.Name+"Result", typeName(res))

			found, err := LookupOperation(op.Name)
			require.NoError(t, err)
			assert.Equal(t, op.Name, found.Name)
		})
	}

	ops[0].Name = "mutated"
	assert.NotEqual(t, "mutated", Operations()[0].Name)
}

func typeName(v any) string {
	return reflect.TypeOf(v).Elem().Name()
}

func TestLookupOperationUnknown(t *testing.T) {
	_, err := LookupOperation("LaunchRocket")
	assert.ErrorIs(t, err, ErrUnknownOperation)
	assert.Contains(t, err.Error(), "LaunchRocket")
}

func TestRequestValidate(t *testing.T) {
	tests := []struct {
		name       string
		req        Request
		wantFields []string
	}{
		{
			name: "valid deployment group",
			req: (&CreateDeploymentGroupRequest{}).
				SetApplicationName("app").
				SetDeploymentGroupName("prod").
				SetServiceRoleArn("arn:aws:iam::123456789012:role/CodeDeploy"),
		},
		{
			name:       "missing required members",
			req:        &CreateDeploymentGroupRequest{},
			wantFields: []string{"applicationName", "deploymentGroupName", "serviceRoleArn"},
		},
		{
			name:       "name longer than 100 characters",
			req:        (&GetApplicationRequest{}).SetApplicationName(strings.Repeat("a", 101)),
			wantFields: []string{"applicationName"},
		},
		{
			name:       "empty name",
			req:        (&GetApplicationRequest{}).SetApplicationName(""),
			wantFields: []string{"applicationName"},
		},
		{
			name: "unknown enum in list",
			req: (&ListDeploymentsRequest{}).
				AddIncludeOnlyStatuses(DeploymentStatusFailed, DeploymentStatus("Exploded")),
			wantFields: []string{"includeOnlyStatuses[1]"},
		},
		{
			name: "unknown enum in nested member",
			req: (&CreateDeploymentRequest{}).
				SetApplicationName("app").
				SetRevision((&RevisionLocation{}).SetRevisionType(RevisionLocationType("FTP"))),
			wantFields: []string{"revision.revisionType"},
		},
		{
			name: "unknown enum inside list element",
			req: (&CreateDeploymentGroupRequest{}).
				SetApplicationName("app").
				SetDeploymentGroupName("prod").
				SetServiceRoleArn("arn:aws:iam::123456789012:role/CodeDeploy").
				AddEc2TagFilters(EC2TagFilter{Key: aws.String("env"), Type: EC2TagFilterType("SOME")}),
			wantFields: []string{"ec2TagFilters[0].Type"},
		},
		{
			name: "known target filter",
			req: (&ListDeploymentTargetsRequest{}).
				SetDeploymentId("d-1").
				SetTargetFilters(map[TargetFilterName][]string{TargetFilterNameTargetStatus: {"Failed"}}),
		},
		{
			name: "unknown target filter name",
			req: (&ListDeploymentTargetsRequest{}).
				SetDeploymentId("d-1").
				SetTargetFilters(map[TargetFilterName][]string{TargetFilterName("Colour"): {"Blue"}}),
			wantFields: []string{"targetFilters[Colour]"},
		},
		{
			name: "void-input operation",
			req:  &ListApplicationsRequest{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantFields == nil {
				assert.NoError(t, err)
				return
			}

			var verr *validation.Error
			require.ErrorAs(t, err, &verr)
			assert.ElementsMatch(t, tt.wantFields, verr.Fields())
		})
	}
}

func TestSettersDoNotValidate(t *testing.T) {
	req := (&GetApplicationRequest{}).SetApplicationName("")
	assert.Equal(t, "", aws.ToString(req.ApplicationName))
	assert.NotNil(t, req.ApplicationName)
}
