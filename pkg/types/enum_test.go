package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnumRoundTrip(t *testing.T) {
	names := EnumNames()
	require.Len(t, names, 32)
	assert.IsIncreasing(t, names)

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			values, err := EnumValues(name)
			require.NoError(t, err)
			require.NotEmpty(t, values)

			seen := make(map[string]bool, len(values))
			for _, v := range values {
				assert.False(t, seen[v], "duplicate wire value %q", v)
				seen[v] = true

				got, err := ParseEnum(name, v)
				require.NoError(t, err)
				assert.Equal(t, v, got)
			}

			_, err = ParseEnum(name, "")
			assert.ErrorIs(t, err, ErrEmptyEnumValue)
			assert.ErrorIs(t, err, ErrInvalidArgument)

			_, err = ParseEnum(name, "not-a-value")
			assert.ErrorIs(t, err, ErrUnknownEnumValue)
			assert.ErrorIs(t, err, ErrInvalidArgument)
			assert.NotErrorIs(t, err, ErrEmptyEnumValue)
		})
	}
}

func TestParseDeploymentStatus(t *testing.T) {
	s, err := ParseDeploymentStatus("InProgress")
	require.NoError(t, err)
	assert.Equal(t, DeploymentStatusInProgress, s)
	assert.Equal(t, "InProgress", s.String())
	assert.True(t, s.Known())

	assert.Equal(t, []DeploymentStatus{
		DeploymentStatusCreated,
		DeploymentStatusQueued,
		DeploymentStatusInProgress,
		DeploymentStatusBaking,
		DeploymentStatusSucceeded,
		DeploymentStatusFailed,
		DeploymentStatusStopped,
		DeploymentStatusReady,
	}, DeploymentStatus("").Values())
}

func TestDeploymentCreatorValues(t *testing.T) {
	values, err := EnumValues("DeploymentCreator")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"user",
		"autoscaling",
		"codeDeployRollback",
		"CodeDeploy",
		"CloudFormation",
		"CloudFormationRollback",
	}, values)

	_, err = ParseDeploymentCreator("CodeDeployAutoUpdate")
	assert.ErrorIs(t, err, ErrUnknownEnumValue)
}

func TestParseMinimumHealthyHostsType(t *testing.T) {
	tests := []struct {
		input   string
		want    MinimumHealthyHostsType
		wantErr error
	}{
		{input: "HOST_COUNT", want: MinimumHealthyHostsTypeHostCount},
		{input: "FLEET_PERCENT", want: MinimumHealthyHostsTypeFleetPercent},
		{input: "BOGUS", wantErr: ErrUnknownEnumValue},
		{input: "host_count", wantErr: ErrUnknownEnumValue},
		{input: "", wantErr: ErrEmptyEnumValue},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMinimumHealthyHostsType(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, ErrInvalidArgument)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEnumErrorNamesEnum(t *testing.T) {
	_, err := ParseBundleType("rar")
	assert.EqualError(t, err, `BundleType "rar": invalid argument: unknown enum value`)

	_, err = ParseBundleType("")
	assert.EqualError(t, err, "BundleType: invalid argument: value cannot be empty")
}

func TestKnown(t *testing.T) {
	assert.True(t, ComputePlatformECS.Known())
	assert.False(t, ComputePlatform("").Known())
	assert.False(t, ComputePlatform("Fargate").Known())
}

func TestValuesReturnsCopy(t *testing.T) {
	values := BundleType("").Values()
	values[0] = "mutated"
	assert.NotEqual(t, BundleType("mutated"), BundleType("").Values()[0])
}

func TestUnknownEnumName(t *testing.T) {
	_, err := EnumValues("NoSuchEnum")
	assert.ErrorIs(t, err, ErrUnknownEnum)

	_, err = ParseEnum("NoSuchEnum", "x")
	assert.ErrorIs(t, err, ErrUnknownEnum)
}
