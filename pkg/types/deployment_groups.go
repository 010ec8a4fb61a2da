package types

import (
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"

	"github.com/jvreagan/codedeploy-model/internal/shape"
	"github.com/jvreagan/codedeploy-model/pkg/validation"
)

// BatchGetDeploymentGroupsRequest is the input of the BatchGetDeploymentGroups operation,
// which gets information about one or more deployment groups.
type BatchGetDeploymentGroupsRequest struct {
	ApplicationName      *string  `json:"applicationName,omitempty" yaml:"applicationName,omitempty" validate:"required,min=1,max=100"`
	DeploymentGroupNames []string `json:"deploymentGroupNames,omitempty" yaml:"deploymentGroupNames,omitempty" validate:"required"`
}

// SetApplicationName sets the ApplicationName field's value.
func (s *BatchGetDeploymentGroupsRequest) SetApplicationName(v string) *BatchGetDeploymentGroupsRequest {
	s.ApplicationName = aws.String(v)
	return s
}

// SetDeploymentGroupNames replaces DeploymentGroupNames with a copy of v. A nil v clears the field.
func (s *BatchGetDeploymentGroupsRequest) SetDeploymentGroupNames(v []string) *BatchGetDeploymentGroupsRequest {
	s.DeploymentGroupNames = shape.CloneSlice(v)
	return s
}

// AddDeploymentGroupNames appends v to DeploymentGroupNames.
func (s *BatchGetDeploymentGroupsRequest) AddDeploymentGroupNames(v ...string) *BatchGetDeploymentGroupsRequest {
	if s.DeploymentGroupNames == nil {
		s.DeploymentGroupNames = make([]string, 0, len(v))
	}
	s.DeploymentGroupNames = append(s.DeploymentGroupNames, v...)
	return s
}

func (s BatchGetDeploymentGroupsRequest) String() string {
	return shape.Render(s)
}

// Equal reports whether s and other hold the same field values.
func (s *BatchGetDeploymentGroupsRequest) Equal(other *BatchGetDeploymentGroupsRequest) bool {
	return shape.Equal(s, other)
}

func (s *BatchGetDeploymentGroupsRequest) HashCode() int32 {
	return shape.Hash(s)
}

// Validate checks the documented service constraints locally.
func (s *BatchGetDeploymentGroupsRequest) Validate() error {
	return validation.Struct(s)
}

// BatchGetDeploymentGroupsResult is the output of the BatchGetDeploymentGroups operation.
type BatchGetDeploymentGroupsResult struct {
	DeploymentGroupsInfo []DeploymentGroupInfo `json:"deploymentGroupsInfo,omitempty" yaml:"deploymentGroupsInfo,omitempty" validate:"omitempty,dive"`
	ErrorMessage         *string               `json:"errorMessage,omitempty" yaml:"errorMessage,omitempty"`
}

// SetDeploymentGroupsInfo replaces DeploymentGroupsInfo with a copy of v. A nil v clears the field.
func (s *BatchGetDeploymentGroupsResult) SetDeploymentGroupsInfo(v []DeploymentGroupInfo) *BatchGetDeploymentGroupsResult {
	s.DeploymentGroupsInfo = shape.CloneSlice(v)
	return s
}

// AddDeploymentGroupsInfo appends v to DeploymentGroupsInfo.
func (s *BatchGetDeploymentGroupsResult) AddDeploymentGroupsInfo(v ...DeploymentGroupInfo) *BatchGetDeploymentGroupsResult {
	if s.DeploymentGroupsInfo == nil {
		s.DeploymentGroupsInfo = make([]DeploymentGroupInfo, 0, len(v))
	}
	s.DeploymentGroupsInfo = append(s.DeploymentGroupsInfo, v...)
	return s
}

// SetErrorMessage sets the ErrorMessage field's value.
func (s *BatchGetDeploymentGroupsResult) SetErrorMessage(v string) *BatchGetDeploymentGroupsResult {
	s.ErrorMessage = aws.String(v)
	return s
}

func (s BatchGetDeploymentGroupsResult) String() string {
	return shape.Render(s)
}

func (s *BatchGetDeploymentGroupsResult) Equal(other *BatchGetDeploymentGroupsResult) bool {
	return shape.Equal(s, other)
}

func (s *BatchGetDeploymentGroupsResult) HashCode() int32 {
	return shape.Hash(s)
}

// CreateDeploymentGroupRequest is the input of the CreateDeploymentGroup operation, which
// creates a deployment group to which application revisions are deployed.
type CreateDeploymentGroupRequest struct {
	// Name of an application associated with the IAM user or AWS account.
	ApplicationName      *string `json:"applicationName,omitempty" yaml:"applicationName,omitempty" validate:"required,min=1,max=100"`
	DeploymentGroupName  *string `json:"deploymentGroupName,omitempty" yaml:"deploymentGroupName,omitempty" validate:"required,min=1,max=100"`
	DeploymentConfigName *string `json:"deploymentConfigName,omitempty" yaml:"deploymentConfigName,omitempty" validate:"omitempty,min=1,max=100"`

	// Cannot be combined with Ec2TagSet.
	Ec2TagFilters []EC2TagFilter `json:"ec2TagFilters,omitempty" yaml:"ec2TagFilters,omitempty" validate:"omitempty,dive"`

	// Cannot be combined with OnPremisesTagSet.
	OnPremisesInstanceTagFilters []TagFilter `json:"onPremisesInstanceTagFilters,omitempty" yaml:"onPremisesInstanceTagFilters,omitempty" validate:"omitempty,dive"`
	AutoScalingGroups            []string    `json:"autoScalingGroups,omitempty" yaml:"autoScalingGroups,omitempty"`

	// Role that allows CodeDeploy to act on the user's behalf.
	ServiceRoleArn                   *string                           `json:"serviceRoleArn,omitempty" yaml:"serviceRoleArn,omitempty" validate:"required"`
	TriggerConfigurations            []TriggerConfig                   `json:"triggerConfigurations,omitempty" yaml:"triggerConfigurations,omitempty" validate:"omitempty,dive"`
	AlarmConfiguration               *AlarmConfiguration               `json:"alarmConfiguration,omitempty" yaml:"alarmConfiguration,omitempty"`
	AutoRollbackConfiguration        *AutoRollbackConfiguration        `json:"autoRollbackConfiguration,omitempty" yaml:"autoRollbackConfiguration,omitempty"`
	DeploymentStyle                  *DeploymentStyle                  `json:"deploymentStyle,omitempty" yaml:"deploymentStyle,omitempty"`
	BlueGreenDeploymentConfiguration *BlueGreenDeploymentConfiguration `json:"blueGreenDeploymentConfiguration,omitempty" yaml:"blueGreenDeploymentConfiguration,omitempty"`
	LoadBalancerInfo                 *LoadBalancerInfo                 `json:"loadBalancerInfo,omitempty" yaml:"loadBalancerInfo,omitempty"`
	Ec2TagSet                        *EC2TagSet                        `json:"ec2TagSet,omitempty" yaml:"ec2TagSet,omitempty"`
	EcsServices                      []ECSService                      `json:"ecsServices,omitempty" yaml:"ecsServices,omitempty" validate:"omitempty,dive"`
	OnPremisesTagSet                 *OnPremisesTagSet                 `json:"onPremisesTagSet,omitempty" yaml:"onPremisesTagSet,omitempty"`
	Tags                             []Tag                             `json:"tags,omitempty" yaml:"tags,omitempty" validate:"omitempty,dive"`
}

// SetApplicationName sets the ApplicationName field's value.
func (s *CreateDeploymentGroupRequest) SetApplicationName(v string) *CreateDeploymentGroupRequest {
	s.ApplicationName = aws.String(v)
	return s
}

// SetDeploymentGroupName sets the DeploymentGroupName field's value.
func (s *CreateDeploymentGroupRequest) SetDeploymentGroupName(v string) *CreateDeploymentGroupRequest {
	s.DeploymentGroupName = aws.String(v)
	return s
}

// SetDeploymentConfigName sets the DeploymentConfigName field's value.
func (s *CreateDeploymentGroupRequest) SetDeploymentConfigName(v string) *CreateDeploymentGroupRequest {
	s.DeploymentConfigName = aws.String(v)
	return s
}

// SetEc2TagFilters replaces Ec2TagFilters with a copy of v. A nil v clears the field.
func (s *CreateDeploymentGroupRequest) SetEc2TagFilters(v []EC2TagFilter) *CreateDeploymentGroupRequest {
	s.Ec2TagFilters = shape.CloneSlice(v)
	return s
}

// AddEc2TagFilters appends v to Ec2TagFilters.
func (s *CreateDeploymentGroupRequest) AddEc2TagFilters(v ...EC2TagFilter) *CreateDeploymentGroupRequest {
	if s.Ec2TagFilters == nil {
		s.Ec2TagFilters = make([]EC2TagFilter, 0, len(v))
	}
	s.Ec2TagFilters = append(s.Ec2TagFilters, v...)
	return s
}

// SetOnPremisesInstanceTagFilters replaces OnPremisesInstanceTagFilters with a copy of v. A nil v clears the field.
func (s *CreateDeploymentGroupRequest) SetOnPremisesInstanceTagFilters(v []TagFilter) *CreateDeploymentGroupRequest {
	s.OnPremisesInstanceTagFilters = shape.CloneSlice(v)
	return s
}

// AddOnPremisesInstanceTagFilters appends v to OnPremisesInstanceTagFilters.
func (s *CreateDeploymentGroupRequest) AddOnPremisesInstanceTagFilters(v ...TagFilter) *CreateDeploymentGroupRequest {
	if s.OnPremisesInstanceTagFilters == nil {
		s.OnPremisesInstanceTagFilters = make([]TagFilter, 0, len(v))
	}
	s.OnPremisesInstanceTagFilters = append(s.OnPremisesInstanceTagFilters, v...)
	return s
}

// SetAutoScalingGroups replaces AutoScalingGroups with a copy of v. A nil v clears the field.
func (s *CreateDeploymentGroupRequest) SetAutoScalingGroups(v []string) *CreateDeploymentGroupRequest {
	s.AutoScalingGroups = shape.CloneSlice(v)
	return s
}

// AddAutoScalingGroups appends v to AutoScalingGroups.
func (s *CreateDeploymentGroupRequest) AddAutoScalingGroups(v ...string) *CreateDeploymentGroupRequest {
	if s.AutoScalingGroups == nil {
		s.AutoScalingGroups = make([]string, 0, len(v))
	}
	s.AutoScalingGroups = append(s.AutoScalingGroups, v...)
	return s
}

// SetServiceRoleArn sets the ServiceRoleArn field's value.
func (s *CreateDeploymentGroupRequest) SetServiceRoleArn(v string) *CreateDeploymentGroupRequest {
	s.ServiceRoleArn = aws.String(v)
	return s
}

// SetTriggerConfigurations replaces TriggerConfigurations with a copy of v. A nil v clears the field.
func (s *CreateDeploymentGroupRequest) SetTriggerConfigurations(v []TriggerConfig) *CreateDeploymentGroupRequest {
	s.TriggerConfigurations = shape.CloneSlice(v)
	return s
}

// AddTriggerConfigurations appends v to TriggerConfigurations.
func (s *CreateDeploymentGroupRequest) AddTriggerConfigurations(v ...TriggerConfig) *CreateDeploymentGroupRequest {
	if s.TriggerConfigurations == nil {
		s.TriggerConfigurations = make([]TriggerConfig, 0, len(v))
	}
	s.TriggerConfigurations = append(s.TriggerConfigurations, v...)
	return s
}

// SetAlarmConfiguration sets the AlarmConfiguration field's value.
func (s *CreateDeploymentGroupRequest) SetAlarmConfiguration(v *AlarmConfiguration) *CreateDeploymentGroupRequest {
	s.AlarmConfiguration = v
	return s
}

// SetAutoRollbackConfiguration sets the AutoRollbackConfiguration field's value.
func (s *CreateDeploymentGroupRequest) SetAutoRollbackConfiguration(v *AutoRollbackConfiguration) *CreateDeploymentGroupRequest {
	s.AutoRollbackConfiguration = v
	return s
}

// SetDeploymentStyle sets the DeploymentStyle field's value.
func (s *CreateDeploymentGroupRequest) SetDeploymentStyle(v *DeploymentStyle) *CreateDeploymentGroupRequest {
	s.DeploymentStyle = v
	return s
}

// SetBlueGreenDeploymentConfiguration sets the BlueGreenDeploymentConfiguration field's value.
func (s *CreateDeploymentGroupRequest) SetBlueGreenDeploymentConfiguration(v *BlueGreenDeploymentConfiguration) *CreateDeploymentGroupRequest {
	s.BlueGreenDeploymentConfiguration = v
	return s
}

// SetLoadBalancerInfo sets the LoadBalancerInfo field's value.
func (s *CreateDeploymentGroupRequest) SetLoadBalancerInfo(v *LoadBalancerInfo) *CreateDeploymentGroupRequest {
	s.LoadBalancerInfo = v
	return s
}

// SetEc2TagSet sets the Ec2TagSet field's value.
func (s *CreateDeploymentGroupRequest) SetEc2TagSet(v *EC2TagSet) *CreateDeploymentGroupRequest {
	s.Ec2TagSet = v
	return s
}

// SetEcsServices replaces EcsServices with a copy of v. A nil v clears the field.
func (s *CreateDeploymentGroupRequest) SetEcsServices(v []ECSService) *CreateDeploymentGroupRequest {
	s.EcsServices = shape.CloneSlice(v)
	return s
}

// AddEcsServices appends v to EcsServices.
func (s *CreateDeploymentGroupRequest) AddEcsServices(v ...ECSService) *CreateDeploymentGroupRequest {
	if s.EcsServices == nil {
		s.EcsServices = make([]ECSService, 0, len(v))
	}
	s.EcsServices = append(s.EcsServices, v...)
	return s
}

// SetOnPremisesTagSet sets the OnPremisesTagSet field's value.
func (s *CreateDeploymentGroupRequest) SetOnPremisesTagSet(v *OnPremisesTagSet) *CreateDeploymentGroupRequest {
	s.OnPremisesTagSet = v
	return s
}

// SetTags replaces Tags with a copy of v. A nil v clears the field.
func (s *CreateDeploymentGroupRequest) SetTags(v []Tag) *CreateDeploymentGroupRequest {
	s.Tags = shape.CloneSlice(v)
	return s
}

// AddTags appends v to Tags.
func (s *CreateDeploymentGroupRequest) AddTags(v ...Tag) *CreateDeploymentGroupRequest {
	if s.Tags == nil {
		s.Tags = make([]Tag, 0, len(v))
	}
	s.Tags = append(s.Tags, v...)
	return s
}

func (s CreateDeploymentGroupRequest) String() string {
	return shape.Render(s)
}

// Equal reports whether s and other hold the same field values.
func (s *CreateDeploymentGroupRequest) Equal(other *CreateDeploymentGroupRequest) bool {
	return shape.Equal(s, other)
}

func (s *CreateDeploymentGroupRequest) HashCode() int32 {
	return shape.Hash(s)
}

// Validate checks the documented service constraints locally.
func (s *CreateDeploymentGroupRequest) Validate() error {
	return validation.Struct(s)
}

// CreateDeploymentGroupResult is the output of the CreateDeploymentGroup operation.
type CreateDeploymentGroupResult struct {
	DeploymentGroupId *string `json:"deploymentGroupId,omitempty" yaml:"deploymentGroupId,omitempty"`
}

// SetDeploymentGroupId sets the DeploymentGroupId field's value.
func (s *CreateDeploymentGroupResult) SetDeploymentGroupId(v string) *CreateDeploymentGroupResult {
	s.DeploymentGroupId = aws.String(v)
	return s
}

func (s CreateDeploymentGroupResult) String() string {
	return shape.Render(s)
}

func (s *CreateDeploymentGroupResult) Equal(other *CreateDeploymentGroupResult) bool {
	return shape.Equal(s, other)
}

func (s *CreateDeploymentGroupResult) HashCode() int32 {
	return shape.Hash(s)
}

// DeleteDeploymentGroupRequest is the input of the DeleteDeploymentGroup operation, which
// deletes a deployment group.
type DeleteDeploymentGroupRequest struct {
	ApplicationName     *string `json:"applicationName,omitempty" yaml:"applicationName,omitempty" validate:"required,min=1,max=100"`
	DeploymentGroupName *string `json:"deploymentGroupName,omitempty" yaml:"deploymentGroupName,omitempty" validate:"required,min=1,max=100"`
}

// SetApplicationName sets the ApplicationName field's value.
func (s *DeleteDeploymentGroupRequest) SetApplicationName(v string) *DeleteDeploymentGroupRequest {
	s.ApplicationName = aws.String(v)
	return s
}

// SetDeploymentGroupName sets the DeploymentGroupName field's value.
func (s *DeleteDeploymentGroupRequest) SetDeploymentGroupName(v string) *DeleteDeploymentGroupRequest {
	s.DeploymentGroupName = aws.String(v)
	return s
}

func (s DeleteDeploymentGroupRequest) String() string {
	return shape.Render(s)
}

// Equal reports whether s and other hold the same field values.
func (s *DeleteDeploymentGroupRequest) Equal(other *DeleteDeploymentGroupRequest) bool {
	return shape.Equal(s, other)
}

func (s *DeleteDeploymentGroupRequest) HashCode() int32 {
	return shape.Hash(s)
}

// Validate checks the documented service constraints locally.
func (s *DeleteDeploymentGroupRequest) Validate() error {
	return validation.Struct(s)
}

// DeleteDeploymentGroupResult is the output of the DeleteDeploymentGroup operation.
type DeleteDeploymentGroupResult struct {
	// Auto Scaling groups whose lifecycle hooks could not be removed.
	HooksNotCleanedUp []AutoScalingGroup `json:"hooksNotCleanedUp,omitempty" yaml:"hooksNotCleanedUp,omitempty" validate:"omitempty,dive"`
}

// SetHooksNotCleanedUp replaces HooksNotCleanedUp with a copy of v. A nil v clears the field.
func (s *DeleteDeploymentGroupResult) SetHooksNotCleanedUp(v []AutoScalingGroup) *DeleteDeploymentGroupResult {
	s.HooksNotCleanedUp = shape.CloneSlice(v)
	return s
}

// AddHooksNotCleanedUp appends v to HooksNotCleanedUp.
func (s *DeleteDeploymentGroupResult) AddHooksNotCleanedUp(v ...AutoScalingGroup) *DeleteDeploymentGroupResult {
	if s.HooksNotCleanedUp == nil {
		s.HooksNotCleanedUp = make([]AutoScalingGroup, 0, len(v))
	}
	s.HooksNotCleanedUp = append(s.HooksNotCleanedUp, v...)
	return s
}

func (s DeleteDeploymentGroupResult) String() string {
	return shape.Render(s)
}

func (s *DeleteDeploymentGroupResult) Equal(other *DeleteDeploymentGroupResult) bool {
	return shape.Equal(s, other)
}

func (s *DeleteDeploymentGroupResult) HashCode() int32 {
	return shape.Hash(s)
}

// GetDeploymentGroupRequest is the input of the GetDeploymentGroup operation, which gets
// information about a deployment group.
type GetDeploymentGroupRequest struct {
	ApplicationName     *string `json:"applicationName,omitempty" yaml:"applicationName,omitempty" validate:"required,min=1,max=100"`
	DeploymentGroupName *string `json:"deploymentGroupName,omitempty" yaml:"deploymentGroupName,omitempty" validate:"required,min=1,max=100"`
}

// SetApplicationName sets the ApplicationName field's value.
func (s *GetDeploymentGroupRequest) SetApplicationName(v string) *GetDeploymentGroupRequest {
	s.ApplicationName = aws.String(v)
	return s
}

// SetDeploymentGroupName sets the DeploymentGroupName field's value.
func (s *GetDeploymentGroupRequest) SetDeploymentGroupName(v string) *GetDeploymentGroupRequest {
	s.DeploymentGroupName = aws.String(v)
	return s
}

func (s GetDeploymentGroupRequest) String() string {
	return shape.Render(s)
}

// Equal reports whether s and other hold the same field values.
func (s *GetDeploymentGroupRequest) Equal(other *GetDeploymentGroupRequest) bool {
	return shape.Equal(s, other)
}

func (s *GetDeploymentGroupRequest) HashCode() int32 {
	return shape.Hash(s)
}

// Validate checks the documented service constraints locally.
func (s *GetDeploymentGroupRequest) Validate() error {
	return validation.Struct(s)
}

// GetDeploymentGroupResult is the output of the GetDeploymentGroup operation.
type GetDeploymentGroupResult struct {
	DeploymentGroupInfo *DeploymentGroupInfo `json:"deploymentGroupInfo,omitempty" yaml:"deploymentGroupInfo,omitempty"`
}

// SetDeploymentGroupInfo sets the DeploymentGroupInfo field's value.
func (s *GetDeploymentGroupResult) SetDeploymentGroupInfo(v *DeploymentGroupInfo) *GetDeploymentGroupResult {
	s.DeploymentGroupInfo = v
	return s
}

func (s GetDeploymentGroupResult) String() string {
	return shape.Render(s)
}

func (s *GetDeploymentGroupResult) Equal(other *GetDeploymentGroupResult) bool {
	return shape.Equal(s, other)
}

func (s *GetDeploymentGroupResult) HashCode() int32 {
	return shape.Hash(s)
}

// ListDeploymentGroupsRequest is the input of the ListDeploymentGroups operation, which lists
// the deployment groups of an application.
type ListDeploymentGroupsRequest struct {
	ApplicationName *string `json:"applicationName,omitempty" yaml:"applicationName,omitempty" validate:"required,min=1,max=100"`
	NextToken       *string `json:"nextToken,omitempty" yaml:"nextToken,omitempty"`
}

// SetApplicationName sets the ApplicationName field's value.
func (s *ListDeploymentGroupsRequest) SetApplicationName(v string) *ListDeploymentGroupsRequest {
	s.ApplicationName = aws.String(v)
	return s
}

// SetNextToken sets the NextToken field's value.
func (s *ListDeploymentGroupsRequest) SetNextToken(v string) *ListDeploymentGroupsRequest {
	s.NextToken = aws.String(v)
	return s
}

func (s ListDeploymentGroupsRequest) String() string {
	return shape.Render(s)
}

// Equal reports whether s and other hold the same field values.
func (s *ListDeploymentGroupsRequest) Equal(other *ListDeploymentGroupsRequest) bool {
	return shape.Equal(s, other)
}

func (s *ListDeploymentGroupsRequest) HashCode() int32 {
	return shape.Hash(s)
}

// Validate checks the documented service constraints locally.
func (s *ListDeploymentGroupsRequest) Validate() error {
	return validation.Struct(s)
}

// ListDeploymentGroupsResult is the output of the ListDeploymentGroups operation.
type ListDeploymentGroupsResult struct {
	ApplicationName  *string  `json:"applicationName,omitempty" yaml:"applicationName,omitempty"`
	DeploymentGroups []string `json:"deploymentGroups,omitempty" yaml:"deploymentGroups,omitempty"`
	NextToken        *string  `json:"nextToken,omitempty" yaml:"nextToken,omitempty"`
}

// SetApplicationName sets the ApplicationName field's value.
func (s *ListDeploymentGroupsResult) SetApplicationName(v string) *ListDeploymentGroupsResult {
	s.ApplicationName = aws.String(v)
	return s
}

// SetDeploymentGroups replaces DeploymentGroups with a copy of v. A nil v clears the field.
func (s *ListDeploymentGroupsResult) SetDeploymentGroups(v []string) *ListDeploymentGroupsResult {
	s.DeploymentGroups = shape.CloneSlice(v)
	return s
}

// AddDeploymentGroups appends v to DeploymentGroups.
func (s *ListDeploymentGroupsResult) AddDeploymentGroups(v ...string) *ListDeploymentGroupsResult {
	if s.DeploymentGroups == nil {
		s.DeploymentGroups = make([]string, 0, len(v))
	}
	s.DeploymentGroups = append(s.DeploymentGroups, v...)
	return s
}

// SetNextToken sets the NextToken field's value.
func (s *ListDeploymentGroupsResult) SetNextToken(v string) *ListDeploymentGroupsResult {
	s.NextToken = aws.String(v)
	return s
}

func (s ListDeploymentGroupsResult) String() string {
	return shape.Render(s)
}

func (s *ListDeploymentGroupsResult) Equal(other *ListDeploymentGroupsResult) bool {
	return shape.Equal(s, other)
}

func (s *ListDeploymentGroupsResult) HashCode() int32 {
	return shape.Hash(s)
}

// UpdateDeploymentGroupRequest is the input of the UpdateDeploymentGroup operation, which
// changes information about a deployment group.
type UpdateDeploymentGroupRequest struct {
	ApplicationName            *string `json:"applicationName,omitempty" yaml:"applicationName,omitempty" validate:"required,min=1,max=100"`
	CurrentDeploymentGroupName *string `json:"currentDeploymentGroupName,omitempty" yaml:"currentDeploymentGroupName,omitempty" validate:"required,min=1,max=100"`
	NewDeploymentGroupName     *string `json:"newDeploymentGroupName,omitempty" yaml:"newDeploymentGroupName,omitempty" validate:"omitempty,min=1,max=100"`
	DeploymentConfigName       *string `json:"deploymentConfigName,omitempty" yaml:"deploymentConfigName,omitempty" validate:"omitempty,min=1,max=100"`

	// An empty list removes every EC2 tag filter of the group.
	Ec2TagFilters                []EC2TagFilter `json:"ec2TagFilters,omitempty" yaml:"ec2TagFilters,omitempty" validate:"omitempty,dive"`
	OnPremisesInstanceTagFilters []TagFilter    `json:"onPremisesInstanceTagFilters,omitempty" yaml:"onPremisesInstanceTagFilters,omitempty" validate:"omitempty,dive"`

	// An empty list removes every Auto Scaling group of the deployment group.
	AutoScalingGroups                []string                          `json:"autoScalingGroups,omitempty" yaml:"autoScalingGroups,omitempty"`
	ServiceRoleArn                   *string                           `json:"serviceRoleArn,omitempty" yaml:"serviceRoleArn,omitempty"`
	TriggerConfigurations            []TriggerConfig                   `json:"triggerConfigurations,omitempty" yaml:"triggerConfigurations,omitempty" validate:"omitempty,dive"`
	AlarmConfiguration               *AlarmConfiguration               `json:"alarmConfiguration,omitempty" yaml:"alarmConfiguration,omitempty"`
	AutoRollbackConfiguration        *AutoRollbackConfiguration        `json:"autoRollbackConfiguration,omitempty" yaml:"autoRollbackConfiguration,omitempty"`
	DeploymentStyle                  *DeploymentStyle                  `json:"deploymentStyle,omitempty" yaml:"deploymentStyle,omitempty"`
	BlueGreenDeploymentConfiguration *BlueGreenDeploymentConfiguration `json:"blueGreenDeploymentConfiguration,omitempty" yaml:"blueGreenDeploymentConfiguration,omitempty"`
	LoadBalancerInfo                 *LoadBalancerInfo                 `json:"loadBalancerInfo,omitempty" yaml:"loadBalancerInfo,omitempty"`
	Ec2TagSet                        *EC2TagSet                        `json:"ec2TagSet,omitempty" yaml:"ec2TagSet,omitempty"`
	EcsServices                      []ECSService                      `json:"ecsServices,omitempty" yaml:"ecsServices,omitempty" validate:"omitempty,dive"`
	OnPremisesTagSet                 *OnPremisesTagSet                 `json:"onPremisesTagSet,omitempty" yaml:"onPremisesTagSet,omitempty"`
}

// SetApplicationName sets the ApplicationName field's value.
func (s *UpdateDeploymentGroupRequest) SetApplicationName(v string) *UpdateDeploymentGroupRequest {
	s.ApplicationName = aws.String(v)
	return s
}

// SetCurrentDeploymentGroupName sets the CurrentDeploymentGroupName field's value.
func (s *UpdateDeploymentGroupRequest) SetCurrentDeploymentGroupName(v string) *UpdateDeploymentGroupRequest {
	s.CurrentDeploymentGroupName = aws.String(v)
	return s
}

// SetNewDeploymentGroupName sets the NewDeploymentGroupName field's value.
func (s *UpdateDeploymentGroupRequest) SetNewDeploymentGroupName(v string) *UpdateDeploymentGroupRequest {
	s.NewDeploymentGroupName = aws.String(v)
	return s
}

// SetDeploymentConfigName sets the DeploymentConfigName field's value.
func (s *UpdateDeploymentGroupRequest) SetDeploymentConfigName(v string) *UpdateDeploymentGroupRequest {
	s.DeploymentConfigName = aws.String(v)
	return s
}

// SetEc2TagFilters replaces Ec2TagFilters with a copy of v. A nil v clears the field.
func (s *UpdateDeploymentGroupRequest) SetEc2TagFilters(v []EC2TagFilter) *UpdateDeploymentGroupRequest {
	s.Ec2TagFilters = shape.CloneSlice(v)
	return s
}

// AddEc2TagFilters appends v to Ec2TagFilters.
func (s *UpdateDeploymentGroupRequest) AddEc2TagFilters(v ...EC2TagFilter) *UpdateDeploymentGroupRequest {
	if s.Ec2TagFilters == nil {
		s.Ec2TagFilters = make([]EC2TagFilter, 0, len(v))
	}
	s.Ec2TagFilters = append(s.Ec2TagFilters, v...)
	return s
}

// SetOnPremisesInstanceTagFilters replaces OnPremisesInstanceTagFilters with a copy of v. A nil v clears the field.
func (s *UpdateDeploymentGroupRequest) SetOnPremisesInstanceTagFilters(v []TagFilter) *UpdateDeploymentGroupRequest {
	s.OnPremisesInstanceTagFilters = shape.CloneSlice(v)
	return s
}

// AddOnPremisesInstanceTagFilters appends v to OnPremisesInstanceTagFilters.
func (s *UpdateDeploymentGroupRequest) AddOnPremisesInstanceTagFilters(v ...TagFilter) *UpdateDeploymentGroupRequest {
	if s.OnPremisesInstanceTagFilters == nil {
		s.OnPremisesInstanceTagFilters = make([]TagFilter, 0, len(v))
	}
	s.OnPremisesInstanceTagFilters = append(s.OnPremisesInstanceTagFilters, v...)
	return s
}

// SetAutoScalingGroups replaces AutoScalingGroups with a copy of v. A nil v clears the field.
func (s *UpdateDeploymentGroupRequest) SetAutoScalingGroups(v []string) *UpdateDeploymentGroupRequest {
	s.AutoScalingGroups = shape.CloneSlice(v)
	return s
}

// AddAutoScalingGroups appends v to AutoScalingGroups.
func (s *UpdateDeploymentGroupRequest) AddAutoScalingGroups(v ...string) *UpdateDeploymentGroupRequest {
	if s.AutoScalingGroups == nil {
		s.AutoScalingGroups = make([]string, 0, len(v))
	}
	s.AutoScalingGroups = append(s.AutoScalingGroups, v...)
	return s
}

// SetServiceRoleArn sets the ServiceRoleArn field's value.
func (s *UpdateDeploymentGroupRequest) SetServiceRoleArn(v string) *UpdateDeploymentGroupRequest {
	s.ServiceRoleArn = aws.String(v)
	return s
}

// SetTriggerConfigurations replaces TriggerConfigurations with a copy of v. A nil v clears the field.
func (s *UpdateDeploymentGroupRequest) SetTriggerConfigurations(v []TriggerConfig) *UpdateDeploymentGroupRequest {
	s.TriggerConfigurations = shape.CloneSlice(v)
	return s
}

// AddTriggerConfigurations appends v to TriggerConfigurations.
func (s *UpdateDeploymentGroupRequest) AddTriggerConfigurations(v ...TriggerConfig) *UpdateDeploymentGroupRequest {
	if s.TriggerConfigurations == nil {
		s.TriggerConfigurations = make([]TriggerConfig, 0, len(v))
	}
	s.TriggerConfigurations = append(s.TriggerConfigurations, v...)
	return s
}

// SetAlarmConfiguration sets the AlarmConfiguration field's value.
func (s *UpdateDeploymentGroupRequest) SetAlarmConfiguration(v *AlarmConfiguration) *UpdateDeploymentGroupRequest {
	s.AlarmConfiguration = v
	return s
}

// SetAutoRollbackConfiguration sets the AutoRollbackConfiguration field's value.
func (s *UpdateDeploymentGroupRequest) SetAutoRollbackConfiguration(v *AutoRollbackConfiguration) *UpdateDeploymentGroupRequest {
	s.AutoRollbackConfiguration = v
	return s
}

// SetDeploymentStyle sets the DeploymentStyle field's value.
func (s *UpdateDeploymentGroupRequest) SetDeploymentStyle(v *DeploymentStyle) *UpdateDeploymentGroupRequest {
	s.DeploymentStyle = v
	return s
}

// SetBlueGreenDeploymentConfiguration sets the BlueGreenDeploymentConfiguration field's value.
func (s *UpdateDeploymentGroupRequest) SetBlueGreenDeploymentConfiguration(v *BlueGreenDeploymentConfiguration) *UpdateDeploymentGroupRequest {
	s.BlueGreenDeploymentConfiguration = v
	return s
}

// SetLoadBalancerInfo sets the LoadBalancerInfo field's value.
func (s *UpdateDeploymentGroupRequest) SetLoadBalancerInfo(v *LoadBalancerInfo) *UpdateDeploymentGroupRequest {
	s.LoadBalancerInfo = v
	return s
}

// SetEc2TagSet sets the Ec2TagSet field's value.
func (s *UpdateDeploymentGroupRequest) SetEc2TagSet(v *EC2TagSet) *UpdateDeploymentGroupRequest {
	s.Ec2TagSet = v
	return s
}

// SetEcsServices replaces EcsServices with a copy of v. A nil v clears the field.
func (s *UpdateDeploymentGroupRequest) SetEcsServices(v []ECSService) *UpdateDeploymentGroupRequest {
	s.EcsServices = shape.CloneSlice(v)
	return s
}

// AddEcsServices appends v to EcsServices.
func (s *UpdateDeploymentGroupRequest) AddEcsServices(v ...ECSService) *UpdateDeploymentGroupRequest {
	if s.EcsServices == nil {
		s.EcsServices = make([]ECSService, 0, len(v))
	}
	s.EcsServices = append(s.EcsServices, v...)
	return s
}

// SetOnPremisesTagSet sets the OnPremisesTagSet field's value.
func (s *UpdateDeploymentGroupRequest) SetOnPremisesTagSet(v *OnPremisesTagSet) *UpdateDeploymentGroupRequest {
	s.OnPremisesTagSet = v
	return s
}

func (s UpdateDeploymentGroupRequest) String() string {
	return shape.Render(s)
}

// Equal reports whether s and other hold the same field values.
func (s *UpdateDeploymentGroupRequest) Equal(other *UpdateDeploymentGroupRequest) bool {
	return shape.Equal(s, other)
}

func (s *UpdateDeploymentGroupRequest) HashCode() int32 {
	return shape.Hash(s)
}

// Validate checks the documented service constraints locally.
func (s *UpdateDeploymentGroupRequest) Validate() error {
	return validation.Struct(s)
}

// UpdateDeploymentGroupResult is the output of the UpdateDeploymentGroup operation.
type UpdateDeploymentGroupResult struct {
	HooksNotCleanedUp []AutoScalingGroup `json:"hooksNotCleanedUp,omitempty" yaml:"hooksNotCleanedUp,omitempty" validate:"omitempty,dive"`
}

// SetHooksNotCleanedUp replaces HooksNotCleanedUp with a copy of v. A nil v clears the field.
func (s *UpdateDeploymentGroupResult) SetHooksNotCleanedUp(v []AutoScalingGroup) *UpdateDeploymentGroupResult {
	s.HooksNotCleanedUp = shape.CloneSlice(v)
	return s
}

// AddHooksNotCleanedUp appends v to HooksNotCleanedUp.
func (s *UpdateDeploymentGroupResult) AddHooksNotCleanedUp(v ...AutoScalingGroup) *UpdateDeploymentGroupResult {
	if s.HooksNotCleanedUp == nil {
		s.HooksNotCleanedUp = make([]AutoScalingGroup, 0, len(v))
	}
	s.HooksNotCleanedUp = append(s.HooksNotCleanedUp, v...)
	return s
}

func (s UpdateDeploymentGroupResult) String() string {
	return shape.Render(s)
}

func (s *UpdateDeploymentGroupResult) Equal(other *UpdateDeploymentGroupResult) bool {
	return shape.Equal(s, other)
}

func (s *UpdateDeploymentGroupResult) HashCode() int32 {
	return shape.Hash(s)
}

// AutoScalingGroup is an Auto Scaling group wired to a deployment group.
type AutoScalingGroup struct {
	Name *string `json:"name,omitempty" yaml:"name,omitempty"`

	// Lifecycle hook CodeDeploy installed on the group.
	Hook            *string `json:"hook,omitempty" yaml:"hook,omitempty"`
	TerminationHook *string `json:"terminationHook,omitempty" yaml:"terminationHook,omitempty"`
}

// SetName sets the Name field's value.
func (s *AutoScalingGroup) SetName(v string) *AutoScalingGroup {
	s.Name = aws.String(v)
	return s
}

// SetHook sets the Hook field's value.
func (s *AutoScalingGroup) SetHook(v string) *AutoScalingGroup {
	s.Hook = aws.String(v)
	return s
}

// SetTerminationHook sets the TerminationHook field's value.
func (s *AutoScalingGroup) SetTerminationHook(v string) *AutoScalingGroup {
	s.TerminationHook = aws.String(v)
	return s
}

func (s AutoScalingGroup) String() string {
	return shape.Render(s)
}

func (s *AutoScalingGroup) Equal(other *AutoScalingGroup) bool {
	return shape.Equal(s, other)
}

func (s *AutoScalingGroup) HashCode() int32 {
	return shape.Hash(s)
}

// TriggerConfig sends notifications about deployment or instance events to an SNS topic.
type TriggerConfig struct {
	TriggerName *string `json:"triggerName,omitempty" yaml:"triggerName,omitempty"`

	// ARN of the Amazon SNS topic receiving notifications.
	TriggerTargetArn *string            `json:"triggerTargetArn,omitempty" yaml:"triggerTargetArn,omitempty"`
	TriggerEvents    []TriggerEventType `json:"triggerEvents,omitempty" yaml:"triggerEvents,omitempty" validate:"omitempty,dive,enum"`
}

// SetTriggerName sets the TriggerName field's value.
func (s *TriggerConfig) SetTriggerName(v string) *TriggerConfig {
	s.TriggerName = aws.String(v)
	return s
}

// SetTriggerTargetArn sets the TriggerTargetArn field's value.
func (s *TriggerConfig) SetTriggerTargetArn(v string) *TriggerConfig {
	s.TriggerTargetArn = aws.String(v)
	return s
}

// SetTriggerEvents replaces TriggerEvents with a copy of v. A nil v clears the field.
func (s *TriggerConfig) SetTriggerEvents(v []TriggerEventType) *TriggerConfig {
	s.TriggerEvents = shape.CloneSlice(v)
	return s
}

// AddTriggerEvents appends v to TriggerEvents.
func (s *TriggerConfig) AddTriggerEvents(v ...TriggerEventType) *TriggerConfig {
	if s.TriggerEvents == nil {
		s.TriggerEvents = make([]TriggerEventType, 0, len(v))
	}
	s.TriggerEvents = append(s.TriggerEvents, v...)
	return s
}

func (s TriggerConfig) String() string {
	return shape.Render(s)
}

func (s *TriggerConfig) Equal(other *TriggerConfig) bool {
	return shape.Equal(s, other)
}

func (s *TriggerConfig) HashCode() int32 {
	return shape.Hash(s)
}

// Alarm names a CloudWatch alarm.
type Alarm struct {
	Name *string `json:"name,omitempty" yaml:"name,omitempty"`
}

// SetName sets the Name field's value.
func (s *Alarm) SetName(v string) *Alarm {
	s.Name = aws.String(v)
	return s
}

func (s Alarm) String() string {
	return shape.Render(s)
}

func (s *Alarm) Equal(other *Alarm) bool {
	return shape.Equal(s, other)
}

func (s *Alarm) HashCode() int32 {
	return shape.Hash(s)
}

// AlarmConfiguration lists the CloudWatch alarms watched during a deployment.
type AlarmConfiguration struct {
	Enabled *bool `json:"enabled,omitempty" yaml:"enabled,omitempty"`

	// Continue the deployment when alarm state cannot be read.
	IgnorePollAlarmFailure *bool   `json:"ignorePollAlarmFailure,omitempty" yaml:"ignorePollAlarmFailure,omitempty"`
	Alarms                 []Alarm `json:"alarms,omitempty" yaml:"alarms,omitempty" validate:"omitempty,dive"`
}

// SetEnabled sets the Enabled field's value.
func (s *AlarmConfiguration) SetEnabled(v bool) *AlarmConfiguration {
	s.Enabled = aws.Bool(v)
	return s
}

// SetIgnorePollAlarmFailure sets the IgnorePollAlarmFailure field's value.
func (s *AlarmConfiguration) SetIgnorePollAlarmFailure(v bool) *AlarmConfiguration {
	s.IgnorePollAlarmFailure = aws.Bool(v)
	return s
}

// SetAlarms replaces Alarms with a copy of v. A nil v clears the field.
func (s *AlarmConfiguration) SetAlarms(v []Alarm) *AlarmConfiguration {
	s.Alarms = shape.CloneSlice(v)
	return s
}

// AddAlarms appends v to Alarms.
func (s *AlarmConfiguration) AddAlarms(v ...Alarm) *AlarmConfiguration {
	if s.Alarms == nil {
		s.Alarms = make([]Alarm, 0, len(v))
	}
	s.Alarms = append(s.Alarms, v...)
	return s
}

func (s AlarmConfiguration) String() string {
	return shape.Render(s)
}

func (s *AlarmConfiguration) Equal(other *AlarmConfiguration) bool {
	return shape.Equal(s, other)
}

func (s *AlarmConfiguration) HashCode() int32 {
	return shape.Hash(s)
}

// AutoRollbackConfiguration controls automatic rollback when a deployment fails or stops.
type AutoRollbackConfiguration struct {
	Enabled *bool               `json:"enabled,omitempty" yaml:"enabled,omitempty"`
	Events  []AutoRollbackEvent `json:"events,omitempty" yaml:"events,omitempty" validate:"omitempty,dive,enum"`
}

// SetEnabled sets the Enabled field's value.
func (s *AutoRollbackConfiguration) SetEnabled(v bool) *AutoRollbackConfiguration {
	s.Enabled = aws.Bool(v)
	return s
}

// SetEvents replaces Events with a copy of v. A nil v clears the field.
func (s *AutoRollbackConfiguration) SetEvents(v []AutoRollbackEvent) *AutoRollbackConfiguration {
	s.Events = shape.CloneSlice(v)
	return s
}

// AddEvents appends v to Events.
func (s *AutoRollbackConfiguration) AddEvents(v ...AutoRollbackEvent) *AutoRollbackConfiguration {
	if s.Events == nil {
		s.Events = make([]AutoRollbackEvent, 0, len(v))
	}
	s.Events = append(s.Events, v...)
	return s
}

func (s AutoRollbackConfiguration) String() string {
	return shape.Render(s)
}

func (s *AutoRollbackConfiguration) Equal(other *AutoRollbackConfiguration) bool {
	return shape.Equal(s, other)
}

func (s *AutoRollbackConfiguration) HashCode() int32 {
	return shape.Hash(s)
}

// DeploymentStyle is the deployment type together with its traffic option.
type DeploymentStyle struct {
	DeploymentType   DeploymentType   `json:"deploymentType,omitempty" yaml:"deploymentType,omitempty" validate:"omitempty,enum"`
	DeploymentOption DeploymentOption `json:"deploymentOption,omitempty" yaml:"deploymentOption,omitempty" validate:"omitempty,enum"`
}

// SetDeploymentType sets the DeploymentType field's value.
func (s *DeploymentStyle) SetDeploymentType(v DeploymentType) *DeploymentStyle {
	s.DeploymentType = v
	return s
}

// SetDeploymentOption sets the DeploymentOption field's value.
func (s *DeploymentStyle) SetDeploymentOption(v DeploymentOption) *DeploymentStyle {
	s.DeploymentOption = v
	return s
}

func (s DeploymentStyle) String() string {
	return shape.Render(s)
}

func (s *DeploymentStyle) Equal(other *DeploymentStyle) bool {
	return shape.Equal(s, other)
}

func (s *DeploymentStyle) HashCode() int32 {
	return shape.Hash(s)
}

// BlueInstanceTerminationOption says what happens to the original fleet after a successful
// blue/green deployment.
type BlueInstanceTerminationOption struct {
	Action InstanceAction `json:"action,omitempty" yaml:"action,omitempty" validate:"omitempty,enum"`

	// Minutes to wait before terminating. At most 2880.
	TerminationWaitTimeInMinutes *int32 `json:"terminationWaitTimeInMinutes,omitempty" yaml:"terminationWaitTimeInMinutes,omitempty" validate:"omitempty,min=0,max=2880"`
}

// SetAction sets the Action field's value.
func (s *BlueInstanceTerminationOption) SetAction(v InstanceAction) *BlueInstanceTerminationOption {
	s.Action = v
	return s
}

// SetTerminationWaitTimeInMinutes sets the TerminationWaitTimeInMinutes field's value.
func (s *BlueInstanceTerminationOption) SetTerminationWaitTimeInMinutes(v int32) *BlueInstanceTerminationOption {
	s.TerminationWaitTimeInMinutes = aws.Int32(v)
	return s
}

func (s BlueInstanceTerminationOption) String() string {
	return shape.Render(s)
}

func (s *BlueInstanceTerminationOption) Equal(other *BlueInstanceTerminationOption) bool {
	return shape.Equal(s, other)
}

func (s *BlueInstanceTerminationOption) HashCode() int32 {
	return shape.Hash(s)
}

// DeploymentReadyOption says when to reroute traffic to the replacement environment.
type DeploymentReadyOption struct {
	ActionOnTimeout   DeploymentReadyAction `json:"actionOnTimeout,omitempty" yaml:"actionOnTimeout,omitempty" validate:"omitempty,enum"`
	WaitTimeInMinutes *int32                `json:"waitTimeInMinutes,omitempty" yaml:"waitTimeInMinutes,omitempty"`
}

// SetActionOnTimeout sets the ActionOnTimeout field's value.
func (s *DeploymentReadyOption) SetActionOnTimeout(v DeploymentReadyAction) *DeploymentReadyOption {
	s.ActionOnTimeout = v
	return s
}

// SetWaitTimeInMinutes sets the WaitTimeInMinutes field's value.
func (s *DeploymentReadyOption) SetWaitTimeInMinutes(v int32) *DeploymentReadyOption {
	s.WaitTimeInMinutes = aws.Int32(v)
	return s
}

func (s DeploymentReadyOption) String() string {
	return shape.Render(s)
}

func (s *DeploymentReadyOption) Equal(other *DeploymentReadyOption) bool {
	return shape.Equal(s, other)
}

func (s *DeploymentReadyOption) HashCode() int32 {
	return shape.Hash(s)
}

type GreenFleetProvisioningOption struct {
	Action GreenFleetProvisioningAction `json:"action,omitempty" yaml:"action,omitempty" validate:"omitempty,enum"`
}

// SetAction sets the Action field's value.
func (s *GreenFleetProvisioningOption) SetAction(v GreenFleetProvisioningAction) *GreenFleetProvisioningOption {
	s.Action = v
	return s
}

func (s GreenFleetProvisioningOption) String() string {
	return shape.Render(s)
}

func (s *GreenFleetProvisioningOption) Equal(other *GreenFleetProvisioningOption) bool {
	return shape.Equal(s, other)
}

func (s *GreenFleetProvisioningOption) HashCode() int32 {
	return shape.Hash(s)
}

// BlueGreenDeploymentConfiguration holds the options of a blue/green deployment group.
type BlueGreenDeploymentConfiguration struct {
	TerminateBlueInstancesOnDeploymentSuccess *BlueInstanceTerminationOption `json:"terminateBlueInstancesOnDeploymentSuccess,omitempty" yaml:"terminateBlueInstancesOnDeploymentSuccess,omitempty"`
	DeploymentReadyOption                     *DeploymentReadyOption         `json:"deploymentReadyOption,omitempty" yaml:"deploymentReadyOption,omitempty"`
	GreenFleetProvisioningOption              *GreenFleetProvisioningOption  `json:"greenFleetProvisioningOption,omitempty" yaml:"greenFleetProvisioningOption,omitempty"`
}

// SetTerminateBlueInstancesOnDeploymentSuccess sets the TerminateBlueInstancesOnDeploymentSuccess field's value.
func (s *BlueGreenDeploymentConfiguration) SetTerminateBlueInstancesOnDeploymentSuccess(v *BlueInstanceTerminationOption) *BlueGreenDeploymentConfiguration {
	s.TerminateBlueInstancesOnDeploymentSuccess = v
	return s
}

// SetDeploymentReadyOption sets the DeploymentReadyOption field's value.
func (s *BlueGreenDeploymentConfiguration) SetDeploymentReadyOption(v *DeploymentReadyOption) *BlueGreenDeploymentConfiguration {
	s.DeploymentReadyOption = v
	return s
}

// SetGreenFleetProvisioningOption sets the GreenFleetProvisioningOption field's value.
func (s *BlueGreenDeploymentConfiguration) SetGreenFleetProvisioningOption(v *GreenFleetProvisioningOption) *BlueGreenDeploymentConfiguration {
	s.GreenFleetProvisioningOption = v
	return s
}

func (s BlueGreenDeploymentConfiguration) String() string {
	return shape.Render(s)
}

func (s *BlueGreenDeploymentConfiguration) Equal(other *BlueGreenDeploymentConfiguration) bool {
	return shape.Equal(s, other)
}

func (s *BlueGreenDeploymentConfiguration) HashCode() int32 {
	return shape.Hash(s)
}

// ELBInfo names a Classic Load Balancer.
type ELBInfo struct {
	Name *string `json:"name,omitempty" yaml:"name,omitempty"`
}

// SetName sets the Name field's value.
func (s *ELBInfo) SetName(v string) *ELBInfo {
	s.Name = aws.String(v)
	return s
}

func (s ELBInfo) String() string {
	return shape.Render(s)
}

func (s *ELBInfo) Equal(other *ELBInfo) bool {
	return shape.Equal(s, other)
}

func (s *ELBInfo) HashCode() int32 {
	return shape.Hash(s)
}

// TargetGroupInfo names an Elastic Load Balancing target group.
type TargetGroupInfo struct {
	Name *string `json:"name,omitempty" yaml:"name,omitempty"`
}

// SetName sets the Name field's value.
func (s *TargetGroupInfo) SetName(v string) *TargetGroupInfo {
	s.Name = aws.String(v)
	return s
}

func (s TargetGroupInfo) String() string {
	return shape.Render(s)
}

func (s *TargetGroupInfo) Equal(other *TargetGroupInfo) bool {
	return shape.Equal(s, other)
}

func (s *TargetGroupInfo) HashCode() int32 {
	return shape.Hash(s)
}

// TrafficRoute lists the listeners that route traffic to a target group.
type TrafficRoute struct {
	ListenerArns []string `json:"listenerArns,omitempty" yaml:"listenerArns,omitempty"`
}

// SetListenerArns replaces ListenerArns with a copy of v. A nil v clears the field.
func (s *TrafficRoute) SetListenerArns(v []string) *TrafficRoute {
	s.ListenerArns = shape.CloneSlice(v)
	return s
}

// AddListenerArns appends v to ListenerArns.
func (s *TrafficRoute) AddListenerArns(v ...string) *TrafficRoute {
	if s.ListenerArns == nil {
		s.ListenerArns = make([]string, 0, len(v))
	}
	s.ListenerArns = append(s.ListenerArns, v...)
	return s
}

func (s TrafficRoute) String() string {
	return shape.Render(s)
}

func (s *TrafficRoute) Equal(other *TrafficRoute) bool {
	return shape.Equal(s, other)
}

func (s *TrafficRoute) HashCode() int32 {
	return shape.Hash(s)
}

// TargetGroupPairInfo is the pair of target groups used by an ECS blue/green deployment.
type TargetGroupPairInfo struct {
	TargetGroups     []TargetGroupInfo `json:"targetGroups,omitempty" yaml:"targetGroups,omitempty" validate:"omitempty,dive"`
	ProdTrafficRoute *TrafficRoute     `json:"prodTrafficRoute,omitempty" yaml:"prodTrafficRoute,omitempty"`
	TestTrafficRoute *TrafficRoute     `json:"testTrafficRoute,omitempty" yaml:"testTrafficRoute,omitempty"`
}

// SetTargetGroups replaces TargetGroups with a copy of v. A nil v clears the field.
func (s *TargetGroupPairInfo) SetTargetGroups(v []TargetGroupInfo) *TargetGroupPairInfo {
	s.TargetGroups = shape.CloneSlice(v)
	return s
}

// AddTargetGroups appends v to TargetGroups.
func (s *TargetGroupPairInfo) AddTargetGroups(v ...TargetGroupInfo) *TargetGroupPairInfo {
	if s.TargetGroups == nil {
		s.TargetGroups = make([]TargetGroupInfo, 0, len(v))
	}
	s.TargetGroups = append(s.TargetGroups, v...)
	return s
}

// SetProdTrafficRoute sets the ProdTrafficRoute field's value.
func (s *TargetGroupPairInfo) SetProdTrafficRoute(v *TrafficRoute) *TargetGroupPairInfo {
	s.ProdTrafficRoute = v
	return s
}

// SetTestTrafficRoute sets the TestTrafficRoute field's value.
func (s *TargetGroupPairInfo) SetTestTrafficRoute(v *TrafficRoute) *TargetGroupPairInfo {
	s.TestTrafficRoute = v
	return s
}

func (s TargetGroupPairInfo) String() string {
	return shape.Render(s)
}

func (s *TargetGroupPairInfo) Equal(other *TargetGroupPairInfo) bool {
	return shape.Equal(s, other)
}

func (s *TargetGroupPairInfo) HashCode() int32 {
	return shape.Hash(s)
}

// LoadBalancerInfo describes the load balancer used in a deployment.
type LoadBalancerInfo struct {
	ElbInfoList             []ELBInfo             `json:"elbInfoList,omitempty" yaml:"elbInfoList,omitempty" validate:"omitempty,dive"`
	TargetGroupInfoList     []TargetGroupInfo     `json:"targetGroupInfoList,omitempty" yaml:"targetGroupInfoList,omitempty" validate:"omitempty,dive"`
	TargetGroupPairInfoList []TargetGroupPairInfo `json:"targetGroupPairInfoList,omitempty" yaml:"targetGroupPairInfoList,omitempty" validate:"omitempty,dive"`
}

// SetElbInfoList replaces ElbInfoList with a copy of v. A nil v clears the field.
func (s *LoadBalancerInfo) SetElbInfoList(v []ELBInfo) *LoadBalancerInfo {
	s.ElbInfoList = shape.CloneSlice(v)
	return s
}

// AddElbInfoList appends v to ElbInfoList.
func (s *LoadBalancerInfo) AddElbInfoList(v ...ELBInfo) *LoadBalancerInfo {
	if s.ElbInfoList == nil {
		s.ElbInfoList = make([]ELBInfo, 0, len(v))
	}
	s.ElbInfoList = append(s.ElbInfoList, v...)
	return s
}

// SetTargetGroupInfoList replaces TargetGroupInfoList with a copy of v. A nil v clears the field.
func (s *LoadBalancerInfo) SetTargetGroupInfoList(v []TargetGroupInfo) *LoadBalancerInfo {
	s.TargetGroupInfoList = shape.CloneSlice(v)
	return s
}

// AddTargetGroupInfoList appends v to TargetGroupInfoList.
func (s *LoadBalancerInfo) AddTargetGroupInfoList(v ...TargetGroupInfo) *LoadBalancerInfo {
	if s.TargetGroupInfoList == nil {
		s.TargetGroupInfoList = make([]TargetGroupInfo, 0, len(v))
	}
	s.TargetGroupInfoList = append(s.TargetGroupInfoList, v...)
	return s
}

// SetTargetGroupPairInfoList replaces TargetGroupPairInfoList with a copy of v. A nil v clears the field.
func (s *LoadBalancerInfo) SetTargetGroupPairInfoList(v []TargetGroupPairInfo) *LoadBalancerInfo {
	s.TargetGroupPairInfoList = shape.CloneSlice(v)
	return s
}

// AddTargetGroupPairInfoList appends v to TargetGroupPairInfoList.
func (s *LoadBalancerInfo) AddTargetGroupPairInfoList(v ...TargetGroupPairInfo) *LoadBalancerInfo {
	if s.TargetGroupPairInfoList == nil {
		s.TargetGroupPairInfoList = make([]TargetGroupPairInfo, 0, len(v))
	}
	s.TargetGroupPairInfoList = append(s.TargetGroupPairInfoList, v...)
	return s
}

func (s LoadBalancerInfo) String() string {
	return shape.Render(s)
}

func (s *LoadBalancerInfo) Equal(other *LoadBalancerInfo) bool {
	return shape.Equal(s, other)
}

func (s *LoadBalancerInfo) HashCode() int32 {
	return shape.Hash(s)
}

// ECSService names an Amazon ECS service and its cluster.
type ECSService struct {
	ServiceName *string `json:"serviceName,omitempty" yaml:"serviceName,omitempty"`
	ClusterName *string `json:"clusterName,omitempty" yaml:"clusterName,omitempty"`
}

// SetServiceName sets the ServiceName field's value.
func (s *ECSService) SetServiceName(v string) *ECSService {
	s.ServiceName = aws.String(v)
	return s
}

// SetClusterName sets the ClusterName field's value.
func (s *ECSService) SetClusterName(v string) *ECSService {
	s.ClusterName = aws.String(v)
	return s
}

func (s ECSService) String() string {
	return shape.Render(s)
}

func (s *ECSService) Equal(other *ECSService) bool {
	return shape.Equal(s, other)
}

func (s *ECSService) HashCode() int32 {
	return shape.Hash(s)
}

// LastDeploymentInfo summarizes the most recent deployment of a group.
type LastDeploymentInfo struct {
	DeploymentId *string          `json:"deploymentId,omitempty" yaml:"deploymentId,omitempty"`
	Status       DeploymentStatus `json:"status,omitempty" yaml:"status,omitempty" validate:"omitempty,enum"`
	EndTime      *time.Time       `json:"endTime,omitempty" yaml:"endTime,omitempty"`
	CreateTime   *time.Time       `json:"createTime,omitempty" yaml:"createTime,omitempty"`
}

// SetDeploymentId sets the DeploymentId field's value.
func (s *LastDeploymentInfo) SetDeploymentId(v string) *LastDeploymentInfo {
	s.DeploymentId = aws.String(v)
	return s
}

// SetStatus sets the Status field's value.
func (s *LastDeploymentInfo) SetStatus(v DeploymentStatus) *LastDeploymentInfo {
	s.Status = v
	return s
}

// SetEndTime sets the EndTime field's value.
func (s *LastDeploymentInfo) SetEndTime(v time.Time) *LastDeploymentInfo {
	s.EndTime = aws.Time(v)
	return s
}

// SetCreateTime sets the CreateTime field's value.
func (s *LastDeploymentInfo) SetCreateTime(v time.Time) *LastDeploymentInfo {
	s.CreateTime = aws.Time(v)
	return s
}

func (s LastDeploymentInfo) String() string {
	return shape.Render(s)
}

func (s *LastDeploymentInfo) Equal(other *LastDeploymentInfo) bool {
	return shape.Equal(s, other)
}

func (s *LastDeploymentInfo) HashCode() int32 {
	return shape.Hash(s)
}

// DeploymentGroupInfo describes a deployment group.
type DeploymentGroupInfo struct {
	ApplicationName              *string            `json:"applicationName,omitempty" yaml:"applicationName,omitempty" validate:"omitempty,min=1,max=100"`
	DeploymentGroupId            *string            `json:"deploymentGroupId,omitempty" yaml:"deploymentGroupId,omitempty"`
	DeploymentGroupName          *string            `json:"deploymentGroupName,omitempty" yaml:"deploymentGroupName,omitempty" validate:"omitempty,min=1,max=100"`
	DeploymentConfigName         *string            `json:"deploymentConfigName,omitempty" yaml:"deploymentConfigName,omitempty" validate:"omitempty,min=1,max=100"`
	Ec2TagFilters                []EC2TagFilter     `json:"ec2TagFilters,omitempty" yaml:"ec2TagFilters,omitempty" validate:"omitempty,dive"`
	OnPremisesInstanceTagFilters []TagFilter        `json:"onPremisesInstanceTagFilters,omitempty" yaml:"onPremisesInstanceTagFilters,omitempty" validate:"omitempty,dive"`
	AutoScalingGroups            []AutoScalingGroup `json:"autoScalingGroups,omitempty" yaml:"autoScalingGroups,omitempty" validate:"omitempty,dive"`
	ServiceRoleArn               *string            `json:"serviceRoleArn,omitempty" yaml:"serviceRoleArn,omitempty"`

	// The revision most recently deployed to the group.
	TargetRevision                   *RevisionLocation                 `json:"targetRevision,omitempty" yaml:"targetRevision,omitempty"`
	TriggerConfigurations            []TriggerConfig                   `json:"triggerConfigurations,omitempty" yaml:"triggerConfigurations,omitempty" validate:"omitempty,dive"`
	AlarmConfiguration               *AlarmConfiguration               `json:"alarmConfiguration,omitempty" yaml:"alarmConfiguration,omitempty"`
	AutoRollbackConfiguration        *AutoRollbackConfiguration        `json:"autoRollbackConfiguration,omitempty" yaml:"autoRollbackConfiguration,omitempty"`
	DeploymentStyle                  *DeploymentStyle                  `json:"deploymentStyle,omitempty" yaml:"deploymentStyle,omitempty"`
	BlueGreenDeploymentConfiguration *BlueGreenDeploymentConfiguration `json:"blueGreenDeploymentConfiguration,omitempty" yaml:"blueGreenDeploymentConfiguration,omitempty"`
	LoadBalancerInfo                 *LoadBalancerInfo                 `json:"loadBalancerInfo,omitempty" yaml:"loadBalancerInfo,omitempty"`
	LastSuccessfulDeployment         *LastDeploymentInfo               `json:"lastSuccessfulDeployment,omitempty" yaml:"lastSuccessfulDeployment,omitempty"`
	LastAttemptedDeployment          *LastDeploymentInfo               `json:"lastAttemptedDeployment,omitempty" yaml:"lastAttemptedDeployment,omitempty"`
	Ec2TagSet                        *EC2TagSet                        `json:"ec2TagSet,omitempty" yaml:"ec2TagSet,omitempty"`
	OnPremisesTagSet                 *OnPremisesTagSet                 `json:"onPremisesTagSet,omitempty" yaml:"onPremisesTagSet,omitempty"`
	ComputePlatform                  ComputePlatform                   `json:"computePlatform,omitempty" yaml:"computePlatform,omitempty" validate:"omitempty,enum"`
	EcsServices                      []ECSService                      `json:"ecsServices,omitempty" yaml:"ecsServices,omitempty" validate:"omitempty,dive"`
}

// SetApplicationName sets the ApplicationName field's value.
func (s *DeploymentGroupInfo) SetApplicationName(v string) *DeploymentGroupInfo {
	s.ApplicationName = aws.String(v)
	return s
}

// SetDeploymentGroupId sets the DeploymentGroupId field's value.
func (s *DeploymentGroupInfo) SetDeploymentGroupId(v string) *DeploymentGroupInfo {
	s.DeploymentGroupId = aws.String(v)
	return s
}

// SetDeploymentGroupName sets the DeploymentGroupName field's value.
func (s *DeploymentGroupInfo) SetDeploymentGroupName(v string) *DeploymentGroupInfo {
	s.DeploymentGroupName = aws.String(v)
	return s
}

// SetDeploymentConfigName sets the DeploymentConfigName field's value.
func (s *DeploymentGroupInfo) SetDeploymentConfigName(v string) *DeploymentGroupInfo {
	s.DeploymentConfigName = aws.String(v)
	return s
}

// SetEc2TagFilters replaces Ec2TagFilters with a copy of v. A nil v clears the field.
func (s *DeploymentGroupInfo) SetEc2TagFilters(v []EC2TagFilter) *DeploymentGroupInfo {
	s.Ec2TagFilters = shape.CloneSlice(v)
	return s
}

// AddEc2TagFilters appends v to Ec2TagFilters.
func (s *DeploymentGroupInfo) AddEc2TagFilters(v ...EC2TagFilter) *DeploymentGroupInfo {
	if s.Ec2TagFilters == nil {
		s.Ec2TagFilters = make([]EC2TagFilter, 0, len(v))
	}
	s.Ec2TagFilters = append(s.Ec2TagFilters, v...)
	return s
}

// SetOnPremisesInstanceTagFilters replaces OnPremisesInstanceTagFilters with a copy of v. A nil v clears the field.
func (s *DeploymentGroupInfo) SetOnPremisesInstanceTagFilters(v []TagFilter) *DeploymentGroupInfo {
	s.OnPremisesInstanceTagFilters = shape.CloneSlice(v)
	return s
}

// AddOnPremisesInstanceTagFilters appends v to OnPremisesInstanceTagFilters.
func (s *DeploymentGroupInfo) AddOnPremisesInstanceTagFilters(v ...TagFilter) *DeploymentGroupInfo {
	if s.OnPremisesInstanceTagFilters == nil {
		s.OnPremisesInstanceTagFilters = make([]TagFilter, 0, len(v))
	}
	s.OnPremisesInstanceTagFilters = append(s.OnPremisesInstanceTagFilters, v...)
	return s
}

// SetAutoScalingGroups replaces AutoScalingGroups with a copy of v. A nil v clears the field.
func (s *DeploymentGroupInfo) SetAutoScalingGroups(v []AutoScalingGroup) *DeploymentGroupInfo {
	s.AutoScalingGroups = shape.CloneSlice(v)
	return s
}

// AddAutoScalingGroups appends v to AutoScalingGroups.
func (s *DeploymentGroupInfo) AddAutoScalingGroups(v ...AutoScalingGroup) *DeploymentGroupInfo {
	if s.AutoScalingGroups == nil {
		s.AutoScalingGroups = make([]AutoScalingGroup, 0, len(v))
	}
	s.AutoScalingGroups = append(s.AutoScalingGroups, v...)
	return s
}

// SetServiceRoleArn sets the ServiceRoleArn field's value.
func (s *DeploymentGroupInfo) SetServiceRoleArn(v string) *DeploymentGroupInfo {
	s.ServiceRoleArn = aws.String(v)
	return s
}

// SetTargetRevision sets the TargetRevision field's value.
func (s *DeploymentGroupInfo) SetTargetRevision(v *RevisionLocation) *DeploymentGroupInfo {
	s.TargetRevision = v
	return s
}

// SetTriggerConfigurations replaces TriggerConfigurations with a copy of v. A nil v clears the field.
func (s *DeploymentGroupInfo) SetTriggerConfigurations(v []TriggerConfig) *DeploymentGroupInfo {
	s.TriggerConfigurations = shape.CloneSlice(v)
	return s
}

// AddTriggerConfigurations appends v to TriggerConfigurations.
func (s *DeploymentGroupInfo) AddTriggerConfigurations(v ...TriggerConfig) *DeploymentGroupInfo {
	if s.TriggerConfigurations == nil {
		s.TriggerConfigurations = make([]TriggerConfig, 0, len(v))
	}
	s.TriggerConfigurations = append(s.TriggerConfigurations, v...)
	return s
}

// SetAlarmConfiguration sets the AlarmConfiguration field's value.
func (s *DeploymentGroupInfo) SetAlarmConfiguration(v *AlarmConfiguration) *DeploymentGroupInfo {
	s.AlarmConfiguration = v
	return s
}

// SetAutoRollbackConfiguration sets the AutoRollbackConfiguration field's value.
func (s *DeploymentGroupInfo) SetAutoRollbackConfiguration(v *AutoRollbackConfiguration) *DeploymentGroupInfo {
	s.AutoRollbackConfiguration = v
	return s
}

// SetDeploymentStyle sets the DeploymentStyle field's value.
func (s *DeploymentGroupInfo) SetDeploymentStyle(v *DeploymentStyle) *DeploymentGroupInfo {
	s.DeploymentStyle = v
	return s
}

// SetBlueGreenDeploymentConfiguration sets the BlueGreenDeploymentConfiguration field's value.
func (s *DeploymentGroupInfo) SetBlueGreenDeploymentConfiguration(v *BlueGreenDeploymentConfiguration) *DeploymentGroupInfo {
	s.BlueGreenDeploymentConfiguration = v
	return s
}

// SetLoadBalancerInfo sets the LoadBalancerInfo field's value.
func (s *DeploymentGroupInfo) SetLoadBalancerInfo(v *LoadBalancerInfo) *DeploymentGroupInfo {
	s.LoadBalancerInfo = v
	return s
}

// SetLastSuccessfulDeployment sets the LastSuccessfulDeployment field's value.
func (s *DeploymentGroupInfo) SetLastSuccessfulDeployment(v *LastDeploymentInfo) *DeploymentGroupInfo {
	s.LastSuccessfulDeployment = v
	return s
}

// SetLastAttemptedDeployment sets the LastAttemptedDeployment field's value.
func (s *DeploymentGroupInfo) SetLastAttemptedDeployment(v *LastDeploymentInfo) *DeploymentGroupInfo {
	s.LastAttemptedDeployment = v
	return s
}

// SetEc2TagSet sets the Ec2TagSet field's value.
func (s *DeploymentGroupInfo) SetEc2TagSet(v *EC2TagSet) *DeploymentGroupInfo {
	s.Ec2TagSet = v
	return s
}

// SetOnPremisesTagSet sets the OnPremisesTagSet field's value.
func (s *DeploymentGroupInfo) SetOnPremisesTagSet(v *OnPremisesTagSet) *DeploymentGroupInfo {
	s.OnPremisesTagSet = v
	return s
}

// SetComputePlatform sets the ComputePlatform field's value.
func (s *DeploymentGroupInfo) SetComputePlatform(v ComputePlatform) *DeploymentGroupInfo {
	s.ComputePlatform = v
	return s
}

// SetEcsServices replaces EcsServices with a copy of v. A nil v clears the field.
func (s *DeploymentGroupInfo) SetEcsServices(v []ECSService) *DeploymentGroupInfo {
	s.EcsServices = shape.CloneSlice(v)
	return s
}

// AddEcsServices appends v to EcsServices.
func (s *DeploymentGroupInfo) AddEcsServices(v ...ECSService) *DeploymentGroupInfo {
	if s.EcsServices == nil {
		s.EcsServices = make([]ECSService, 0, len(v))
	}
	s.EcsServices = append(s.EcsServices, v...)
	return s
}

func (s DeploymentGroupInfo) String() string {
	return shape.Render(s)
}

func (s *DeploymentGroupInfo) Equal(other *DeploymentGroupInfo) bool {
	return shape.Equal(s, other)
}

func (s *DeploymentGroupInfo) HashCode() int32 {
	return shape.Hash(s)
}
