package types

import (
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"

	"github.com/jvreagan/codedeploy-model/internal/shape"
	"github.com/jvreagan/codedeploy-model/pkg/validation"
)

// CreateDeploymentConfigRequest is the input of the CreateDeploymentConfig operation, which
// creates a deployment configuration.
type CreateDeploymentConfigRequest struct {
	DeploymentConfigName *string               `json:"deploymentConfigName,omitempty" yaml:"deploymentConfigName,omitempty" validate:"required,min=1,max=100"`
	MinimumHealthyHosts  *MinimumHealthyHosts  `json:"minimumHealthyHosts,omitempty" yaml:"minimumHealthyHosts,omitempty"`
	TrafficRoutingConfig *TrafficRoutingConfig `json:"trafficRoutingConfig,omitempty" yaml:"trafficRoutingConfig,omitempty"`
	ComputePlatform      ComputePlatform       `json:"computePlatform,omitempty" yaml:"computePlatform,omitempty" validate:"omitempty,enum"`
}

// SetDeploymentConfigName sets the DeploymentConfigName field's value.
func (s *CreateDeploymentConfigRequest) SetDeploymentConfigName(v string) *CreateDeploymentConfigRequest {
	s.DeploymentConfigName = aws.String(v)
	return s
}

// SetMinimumHealthyHosts sets the MinimumHealthyHosts field's value.
func (s *CreateDeploymentConfigRequest) SetMinimumHealthyHosts(v *MinimumHealthyHosts) *CreateDeploymentConfigRequest {
	s.MinimumHealthyHosts = v
	return s
}

// SetTrafficRoutingConfig sets the TrafficRoutingConfig field's value.
func (s *CreateDeploymentConfigRequest) SetTrafficRoutingConfig(v *TrafficRoutingConfig) *CreateDeploymentConfigRequest {
	s.TrafficRoutingConfig = v
	return s
}

// SetComputePlatform sets the ComputePlatform field's value.
func (s *CreateDeploymentConfigRequest) SetComputePlatform(v ComputePlatform) *CreateDeploymentConfigRequest {
	s.ComputePlatform = v
	return s
}

func (s CreateDeploymentConfigRequest) String() string {
	return shape.Render(s)
}

// Equal reports whether s and other hold the same field values.
func (s *CreateDeploymentConfigRequest) Equal(other *CreateDeploymentConfigRequest) bool {
	return shape.Equal(s, other)
}

func (s *CreateDeploymentConfigRequest) HashCode() int32 {
	return shape.Hash(s)
}

// Validate checks the documented service constraints locally.
func (s *CreateDeploymentConfigRequest) Validate() error {
	return validation.Struct(s)
}

// CreateDeploymentConfigResult is the output of the CreateDeploymentConfig operation.
type CreateDeploymentConfigResult struct {
	DeploymentConfigId *string `json:"deploymentConfigId,omitempty" yaml:"deploymentConfigId,omitempty"`
}

// SetDeploymentConfigId sets the DeploymentConfigId field's value.
func (s *CreateDeploymentConfigResult) SetDeploymentConfigId(v string) *CreateDeploymentConfigResult {
	s.DeploymentConfigId = aws.String(v)
	return s
}

func (s CreateDeploymentConfigResult) String() string {
	return shape.Render(s)
}

func (s *CreateDeploymentConfigResult) Equal(other *CreateDeploymentConfigResult) bool {
	return shape.Equal(s, other)
}

func (s *CreateDeploymentConfigResult) HashCode() int32 {
	return shape.Hash(s)
}

// DeleteDeploymentConfigRequest is the input of the DeleteDeploymentConfig operation, which
// deletes a deployment configuration that no deployment group uses.
type DeleteDeploymentConfigRequest struct {
	DeploymentConfigName *string `json:"deploymentConfigName,omitempty" yaml:"deploymentConfigName,omitempty" validate:"required,min=1,max=100"`
}

// SetDeploymentConfigName sets the DeploymentConfigName field's value.
func (s *DeleteDeploymentConfigRequest) SetDeploymentConfigName(v string) *DeleteDeploymentConfigRequest {
	s.DeploymentConfigName = aws.String(v)
	return s
}

func (s DeleteDeploymentConfigRequest) String() string {
	return shape.Render(s)
}

// Equal reports whether s and other hold the same field values.
func (s *DeleteDeploymentConfigRequest) Equal(other *DeleteDeploymentConfigRequest) bool {
	return shape.Equal(s, other)
}

func (s *DeleteDeploymentConfigRequest) HashCode() int32 {
	return shape.Hash(s)
}

// Validate checks the documented service constraints locally.
func (s *DeleteDeploymentConfigRequest) Validate() error {
	return validation.Struct(s)
}

// DeleteDeploymentConfigResult is the output of the DeleteDeploymentConfig operation.
type DeleteDeploymentConfigResult struct{}

func (s DeleteDeploymentConfigResult) String() string {
	return shape.Render(s)
}

func (s *DeleteDeploymentConfigResult) Equal(other *DeleteDeploymentConfigResult) bool {
	return shape.Equal(s, other)
}

func (s *DeleteDeploymentConfigResult) HashCode() int32 {
	return shape.Hash(s)
}

// GetDeploymentConfigRequest is the input of the GetDeploymentConfig operation, which gets
// information about a deployment configuration.
type GetDeploymentConfigRequest struct {
	DeploymentConfigName *string `json:"deploymentConfigName,omitempty" yaml:"deploymentConfigName,omitempty" validate:"required,min=1,max=100"`
}

// SetDeploymentConfigName sets the DeploymentConfigName field's value.
func (s *GetDeploymentConfigRequest) SetDeploymentConfigName(v string) *GetDeploymentConfigRequest {
	s.DeploymentConfigName = aws.String(v)
	return s
}

func (s GetDeploymentConfigRequest) String() string {
	return shape.Render(s)
}

// Equal reports whether s and other hold the same field values.
func (s *GetDeploymentConfigRequest) Equal(other *GetDeploymentConfigRequest) bool {
	return shape.Equal(s, other)
}

func (s *GetDeploymentConfigRequest) HashCode() int32 {
	return shape.Hash(s)
}

// Validate checks the documented service constraints locally.
func (s *GetDeploymentConfigRequest) Validate() error {
	return validation.Struct(s)
}

// GetDeploymentConfigResult is the output of the GetDeploymentConfig operation.
type GetDeploymentConfigResult struct {
	DeploymentConfigInfo *DeploymentConfigInfo `json:"deploymentConfigInfo,omitempty" yaml:"deploymentConfigInfo,omitempty"`
}

// SetDeploymentConfigInfo sets the DeploymentConfigInfo field's value.
func (s *GetDeploymentConfigResult) SetDeploymentConfigInfo(v *DeploymentConfigInfo) *GetDeploymentConfigResult {
	s.DeploymentConfigInfo = v
	return s
}

func (s GetDeploymentConfigResult) String() string {
	return shape.Render(s)
}

func (s *GetDeploymentConfigResult) Equal(other *GetDeploymentConfigResult) bool {
	return shape.Equal(s, other)
}

func (s *GetDeploymentConfigResult) HashCode() int32 {
	return shape.Hash(s)
}

// ListDeploymentConfigsRequest is the input of the ListDeploymentConfigs operation, which
// lists deployment configurations.
type ListDeploymentConfigsRequest struct {
	NextToken *string `json:"nextToken,omitempty" yaml:"nextToken,omitempty"`
}

// SetNextToken sets the NextToken field's value.
func (s *ListDeploymentConfigsRequest) SetNextToken(v string) *ListDeploymentConfigsRequest {
	s.NextToken = aws.String(v)
	return s
}

func (s ListDeploymentConfigsRequest) String() string {
	return shape.Render(s)
}

// Equal reports whether s and other hold the same field values.
func (s *ListDeploymentConfigsRequest) Equal(other *ListDeploymentConfigsRequest) bool {
	return shape.Equal(s, other)
}

func (s *ListDeploymentConfigsRequest) HashCode() int32 {
	return shape.Hash(s)
}

// Validate checks the documented service constraints locally.
func (s *ListDeploymentConfigsRequest) Validate() error {
	return validation.Struct(s)
}

// ListDeploymentConfigsResult is the output of the ListDeploymentConfigs operation.
type ListDeploymentConfigsResult struct {
	DeploymentConfigsList []string `json:"deploymentConfigsList,omitempty" yaml:"deploymentConfigsList,omitempty"`
	NextToken             *string  `json:"nextToken,omitempty" yaml:"nextToken,omitempty"`
}

// SetDeploymentConfigsList replaces DeploymentConfigsList with a copy of v. A nil v clears the field.
func (s *ListDeploymentConfigsResult) SetDeploymentConfigsList(v []string) *ListDeploymentConfigsResult {
	s.DeploymentConfigsList = shape.CloneSlice(v)
	return s
}

// AddDeploymentConfigsList appends v to DeploymentConfigsList.
func (s *ListDeploymentConfigsResult) AddDeploymentConfigsList(v ...string) *ListDeploymentConfigsResult {
	if s.DeploymentConfigsList == nil {
		s.DeploymentConfigsList = make([]string, 0, len(v))
	}
	s.DeploymentConfigsList = append(s.DeploymentConfigsList, v...)
	return s
}

// SetNextToken sets the NextToken field's value.
func (s *ListDeploymentConfigsResult) SetNextToken(v string) *ListDeploymentConfigsResult {
	s.NextToken = aws.String(v)
	return s
}

func (s ListDeploymentConfigsResult) String() string {
	return shape.Render(s)
}

func (s *ListDeploymentConfigsResult) Equal(other *ListDeploymentConfigsResult) bool {
	return shape.Equal(s, other)
}

func (s *ListDeploymentConfigsResult) HashCode() int32 {
	return shape.Hash(s)
}

// MinimumHealthyHosts is the health floor a deployment must keep.
type MinimumHealthyHosts struct {
	Type MinimumHealthyHostsType `json:"type,omitempty" yaml:"type,omitempty" validate:"omitempty,enum"`

	// Instance count or fleet percentage, depending on Type.
	Value *int32 `json:"value,omitempty" yaml:"value,omitempty"`
}

// SetType sets the Type field's value.
func (s *MinimumHealthyHosts) SetType(v MinimumHealthyHostsType) *MinimumHealthyHosts {
	s.Type = v
	return s
}

// SetValue sets the Value field's value.
func (s *MinimumHealthyHosts) SetValue(v int32) *MinimumHealthyHosts {
	s.Value = aws.Int32(v)
	return s
}

func (s MinimumHealthyHosts) String() string {
	return shape.Render(s)
}

func (s *MinimumHealthyHosts) Equal(other *MinimumHealthyHosts) bool {
	return shape.Equal(s, other)
}

func (s *MinimumHealthyHosts) HashCode() int32 {
	return shape.Hash(s)
}

// TimeBasedCanary shifts traffic in two increments.
type TimeBasedCanary struct {
	CanaryPercentage *int32 `json:"canaryPercentage,omitempty" yaml:"canaryPercentage,omitempty" validate:"omitempty,min=0,max=100"`

	// Minutes between the first and second traffic shift.
	CanaryInterval *int32 `json:"canaryInterval,omitempty" yaml:"canaryInterval,omitempty"`
}

// SetCanaryPercentage sets the CanaryPercentage field's value.
func (s *TimeBasedCanary) SetCanaryPercentage(v int32) *TimeBasedCanary {
	s.CanaryPercentage = aws.Int32(v)
	return s
}

// SetCanaryInterval sets the CanaryInterval field's value.
func (s *TimeBasedCanary) SetCanaryInterval(v int32) *TimeBasedCanary {
	s.CanaryInterval = aws.Int32(v)
	return s
}

func (s TimeBasedCanary) String() string {
	return shape.Render(s)
}

func (s *TimeBasedCanary) Equal(other *TimeBasedCanary) bool {
	return shape.Equal(s, other)
}

func (s *TimeBasedCanary) HashCode() int32 {
	return shape.Hash(s)
}

// TimeBasedLinear shifts traffic in equal increments.
type TimeBasedLinear struct {
	LinearPercentage *int32 `json:"linearPercentage,omitempty" yaml:"linearPercentage,omitempty" validate:"omitempty,min=0,max=100"`
	LinearInterval   *int32 `json:"linearInterval,omitempty" yaml:"linearInterval,omitempty"`
}

// SetLinearPercentage sets the LinearPercentage field's value.
func (s *TimeBasedLinear) SetLinearPercentage(v int32) *TimeBasedLinear {
	s.LinearPercentage = aws.Int32(v)
	return s
}

// SetLinearInterval sets the LinearInterval field's value.
func (s *TimeBasedLinear) SetLinearInterval(v int32) *TimeBasedLinear {
	s.LinearInterval = aws.Int32(v)
	return s
}

func (s TimeBasedLinear) String() string {
	return shape.Render(s)
}

func (s *TimeBasedLinear) Equal(other *TimeBasedLinear) bool {
	return shape.Equal(s, other)
}

func (s *TimeBasedLinear) HashCode() int32 {
	return shape.Hash(s)
}

// TrafficRoutingConfig describes how traffic moves from the original to the replacement
// environment.
type TrafficRoutingConfig struct {
	Type            TrafficRoutingType `json:"type,omitempty" yaml:"type,omitempty" validate:"omitempty,enum"`
	TimeBasedCanary *TimeBasedCanary   `json:"timeBasedCanary,omitempty" yaml:"timeBasedCanary,omitempty"`
	TimeBasedLinear *TimeBasedLinear   `json:"timeBasedLinear,omitempty" yaml:"timeBasedLinear,omitempty"`
}

// SetType sets the Type field's value.
func (s *TrafficRoutingConfig) SetType(v TrafficRoutingType) *TrafficRoutingConfig {
	s.Type = v
	return s
}

// SetTimeBasedCanary sets the TimeBasedCanary field's value.
func (s *TrafficRoutingConfig) SetTimeBasedCanary(v *TimeBasedCanary) *TrafficRoutingConfig {
	s.TimeBasedCanary = v
	return s
}

// SetTimeBasedLinear sets the TimeBasedLinear field's value.
func (s *TrafficRoutingConfig) SetTimeBasedLinear(v *TimeBasedLinear) *TrafficRoutingConfig {
	s.TimeBasedLinear = v
	return s
}

func (s TrafficRoutingConfig) String() string {
	return shape.Render(s)
}

func (s *TrafficRoutingConfig) Equal(other *TrafficRoutingConfig) bool {
	return shape.Equal(s, other)
}

func (s *TrafficRoutingConfig) HashCode() int32 {
	return shape.Hash(s)
}

// DeploymentConfigInfo describes a deployment configuration.
type DeploymentConfigInfo struct {
	DeploymentConfigId   *string               `json:"deploymentConfigId,omitempty" yaml:"deploymentConfigId,omitempty"`
	DeploymentConfigName *string               `json:"deploymentConfigName,omitempty" yaml:"deploymentConfigName,omitempty" validate:"omitempty,min=1,max=100"`
	MinimumHealthyHosts  *MinimumHealthyHosts  `json:"minimumHealthyHosts,omitempty" yaml:"minimumHealthyHosts,omitempty"`
	CreateTime           *time.Time            `json:"createTime,omitempty" yaml:"createTime,omitempty"`
	ComputePlatform      ComputePlatform       `json:"computePlatform,omitempty" yaml:"computePlatform,omitempty" validate:"omitempty,enum"`
	TrafficRoutingConfig *TrafficRoutingConfig `json:"trafficRoutingConfig,omitempty" yaml:"trafficRoutingConfig,omitempty"`
}

// SetDeploymentConfigId sets the DeploymentConfigId field's value.
func (s *DeploymentConfigInfo) SetDeploymentConfigId(v string) *DeploymentConfigInfo {
	s.DeploymentConfigId = aws.String(v)
	return s
}

// SetDeploymentConfigName sets the DeploymentConfigName field's value.
func (s *DeploymentConfigInfo) SetDeploymentConfigName(v string) *DeploymentConfigInfo {
	s.DeploymentConfigName = aws.String(v)
	return s
}

// SetMinimumHealthyHosts sets the MinimumHealthyHosts field's value.
func (s *DeploymentConfigInfo) SetMinimumHealthyHosts(v *MinimumHealthyHosts) *DeploymentConfigInfo {
	s.MinimumHealthyHosts = v
	return s
}

// SetCreateTime sets the CreateTime field's value.
func (s *DeploymentConfigInfo) SetCreateTime(v time.Time) *DeploymentConfigInfo {
	s.CreateTime = aws.Time(v)
	return s
}

// SetComputePlatform sets the ComputePlatform field's value.
func (s *DeploymentConfigInfo) SetComputePlatform(v ComputePlatform) *DeploymentConfigInfo {
	s.ComputePlatform = v
	return s
}

// SetTrafficRoutingConfig sets the TrafficRoutingConfig field's value.
func (s *DeploymentConfigInfo) SetTrafficRoutingConfig(v *TrafficRoutingConfig) *DeploymentConfigInfo {
	s.TrafficRoutingConfig = v
	return s
}

func (s DeploymentConfigInfo) String() string {
	return shape.Render(s)
}

func (s *DeploymentConfigInfo) Equal(other *DeploymentConfigInfo) bool {
	return shape.Equal(s, other)
}

func (s *DeploymentConfigInfo) HashCode() int32 {
	return shape.Hash(s)
}
