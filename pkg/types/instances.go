package types

import (
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"

	"github.com/jvreagan/codedeploy-model/internal/shape"
	"github.com/jvreagan/codedeploy-model/pkg/validation"
)

// BatchGetDeploymentInstancesRequest is the input of the BatchGetDeploymentInstances
// operation, which gets information about instances in a deployment.
type BatchGetDeploymentInstancesRequest struct {
	DeploymentId *string  `json:"deploymentId,omitempty" yaml:"deploymentId,omitempty" validate:"required"`
	InstanceIds  []string `json:"instanceIds,omitempty" yaml:"instanceIds,omitempty" validate:"required"`
}

// SetDeploymentId sets the DeploymentId field's value.
func (s *BatchGetDeploymentInstancesRequest) SetDeploymentId(v string) *BatchGetDeploymentInstancesRequest {
	s.DeploymentId = aws.String(v)
	return s
}

// SetInstanceIds replaces InstanceIds with a copy of v. A nil v clears the field.
func (s *BatchGetDeploymentInstancesRequest) SetInstanceIds(v []string) *BatchGetDeploymentInstancesRequest {
	s.InstanceIds = shape.CloneSlice(v)
	return s
}

// AddInstanceIds appends v to InstanceIds.
func (s *BatchGetDeploymentInstancesRequest) AddInstanceIds(v ...string) *BatchGetDeploymentInstancesRequest {
	if s.InstanceIds == nil {
		s.InstanceIds = make([]string, 0, len(v))
	}
	s.InstanceIds = append(s.InstanceIds, v...)
	return s
}

func (s BatchGetDeploymentInstancesRequest) String() string {
	return shape.Render(s)
}

// Equal reports whether s and other hold the same field values.
func (s *BatchGetDeploymentInstancesRequest) Equal(other *BatchGetDeploymentInstancesRequest) bool {
	return shape.Equal(s, other)
}

func (s *BatchGetDeploymentInstancesRequest) HashCode() int32 {
	return shape.Hash(s)
}

// Validate checks the documented service constraints locally.
func (s *BatchGetDeploymentInstancesRequest) Validate() error {
	return validation.Struct(s)
}

// BatchGetDeploymentInstancesResult is the output of the BatchGetDeploymentInstances
// operation.
type BatchGetDeploymentInstancesResult struct {
	InstancesSummary []InstanceSummary `json:"instancesSummary,omitempty" yaml:"instancesSummary,omitempty" validate:"omitempty,dive"`
	ErrorMessage     *string           `json:"errorMessage,omitempty" yaml:"errorMessage,omitempty"`
}

// SetInstancesSummary replaces InstancesSummary with a copy of v. A nil v clears the field.
func (s *BatchGetDeploymentInstancesResult) SetInstancesSummary(v []InstanceSummary) *BatchGetDeploymentInstancesResult {
	s.InstancesSummary = shape.CloneSlice(v)
	return s
}

// AddInstancesSummary appends v to InstancesSummary.
func (s *BatchGetDeploymentInstancesResult) AddInstancesSummary(v ...InstanceSummary) *BatchGetDeploymentInstancesResult {
	if s.InstancesSummary == nil {
		s.InstancesSummary = make([]InstanceSummary, 0, len(v))
	}
	s.InstancesSummary = append(s.InstancesSummary, v...)
	return s
}

// SetErrorMessage sets the ErrorMessage field's value.
func (s *BatchGetDeploymentInstancesResult) SetErrorMessage(v string) *BatchGetDeploymentInstancesResult {
	s.ErrorMessage = aws.String(v)
	return s
}

func (s BatchGetDeploymentInstancesResult) String() string {
	return shape.Render(s)
}

func (s *BatchGetDeploymentInstancesResult) Equal(other *BatchGetDeploymentInstancesResult) bool {
	return shape.Equal(s, other)
}

func (s *BatchGetDeploymentInstancesResult) HashCode() int32 {
	return shape.Hash(s)
}

// BatchGetDeploymentTargetsRequest is the input of the BatchGetDeploymentTargets operation,
// which gets information about targets in a deployment.
type BatchGetDeploymentTargetsRequest struct {
	DeploymentId *string  `json:"deploymentId,omitempty" yaml:"deploymentId,omitempty" validate:"required"`
	TargetIds    []string `json:"targetIds,omitempty" yaml:"targetIds,omitempty" validate:"required"`
}

// SetDeploymentId sets the DeploymentId field's value.
func (s *BatchGetDeploymentTargetsRequest) SetDeploymentId(v string) *BatchGetDeploymentTargetsRequest {
	s.DeploymentId = aws.String(v)
	return s
}

// SetTargetIds replaces TargetIds with a copy of v. A nil v clears the field.
func (s *BatchGetDeploymentTargetsRequest) SetTargetIds(v []string) *BatchGetDeploymentTargetsRequest {
	s.TargetIds = shape.CloneSlice(v)
	return s
}

// AddTargetIds appends v to TargetIds.
func (s *BatchGetDeploymentTargetsRequest) AddTargetIds(v ...string) *BatchGetDeploymentTargetsRequest {
	if s.TargetIds == nil {
		s.TargetIds = make([]string, 0, len(v))
	}
	s.TargetIds = append(s.TargetIds, v...)
	return s
}

func (s BatchGetDeploymentTargetsRequest) String() string {
	return shape.Render(s)
}

// Equal reports whether s and other hold the same field values.
func (s *BatchGetDeploymentTargetsRequest) Equal(other *BatchGetDeploymentTargetsRequest) bool {
	return shape.Equal(s, other)
}

func (s *BatchGetDeploymentTargetsRequest) HashCode() int32 {
	return shape.Hash(s)
}

// Validate checks the documented service constraints locally.
func (s *BatchGetDeploymentTargetsRequest) Validate() error {
	return validation.Struct(s)
}

// BatchGetDeploymentTargetsResult is the output of the BatchGetDeploymentTargets operation.
type BatchGetDeploymentTargetsResult struct {
	DeploymentTargets []DeploymentTarget `json:"deploymentTargets,omitempty" yaml:"deploymentTargets,omitempty" validate:"omitempty,dive"`
}

// SetDeploymentTargets replaces DeploymentTargets with a copy of v. A nil v clears the field.
func (s *BatchGetDeploymentTargetsResult) SetDeploymentTargets(v []DeploymentTarget) *BatchGetDeploymentTargetsResult {
	s.DeploymentTargets = shape.CloneSlice(v)
	return s
}

// AddDeploymentTargets appends v to DeploymentTargets.
func (s *BatchGetDeploymentTargetsResult) AddDeploymentTargets(v ...DeploymentTarget) *BatchGetDeploymentTargetsResult {
	if s.DeploymentTargets == nil {
		s.DeploymentTargets = make([]DeploymentTarget, 0, len(v))
	}
	s.DeploymentTargets = append(s.DeploymentTargets, v...)
	return s
}

func (s BatchGetDeploymentTargetsResult) String() string {
	return shape.Render(s)
}

func (s *BatchGetDeploymentTargetsResult) Equal(other *BatchGetDeploymentTargetsResult) bool {
	return shape.Equal(s, other)
}

func (s *BatchGetDeploymentTargetsResult) HashCode() int32 {
	return shape.Hash(s)
}

// GetDeploymentInstanceRequest is the input of the GetDeploymentInstance operation, which gets
// information about an instance in a deployment.
type GetDeploymentInstanceRequest struct {
	DeploymentId *string `json:"deploymentId,omitempty" yaml:"deploymentId,omitempty" validate:"required"`
	InstanceId   *string `json:"instanceId,omitempty" yaml:"instanceId,omitempty" validate:"required"`
}

// SetDeploymentId sets the DeploymentId field's value.
func (s *GetDeploymentInstanceRequest) SetDeploymentId(v string) *GetDeploymentInstanceRequest {
	s.DeploymentId = aws.String(v)
	return s
}

// SetInstanceId sets the InstanceId field's value.
func (s *GetDeploymentInstanceRequest) SetInstanceId(v string) *GetDeploymentInstanceRequest {
	s.InstanceId = aws.String(v)
	return s
}

func (s GetDeploymentInstanceRequest) String() string {
	return shape.Render(s)
}

// Equal reports whether s and other hold the same field values.
func (s *GetDeploymentInstanceRequest) Equal(other *GetDeploymentInstanceRequest) bool {
	return shape.Equal(s, other)
}

func (s *GetDeploymentInstanceRequest) HashCode() int32 {
	return shape.Hash(s)
}

// Validate checks the documented service constraints locally.
func (s *GetDeploymentInstanceRequest) Validate() error {
	return validation.Struct(s)
}

// GetDeploymentInstanceResult is the output of the GetDeploymentInstance operation.
type GetDeploymentInstanceResult struct {
	InstanceSummary *InstanceSummary `json:"instanceSummary,omitempty" yaml:"instanceSummary,omitempty"`
}

// SetInstanceSummary sets the InstanceSummary field's value.
func (s *GetDeploymentInstanceResult) SetInstanceSummary(v *InstanceSummary) *GetDeploymentInstanceResult {
	s.InstanceSummary = v
	return s
}

func (s GetDeploymentInstanceResult) String() string {
	return shape.Render(s)
}

func (s *GetDeploymentInstanceResult) Equal(other *GetDeploymentInstanceResult) bool {
	return shape.Equal(s, other)
}

func (s *GetDeploymentInstanceResult) HashCode() int32 {
	return shape.Hash(s)
}

// GetDeploymentTargetRequest is the input of the GetDeploymentTarget operation, which gets
// information about a deployment target.
type GetDeploymentTargetRequest struct {
	DeploymentId *string `json:"deploymentId,omitempty" yaml:"deploymentId,omitempty" validate:"required"`
	TargetId     *string `json:"targetId,omitempty" yaml:"targetId,omitempty" validate:"required"`
}

// SetDeploymentId sets the DeploymentId field's value.
func (s *GetDeploymentTargetRequest) SetDeploymentId(v string) *GetDeploymentTargetRequest {
	s.DeploymentId = aws.String(v)
	return s
}

// SetTargetId sets the TargetId field's value.
func (s *GetDeploymentTargetRequest) SetTargetId(v string) *GetDeploymentTargetRequest {
	s.TargetId = aws.String(v)
	return s
}

func (s GetDeploymentTargetRequest) String() string {
	return shape.Render(s)
}

// Equal reports whether s and other hold the same field values.
func (s *GetDeploymentTargetRequest) Equal(other *GetDeploymentTargetRequest) bool {
	return shape.Equal(s, other)
}

func (s *GetDeploymentTargetRequest) HashCode() int32 {
	return shape.Hash(s)
}

// Validate checks the documented service constraints locally.
func (s *GetDeploymentTargetRequest) Validate() error {
	return validation.Struct(s)
}

// GetDeploymentTargetResult is the output of the GetDeploymentTarget operation.
type GetDeploymentTargetResult struct {
	DeploymentTarget *DeploymentTarget `json:"deploymentTarget,omitempty" yaml:"deploymentTarget,omitempty"`
}

// SetDeploymentTarget sets the DeploymentTarget field's value.
func (s *GetDeploymentTargetResult) SetDeploymentTarget(v *DeploymentTarget) *GetDeploymentTargetResult {
	s.DeploymentTarget = v
	return s
}

func (s GetDeploymentTargetResult) String() string {
	return shape.Render(s)
}

func (s *GetDeploymentTargetResult) Equal(other *GetDeploymentTargetResult) bool {
	return shape.Equal(s, other)
}

func (s *GetDeploymentTargetResult) HashCode() int32 {
	return shape.Hash(s)
}

// ListDeploymentInstancesRequest is the input of the ListDeploymentInstances operation, which
// lists the instances in a deployment.
type ListDeploymentInstancesRequest struct {
	DeploymentId         *string          `json:"deploymentId,omitempty" yaml:"deploymentId,omitempty" validate:"required"`
	NextToken            *string          `json:"nextToken,omitempty" yaml:"nextToken,omitempty"`
	InstanceStatusFilter []InstanceStatus `json:"instanceStatusFilter,omitempty" yaml:"instanceStatusFilter,omitempty" validate:"omitempty,dive,enum"`
	InstanceTypeFilter   []InstanceType   `json:"instanceTypeFilter,omitempty" yaml:"instanceTypeFilter,omitempty" validate:"omitempty,dive,enum"`
}

// SetDeploymentId sets the DeploymentId field's value.
func (s *ListDeploymentInstancesRequest) SetDeploymentId(v string) *ListDeploymentInstancesRequest {
	s.DeploymentId = aws.String(v)
	return s
}

// SetNextToken sets the NextToken field's value.
func (s *ListDeploymentInstancesRequest) SetNextToken(v string) *ListDeploymentInstancesRequest {
	s.NextToken = aws.String(v)
	return s
}

// SetInstanceStatusFilter replaces InstanceStatusFilter with a copy of v. A nil v clears the field.
func (s *ListDeploymentInstancesRequest) SetInstanceStatusFilter(v []InstanceStatus) *ListDeploymentInstancesRequest {
	s.InstanceStatusFilter = shape.CloneSlice(v)
	return s
}

// AddInstanceStatusFilter appends v to InstanceStatusFilter.
func (s *ListDeploymentInstancesRequest) AddInstanceStatusFilter(v ...InstanceStatus) *ListDeploymentInstancesRequest {
	if s.InstanceStatusFilter == nil {
		s.InstanceStatusFilter = make([]InstanceStatus, 0, len(v))
	}
	s.InstanceStatusFilter = append(s.InstanceStatusFilter, v...)
	return s
}

// SetInstanceTypeFilter replaces InstanceTypeFilter with a copy of v. A nil v clears the field.
func (s *ListDeploymentInstancesRequest) SetInstanceTypeFilter(v []InstanceType) *ListDeploymentInstancesRequest {
	s.InstanceTypeFilter = shape.CloneSlice(v)
	return s
}

// AddInstanceTypeFilter appends v to InstanceTypeFilter.
func (s *ListDeploymentInstancesRequest) AddInstanceTypeFilter(v ...InstanceType) *ListDeploymentInstancesRequest {
	if s.InstanceTypeFilter == nil {
		s.InstanceTypeFilter = make([]InstanceType, 0, len(v))
	}
	s.InstanceTypeFilter = append(s.InstanceTypeFilter, v...)
	return s
}

func (s ListDeploymentInstancesRequest) String() string {
	return shape.Render(s)
}

// Equal reports whether s and other hold the same field values.
func (s *ListDeploymentInstancesRequest) Equal(other *ListDeploymentInstancesRequest) bool {
	return shape.Equal(s, other)
}

func (s *ListDeploymentInstancesRequest) HashCode() int32 {
	return shape.Hash(s)
}

// Validate checks the documented service constraints locally.
func (s *ListDeploymentInstancesRequest) Validate() error {
	return validation.Struct(s)
}

// ListDeploymentInstancesResult is the output of the ListDeploymentInstances operation.
type ListDeploymentInstancesResult struct {
	InstancesList []string `json:"instancesList,omitempty" yaml:"instancesList,omitempty"`
	NextToken     *string  `json:"nextToken,omitempty" yaml:"nextToken,omitempty"`
}

// SetInstancesList replaces InstancesList with a copy of v. A nil v clears the field.
func (s *ListDeploymentInstancesResult) SetInstancesList(v []string) *ListDeploymentInstancesResult {
	s.InstancesList = shape.CloneSlice(v)
	return s
}

// AddInstancesList appends v to InstancesList.
func (s *ListDeploymentInstancesResult) AddInstancesList(v ...string) *ListDeploymentInstancesResult {
	if s.InstancesList == nil {
		s.InstancesList = make([]string, 0, len(v))
	}
	s.InstancesList = append(s.InstancesList, v...)
	return s
}

// SetNextToken sets the NextToken field's value.
func (s *ListDeploymentInstancesResult) SetNextToken(v string) *ListDeploymentInstancesResult {
	s.NextToken = aws.String(v)
	return s
}

func (s ListDeploymentInstancesResult) String() string {
	return shape.Render(s)
}

func (s *ListDeploymentInstancesResult) Equal(other *ListDeploymentInstancesResult) bool {
	return shape.Equal(s, other)
}

func (s *ListDeploymentInstancesResult) HashCode() int32 {
	return shape.Hash(s)
}

// ListDeploymentTargetsRequest is the input of the ListDeploymentTargets operation, which
// lists the targets of a deployment.
type ListDeploymentTargetsRequest struct {
	DeploymentId  *string                       `json:"deploymentId,omitempty" yaml:"deploymentId,omitempty" validate:"required"`
	NextToken     *string                       `json:"nextToken,omitempty" yaml:"nextToken,omitempty"`
	TargetFilters map[TargetFilterName][]string `json:"targetFilters,omitempty" yaml:"targetFilters,omitempty" validate:"omitempty,dive,keys,enum,endkeys"`
}

// SetDeploymentId sets the DeploymentId field's value.
func (s *ListDeploymentTargetsRequest) SetDeploymentId(v string) *ListDeploymentTargetsRequest {
	s.DeploymentId = aws.String(v)
	return s
}

// SetNextToken sets the NextToken field's value.
func (s *ListDeploymentTargetsRequest) SetNextToken(v string) *ListDeploymentTargetsRequest {
	s.NextToken = aws.String(v)
	return s
}

// SetTargetFilters replaces TargetFilters with a copy of v. A nil v clears the field.
func (s *ListDeploymentTargetsRequest) SetTargetFilters(v map[TargetFilterName][]string) *ListDeploymentTargetsRequest {
	s.TargetFilters = shape.CloneMap(v)
	return s
}

func (s ListDeploymentTargetsRequest) String() string {
	return shape.Render(s)
}

// Equal reports whether s and other hold the same field values.
func (s *ListDeploymentTargetsRequest) Equal(other *ListDeploymentTargetsRequest) bool {
	return shape.Equal(s, other)
}

func (s *ListDeploymentTargetsRequest) HashCode() int32 {
	return shape.Hash(s)
}

// Validate checks the documented service constraints locally.
func (s *ListDeploymentTargetsRequest) Validate() error {
	return validation.Struct(s)
}

// ListDeploymentTargetsResult is the output of the ListDeploymentTargets operation.
type ListDeploymentTargetsResult struct {
	TargetIds []string `json:"targetIds,omitempty" yaml:"targetIds,omitempty"`
	NextToken *string  `json:"nextToken,omitempty" yaml:"nextToken,omitempty"`
}

// SetTargetIds replaces TargetIds with a copy of v. A nil v clears the field.
func (s *ListDeploymentTargetsResult) SetTargetIds(v []string) *ListDeploymentTargetsResult {
	s.TargetIds = shape.CloneSlice(v)
	return s
}

// AddTargetIds appends v to TargetIds.
func (s *ListDeploymentTargetsResult) AddTargetIds(v ...string) *ListDeploymentTargetsResult {
	if s.TargetIds == nil {
		s.TargetIds = make([]string, 0, len(v))
	}
	s.TargetIds = append(s.TargetIds, v...)
	return s
}

// SetNextToken sets the NextToken field's value.
func (s *ListDeploymentTargetsResult) SetNextToken(v string) *ListDeploymentTargetsResult {
	s.NextToken = aws.String(v)
	return s
}

func (s ListDeploymentTargetsResult) String() string {
	return shape.Render(s)
}

func (s *ListDeploymentTargetsResult) Equal(other *ListDeploymentTargetsResult) bool {
	return shape.Equal(s, other)
}

func (s *ListDeploymentTargetsResult) HashCode() int32 {
	return shape.Hash(s)
}

// Diagnostics carries the script output of a failed lifecycle event.
type Diagnostics struct {
	ErrorCode  LifecycleErrorCode `json:"errorCode,omitempty" yaml:"errorCode,omitempty" validate:"omitempty,enum"`
	ScriptName *string            `json:"scriptName,omitempty" yaml:"scriptName,omitempty"`
	Message    *string            `json:"message,omitempty" yaml:"message,omitempty"`

	// Last portion of the script's diagnostic log, up to 4 KB.
	LogTail *string `json:"logTail,omitempty" yaml:"logTail,omitempty"`
}

// SetErrorCode sets the ErrorCode field's value.
func (s *Diagnostics) SetErrorCode(v LifecycleErrorCode) *Diagnostics {
	s.ErrorCode = v
	return s
}

// SetScriptName sets the ScriptName field's value.
func (s *Diagnostics) SetScriptName(v string) *Diagnostics {
	s.ScriptName = aws.String(v)
	return s
}

// SetMessage sets the Message field's value.
func (s *Diagnostics) SetMessage(v string) *Diagnostics {
	s.Message = aws.String(v)
	return s
}

// SetLogTail sets the LogTail field's value.
func (s *Diagnostics) SetLogTail(v string) *Diagnostics {
	s.LogTail = aws.String(v)
	return s
}

func (s Diagnostics) String() string {
	return shape.Render(s)
}

func (s *Diagnostics) Equal(other *Diagnostics) bool {
	return shape.Equal(s, other)
}

func (s *Diagnostics) HashCode() int32 {
	return shape.Hash(s)
}

// LifecycleEvent is one deployment lifecycle event on an instance or target.
type LifecycleEvent struct {
	LifecycleEventName *string              `json:"lifecycleEventName,omitempty" yaml:"lifecycleEventName,omitempty"`
	Diagnostics        *Diagnostics         `json:"diagnostics,omitempty" yaml:"diagnostics,omitempty"`
	StartTime          *time.Time           `json:"startTime,omitempty" yaml:"startTime,omitempty"`
	EndTime            *time.Time           `json:"endTime,omitempty" yaml:"endTime,omitempty"`
	Status             LifecycleEventStatus `json:"status,omitempty" yaml:"status,omitempty" validate:"omitempty,enum"`
}

// SetLifecycleEventName sets the LifecycleEventName field's value.
func (s *LifecycleEvent) SetLifecycleEventName(v string) *LifecycleEvent {
	s.LifecycleEventName = aws.String(v)
	return s
}

// SetDiagnostics sets the Diagnostics field's value.
func (s *LifecycleEvent) SetDiagnostics(v *Diagnostics) *LifecycleEvent {
	s.Diagnostics = v
	return s
}

// SetStartTime sets the StartTime field's value.
func (s *LifecycleEvent) SetStartTime(v time.Time) *LifecycleEvent {
	s.StartTime = aws.Time(v)
	return s
}

// SetEndTime sets the EndTime field's value.
func (s *LifecycleEvent) SetEndTime(v time.Time) *LifecycleEvent {
	s.EndTime = aws.Time(v)
	return s
}

// SetStatus sets the Status field's value.
func (s *LifecycleEvent) SetStatus(v LifecycleEventStatus) *LifecycleEvent {
	s.Status = v
	return s
}

func (s LifecycleEvent) String() string {
	return shape.Render(s)
}

func (s *LifecycleEvent) Equal(other *LifecycleEvent) bool {
	return shape.Equal(s, other)
}

func (s *LifecycleEvent) HashCode() int32 {
	return shape.Hash(s)
}

// InstanceSummary describes an instance in a deployment.
type InstanceSummary struct {
	DeploymentId    *string          `json:"deploymentId,omitempty" yaml:"deploymentId,omitempty"`
	InstanceId      *string          `json:"instanceId,omitempty" yaml:"instanceId,omitempty"`
	Status          InstanceStatus   `json:"status,omitempty" yaml:"status,omitempty" validate:"omitempty,enum"`
	LastUpdatedAt   *time.Time       `json:"lastUpdatedAt,omitempty" yaml:"lastUpdatedAt,omitempty"`
	LifecycleEvents []LifecycleEvent `json:"lifecycleEvents,omitempty" yaml:"lifecycleEvents,omitempty" validate:"omitempty,dive"`
	InstanceType    InstanceType     `json:"instanceType,omitempty" yaml:"instanceType,omitempty" validate:"omitempty,enum"`
}

// SetDeploymentId sets the DeploymentId field's value.
func (s *InstanceSummary) SetDeploymentId(v string) *InstanceSummary {
	s.DeploymentId = aws.String(v)
	return s
}

// SetInstanceId sets the InstanceId field's value.
func (s *InstanceSummary) SetInstanceId(v string) *InstanceSummary {
	s.InstanceId = aws.String(v)
	return s
}

// SetStatus sets the Status field's value.
func (s *InstanceSummary) SetStatus(v InstanceStatus) *InstanceSummary {
	s.Status = v
	return s
}

// SetLastUpdatedAt sets the LastUpdatedAt field's value.
func (s *InstanceSummary) SetLastUpdatedAt(v time.Time) *InstanceSummary {
	s.LastUpdatedAt = aws.Time(v)
	return s
}

// SetLifecycleEvents replaces LifecycleEvents with a copy of v. A nil v clears the field.
func (s *InstanceSummary) SetLifecycleEvents(v []LifecycleEvent) *InstanceSummary {
	s.LifecycleEvents = shape.CloneSlice(v)
	return s
}

// AddLifecycleEvents appends v to LifecycleEvents.
func (s *InstanceSummary) AddLifecycleEvents(v ...LifecycleEvent) *InstanceSummary {
	if s.LifecycleEvents == nil {
		s.LifecycleEvents = make([]LifecycleEvent, 0, len(v))
	}
	s.LifecycleEvents = append(s.LifecycleEvents, v...)
	return s
}

// SetInstanceType sets the InstanceType field's value.
func (s *InstanceSummary) SetInstanceType(v InstanceType) *InstanceSummary {
	s.InstanceType = v
	return s
}

func (s InstanceSummary) String() string {
	return shape.Render(s)
}

func (s *InstanceSummary) Equal(other *InstanceSummary) bool {
	return shape.Equal(s, other)
}

func (s *InstanceSummary) HashCode() int32 {
	return shape.Hash(s)
}

// InstanceTarget is an EC2 or on-premises instance targeted by a deployment.
type InstanceTarget struct {
	DeploymentId    *string          `json:"deploymentId,omitempty" yaml:"deploymentId,omitempty"`
	TargetId        *string          `json:"targetId,omitempty" yaml:"targetId,omitempty"`
	TargetArn       *string          `json:"targetArn,omitempty" yaml:"targetArn,omitempty"`
	Status          TargetStatus     `json:"status,omitempty" yaml:"status,omitempty" validate:"omitempty,enum"`
	LastUpdatedAt   *time.Time       `json:"lastUpdatedAt,omitempty" yaml:"lastUpdatedAt,omitempty"`
	LifecycleEvents []LifecycleEvent `json:"lifecycleEvents,omitempty" yaml:"lifecycleEvents,omitempty" validate:"omitempty,dive"`
	InstanceLabel   TargetLabel      `json:"instanceLabel,omitempty" yaml:"instanceLabel,omitempty" validate:"omitempty,enum"`
}

// SetDeploymentId sets the DeploymentId field's value.
func (s *InstanceTarget) SetDeploymentId(v string) *InstanceTarget {
	s.DeploymentId = aws.String(v)
	return s
}

// SetTargetId sets the TargetId field's value.
func (s *InstanceTarget) SetTargetId(v string) *InstanceTarget {
	s.TargetId = aws.String(v)
	return s
}

// SetTargetArn sets the TargetArn field's value.
func (s *InstanceTarget) SetTargetArn(v string) *InstanceTarget {
	s.TargetArn = aws.String(v)
	return s
}

// SetStatus sets the Status field's value.
func (s *InstanceTarget) SetStatus(v TargetStatus) *InstanceTarget {
	s.Status = v
	return s
}

// SetLastUpdatedAt sets the LastUpdatedAt field's value.
func (s *InstanceTarget) SetLastUpdatedAt(v time.Time) *InstanceTarget {
	s.LastUpdatedAt = aws.Time(v)
	return s
}

// SetLifecycleEvents replaces LifecycleEvents with a copy of v. A nil v clears the field.
func (s *InstanceTarget) SetLifecycleEvents(v []LifecycleEvent) *InstanceTarget {
	s.LifecycleEvents = shape.CloneSlice(v)
	return s
}

// AddLifecycleEvents appends v to LifecycleEvents.
func (s *InstanceTarget) AddLifecycleEvents(v ...LifecycleEvent) *InstanceTarget {
	if s.LifecycleEvents == nil {
		s.LifecycleEvents = make([]LifecycleEvent, 0, len(v))
	}
	s.LifecycleEvents = append(s.LifecycleEvents, v...)
	return s
}

// SetInstanceLabel sets the InstanceLabel field's value.
func (s *InstanceTarget) SetInstanceLabel(v TargetLabel) *InstanceTarget {
	s.InstanceLabel = v
	return s
}

func (s InstanceTarget) String() string {
	return shape.Render(s)
}

func (s *InstanceTarget) Equal(other *InstanceTarget) bool {
	return shape.Equal(s, other)
}

func (s *InstanceTarget) HashCode() int32 {
	return shape.Hash(s)
}

// LambdaFunctionInfo describes the function versions in a Lambda deployment.
type LambdaFunctionInfo struct {
	FunctionName   *string `json:"functionName,omitempty" yaml:"functionName,omitempty"`
	FunctionAlias  *string `json:"functionAlias,omitempty" yaml:"functionAlias,omitempty"`
	CurrentVersion *string `json:"currentVersion,omitempty" yaml:"currentVersion,omitempty"`
	TargetVersion  *string `json:"targetVersion,omitempty" yaml:"targetVersion,omitempty"`

	// Share of traffic routed to the target version.
	TargetVersionWeight *float64 `json:"targetVersionWeight,omitempty" yaml:"targetVersionWeight,omitempty"`
}

// SetFunctionName sets the FunctionName field's value.
func (s *LambdaFunctionInfo) SetFunctionName(v string) *LambdaFunctionInfo {
	s.FunctionName = aws.String(v)
	return s
}

// SetFunctionAlias sets the FunctionAlias field's value.
func (s *LambdaFunctionInfo) SetFunctionAlias(v string) *LambdaFunctionInfo {
	s.FunctionAlias = aws.String(v)
	return s
}

// SetCurrentVersion sets the CurrentVersion field's value.
func (s *LambdaFunctionInfo) SetCurrentVersion(v string) *LambdaFunctionInfo {
	s.CurrentVersion = aws.String(v)
	return s
}

// SetTargetVersion sets the TargetVersion field's value.
func (s *LambdaFunctionInfo) SetTargetVersion(v string) *LambdaFunctionInfo {
	s.TargetVersion = aws.String(v)
	return s
}

// SetTargetVersionWeight sets the TargetVersionWeight field's value.
func (s *LambdaFunctionInfo) SetTargetVersionWeight(v float64) *LambdaFunctionInfo {
	s.TargetVersionWeight = aws.Float64(v)
	return s
}

func (s LambdaFunctionInfo) String() string {
	return shape.Render(s)
}

func (s *LambdaFunctionInfo) Equal(other *LambdaFunctionInfo) bool {
	return shape.Equal(s, other)
}

func (s *LambdaFunctionInfo) HashCode() int32 {
	return shape.Hash(s)
}

// LambdaTarget is a Lambda function targeted by a deployment.
type LambdaTarget struct {
	DeploymentId       *string             `json:"deploymentId,omitempty" yaml:"deploymentId,omitempty"`
	TargetId           *string             `json:"targetId,omitempty" yaml:"targetId,omitempty"`
	TargetArn          *string             `json:"targetArn,omitempty" yaml:"targetArn,omitempty"`
	Status             TargetStatus        `json:"status,omitempty" yaml:"status,omitempty" validate:"omitempty,enum"`
	LastUpdatedAt      *time.Time          `json:"lastUpdatedAt,omitempty" yaml:"lastUpdatedAt,omitempty"`
	LifecycleEvents    []LifecycleEvent    `json:"lifecycleEvents,omitempty" yaml:"lifecycleEvents,omitempty" validate:"omitempty,dive"`
	LambdaFunctionInfo *LambdaFunctionInfo `json:"lambdaFunctionInfo,omitempty" yaml:"lambdaFunctionInfo,omitempty"`
}

// SetDeploymentId sets the DeploymentId field's value.
func (s *LambdaTarget) SetDeploymentId(v string) *LambdaTarget {
	s.DeploymentId = aws.String(v)
	return s
}

// SetTargetId sets the TargetId field's value.
func (s *LambdaTarget) SetTargetId(v string) *LambdaTarget {
	s.TargetId = aws.String(v)
	return s
}

// SetTargetArn sets the TargetArn field's value.
func (s *LambdaTarget) SetTargetArn(v string) *LambdaTarget {
	s.TargetArn = aws.String(v)
	return s
}

// SetStatus sets the Status field's value.
func (s *LambdaTarget) SetStatus(v TargetStatus) *LambdaTarget {
	s.Status = v
	return s
}

// SetLastUpdatedAt sets the LastUpdatedAt field's value.
func (s *LambdaTarget) SetLastUpdatedAt(v time.Time) *LambdaTarget {
	s.LastUpdatedAt = aws.Time(v)
	return s
}

// SetLifecycleEvents replaces LifecycleEvents with a copy of v. A nil v clears the field.
func (s *LambdaTarget) SetLifecycleEvents(v []LifecycleEvent) *LambdaTarget {
	s.LifecycleEvents = shape.CloneSlice(v)
	return s
}

// AddLifecycleEvents appends v to LifecycleEvents.
func (s *LambdaTarget) AddLifecycleEvents(v ...LifecycleEvent) *LambdaTarget {
	if s.LifecycleEvents == nil {
		s.LifecycleEvents = make([]LifecycleEvent, 0, len(v))
	}
	s.LifecycleEvents = append(s.LifecycleEvents, v...)
	return s
}

// SetLambdaFunctionInfo sets the LambdaFunctionInfo field's value.
func (s *LambdaTarget) SetLambdaFunctionInfo(v *LambdaFunctionInfo) *LambdaTarget {
	s.LambdaFunctionInfo = v
	return s
}

func (s LambdaTarget) String() string {
	return shape.Render(s)
}

func (s *LambdaTarget) Equal(other *LambdaTarget) bool {
	return shape.Equal(s, other)
}

func (s *LambdaTarget) HashCode() int32 {
	return shape.Hash(s)
}

// ECSTaskSet is one task set of an ECS blue/green deployment.
type ECSTaskSet struct {
	// Unique ID of the task set. The wire name is misspelled by the service.
	Identifer     *string          `json:"identifer,omitempty" yaml:"identifer,omitempty"`
	DesiredCount  *int64           `json:"desiredCount,omitempty" yaml:"desiredCount,omitempty"`
	PendingCount  *int64           `json:"pendingCount,omitempty" yaml:"pendingCount,omitempty"`
	RunningCount  *int64           `json:"runningCount,omitempty" yaml:"runningCount,omitempty"`
	Status        *string          `json:"status,omitempty" yaml:"status,omitempty"`
	TrafficWeight *float64         `json:"trafficWeight,omitempty" yaml:"trafficWeight,omitempty"`
	TargetGroup   *TargetGroupInfo `json:"targetGroup,omitempty" yaml:"targetGroup,omitempty"`
	TaskSetLabel  TargetLabel      `json:"taskSetLabel,omitempty" yaml:"taskSetLabel,omitempty" validate:"omitempty,enum"`
}

// SetIdentifer sets the Identifer field's value.
func (s *ECSTaskSet) SetIdentifer(v string) *ECSTaskSet {
	s.Identifer = aws.String(v)
	return s
}

// SetDesiredCount sets the DesiredCount field's value.
func (s *ECSTaskSet) SetDesiredCount(v int64) *ECSTaskSet {
	s.DesiredCount = aws.Int64(v)
	return s
}

// SetPendingCount sets the PendingCount field's value.
func (s *ECSTaskSet) SetPendingCount(v int64) *ECSTaskSet {
	s.PendingCount = aws.Int64(v)
	return s
}

// SetRunningCount sets the RunningCount field's value.
func (s *ECSTaskSet) SetRunningCount(v int64) *ECSTaskSet {
	s.RunningCount = aws.Int64(v)
	return s
}

// SetStatus sets the Status field's value.
func (s *ECSTaskSet) SetStatus(v string) *ECSTaskSet {
	s.Status = aws.String(v)
	return s
}

// SetTrafficWeight sets the TrafficWeight field's value.
func (s *ECSTaskSet) SetTrafficWeight(v float64) *ECSTaskSet {
	s.TrafficWeight = aws.Float64(v)
	return s
}

// SetTargetGroup sets the TargetGroup field's value.
func (s *ECSTaskSet) SetTargetGroup(v *TargetGroupInfo) *ECSTaskSet {
	s.TargetGroup = v
	return s
}

// SetTaskSetLabel sets the TaskSetLabel field's value.
func (s *ECSTaskSet) SetTaskSetLabel(v TargetLabel) *ECSTaskSet {
	s.TaskSetLabel = v
	return s
}

func (s ECSTaskSet) String() string {
	return shape.Render(s)
}

func (s *ECSTaskSet) Equal(other *ECSTaskSet) bool {
	return shape.Equal(s, other)
}

func (s *ECSTaskSet) HashCode() int32 {
	return shape.Hash(s)
}

// ECSTarget is an ECS service targeted by a deployment.
type ECSTarget struct {
	DeploymentId    *string          `json:"deploymentId,omitempty" yaml:"deploymentId,omitempty"`
	TargetId        *string          `json:"targetId,omitempty" yaml:"targetId,omitempty"`
	TargetArn       *string          `json:"targetArn,omitempty" yaml:"targetArn,omitempty"`
	LastUpdatedAt   *time.Time       `json:"lastUpdatedAt,omitempty" yaml:"lastUpdatedAt,omitempty"`
	LifecycleEvents []LifecycleEvent `json:"lifecycleEvents,omitempty" yaml:"lifecycleEvents,omitempty" validate:"omitempty,dive"`
	Status          TargetStatus     `json:"status,omitempty" yaml:"status,omitempty" validate:"omitempty,enum"`
	TaskSetsInfo    []ECSTaskSet     `json:"taskSetsInfo,omitempty" yaml:"taskSetsInfo,omitempty" validate:"omitempty,dive"`
}

// SetDeploymentId sets the DeploymentId field's value.
func (s *ECSTarget) SetDeploymentId(v string) *ECSTarget {
	s.DeploymentId = aws.String(v)
	return s
}

// SetTargetId sets the TargetId field's value.
func (s *ECSTarget) SetTargetId(v string) *ECSTarget {
	s.TargetId = aws.String(v)
	return s
}

// SetTargetArn sets the TargetArn field's value.
func (s *ECSTarget) SetTargetArn(v string) *ECSTarget {
	s.TargetArn = aws.String(v)
	return s
}

// SetLastUpdatedAt sets the LastUpdatedAt field's value.
func (s *ECSTarget) SetLastUpdatedAt(v time.Time) *ECSTarget {
	s.LastUpdatedAt = aws.Time(v)
	return s
}

// SetLifecycleEvents replaces LifecycleEvents with a copy of v. A nil v clears the field.
func (s *ECSTarget) SetLifecycleEvents(v []LifecycleEvent) *ECSTarget {
	s.LifecycleEvents = shape.CloneSlice(v)
	return s
}

// AddLifecycleEvents appends v to LifecycleEvents.
func (s *ECSTarget) AddLifecycleEvents(v ...LifecycleEvent) *ECSTarget {
	if s.LifecycleEvents == nil {
		s.LifecycleEvents = make([]LifecycleEvent, 0, len(v))
	}
	s.LifecycleEvents = append(s.LifecycleEvents, v...)
	return s
}

// SetStatus sets the Status field's value.
func (s *ECSTarget) SetStatus(v TargetStatus) *ECSTarget {
	s.Status = v
	return s
}

// SetTaskSetsInfo replaces TaskSetsInfo with a copy of v. A nil v clears the field.
func (s *ECSTarget) SetTaskSetsInfo(v []ECSTaskSet) *ECSTarget {
	s.TaskSetsInfo = shape.CloneSlice(v)
	return s
}

// AddTaskSetsInfo appends v to TaskSetsInfo.
func (s *ECSTarget) AddTaskSetsInfo(v ...ECSTaskSet) *ECSTarget {
	if s.TaskSetsInfo == nil {
		s.TaskSetsInfo = make([]ECSTaskSet, 0, len(v))
	}
	s.TaskSetsInfo = append(s.TaskSetsInfo, v...)
	return s
}

func (s ECSTarget) String() string {
	return shape.Render(s)
}

func (s *ECSTarget) Equal(other *ECSTarget) bool {
	return shape.Equal(s, other)
}

func (s *ECSTarget) HashCode() int32 {
	return shape.Hash(s)
}

// CloudFormationTarget is a blue/green deployment target managed by CloudFormation.
type CloudFormationTarget struct {
	DeploymentId        *string          `json:"deploymentId,omitempty" yaml:"deploymentId,omitempty"`
	TargetId            *string          `json:"targetId,omitempty" yaml:"targetId,omitempty"`
	LastUpdatedAt       *time.Time       `json:"lastUpdatedAt,omitempty" yaml:"lastUpdatedAt,omitempty"`
	LifecycleEvents     []LifecycleEvent `json:"lifecycleEvents,omitempty" yaml:"lifecycleEvents,omitempty" validate:"omitempty,dive"`
	Status              TargetStatus     `json:"status,omitempty" yaml:"status,omitempty" validate:"omitempty,enum"`
	ResourceType        *string          `json:"resourceType,omitempty" yaml:"resourceType,omitempty"`
	TargetVersionWeight *float64         `json:"targetVersionWeight,omitempty" yaml:"targetVersionWeight,omitempty"`
}

// SetDeploymentId sets the DeploymentId field's value.
func (s *CloudFormationTarget) SetDeploymentId(v string) *CloudFormationTarget {
	s.DeploymentId = aws.String(v)
	return s
}

// SetTargetId sets the TargetId field's value.
func (s *CloudFormationTarget) SetTargetId(v string) *CloudFormationTarget {
	s.TargetId = aws.String(v)
	return s
}

// SetLastUpdatedAt sets the LastUpdatedAt field's value.
func (s *CloudFormationTarget) SetLastUpdatedAt(v time.Time) *CloudFormationTarget {
	s.LastUpdatedAt = aws.Time(v)
	return s
}

// SetLifecycleEvents replaces LifecycleEvents with a copy of v. A nil v clears the field.
func (s *CloudFormationTarget) SetLifecycleEvents(v []LifecycleEvent) *CloudFormationTarget {
	s.LifecycleEvents = shape.CloneSlice(v)
	return s
}

// AddLifecycleEvents appends v to LifecycleEvents.
func (s *CloudFormationTarget) AddLifecycleEvents(v ...LifecycleEvent) *CloudFormationTarget {
	if s.LifecycleEvents == nil {
		s.LifecycleEvents = make([]LifecycleEvent, 0, len(v))
	}
	s.LifecycleEvents = append(s.LifecycleEvents, v...)
	return s
}

// SetStatus sets the Status field's value.
func (s *CloudFormationTarget) SetStatus(v TargetStatus) *CloudFormationTarget {
	s.Status = v
	return s
}

// SetResourceType sets the ResourceType field's value.
func (s *CloudFormationTarget) SetResourceType(v string) *CloudFormationTarget {
	s.ResourceType = aws.String(v)
	return s
}

// SetTargetVersionWeight sets the TargetVersionWeight field's value.
func (s *CloudFormationTarget) SetTargetVersionWeight(v float64) *CloudFormationTarget {
	s.TargetVersionWeight = aws.Float64(v)
	return s
}

func (s CloudFormationTarget) String() string {
	return shape.Render(s)
}

func (s *CloudFormationTarget) Equal(other *CloudFormationTarget) bool {
	return shape.Equal(s, other)
}

func (s *CloudFormationTarget) HashCode() int32 {
	return shape.Hash(s)
}

// DeploymentTarget holds exactly one typed target, selected by DeploymentTargetType.
type DeploymentTarget struct {
	DeploymentTargetType DeploymentTargetType  `json:"deploymentTargetType,omitempty" yaml:"deploymentTargetType,omitempty" validate:"omitempty,enum"`
	InstanceTarget       *InstanceTarget       `json:"instanceTarget,omitempty" yaml:"instanceTarget,omitempty"`
	LambdaTarget         *LambdaTarget         `json:"lambdaTarget,omitempty" yaml:"lambdaTarget,omitempty"`
	EcsTarget            *ECSTarget            `json:"ecsTarget,omitempty" yaml:"ecsTarget,omitempty"`
	CloudFormationTarget *CloudFormationTarget `json:"cloudFormationTarget,omitempty" yaml:"cloudFormationTarget,omitempty"`
}

// SetDeploymentTargetType sets the DeploymentTargetType field's value.
func (s *DeploymentTarget) SetDeploymentTargetType(v DeploymentTargetType) *DeploymentTarget {
	s.DeploymentTargetType = v
	return s
}

// SetInstanceTarget sets the InstanceTarget field's value.
func (s *DeploymentTarget) SetInstanceTarget(v *InstanceTarget) *DeploymentTarget {
	s.InstanceTarget = v
	return s
}

// SetLambdaTarget sets the LambdaTarget field's value.
func (s *DeploymentTarget) SetLambdaTarget(v *LambdaTarget) *DeploymentTarget {
	s.LambdaTarget = v
	return s
}

// SetEcsTarget sets the EcsTarget field's value.
func (s *DeploymentTarget) SetEcsTarget(v *ECSTarget) *DeploymentTarget {
	s.EcsTarget = v
	return s
}

// SetCloudFormationTarget sets the CloudFormationTarget field's value.
func (s *DeploymentTarget) SetCloudFormationTarget(v *CloudFormationTarget) *DeploymentTarget {
	s.CloudFormationTarget = v
	return s
}

func (s DeploymentTarget) String() string {
	return shape.Render(s)
}

func (s *DeploymentTarget) Equal(other *DeploymentTarget) bool {
	return shape.Equal(s, other)
}

func (s *DeploymentTarget) HashCode() int32 {
	return shape.Hash(s)
}
