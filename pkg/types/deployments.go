package types

import (
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"

	"github.com/jvreagan/codedeploy-model/internal/shape"
	"github.com/jvreagan/codedeploy-model/pkg/validation"
)

// BatchGetDeploymentsRequest is the input of the BatchGetDeployments operation, which gets
// information about one or more deployments.
type BatchGetDeploymentsRequest struct {
	DeploymentIds []string `json:"deploymentIds,omitempty" yaml:"deploymentIds,omitempty" validate:"required"`
}

// SetDeploymentIds replaces DeploymentIds with a copy of v. A nil v clears the field.
func (s *BatchGetDeploymentsRequest) SetDeploymentIds(v []string) *BatchGetDeploymentsRequest {
	s.DeploymentIds = shape.CloneSlice(v)
	return s
}

// AddDeploymentIds appends v to DeploymentIds.
func (s *BatchGetDeploymentsRequest) AddDeploymentIds(v ...string) *BatchGetDeploymentsRequest {
	if s.DeploymentIds == nil {
		s.DeploymentIds = make([]string, 0, len(v))
	}
	s.DeploymentIds = append(s.DeploymentIds, v...)
	return s
}

func (s BatchGetDeploymentsRequest) String() string {
	return shape.Render(s)
}

// Equal reports whether s and other hold the same field values.
func (s *BatchGetDeploymentsRequest) Equal(other *BatchGetDeploymentsRequest) bool {
	return shape.Equal(s, other)
}

func (s *BatchGetDeploymentsRequest) HashCode() int32 {
	return shape.Hash(s)
}

// Validate checks the documented service constraints locally.
func (s *BatchGetDeploymentsRequest) Validate() error {
	return validation.Struct(s)
}

// BatchGetDeploymentsResult is the output of the BatchGetDeployments operation.
type BatchGetDeploymentsResult struct {
	DeploymentsInfo []DeploymentInfo `json:"deploymentsInfo,omitempty" yaml:"deploymentsInfo,omitempty" validate:"omitempty,dive"`
}

// SetDeploymentsInfo replaces DeploymentsInfo with a copy of v. A nil v clears the field.
func (s *BatchGetDeploymentsResult) SetDeploymentsInfo(v []DeploymentInfo) *BatchGetDeploymentsResult {
	s.DeploymentsInfo = shape.CloneSlice(v)
	return s
}

// AddDeploymentsInfo appends v to DeploymentsInfo.
func (s *BatchGetDeploymentsResult) AddDeploymentsInfo(v ...DeploymentInfo) *BatchGetDeploymentsResult {
	if s.DeploymentsInfo == nil {
		s.DeploymentsInfo = make([]DeploymentInfo, 0, len(v))
	}
	s.DeploymentsInfo = append(s.DeploymentsInfo, v...)
	return s
}

func (s BatchGetDeploymentsResult) String() string {
	return shape.Render(s)
}

func (s *BatchGetDeploymentsResult) Equal(other *BatchGetDeploymentsResult) bool {
	return shape.Equal(s, other)
}

func (s *BatchGetDeploymentsResult) HashCode() int32 {
	return shape.Hash(s)
}

// ContinueDeploymentRequest is the input of the ContinueDeployment operation, which starts
// rerouting traffic, or terminates the original fleet, of a blue/green deployment that is
// waiting.
type ContinueDeploymentRequest struct {
	DeploymentId       *string            `json:"deploymentId,omitempty" yaml:"deploymentId,omitempty"`
	DeploymentWaitType DeploymentWaitType `json:"deploymentWaitType,omitempty" yaml:"deploymentWaitType,omitempty" validate:"omitempty,enum"`
}

// SetDeploymentId sets the DeploymentId field's value.
func (s *ContinueDeploymentRequest) SetDeploymentId(v string) *ContinueDeploymentRequest {
	s.DeploymentId = aws.String(v)
	return s
}

// SetDeploymentWaitType sets the DeploymentWaitType field's value.
func (s *ContinueDeploymentRequest) SetDeploymentWaitType(v DeploymentWaitType) *ContinueDeploymentRequest {
	s.DeploymentWaitType = v
	return s
}

func (s ContinueDeploymentRequest) String() string {
	return shape.Render(s)
}

// Equal reports whether s and other hold the same field values.
func (s *ContinueDeploymentRequest) Equal(other *ContinueDeploymentRequest) bool {
	return shape.Equal(s, other)
}

func (s *ContinueDeploymentRequest) HashCode() int32 {
	return shape.Hash(s)
}

// Validate checks the documented service constraints locally.
func (s *ContinueDeploymentRequest) Validate() error {
	return validation.Struct(s)
}

// ContinueDeploymentResult is the output of the ContinueDeployment operation.
type ContinueDeploymentResult struct{}

func (s ContinueDeploymentResult) String() string {
	return shape.Render(s)
}

func (s *ContinueDeploymentResult) Equal(other *ContinueDeploymentResult) bool {
	return shape.Equal(s, other)
}

func (s *ContinueDeploymentResult) HashCode() int32 {
	return shape.Hash(s)
}

// CreateDeploymentRequest is the input of the CreateDeployment operation, which deploys an
// application revision through a deployment group.
type CreateDeploymentRequest struct {
	ApplicationName     *string           `json:"applicationName,omitempty" yaml:"applicationName,omitempty" validate:"required,min=1,max=100"`
	DeploymentGroupName *string           `json:"deploymentGroupName,omitempty" yaml:"deploymentGroupName,omitempty" validate:"omitempty,min=1,max=100"`
	Revision            *RevisionLocation `json:"revision,omitempty" yaml:"revision,omitempty"`

	// Defaults to the deployment group's configuration, then CodeDeployDefault.OneAtATime.
	DeploymentConfigName *string `json:"deploymentConfigName,omitempty" yaml:"deploymentConfigName,omitempty" validate:"omitempty,min=1,max=100"`
	Description          *string `json:"description,omitempty" yaml:"description,omitempty"`

	// Keep going when the ApplicationStop lifecycle event fails on an instance.
	IgnoreApplicationStopFailures *bool                      `json:"ignoreApplicationStopFailures,omitempty" yaml:"ignoreApplicationStopFailures,omitempty"`
	TargetInstances               *TargetInstances           `json:"targetInstances,omitempty" yaml:"targetInstances,omitempty"`
	AutoRollbackConfiguration     *AutoRollbackConfiguration `json:"autoRollbackConfiguration,omitempty" yaml:"autoRollbackConfiguration,omitempty"`
	UpdateOutdatedInstancesOnly   *bool                      `json:"updateOutdatedInstancesOnly,omitempty" yaml:"updateOutdatedInstancesOnly,omitempty"`
	FileExistsBehavior            FileExistsBehavior         `json:"fileExistsBehavior,omitempty" yaml:"fileExistsBehavior,omitempty" validate:"omitempty,enum"`
}

// SetApplicationName sets the ApplicationName field's value.
func (s *CreateDeploymentRequest) SetApplicationName(v string) *CreateDeploymentRequest {
	s.ApplicationName = aws.String(v)
	return s
}

// SetDeploymentGroupName sets the DeploymentGroupName field's value.
func (s *CreateDeploymentRequest) SetDeploymentGroupName(v string) *CreateDeploymentRequest {
	s.DeploymentGroupName = aws.String(v)
	return s
}

// SetRevision sets the Revision field's value.
func (s *CreateDeploymentRequest) SetRevision(v *RevisionLocation) *CreateDeploymentRequest {
	s.Revision = v
	return s
}

// SetDeploymentConfigName sets the DeploymentConfigName field's value.
func (s *CreateDeploymentRequest) SetDeploymentConfigName(v string) *CreateDeploymentRequest {
	s.DeploymentConfigName = aws.String(v)
	return s
}

// SetDescription sets the Description field's value.
func (s *CreateDeploymentRequest) SetDescription(v string) *CreateDeploymentRequest {
	s.Description = aws.String(v)
	return s
}

// SetIgnoreApplicationStopFailures sets the IgnoreApplicationStopFailures field's value.
func (s *CreateDeploymentRequest) SetIgnoreApplicationStopFailures(v bool) *CreateDeploymentRequest {
	s.IgnoreApplicationStopFailures = aws.Bool(v)
	return s
}

// SetTargetInstances sets the TargetInstances field's value.
func (s *CreateDeploymentRequest) SetTargetInstances(v *TargetInstances) *CreateDeploymentRequest {
	s.TargetInstances = v
	return s
}

// SetAutoRollbackConfiguration sets the AutoRollbackConfiguration field's value.
func (s *CreateDeploymentRequest) SetAutoRollbackConfiguration(v *AutoRollbackConfiguration) *CreateDeploymentRequest {
	s.AutoRollbackConfiguration = v
	return s
}

// SetUpdateOutdatedInstancesOnly sets the UpdateOutdatedInstancesOnly field's value.
func (s *CreateDeploymentRequest) SetUpdateOutdatedInstancesOnly(v bool) *CreateDeploymentRequest {
	s.UpdateOutdatedInstancesOnly = aws.Bool(v)
	return s
}

// SetFileExistsBehavior sets the FileExistsBehavior field's value.
func (s *CreateDeploymentRequest) SetFileExistsBehavior(v FileExistsBehavior) *CreateDeploymentRequest {
	s.FileExistsBehavior = v
	return s
}

func (s CreateDeploymentRequest) String() string {
	return shape.Render(s)
}

// Equal reports whether s and other hold the same field values.
func (s *CreateDeploymentRequest) Equal(other *CreateDeploymentRequest) bool {
	return shape.Equal(s, other)
}

func (s *CreateDeploymentRequest) HashCode() int32 {
	return shape.Hash(s)
}

// Validate checks the documented service constraints locally.
func (s *CreateDeploymentRequest) Validate() error {
	return validation.Struct(s)
}

// CreateDeploymentResult is the output of the CreateDeployment operation.
type CreateDeploymentResult struct {
	DeploymentId *string `json:"deploymentId,omitempty" yaml:"deploymentId,omitempty"`
}

// SetDeploymentId sets the DeploymentId field's value.
func (s *CreateDeploymentResult) SetDeploymentId(v string) *CreateDeploymentResult {
	s.DeploymentId = aws.String(v)
	return s
}

func (s CreateDeploymentResult) String() string {
	return shape.Render(s)
}

func (s *CreateDeploymentResult) Equal(other *CreateDeploymentResult) bool {
	return shape.Equal(s, other)
}

func (s *CreateDeploymentResult) HashCode() int32 {
	return shape.Hash(s)
}

// GetDeploymentRequest is the input of the GetDeployment operation, which gets information
// about a deployment.
type GetDeploymentRequest struct {
	DeploymentId *string `json:"deploymentId,omitempty" yaml:"deploymentId,omitempty" validate:"required"`
}

// SetDeploymentId sets the DeploymentId field's value.
func (s *GetDeploymentRequest) SetDeploymentId(v string) *GetDeploymentRequest {
	s.DeploymentId = aws.String(v)
	return s
}

func (s GetDeploymentRequest) String() string {
	return shape.Render(s)
}

// Equal reports whether s and other hold the same field values.
func (s *GetDeploymentRequest) Equal(other *GetDeploymentRequest) bool {
	return shape.Equal(s, other)
}

func (s *GetDeploymentRequest) HashCode() int32 {
	return shape.Hash(s)
}

// Validate checks the documented service constraints locally.
func (s *GetDeploymentRequest) Validate() error {
	return validation.Struct(s)
}

// GetDeploymentResult is the output of the GetDeployment operation.
type GetDeploymentResult struct {
	DeploymentInfo *DeploymentInfo `json:"deploymentInfo,omitempty" yaml:"deploymentInfo,omitempty"`
}

// SetDeploymentInfo sets the DeploymentInfo field's value.
func (s *GetDeploymentResult) SetDeploymentInfo(v *DeploymentInfo) *GetDeploymentResult {
	s.DeploymentInfo = v
	return s
}

func (s GetDeploymentResult) String() string {
	return shape.Render(s)
}

func (s *GetDeploymentResult) Equal(other *GetDeploymentResult) bool {
	return shape.Equal(s, other)
}

func (s *GetDeploymentResult) HashCode() int32 {
	return shape.Hash(s)
}

// ListDeploymentsRequest is the input of the ListDeployments operation, which lists
// deployments.
type ListDeploymentsRequest struct {
	ApplicationName     *string            `json:"applicationName,omitempty" yaml:"applicationName,omitempty" validate:"omitempty,min=1,max=100"`
	DeploymentGroupName *string            `json:"deploymentGroupName,omitempty" yaml:"deploymentGroupName,omitempty" validate:"omitempty,min=1,max=100"`
	ExternalId          *string            `json:"externalId,omitempty" yaml:"externalId,omitempty"`
	IncludeOnlyStatuses []DeploymentStatus `json:"includeOnlyStatuses,omitempty" yaml:"includeOnlyStatuses,omitempty" validate:"omitempty,dive,enum"`
	CreateTimeRange     *TimeRange         `json:"createTimeRange,omitempty" yaml:"createTimeRange,omitempty"`
	NextToken           *string            `json:"nextToken,omitempty" yaml:"nextToken,omitempty"`
}

// SetApplicationName sets the ApplicationName field's value.
func (s *ListDeploymentsRequest) SetApplicationName(v string) *ListDeploymentsRequest {
	s.ApplicationName = aws.String(v)
	return s
}

// SetDeploymentGroupName sets the DeploymentGroupName field's value.
func (s *ListDeploymentsRequest) SetDeploymentGroupName(v string) *ListDeploymentsRequest {
	s.DeploymentGroupName = aws.String(v)
	return s
}

// SetExternalId sets the ExternalId field's value.
func (s *ListDeploymentsRequest) SetExternalId(v string) *ListDeploymentsRequest {
	s.ExternalId = aws.String(v)
	return s
}

// SetIncludeOnlyStatuses replaces IncludeOnlyStatuses with a copy of v. A nil v clears the field.
func (s *ListDeploymentsRequest) SetIncludeOnlyStatuses(v []DeploymentStatus) *ListDeploymentsRequest {
	s.IncludeOnlyStatuses = shape.CloneSlice(v)
	return s
}

// AddIncludeOnlyStatuses appends v to IncludeOnlyStatuses.
func (s *ListDeploymentsRequest) AddIncludeOnlyStatuses(v ...DeploymentStatus) *ListDeploymentsRequest {
	if s.IncludeOnlyStatuses == nil {
		s.IncludeOnlyStatuses = make([]DeploymentStatus, 0, len(v))
	}
	s.IncludeOnlyStatuses = append(s.IncludeOnlyStatuses, v...)
	return s
}

// SetCreateTimeRange sets the CreateTimeRange field's value.
func (s *ListDeploymentsRequest) SetCreateTimeRange(v *TimeRange) *ListDeploymentsRequest {
	s.CreateTimeRange = v
	return s
}

// SetNextToken sets the NextToken field's value.
func (s *ListDeploymentsRequest) SetNextToken(v string) *ListDeploymentsRequest {
	s.NextToken = aws.String(v)
	return s
}

func (s ListDeploymentsRequest) String() string {
	return shape.Render(s)
}

// Equal reports whether s and other hold the same field values.
func (s *ListDeploymentsRequest) Equal(other *ListDeploymentsRequest) bool {
	return shape.Equal(s, other)
}

func (s *ListDeploymentsRequest) HashCode() int32 {
	return shape.Hash(s)
}

// Validate checks the documented service constraints locally.
func (s *ListDeploymentsRequest) Validate() error {
	return validation.Struct(s)
}

// ListDeploymentsResult is the output of the ListDeployments operation.
type ListDeploymentsResult struct {
	Deployments []string `json:"deployments,omitempty" yaml:"deployments,omitempty"`
	NextToken   *string  `json:"nextToken,omitempty" yaml:"nextToken,omitempty"`
}

// SetDeployments replaces Deployments with a copy of v. A nil v clears the field.
func (s *ListDeploymentsResult) SetDeployments(v []string) *ListDeploymentsResult {
	s.Deployments = shape.CloneSlice(v)
	return s
}

// AddDeployments appends v to Deployments.
func (s *ListDeploymentsResult) AddDeployments(v ...string) *ListDeploymentsResult {
	if s.Deployments == nil {
		s.Deployments = make([]string, 0, len(v))
	}
	s.Deployments = append(s.Deployments, v...)
	return s
}

// SetNextToken sets the NextToken field's value.
func (s *ListDeploymentsResult) SetNextToken(v string) *ListDeploymentsResult {
	s.NextToken = aws.String(v)
	return s
}

func (s ListDeploymentsResult) String() string {
	return shape.Render(s)
}

func (s *ListDeploymentsResult) Equal(other *ListDeploymentsResult) bool {
	return shape.Equal(s, other)
}

func (s *ListDeploymentsResult) HashCode() int32 {
	return shape.Hash(s)
}

// PutLifecycleEventHookExecutionStatusRequest is the input of the
// PutLifecycleEventHookExecutionStatus operation, which reports the result of a Lambda or ECS
// lifecycle validation hook.
type PutLifecycleEventHookExecutionStatusRequest struct {
	DeploymentId                  *string              `json:"deploymentId,omitempty" yaml:"deploymentId,omitempty"`
	LifecycleEventHookExecutionId *string              `json:"lifecycleEventHookExecutionId,omitempty" yaml:"lifecycleEventHookExecutionId,omitempty"`
	Status                        LifecycleEventStatus `json:"status,omitempty" yaml:"status,omitempty" validate:"omitempty,enum"`
}

// SetDeploymentId sets the DeploymentId field's value.
func (s *PutLifecycleEventHookExecutionStatusRequest) SetDeploymentId(v string) *PutLifecycleEventHookExecutionStatusRequest {
	s.DeploymentId = aws.String(v)
	return s
}

// SetLifecycleEventHookExecutionId sets the LifecycleEventHookExecutionId field's value.
func (s *PutLifecycleEventHookExecutionStatusRequest) SetLifecycleEventHookExecutionId(v string) *PutLifecycleEventHookExecutionStatusRequest {
	s.LifecycleEventHookExecutionId = aws.String(v)
	return s
}

// SetStatus sets the Status field's value.
func (s *PutLifecycleEventHookExecutionStatusRequest) SetStatus(v LifecycleEventStatus) *PutLifecycleEventHookExecutionStatusRequest {
	s.Status = v
	return s
}

func (s PutLifecycleEventHookExecutionStatusRequest) String() string {
	return shape.Render(s)
}

// Equal reports whether s and other hold the same field values.
func (s *PutLifecycleEventHookExecutionStatusRequest) Equal(other *PutLifecycleEventHookExecutionStatusRequest) bool {
	return shape.Equal(s, other)
}

func (s *PutLifecycleEventHookExecutionStatusRequest) HashCode() int32 {
	return shape.Hash(s)
}

// Validate checks the documented service constraints locally.
func (s *PutLifecycleEventHookExecutionStatusRequest) Validate() error {
	return validation.Struct(s)
}

// PutLifecycleEventHookExecutionStatusResult is the output of the
// PutLifecycleEventHookExecutionStatus operation.
type PutLifecycleEventHookExecutionStatusResult struct {
	LifecycleEventHookExecutionId *string `json:"lifecycleEventHookExecutionId,omitempty" yaml:"lifecycleEventHookExecutionId,omitempty"`
}

// SetLifecycleEventHookExecutionId sets the LifecycleEventHookExecutionId field's value.
func (s *PutLifecycleEventHookExecutionStatusResult) SetLifecycleEventHookExecutionId(v string) *PutLifecycleEventHookExecutionStatusResult {
	s.LifecycleEventHookExecutionId = aws.String(v)
	return s
}

func (s PutLifecycleEventHookExecutionStatusResult) String() string {
	return shape.Render(s)
}

func (s *PutLifecycleEventHookExecutionStatusResult) Equal(other *PutLifecycleEventHookExecutionStatusResult) bool {
	return shape.Equal(s, other)
}

func (s *PutLifecycleEventHookExecutionStatusResult) HashCode() int32 {
	return shape.Hash(s)
}

// SkipWaitTimeForInstanceTerminationRequest is the input of the
// SkipWaitTimeForInstanceTermination operation, which terminates the original fleet of a
// blue/green deployment without waiting.
type SkipWaitTimeForInstanceTerminationRequest struct {
	DeploymentId *string `json:"deploymentId,omitempty" yaml:"deploymentId,omitempty"`
}

// SetDeploymentId sets the DeploymentId field's value.
func (s *SkipWaitTimeForInstanceTerminationRequest) SetDeploymentId(v string) *SkipWaitTimeForInstanceTerminationRequest {
	s.DeploymentId = aws.String(v)
	return s
}

func (s SkipWaitTimeForInstanceTerminationRequest) String() string {
	return shape.Render(s)
}

// Equal reports whether s and other hold the same field values.
func (s *SkipWaitTimeForInstanceTerminationRequest) Equal(other *SkipWaitTimeForInstanceTerminationRequest) bool {
	return shape.Equal(s, other)
}

func (s *SkipWaitTimeForInstanceTerminationRequest) HashCode() int32 {
	return shape.Hash(s)
}

// Validate checks the documented service constraints locally.
func (s *SkipWaitTimeForInstanceTerminationRequest) Validate() error {
	return validation.Struct(s)
}

// SkipWaitTimeForInstanceTerminationResult is the output of the
// SkipWaitTimeForInstanceTermination operation.
type SkipWaitTimeForInstanceTerminationResult struct{}

func (s SkipWaitTimeForInstanceTerminationResult) String() string {
	return shape.Render(s)
}

func (s *SkipWaitTimeForInstanceTerminationResult) Equal(other *SkipWaitTimeForInstanceTerminationResult) bool {
	return shape.Equal(s, other)
}

func (s *SkipWaitTimeForInstanceTerminationResult) HashCode() int32 {
	return shape.Hash(s)
}

// StopDeploymentRequest is the input of the StopDeployment operation, which stops an ongoing
// deployment.
type StopDeploymentRequest struct {
	DeploymentId        *string `json:"deploymentId,omitempty" yaml:"deploymentId,omitempty" validate:"required"`
	AutoRollbackEnabled *bool   `json:"autoRollbackEnabled,omitempty" yaml:"autoRollbackEnabled,omitempty"`
}

// SetDeploymentId sets the DeploymentId field's value.
func (s *StopDeploymentRequest) SetDeploymentId(v string) *StopDeploymentRequest {
	s.DeploymentId = aws.String(v)
	return s
}

// SetAutoRollbackEnabled sets the AutoRollbackEnabled field's value.
func (s *StopDeploymentRequest) SetAutoRollbackEnabled(v bool) *StopDeploymentRequest {
	s.AutoRollbackEnabled = aws.Bool(v)
	return s
}

func (s StopDeploymentRequest) String() string {
	return shape.Render(s)
}

// Equal reports whether s and other hold the same field values.
func (s *StopDeploymentRequest) Equal(other *StopDeploymentRequest) bool {
	return shape.Equal(s, other)
}

func (s *StopDeploymentRequest) HashCode() int32 {
	return shape.Hash(s)
}

// Validate checks the documented service constraints locally.
func (s *StopDeploymentRequest) Validate() error {
	return validation.Struct(s)
}

// StopDeploymentResult is the output of the StopDeployment operation.
type StopDeploymentResult struct {
	Status        StopStatus `json:"status,omitempty" yaml:"status,omitempty" validate:"omitempty,enum"`
	StatusMessage *string    `json:"statusMessage,omitempty" yaml:"statusMessage,omitempty"`
}

// SetStatus sets the Status field's value.
func (s *StopDeploymentResult) SetStatus(v StopStatus) *StopDeploymentResult {
	s.Status = v
	return s
}

// SetStatusMessage sets the StatusMessage field's value.
func (s *StopDeploymentResult) SetStatusMessage(v string) *StopDeploymentResult {
	s.StatusMessage = aws.String(v)
	return s
}

func (s StopDeploymentResult) String() string {
	return shape.Render(s)
}

func (s *StopDeploymentResult) Equal(other *StopDeploymentResult) bool {
	return shape.Equal(s, other)
}

func (s *StopDeploymentResult) HashCode() int32 {
	return shape.Hash(s)
}

// TimeRange bounds a listing by time. Both ends are inclusive.
type TimeRange struct {
	Start *time.Time `json:"start,omitempty" yaml:"start,omitempty"`
	End   *time.Time `json:"end,omitempty" yaml:"end,omitempty"`
}

// SetStart sets the Start field's value.
func (s *TimeRange) SetStart(v time.Time) *TimeRange {
	s.Start = aws.Time(v)
	return s
}

// SetEnd sets the End field's value.
func (s *TimeRange) SetEnd(v time.Time) *TimeRange {
	s.End = aws.Time(v)
	return s
}

func (s TimeRange) String() string {
	return shape.Render(s)
}

func (s *TimeRange) Equal(other *TimeRange) bool {
	return shape.Equal(s, other)
}

func (s *TimeRange) HashCode() int32 {
	return shape.Hash(s)
}

// ErrorInformation describes why a deployment failed.
type ErrorInformation struct {
	Code    ErrorCode `json:"code,omitempty" yaml:"code,omitempty" validate:"omitempty,enum"`
	Message *string   `json:"message,omitempty" yaml:"message,omitempty"`
}

// SetCode sets the Code field's value.
func (s *ErrorInformation) SetCode(v ErrorCode) *ErrorInformation {
	s.Code = v
	return s
}

// SetMessage sets the Message field's value.
func (s *ErrorInformation) SetMessage(v string) *ErrorInformation {
	s.Message = aws.String(v)
	return s
}

func (s ErrorInformation) String() string {
	return shape.Render(s)
}

func (s *ErrorInformation) Equal(other *ErrorInformation) bool {
	return shape.Equal(s, other)
}

func (s *ErrorInformation) HashCode() int32 {
	return shape.Hash(s)
}

// DeploymentOverview counts instances by their state in a deployment.
type DeploymentOverview struct {
	Pending    *int64 `json:"Pending,omitempty" yaml:"Pending,omitempty"`
	InProgress *int64 `json:"InProgress,omitempty" yaml:"InProgress,omitempty"`
	Succeeded  *int64 `json:"Succeeded,omitempty" yaml:"Succeeded,omitempty"`
	Failed     *int64 `json:"Failed,omitempty" yaml:"Failed,omitempty"`
	Skipped    *int64 `json:"Skipped,omitempty" yaml:"Skipped,omitempty"`
	Ready      *int64 `json:"Ready,omitempty" yaml:"Ready,omitempty"`
}

// SetPending sets the Pending field's value.
func (s *DeploymentOverview) SetPending(v int64) *DeploymentOverview {
	s.Pending = aws.Int64(v)
	return s
}

// SetInProgress sets the InProgress field's value.
func (s *DeploymentOverview) SetInProgress(v int64) *DeploymentOverview {
	s.InProgress = aws.Int64(v)
	return s
}

// SetSucceeded sets the Succeeded field's value.
func (s *DeploymentOverview) SetSucceeded(v int64) *DeploymentOverview {
	s.Succeeded = aws.Int64(v)
	return s
}

// SetFailed sets the Failed field's value.
func (s *DeploymentOverview) SetFailed(v int64) *DeploymentOverview {
	s.Failed = aws.Int64(v)
	return s
}

// SetSkipped sets the Skipped field's value.
func (s *DeploymentOverview) SetSkipped(v int64) *DeploymentOverview {
	s.Skipped = aws.Int64(v)
	return s
}

// SetReady sets the Ready field's value.
func (s *DeploymentOverview) SetReady(v int64) *DeploymentOverview {
	s.Ready = aws.Int64(v)
	return s
}

func (s DeploymentOverview) String() string {
	return shape.Render(s)
}

func (s *DeploymentOverview) Equal(other *DeploymentOverview) bool {
	return shape.Equal(s, other)
}

func (s *DeploymentOverview) HashCode() int32 {
	return shape.Hash(s)
}

// RollbackInfo links a deployment to the rollback it triggered or was created by.
type RollbackInfo struct {
	RollbackDeploymentId           *string `json:"rollbackDeploymentId,omitempty" yaml:"rollbackDeploymentId,omitempty"`
	RollbackTriggeringDeploymentId *string `json:"rollbackTriggeringDeploymentId,omitempty" yaml:"rollbackTriggeringDeploymentId,omitempty"`
	RollbackMessage                *string `json:"rollbackMessage,omitempty" yaml:"rollbackMessage,omitempty"`
}

// SetRollbackDeploymentId sets the RollbackDeploymentId field's value.
func (s *RollbackInfo) SetRollbackDeploymentId(v string) *RollbackInfo {
	s.RollbackDeploymentId = aws.String(v)
	return s
}

// SetRollbackTriggeringDeploymentId sets the RollbackTriggeringDeploymentId field's value.
func (s *RollbackInfo) SetRollbackTriggeringDeploymentId(v string) *RollbackInfo {
	s.RollbackTriggeringDeploymentId = aws.String(v)
	return s
}

// SetRollbackMessage sets the RollbackMessage field's value.
func (s *RollbackInfo) SetRollbackMessage(v string) *RollbackInfo {
	s.RollbackMessage = aws.String(v)
	return s
}

func (s RollbackInfo) String() string {
	return shape.Render(s)
}

func (s *RollbackInfo) Equal(other *RollbackInfo) bool {
	return shape.Equal(s, other)
}

func (s *RollbackInfo) HashCode() int32 {
	return shape.Hash(s)
}

// TargetInstances selects the replacement instances of a blue/green deployment.
type TargetInstances struct {
	TagFilters        []EC2TagFilter `json:"tagFilters,omitempty" yaml:"tagFilters,omitempty" validate:"omitempty,dive"`
	AutoScalingGroups []string       `json:"autoScalingGroups,omitempty" yaml:"autoScalingGroups,omitempty"`
	Ec2TagSet         *EC2TagSet     `json:"ec2TagSet,omitempty" yaml:"ec2TagSet,omitempty"`
}

// SetTagFilters replaces TagFilters with a copy of v. A nil v clears the field.
func (s *TargetInstances) SetTagFilters(v []EC2TagFilter) *TargetInstances {
	s.TagFilters = shape.CloneSlice(v)
	return s
}

// AddTagFilters appends v to TagFilters.
func (s *TargetInstances) AddTagFilters(v ...EC2TagFilter) *TargetInstances {
	if s.TagFilters == nil {
		s.TagFilters = make([]EC2TagFilter, 0, len(v))
	}
	s.TagFilters = append(s.TagFilters, v...)
	return s
}

// SetAutoScalingGroups replaces AutoScalingGroups with a copy of v. A nil v clears the field.
func (s *TargetInstances) SetAutoScalingGroups(v []string) *TargetInstances {
	s.AutoScalingGroups = shape.CloneSlice(v)
	return s
}

// AddAutoScalingGroups appends v to AutoScalingGroups.
func (s *TargetInstances) AddAutoScalingGroups(v ...string) *TargetInstances {
	if s.AutoScalingGroups == nil {
		s.AutoScalingGroups = make([]string, 0, len(v))
	}
	s.AutoScalingGroups = append(s.AutoScalingGroups, v...)
	return s
}

// SetEc2TagSet sets the Ec2TagSet field's value.
func (s *TargetInstances) SetEc2TagSet(v *EC2TagSet) *TargetInstances {
	s.Ec2TagSet = v
	return s
}

func (s TargetInstances) String() string {
	return shape.Render(s)
}

func (s *TargetInstances) Equal(other *TargetInstances) bool {
	return shape.Equal(s, other)
}

func (s *TargetInstances) HashCode() int32 {
	return shape.Hash(s)
}

// DeploymentInfo describes a deployment.
type DeploymentInfo struct {
	ApplicationName      *string           `json:"applicationName,omitempty" yaml:"applicationName,omitempty" validate:"omitempty,min=1,max=100"`
	DeploymentGroupName  *string           `json:"deploymentGroupName,omitempty" yaml:"deploymentGroupName,omitempty" validate:"omitempty,min=1,max=100"`
	DeploymentConfigName *string           `json:"deploymentConfigName,omitempty" yaml:"deploymentConfigName,omitempty" validate:"omitempty,min=1,max=100"`
	DeploymentId         *string           `json:"deploymentId,omitempty" yaml:"deploymentId,omitempty"`
	PreviousRevision     *RevisionLocation `json:"previousRevision,omitempty" yaml:"previousRevision,omitempty"`
	Revision             *RevisionLocation `json:"revision,omitempty" yaml:"revision,omitempty"`

	// Current state of the deployment as a whole.
	Status           DeploymentStatus  `json:"status,omitempty" yaml:"status,omitempty" validate:"omitempty,enum"`
	ErrorInformation *ErrorInformation `json:"errorInformation,omitempty" yaml:"errorInformation,omitempty"`
	CreateTime       *time.Time        `json:"createTime,omitempty" yaml:"createTime,omitempty"`

	// When the deployment reached the deployment group. May be later than CompleteTime because of
	// clock skew between service hosts.
	StartTime                          *time.Time                        `json:"startTime,omitempty" yaml:"startTime,omitempty"`
	CompleteTime                       *time.Time                        `json:"completeTime,omitempty" yaml:"completeTime,omitempty"`
	DeploymentOverview                 *DeploymentOverview               `json:"deploymentOverview,omitempty" yaml:"deploymentOverview,omitempty"`
	Description                        *string                           `json:"description,omitempty" yaml:"description,omitempty"`
	Creator                            DeploymentCreator                 `json:"creator,omitempty" yaml:"creator,omitempty" validate:"omitempty,enum"`
	IgnoreApplicationStopFailures      *bool                             `json:"ignoreApplicationStopFailures,omitempty" yaml:"ignoreApplicationStopFailures,omitempty"`
	AutoRollbackConfiguration          *AutoRollbackConfiguration        `json:"autoRollbackConfiguration,omitempty" yaml:"autoRollbackConfiguration,omitempty"`
	UpdateOutdatedInstancesOnly        *bool                             `json:"updateOutdatedInstancesOnly,omitempty" yaml:"updateOutdatedInstancesOnly,omitempty"`
	RollbackInfo                       *RollbackInfo                     `json:"rollbackInfo,omitempty" yaml:"rollbackInfo,omitempty"`
	DeploymentStyle                    *DeploymentStyle                  `json:"deploymentStyle,omitempty" yaml:"deploymentStyle,omitempty"`
	TargetInstances                    *TargetInstances                  `json:"targetInstances,omitempty" yaml:"targetInstances,omitempty"`
	InstanceTerminationWaitTimeStarted *bool                             `json:"instanceTerminationWaitTimeStarted,omitempty" yaml:"instanceTerminationWaitTimeStarted,omitempty"`
	BlueGreenDeploymentConfiguration   *BlueGreenDeploymentConfiguration `json:"blueGreenDeploymentConfiguration,omitempty" yaml:"blueGreenDeploymentConfiguration,omitempty"`
	LoadBalancerInfo                   *LoadBalancerInfo                 `json:"loadBalancerInfo,omitempty" yaml:"loadBalancerInfo,omitempty"`

	// Deprecated by the service; use DeploymentStatusMessages.
	AdditionalDeploymentStatusInfo *string            `json:"additionalDeploymentStatusInfo,omitempty" yaml:"additionalDeploymentStatusInfo,omitempty"`
	FileExistsBehavior             FileExistsBehavior `json:"fileExistsBehavior,omitempty" yaml:"fileExistsBehavior,omitempty" validate:"omitempty,enum"`
	DeploymentStatusMessages       []string           `json:"deploymentStatusMessages,omitempty" yaml:"deploymentStatusMessages,omitempty"`
	ComputePlatform                ComputePlatform    `json:"computePlatform,omitempty" yaml:"computePlatform,omitempty" validate:"omitempty,enum"`
	ExternalId                     *string            `json:"externalId,omitempty" yaml:"externalId,omitempty"`
}

// SetApplicationName sets the ApplicationName field's value.
func (s *DeploymentInfo) SetApplicationName(v string) *DeploymentInfo {
	s.ApplicationName = aws.String(v)
	return s
}

// SetDeploymentGroupName sets the DeploymentGroupName field's value.
func (s *DeploymentInfo) SetDeploymentGroupName(v string) *DeploymentInfo {
	s.DeploymentGroupName = aws.String(v)
	return s
}

// SetDeploymentConfigName sets the DeploymentConfigName field's value.
func (s *DeploymentInfo) SetDeploymentConfigName(v string) *DeploymentInfo {
	s.DeploymentConfigName = aws.String(v)
	return s
}

// SetDeploymentId sets the DeploymentId field's value.
func (s *DeploymentInfo) SetDeploymentId(v string) *DeploymentInfo {
	s.DeploymentId = aws.String(v)
	return s
}

// SetPreviousRevision sets the PreviousRevision field's value.
func (s *DeploymentInfo) SetPreviousRevision(v *RevisionLocation) *DeploymentInfo {
	s.PreviousRevision = v
	return s
}

// SetRevision sets the Revision field's value.
func (s *DeploymentInfo) SetRevision(v *RevisionLocation) *DeploymentInfo {
	s.Revision = v
	return s
}

// SetStatus sets the Status field's value.
func (s *DeploymentInfo) SetStatus(v DeploymentStatus) *DeploymentInfo {
	s.Status = v
	return s
}

// SetErrorInformation sets the ErrorInformation field's value.
func (s *DeploymentInfo) SetErrorInformation(v *ErrorInformation) *DeploymentInfo {
	s.ErrorInformation = v
	return s
}

// SetCreateTime sets the CreateTime field's value.
func (s *DeploymentInfo) SetCreateTime(v time.Time) *DeploymentInfo {
	s.CreateTime = aws.Time(v)
	return s
}

// SetStartTime sets the StartTime field's value.
func (s *DeploymentInfo) SetStartTime(v time.Time) *DeploymentInfo {
	s.StartTime = aws.Time(v)
	return s
}

// SetCompleteTime sets the CompleteTime field's value.
func (s *DeploymentInfo) SetCompleteTime(v time.Time) *DeploymentInfo {
	s.CompleteTime = aws.Time(v)
	return s
}

// SetDeploymentOverview sets the DeploymentOverview field's value.
func (s *DeploymentInfo) SetDeploymentOverview(v *DeploymentOverview) *DeploymentInfo {
	s.DeploymentOverview = v
	return s
}

// SetDescription sets the Description field's value.
func (s *DeploymentInfo) SetDescription(v string) *DeploymentInfo {
	s.Description = aws.String(v)
	return s
}

// SetCreator sets the Creator field's value.
func (s *DeploymentInfo) SetCreator(v DeploymentCreator) *DeploymentInfo {
	s.Creator = v
	return s
}

// SetIgnoreApplicationStopFailures sets the IgnoreApplicationStopFailures field's value.
func (s *DeploymentInfo) SetIgnoreApplicationStopFailures(v bool) *DeploymentInfo {
	s.IgnoreApplicationStopFailures = aws.Bool(v)
	return s
}

// SetAutoRollbackConfiguration sets the AutoRollbackConfiguration field's value.
func (s *DeploymentInfo) SetAutoRollbackConfiguration(v *AutoRollbackConfiguration) *DeploymentInfo {
	s.AutoRollbackConfiguration = v
	return s
}

// SetUpdateOutdatedInstancesOnly sets the UpdateOutdatedInstancesOnly field's value.
func (s *DeploymentInfo) SetUpdateOutdatedInstancesOnly(v bool) *DeploymentInfo {
	s.UpdateOutdatedInstancesOnly = aws.Bool(v)
	return s
}

// SetRollbackInfo sets the RollbackInfo field's value.
func (s *DeploymentInfo) SetRollbackInfo(v *RollbackInfo) *DeploymentInfo {
	s.RollbackInfo = v
	return s
}

// SetDeploymentStyle sets the DeploymentStyle field's value.
func (s *DeploymentInfo) SetDeploymentStyle(v *DeploymentStyle) *DeploymentInfo {
	s.DeploymentStyle = v
	return s
}

// SetTargetInstances sets the TargetInstances field's value.
func (s *DeploymentInfo) SetTargetInstances(v *TargetInstances) *DeploymentInfo {
	s.TargetInstances = v
	return s
}

// SetInstanceTerminationWaitTimeStarted sets the InstanceTerminationWaitTimeStarted field's value.
func (s *DeploymentInfo) SetInstanceTerminationWaitTimeStarted(v bool) *DeploymentInfo {
	s.InstanceTerminationWaitTimeStarted = aws.Bool(v)
	return s
}

// SetBlueGreenDeploymentConfiguration sets the BlueGreenDeploymentConfiguration field's value.
func (s *DeploymentInfo) SetBlueGreenDeploymentConfiguration(v *BlueGreenDeploymentConfiguration) *DeploymentInfo {
	s.BlueGreenDeploymentConfiguration = v
	return s
}

// SetLoadBalancerInfo sets the LoadBalancerInfo field's value.
func (s *DeploymentInfo) SetLoadBalancerInfo(v *LoadBalancerInfo) *DeploymentInfo {
	s.LoadBalancerInfo = v
	return s
}

// SetAdditionalDeploymentStatusInfo sets the AdditionalDeploymentStatusInfo field's value.
func (s *DeploymentInfo) SetAdditionalDeploymentStatusInfo(v string) *DeploymentInfo {
	s.AdditionalDeploymentStatusInfo = aws.String(v)
	return s
}

// SetFileExistsBehavior sets the FileExistsBehavior field's value.
func (s *DeploymentInfo) SetFileExistsBehavior(v FileExistsBehavior) *DeploymentInfo {
	s.FileExistsBehavior = v
	return s
}

// SetDeploymentStatusMessages replaces DeploymentStatusMessages with a copy of v. A nil v clears the field.
func (s *DeploymentInfo) SetDeploymentStatusMessages(v []string) *DeploymentInfo {
	s.DeploymentStatusMessages = shape.CloneSlice(v)
	return s
}

// AddDeploymentStatusMessages appends v to DeploymentStatusMessages.
func (s *DeploymentInfo) AddDeploymentStatusMessages(v ...string) *DeploymentInfo {
	if s.DeploymentStatusMessages == nil {
		s.DeploymentStatusMessages = make([]string, 0, len(v))
	}
	s.DeploymentStatusMessages = append(s.DeploymentStatusMessages, v...)
	return s
}

// SetComputePlatform sets the ComputePlatform field's value.
func (s *DeploymentInfo) SetComputePlatform(v ComputePlatform) *DeploymentInfo {
	s.ComputePlatform = v
	return s
}

// SetExternalId sets the ExternalId field's value.
func (s *DeploymentInfo) SetExternalId(v string) *DeploymentInfo {
	s.ExternalId = aws.String(v)
	return s
}

func (s DeploymentInfo) String() string {
	return shape.Render(s)
}

func (s *DeploymentInfo) Equal(other *DeploymentInfo) bool {
	return shape.Equal(s, other)
}

func (s *DeploymentInfo) HashCode() int32 {
	return shape.Hash(s)
}
