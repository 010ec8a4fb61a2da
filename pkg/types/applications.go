package types

import (
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"

	"github.com/jvreagan/codedeploy-model/internal/shape"
	"github.com/jvreagan/codedeploy-model/pkg/validation"
)

// BatchGetApplicationsRequest is the input of the BatchGetApplications operation, which gets
// information about one or more applications.
type BatchGetApplicationsRequest struct {
	ApplicationNames []string `json:"applicationNames,omitempty" yaml:"applicationNames,omitempty" validate:"required"`
}

// SetApplicationNames replaces ApplicationNames with a copy of v. A nil v clears the field.
func (s *BatchGetApplicationsRequest) SetApplicationNames(v []string) *BatchGetApplicationsRequest {
	s.ApplicationNames = shape.CloneSlice(v)
	return s
}

// AddApplicationNames appends v to ApplicationNames.
func (s *BatchGetApplicationsRequest) AddApplicationNames(v ...string) *BatchGetApplicationsRequest {
	if s.ApplicationNames == nil {
		s.ApplicationNames = make([]string, 0, len(v))
	}
	s.ApplicationNames = append(s.ApplicationNames, v...)
	return s
}

func (s BatchGetApplicationsRequest) String() string {
	return shape.Render(s)
}

// Equal reports whether s and other hold the same field values.
func (s *BatchGetApplicationsRequest) Equal(other *BatchGetApplicationsRequest) bool {
	return shape.Equal(s, other)
}

func (s *BatchGetApplicationsRequest) HashCode() int32 {
	return shape.Hash(s)
}

// Validate checks the documented service constraints locally.
func (s *BatchGetApplicationsRequest) Validate() error {
	return validation.Struct(s)
}

// BatchGetApplicationsResult is the output of the BatchGetApplications operation.
type BatchGetApplicationsResult struct {
	ApplicationsInfo []ApplicationInfo `json:"applicationsInfo,omitempty" yaml:"applicationsInfo,omitempty" validate:"omitempty,dive"`
}

// SetApplicationsInfo replaces ApplicationsInfo with a copy of v. A nil v clears the field.
func (s *BatchGetApplicationsResult) SetApplicationsInfo(v []ApplicationInfo) *BatchGetApplicationsResult {
	s.ApplicationsInfo = shape.CloneSlice(v)
	return s
}

// AddApplicationsInfo appends v to ApplicationsInfo.
func (s *BatchGetApplicationsResult) AddApplicationsInfo(v ...ApplicationInfo) *BatchGetApplicationsResult {
	if s.ApplicationsInfo == nil {
		s.ApplicationsInfo = make([]ApplicationInfo, 0, len(v))
	}
	s.ApplicationsInfo = append(s.ApplicationsInfo, v...)
	return s
}

func (s BatchGetApplicationsResult) String() string {
	return shape.Render(s)
}

func (s *BatchGetApplicationsResult) Equal(other *BatchGetApplicationsResult) bool {
	return shape.Equal(s, other)
}

func (s *BatchGetApplicationsResult) HashCode() int32 {
	return shape.Hash(s)
}

// CreateApplicationRequest is the input of the CreateApplication operation, which creates an
// application.
type CreateApplicationRequest struct {
	ApplicationName *string         `json:"applicationName,omitempty" yaml:"applicationName,omitempty" validate:"required,min=1,max=100"`
	ComputePlatform ComputePlatform `json:"computePlatform,omitempty" yaml:"computePlatform,omitempty" validate:"omitempty,enum"`
	Tags            []Tag           `json:"tags,omitempty" yaml:"tags,omitempty" validate:"omitempty,dive"`
}

// SetApplicationName sets the ApplicationName field's value.
func (s *CreateApplicationRequest) SetApplicationName(v string) *CreateApplicationRequest {
	s.ApplicationName = aws.String(v)
	return s
}

// SetComputePlatform sets the ComputePlatform field's value.
func (s *CreateApplicationRequest) SetComputePlatform(v ComputePlatform) *CreateApplicationRequest {
	s.ComputePlatform = v
	return s
}

// SetTags replaces Tags with a copy of v. A nil v clears the field.
func (s *CreateApplicationRequest) SetTags(v []Tag) *CreateApplicationRequest {
	s.Tags = shape.CloneSlice(v)
	return s
}

// AddTags appends v to Tags.
func (s *CreateApplicationRequest) AddTags(v ...Tag) *CreateApplicationRequest {
	if s.Tags == nil {
		s.Tags = make([]Tag, 0, len(v))
	}
	s.Tags = append(s.Tags, v...)
	return s
}

func (s CreateApplicationRequest) String() string {
	return shape.Render(s)
}

// Equal reports whether s and other hold the same field values.
func (s *CreateApplicationRequest) Equal(other *CreateApplicationRequest) bool {
	return shape.Equal(s, other)
}

func (s *CreateApplicationRequest) HashCode() int32 {
	return shape.Hash(s)
}

// Validate checks the documented service constraints locally.
func (s *CreateApplicationRequest) Validate() error {
	return validation.Struct(s)
}

// CreateApplicationResult is the output of the CreateApplication operation.
type CreateApplicationResult struct {
	ApplicationId *string `json:"applicationId,omitempty" yaml:"applicationId,omitempty"`
}

// SetApplicationId sets the ApplicationId field's value.
func (s *CreateApplicationResult) SetApplicationId(v string) *CreateApplicationResult {
	s.ApplicationId = aws.String(v)
	return s
}

func (s CreateApplicationResult) String() string {
	return shape.Render(s)
}

func (s *CreateApplicationResult) Equal(other *CreateApplicationResult) bool {
	return shape.Equal(s, other)
}

func (s *CreateApplicationResult) HashCode() int32 {
	return shape.Hash(s)
}

// DeleteApplicationRequest is the input of the DeleteApplication operation, which deletes an
// application.
type DeleteApplicationRequest struct {
	ApplicationName *string `json:"applicationName,omitempty" yaml:"applicationName,omitempty" validate:"required,min=1,max=100"`
}

// SetApplicationName sets the ApplicationName field's value.
func (s *DeleteApplicationRequest) SetApplicationName(v string) *DeleteApplicationRequest {
	s.ApplicationName = aws.String(v)
	return s
}

func (s DeleteApplicationRequest) String() string {
	return shape.Render(s)
}

// Equal reports whether s and other hold the same field values.
func (s *DeleteApplicationRequest) Equal(other *DeleteApplicationRequest) bool {
	return shape.Equal(s, other)
}

func (s *DeleteApplicationRequest) HashCode() int32 {
	return shape.Hash(s)
}

// Validate checks the documented service constraints locally.
func (s *DeleteApplicationRequest) Validate() error {
	return validation.Struct(s)
}

// DeleteApplicationResult is the output of the DeleteApplication operation.
type DeleteApplicationResult struct{}

func (s DeleteApplicationResult) String() string {
	return shape.Render(s)
}

func (s *DeleteApplicationResult) Equal(other *DeleteApplicationResult) bool {
	return shape.Equal(s, other)
}

func (s *DeleteApplicationResult) HashCode() int32 {
	return shape.Hash(s)
}

// GetApplicationRequest is the input of the GetApplication operation, which gets information
// about an application.
type GetApplicationRequest struct {
	ApplicationName *string `json:"applicationName,omitempty" yaml:"applicationName,omitempty" validate:"required,min=1,max=100"`
}

// SetApplicationName sets the ApplicationName field's value.
func (s *GetApplicationRequest) SetApplicationName(v string) *GetApplicationRequest {
	s.ApplicationName = aws.String(v)
	return s
}

func (s GetApplicationRequest) String() string {
	return shape.Render(s)
}

// Equal reports whether s and other hold the same field values.
func (s *GetApplicationRequest) Equal(other *GetApplicationRequest) bool {
	return shape.Equal(s, other)
}

func (s *GetApplicationRequest) HashCode() int32 {
	return shape.Hash(s)
}

// Validate checks the documented service constraints locally.
func (s *GetApplicationRequest) Validate() error {
	return validation.Struct(s)
}

// GetApplicationResult is the output of the GetApplication operation.
type GetApplicationResult struct {
	Application *ApplicationInfo `json:"application,omitempty" yaml:"application,omitempty"`
}

// SetApplication sets the Application field's value.
func (s *GetApplicationResult) SetApplication(v *ApplicationInfo) *GetApplicationResult {
	s.Application = v
	return s
}

func (s GetApplicationResult) String() string {
	return shape.Render(s)
}

func (s *GetApplicationResult) Equal(other *GetApplicationResult) bool {
	return shape.Equal(s, other)
}

func (s *GetApplicationResult) HashCode() int32 {
	return shape.Hash(s)
}

// ListApplicationsRequest is the input of the ListApplications operation, which lists the
// applications of the IAM user or AWS account.
type ListApplicationsRequest struct {
	NextToken *string `json:"nextToken,omitempty" yaml:"nextToken,omitempty"`
}

// SetNextToken sets the NextToken field's value.
func (s *ListApplicationsRequest) SetNextToken(v string) *ListApplicationsRequest {
	s.NextToken = aws.String(v)
	return s
}

func (s ListApplicationsRequest) String() string {
	return shape.Render(s)
}

// Equal reports whether s and other hold the same field values.
func (s *ListApplicationsRequest) Equal(other *ListApplicationsRequest) bool {
	return shape.Equal(s, other)
}

func (s *ListApplicationsRequest) HashCode() int32 {
	return shape.Hash(s)
}

// Validate checks the documented service constraints locally.
func (s *ListApplicationsRequest) Validate() error {
	return validation.Struct(s)
}

// ListApplicationsResult is the output of the ListApplications operation.
type ListApplicationsResult struct {
	Applications []string `json:"applications,omitempty" yaml:"applications,omitempty"`
	NextToken    *string  `json:"nextToken,omitempty" yaml:"nextToken,omitempty"`
}

// SetApplications replaces Applications with a copy of v. A nil v clears the field.
func (s *ListApplicationsResult) SetApplications(v []string) *ListApplicationsResult {
	s.Applications = shape.CloneSlice(v)
	return s
}

// AddApplications appends v to Applications.
func (s *ListApplicationsResult) AddApplications(v ...string) *ListApplicationsResult {
	if s.Applications == nil {
		s.Applications = make([]string, 0, len(v))
	}
	s.Applications = append(s.Applications, v...)
	return s
}

// SetNextToken sets the NextToken field's value.
func (s *ListApplicationsResult) SetNextToken(v string) *ListApplicationsResult {
	s.NextToken = aws.String(v)
	return s
}

func (s ListApplicationsResult) String() string {
	return shape.Render(s)
}

func (s *ListApplicationsResult) Equal(other *ListApplicationsResult) bool {
	return shape.Equal(s, other)
}

func (s *ListApplicationsResult) HashCode() int32 {
	return shape.Hash(s)
}

// UpdateApplicationRequest is the input of the UpdateApplication operation, which renames an
// application.
type UpdateApplicationRequest struct {
	ApplicationName    *string `json:"applicationName,omitempty" yaml:"applicationName,omitempty" validate:"omitempty,min=1,max=100"`
	NewApplicationName *string `json:"newApplicationName,omitempty" yaml:"newApplicationName,omitempty" validate:"omitempty,min=1,max=100"`
}

// SetApplicationName sets the ApplicationName field's value.
func (s *UpdateApplicationRequest) SetApplicationName(v string) *UpdateApplicationRequest {
	s.ApplicationName = aws.String(v)
	return s
}

// SetNewApplicationName sets the NewApplicationName field's value.
func (s *UpdateApplicationRequest) SetNewApplicationName(v string) *UpdateApplicationRequest {
	s.NewApplicationName = aws.String(v)
	return s
}

func (s UpdateApplicationRequest) String() string {
	return shape.Render(s)
}

// Equal reports whether s and other hold the same field values.
func (s *UpdateApplicationRequest) Equal(other *UpdateApplicationRequest) bool {
	return shape.Equal(s, other)
}

func (s *UpdateApplicationRequest) HashCode() int32 {
	return shape.Hash(s)
}

// Validate checks the documented service constraints locally.
func (s *UpdateApplicationRequest) Validate() error {
	return validation.Struct(s)
}

// UpdateApplicationResult is the output of the UpdateApplication operation.
type UpdateApplicationResult struct{}

func (s UpdateApplicationResult) String() string {
	return shape.Render(s)
}

func (s *UpdateApplicationResult) Equal(other *UpdateApplicationResult) bool {
	return shape.Equal(s, other)
}

func (s *UpdateApplicationResult) HashCode() int32 {
	return shape.Hash(s)
}

// ApplicationInfo describes an application.
type ApplicationInfo struct {
	ApplicationId   *string    `json:"applicationId,omitempty" yaml:"applicationId,omitempty"`
	ApplicationName *string    `json:"applicationName,omitempty" yaml:"applicationName,omitempty" validate:"omitempty,min=1,max=100"`
	CreateTime      *time.Time `json:"createTime,omitempty" yaml:"createTime,omitempty"`

	// True if the user has authenticated with GitHub for this application.
	LinkedToGitHub    *bool           `json:"linkedToGitHub,omitempty" yaml:"linkedToGitHub,omitempty"`
	GitHubAccountName *string         `json:"gitHubAccountName,omitempty" yaml:"gitHubAccountName,omitempty"`
	ComputePlatform   ComputePlatform `json:"computePlatform,omitempty" yaml:"computePlatform,omitempty" validate:"omitempty,enum"`
}

// SetApplicationId sets the ApplicationId field's value.
func (s *ApplicationInfo) SetApplicationId(v string) *ApplicationInfo {
	s.ApplicationId = aws.String(v)
	return s
}

// SetApplicationName sets the ApplicationName field's value.
func (s *ApplicationInfo) SetApplicationName(v string) *ApplicationInfo {
	s.ApplicationName = aws.String(v)
	return s
}

// SetCreateTime sets the CreateTime field's value.
func (s *ApplicationInfo) SetCreateTime(v time.Time) *ApplicationInfo {
	s.CreateTime = aws.Time(v)
	return s
}

// SetLinkedToGitHub sets the LinkedToGitHub field's value.
func (s *ApplicationInfo) SetLinkedToGitHub(v bool) *ApplicationInfo {
	s.LinkedToGitHub = aws.Bool(v)
	return s
}

// SetGitHubAccountName sets the GitHubAccountName field's value.
func (s *ApplicationInfo) SetGitHubAccountName(v string) *ApplicationInfo {
	s.GitHubAccountName = aws.String(v)
	return s
}

// SetComputePlatform sets the ComputePlatform field's value.
func (s *ApplicationInfo) SetComputePlatform(v ComputePlatform) *ApplicationInfo {
	s.ComputePlatform = v
	return s
}

func (s ApplicationInfo) String() string {
	return shape.Render(s)
}

func (s *ApplicationInfo) Equal(other *ApplicationInfo) bool {
	return shape.Equal(s, other)
}

func (s *ApplicationInfo) HashCode() int32 {
	return shape.Hash(s)
}
