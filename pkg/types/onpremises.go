package types

import (
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"

	"github.com/jvreagan/codedeploy-model/internal/shape"
	"github.com/jvreagan/codedeploy-model/pkg/validation"
)

// AddTagsToOnPremisesInstancesRequest is the input of the AddTagsToOnPremisesInstances
// operation, which adds tags to on-premises instances.
type AddTagsToOnPremisesInstancesRequest struct {
	Tags          []Tag    `json:"tags,omitempty" yaml:"tags,omitempty" validate:"required,dive"`
	InstanceNames []string `json:"instanceNames,omitempty" yaml:"instanceNames,omitempty" validate:"required"`
}

// SetTags replaces Tags with a copy of v. A nil v clears the field.
func (s *AddTagsToOnPremisesInstancesRequest) SetTags(v []Tag) *AddTagsToOnPremisesInstancesRequest {
	s.Tags = shape.CloneSlice(v)
	return s
}

// AddTags appends v to Tags.
func (s *AddTagsToOnPremisesInstancesRequest) AddTags(v ...Tag) *AddTagsToOnPremisesInstancesRequest {
	if s.Tags == nil {
		s.Tags = make([]Tag, 0, len(v))
	}
	s.Tags = append(s.Tags, v...)
	return s
}

// SetInstanceNames replaces InstanceNames with a copy of v. A nil v clears the field.
func (s *AddTagsToOnPremisesInstancesRequest) SetInstanceNames(v []string) *AddTagsToOnPremisesInstancesRequest {
	s.InstanceNames = shape.CloneSlice(v)
	return s
}

// AddInstanceNames appends v to InstanceNames.
func (s *AddTagsToOnPremisesInstancesRequest) AddInstanceNames(v ...string) *AddTagsToOnPremisesInstancesRequest {
	if s.InstanceNames == nil {
		s.InstanceNames = make([]string, 0, len(v))
	}
	s.InstanceNames = append(s.InstanceNames, v...)
	return s
}

func (s AddTagsToOnPremisesInstancesRequest) String() string {
	return shape.Render(s)
}

// Equal reports whether s and other hold the same field values.
func (s *AddTagsToOnPremisesInstancesRequest) Equal(other *AddTagsToOnPremisesInstancesRequest) bool {
	return shape.Equal(s, other)
}

func (s *AddTagsToOnPremisesInstancesRequest) HashCode() int32 {
	return shape.Hash(s)
}

// Validate checks the documented service constraints locally.
func (s *AddTagsToOnPremisesInstancesRequest) Validate() error {
	return validation.Struct(s)
}

// AddTagsToOnPremisesInstancesResult is the output of the AddTagsToOnPremisesInstances
// operation.
type AddTagsToOnPremisesInstancesResult struct{}

func (s AddTagsToOnPremisesInstancesResult) String() string {
	return shape.Render(s)
}

func (s *AddTagsToOnPremisesInstancesResult) Equal(other *AddTagsToOnPremisesInstancesResult) bool {
	return shape.Equal(s, other)
}

func (s *AddTagsToOnPremisesInstancesResult) HashCode() int32 {
	return shape.Hash(s)
}

// BatchGetOnPremisesInstancesRequest is the input of the BatchGetOnPremisesInstances
// operation, which gets information about one or more on-premises instances.
type BatchGetOnPremisesInstancesRequest struct {
	InstanceNames []string `json:"instanceNames,omitempty" yaml:"instanceNames,omitempty" validate:"required"`
}

// SetInstanceNames replaces InstanceNames with a copy of v. A nil v clears the field.
func (s *BatchGetOnPremisesInstancesRequest) SetInstanceNames(v []string) *BatchGetOnPremisesInstancesRequest {
	s.InstanceNames = shape.CloneSlice(v)
	return s
}

// AddInstanceNames appends v to InstanceNames.
func (s *BatchGetOnPremisesInstancesRequest) AddInstanceNames(v ...string) *BatchGetOnPremisesInstancesRequest {
	if s.InstanceNames == nil {
		s.InstanceNames = make([]string, 0, len(v))
	}
	s.InstanceNames = append(s.InstanceNames, v...)
	return s
}

func (s BatchGetOnPremisesInstancesRequest) String() string {
	return shape.Render(s)
}

// Equal reports whether s and other hold the same field values.
func (s *BatchGetOnPremisesInstancesRequest) Equal(other *BatchGetOnPremisesInstancesRequest) bool {
	return shape.Equal(s, other)
}

func (s *BatchGetOnPremisesInstancesRequest) HashCode() int32 {
	return shape.Hash(s)
}

// Validate checks the documented service constraints locally.
func (s *BatchGetOnPremisesInstancesRequest) Validate() error {
	return validation.Struct(s)
}

// BatchGetOnPremisesInstancesResult is the output of the BatchGetOnPremisesInstances
// operation.
type BatchGetOnPremisesInstancesResult struct {
	InstanceInfos []InstanceInfo `json:"instanceInfos,omitempty" yaml:"instanceInfos,omitempty" validate:"omitempty,dive"`
}

// SetInstanceInfos replaces InstanceInfos with a copy of v. A nil v clears the field.
func (s *BatchGetOnPremisesInstancesResult) SetInstanceInfos(v []InstanceInfo) *BatchGetOnPremisesInstancesResult {
	s.InstanceInfos = shape.CloneSlice(v)
	return s
}

// AddInstanceInfos appends v to InstanceInfos.
func (s *BatchGetOnPremisesInstancesResult) AddInstanceInfos(v ...InstanceInfo) *BatchGetOnPremisesInstancesResult {
	if s.InstanceInfos == nil {
		s.InstanceInfos = make([]InstanceInfo, 0, len(v))
	}
	s.InstanceInfos = append(s.InstanceInfos, v...)
	return s
}

func (s BatchGetOnPremisesInstancesResult) String() string {
	return shape.Render(s)
}

func (s *BatchGetOnPremisesInstancesResult) Equal(other *BatchGetOnPremisesInstancesResult) bool {
	return shape.Equal(s, other)
}

func (s *BatchGetOnPremisesInstancesResult) HashCode() int32 {
	return shape.Hash(s)
}

// DeregisterOnPremisesInstanceRequest is the input of the DeregisterOnPremisesInstance
// operation, which deregisters an on-premises instance.
type DeregisterOnPremisesInstanceRequest struct {
	InstanceName *string `json:"instanceName,omitempty" yaml:"instanceName,omitempty" validate:"required"`
}

// SetInstanceName sets the InstanceName field's value.
func (s *DeregisterOnPremisesInstanceRequest) SetInstanceName(v string) *DeregisterOnPremisesInstanceRequest {
	s.InstanceName = aws.String(v)
	return s
}

func (s DeregisterOnPremisesInstanceRequest) String() string {
	return shape.Render(s)
}

// Equal reports whether s and other hold the same field values.
func (s *DeregisterOnPremisesInstanceRequest) Equal(other *DeregisterOnPremisesInstanceRequest) bool {
	return shape.Equal(s, other)
}

func (s *DeregisterOnPremisesInstanceRequest) HashCode() int32 {
	return shape.Hash(s)
}

// Validate checks the documented service constraints locally.
func (s *DeregisterOnPremisesInstanceRequest) Validate() error {
	return validation.Struct(s)
}

// DeregisterOnPremisesInstanceResult is the output of the DeregisterOnPremisesInstance
// operation.
type DeregisterOnPremisesInstanceResult struct{}

func (s DeregisterOnPremisesInstanceResult) String() string {
	return shape.Render(s)
}

func (s *DeregisterOnPremisesInstanceResult) Equal(other *DeregisterOnPremisesInstanceResult) bool {
	return shape.Equal(s, other)
}

func (s *DeregisterOnPremisesInstanceResult) HashCode() int32 {
	return shape.Hash(s)
}

// GetOnPremisesInstanceRequest is the input of the GetOnPremisesInstance operation, which gets
// information about an on-premises instance.
type GetOnPremisesInstanceRequest struct {
	InstanceName *string `json:"instanceName,omitempty" yaml:"instanceName,omitempty" validate:"required"`
}

// SetInstanceName sets the InstanceName field's value.
func (s *GetOnPremisesInstanceRequest) SetInstanceName(v string) *GetOnPremisesInstanceRequest {
	s.InstanceName = aws.String(v)
	return s
}

func (s GetOnPremisesInstanceRequest) String() string {
	return shape.Render(s)
}

// Equal reports whether s and other hold the same field values.
func (s *GetOnPremisesInstanceRequest) Equal(other *GetOnPremisesInstanceRequest) bool {
	return shape.Equal(s, other)
}

func (s *GetOnPremisesInstanceRequest) HashCode() int32 {
	return shape.Hash(s)
}

// Validate checks the documented service constraints locally.
func (s *GetOnPremisesInstanceRequest) Validate() error {
	return validation.Struct(s)
}

// GetOnPremisesInstanceResult is the output of the GetOnPremisesInstance operation.
type GetOnPremisesInstanceResult struct {
	InstanceInfo *InstanceInfo `json:"instanceInfo,omitempty" yaml:"instanceInfo,omitempty"`
}

// SetInstanceInfo sets the InstanceInfo field's value.
func (s *GetOnPremisesInstanceResult) SetInstanceInfo(v *InstanceInfo) *GetOnPremisesInstanceResult {
	s.InstanceInfo = v
	return s
}

func (s GetOnPremisesInstanceResult) String() string {
	return shape.Render(s)
}

func (s *GetOnPremisesInstanceResult) Equal(other *GetOnPremisesInstanceResult) bool {
	return shape.Equal(s, other)
}

func (s *GetOnPremisesInstanceResult) HashCode() int32 {
	return shape.Hash(s)
}

// ListOnPremisesInstancesRequest is the input of the ListOnPremisesInstances operation, which
// lists on-premises instances.
type ListOnPremisesInstancesRequest struct {
	RegistrationStatus RegistrationStatus `json:"registrationStatus,omitempty" yaml:"registrationStatus,omitempty" validate:"omitempty,enum"`
	TagFilters         []TagFilter        `json:"tagFilters,omitempty" yaml:"tagFilters,omitempty" validate:"omitempty,dive"`
	NextToken          *string            `json:"nextToken,omitempty" yaml:"nextToken,omitempty"`
}

// SetRegistrationStatus sets the RegistrationStatus field's value.
func (s *ListOnPremisesInstancesRequest) SetRegistrationStatus(v RegistrationStatus) *ListOnPremisesInstancesRequest {
	s.RegistrationStatus = v
	return s
}

// SetTagFilters replaces TagFilters with a copy of v. A nil v clears the field.
func (s *ListOnPremisesInstancesRequest) SetTagFilters(v []TagFilter) *ListOnPremisesInstancesRequest {
	s.TagFilters = shape.CloneSlice(v)
	return s
}

// AddTagFilters appends v to TagFilters.
func (s *ListOnPremisesInstancesRequest) AddTagFilters(v ...TagFilter) *ListOnPremisesInstancesRequest {
	if s.TagFilters == nil {
		s.TagFilters = make([]TagFilter, 0, len(v))
	}
	s.TagFilters = append(s.TagFilters, v...)
	return s
}

// SetNextToken sets the NextToken field's value.
func (s *ListOnPremisesInstancesRequest) SetNextToken(v string) *ListOnPremisesInstancesRequest {
	s.NextToken = aws.String(v)
	return s
}

func (s ListOnPremisesInstancesRequest) String() string {
	return shape.Render(s)
}

// Equal reports whether s and other hold the same field values.
func (s *ListOnPremisesInstancesRequest) Equal(other *ListOnPremisesInstancesRequest) bool {
	return shape.Equal(s, other)
}

func (s *ListOnPremisesInstancesRequest) HashCode() int32 {
	return shape.Hash(s)
}

// Validate checks the documented service constraints locally.
func (s *ListOnPremisesInstancesRequest) Validate() error {
	return validation.Struct(s)
}

// ListOnPremisesInstancesResult is the output of the ListOnPremisesInstances operation.
type ListOnPremisesInstancesResult struct {
	InstanceNames []string `json:"instanceNames,omitempty" yaml:"instanceNames,omitempty"`
	NextToken     *string  `json:"nextToken,omitempty" yaml:"nextToken,omitempty"`
}

// SetInstanceNames replaces InstanceNames with a copy of v. A nil v clears the field.
func (s *ListOnPremisesInstancesResult) SetInstanceNames(v []string) *ListOnPremisesInstancesResult {
	s.InstanceNames = shape.CloneSlice(v)
	return s
}

// AddInstanceNames appends v to InstanceNames.
func (s *ListOnPremisesInstancesResult) AddInstanceNames(v ...string) *ListOnPremisesInstancesResult {
	if s.InstanceNames == nil {
		s.InstanceNames = make([]string, 0, len(v))
	}
	s.InstanceNames = append(s.InstanceNames, v...)
	return s
}

// SetNextToken sets the NextToken field's value.
func (s *ListOnPremisesInstancesResult) SetNextToken(v string) *ListOnPremisesInstancesResult {
	s.NextToken = aws.String(v)
	return s
}

func (s ListOnPremisesInstancesResult) String() string {
	return shape.Render(s)
}

func (s *ListOnPremisesInstancesResult) Equal(other *ListOnPremisesInstancesResult) bool {
	return shape.Equal(s, other)
}

func (s *ListOnPremisesInstancesResult) HashCode() int32 {
	return shape.Hash(s)
}

// RegisterOnPremisesInstanceRequest is the input of the RegisterOnPremisesInstance operation,
// which registers an on-premises instance.
type RegisterOnPremisesInstanceRequest struct {
	InstanceName  *string `json:"instanceName,omitempty" yaml:"instanceName,omitempty" validate:"required"`
	IamSessionArn *string `json:"iamSessionArn,omitempty" yaml:"iamSessionArn,omitempty"`
	IamUserArn    *string `json:"iamUserArn,omitempty" yaml:"iamUserArn,omitempty"`
}

// SetInstanceName sets the InstanceName field's value.
func (s *RegisterOnPremisesInstanceRequest) SetInstanceName(v string) *RegisterOnPremisesInstanceRequest {
	s.InstanceName = aws.String(v)
	return s
}

// SetIamSessionArn sets the IamSessionArn field's value.
func (s *RegisterOnPremisesInstanceRequest) SetIamSessionArn(v string) *RegisterOnPremisesInstanceRequest {
	s.IamSessionArn = aws.String(v)
	return s
}

// SetIamUserArn sets the IamUserArn field's value.
func (s *RegisterOnPremisesInstanceRequest) SetIamUserArn(v string) *RegisterOnPremisesInstanceRequest {
	s.IamUserArn = aws.String(v)
	return s
}

func (s RegisterOnPremisesInstanceRequest) String() string {
	return shape.Render(s)
}

// Equal reports whether s and other hold the same field values.
func (s *RegisterOnPremisesInstanceRequest) Equal(other *RegisterOnPremisesInstanceRequest) bool {
	return shape.Equal(s, other)
}

func (s *RegisterOnPremisesInstanceRequest) HashCode() int32 {
	return shape.Hash(s)
}

// Validate checks the documented service constraints locally.
func (s *RegisterOnPremisesInstanceRequest) Validate() error {
	return validation.Struct(s)
}

// RegisterOnPremisesInstanceResult is the output of the RegisterOnPremisesInstance operation.
type RegisterOnPremisesInstanceResult struct{}

func (s RegisterOnPremisesInstanceResult) String() string {
	return shape.Render(s)
}

func (s *RegisterOnPremisesInstanceResult) Equal(other *RegisterOnPremisesInstanceResult) bool {
	return shape.Equal(s, other)
}

func (s *RegisterOnPremisesInstanceResult) HashCode() int32 {
	return shape.Hash(s)
}

// RemoveTagsFromOnPremisesInstancesRequest is the input of the
// RemoveTagsFromOnPremisesInstances operation, which removes tags from on-premises instances.
type RemoveTagsFromOnPremisesInstancesRequest struct {
	Tags          []Tag    `json:"tags,omitempty" yaml:"tags,omitempty" validate:"required,dive"`
	InstanceNames []string `json:"instanceNames,omitempty" yaml:"instanceNames,omitempty" validate:"required"`
}

// SetTags replaces Tags with a copy of v. A nil v clears the field.
func (s *RemoveTagsFromOnPremisesInstancesRequest) SetTags(v []Tag) *RemoveTagsFromOnPremisesInstancesRequest {
	s.Tags = shape.CloneSlice(v)
	return s
}

// AddTags appends v to Tags.
func (s *RemoveTagsFromOnPremisesInstancesRequest) AddTags(v ...Tag) *RemoveTagsFromOnPremisesInstancesRequest {
	if s.Tags == nil {
		s.Tags = make([]Tag, 0, len(v))
	}
	s.Tags = append(s.Tags, v...)
	return s
}

// SetInstanceNames replaces InstanceNames with a copy of v. A nil v clears the field.
func (s *RemoveTagsFromOnPremisesInstancesRequest) SetInstanceNames(v []string) *RemoveTagsFromOnPremisesInstancesRequest {
	s.InstanceNames = shape.CloneSlice(v)
	return s
}

// AddInstanceNames appends v to InstanceNames.
func (s *RemoveTagsFromOnPremisesInstancesRequest) AddInstanceNames(v ...string) *RemoveTagsFromOnPremisesInstancesRequest {
	if s.InstanceNames == nil {
		s.InstanceNames = make([]string, 0, len(v))
	}
	s.InstanceNames = append(s.InstanceNames, v...)
	return s
}

func (s RemoveTagsFromOnPremisesInstancesRequest) String() string {
	return shape.Render(s)
}

// Equal reports whether s and other hold the same field values.
func (s *RemoveTagsFromOnPremisesInstancesRequest) Equal(other *RemoveTagsFromOnPremisesInstancesRequest) bool {
	return shape.Equal(s, other)
}

func (s *RemoveTagsFromOnPremisesInstancesRequest) HashCode() int32 {
	return shape.Hash(s)
}

// Validate checks the documented service constraints locally.
func (s *RemoveTagsFromOnPremisesInstancesRequest) Validate() error {
	return validation.Struct(s)
}

// RemoveTagsFromOnPremisesInstancesResult is the output of the
// RemoveTagsFromOnPremisesInstances operation.
type RemoveTagsFromOnPremisesInstancesResult struct{}

func (s RemoveTagsFromOnPremisesInstancesResult) String() string {
	return shape.Render(s)
}

func (s *RemoveTagsFromOnPremisesInstancesResult) Equal(other *RemoveTagsFromOnPremisesInstancesResult) bool {
	return shape.Equal(s, other)
}

func (s *RemoveTagsFromOnPremisesInstancesResult) HashCode() int32 {
	return shape.Hash(s)
}

// InstanceInfo describes a registered on-premises instance.
type InstanceInfo struct {
	InstanceName  *string    `json:"instanceName,omitempty" yaml:"instanceName,omitempty"`
	IamSessionArn *string    `json:"iamSessionArn,omitempty" yaml:"iamSessionArn,omitempty"`
	IamUserArn    *string    `json:"iamUserArn,omitempty" yaml:"iamUserArn,omitempty"`
	InstanceArn   *string    `json:"instanceArn,omitempty" yaml:"instanceArn,omitempty"`
	RegisterTime  *time.Time `json:"registerTime,omitempty" yaml:"registerTime,omitempty"`

	// Unset while the instance is still registered.
	DeregisterTime *time.Time `json:"deregisterTime,omitempty" yaml:"deregisterTime,omitempty"`
	Tags           []Tag      `json:"tags,omitempty" yaml:"tags,omitempty" validate:"omitempty,dive"`
}

// SetInstanceName sets the InstanceName field's value.
func (s *InstanceInfo) SetInstanceName(v string) *InstanceInfo {
	s.InstanceName = aws.String(v)
	return s
}

// SetIamSessionArn sets the IamSessionArn field's value.
func (s *InstanceInfo) SetIamSessionArn(v string) *InstanceInfo {
	s.IamSessionArn = aws.String(v)
	return s
}

// SetIamUserArn sets the IamUserArn field's value.
func (s *InstanceInfo) SetIamUserArn(v string) *InstanceInfo {
	s.IamUserArn = aws.String(v)
	return s
}

// SetInstanceArn sets the InstanceArn field's value.
func (s *InstanceInfo) SetInstanceArn(v string) *InstanceInfo {
	s.InstanceArn = aws.String(v)
	return s
}

// SetRegisterTime sets the RegisterTime field's value.
func (s *InstanceInfo) SetRegisterTime(v time.Time) *InstanceInfo {
	s.RegisterTime = aws.Time(v)
	return s
}

// SetDeregisterTime sets the DeregisterTime field's value.
func (s *InstanceInfo) SetDeregisterTime(v time.Time) *InstanceInfo {
	s.DeregisterTime = aws.Time(v)
	return s
}

// SetTags replaces Tags with a copy of v. A nil v clears the field.
func (s *InstanceInfo) SetTags(v []Tag) *InstanceInfo {
	s.Tags = shape.CloneSlice(v)
	return s
}

// AddTags appends v to Tags.
func (s *InstanceInfo) AddTags(v ...Tag) *InstanceInfo {
	if s.Tags == nil {
		s.Tags = make([]Tag, 0, len(v))
	}
	s.Tags = append(s.Tags, v...)
	return s
}

func (s InstanceInfo) String() string {
	return shape.Render(s)
}

func (s *InstanceInfo) Equal(other *InstanceInfo) bool {
	return shape.Equal(s, other)
}

func (s *InstanceInfo) HashCode() int32 {
	return shape.Hash(s)
}
