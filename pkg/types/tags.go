package types

import (
	"github.com/aws/aws-sdk-go-v2/aws"

	"github.com/jvreagan/codedeploy-model/internal/shape"
	"github.com/jvreagan/codedeploy-model/pkg/validation"
)

// ListTagsForResourceRequest is the input of the ListTagsForResource operation, which lists
// the tags of a resource.
type ListTagsForResourceRequest struct {
	ResourceArn *string `json:"ResourceArn,omitempty" yaml:"ResourceArn,omitempty" validate:"required,min=1,max=1011"`
	NextToken   *string `json:"NextToken,omitempty" yaml:"NextToken,omitempty"`
}

// SetResourceArn sets the ResourceArn field's value.
func (s *ListTagsForResourceRequest) SetResourceArn(v string) *ListTagsForResourceRequest {
	s.ResourceArn = aws.String(v)
	return s
}

// SetNextToken sets the NextToken field's value.
func (s *ListTagsForResourceRequest) SetNextToken(v string) *ListTagsForResourceRequest {
	s.NextToken = aws.String(v)
	return s
}

func (s ListTagsForResourceRequest) String() string {
	return shape.Render(s)
}

// Equal reports whether s and other hold the same field values.
func (s *ListTagsForResourceRequest) Equal(other *ListTagsForResourceRequest) bool {
	return shape.Equal(s, other)
}

func (s *ListTagsForResourceRequest) HashCode() int32 {
	return shape.Hash(s)
}

// Validate checks the documented service constraints locally.
func (s *ListTagsForResourceRequest) Validate() error {
	return validation.Struct(s)
}

// ListTagsForResourceResult is the output of the ListTagsForResource operation.
type ListTagsForResourceResult struct {
	Tags      []Tag   `json:"Tags,omitempty" yaml:"Tags,omitempty" validate:"omitempty,dive"`
	NextToken *string `json:"NextToken,omitempty" yaml:"NextToken,omitempty"`
}

// SetTags replaces Tags with a copy of v. A nil v clears the field.
func (s *ListTagsForResourceResult) SetTags(v []Tag) *ListTagsForResourceResult {
	s.Tags = shape.CloneSlice(v)
	return s
}

// AddTags appends v to Tags.
func (s *ListTagsForResourceResult) AddTags(v ...Tag) *ListTagsForResourceResult {
	if s.Tags == nil {
		s.Tags = make([]Tag, 0, len(v))
	}
	s.Tags = append(s.Tags, v...)
	return s
}

// SetNextToken sets the NextToken field's value.
func (s *ListTagsForResourceResult) SetNextToken(v string) *ListTagsForResourceResult {
	s.NextToken = aws.String(v)
	return s
}

func (s ListTagsForResourceResult) String() string {
	return shape.Render(s)
}

func (s *ListTagsForResourceResult) Equal(other *ListTagsForResourceResult) bool {
	return shape.Equal(s, other)
}

func (s *ListTagsForResourceResult) HashCode() int32 {
	return shape.Hash(s)
}

// TagResourceRequest is the input of the TagResource operation, which attaches tags to a
// resource.
type TagResourceRequest struct {
	ResourceArn *string `json:"ResourceArn,omitempty" yaml:"ResourceArn,omitempty" validate:"required,min=1,max=1011"`
	Tags        []Tag   `json:"Tags,omitempty" yaml:"Tags,omitempty" validate:"required,dive"`
}

// SetResourceArn sets the ResourceArn field's value.
func (s *TagResourceRequest) SetResourceArn(v string) *TagResourceRequest {
	s.ResourceArn = aws.String(v)
	return s
}

// SetTags replaces Tags with a copy of v. A nil v clears the field.
func (s *TagResourceRequest) SetTags(v []Tag) *TagResourceRequest {
	s.Tags = shape.CloneSlice(v)
	return s
}

// AddTags appends v to Tags.
func (s *TagResourceRequest) AddTags(v ...Tag) *TagResourceRequest {
	if s.Tags == nil {
		s.Tags = make([]Tag, 0, len(v))
	}
	s.Tags = append(s.Tags, v...)
	return s
}

func (s TagResourceRequest) String() string {
	return shape.Render(s)
}

// Equal reports whether s and other hold the same field values.
func (s *TagResourceRequest) Equal(other *TagResourceRequest) bool {
	return shape.Equal(s, other)
}

func (s *TagResourceRequest) HashCode() int32 {
	return shape.Hash(s)
}

// Validate checks the documented service constraints locally.
func (s *TagResourceRequest) Validate() error {
	return validation.Struct(s)
}

// TagResourceResult is the output of the TagResource operation.
type TagResourceResult struct{}

func (s TagResourceResult) String() string {
	return shape.Render(s)
}

func (s *TagResourceResult) Equal(other *TagResourceResult) bool {
	return shape.Equal(s, other)
}

func (s *TagResourceResult) HashCode() int32 {
	return shape.Hash(s)
}

// UntagResourceRequest is the input of the UntagResource operation, which removes tags from a
// resource.
type UntagResourceRequest struct {
	ResourceArn *string  `json:"ResourceArn,omitempty" yaml:"ResourceArn,omitempty" validate:"required,min=1,max=1011"`
	TagKeys     []string `json:"TagKeys,omitempty" yaml:"TagKeys,omitempty" validate:"required"`
}

// SetResourceArn sets the ResourceArn field's value.
func (s *UntagResourceRequest) SetResourceArn(v string) *UntagResourceRequest {
	s.ResourceArn = aws.String(v)
	return s
}

// SetTagKeys replaces TagKeys with a copy of v. A nil v clears the field.
func (s *UntagResourceRequest) SetTagKeys(v []string) *UntagResourceRequest {
	s.TagKeys = shape.CloneSlice(v)
	return s
}

// AddTagKeys appends v to TagKeys.
func (s *UntagResourceRequest) AddTagKeys(v ...string) *UntagResourceRequest {
	if s.TagKeys == nil {
		s.TagKeys = make([]string, 0, len(v))
	}
	s.TagKeys = append(s.TagKeys, v...)
	return s
}

func (s UntagResourceRequest) String() string {
	return shape.Render(s)
}

// Equal reports whether s and other hold the same field values.
func (s *UntagResourceRequest) Equal(other *UntagResourceRequest) bool {
	return shape.Equal(s, other)
}

func (s *UntagResourceRequest) HashCode() int32 {
	return shape.Hash(s)
}

// Validate checks the documented service constraints locally.
func (s *UntagResourceRequest) Validate() error {
	return validation.Struct(s)
}

// UntagResourceResult is the output of the UntagResource operation.
type UntagResourceResult struct{}

func (s UntagResourceResult) String() string {
	return shape.Render(s)
}

func (s *UntagResourceResult) Equal(other *UntagResourceResult) bool {
	return shape.Equal(s, other)
}

func (s *UntagResourceResult) HashCode() int32 {
	return shape.Hash(s)
}

// Tag is a key/value pair attached to a resource.
type Tag struct {
	Key   *string `json:"Key,omitempty" yaml:"Key,omitempty"`
	Value *string `json:"Value,omitempty" yaml:"Value,omitempty"`
}

// SetKey sets the Key field's value.
func (s *Tag) SetKey(v string) *Tag {
	s.Key = aws.String(v)
	return s
}

// SetValue sets the Value field's value.
func (s *Tag) SetValue(v string) *Tag {
	s.Value = aws.String(v)
	return s
}

func (s Tag) String() string {
	return shape.Render(s)
}

func (s *Tag) Equal(other *Tag) bool {
	return shape.Equal(s, other)
}

func (s *Tag) HashCode() int32 {
	return shape.Hash(s)
}

// TagFilter selects on-premises instances by tag.
type TagFilter struct {
	Key   *string       `json:"Key,omitempty" yaml:"Key,omitempty"`
	Value *string       `json:"Value,omitempty" yaml:"Value,omitempty"`
	Type  TagFilterType `json:"Type,omitempty" yaml:"Type,omitempty" validate:"omitempty,enum"`
}

// SetKey sets the Key field's value.
func (s *TagFilter) SetKey(v string) *TagFilter {
	s.Key = aws.String(v)
	return s
}

// SetValue sets the Value field's value.
func (s *TagFilter) SetValue(v string) *TagFilter {
	s.Value = aws.String(v)
	return s
}

// SetType sets the Type field's value.
func (s *TagFilter) SetType(v TagFilterType) *TagFilter {
	s.Type = v
	return s
}

func (s TagFilter) String() string {
	return shape.Render(s)
}

func (s *TagFilter) Equal(other *TagFilter) bool {
	return shape.Equal(s, other)
}

func (s *TagFilter) HashCode() int32 {
	return shape.Hash(s)
}

// EC2TagFilter selects Amazon EC2 instances by tag.
type EC2TagFilter struct {
	Key   *string          `json:"Key,omitempty" yaml:"Key,omitempty"`
	Value *string          `json:"Value,omitempty" yaml:"Value,omitempty"`
	Type  EC2TagFilterType `json:"Type,omitempty" yaml:"Type,omitempty" validate:"omitempty,enum"`
}

// SetKey sets the Key field's value.
func (s *EC2TagFilter) SetKey(v string) *EC2TagFilter {
	s.Key = aws.String(v)
	return s
}

// SetValue sets the Value field's value.
func (s *EC2TagFilter) SetValue(v string) *EC2TagFilter {
	s.Value = aws.String(v)
	return s
}

// SetType sets the Type field's value.
func (s *EC2TagFilter) SetType(v EC2TagFilterType) *EC2TagFilter {
	s.Type = v
	return s
}

func (s EC2TagFilter) String() string {
	return shape.Render(s)
}

func (s *EC2TagFilter) Equal(other *EC2TagFilter) bool {
	return shape.Equal(s, other)
}

func (s *EC2TagFilter) HashCode() int32 {
	return shape.Hash(s)
}

// EC2TagSet is a list of EC2 tag filter groups. An instance must match at least one filter of
// every group.
type EC2TagSet struct {
	Ec2TagSetList [][]EC2TagFilter `json:"ec2TagSetList,omitempty" yaml:"ec2TagSetList,omitempty" validate:"omitempty,dive,dive"`
}

// SetEc2TagSetList replaces Ec2TagSetList with a copy of v. A nil v clears the field.
func (s *EC2TagSet) SetEc2TagSetList(v [][]EC2TagFilter) *EC2TagSet {
	s.Ec2TagSetList = shape.CloneSlice(v)
	return s
}

// AddEc2TagSetList appends v to Ec2TagSetList.
func (s *EC2TagSet) AddEc2TagSetList(v ...[]EC2TagFilter) *EC2TagSet {
	if s.Ec2TagSetList == nil {
		s.Ec2TagSetList = make([][]EC2TagFilter, 0, len(v))
	}
	s.Ec2TagSetList = append(s.Ec2TagSetList, v...)
	return s
}

func (s EC2TagSet) String() string {
	return shape.Render(s)
}

func (s *EC2TagSet) Equal(other *EC2TagSet) bool {
	return shape.Equal(s, other)
}

func (s *EC2TagSet) HashCode() int32 {
	return shape.Hash(s)
}

// OnPremisesTagSet is the on-premises counterpart of EC2TagSet.
type OnPremisesTagSet struct {
	OnPremisesTagSetList [][]TagFilter `json:"onPremisesTagSetList,omitempty" yaml:"onPremisesTagSetList,omitempty" validate:"omitempty,dive,dive"`
}

// SetOnPremisesTagSetList replaces OnPremisesTagSetList with a copy of v. A nil v clears the field.
func (s *OnPremisesTagSet) SetOnPremisesTagSetList(v [][]TagFilter) *OnPremisesTagSet {
	s.OnPremisesTagSetList = shape.CloneSlice(v)
	return s
}

// AddOnPremisesTagSetList appends v to OnPremisesTagSetList.
func (s *OnPremisesTagSet) AddOnPremisesTagSetList(v ...[]TagFilter) *OnPremisesTagSet {
	if s.OnPremisesTagSetList == nil {
		s.OnPremisesTagSetList = make([][]TagFilter, 0, len(v))
	}
	s.OnPremisesTagSetList = append(s.OnPremisesTagSetList, v...)
	return s
}

func (s OnPremisesTagSet) String() string {
	return shape.Render(s)
}

func (s *OnPremisesTagSet) Equal(other *OnPremisesTagSet) bool {
	return shape.Equal(s, other)
}

func (s *OnPremisesTagSet) HashCode() int32 {
	return shape.Hash(s)
}
