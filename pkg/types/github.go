package types

import (
	"github.com/aws/aws-sdk-go-v2/aws"

	"github.com/jvreagan/codedeploy-model/internal/shape"
	"github.com/jvreagan/codedeploy-model/pkg/validation"
)

// DeleteGitHubAccountTokenRequest is the input of the DeleteGitHubAccountToken operation,
// which deletes a GitHub account connection.
type DeleteGitHubAccountTokenRequest struct {
	TokenName *string `json:"tokenName,omitempty" yaml:"tokenName,omitempty"`
}

// SetTokenName sets the TokenName field's value.
func (s *DeleteGitHubAccountTokenRequest) SetTokenName(v string) *DeleteGitHubAccountTokenRequest {
	s.TokenName = aws.String(v)
	return s
}

func (s DeleteGitHubAccountTokenRequest) String() string {
	return shape.Render(s)
}

// Equal reports whether s and other hold the same field values.
func (s *DeleteGitHubAccountTokenRequest) Equal(other *DeleteGitHubAccountTokenRequest) bool {
	return shape.Equal(s, other)
}

func (s *DeleteGitHubAccountTokenRequest) HashCode() int32 {
	return shape.Hash(s)
}

// Validate checks the documented service constraints locally.
func (s *DeleteGitHubAccountTokenRequest) Validate() error {
	return validation.Struct(s)
}

// DeleteGitHubAccountTokenResult is the output of the DeleteGitHubAccountToken operation.
type DeleteGitHubAccountTokenResult struct {
	TokenName *string `json:"tokenName,omitempty" yaml:"tokenName,omitempty"`
}

// SetTokenName sets the TokenName field's value.
func (s *DeleteGitHubAccountTokenResult) SetTokenName(v string) *DeleteGitHubAccountTokenResult {
	s.TokenName = aws.String(v)
	return s
}

func (s DeleteGitHubAccountTokenResult) String() string {
	return shape.Render(s)
}

func (s *DeleteGitHubAccountTokenResult) Equal(other *DeleteGitHubAccountTokenResult) bool {
	return shape.Equal(s, other)
}

func (s *DeleteGitHubAccountTokenResult) HashCode() int32 {
	return shape.Hash(s)
}

// DeleteResourcesByExternalIdRequest is the input of the DeleteResourcesByExternalId
// operation, which deletes resources linked to an external ID.
type DeleteResourcesByExternalIdRequest struct {
	ExternalId *string `json:"externalId,omitempty" yaml:"externalId,omitempty"`
}

// SetExternalId sets the ExternalId field's value.
func (s *DeleteResourcesByExternalIdRequest) SetExternalId(v string) *DeleteResourcesByExternalIdRequest {
	s.ExternalId = aws.String(v)
	return s
}

func (s DeleteResourcesByExternalIdRequest) String() string {
	return shape.Render(s)
}

// Equal reports whether s and other hold the same field values.
func (s *DeleteResourcesByExternalIdRequest) Equal(other *DeleteResourcesByExternalIdRequest) bool {
	return shape.Equal(s, other)
}

func (s *DeleteResourcesByExternalIdRequest) HashCode() int32 {
	return shape.Hash(s)
}

// Validate checks the documented service constraints locally.
func (s *DeleteResourcesByExternalIdRequest) Validate() error {
	return validation.Struct(s)
}

// DeleteResourcesByExternalIdResult is the output of the DeleteResourcesByExternalId
// operation.
type DeleteResourcesByExternalIdResult struct{}

func (s DeleteResourcesByExternalIdResult) String() string {
	return shape.Render(s)
}

func (s *DeleteResourcesByExternalIdResult) Equal(other *DeleteResourcesByExternalIdResult) bool {
	return shape.Equal(s, other)
}

func (s *DeleteResourcesByExternalIdResult) HashCode() int32 {
	return shape.Hash(s)
}

// ListGitHubAccountTokenNamesRequest is the input of the ListGitHubAccountTokenNames
// operation, which lists the names of stored GitHub account connections.
type ListGitHubAccountTokenNamesRequest struct {
	NextToken *string `json:"nextToken,omitempty" yaml:"nextToken,omitempty"`
}

// SetNextToken sets the NextToken field's value.
func (s *ListGitHubAccountTokenNamesRequest) SetNextToken(v string) *ListGitHubAccountTokenNamesRequest {
	s.NextToken = aws.String(v)
	return s
}

func (s ListGitHubAccountTokenNamesRequest) String() string {
	return shape.Render(s)
}

// Equal reports whether s and other hold the same field values.
func (s *ListGitHubAccountTokenNamesRequest) Equal(other *ListGitHubAccountTokenNamesRequest) bool {
	return shape.Equal(s, other)
}

func (s *ListGitHubAccountTokenNamesRequest) HashCode() int32 {
	return shape.Hash(s)
}

// Validate checks the documented service constraints locally.
func (s *ListGitHubAccountTokenNamesRequest) Validate() error {
	return validation.Struct(s)
}

// ListGitHubAccountTokenNamesResult is the output of the ListGitHubAccountTokenNames
// operation.
type ListGitHubAccountTokenNamesResult struct {
	TokenNameList []string `json:"tokenNameList,omitempty" yaml:"tokenNameList,omitempty"`
	NextToken     *string  `json:"nextToken,omitempty" yaml:"nextToken,omitempty"`
}

// SetTokenNameList replaces TokenNameList with a copy of v. A nil v clears the field.
func (s *ListGitHubAccountTokenNamesResult) SetTokenNameList(v []string) *ListGitHubAccountTokenNamesResult {
	s.TokenNameList = shape.CloneSlice(v)
	return s
}

// AddTokenNameList appends v to TokenNameList.
func (s *ListGitHubAccountTokenNamesResult) AddTokenNameList(v ...string) *ListGitHubAccountTokenNamesResult {
	if s.TokenNameList == nil {
		s.TokenNameList = make([]string, 0, len(v))
	}
	s.TokenNameList = append(s.TokenNameList, v...)
	return s
}

// SetNextToken sets the NextToken field's value.
func (s *ListGitHubAccountTokenNamesResult) SetNextToken(v string) *ListGitHubAccountTokenNamesResult {
	s.NextToken = aws.String(v)
	return s
}

func (s ListGitHubAccountTokenNamesResult) String() string {
	return shape.Render(s)
}

func (s *ListGitHubAccountTokenNamesResult) Equal(other *ListGitHubAccountTokenNamesResult) bool {
	return shape.Equal(s, other)
}

func (s *ListGitHubAccountTokenNamesResult) HashCode() int32 {
	return shape.Hash(s)
}
