package apierror

import (
	"errors"
	"fmt"
	"sort"
	"testing"

	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorImplementsAPIError(t *testing.T) {
	err := New(KindDeploymentAlreadyCompleted, "deployment d-123 is already completed")

	var apiErr smithy.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "DeploymentAlreadyCompletedException", apiErr.ErrorCode())
	assert.Equal(t, "deployment d-123 is already completed", apiErr.ErrorMessage())
	assert.Equal(t, smithy.FaultClient, apiErr.ErrorFault())
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "kind only",
			err:  &Error{Kind: KindThrottling},
			want: "ThrottlingException",
		},
		{
			name: "with message",
			err:  New(KindInvalidRole, "role cannot be assumed"),
			want: "InvalidRoleException: role cannot be assumed",
		},
		{
			name: "with request id",
			err:  &Error{Kind: KindInvalidRole, Message: "bad", RequestID: "req-1"},
			want: "InvalidRoleException: bad (request id: req-1)",
		},
		{
			name: "formatted",
			err:  Newf(KindInstanceLimitExceeded, "limit of %d reached", 50),
			want: "InstanceLimitExceededException: limit of 50 reached",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestThrottlingIsClientFault(t *testing.T) {
	assert.Equal(t, smithy.FaultClient, New(KindThrottling, "slow down").ErrorFault())
}

func TestKindDispatch(t *testing.T) {
	err := fmt.Errorf("failed to stop deployment: %w", New(KindDeploymentAlreadyCompleted, "done"))

	assert.True(t, errors.Is(err, &Error{Kind: KindDeploymentAlreadyCompleted}))
	assert.False(t, errors.Is(err, &Error{Kind: KindDeploymentDoesNotExist}))
	assert.True(t, IsKind(err, KindDeploymentAlreadyCompleted))
	assert.False(t, IsKind(err, KindInvalidDeploymentId))
	assert.Equal(t, KindDeploymentAlreadyCompleted, KindOf(err))

	assert.Equal(t, Kind(""), KindOf(errors.New("plain")))
	assert.False(t, IsKind(errors.New("plain"), ""))
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("InvalidTagException")
	require.NoError(t, err)
	assert.Equal(t, KindInvalidTag, k)

	_, err = ParseKind("")
	assert.ErrorIs(t, err, ErrUnknownKind)

	_, err = ParseKind("NoSuchThingException")
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestKinds(t *testing.T) {
	all := Kinds()
	assert.Len(t, all, 109)
	assert.True(t, sort.SliceIsSorted(all, func(i, j int) bool { return all[i] < all[j] }))

	for _, k := range all {
		assert.True(t, k.Known(), k)
		parsed, err := ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, parsed)
	}

	all[0] = "mutated"
	assert.Equal(t, KindAlarmsLimitExceeded, Kinds()[0])
}

type responseError struct {
	err       error
	requestID string
}

func (e *responseError) Error() string            { return "response error: " + e.err.Error() }
func (e *responseError) Unwrap() error            { return e.err }
func (e *responseError) ServiceRequestID() string { return e.requestID }

func TestFromAPIError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		want   *Error
		wantOK bool
	}{
		{
			name:   "generic api error with known code",
			err:    &smithy.GenericAPIError{Code: "ApplicationDoesNotExistException", Message: "no such app"},
			want:   &Error{Kind: KindApplicationDoesNotExist, Message: "no such app"},
			wantOK: true,
		},
		{
			name: "wrapped with request id",
			err: &responseError{
				err:       &smithy.GenericAPIError{Code: "ThrottlingException", Message: "rate exceeded"},
				requestID: "abc-123",
			},
			want:   &Error{Kind: KindThrottling, Message: "rate exceeded", RequestID: "abc-123"},
			wantOK: true,
		},
		{
			name:   "already converted",
			err:    fmt.Errorf("wrapped: %w", New(KindInvalidInput, "x")),
			want:   &Error{Kind: KindInvalidInput, Message: "x"},
			wantOK: true,
		},
		{
			name: "unknown code",
			err:  &smithy.GenericAPIError{Code: "AccessDeniedException", Message: "denied"},
		},
		{
			name: "not an api error",
			err:  errors.New("connection reset"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FromAPIError(tt.err)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
