// Package apierror represents failures reported by the CodeDeploy service.
//
// Every documented error code is a Kind, and a single Error type carries the kind, the
// service message and, when the transport supplied one, the request ID. Error implements
// smithy.APIError so it travels through the same paths as errors from the AWS SDK.
//
// Use errors.Is with a template error, or IsKind, to dispatch on the kind:
//
//	if apierror.IsKind(err, apierror.KindDeploymentAlreadyCompleted) {
//		// nothing left to stop
//	}
package apierror

import (
	"errors"
	"fmt"

	"github.com/aws/smithy-go"
)

// ErrUnknownKind is returned by ParseKind for a code that is not a CodeDeploy error.
var ErrUnknownKind = errors.New("unknown error kind")

// Kind is the error code reported by the service.
type Kind string

func (k Kind) String() string {
	return string(k)
}

// Known reports whether k is a documented error code.
func (k Kind) Known() bool {
	_, ok := kindIndex[k]
	return ok
}

var kindIndex = func() map[Kind]struct{} {
	m := make(map[Kind]struct{}, len(kinds))
	for _, k := range kinds {
		m[k] = struct{}{}
	}
	return m
}()

// Kinds returns every documented kind, ordered by code.
func Kinds() []Kind {
	out := make([]Kind, len(kinds))
	copy(out, kinds)
	return out
}

// ParseKind returns the Kind for a service error code.
func ParseKind(code string) (Kind, error) {
	if code == "" {
		return "", fmt.Errorf("error code cannot be empty: %w", ErrUnknownKind)
	}
	k := Kind(code)
	if !k.Known() {
		return "", fmt.Errorf("%q: %w", code, ErrUnknownKind)
	}
	return k, nil
}

// Error is a failure reported by the service.
type Error struct {
	Kind      Kind
	Message   string
	RequestID string
}

var _ smithy.APIError = (*Error)(nil)

// New returns an Error of the given kind.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Newf returns an Error of the given kind with a formatted message.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	msg := string(e.Kind)
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.RequestID != "" {
		msg += " (request id: " + e.RequestID + ")"
	}
	return msg
}

// ErrorCode returns the service error code.
func (e *Error) ErrorCode() string {
	return string(e.Kind)
}

// ErrorMessage returns the service message.
func (e *Error) ErrorMessage() string {
	return e.Message
}

// ErrorFault reports every CodeDeploy error, throttling included, as a client fault.
func (e *Error) ErrorFault() smithy.ErrorFault {
	return smithy.FaultClient
}

// Is matches any *Error with the same kind, so a template such as
// &Error{Kind: KindInvalidRevision} can be used with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// IsKind reports whether err wraps an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind && kind != ""
}

// KindOf returns the kind of the first *Error in err's chain, or "" if there is none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// FromAPIError converts the first smithy.APIError in err's chain into an *Error. It returns
// false when err carries no API error or its code is not a CodeDeploy kind.
func FromAPIError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}

	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return nil, false
	}
	kind, perr := ParseKind(apiErr.ErrorCode())
	if perr != nil {
		return nil, false
	}

	out := &Error{Kind: kind, Message: apiErr.ErrorMessage()}
	var withID interface{ ServiceRequestID() string }
	if errors.As(err, &withID) {
		out.RequestID = withID.ServiceRequestID()
	}
	return out, true
}
