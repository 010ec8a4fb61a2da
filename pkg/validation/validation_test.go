package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type color string

func (c color) Known() bool {
	return c == "RED" || c == "BLUE"
}

type location struct {
	Bucket *string `json:"bucket,omitempty" validate:"required,min=1,max=100"`
}

type request struct {
	Name     *string   `json:"name,omitempty" validate:"required,min=1,max=100"`
	Color    color     `json:"color,omitempty" validate:"omitempty,enum"`
	Colors   []color   `json:"colors,omitempty" validate:"omitempty,dive,enum"`
	Location *location `json:"location,omitempty"`
	Limit    *int32    `json:"limit,omitempty" validate:"omitempty,min=0,max=100"`
}

func str(s string) *string { return &s }

func TestStruct(t *testing.T) {
	tests := []struct {
		name  string
		input *request
		want  []Violation
	}{
		{
			name:  "valid",
			input: &request{Name: str("app"), Color: "RED", Colors: []color{"BLUE"}},
		},
		{
			name:  "missing required member",
			input: &request{},
			want:  []Violation{{Field: "name", Rule: "required"}},
		},
		{
			name:  "name too long",
			input: &request{Name: str(string(make([]byte, 101)))},
			want:  []Violation{{Field: "name", Rule: "max", Param: "100"}},
		},
		{
			name:  "unknown enum value",
			input: &request{Name: str("app"), Color: "GREEN"},
			want:  []Violation{{Field: "color", Rule: "enum"}},
		},
		{
			name:  "unknown enum in list",
			input: &request{Name: str("app"), Colors: []color{"RED", "PINK"}},
			want:  []Violation{{Field: "colors[1]", Rule: "enum"}},
		},
		{
			name:  "nested member",
			input: &request{Name: str("app"), Location: &location{}},
			want:  []Violation{{Field: "location.bucket", Rule: "required"}},
		},
		{
			name:  "limit out of range",
			input: &request{Name: str("app"), Limit: func() *int32 { v := int32(101); return &v }()},
			want:  []Violation{{Field: "limit", Rule: "max", Param: "100"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(tt.input)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}

			var verr *Error
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.want, verr.Violations)
		})
	}
}

func TestErrorMessage(t *testing.T) {
	err := &Error{Violations: []Violation{
		{Field: "applicationName", Rule: "required"},
		{Field: "deploymentGroupName", Rule: "max", Param: "100"},
	}}

	assert.Equal(t, "validation failed: applicationName is required; deploymentGroupName must be at most 100", err.Error())
	assert.Equal(t, []string{"applicationName", "deploymentGroupName"}, err.Fields())
}

func TestStructRejectsNonStruct(t *testing.T) {
	err := Struct("not a struct")
	require.Error(t, err)

	var verr *Error
	assert.False(t, errors.As(err, &verr))
}
