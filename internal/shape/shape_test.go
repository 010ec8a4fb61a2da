package shape

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type status string

type inner struct {
	Bucket *string `json:"bucket,omitempty"`
}

type sample struct {
	Name     *string           `json:"name,omitempty"`
	Status   status            `json:"status,omitempty"`
	Count    *int32            `json:"count,omitempty"`
	Enabled  *bool             `json:"enabled,omitempty"`
	Ids      []string          `json:"ids,omitempty"`
	Statuses []status          `json:"statuses,omitempty"`
	Inner    *inner            `json:"inner,omitempty"`
	Created  *time.Time        `json:"created,omitempty"`
	Labels   map[string]string `json:"labels,omitempty"`
	noWire   string
}

func ptr[T any](v T) *T { return &v }

func TestCloneSlice(t *testing.T) {
	assert.Nil(t, CloneSlice[string](nil))

	empty := CloneSlice([]string{})
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	src := []string{"a", "b"}
	out := CloneSlice(src)
	src[0] = "changed"
	assert.Equal(t, []string{"a", "b"}, out)
}

func TestCloneMap(t *testing.T) {
	assert.Nil(t, CloneMap[string, string](nil))

	src := map[string]string{"k": "v"}
	out := CloneMap(src)
	src["k"] = "changed"
	assert.Equal(t, map[string]string{"k": "v"}, out)
}

func TestEqual(t *testing.T) {
	ts := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		a, b *sample
		want bool
	}{
		{name: "both nil", want: true},
		{name: "one nil", a: &sample{}, want: false},
		{name: "both empty", a: &sample{}, b: &sample{}, want: true},
		{
			name: "same values in different storage",
			a:    &sample{Name: ptr("app"), Count: ptr(int32(3)), Ids: []string{"x"}},
			b:    &sample{Name: ptr("app"), Count: ptr(int32(3)), Ids: []string{"x"}},
			want: true,
		},
		{
			name: "nil and empty slice differ",
			a:    &sample{Ids: nil},
			b:    &sample{Ids: []string{}},
			want: false,
		},
		{
			name: "exactly one pointer set",
			a:    &sample{Enabled: ptr(false)},
			b:    &sample{},
			want: false,
		},
		{
			name: "nested values compared",
			a:    &sample{Inner: &inner{Bucket: ptr("b1")}},
			b:    &sample{Inner: &inner{Bucket: ptr("b2")}},
			want: false,
		},
		{
			name: "same instant in different zones",
			a:    &sample{Created: ptr(ts)},
			b:    &sample{Created: ptr(ts.In(time.FixedZone("X", 3600)))},
			want: true,
		},
		{
			name: "maps by content",
			a:    &sample{Labels: map[string]string{"a": "1", "b": "2"}},
			b:    &sample{Labels: map[string]string{"b": "2", "a": "1"}},
			want: true,
		},
		{
			name: "unexported fields ignored",
			a:    &sample{noWire: "x"},
			b:    &sample{noWire: "y"},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Equal(tt.a, tt.b))
			assert.Equal(t, tt.want, Equal(tt.b, tt.a))
			if tt.want {
				assert.Equal(t, Hash(tt.a), Hash(tt.b))
			}
		})
	}
}

func TestEqualFloats(t *testing.T) {
	type weighted struct {
		Weight *float64 `json:"weight,omitempty"`
	}
	negZero := math.Copysign(0, -1)
	nan := math.NaN()

	tests := []struct {
		name string
		a, b weighted
		want bool
	}{
		{name: "same value", a: weighted{ptr(0.25)}, b: weighted{ptr(0.25)}, want: true},
		{name: "zero and negative zero", a: weighted{ptr(0.0)}, b: weighted{ptr(negZero)}, want: false},
		{name: "NaN equals NaN", a: weighted{ptr(nan)}, b: weighted{ptr(nan)}, want: true},
		{name: "NaN and zero", a: weighted{ptr(nan)}, b: weighted{ptr(0.0)}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Equal(tt.a, tt.b))
			assert.True(t, Equal(tt.a, tt.a))
			if tt.want {
				assert.Equal(t, Hash(tt.a), Hash(tt.b))
			} else {
				assert.NotEqual(t, Hash(tt.a), Hash(tt.b))
			}
		})
	}

	assert.False(t, Equal(float32(0), float32(negZero)))
	assert.True(t, Equal(float32(nan), float32(nan)))
}

func TestHash(t *testing.T) {
	tests := []struct {
		name string
		v    any
		want int32
	}{
		{name: "nil pointer", v: (*string)(nil), want: 0},
		{name: "string", v: "hello", want: 99162322},
		{name: "empty string", v: "", want: 0},
		{name: "non-BMP string hashes code units", v: "\U0001F600", want: 1772899},
		{name: "true", v: true, want: 1231},
		{name: "false", v: false, want: 1237},
		{name: "int32", v: int32(-7), want: -7},
		{name: "int64 folds words", v: int64(1) << 32, want: 1},
		{name: "empty struct", v: struct{}{}, want: 1},
		{name: "single field", v: inner{Bucket: ptr("a")}, want: 31 + 97},
		{name: "absent field", v: inner{}, want: 31},
		{name: "nil slice", v: []string(nil), want: 0},
		{name: "empty slice", v: []string{}, want: 1},
		{name: "slice", v: []string{"a", "b"}, want: 31*(31+97) + 98},
		{name: "map", v: map[string]string{"a": "b"}, want: 97 ^ 98},
		{name: "time uses milliseconds", v: time.UnixMilli(5), want: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Hash(tt.v))
		})
	}
}

func TestRender(t *testing.T) {
	ts := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		v    any
		want string
	}{
		{name: "empty", v: sample{}, want: "{}"},
		{name: "pointer to empty", v: &sample{}, want: "{}"},
		{
			name: "scalars",
			v:    sample{Name: ptr("app"), Count: ptr(int32(2)), Enabled: ptr(true)},
			want: `{name: "app" count: 2 enabled: true}`,
		},
		{
			name: "enum printed bare",
			v:    sample{Status: "InProgress"},
			want: "{status: InProgress}",
		},
		{
			name: "lists",
			v:    sample{Ids: []string{"a", "b"}, Statuses: []status{"Failed"}},
			want: `{ids: ["a" "b"] statuses: [Failed]}`,
		},
		{
			name: "empty list kept",
			v:    sample{Ids: []string{}},
			want: "{ids: []}",
		},
		{
			name: "nested and time",
			v:    sample{Inner: &inner{Bucket: ptr("b")}, Created: &ts},
			want: `{inner: {bucket: "b"} created: 2024-05-01T12:00:00Z}`,
		},
		{
			name: "map keys sorted",
			v:    sample{Labels: map[string]string{"z": "1", "a": "2"}},
			want: `{labels: {"a": "2" "z": "1"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Render(tt.v))
		})
	}
}
