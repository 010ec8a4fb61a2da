package types

import (
	"fmt"
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var timeType = reflect.TypeOf(time.Time{})

// modelTypes returns every struct type reachable from the operation registry.
func modelTypes() []reflect.Type {
	seen := make(map[reflect.Type]bool)
	var out []reflect.Type

	var walk func(t reflect.Type)
	walk = func(t reflect.Type) {
		for t.Kind() == reflect.Pointer || t.Kind() == reflect.Slice || t.Kind() == reflect.Map {
			t = t.Elem()
		}
		if t.Kind() != reflect.Struct || t == timeType || seen[t] {
			return
		}
		seen[t] = true
		out = append(out, t)
		for i := 0; i < t.NumField(); i++ {
			walk(t.Field(i).Type)
		}
	}

	for _, op := range Operations() {
		walk(reflect.TypeOf(op.NewRequest()))
		walk(reflect.TypeOf(op.NewResult()))
	}
	return out
}

// fill sets every member reachable from v to a value derived from seed.
func fill(v reflect.Value, seed int) {
	switch v.Kind() {
	case reflect.Pointer:
		v.Set(reflect.New(v.Type().Elem()))
		fill(v.Elem(), seed)
	case reflect.Struct:
		if v.Type() == timeType {
			v.Set(reflect.ValueOf(time.UnixMilli(int64(seed) * 1000)))
			return
		}
		for i := 0; i < v.NumField(); i++ {
			fill(v.Field(i), seed)
		}
	case reflect.Slice:
		s := reflect.MakeSlice(v.Type(), 1, 1)
		fill(s.Index(0), seed)
		v.Set(s)
	case reflect.Map:
		m := reflect.MakeMap(v.Type())
		k := reflect.New(v.Type().Key()).Elem()
		e := reflect.New(v.Type().Elem()).Elem()
		fill(k, seed)
		fill(e, seed)
		m.SetMapIndex(k, e)
		v.Set(m)
	case reflect.String:
		v.SetString(fmt.Sprintf("value-%d", seed))
	case reflect.Bool:
		v.SetBool(seed%2 == 1)
	case reflect.Int32, reflect.Int64:
		v.SetInt(int64(seed))
	case reflect.Float64:
		v.SetFloat(float64(seed) + 0.5)
	default:
		panic("fill: unsupported kind " + v.Kind().String())
	}
}

func filled(t reflect.Type, seed int) reflect.Value {
	p := reflect.New(t)
	fill(p.Elem(), seed)
	return p
}

func callEqual(a, b reflect.Value) bool {
	return a.MethodByName("Equal").Call([]reflect.Value{b})[0].Bool()
}

func callHash(a reflect.Value) int32 {
	return int32(a.MethodByName("HashCode").Call(nil)[0].Int())
}

func TestModelEqualityAndHash(t *testing.T) {
	all := modelTypes()
	require.NotEmpty(t, all)

	for _, typ := range all {
		t.Run(typ.Name(), func(t *testing.T) {
			a := filled(typ, 1)
			b := filled(typ, 1)
			require.True(t, callEqual(a, b))
			require.Equal(t, callHash(a), callHash(b))

			fresh := reflect.New(typ)
			assert.True(t, callEqual(fresh, reflect.New(typ)))

			for i := 0; i < typ.NumField(); i++ {
				c := filled(typ, 1)
				fill(c.Elem().Field(i), 2)
				assert.False(t, callEqual(a, c), "changing %s kept equality", typ.Field(i).Name)
				assert.False(t, callEqual(c, a), "changing %s kept equality", typ.Field(i).Name)

				d := filled(typ, 1)
				d.Elem().Field(i).Set(reflect.Zero(typ.Field(i).Type))
				assert.False(t, callEqual(a, d), "clearing %s kept equality", typ.Field(i).Name)
			}
		})
	}
}

func TestGetDeploymentResultEmpty(t *testing.T) {
	r := &GetDeploymentResult{}

	assert.Equal(t, "{}", r.String())
	assert.True(t, r.Equal(&GetDeploymentResult{}))
	assert.Equal(t, (&GetDeploymentResult{}).HashCode(), r.HashCode())

	var nilResult *GetDeploymentResult
	assert.False(t, r.Equal(nilResult))
}

func TestString(t *testing.T) {
	tests := []struct {
		name string
		v    fmt.Stringer
		want string
	}{
		{
			name: "request",
			v:    (&GetDeploymentGroupRequest{}).SetApplicationName("app").SetDeploymentGroupName("dg"),
			want: `{applicationName: "app" deploymentGroupName: "dg"}`,
		},
		{
			name: "enums and lists",
			v: (&ListDeploymentsRequest{}).
				SetApplicationName("app").
				AddIncludeOnlyStatuses(DeploymentStatusFailed, DeploymentStatusStopped),
			want: `{applicationName: "app" includeOnlyStatuses: [Failed Stopped]}`,
		},
		{
			name: "nested",
			v: (&RevisionLocation{}).
				SetRevisionType(RevisionLocationTypeS3).
				SetS3Location((&S3Location{}).SetBucket("b").SetKey("k").SetBundleType(BundleTypeZip)),
			want: `{revisionType: S3 s3Location: {bucket: "b" key: "k" bundleType: zip}}`,
		},
		{
			name: "void result",
			v:    &DeleteApplicationResult{},
			want: "{}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.v.String())
			assert.Equal(t, tt.want, fmt.Sprint(tt.v))
		})
	}
}

func TestSliceSetterCopies(t *testing.T) {
	ids := []string{"d-1", "d-2"}
	req := (&BatchGetDeploymentsRequest{}).SetDeploymentIds(ids)

	ids[0] = "mutated"
	assert.Equal(t, []string{"d-1", "d-2"}, req.DeploymentIds)

	req.SetDeploymentIds(nil)
	assert.Nil(t, req.DeploymentIds)

	req.SetDeploymentIds([]string{})
	assert.NotNil(t, req.DeploymentIds)
	assert.Empty(t, req.DeploymentIds)
}

func TestAddAppends(t *testing.T) {
	req := &BatchGetDeploymentsRequest{}
	req.AddDeploymentIds()
	assert.NotNil(t, req.DeploymentIds)
	assert.Empty(t, req.DeploymentIds)

	req.AddDeploymentIds("d-1").AddDeploymentIds("d-2", "d-3")
	assert.Equal(t, []string{"d-1", "d-2", "d-3"}, req.DeploymentIds)

	// variadic and bulk shapes reach the same state
	bulk := (&BatchGetDeploymentsRequest{}).SetDeploymentIds([]string{"d-1", "d-2", "d-3"})
	assert.True(t, req.Equal(bulk))
}

func TestMapSetterCopies(t *testing.T) {
	filters := map[TargetFilterName][]string{
		TargetFilterNameTargetStatus: {"Failed"},
	}
	req := (&ListDeploymentTargetsRequest{}).SetTargetFilters(filters)

	filters[TargetFilterNameServerInstanceLabel] = []string{"Blue"}
	assert.Len(t, req.TargetFilters, 1)
	assert.Equal(t, `{targetFilters: {TargetStatus: ["Failed"]}}`, req.String())

	req.SetTargetFilters(nil)
	assert.Nil(t, req.TargetFilters)
}

func TestFluentSettersReturnReceiver(t *testing.T) {
	req := &CreateDeploymentRequest{}

	assert.Same(t, req, req.SetApplicationName("app"))
	assert.Same(t, req, req.SetFileExistsBehavior(FileExistsBehaviorOverwrite))
	assert.Same(t, req, req.SetIgnoreApplicationStopFailures(true))
	assert.Same(t, req, req.SetRevision(&RevisionLocation{}))

	direct := &CreateDeploymentRequest{
		ApplicationName:               aws.String("app"),
		FileExistsBehavior:            FileExistsBehaviorOverwrite,
		IgnoreApplicationStopFailures: aws.Bool(true),
		Revision:                      &RevisionLocation{},
	}
	assert.True(t, req.Equal(direct))
	assert.Equal(t, direct.HashCode(), req.HashCode())
}

func TestHashMatchesFieldFold(t *testing.T) {
	req := (&GetApplicationRequest{}).SetApplicationName("a")
	assert.Equal(t, int32(31+97), req.HashCode())
	assert.Equal(t, int32(31), (&GetApplicationRequest{}).HashCode())
}

func TestFloatMembersMatchHash(t *testing.T) {
	zero := (&LambdaFunctionInfo{}).SetTargetVersionWeight(0)
	negZero := (&LambdaFunctionInfo{}).SetTargetVersionWeight(math.Copysign(0, -1))
	assert.False(t, zero.Equal(negZero))

	nan := (&LambdaFunctionInfo{}).SetTargetVersionWeight(math.NaN())
	assert.True(t, nan.Equal(nan))
	assert.True(t, nan.Equal((&LambdaFunctionInfo{}).SetTargetVersionWeight(math.NaN())))
	assert.Equal(t, nan.HashCode(), (&LambdaFunctionInfo{}).SetTargetVersionWeight(math.NaN()).HashCode())
}

func TestTimestampMembers(t *testing.T) {
	ts := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	a := (&TimeRange{}).SetStart(ts)
	b := (&TimeRange{}).SetStart(ts.In(time.FixedZone("UTC+2", 7200)))

	assert.True(t, a.Equal(b))
	assert.Equal(t, a.HashCode(), b.HashCode())
	assert.Equal(t, "{start: 2024-01-02T03:04:05Z}", a.String())
}
