// Package shape derives equality, hashing and diagnostic rendering for model types from
// their declared fields, so each type does not have to spell them out.
//
// Fields are visited in declaration order. A nil pointer, nil slice, nil map or empty
// typed string counts as absent. Member names in renderings come from the json tag.
package shape

import (
	"fmt"
	"maps"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode/utf16"
)

const prime = 31

var timeType = reflect.TypeOf(time.Time{})

// CloneSlice returns a fresh copy of v, or nil when v is nil. An empty non-nil slice stays
// non-nil.
func CloneSlice[T any](v []T) []T {
	if v == nil {
		return nil
	}
	out := make([]T, len(v))
	copy(out, v)
	return out
}

// CloneMap returns a shallow copy of m, or nil when m is nil.
func CloneMap[K comparable, V any](m map[K]V) map[K]V {
	return maps.Clone(m)
}

// Equal reports whether a and b hold equal values. Pointers compare by pointee, nil and
// empty slices differ, timestamps compare by instant and floats compare by bit pattern.
func Equal(a, b any) bool {
	return equalValue(reflect.ValueOf(a), reflect.ValueOf(b))
}

func equalValue(a, b reflect.Value) bool {
	if !a.IsValid() || !b.IsValid() {
		return a.IsValid() == b.IsValid()
	}
	if a.Type() != b.Type() {
		return false
	}

	switch a.Kind() {
	case reflect.Pointer, reflect.Interface:
		if a.IsNil() || b.IsNil() {
			return a.IsNil() == b.IsNil()
		}
		return equalValue(a.Elem(), b.Elem())
	case reflect.Struct:
		if a.Type() == timeType {
			return a.Interface().(time.Time).Equal(b.Interface().(time.Time))
		}
		for i := 0; i < a.NumField(); i++ {
			if !a.Type().Field(i).IsExported() {
				continue
			}
			if !equalValue(a.Field(i), b.Field(i)) {
				return false
			}
		}
		return true
	case reflect.Slice:
		if a.IsNil() || b.IsNil() {
			return a.IsNil() == b.IsNil()
		}
		if a.Len() != b.Len() {
			return false
		}
		for i := 0; i < a.Len(); i++ {
			if !equalValue(a.Index(i), b.Index(i)) {
				return false
			}
		}
		return true
	case reflect.Map:
		if a.IsNil() || b.IsNil() {
			return a.IsNil() == b.IsNil()
		}
		if a.Len() != b.Len() {
			return false
		}
		iter := a.MapRange()
		for iter.Next() {
			bv := b.MapIndex(iter.Key())
			if !bv.IsValid() || !equalValue(iter.Value(), bv) {
				return false
			}
		}
		return true
	case reflect.Float32:
		return math.Float32bits(float32(a.Float())) == math.Float32bits(float32(b.Float()))
	case reflect.Float64:
		// bitwise, so NaN equals itself and 0 differs from -0 as in Hash
		return math.Float64bits(a.Float()) == math.Float64bits(b.Float())
	default:
		return a.Interface() == b.Interface()
	}
}

// Hash folds v into a 32-bit hash consistent with Equal. Struct fields and slice elements
// are folded with the multiplier 31 from a seed of 1; absent values contribute 0. Strings
// hash over their UTF-16 code units so the result matches what other CodeDeploy SDKs
// compute for the same wire values.
func Hash(v any) int32 {
	return hashValue(reflect.ValueOf(v))
}

func hashValue(v reflect.Value) int32 {
	if !v.IsValid() {
		return 0
	}

	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			return 0
		}
		return hashValue(v.Elem())
	case reflect.Struct:
		if v.Type() == timeType {
			return hashInt64(v.Interface().(time.Time).UnixMilli())
		}
		h := int32(1)
		for i := 0; i < v.NumField(); i++ {
			if !v.Type().Field(i).IsExported() {
				continue
			}
			h = prime*h + hashValue(v.Field(i))
		}
		return h
	case reflect.Slice:
		if v.IsNil() {
			return 0
		}
		h := int32(1)
		for i := 0; i < v.Len(); i++ {
			h = prime*h + hashValue(v.Index(i))
		}
		return h
	case reflect.Map:
		if v.IsNil() {
			return 0
		}
		var h int32
		iter := v.MapRange()
		for iter.Next() {
			h += hashValue(iter.Key()) ^ hashValue(iter.Value())
		}
		return h
	case reflect.String:
		return hashString(v.String())
	case reflect.Bool:
		if v.Bool() {
			return 1231
		}
		return 1237
	case reflect.Int8, reflect.Int16, reflect.Int32:
		return int32(v.Int())
	case reflect.Int, reflect.Int64:
		return hashInt64(v.Int())
	case reflect.Float32:
		return int32(math.Float32bits(float32(v.Float())))
	case reflect.Float64:
		bits := math.Float64bits(v.Float())
		return int32(bits ^ (bits >> 32))
	default:
		panic(fmt.Sprintf("shape: cannot hash %s", v.Type()))
	}
}

func hashString(s string) int32 {
	var h int32
	for _, u := range utf16.Encode([]rune(s)) {
		h = prime*h + int32(u)
	}
	return h
}

func hashInt64(n int64) int32 {
	return int32(n ^ int64(uint64(n)>>32))
}

// Render returns the diagnostic form of v: present struct members as "name: value"
// separated by spaces inside braces, slices inside brackets. An empty struct renders "{}".
func Render(v any) string {
	var b strings.Builder
	writeValue(&b, reflect.ValueOf(v))
	return b.String()
}

func writeValue(b *strings.Builder, v reflect.Value) {
	if !v.IsValid() {
		b.WriteString("<nil>")
		return
	}

	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			b.WriteString("<nil>")
			return
		}
		writeValue(b, v.Elem())
	case reflect.Struct:
		if v.Type() == timeType {
			b.WriteString(v.Interface().(time.Time).UTC().Format(time.RFC3339Nano))
			return
		}
		writeStruct(b, v)
	case reflect.Slice:
		b.WriteByte('[')
		for i := 0; i < v.Len(); i++ {
			if i > 0 {
				b.WriteByte(' ')
			}
			writeValue(b, v.Index(i))
		}
		b.WriteByte(']')
	case reflect.Map:
		keys := v.MapKeys()
		sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
		b.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				b.WriteByte(' ')
			}
			writeValue(b, k)
			b.WriteString(": ")
			writeValue(b, v.MapIndex(k))
		}
		b.WriteByte('}')
	case reflect.String:
		// enum values print as their wire string, plain strings are quoted
		if v.Type().Name() == "string" {
			b.WriteString(strconv.Quote(v.String()))
		} else {
			b.WriteString(v.String())
		}
	default:
		fmt.Fprint(b, v.Interface())
	}
}

func writeStruct(b *strings.Builder, v reflect.Value) {
	t := v.Type()
	b.WriteByte('{')
	first := true
	for i := 0; i < v.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() || absent(v.Field(i)) {
			continue
		}
		if !first {
			b.WriteByte(' ')
		}
		first = false
		b.WriteString(memberName(field))
		b.WriteString(": ")
		writeValue(b, v.Field(i))
	}
	b.WriteByte('}')
}

func absent(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map:
		return v.IsNil()
	case reflect.String:
		return v.Len() == 0
	default:
		return false
	}
}

func memberName(field reflect.StructField) string {
	if tag, ok := field.Tag.Lookup("json"); ok {
		name, _, _ := strings.Cut(tag, ",")
		if name != "" && name != "-" {
			return name
		}
	}
	return field.Name
}
