package types

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrInvalidArgument is the root of every local argument error raised by this package.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrEmptyEnumValue is returned when an enum lookup is given an empty string.
	ErrEmptyEnumValue = fmt.Errorf("%w: value cannot be empty", ErrInvalidArgument)

	// ErrUnknownEnumValue is returned when an enum lookup matches no declared value.
	ErrUnknownEnumValue = fmt.Errorf("%w: unknown enum value", ErrInvalidArgument)

	// ErrUnknownEnum is returned by the by-name helpers for an undeclared enum.
	ErrUnknownEnum = fmt.Errorf("%w: unknown enum", ErrInvalidArgument)
)

// enumSet is the static table behind one enum: declaration order plus a wire-string index.
type enumSet[T ~string] struct {
	name   string
	values []T
	index  map[string]T
}

func newEnumSet[T ~string](name string, values ...T) enumSet[T] {
	index := make(map[string]T, len(values))
	for _, v := range values {
		index[string(v)] = v
	}
	return enumSet[T]{name: name, values: values, index: index}
}

func (e enumSet[T]) parse(s string) (T, error) {
	var zero T
	if s == "" {
		return zero, fmt.Errorf("%s: %w", e.name, ErrEmptyEnumValue)
	}
	v, ok := e.index[s]
	if !ok {
		return zero, fmt.Errorf("%s %q: %w", e.name, s, ErrUnknownEnumValue)
	}
	return v, nil
}

func (e enumSet[T]) known(v T) bool {
	_, ok := e.index[string(v)]
	return ok
}

func (e enumSet[T]) list() []T {
	out := make([]T, len(e.values))
	copy(out, e.values)
	return out
}

// enumTable is the untyped view of an enumSet used by the by-name helpers.
type enumTable interface {
	strings() []string
	parseString(s string) (string, error)
}

func (e enumSet[T]) strings() []string {
	out := make([]string, len(e.values))
	for i, v := range e.values {
		out[i] = string(v)
	}
	return out
}

func (e enumSet[T]) parseString(s string) (string, error) {
	v, err := e.parse(s)
	return string(v), err
}

// EnumNames returns the name of every enum in this package, sorted.
func EnumNames() []string {
	names := make([]string, 0, len(enumRegistry))
	for name := range enumRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// EnumValues returns the wire strings of the named enum in declaration order.
func EnumValues(name string) ([]string, error) {
	table, ok := enumRegistry[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownEnum)
	}
	return table.strings(), nil
}

// ParseEnum validates value against the named enum and returns its wire string.
func ParseEnum(name, value string) (string, error) {
	table, ok := enumRegistry[name]
	if !ok {
		return "", fmt.Errorf("%q: %w", name, ErrUnknownEnum)
	}
	return table.parseString(value)
}
