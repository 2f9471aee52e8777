package registry

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// FieldType is the declared type of component property.
type FieldType uint16

const (
	FieldTypeAny FieldType = iota
	FieldTypeBool
	FieldTypeInt
	FieldTypeFloat
	FieldTypeString
	FieldTypeVec3
	FieldTypeBytes
)

var fieldTypeNames = map[FieldType]string{
	FieldTypeAny:    "any",
	FieldTypeBool:   "bool",
	FieldTypeInt:    "int",
	FieldTypeFloat:  "float",
	FieldTypeString: "string",
	FieldTypeVec3:   "vec3",
	FieldTypeBytes:  "bytes",
}

// goTypes holds the exact Go type stored for each field type. Any has no entry.
var goTypes = map[FieldType]reflect.Type{
	FieldTypeBool:   reflect.TypeFor[bool](),
	FieldTypeInt:    reflect.TypeFor[int64](),
	FieldTypeFloat:  reflect.TypeFor[float64](),
	FieldTypeString: reflect.TypeFor[string](),
	FieldTypeVec3:   reflect.TypeFor[mgl64.Vec3](),
	FieldTypeBytes:  reflect.TypeFor[[]byte](),
}

// ParseFieldType maps a schema type name to a FieldType.
func ParseFieldType(name string) (FieldType, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return FieldTypeAny, nil
	}
	for t, n := range fieldTypeNames {
		if n == name {
			return t, nil
		}
	}
	return FieldTypeAny, fmt.Errorf("%w: unknown field type %q", ErrInvalidDescriptor, name)
}

func (t FieldType) String() string {
	if n, ok := fieldTypeNames[t]; ok {
		return n
	}
	return fmt.Sprintf("FieldType(%d)", uint16(t))
}

// GoType returns the Go type name used by generated typed views.
func (t FieldType) GoType() string {
	switch t {
	case FieldTypeVec3:
		return "mgl64.Vec3"
	case FieldTypeBytes:
		return "[]byte"
	case FieldTypeAny:
		return "any"
	}
	if rt, ok := goTypes[t]; ok {
		return rt.String()
	}
	return "any"
}

// Accepts reports whether value may be stored in a property of this type.
// nil is the explicit null and is accepted by every type.
func (t FieldType) Accepts(value any) bool {
	_, ok := t.Normalize(value)
	return ok
}

// Normalize converts value to the Go type stored for t. A Go int is widened to int64
// for int properties so committed values keep a single type. ok is false when value
// does not fit t.
func (t FieldType) Normalize(value any) (normalized any, ok bool) {
	if value == nil || t == FieldTypeAny {
		return value, true
	}
	if n, isInt := value.(int); isInt && t == FieldTypeInt {
		return int64(n), true
	}
	if reflect.TypeOf(value) != goTypes[t] {
		return nil, false
	}
	return value, true
}

// AcceptsType reports whether values of rt can be stored in a property of this type.
func (t FieldType) AcceptsType(rt reflect.Type) bool {
	if t == FieldTypeAny {
		return true
	}
	return rt == goTypes[t]
}
