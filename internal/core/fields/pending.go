package fields

import (
	"fmt"
	"reflect"
)

// State is the staging state of one property inside a component view buffer.
type State uint8

const (
	// Untouched means the view never wrote the property.
	Untouched State = iota
	// Cleared means the view explicitly set the property to null.
	Cleared
	// Assigned means the view set the property to a value.
	Assigned
)

func (s State) String() string {
	switch s {
	case Untouched:
		return "untouched"
	case Cleared:
		return "cleared"
	case Assigned:
		return "assigned"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// Pending is a buffered property write. The zero value is Untouched.
type Pending struct {
	state State
	value any
}

// Assign returns a pending write of value. A nil value is a Clear, including a typed
// nil such as a nil slice, map or pointer.
func Assign(value any) Pending {
	if isNil(value) {
		return Clear()
	}
	return Pending{state: Assigned, value: value}
}

func isNil(value any) bool {
	if value == nil {
		return true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}

// Clear returns a pending explicit null.
func Clear() Pending {
	return Pending{state: Cleared}
}

func (p Pending) State() State {
	return p.state
}

// Touched reports whether the view wrote the property at all.
func (p Pending) Touched() bool {
	return p.state != Untouched
}

// IsCleared reports an explicit null write.
func (p Pending) IsCleared() bool {
	return p.state == Cleared
}

// Value returns the assigned value. ok is false for Untouched and Cleared.
func (p Pending) Value() (value any, ok bool) {
	if p.state != Assigned {
		return nil, false
	}
	return p.value, true
}

func (p Pending) String() string {
	if p.state == Assigned {
		return fmt.Sprintf("assigned(%v)", p.value)
	}
	return p.state.String()
}
