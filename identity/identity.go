package identity

import (
	"fmt"
	"reflect"

	"github.com/davidvella/xds"
)

// Identifier derives the identity of a payload. Implementations must be
// deterministic: the same payload always yields the same identity.
type Identifier[T any, ID comparable] interface {
	Identify(payload T) ID
}

// Func adapts an extraction function to the Identifier interface.
type Func[T any, ID comparable] func(payload T) ID

// Identify calls f.
func (f Func[T, ID]) Identify(payload T) ID {
	return f(payload)
}

// Self is the Identifier for payloads that are their own identity.
type Self[T comparable] struct{}

// Identify returns payload unchanged.
func (Self[T]) Identify(payload T) T {
	return payload
}

// converter converts payloads to identities using reflection. The
// convertibility of the two types is checked once by Convert.
type converter[T any, ID comparable] struct {
	to reflect.Type
}

func (c converter[T, ID]) Identify(payload T) ID {
	v := reflect.ValueOf(&payload).Elem()
	// A nil interface payload converts to a nil interface identity.
	id, _ := v.Convert(c.to).Interface().(ID)
	return id
}

// passthrough is used by Convert when T and ID are the same type.
type passthrough[T any, ID comparable] struct{}

func (passthrough[T, ID]) Identify(payload T) ID {
	id, _ := any(payload).(ID)
	return id
}

// Convert returns an Identifier that converts a payload of type T into an
// identity of type ID following Go's conversion rules, so an integer
// converts to the string holding that code point (65 becomes "A"). It
// returns an error wrapping xds.ErrUnconvertiblePayload if T is not
// convertible to ID. Slice to array and slice to array pointer conversions
// are rejected too, since they fail for short slices.
func Convert[T any, ID comparable]() (Identifier[T, ID], error) {
	from, to := reflect.TypeFor[T](), reflect.TypeFor[ID]()
	if from == to {
		return passthrough[T, ID]{}, nil
	}
	if !from.ConvertibleTo(to) || lengthChecked(from, to) {
		return nil, fmt.Errorf("identity: %v to %v: %w", from, to, xds.ErrUnconvertiblePayload)
	}
	return converter[T, ID]{to: to}, nil
}

// lengthChecked reports whether converting from to to depends on the
// length of the value being converted.
func lengthChecked(from, to reflect.Type) bool {
	if from.Kind() != reflect.Slice {
		return false
	}
	if to.Kind() == reflect.Pointer {
		to = to.Elem()
	}
	return to.Kind() == reflect.Array
}

// MustConvert is like Convert but panics if T is not convertible to ID.
// It is intended for package level declarations where the types are known
// to be compatible.
func MustConvert[T any, ID comparable]() Identifier[T, ID] {
	c, err := Convert[T, ID]()
	if err != nil {
		panic(err)
	}
	return c
}
