// Package identity defines how a container derives the identity of a stored
// payload.
//
// Containers that index their contents, such as the priority queues, are
// parameterized by an Identifier rather than relying on an implicit
// conversion. This keeps identity derivation explicit and testable on its
// own.
//
// Three strategies are provided:
//
//   - Func wraps an arbitrary extraction function, e.g. returning the ID
//     field of a struct.
//   - Self uses the payload itself when the payload and identity types are
//     the same.
//   - Convert uses Go's conversion rules to turn a payload into an identity,
//     e.g. a named string type into string. Convert fails with
//     xds.ErrUnconvertiblePayload when no conversion exists.
//
// Basic usage:
//
//	type Event struct {
//	    ID   string
//	    Kind string
//	}
//
//	byID := identity.Func[Event, string](func(e Event) string { return e.ID })
//	id := byID.Identify(Event{ID: "e1"}) // "e1"
//
//	type Name string
//	conv, err := identity.Convert[Name, string]()
//	if err != nil {
//	    // Name is not convertible to string.
//	}
//	id = conv.Identify(Name("alice")) // "alice"
package identity
