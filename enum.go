package wings

// Enumerable is the interface implemented by types that can only be represented by enumerable, constant values,
// like Environment.
//
// The "enum" rule in validate struct tags checks a field is a valid Enumerable.
type Enumerable interface {
	String() string
	Valid() error
}

var _ Enumerable = Environment("")
