package host

import (
	"context"

	"github.com/xy-planning-network/wings"
)

// Attributes are values scoped to a single request.
// Keys are unique; the last write wins.
//
// Attributes are owned by one request and are not safe for concurrent use.
type Attributes map[string]any

// Get returns the value stored under name.
func (a Attributes) Get(name string) (any, bool) {
	val, ok := a[name]
	return val, ok
}

// Set stores val under name.
func (a Attributes) Set(name string, val any) { a[name] = val }

// NewAttributesContext stashes attrs in ctx, returning the resulting context.
func NewAttributesContext(ctx context.Context, attrs Attributes) context.Context {
	return context.WithValue(ctx, wings.AttributesKey, attrs)
}

// AttributesFromContext retrieves the Attributes stashed in ctx.
func AttributesFromContext(ctx context.Context) (Attributes, bool) {
	attrs, ok := ctx.Value(wings.AttributesKey).(Attributes)
	return attrs, ok && attrs != nil
}
