package wings

// A Key namespaces values wings stashes in a context.Context.
type Key string

const (
	// AttributesKey stashes the attribute store scoped to an HTTP request.
	AttributesKey Key = "AttributesKey"

	// ControllerKey stashes the controller context built for an HTTP request.
	ControllerKey Key = "ControllerKey"

	// HTTPRequestKey stashes the *http.Request being handled, for diagnostics.
	HTTPRequestKey Key = "HTTPRequestKey"

	// IpAddrKey stashes the IP address of an HTTP request being handled by wings.
	IpAddrKey Key = "IpAddrKey"

	// RequestIDKey stashes a unique UUID for each HTTP request.
	RequestIDKey Key = "RequestIDKey"

	// SessionKey stashes the session associated with an HTTP request.
	SessionKey Key = "SessionKey"
)

// String formats the stringified key with additional contextual information
func (k Key) String() string {
	return "wings context key: " + string(k)
}
