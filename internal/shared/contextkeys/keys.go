package contextkeys

// contextKey is an unexported type to prevent collisions with context keys defined in
// other packages.
type contextKey string

// String makes contextKey satisfy the Stringer interface to assist with debugging.
func (c contextKey) String() string {
	return "shop-ledger context key " + string(c)
}

// RequestIDKey carries the per-request correlation id set by the HTTP middleware.
const RequestIDKey = contextKey("requestID")

// UserEmailKey carries the email a request is scoped to (import/export listings).
const UserEmailKey = contextKey("userEmail")

// ComponentKey and OperationKey annotate log lines emitted deeper in the call stack.
const (
	ComponentKey = contextKey("component")
	OperationKey = contextKey("operation")
)
