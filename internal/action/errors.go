// internal/action/errors.go
package action

import "errors"

// Registration and lookup failures. All are reported synchronously to the
// caller and are matched with errors.Is.
var (
	// ErrInvalidPath means the path starts or ends with '/'.
	ErrInvalidPath = errors.New("action path must not start or end with '/'")

	// ErrDuplicatePath means the path is already registered. Paths are
	// taken for the registry's lifetime; there is no unregister.
	ErrDuplicatePath = errors.New("action path already registered")

	// ErrConfiguration means the registration call itself was malformed:
	// no usable initial value, empty choices, a binding on a Choice action,
	// an unparseable binding, or an option for the wrong kind.
	ErrConfiguration = errors.New("invalid action configuration")

	// ErrInvalidChoice means a default or pre-existing cell value is not a
	// member of the declared choices.
	ErrInvalidChoice = errors.New("value is not one of the choices")

	// ErrNotFound means no action is registered under the looked-up path.
	ErrNotFound = errors.New("no action registered for path")
)
