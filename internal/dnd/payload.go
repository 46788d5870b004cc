// Package dnd implements the drag-and-drop interaction protocol: payload
// matching, the drop-target tracking state machine, insertion-index
// computation for ordered collections, and the draggable element's drag
// session. Elements here compose over the element package's tree and talk
// to each other through identity tokens carried in payloads, so a dragged
// item can address exactly one ancestor target without a shared registry.
package dnd

import (
	"github.com/google/uuid"
)

// tokenScheme namespaces identity tokens so they can never collide with
// conventional payload names like "text/uri-list".
const tokenScheme = "dragd-token:"

// NewToken mints a fresh identity token. Tokens are unique per process
// lifetime, assigned at construction and never derived from memory layout.
func NewToken() string {
	return tokenScheme + uuid.NewString()
}

// IsToken reports whether name is an identity token rather than a
// conventional payload name.
func IsToken(name string) bool {
	return len(name) > len(tokenScheme) && name[:len(tokenScheme)] == tokenScheme
}
