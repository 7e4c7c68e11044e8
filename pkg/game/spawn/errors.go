package spawn

import "errors"

// ErrUnknownKind indicates a kind identifier that names no spawnable.
var ErrUnknownKind = errors.New("spawn: unknown kind")
