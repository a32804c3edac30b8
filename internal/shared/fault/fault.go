// Package fault defines the write-path failure taxonomy. Each failure is a
// plain error value carrying its diagnostic data, so handlers can map every
// case to a distinct response with a type switch instead of unwinding
// exception-style errors.
package fault

import (
	"fmt"
	"strings"
)

// ConstraintViolations reports every validation rule the candidate entity
// broke, one message per rule.
type ConstraintViolations struct {
	Messages []string
}

func (e *ConstraintViolations) Error() string {
	return "constraint violations: " + strings.Join(e.Messages, "; ")
}

// NaturalKeyExists reports a natural-key collision with another live entity.
// ID names the colliding entity when known.
type NaturalKeyExists struct {
	Field string
	Value string
	ID    string
}

func (e *NaturalKeyExists) Error() string {
	return fmt.Sprintf("%s %q already exists", e.Field, e.Value)
}

// EntityNotExists reports an unknown or unparsable entity id. An id that does
// not parse is treated exactly like one that is not in the store.
type EntityNotExists struct {
	ID string
}

func (e *EntityNotExists) Error() string {
	return fmt.Sprintf("entity %q does not exist", e.ID)
}

// VersionInvalid reports a missing or malformed concurrency token. Raw keeps
// the value as received for diagnostics.
type VersionInvalid struct {
	Raw string
}

func (e *VersionInvalid) Error() string {
	return fmt.Sprintf("invalid version token %q", e.Raw)
}

// VersionOutdated reports a concurrency token older than the stored version;
// Version is the version the caller supplied.
type VersionOutdated struct {
	ID      string
	Version int
}

func (e *VersionOutdated) Error() string {
	return fmt.Sprintf("version %d of entity %q is outdated", e.Version, e.ID)
}
