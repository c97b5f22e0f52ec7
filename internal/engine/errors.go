package engine

import "fmt"

// MissingEntityError reports a candidate or team id that does not exist in
// the current pool. Callers surface it as a not-found condition; it is never
// silently defaulted.
type MissingEntityError struct {
	Kind string
	ID   string
}

func (e *MissingEntityError) Error() string {
	return fmt.Sprintf("%s %q not found in current pool", e.Kind, e.ID)
}
