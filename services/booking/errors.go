package booking

import "fmt"

// ValidationError reports a rejected input field before any persistence.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Reason)
}

// NotFoundError reports a missing resource.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %s not found", e.Resource, e.ID)
}

// ConflictError reports an overlapping reservation or an illegal status
// transition. PropertyID identifies the offending line item where relevant.
type ConflictError struct {
	PropertyID string
	Reason     string
}

func (e *ConflictError) Error() string {
	if e.PropertyID != "" {
		return fmt.Sprintf("conflict on property %s: %s", e.PropertyID, e.Reason)
	}
	return fmt.Sprintf("conflict: %s", e.Reason)
}

// ForbiddenError reports a caller lacking ownership or role for an action.
type ForbiddenError struct {
	Action string
}

func (e *ForbiddenError) Error() string {
	return fmt.Sprintf("not authorized to %s", e.Action)
}
