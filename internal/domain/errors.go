package domain

import "errors"

var (
	// ErrUnknownTag is returned when a toggle names a tag outside its group.
	ErrUnknownTag = errors.New("tag not part of group")
	// ErrUnknownControl is returned when a control ID has no registry entry.
	ErrUnknownControl = errors.New("unknown control")
	// ErrPermissionDenied is returned when a non-administrator invokes a gated action.
	ErrPermissionDenied = errors.New("permission denied")
	// ErrTagStore wraps platform failures while mutating tags.
	ErrTagStore = errors.New("tag store failure")
	// ErrExternalService wraps status-query and hosting failures.
	ErrExternalService = errors.New("external service failure")
	// ErrCooldownActive is returned when startserver is invoked too soon.
	ErrCooldownActive = errors.New("cooldown active")
)
