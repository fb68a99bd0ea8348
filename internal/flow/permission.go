// Package flow implements the onboarding wizard state machine: the step sum
// type, permission requests, the immutable wizard configuration, and the
// Controller that owns step progression and permission-state transitions.
package flow

import "fmt"

// PermissionState tracks where a single permission request is in its
// lifecycle. The zero value is StateRequesting.
type PermissionState int

const (
	StateRequesting PermissionState = iota // not yet decided
	StateApproved
	StateDenied
)

// String returns the human-readable name for a PermissionState.
func (s PermissionState) String() string {
	switch s {
	case StateRequesting:
		return "requesting"
	case StateApproved:
		return "approved"
	case StateDenied:
		return "denied"
	default:
		return fmt.Sprintf("PermissionState(%d)", int(s))
	}
}

// PermissionType enumerates the OS-level capabilities a wizard can ask for.
type PermissionType int

const (
	PermissionCamera PermissionType = iota
	PermissionLocation
	PermissionNotifications
	PermissionMicrophone
	PermissionPhotos
	PermissionContacts
	PermissionCalendar
	PermissionReminders
	PermissionFaceID
	PermissionTouchID
)

// String returns the machine-readable name for a PermissionType, as used in
// wizard definition files.
func (t PermissionType) String() string {
	switch t {
	case PermissionCamera:
		return "camera"
	case PermissionLocation:
		return "location"
	case PermissionNotifications:
		return "notifications"
	case PermissionMicrophone:
		return "microphone"
	case PermissionPhotos:
		return "photos"
	case PermissionContacts:
		return "contacts"
	case PermissionCalendar:
		return "calendar"
	case PermissionReminders:
		return "reminders"
	case PermissionFaceID:
		return "faceid"
	case PermissionTouchID:
		return "touchid"
	default:
		return fmt.Sprintf("PermissionType(%d)", int(t))
	}
}

// ParsePermissionType maps a definition-file name back to a PermissionType.
func ParsePermissionType(name string) (PermissionType, error) {
	for t := PermissionCamera; t <= PermissionTouchID; t++ {
		if t.String() == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown permission type %q", name)
}

// DefaultTitle returns the fixed fallback title shown when a request carries
// no override.
func (t PermissionType) DefaultTitle() string {
	switch t {
	case PermissionCamera:
		return "Camera Access"
	case PermissionLocation:
		return "Location Access"
	case PermissionNotifications:
		return "Notifications"
	case PermissionMicrophone:
		return "Microphone Access"
	case PermissionPhotos:
		return "Photo Library"
	case PermissionContacts:
		return "Contacts"
	case PermissionCalendar:
		return "Calendar Access"
	case PermissionReminders:
		return "Reminders"
	case PermissionFaceID:
		return "Face ID"
	case PermissionTouchID:
		return "Touch ID"
	default:
		return "Permission"
	}
}

// DefaultDescription returns the fixed fallback description for a type.
func (t PermissionType) DefaultDescription() string {
	switch t {
	case PermissionCamera:
		return "Take photos and scan documents from inside the app."
	case PermissionLocation:
		return "Show nearby results and location-aware suggestions."
	case PermissionNotifications:
		return "Get reminders and updates that matter to you."
	case PermissionMicrophone:
		return "Record voice notes and use voice commands."
	case PermissionPhotos:
		return "Attach pictures from your library."
	case PermissionContacts:
		return "Find people you already know."
	case PermissionCalendar:
		return "Add events and check your availability."
	case PermissionReminders:
		return "Create follow-ups without leaving the app."
	case PermissionFaceID:
		return "Unlock the app quickly and securely with your face."
	case PermissionTouchID:
		return "Unlock the app quickly and securely with your fingerprint."
	default:
		return "This permission helps the app work better."
	}
}

// PermissionRequest is one capability ask within a flow. ID is the stable
// identity used for lookup; Title and Description are optional overrides that
// fall back to the per-type defaults when empty.
type PermissionRequest struct {
	ID          string
	Type        PermissionType
	State       PermissionState
	Title       string
	Description string
}

// NewPermissionRequest creates a request in the initial Requesting state.
func NewPermissionRequest(id string, t PermissionType) PermissionRequest {
	return PermissionRequest{ID: id, Type: t, State: StateRequesting}
}

// DisplayTitle returns the override title, or the type default when unset.
func (r PermissionRequest) DisplayTitle() string {
	if r.Title != "" {
		return r.Title
	}
	return r.Type.DefaultTitle()
}

// DisplayDescription returns the override description, or the type default
// when unset.
func (r PermissionRequest) DisplayDescription() string {
	if r.Description != "" {
		return r.Description
	}
	return r.Type.DefaultDescription()
}

// Equal reports whether two requests have the same identity and field values.
func (r PermissionRequest) Equal(o PermissionRequest) bool {
	return r == o
}
