package services

import (
	"context"
	"log"
	"time"
)

// HCPLinkModalService holds the visibility state of the HCP link modal and
// the id of the resource it concerns
type HCPLinkModalService interface {
	// Show makes the modal visible. The payload is passed through to
	// listeners and never changes the stored state.
	Show(payload any)
	Hide()
	// SetResourceID stores id as given, nil included
	SetResourceID(id *string)

	IsModalVisible() bool
	ResourceID() *string
	State() ModalState

	Subscribe(listener ModalListener) (string, func())
	Unsubscribe(id string) bool
	SetLogger(logger *log.Logger)
}

// ResourceService handles the catalog of resources that can be linked to HCP
type ResourceService interface {
	ListResources(ctx context.Context) ([]Resource, error)
	GetResource(ctx context.Context, id string) (*Resource, error)
	ReplaceResources(resources []Resource)
}

// Data structures

// ModalState is a point-in-time copy of the modal state
type ModalState struct {
	Visible    bool
	ResourceID *string
}

// HasResourceID reports whether a resource id (possibly empty) is stored
func (s ModalState) HasResourceID() bool {
	return s.ResourceID != nil
}

// ResourceIDValue returns the stored id or "" when none is stored
func (s ModalState) ResourceIDValue() string {
	if s.ResourceID == nil {
		return ""
	}
	return *s.ResourceID
}

// ModalEventKind identifies which mutation produced a ModalEvent
type ModalEventKind int

const (
	ModalEventShown ModalEventKind = iota
	ModalEventHidden
	ModalEventResourceChanged
)

func (k ModalEventKind) String() string {
	switch k {
	case ModalEventShown:
		return "shown"
	case ModalEventHidden:
		return "hidden"
	case ModalEventResourceChanged:
		return "resource_changed"
	default:
		return "unknown"
	}
}

// ModalEvent describes one observable change of the modal state
type ModalEvent struct {
	Kind     ModalEventKind
	Previous ModalState
	Current  ModalState
	Payload  any // Show payload, nil for other kinds
	At       time.Time
}

// ModalListener receives modal state changes
type ModalListener func(ModalEvent)

// LinkStatus is the HCP link state reported for a resource
type LinkStatus string

const (
	LinkStatusConnected    LinkStatus = "connected"
	LinkStatusDisconnected LinkStatus = "disconnected"
	LinkStatusUnknown      LinkStatus = "unknown"
)

// Resource is an entry of the resource catalog
type Resource struct {
	ID           string
	Name         string
	Type         string
	LinkStatus   LinkStatus
	HCPOrgID     string
	HCPProjectID string
	Description  string
}

// StringPtr returns a pointer to a copy of s
func StringPtr(s string) *string {
	return &s
}
