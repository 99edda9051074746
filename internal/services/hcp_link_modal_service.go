package services

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

type modalSubscription struct {
	id       string
	listener ModalListener
	active   bool // guarded by the service mutex
}

// HCPLinkModalServiceImpl implements HCPLinkModalService.
//
// Events are queued under the state lock, so their order is the order of the
// mutations. One caller at a time drains the queue; listeners are therefore
// never called concurrently and always see events in mutation order. A
// mutation made from inside a listener is delivered after that listener
// returns. Under concurrent writers a call may return before its event has
// been delivered by the goroutine currently draining the queue.
type HCPLinkModalServiceImpl struct {
	mu          sync.RWMutex
	visible     bool
	resourceID  *string
	subscribers []*modalSubscription
	pending     []ModalEvent
	dispatching bool
	logger      *log.Logger // Optional - for debug logging
	now         func() time.Time
}

// NewHCPLinkModalService creates a hidden modal with no resource id
func NewHCPLinkModalService() *HCPLinkModalServiceImpl {
	return &HCPLinkModalServiceImpl{
		now: time.Now,
	}
}

// SetLogger sets the logger for debug output
func (s *HCPLinkModalServiceImpl) SetLogger(logger *log.Logger) {
	s.mu.Lock()
	s.logger = logger
	s.mu.Unlock()
}

// Show makes the modal visible. payload is not used by the transition.
func (s *HCPLinkModalServiceImpl) Show(payload any) {
	s.setVisible(true, ModalEventShown, payload)
}

// Hide makes the modal invisible
func (s *HCPLinkModalServiceImpl) Hide() {
	s.setVisible(false, ModalEventHidden, nil)
}

func (s *HCPLinkModalServiceImpl) setVisible(visible bool, kind ModalEventKind, payload any) {
	s.mu.Lock()
	if s.visible == visible {
		s.mu.Unlock()
		return
	}
	prev := s.snapshotLocked()
	s.visible = visible
	event := ModalEvent{
		Kind:     kind,
		Previous: prev,
		Current:  s.snapshotLocked(),
		Payload:  payload,
		At:       s.now(),
	}
	s.pending = append(s.pending, event)
	logger := s.logger
	s.mu.Unlock()

	if logger != nil {
		logger.Printf("HCPLinkModal: %s (resource=%q)", kind, event.Current.ResourceIDValue())
	}
	s.dispatch()
}

// SetResourceID stores id verbatim. Visibility is left untouched.
func (s *HCPLinkModalServiceImpl) SetResourceID(id *string) {
	s.mu.Lock()
	if sameResourceID(s.resourceID, id) {
		s.mu.Unlock()
		return
	}
	prev := s.snapshotLocked()
	s.resourceID = copyString(id)
	s.pending = append(s.pending, ModalEvent{
		Kind:     ModalEventResourceChanged,
		Previous: prev,
		Current:  s.snapshotLocked(),
		At:       s.now(),
	})
	logger := s.logger
	s.mu.Unlock()

	if logger != nil {
		if id == nil {
			logger.Printf("HCPLinkModal: resource id cleared")
		} else {
			logger.Printf("HCPLinkModal: resource id set to %q", *id)
		}
	}
	s.dispatch()
}

// IsModalVisible reports whether the modal is currently shown
func (s *HCPLinkModalServiceImpl) IsModalVisible() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.visible
}

// ResourceID returns a copy of the stored resource id, nil when unset
func (s *HCPLinkModalServiceImpl) ResourceID() *string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyString(s.resourceID)
}

// State returns a snapshot of the whole modal state
func (s *HCPLinkModalServiceImpl) State() ModalState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// Subscribe registers listener and returns its id together with a function
// that removes it. Listeners are called in subscription order.
func (s *HCPLinkModalServiceImpl) Subscribe(listener ModalListener) (string, func()) {
	if listener == nil {
		return "", func() {}
	}

	id := uuid.New().String()

	s.mu.Lock()
	s.subscribers = append(s.subscribers, &modalSubscription{id: id, listener: listener, active: true})
	s.mu.Unlock()

	return id, func() { s.Unsubscribe(id) }
}

// Unsubscribe removes the listener registered under id. Once it returns the
// listener is not called again; a call already running is not interrupted.
func (s *HCPLinkModalServiceImpl) Unsubscribe(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, sub := range s.subscribers {
		if sub.id == id {
			sub.active = false
			// Copy so that a running dispatch keeps its own slice
			next := make([]*modalSubscription, 0, len(s.subscribers)-1)
			next = append(next, s.subscribers[:i]...)
			next = append(next, s.subscribers[i+1:]...)
			s.subscribers = next
			return true
		}
	}
	return false
}

// SubscriberCount returns the number of registered listeners
func (s *HCPLinkModalServiceImpl) SubscriberCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.subscribers)
}

func (s *HCPLinkModalServiceImpl) snapshotLocked() ModalState {
	return ModalState{
		Visible:    s.visible,
		ResourceID: copyString(s.resourceID),
	}
}

// dispatch drains the pending events unless another caller already does
func (s *HCPLinkModalServiceImpl) dispatch() {
	s.mu.Lock()
	if s.dispatching {
		s.mu.Unlock()
		return
	}
	s.dispatching = true

	for len(s.pending) > 0 {
		event := s.pending[0]
		s.pending = s.pending[1:]
		subs := s.subscribers
		logger := s.logger
		s.mu.Unlock()

		for _, sub := range subs {
			s.callListener(sub, event, logger)
		}

		s.mu.Lock()
	}

	s.pending = nil
	s.dispatching = false
	s.mu.Unlock()
}

func (s *HCPLinkModalServiceImpl) callListener(sub *modalSubscription, event ModalEvent, logger *log.Logger) {
	s.mu.RLock()
	active := sub.active
	s.mu.RUnlock()
	if !active {
		return
	}

	defer func() {
		if r := recover(); r != nil && logger != nil {
			logger.Printf("HCPLinkModal: listener %s panicked on %s: %v", sub.id, event.Kind, r)
		}
	}()
	sub.listener(event)
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func sameResourceID(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
