package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
)

// ResourceServiceImpl implements ResourceService on top of an in-memory catalog
type ResourceServiceImpl struct {
	mu        sync.RWMutex
	resources map[string]Resource
	order     []string
	logger    *log.Logger
}

// NewResourceService creates a resource service seeded with resources
func NewResourceService(resources []Resource) *ResourceServiceImpl {
	s := &ResourceServiceImpl{}
	s.ReplaceResources(resources)
	return s
}

// SetLogger sets the logger for debug output
func (s *ResourceServiceImpl) SetLogger(logger *log.Logger) {
	s.logger = logger
}

// ListResources returns all resources in catalog order
func (s *ResourceServiceImpl) ListResources(ctx context.Context) ([]Resource, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Resource, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.resources[id])
	}
	return out, nil
}

// GetResource returns the resource registered under id
func (s *ResourceServiceImpl) GetResource(ctx context.Context, id string) (*Resource, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(id) == "" {
		return nil, ErrInvalidResourceID
	}

	s.mu.RLock()
	res, ok := s.resources[id]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("resource %q: %w", id, ErrResourceNotFound)
	}
	return &res, nil
}

// ReplaceResources swaps the whole catalog. Entries with a blank id are
// skipped; for duplicate ids the last entry wins but keeps the first position.
func (s *ResourceServiceImpl) ReplaceResources(resources []Resource) {
	byID := make(map[string]Resource, len(resources))
	order := make([]string, 0, len(resources))
	skipped := 0

	for _, r := range resources {
		if strings.TrimSpace(r.ID) == "" {
			skipped++
			continue
		}
		if r.LinkStatus == "" {
			r.LinkStatus = LinkStatusUnknown
		}
		if _, seen := byID[r.ID]; !seen {
			order = append(order, r.ID)
		}
		byID[r.ID] = r
	}

	s.mu.Lock()
	s.resources = byID
	s.order = order
	s.mu.Unlock()

	if s.logger != nil {
		s.logger.Printf("ResourceService: catalog replaced (%d resources, %d skipped)", len(order), skipped)
	}
}

// CountByStatus returns how many resources report each link status
func (s *ResourceServiceImpl) CountByStatus() map[LinkStatus]int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[LinkStatus]int)
	for _, r := range s.resources {
		counts[r.LinkStatus]++
	}
	return counts
}
