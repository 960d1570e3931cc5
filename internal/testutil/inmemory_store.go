package testutil

import (
	"context"
	"sort"
	"sync"
	"time"

	ierr "github.com/siteledger/siteledger/internal/errors"
	"github.com/siteledger/siteledger/internal/types"
)

type model[T any] interface {
	*T
	GetID() string
	GetBaseModel() *types.BaseModel
}

// InMemoryStore mirrors the persistence semantics of the real
// repositories: tenant scoping, archived rows invisible, and version
// checked writes. Entity stores embed it and add filtered listing.
type InMemoryStore[T any, PT model[T]] struct {
	mu    sync.RWMutex
	items map[string]PT
}

func NewInMemoryStore[T any, PT model[T]]() *InMemoryStore[T, PT] {
	return &InMemoryStore[T, PT]{
		items: make(map[string]PT),
	}
}

func (s *InMemoryStore[T, PT]) Create(ctx context.Context, m PT) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	bm := m.GetBaseModel()
	if bm.TenantID == "" {
		bm.TenantID = types.GetTenantID(ctx)
	}

	if _, ok := s.items[m.GetID()]; ok {
		return ierr.NewError("record already exists").
			WithHint("A record with this identifier already exists").
			Mark(ierr.ErrAlreadyExists)
	}

	cp := *m
	s.items[m.GetID()] = PT(&cp)
	return nil
}

func (s *InMemoryStore[T, PT]) Get(ctx context.Context, id string) (PT, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.items[id]
	if !ok || !s.visible(ctx, m) {
		return nil, ierr.NewError("record not found").
			WithHint("The requested record does not exist").
			Mark(ierr.ErrNotFound)
	}

	cp := *m
	return PT(&cp), nil
}

func (s *InMemoryStore[T, PT]) Update(ctx context.Context, m PT) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.items[m.GetID()]
	if !ok || !s.visible(ctx, stored) {
		return ierr.NewError("record not found").
			WithHint("The requested record does not exist").
			Mark(ierr.ErrNotFound)
	}

	bm := m.GetBaseModel()
	current := stored.GetBaseModel().Version
	if current != bm.Version {
		return ierr.NewError("record was modified by another request").
			WithHint("The record changed since it was loaded. Reload and try again").
			WithReportableDetails(map[string]any{
				"expected_version": bm.Version,
				"current_version":  current,
			}).
			Mark(ierr.ErrVersionConflict)
	}

	bm.Version++
	bm.UpdatedAt = time.Now().UTC()
	bm.UpdatedBy = types.GetUserID(ctx)

	cp := *m
	s.items[m.GetID()] = PT(&cp)
	return nil
}

func (s *InMemoryStore[T, PT]) Archive(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.items[id]
	if !ok || !s.visible(ctx, m) {
		return ierr.NewError("record not found").
			WithHint("The requested record does not exist").
			Mark(ierr.ErrNotFound)
	}

	now := time.Now().UTC()
	bm := m.GetBaseModel()
	bm.Status = types.StatusArchived
	bm.ArchivedAt = &now
	bm.UpdatedAt = now
	bm.UpdatedBy = types.GetUserID(ctx)
	bm.Version++
	return nil
}

func (s *InMemoryStore[T, PT]) visible(ctx context.Context, m PT) bool {
	bm := m.GetBaseModel()
	return bm.TenantID == types.GetTenantID(ctx) && bm.ArchivedAt == nil
}

// list returns visible matching copies ordered newest first, with the
// filter's pagination applied.
func (s *InMemoryStore[T, PT]) list(ctx context.Context, f types.BaseFilter, match func(PT) bool) []PT {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]PT, 0)
	for _, m := range s.items {
		if !s.visible(ctx, m) || !match(m) {
			continue
		}
		cp := *m
		out = append(out, PT(&cp))
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].GetBaseModel().CreatedAt.After(out[j].GetBaseModel().CreatedAt)
	})

	if f == nil {
		return out
	}

	offset := f.GetOffset()
	if offset >= len(out) {
		return []PT{}
	}
	out = out[offset:]

	if !f.IsUnlimited() && f.GetLimit() < len(out) {
		out = out[:f.GetLimit()]
	}
	return out
}

func (s *InMemoryStore[T, PT]) count(ctx context.Context, match func(PT) bool) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, m := range s.items {
		if s.visible(ctx, m) && match(m) {
			n++
		}
	}
	return n
}

// Clear drops every stored record.
func (s *InMemoryStore[T, PT]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = make(map[string]PT)
}

func matchTimeRange(t time.Time, f *types.TimeRangeFilter) bool {
	if f == nil {
		return true
	}
	if f.StartTime != nil && t.Before(*f.StartTime) {
		return false
	}
	if f.EndTime != nil && t.After(*f.EndTime) {
		return false
	}
	return true
}
