package history

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of HistoryRepo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]map[string]HistoryItem // userId -> id -> item
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: make(map[string]map[string]HistoryItem)}
}

// Create stores a history item.
func (r *MemoryRepo) Create(ctx context.Context, item HistoryItem) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	items, ok := r.data[item.UserID]
	if !ok {
		items = make(map[string]HistoryItem)
		r.data[item.UserID] = items
	}
	stored := item
	stored.Data = append([]byte(nil), item.Data...)
	stored.Resume = append([]byte(nil), item.Resume...)
	items[item.ID] = stored
	return nil
}

// ListByUser returns up to listLimit items for a user, newest first.
func (r *MemoryRepo) ListByUser(ctx context.Context, userId string) ([]HistoryItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	items := make([]HistoryItem, 0, len(r.data[userId]))
	for _, item := range r.data[userId] {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].Date.After(items[j].Date)
	})
	if len(items) > listLimit {
		items = items[:listLimit]
	}
	return items, nil
}

// GetByID returns one item for a user.
func (r *MemoryRepo) GetByID(ctx context.Context, userId, id string) (HistoryItem, error) {
	if err := ctx.Err(); err != nil {
		return HistoryItem{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	item, ok := r.data[userId][id]
	if !ok {
		return HistoryItem{}, ErrNotFound
	}
	return item, nil
}

// Delete removes an item. Deleting a missing id is a no-op.
func (r *MemoryRepo) Delete(ctx context.Context, userId, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.data[userId], id)
	return nil
}
