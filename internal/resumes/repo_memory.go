package resumes

import (
	"context"
	"sync"
)

// MemoryRepo is an in-memory implementation of ResumesRepo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]StoredResume // userId -> resume
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: make(map[string]StoredResume)}
}

// Save stores/overwrites the resume for a user.
func (r *MemoryRepo) Save(ctx context.Context, resume StoredResume) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := resume
	stored.Profile = append([]byte(nil), resume.Profile...)
	r.data[resume.UserID] = stored
	return nil
}

// GetByUser returns the stored resume for a user.
func (r *MemoryRepo) GetByUser(ctx context.Context, userId string) (StoredResume, error) {
	if err := ctx.Err(); err != nil {
		return StoredResume{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	resume, ok := r.data[userId]
	if !ok {
		return StoredResume{}, ErrNotFound
	}
	return resume, nil
}
