package resumes

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a user has no stored resume.
var ErrNotFound = errors.New("resume not found")

// ResumesRepo defines persistence operations for stored resumes. Each user has
// at most one resume; Save overwrites any previous one.
type ResumesRepo interface {
	Save(ctx context.Context, resume StoredResume) error
	GetByUser(ctx context.Context, userId string) (StoredResume, error)
}
