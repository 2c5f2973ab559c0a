package resumes

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements ResumesRepo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Save upserts the resume for a user.
func (r *PGRepo) Save(ctx context.Context, resume StoredResume) error {
	const query = `
INSERT INTO resumes (user_id, profile, file_key, updated_at)
VALUES ($1, $2, $3, $4)
ON CONFLICT (user_id) DO UPDATE SET
    profile = EXCLUDED.profile,
    file_key = EXCLUDED.file_key,
    updated_at = EXCLUDED.updated_at`

	var fileKey sql.NullString
	if resume.FileKey != "" {
		fileKey = sql.NullString{String: resume.FileKey, Valid: true}
	}
	_, err := r.DB.ExecContext(ctx, query, resume.UserID, []byte(resume.Profile), fileKey, resume.UpdatedAt)
	return err
}

// GetByUser returns the stored resume for a user.
func (r *PGRepo) GetByUser(ctx context.Context, userId string) (StoredResume, error) {
	const query = `
SELECT user_id, profile, file_key, updated_at
FROM resumes
WHERE user_id = $1`

	var resume StoredResume
	var profile []byte
	var fileKey sql.NullString
	err := r.DB.QueryRowContext(ctx, query, userId).Scan(&resume.UserID, &profile, &fileKey, &resume.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return StoredResume{}, ErrNotFound
	}
	if err != nil {
		return StoredResume{}, err
	}
	resume.Profile = profile
	if fileKey.Valid {
		resume.FileKey = fileKey.String
	}
	return resume, nil
}
