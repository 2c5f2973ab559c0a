package resumes

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoSaveUpserts(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	resume := StoredResume{
		UserID:    "google:123",
		Profile:   json.RawMessage(`{"fullName":"Jane"}`),
		FileKey:   "google-123/resume.pdf",
		UpdatedAt: time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO resumes").
		WithArgs(
			resume.UserID,
			[]byte(resume.Profile),
			sqlmock.AnyArg(), // file_key
			resume.UpdatedAt,
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Save(context.Background(), resume); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

// The profile column is TEXT so the database hands back exactly the bytes we
// stored. A JSONB column would reorder keys and strip whitespace on write.
func TestPGRepoProfileBytesPreserved(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	// Non-canonical on purpose: out-of-order keys and extra whitespace.
	profile := `{"b": 1,  "a": 2}`
	now := time.Now().UTC()

	mock.ExpectExec("INSERT INTO resumes").
		WithArgs("guest:abc", []byte(profile), sqlmock.AnyArg(), now).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT user_id, profile, file_key, updated_at").
		WithArgs("guest:abc").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "profile", "file_key", "updated_at"}).
			AddRow("guest:abc", []byte(profile), nil, now))

	err = repo.Save(context.Background(), StoredResume{
		UserID:    "guest:abc",
		Profile:   json.RawMessage(profile),
		UpdatedAt: now,
	})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	resume, err := repo.GetByUser(context.Background(), "guest:abc")
	if err != nil {
		t.Fatalf("GetByUser: %v", err)
	}
	if string(resume.Profile) != profile {
		t.Fatalf("profile not byte-preserved:\n got: %s\nwant: %s", resume.Profile, profile)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByUserNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	mock.ExpectQuery("SELECT user_id, profile, file_key, updated_at").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "profile", "file_key", "updated_at"}))

	if _, err := repo.GetByUser(context.Background(), "missing"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{"user_id", "profile", "file_key", "updated_at"}).
		AddRow("google:123", []byte(`{"fullName":"Jane"}`), nil, now)
	mock.ExpectQuery("SELECT user_id, profile, file_key, updated_at").
		WithArgs("google:123").
		WillReturnRows(rows)

	resume, err := repo.GetByUser(context.Background(), "google:123")
	if err != nil {
		t.Fatalf("GetByUser: %v", err)
	}
	if string(resume.Profile) != `{"fullName":"Jane"}` {
		t.Fatalf("unexpected profile: %s", resume.Profile)
	}
	if resume.FileKey != "" {
		t.Fatalf("expected empty file key, got %s", resume.FileKey)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
