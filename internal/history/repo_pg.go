package history

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements HistoryRepo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a history item.
func (r *PGRepo) Create(ctx context.Context, item HistoryItem) error {
	const query = `
INSERT INTO history_items (user_id, id, company, job_title, date, data, resume)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

	var resume any
	if len(item.Resume) > 0 {
		resume = []byte(item.Resume)
	}
	_, err := r.DB.ExecContext(ctx, query,
		item.UserID, item.ID, item.Company, item.JobTitle, item.Date, []byte(item.Data), resume)
	return err
}

// ListByUser returns up to listLimit items for a user, newest first.
func (r *PGRepo) ListByUser(ctx context.Context, userId string) ([]HistoryItem, error) {
	const query = `
SELECT user_id, id, company, job_title, date, data, resume
FROM history_items
WHERE user_id = $1
ORDER BY date DESC
LIMIT $2`

	rows, err := r.DB.QueryContext(ctx, query, userId, listLimit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]HistoryItem, 0, listLimit)
	for rows.Next() {
		item, err := scanItem(rows.Scan)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// GetByID returns one item for a user.
func (r *PGRepo) GetByID(ctx context.Context, userId, id string) (HistoryItem, error) {
	const query = `
SELECT user_id, id, company, job_title, date, data, resume
FROM history_items
WHERE user_id = $1 AND id = $2`

	item, err := scanItem(r.DB.QueryRowContext(ctx, query, userId, id).Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return HistoryItem{}, ErrNotFound
	}
	if err != nil {
		return HistoryItem{}, err
	}
	return item, nil
}

// Delete removes an item. Deleting a missing id is a no-op.
func (r *PGRepo) Delete(ctx context.Context, userId, id string) error {
	const query = `DELETE FROM history_items WHERE user_id = $1 AND id = $2`
	_, err := r.DB.ExecContext(ctx, query, userId, id)
	return err
}

func scanItem(scan func(dest ...any) error) (HistoryItem, error) {
	var item HistoryItem
	var data []byte
	var resume []byte
	err := scan(&item.UserID, &item.ID, &item.Company, &item.JobTitle, &item.Date, &data, &resume)
	if err != nil {
		return HistoryItem{}, err
	}
	item.Data = data
	item.Resume = resume
	return item, nil
}
