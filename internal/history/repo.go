package history

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a history item does not exist for a user.
var ErrNotFound = errors.New("history item not found")

// listLimit caps how many items a list call returns.
const listLimit = 20

// HistoryRepo defines persistence operations for saved generations. Items are
// keyed by (userId, id); Delete of a missing id is not an error.
type HistoryRepo interface {
	Create(ctx context.Context, item HistoryItem) error
	ListByUser(ctx context.Context, userId string) ([]HistoryItem, error)
	GetByID(ctx context.Context, userId, id string) (HistoryItem, error)
	Delete(ctx context.Context, userId, id string) error
}
