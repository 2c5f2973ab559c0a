package history

import (
	"encoding/json"
	"time"
)

// HistoryItem is one saved generation: the job context plus the generated
// materials and the resume snapshot they were generated from. Data and Resume
// are stored and served verbatim.
type HistoryItem struct {
	ID       string          `json:"id"`
	UserID   string          `json:"-"`
	Company  string          `json:"company"`
	JobTitle string          `json:"jobTitle"`
	Date     time.Time       `json:"date"`
	Data     json.RawMessage `json:"data"`
	Resume   json.RawMessage `json:"resume,omitempty"`
}
