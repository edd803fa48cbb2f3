package history

import "time"

// RecordID identifier type
type RecordID int64

// Record represents one brand generation entry as stored in the history table.
// The analysis field holds the serialized JSON text; use DecodeAnalysis to get
// the structured form back.
type Record struct {
	ID          RecordID  `json:"id"`
	Description string    `json:"description"`
	Analysis    string    `json:"analysis"`
	LogoURL     string    `json:"logo_url"`
	Language    string    `json:"language"`
	CreatedAt   time.Time `json:"created_at"`
}
