package history

import "context"

// Repository port for persisting and querying history records.
// Records are immutable once inserted; there is no update operation.
type Repository interface {
	Insert(ctx context.Context, description, analysis, logoURL, language string) (*Record, error)
	Latest(ctx context.Context, limit int) ([]*Record, error)
	Delete(ctx context.Context, id RecordID) (bool, error)
}
