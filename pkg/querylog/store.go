package querylog

import "context"

// Store keeps the per-user history of search terms. Entries are append-only.
type Store interface {
	RecordQuery(ctx context.Context, userID, query string) error
	Queries(ctx context.Context, userID string) ([]string, error)
}

// Document is the on-disk shape of the query log.
type Document struct {
	Queries map[string][]string `json:"queries"`
}

func newDocument() *Document {
	return &Document{Queries: make(map[string][]string)}
}
