// Package journal keeps a history of finished engine tasks.
package journal

import (
	"github.com/voidshard/cooker/pkg/structs"
)

//go:generate mockgen -source=interface.go -destination=../../internal/mocks/pkg/journal_mock/journal.go -package=journal_mock
type Journal interface {
	// Record queues an entry for writing. It must not block the caller.
	Record(e *structs.JournalEntry)

	// Entries returns recorded entries matching the query, newest first.
	Entries(q *structs.Query) ([]*structs.JournalEntry, error)

	// Close flushes pending entries & releases connections.
	Close() error
}
