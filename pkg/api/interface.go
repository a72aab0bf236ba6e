package api

import (
	"github.com/voidshard/cooker/pkg/structs"
)

// API represents the functions cooker servers expose.
type API interface {
	// Implemented by Service (which defers to internal/core.Manager)

	Recook(in []*structs.AssetRef) (int64, error)
	Rebuild(in []*structs.AssetRef) (int64, error)
	Delete(in []*structs.AssetRef) (int64, error)

	SetCookingEnabled(in *structs.CookingRequest) error

	Assets() ([]*structs.AssetSnapshot, error)
	Session() (*structs.SessionInfo, error)
	Tasks(q *structs.Query) ([]*structs.JournalEntry, error)
}

type Server interface {
	ServeForever(api API) error
	Close() error
}
