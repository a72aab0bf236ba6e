package structs

// AssetSnapshot is a read-only copy of an asset client's scheduling state.
type AssetSnapshot struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	State      AssetState `json:"state"`
	RequestID  string     `json:"request_id,omitempty"`
	NodeID     NodeID     `json:"node_id"`
	CookCount  int32      `json:"cook_count"`
	LastTick   int64      `json:"last_tick"`
	Selected   bool       `json:"selected"`
	CookingOn  bool       `json:"cooking_enabled"`
	Suppressed bool       `json:"auto_updates_prevented"`
	LastCookOK bool       `json:"last_cook_success"`
}

// SessionInfo describes the engine session & manager toggles.
type SessionInfo struct {
	Status         SessionStatus `json:"status"`
	Valid          bool          `json:"valid"`
	CookingEnabled bool          `json:"cooking_enabled"`
	QueueLength    int           `json:"queue_length"`
	PendingTasks   int           `json:"pending_tasks"`
	Frame          int64         `json:"frame"`
}

// CookingRequest toggles the host-wide cooking flag.
type CookingRequest struct {
	Enabled bool `json:"enabled"`
}
