package structs

// JournalEntry records a terminal task outcome consumed by the manager.
type JournalEntry struct {
	ID         string    `json:"id"`
	ClientID   string    `json:"client_id"`
	ClientName string    `json:"client_name"`
	Kind       TaskKind  `json:"kind"`
	State      TaskState `json:"state"`
	Result     Result    `json:"result"`
	NodeID     NodeID    `json:"node_id"`
	StatusText string    `json:"status_text"`
	CreatedAt  int64     `json:"created_at"`
}
