package structs

// TaskInfo is the published outcome of a Task, polled by request id.
type TaskInfo struct {
	// Result is the last engine result code seen.
	Result Result `json:"result"`

	// Kind must match the Task that created this info.
	Kind TaskKind `json:"kind"`

	// State of the task itself.
	State TaskState `json:"state"`

	// NodeID produced (or cooked) by the task. Valid only on Success or FinishedWithError.
	NodeID NodeID `json:"node_id"`

	// CookCount as read after a PostCookProcess task.
	CookCount int32 `json:"cook_count"`

	// StatusText is human readable progress.
	StatusText string `json:"status_text"`

	// UpdatedAt is when this info was last written, unix time in milliseconds.
	UpdatedAt int64 `json:"updated_at"`
}
