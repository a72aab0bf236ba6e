package structs

const (
	queryLimitDefault = 1000
	queryLimitMax     = 10000
)

type Query struct {
	Limit  int `json:"limit,omitempty"`
	Offset int `json:"offset,omitempty"`

	// Filters
	ClientIDs  []string    `json:"client_ids,omitempty"`
	RequestIDs []string    `json:"request_ids,omitempty"`
	Kinds      []TaskKind  `json:"kinds,omitempty"`
	States     []TaskState `json:"states,omitempty"`

	// unix seconds, ignored if 0
	CreatedBefore int64 `json:"created_before,omitempty"`
	CreatedAfter  int64 `json:"created_after,omitempty"`
}

func (q *Query) Sanitize() {
	if q.Limit <= 0 {
		q.Limit = queryLimitDefault
	}
	if q.Limit > queryLimitMax {
		q.Limit = queryLimitMax
	}
	if q.Offset < 0 {
		q.Offset = 0
	}
	if len(q.ClientIDs) == 0 {
		q.ClientIDs = nil
	}
	if len(q.RequestIDs) == 0 {
		q.RequestIDs = nil
	}
	if len(q.Kinds) == 0 {
		q.Kinds = nil
	}
	if len(q.States) == 0 {
		q.States = nil
	}
	if q.CreatedBefore < 0 {
		q.CreatedBefore = 0
	}
	if q.CreatedAfter < 0 {
		q.CreatedAfter = 0
	}
}
