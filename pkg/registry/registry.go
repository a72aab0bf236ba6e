// Package registry holds the published outcomes of engine tasks, keyed by request id.
//
// The worker writes, the manager polls & removes. Every terminal TaskInfo is consumed
// exactly once: Poll removes it as it hands it over.
package registry

import (
	"sync"
	"time"

	"github.com/voidshard/cooker/pkg/structs"
)

// PollResult is the outcome of polling a request id.
type PollResult int

const (
	// PollPending means the task is queued or running; nothing to do yet.
	PollPending PollResult = iota

	// PollFinished means the task reached a terminal state. The info has been removed.
	PollFinished

	// PollFailed means the request id is unknown or belongs to a different kind of task.
	// Any info found has been removed. If that task is still running its later writes are
	// discarded.
	PollFailed
)

func (p PollResult) String() string {
	switch p {
	case PollPending:
		return "pending"
	case PollFinished:
		return "finished"
	default:
		return "failed"
	}
}

// for testing
var timeNow = func() int64 {
	return time.Now().UnixMilli()
}

// Registry maps request ids to TaskInfo.
type Registry struct {
	lock  sync.RWMutex
	infos map[string]*structs.TaskInfo

	// ids removed on a kind mismatch before their task finished
	dropped map[string]bool
}

func New() *Registry {
	return &Registry{
		infos:   map[string]*structs.TaskInfo{},
		dropped: map[string]bool{},
	}
}

// Set stores a copy of the given info, replacing any previous value.
func (r *Registry) Set(id string, info *structs.TaskInfo) {
	if info == nil {
		return
	}
	cp := *info
	cp.UpdatedAt = timeNow()

	r.lock.Lock()
	defer r.lock.Unlock()
	if r.dropped[id] {
		if structs.IsFinalTaskState(cp.State) {
			delete(r.dropped, id)
		}
		return
	}
	r.infos[id] = &cp
}

// Get returns a copy of the info for the given id.
func (r *Registry) Get(id string) (*structs.TaskInfo, bool) {
	r.lock.RLock()
	defer r.lock.RUnlock()
	info, ok := r.infos[id]
	if !ok {
		return nil, false
	}
	cp := *info
	return &cp, true
}

func (r *Registry) Remove(id string) {
	r.lock.Lock()
	defer r.lock.Unlock()
	delete(r.infos, id)
	delete(r.dropped, id)
}

func (r *Registry) Len() int {
	r.lock.RLock()
	defer r.lock.RUnlock()
	return len(r.infos)
}

// Clear drops everything, returning how many infos were removed.
func (r *Registry) Clear() int {
	r.lock.Lock()
	defer r.lock.Unlock()
	n := len(r.infos)
	r.infos = map[string]*structs.TaskInfo{}
	r.dropped = map[string]bool{}
	return n
}

// Poll looks up the given request id & expected kind.
//
// Callers must forget the request id unless PollPending is returned.
func (r *Registry) Poll(id string, kind structs.TaskKind) (*structs.TaskInfo, PollResult) {
	r.lock.Lock()
	defer r.lock.Unlock()

	info, ok := r.infos[id]
	if !ok {
		return nil, PollFailed
	}

	cp := *info
	if info.Kind != kind {
		delete(r.infos, id)
		if !structs.IsFinalTaskState(info.State) {
			r.dropped[id] = true
		}
		return &cp, PollFailed
	}
	if !structs.IsFinalTaskState(info.State) {
		return &cp, PollPending
	}

	delete(r.infos, id)
	return &cp, PollFinished
}
