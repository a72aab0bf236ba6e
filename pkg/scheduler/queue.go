package scheduler

import (
	"fmt"
	"sync"

	"github.com/voidshard/cooker/pkg/errors"
	"github.com/voidshard/cooker/pkg/structs"
)

const (
	defInitialQueueSize = 16
)

// Queue is a FIFO circular buffer of tasks guarded by a mutex.
//
// The buffer capacity is always a power of two. When full it doubles, unless that would
// exceed max (if set), in which case Push fails with ErrQueueFull.
type Queue struct {
	lock sync.Mutex

	buf  []*structs.Task
	read int // index of the next task to pop
	size int // number of queued tasks
	max  int
}

// NewQueue returns a queue with room for at least initial tasks. If max > 0 the queue
// will never hold more than max tasks.
func NewQueue(initial, max int) *Queue {
	if initial <= 0 {
		initial = defInitialQueueSize
	}
	if max > 0 && initial > max {
		initial = max
	}
	return &Queue{buf: make([]*structs.Task, nextPowerOfTwo(initial)), max: max}
}

// Push appends a task. Tasks are never dropped: either the task is queued or an error
// is returned.
func (q *Queue) Push(t *structs.Task) error {
	if t == nil {
		return fmt.Errorf("%w nil task", errors.ErrInvalidArg)
	}

	q.lock.Lock()
	defer q.lock.Unlock()

	if q.max > 0 && q.size >= q.max {
		return fmt.Errorf("%w holding %d tasks", errors.ErrQueueFull, q.size)
	}
	if q.size == len(q.buf) {
		q.grow()
	}

	q.buf[(q.read+q.size)&(len(q.buf)-1)] = t
	q.size++
	return nil
}

// Pop removes & returns the oldest task, or nil if the queue is empty.
func (q *Queue) Pop() *structs.Task {
	q.lock.Lock()
	defer q.lock.Unlock()

	if q.size == 0 {
		return nil
	}
	t := q.buf[q.read]
	q.buf[q.read] = nil
	q.read = (q.read + 1) & (len(q.buf) - 1)
	q.size--
	return t
}

func (q *Queue) Len() int {
	q.lock.Lock()
	defer q.lock.Unlock()
	return q.size
}

func (q *Queue) Cap() int {
	q.lock.Lock()
	defer q.lock.Unlock()
	return len(q.buf)
}

// Clear discards all queued tasks, returning them in FIFO order.
func (q *Queue) Clear() []*structs.Task {
	q.lock.Lock()
	defer q.lock.Unlock()

	out := make([]*structs.Task, 0, q.size)
	for i := 0; i < q.size; i++ {
		idx := (q.read + i) & (len(q.buf) - 1)
		out = append(out, q.buf[idx])
		q.buf[idx] = nil
	}
	q.read = 0
	q.size = 0
	return out
}

// grow doubles the buffer, unwrapping the ring so read starts at 0. Expects the lock held.
func (q *Queue) grow() {
	buf := make([]*structs.Task, len(q.buf)*2)
	n := copy(buf, q.buf[q.read:])
	copy(buf[n:], q.buf[:q.read])
	q.buf = buf
	q.read = 0
}

func nextPowerOfTwo(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
