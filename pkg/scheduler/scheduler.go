// Package scheduler runs engine tasks, one at a time & in FIFO order, on a single
// background goroutine.
package scheduler

import (
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/voidshard/cooker/internal/utils"
	"github.com/voidshard/cooker/pkg/engine"
	"github.com/voidshard/cooker/pkg/errors"
	"github.com/voidshard/cooker/pkg/structs"
)

// InfoStore is where the worker publishes task outcomes.
type InfoStore interface {
	Set(id string, info *structs.TaskInfo)
	Remove(id string)
}

// for testing
var timeNow = func() int64 {
	return time.Now().Unix()
}

// Scheduler owns the task queue & the worker goroutine.
type Scheduler struct {
	opts    *Options
	queue   *Queue
	session *engine.Session
	infos   InfoStore

	lock    sync.Mutex
	running bool
	stop    chan struct{}
	done    chan struct{}

	stopping atomic.Bool
}

func New(session *engine.Session, infos InfoStore, opts *Options) *Scheduler {
	if opts == nil {
		opts = &Options{}
	}
	opts.setDefaults()
	return &Scheduler{
		opts:    opts,
		queue:   NewQueue(opts.InitialQueueSize, opts.MaxQueueSize),
		session: session,
		infos:   infos,
	}
}

// Start launches the worker goroutine. Calling Start on a running scheduler is a no-op.
func (s *Scheduler) Start() {
	s.lock.Lock()
	defer s.lock.Unlock()
	if s.running {
		return
	}
	s.running = true
	s.stopping.Store(false)
	s.stop = make(chan struct{})
	s.done = make(chan struct{})
	go s.run(s.stop, s.done)
}

// Stop signals the worker & waits for it to exit. Tasks still queued are discarded and
// their infos removed.
func (s *Scheduler) Stop() {
	s.lock.Lock()
	if !s.running {
		s.lock.Unlock()
		return
	}
	s.running = false
	s.stopping.Store(true)
	close(s.stop)
	done := s.done
	s.lock.Unlock()

	<-done

	dropped := s.queue.Clear()
	for _, t := range dropped {
		s.infos.Remove(t.ID)
	}
	if len(dropped) > 0 {
		log.Println("[Scheduler] discarded", len(dropped), "queued tasks on shutdown")
	}
}

// Len returns the number of tasks waiting to be run.
func (s *Scheduler) Len() int {
	return s.queue.Len()
}

// Enqueue accepts a task for the worker, returning the request id it will be published under.
//
// A task is only accepted if there is a valid session. An accepted task gets a queued
// (None) info straight away so a poll before the worker reaches it is not mistaken for
// a lost task.
func (s *Scheduler) Enqueue(in *structs.Task) (string, error) {
	if in == nil {
		return "", fmt.Errorf("%w nil task", errors.ErrInvalidArg)
	}
	if !s.session.Valid() {
		return "", errors.ErrNoSession
	}

	t := *in
	t.ID = utils.NewRandomID()
	t.CreatedAt = timeNow()

	s.infos.Set(t.ID, &structs.TaskInfo{
		Kind:       t.Kind,
		State:      structs.TaskNone,
		NodeID:     t.NodeID,
		StatusText: t.StatusText("Queued"),
	})

	err := s.queue.Push(&t)
	if err != nil {
		s.infos.Remove(t.ID)
		return "", err
	}

	if s.opts.Debug {
		log.Println("[Scheduler] enqueued", t.Kind, t.ID, t.DisplayName)
	}
	return t.ID, nil
}

func (s *Scheduler) run(stop, done chan struct{}) {
	defer close(done)

	idle := time.NewTimer(s.opts.IdleInterval)
	defer idle.Stop()

	for {
		select {
		case <-stop:
			return
		default:
		}

		t := s.queue.Pop()
		if t == nil {
			idle.Reset(s.opts.IdleInterval)
			select {
			case <-stop:
				return
			case <-idle.C:
			}
			continue
		}

		s.process(t)
	}
}

// process runs one task to completion & publishes its terminal info.
func (s *Scheduler) process(t *structs.Task) {
	if s.opts.Debug {
		log.Println("[Scheduler] processing", t.Kind, t.ID, t.DisplayName)
	}

	eng, err := s.session.Engine()
	if err != nil {
		// the session went away after the task was accepted
		s.fail(t, structs.ResultInvalidSession, structs.InvalidNodeID, "No valid session")
		return
	}

	switch t.Kind {
	case structs.KindInstantiate:
		s.instantiate(eng, t)
	case structs.KindCook:
		s.cook(eng, t)
	case structs.KindDelete:
		s.delete(eng, t)
	case structs.KindPostCookProcess:
		s.postCook(eng, t)
	default:
		s.fail(t, structs.ResultInvalidArgument, structs.InvalidNodeID, fmt.Sprintf("Unknown task kind %q", t.Kind))
	}
}

func (s *Scheduler) publish(t *structs.Task, info *structs.TaskInfo) {
	info.Kind = t.Kind
	s.infos.Set(t.ID, info)
}

// fail publishes a fatal outcome. An invalid session result tears the session down.
func (s *Scheduler) fail(t *structs.Task, res structs.Result, node structs.NodeID, status string) {
	if res == structs.ResultInvalidSession {
		s.session.MarkLost()
	}
	log.Println("[Scheduler]", t.Kind, "failed", t.StatusText(status), res)
	s.publish(t, &structs.TaskInfo{
		Result:     res,
		State:      structs.TaskFinishedWithFatalError,
		NodeID:     node,
		StatusText: t.StatusText(status),
	})
}

// abort publishes an aborted outcome (we were told to stop mid-task).
func (s *Scheduler) abort(t *structs.Task, node structs.NodeID) {
	s.publish(t, &structs.TaskInfo{
		Result:     structs.ResultUserInterrupted,
		State:      structs.TaskAborted,
		NodeID:     node,
		StatusText: t.StatusText("Aborted"),
	})
}
