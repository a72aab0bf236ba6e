package api

import (
	"fmt"
	"log"

	"github.com/voidshard/cooker/internal/core"
	"github.com/voidshard/cooker/pkg/asset"
	"github.com/voidshard/cooker/pkg/engine"
	"github.com/voidshard/cooker/pkg/errors"
	"github.com/voidshard/cooker/pkg/journal"
	"github.com/voidshard/cooker/pkg/notify"
	"github.com/voidshard/cooker/pkg/registry"
	"github.com/voidshard/cooker/pkg/scheduler"
	"github.com/voidshard/cooker/pkg/structs"
)

// Service wires the engine session, task scheduler, info registry & frame manager.
//
// The host calls Tick once per frame; everything else may be called from any goroutine.
type Service struct {
	opts    *Options
	session *engine.Session
	infos   *registry.Registry
	sched   *scheduler.Scheduler
	mgr     *core.Manager
	jnl     journal.Journal
}

// New returns a Service driving the given engine. The collaborators, notifier & journal
// are optional.
func New(eng engine.Engine, collab asset.Collaborators, note notify.Notifier, jnl journal.Journal, opts *Options) *Service {
	if opts == nil {
		opts = OptionsDefault()
	}

	session := engine.NewSession(eng)
	infos := registry.New()
	sched := scheduler.New(session, infos, &scheduler.Options{
		InitialQueueSize: opts.InitialQueueSize,
		MaxQueueSize:     opts.MaxQueueSize,
		IdleInterval:     opts.IdleInterval,
		SpinInterval:     opts.SpinInterval,
		StatusInterval:   opts.StatusInterval,
		Debug:            opts.Debug,
	})
	mgr := core.NewManager(session, sched, infos, collab, note, jnl, &core.Options{
		CookTimeLimit:        opts.CookTimeLimit,
		AutoStartSession:     opts.AutoStartSession,
		CookingEnabled:       opts.CookingEnabled,
		SessionSync:          opts.SessionSync,
		SyncWithEngineCook:   opts.SyncWithEngineCook,
		DisplayNotifications: opts.DisplayNotifications,
		Debug:                opts.Debug,
	})

	sched.Start()

	return &Service{
		opts:    opts,
		session: session,
		infos:   infos,
		sched:   sched,
		mgr:     mgr,
		jnl:     jnl,
	}
}

// Tick runs one host frame.
func (s *Service) Tick() {
	s.mgr.Tick()
}

// Idle returns if there is no work in flight.
func (s *Service) Idle() bool {
	return s.mgr.Idle() && s.sched.Len() == 0
}

// StartSession starts an engine session (if one isn't running).
func (s *Service) StartSession() error {
	return s.session.Start()
}

// Register starts tracking an asset client.
func (s *Service) Register(c *asset.Client) error {
	return s.mgr.Register(c)
}

// Unregister stops tracking an asset client.
func (s *Service) Unregister(id string) error {
	return s.mgr.Unregister(id)
}

// Update calls fn with the given client, safely with respect to the frame loop.
func (s *Service) Update(id string, fn func(c *asset.Client)) error {
	return s.mgr.Update(id, fn)
}

// DeleteNode schedules an engine node for deletion.
func (s *Service) DeleteNode(node structs.NodeID, parent bool) error {
	return s.mgr.DeleteNode(node, parent)
}

func (s *Service) Recook(in []*structs.AssetRef) (int64, error) {
	refs, err := validateRefs(in)
	if err != nil {
		return 0, err
	}
	return s.mgr.Recook(refs)
}

func (s *Service) Rebuild(in []*structs.AssetRef) (int64, error) {
	refs, err := validateRefs(in)
	if err != nil {
		return 0, err
	}
	return s.mgr.Rebuild(refs)
}

func (s *Service) Delete(in []*structs.AssetRef) (int64, error) {
	refs, err := validateRefs(in)
	if err != nil {
		return 0, err
	}
	return s.mgr.Delete(refs)
}

func (s *Service) SetCookingEnabled(in *structs.CookingRequest) error {
	if in == nil {
		return fmt.Errorf("%w nil request", errors.ErrInvalidArg)
	}
	s.mgr.SetCookingEnabled(in.Enabled)
	return nil
}

func (s *Service) Assets() ([]*structs.AssetSnapshot, error) {
	return s.mgr.Snapshots(), nil
}

func (s *Service) Session() (*structs.SessionInfo, error) {
	return s.mgr.SessionInfo(), nil
}

// Tasks returns journaled task outcomes. Requires a journal.
func (s *Service) Tasks(q *structs.Query) ([]*structs.JournalEntry, error) {
	if s.jnl == nil {
		return nil, fmt.Errorf("%w no journal configured", errors.ErrNotSupported)
	}
	err := validateQuery(q)
	if err != nil {
		return nil, err
	}
	return s.jnl.Entries(q)
}

// Close stops the worker, the session & the journal. Outstanding infos are dropped.
func (s *Service) Close() error {
	s.sched.Stop()

	var final error
	err := s.session.Stop()
	if err != nil {
		final = err
	}

	n := s.infos.Clear()
	if n > 0 && s.opts.Debug {
		log.Println("[Service] dropped", n, "task infos on close")
	}

	if s.jnl != nil {
		err = s.jnl.Close()
		if err != nil {
			if final == nil {
				final = err
			} else {
				final = fmt.Errorf("%w %v", final, err)
			}
		}
	}
	return final
}
