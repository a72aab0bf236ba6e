package engine

import (
	"fmt"
	"log"
	"sync"

	"github.com/voidshard/cooker/pkg/errors"
	"github.com/voidshard/cooker/pkg/structs"
)

// Session owns the single engine connection of the process.
//
// At most one session is valid at a time. The session is created on first use (Start)
// and destroyed on shutdown (Stop) or on a fatal engine error (MarkLost).
type Session struct {
	lock sync.RWMutex

	eng     Engine
	valid   bool
	started bool // at least one start has been attempted
	status  structs.SessionStatus
}

// NewSession returns a session holder for the given engine. Nothing is started.
func NewSession(eng Engine) *Session {
	return &Session{eng: eng, status: structs.SessionNotStarted}
}

// Start starts a session if one is not already running.
func (s *Session) Start() error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if s.valid {
		return errors.ErrSessionExists
	}
	s.started = true

	res := s.eng.StartSession()
	if res != structs.ResultSuccess {
		if structs.IsNoLicenseResult(res) {
			s.setStatus(structs.SessionNoLicense)
		} else {
			s.setStatus(structs.SessionFailed)
		}
		return fmt.Errorf("%w failed to start session: %s", errors.ErrNoSession, res)
	}

	s.valid = true
	s.setStatus(structs.SessionConnected)
	return nil
}

// Stop closes the session, if any.
func (s *Session) Stop() error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if !s.valid {
		return nil
	}
	s.valid = false
	s.setStatus(structs.SessionStopped)

	res := s.eng.CloseSession()
	if res != structs.ResultSuccess {
		return fmt.Errorf("failed to close session: %s", res)
	}
	return nil
}

// MarkLost invalidates the session after the engine reported it is gone.
func (s *Session) MarkLost() {
	s.lock.Lock()
	defer s.lock.Unlock()

	if !s.valid {
		return
	}
	s.valid = false
	s.setStatus(structs.SessionLost)

	// best effort, the engine already told us the session is bad
	s.eng.CloseSession()
	log.Println("[Session] engine session lost")
}

// Valid returns if there is a usable session.
func (s *Session) Valid() bool {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.valid
}

// Started returns if a session start has ever been attempted.
func (s *Session) Started() bool {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.started
}

// Engine returns the engine if the session is valid.
func (s *Session) Engine() (Engine, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	if !s.valid {
		return nil, errors.ErrNoSession
	}
	return s.eng, nil
}

func (s *Session) Status() structs.SessionStatus {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.status
}

// SetStatus updates the session status, honouring a few precedence rules:
//   - until a session has been attempted the status is always NotStarted
//   - Stopped only replaces Connected
//   - Failed does not hide NoLicense or Lost
func (s *Session) SetStatus(status structs.SessionStatus) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.setStatus(status)
}

func (s *Session) setStatus(status structs.SessionStatus) {
	if !s.started {
		s.status = structs.SessionNotStarted
		return
	}

	switch status {
	case structs.SessionStopped:
		if s.status != structs.SessionConnected {
			return
		}
	case structs.SessionFailed:
		if s.status == structs.SessionNoLicense || s.status == structs.SessionLost {
			return
		}
	}
	s.status = status
}
