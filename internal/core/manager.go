// Package core decides, once per host frame, which asset clients are advanced & how far.
package core

import (
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/voidshard/cooker/pkg/asset"
	"github.com/voidshard/cooker/pkg/engine"
	"github.com/voidshard/cooker/pkg/errors"
	"github.com/voidshard/cooker/pkg/journal"
	"github.com/voidshard/cooker/pkg/notify"
	"github.com/voidshard/cooker/pkg/registry"
	"github.com/voidshard/cooker/pkg/structs"
)

// Enqueuer accepts tasks for the worker.
type Enqueuer interface {
	Enqueue(t *structs.Task) (string, error)
	Len() int
}

// Poller hands over task outcomes.
type Poller interface {
	Poll(id string, kind structs.TaskKind) (*structs.TaskInfo, registry.PollResult)
	Len() int
}

// detached is a request no client is waiting on anymore. It is drained at the end of
// each frame so its info never lingers in the registry.
type detached struct {
	kind       structs.TaskKind
	clientID   string
	clientName string
}

// pendingDelete is an engine node waiting for its Delete task to be accepted.
type pendingDelete struct {
	node   structs.NodeID
	parent bool
}

// Manager owns the registered asset clients & drives their state machines.
//
// All methods are safe to call from any goroutine; a frame (Tick) holds the lock
// for its duration.
type Manager struct {
	opts    *Options
	session *engine.Session
	tasks   Enqueuer
	infos   Poller
	collab  asset.Collaborators
	note    notify.Notifier
	jnl     journal.Journal

	lock           sync.Mutex
	clients        []*asset.Client
	current        int
	frame          int64
	cookingEnabled bool
	pendingDeletes []pendingDelete
	detached       map[string]*detached
	progress       map[string]string
	sessionStatus  structs.SessionStatus

	now func() time.Time
}

// NewManager returns a manager. The notifier and journal may be nil.
func NewManager(
	session *engine.Session,
	tasks Enqueuer,
	infos Poller,
	collab asset.Collaborators,
	note notify.Notifier,
	jnl journal.Journal,
	opts *Options,
) *Manager {
	if opts == nil {
		opts = &Options{CookingEnabled: true}
	}
	if collab == nil {
		collab = asset.NopCollaborators{}
	}
	return &Manager{
		opts:           opts,
		session:        session,
		tasks:          tasks,
		infos:          infos,
		collab:         collab,
		note:           note,
		jnl:            jnl,
		cookingEnabled: opts.CookingEnabled,
		detached:       map[string]*detached{},
		progress:       map[string]string{},
		sessionStatus:  session.Status(),
		now:            time.Now,
	}
}

// Tick runs one frame.
func (m *Manager) Tick() {
	m.lock.Lock()
	defer m.lock.Unlock()

	start := m.now()
	m.frame++

	m.autoStartSession()

	work := m.workingSet()
	sort.SliceStable(work, func(i, j int) bool {
		return work[i].LastTick.Before(work[j].LastTick)
	})

	processed := 0
	for _, c := range work {
		if m.overBudget(start) {
			if m.opts.Debug {
				log.Println("[Manager] frame", m.frame, "budget spent,", len(work)-processed, "clients deferred")
			}
			break
		}
		m.advance(c, start)
		processed++
	}

	m.endOfFrame()
}

// advance steps a client's state machine until it settles, leaves the fast-forward
// states or the budget runs out.
func (m *Manager) advance(c *asset.Client, start time.Time) {
	for {
		prev := c.State
		next, more := m.process(c)
		c.State = next
		c.LastTick = m.now()

		if m.opts.Debug && prev != next {
			log.Println("[Manager]", c.Name, prev, "->", next)
		}
		if !more || next == prev || !structs.IsFastForward(next) || m.overBudget(start) {
			return
		}
	}
}

func (m *Manager) overBudget(start time.Time) bool {
	if m.opts.CookTimeLimit <= 0 {
		return false
	}
	return m.now().Sub(start) > m.opts.CookTimeLimit
}

// workingSet picks the clients to process this frame, unregistering dead ones.
func (m *Manager) workingSet() []*asset.Client {
	if len(m.clients) == 0 {
		return nil
	}
	if m.current >= len(m.clients) {
		m.current = 0
	}
	rr := m.clients[m.current]
	rrGone := false

	work := []*asset.Client{}
	for _, c := range append([]*asset.Client{}, m.clients...) {
		if !c.IsValid() || (c.State == structs.ProcessTemplate && c.Owner != nil && !c.HasOpenEditor()) {
			m.unregister(c)
			rrGone = rrGone || c == rr
			continue
		}
		if c.State == structs.Deleting {
			continue
		}
		if c.InRestrictedPlayback() && !c.AllowRestrictedPlayback {
			continue
		}
		if !c.IsFullyLoaded() && !c.AdvanceLoading() {
			continue
		}

		if c == rr {
			c.LastTick = time.Time{}
			work = append(work, c)
		} else if c.IsSelected() || structs.IsActive(c.State) {
			work = append(work, c)
		}
	}

	// current already points at the client that took rr's slot
	if len(m.clients) > 0 && !rrGone {
		m.current = (m.current + 1) % len(m.clients)
	}
	return work
}

// autoStartSession makes one attempt to start the first session when a client needs it.
func (m *Manager) autoStartSession() {
	if !m.opts.AutoStartSession || m.session.Started() {
		return
	}
	need := false
	for _, c := range m.clients {
		if structs.RequiresSessionStart(c.State) {
			need = true
			break
		}
	}
	if !need {
		return
	}
	err := m.session.Start()
	if err != nil {
		log.Println("[Manager] failed to start session:", err)
	}
	m.checkSession()
}

// checkSession raises a notification when the session status changes.
func (m *Manager) checkSession() {
	status := m.session.Status()
	if status == m.sessionStatus {
		return
	}
	m.sessionStatus = status
	m.notify(&structs.Notification{
		Kind:    structs.NotifySession,
		Text:    fmt.Sprintf("Session status: %s", status),
		Session: status,
	})
}

// endOfFrame always runs, whatever the budget.
func (m *Manager) endOfFrame() {
	// pending deletes, oldest first. Stop at the first failure so order is kept.
	for len(m.pendingDeletes) > 0 {
		pd := m.pendingDeletes[0]
		id, err := m.tasks.Enqueue(&structs.Task{Kind: structs.KindDelete, NodeID: pd.node, DeleteParent: pd.parent})
		if err != nil {
			if m.opts.Debug {
				log.Println("[Manager] pending delete of node", pd.node, "deferred:", err)
			}
			break
		}
		m.detached[id] = &detached{kind: structs.KindDelete}
		m.pendingDeletes = m.pendingDeletes[1:]
	}

	for id, d := range m.detached {
		info, res := m.infos.Poll(id, d.kind)
		if res == registry.PollPending {
			continue
		}
		delete(m.detached, id)
		delete(m.progress, id)
		if res == registry.PollFinished {
			m.record(id, d.clientID, d.clientName, info)
		}
	}

	m.checkSession()
}

// detach hands the client's outstanding request (if any) to the end of frame drain.
func (m *Manager) detach(c *asset.Client) {
	id, kind := c.Forget()
	if id == "" {
		return
	}
	m.detached[id] = &detached{kind: kind, clientID: c.ID, clientName: c.Name}
}

func (m *Manager) unregister(c *asset.Client) {
	for i, other := range m.clients {
		if other != c {
			continue
		}
		m.detach(c)
		m.clients = append(m.clients[:i], m.clients[i+1:]...)
		if m.current > i {
			m.current--
		}
		if m.opts.Debug {
			log.Println("[Manager] unregistered", c.Name, c.ID)
		}
		return
	}
}

func (m *Manager) find(id string) *asset.Client {
	for _, c := range m.clients {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// enqueue sends a task for the client, making it the client's outstanding request.
func (m *Manager) enqueue(c *asset.Client, t *structs.Task) error {
	t.ClientID = c.ID
	if t.DisplayName == "" {
		t.DisplayName = c.Name
	}
	id, err := m.tasks.Enqueue(t)
	if err != nil {
		return err
	}
	c.RequestID = id
	c.RequestKind = t.Kind
	return nil
}

// enqueueDetached sends a task no client waits on.
func (m *Manager) enqueueDetached(c *asset.Client, t *structs.Task) error {
	t.ClientID = c.ID
	t.DisplayName = c.Name
	id, err := m.tasks.Enqueue(t)
	if err != nil {
		return err
	}
	m.detached[id] = &detached{kind: t.Kind, clientID: c.ID, clientName: c.Name}
	return nil
}

// poll checks the client's outstanding request, which must be of the given kind.
// Unless pending, the request is forgotten & the outcome journaled.
func (m *Manager) poll(c *asset.Client, kind structs.TaskKind) (*structs.TaskInfo, registry.PollResult) {
	id := c.RequestID
	if id == "" {
		return nil, registry.PollFailed
	}

	info, res := m.infos.Poll(id, kind)
	switch res {
	case registry.PollPending:
		if m.opts.DisplayNotifications && info != nil && m.progress[id] != info.StatusText {
			m.progress[id] = info.StatusText
			m.notify(&structs.Notification{
				Kind:       structs.NotifyProgress,
				ClientID:   c.ID,
				ClientName: c.Name,
				Text:       info.StatusText,
			})
		}
		return info, res
	case registry.PollFinished:
		m.record(id, c.ID, c.Name, info)
		if m.opts.DisplayNotifications {
			m.notify(&structs.Notification{
				Kind:       structs.NotifyProgress,
				ClientID:   c.ID,
				ClientName: c.Name,
				Text:       info.StatusText,
				Result:     info.Result,
				Final:      true,
			})
		}
	default:
		log.Println("[Manager]", c.Name, "lost track of", kind, "task", id)
	}

	delete(m.progress, id)
	c.Forget()
	return info, res
}

func (m *Manager) record(id, clientID, clientName string, info *structs.TaskInfo) {
	if m.jnl == nil || info == nil {
		return
	}
	m.jnl.Record(&structs.JournalEntry{
		ID:         id,
		ClientID:   clientID,
		ClientName: clientName,
		Kind:       info.Kind,
		State:      info.State,
		Result:     info.Result,
		NodeID:     info.NodeID,
		StatusText: info.StatusText,
		CreatedAt:  m.now().Unix(),
	})
}

func (m *Manager) notify(n *structs.Notification) {
	if m.note == nil {
		return
	}
	n.CreatedAt = m.now().Unix()
	err := m.note.Notify(n)
	if err != nil {
		log.Println("[Manager] notify:", err)
	}
}

// Register adds a client.
func (m *Manager) Register(c *asset.Client) error {
	if c == nil || c.ID == "" {
		return fmt.Errorf("%w client requires an id", errors.ErrInvalidArg)
	}
	m.lock.Lock()
	defer m.lock.Unlock()
	if m.find(c.ID) != nil {
		return fmt.Errorf("%w client %s already registered", errors.ErrInvalidArg, c.ID)
	}
	m.clients = append(m.clients, c)
	return nil
}

// Unregister removes a client. Its outstanding request (if any) is drained later.
func (m *Manager) Unregister(id string) error {
	m.lock.Lock()
	defer m.lock.Unlock()
	c := m.find(id)
	if c == nil {
		return fmt.Errorf("%w client %s", errors.ErrNotFound, id)
	}
	m.unregister(c)
	return nil
}

// Update calls fn with the client under the manager's lock.
func (m *Manager) Update(id string, fn func(c *asset.Client)) error {
	m.lock.Lock()
	defer m.lock.Unlock()
	c := m.find(id)
	if c == nil {
		return fmt.Errorf("%w client %s", errors.ErrNotFound, id)
	}
	fn(c)
	return nil
}

// Recook requests a cook of the given clients.
func (m *Manager) Recook(in []*structs.AssetRef) (int64, error) {
	return m.each(in, (*asset.Client).Recook)
}

// Rebuild requests the given clients be deleted & re-instantiated.
func (m *Manager) Rebuild(in []*structs.AssetRef) (int64, error) {
	return m.each(in, (*asset.Client).Rebuild)
}

// Delete requests the nodes of the given clients be deleted.
func (m *Manager) Delete(in []*structs.AssetRef) (int64, error) {
	return m.each(in, (*asset.Client).MarkForDelete)
}

// each applies fn to every referenced client, returning how many were found.
func (m *Manager) each(in []*structs.AssetRef, fn func(c *asset.Client)) (int64, error) {
	m.lock.Lock()
	defer m.lock.Unlock()

	count := int64(0)
	for _, ref := range in {
		if ref == nil {
			continue
		}
		c := m.find(ref.ID)
		if c == nil {
			continue
		}
		fn(c)
		count++
	}
	return count, nil
}

// DeleteNode schedules an engine node for deletion at the end of a frame. If parent is
// set the node's parent is deleted instead (SOP-style assets).
func (m *Manager) DeleteNode(node structs.NodeID, parent bool) error {
	if !node.Valid() {
		return fmt.Errorf("%w node %d", errors.ErrInvalidNode, node)
	}
	m.lock.Lock()
	defer m.lock.Unlock()
	m.pendingDeletes = append(m.pendingDeletes, pendingDelete{node: node, parent: parent})
	return nil
}

// SetCookingEnabled toggles cooking host-wide.
func (m *Manager) SetCookingEnabled(enabled bool) {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.cookingEnabled = enabled
}

func (m *Manager) CookingEnabled() bool {
	m.lock.Lock()
	defer m.lock.Unlock()
	return m.cookingEnabled
}

// Snapshots returns the state of every registered client, in registration order.
func (m *Manager) Snapshots() []*structs.AssetSnapshot {
	m.lock.Lock()
	defer m.lock.Unlock()
	out := make([]*structs.AssetSnapshot, 0, len(m.clients))
	for _, c := range m.clients {
		out = append(out, c.Snapshot(m.cookingEnabled))
	}
	return out
}

// SessionInfo returns the session status & manager counters.
func (m *Manager) SessionInfo() *structs.SessionInfo {
	m.lock.Lock()
	defer m.lock.Unlock()
	return &structs.SessionInfo{
		Status:         m.session.Status(),
		Valid:          m.session.Valid(),
		CookingEnabled: m.cookingEnabled,
		QueueLength:    m.tasks.Len(),
		PendingTasks:   m.infos.Len(),
		Frame:          m.frame,
	}
}

// Idle returns if no client is mid-lifecycle & nothing is waiting to be drained.
func (m *Manager) Idle() bool {
	m.lock.Lock()
	defer m.lock.Unlock()
	if len(m.pendingDeletes) > 0 || len(m.detached) > 0 {
		return false
	}
	for _, c := range m.clients {
		if c.RequestID != "" {
			return false
		}
		if structs.IsActive(c.State) && c.State != structs.Deleting && c.State != structs.ProcessTemplate {
			return false
		}
	}
	return true
}
