// Package sim is an in-memory engine that pretends to cook.
//
// It is used to drive the manager without a real engine installed, both from the CLI and
// in tests. Cooks take a configurable wall time & outcomes can be forced per asset.
package sim

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/voidshard/cooker/pkg/structs"
)

const (
	rootNodeName = "obj"
)

// Options for the simulated engine.
type Options struct {
	// CookTime is how long each cook (or instantiation) takes.
	CookTime time.Duration
}

type node struct {
	name   string
	parent structs.NodeID
	cooks  int32
}

type cook struct {
	node   structs.NodeID
	verb   string
	done   time.Time
	result structs.CookState
}

// Engine is a simulated engine. It is safe for concurrent use.
type Engine struct {
	lock sync.Mutex
	opts *Options

	connected bool
	nextID    structs.NodeID
	nodes     map[structs.NodeID]*node
	current   *cook
	last      structs.CookState

	startResult        structs.Result
	loadResults        map[string]structs.Result
	instantiateResults map[string]structs.Result
	cookResults        map[string]structs.CookState
}

// New returns a simulated engine.
func New(opts *Options) *Engine {
	if opts == nil {
		opts = &Options{}
	}
	return &Engine{
		opts:               opts,
		nodes:              map[structs.NodeID]*node{},
		last:               structs.CookReady,
		loadResults:        map[string]structs.Result{},
		instantiateResults: map[string]structs.Result{},
		cookResults:        map[string]structs.CookState{},
	}
}

// SetStartResult forces the result of the next StartSession calls.
func (e *Engine) SetStartResult(r structs.Result) {
	e.lock.Lock()
	defer e.lock.Unlock()
	e.startResult = r
}

// SetLoadResult forces the result of loading the library at path.
func (e *Engine) SetLoadResult(path string, r structs.Result) {
	e.lock.Lock()
	defer e.lock.Unlock()
	e.loadResults[path] = r
}

// SetInstantiateResult forces the result of instantiating the named asset.
func (e *Engine) SetInstantiateResult(name string, r structs.Result) {
	e.lock.Lock()
	defer e.lock.Unlock()
	e.instantiateResults[name] = r
}

// SetCookResult forces the final cook state of nodes of the named asset.
func (e *Engine) SetCookResult(name string, s structs.CookState) {
	e.lock.Lock()
	defer e.lock.Unlock()
	e.cookResults[name] = s
}

// Touch bumps a node's cook count, as if it was edited & cooked directly in the engine.
func (e *Engine) Touch(id structs.NodeID) error {
	e.lock.Lock()
	defer e.lock.Unlock()
	n, ok := e.nodes[id]
	if !ok {
		return fmt.Errorf("node %d not found", id)
	}
	n.cooks++
	return nil
}

// Disconnect drops the session without telling anyone; later calls return invalid session.
func (e *Engine) Disconnect() {
	e.lock.Lock()
	defer e.lock.Unlock()
	e.connected = false
	e.current = nil
}

// NodeCount returns the number of live nodes.
func (e *Engine) NodeCount() int {
	e.lock.Lock()
	defer e.lock.Unlock()
	return len(e.nodes)
}

func (e *Engine) StartSession() structs.Result {
	e.lock.Lock()
	defer e.lock.Unlock()
	if e.startResult != structs.ResultSuccess {
		return e.startResult
	}
	if e.connected {
		return structs.ResultAlreadyInitialized
	}
	e.connected = true
	return structs.ResultSuccess
}

func (e *Engine) CloseSession() structs.Result {
	e.lock.Lock()
	defer e.lock.Unlock()
	if !e.connected {
		return structs.ResultInvalidSession
	}
	e.connected = false
	e.current = nil
	e.nodes = map[structs.NodeID]*node{}
	return structs.ResultSuccess
}

func (e *Engine) LoadAssetLibrary(def *structs.Definition) ([]string, structs.Result) {
	e.lock.Lock()
	defer e.lock.Unlock()
	if !e.connected {
		return nil, structs.ResultInvalidSession
	}
	if !def.Valid() {
		return nil, structs.ResultInvalidArgument
	}
	if r, ok := e.loadResults[def.Path]; ok && r != structs.ResultSuccess {
		return nil, r
	}
	if def.Name != "" {
		return []string{def.Name}, structs.ResultSuccess
	}
	base := filepath.Base(def.Path)
	return []string{strings.TrimSuffix(base, filepath.Ext(base))}, structs.ResultSuccess
}

func (e *Engine) InstantiateAsset(name string) (structs.NodeID, structs.Result) {
	e.lock.Lock()
	defer e.lock.Unlock()
	if !e.connected {
		return structs.InvalidNodeID, structs.ResultInvalidSession
	}
	if r, ok := e.instantiateResults[name]; ok && r != structs.ResultSuccess {
		return structs.InvalidNodeID, r
	}

	parent := e.addNode(rootNodeName, structs.InvalidNodeID)
	id := e.addNode(name, parent)
	e.startCook(id, "Loading")
	return id, structs.ResultSuccess
}

func (e *Engine) CookNode(id structs.NodeID, opts structs.CookOptions) structs.Result {
	e.lock.Lock()
	defer e.lock.Unlock()
	if !e.connected {
		return structs.ResultInvalidSession
	}
	if _, ok := e.nodes[id]; !ok {
		return structs.ResultNodeInvalid
	}
	e.startCook(id, "Cooking")
	return structs.ResultSuccess
}

func (e *Engine) CookState() (structs.CookState, structs.Result) {
	e.lock.Lock()
	defer e.lock.Unlock()
	if !e.connected {
		return structs.CookReadyWithFatalErrors, structs.ResultInvalidSession
	}
	if e.current == nil {
		return e.last, structs.ResultSuccess
	}
	if time.Now().Before(e.current.done) {
		if e.current.verb == "Loading" {
			return structs.CookLoading, structs.ResultSuccess
		}
		return structs.CookCooking, structs.ResultSuccess
	}

	n, ok := e.nodes[e.current.node]
	if ok && e.current.result != structs.CookReadyWithFatalErrors {
		n.cooks++
	}
	e.last = e.current.result
	e.current = nil
	return e.last, structs.ResultSuccess
}

func (e *Engine) StatusString() string {
	e.lock.Lock()
	defer e.lock.Unlock()
	if e.current == nil {
		return e.last.String()
	}
	n, ok := e.nodes[e.current.node]
	if !ok {
		return e.current.verb
	}
	return fmt.Sprintf("%s %s", e.current.verb, n.name)
}

func (e *Engine) DeleteNode(id structs.NodeID) structs.Result {
	e.lock.Lock()
	defer e.lock.Unlock()
	if !e.connected {
		return structs.ResultInvalidSession
	}
	if _, ok := e.nodes[id]; !ok {
		return structs.ResultNodeInvalid
	}
	delete(e.nodes, id)
	for cid, n := range e.nodes {
		if n.parent == id {
			delete(e.nodes, cid)
		}
	}
	return structs.ResultSuccess
}

func (e *Engine) ParentNode(id structs.NodeID) (structs.NodeID, structs.Result) {
	e.lock.Lock()
	defer e.lock.Unlock()
	if !e.connected {
		return structs.InvalidNodeID, structs.ResultInvalidSession
	}
	n, ok := e.nodes[id]
	if !ok {
		return structs.InvalidNodeID, structs.ResultNodeInvalid
	}
	return n.parent, structs.ResultSuccess
}

func (e *Engine) CookCount(id structs.NodeID) (int32, structs.Result) {
	e.lock.Lock()
	defer e.lock.Unlock()
	if !e.connected {
		return -1, structs.ResultInvalidSession
	}
	n, ok := e.nodes[id]
	if !ok {
		return -1, structs.ResultNodeInvalid
	}
	return n.cooks, structs.ResultSuccess
}

// addNode expects the lock to be held
func (e *Engine) addNode(name string, parent structs.NodeID) structs.NodeID {
	id := e.nextID
	e.nextID++
	e.nodes[id] = &node{name: name, parent: parent}
	return id
}

// startCook expects the lock to be held
func (e *Engine) startCook(id structs.NodeID, verb string) {
	result := structs.CookReady
	if n, ok := e.nodes[id]; ok {
		if r, ok := e.cookResults[n.name]; ok {
			result = r
		}
	}
	e.current = &cook{
		node:   id,
		verb:   verb,
		done:   time.Now().Add(e.opts.CookTime),
		result: result,
	}
}
