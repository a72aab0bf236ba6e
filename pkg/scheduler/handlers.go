package scheduler

import (
	"fmt"
	"time"

	"github.com/voidshard/cooker/pkg/engine"
	"github.com/voidshard/cooker/pkg/structs"
)

// finalState maps the engine's finished cook state to a task state.
func finalState(cs structs.CookState) (structs.TaskState, string) {
	switch cs {
	case structs.CookReady:
		return structs.TaskSuccess, "Finished"
	case structs.CookReadyWithCookErrors:
		return structs.TaskFinishedWithError, "Finished with errors"
	default:
		return structs.TaskFinishedWithFatalError, "Finished with fatal errors"
	}
}

// worse returns the more severe of two terminal task states.
func worse(a, b structs.TaskState) structs.TaskState {
	rank := func(s structs.TaskState) int {
		switch s {
		case structs.TaskSuccess:
			return 0
		case structs.TaskFinishedWithError:
			return 1
		default:
			return 2
		}
	}
	if rank(b) > rank(a) {
		return b
	}
	return a
}

// spin waits for the engine to finish cooking / loading, republishing a Working info
// every StatusInterval. It returns early (aborted=true) if the scheduler is stopping.
func (s *Scheduler) spin(eng engine.Engine, t *structs.Task, node structs.NodeID, verb string) (structs.CookState, structs.Result, bool) {
	var last time.Time
	for {
		cs, res := eng.CookState()
		if res != structs.ResultSuccess || structs.IsCookFinished(cs) {
			return cs, res, false
		}
		if s.stopping.Load() {
			return cs, res, true
		}

		if time.Since(last) >= s.opts.StatusInterval {
			last = time.Now()
			s.publish(t, &structs.TaskInfo{
				Result:     res,
				State:      structs.TaskWorking,
				NodeID:     node,
				StatusText: t.StatusText(fmt.Sprintf("%s: %s", verb, eng.StatusString())),
			})
		}

		time.Sleep(s.opts.SpinInterval)
	}
}

// instantiate loads the definition, creates the asset node & waits for its first cook.
func (s *Scheduler) instantiate(eng engine.Engine, t *structs.Task) {
	if !t.Definition.Valid() {
		s.fail(t, structs.ResultInvalidArgument, structs.InvalidNodeID, "Invalid asset definition")
		return
	}

	s.publish(t, &structs.TaskInfo{
		State:      structs.TaskWorking,
		NodeID:     structs.InvalidNodeID,
		StatusText: t.StatusText("Loading asset library"),
	})

	names, res := eng.LoadAssetLibrary(t.Definition)
	if res != structs.ResultSuccess {
		s.fail(t, res, structs.InvalidNodeID, fmt.Sprintf("Failed to load asset library: %s", res))
		return
	}
	if len(names) == 0 {
		s.fail(t, structs.ResultAssetInvalid, structs.InvalidNodeID, "Asset library holds no assets")
		return
	}

	name := names[0]
	for _, n := range names {
		if n == t.Definition.Name {
			name = n
			break
		}
	}

	node, res := eng.InstantiateAsset(name)
	if res != structs.ResultSuccess {
		s.fail(t, res, structs.InvalidNodeID, fmt.Sprintf("Failed to instantiate %s: %s", name, res))
		return
	}

	cs, res, aborted := s.spin(eng, t, node, "Instantiating")
	if aborted {
		s.abort(t, node)
		return
	}
	if res != structs.ResultSuccess {
		s.fail(t, res, node, fmt.Sprintf("Failed to instantiate %s: %s", name, res))
		return
	}

	state, status := finalState(cs)
	if state == structs.TaskFinishedWithFatalError {
		// the node is unusable; don't leak it (or the parent created with it)
		target := node
		parent, pres := eng.ParentNode(node)
		if pres == structs.ResultSuccess && parent.Valid() {
			target = parent
		}
		eng.DeleteNode(target)
		node = structs.InvalidNodeID
	}
	s.publish(t, &structs.TaskInfo{
		Result:     res,
		State:      state,
		NodeID:     node,
		StatusText: t.StatusText(status),
	})
}

// cook cooks the target node, then each extra node in order.
func (s *Scheduler) cook(eng engine.Engine, t *structs.Task) {
	if !t.NodeID.Valid() {
		s.fail(t, structs.ResultNodeInvalid, t.NodeID, "Invalid node")
		return
	}

	seen := map[structs.NodeID]bool{}
	state := structs.TaskSuccess
	status := "Finished"
	for _, n := range append([]structs.NodeID{t.NodeID}, t.ExtraNodeIDs...) {
		if !n.Valid() || seen[n] {
			continue
		}
		seen[n] = true

		res := eng.CookNode(n, t.CookOptions)
		if res != structs.ResultSuccess {
			s.fail(t, res, t.NodeID, fmt.Sprintf("Failed to cook: %s", res))
			return
		}

		cs, res, aborted := s.spin(eng, t, t.NodeID, "Cooking")
		if aborted {
			s.abort(t, t.NodeID)
			return
		}
		if res != structs.ResultSuccess {
			s.fail(t, res, t.NodeID, fmt.Sprintf("Failed to cook: %s", res))
			return
		}

		next, nextStatus := finalState(cs)
		if worse(state, next) != state {
			state, status = next, nextStatus
		}
		if state == structs.TaskFinishedWithFatalError {
			break
		}
	}

	count, _ := eng.CookCount(t.NodeID)
	s.publish(t, &structs.TaskInfo{
		Result:     structs.ResultSuccess,
		State:      state,
		NodeID:     t.NodeID,
		CookCount:  count,
		StatusText: t.StatusText(status),
	})
}

// delete removes the target node, or its parent if requested.
func (s *Scheduler) delete(eng engine.Engine, t *structs.Task) {
	if !t.NodeID.Valid() {
		s.fail(t, structs.ResultNodeInvalid, t.NodeID, "Invalid node")
		return
	}

	target := t.NodeID
	if t.DeleteParent {
		parent, res := eng.ParentNode(target)
		if res == structs.ResultSuccess && parent.Valid() {
			target = parent
		}
	}

	res := eng.DeleteNode(target)
	if res != structs.ResultSuccess {
		s.fail(t, res, t.NodeID, fmt.Sprintf("Failed to delete: %s", res))
		return
	}
	s.publish(t, &structs.TaskInfo{
		Result:     res,
		State:      structs.TaskSuccess,
		NodeID:     target,
		StatusText: t.StatusText("Deleted"),
	})
}

// postCook reads back the node's cook count.
func (s *Scheduler) postCook(eng engine.Engine, t *structs.Task) {
	if !t.NodeID.Valid() {
		s.fail(t, structs.ResultNodeInvalid, t.NodeID, "Invalid node")
		return
	}

	count, res := eng.CookCount(t.NodeID)
	if res != structs.ResultSuccess {
		s.fail(t, res, t.NodeID, fmt.Sprintf("Failed to read cook count: %s", res))
		return
	}
	s.publish(t, &structs.TaskInfo{
		Result:     res,
		State:      structs.TaskSuccess,
		NodeID:     t.NodeID,
		CookCount:  count,
		StatusText: t.StatusText("Post cook processed"),
	})
}
