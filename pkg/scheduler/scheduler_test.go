package scheduler

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/voidshard/cooker/internal/mocks/pkg/engine_mock"
	"github.com/voidshard/cooker/internal/utils"
	"github.com/voidshard/cooker/pkg/engine"
	"github.com/voidshard/cooker/pkg/engine/sim"
	"github.com/voidshard/cooker/pkg/errors"
	"github.com/voidshard/cooker/pkg/registry"
	"github.com/voidshard/cooker/pkg/structs"
)

func init() {
	timeNow = func() int64 { return 1000 }
}

// recorder keeps the order in which tasks reached a terminal state
type recorder struct {
	*registry.Registry
	lock  sync.Mutex
	order []string
}

func (r *recorder) Set(id string, info *structs.TaskInfo) {
	if structs.IsFinalTaskState(info.State) {
		r.lock.Lock()
		r.order = append(r.order, id)
		r.lock.Unlock()
	}
	r.Registry.Set(id, info)
}

func (r *recorder) Order() []string {
	r.lock.Lock()
	defer r.lock.Unlock()
	return append([]string{}, r.order...)
}

func startedSession(t *testing.T, eng *engine_mock.MockEngine) *engine.Session {
	eng.EXPECT().StartSession().Return(structs.ResultSuccess)
	s := engine.NewSession(eng)
	assert.Nil(t, s.Start())
	return s
}

func TestEnqueueNoSession(t *testing.T) {
	eng := engine_mock.NewMockEngine(gomock.NewController(t))
	reg := registry.New()
	s := New(engine.NewSession(eng), reg, nil)

	id, err := s.Enqueue(&structs.Task{Kind: structs.KindCook, NodeID: 1})

	assert.ErrorIs(t, err, errors.ErrNoSession)
	assert.Equal(t, "", id)
	assert.Equal(t, 0, reg.Len())
	assert.Equal(t, 0, s.Len())
}

func TestEnqueueNil(t *testing.T) {
	s := New(nil, registry.New(), nil)

	_, err := s.Enqueue(nil)

	assert.ErrorIs(t, err, errors.ErrInvalidArg)
}

func TestEnqueue(t *testing.T) {
	eng := engine_mock.NewMockEngine(gomock.NewController(t))
	reg := registry.New()
	s := New(startedSession(t, eng), reg, nil)
	in := &structs.Task{Kind: structs.KindCook, NodeID: 3, DisplayName: "rock"}

	id, err := s.Enqueue(in)

	assert.Nil(t, err)
	assert.True(t, utils.IsValidID(id))
	assert.Equal(t, "", in.ID) // caller's task is not modified
	assert.Equal(t, 1, s.Len())

	info, ok := reg.Get(id)
	assert.True(t, ok)
	assert.Equal(t, structs.TaskNone, info.State)
	assert.Equal(t, structs.KindCook, info.Kind)
	assert.Equal(t, "(rock) : (Queued)", info.StatusText)

	queued := s.queue.Pop()
	assert.Equal(t, id, queued.ID)
	assert.Equal(t, int64(1000), queued.CreatedAt)
}

func TestEnqueueQueueFull(t *testing.T) {
	eng := engine_mock.NewMockEngine(gomock.NewController(t))
	reg := registry.New()
	s := New(startedSession(t, eng), reg, &Options{InitialQueueSize: 1, MaxQueueSize: 1})

	_, err := s.Enqueue(&structs.Task{Kind: structs.KindCook, NodeID: 1})
	assert.Nil(t, err)

	_, err = s.Enqueue(&structs.Task{Kind: structs.KindCook, NodeID: 2})

	assert.ErrorIs(t, err, errors.ErrQueueFull)
	assert.Equal(t, 1, reg.Len())
}

func TestProcess(t *testing.T) {
	def := &structs.Definition{Path: "/lib/rock.hda"}

	cases := []struct {
		Name   string
		Task   *structs.Task
		Setup  func(e *engine_mock.MockEngine)
		Expect *structs.TaskInfo
		Lost   bool
	}{
		{
			Name: "InstantiateSuccess",
			Task: &structs.Task{ID: "a", Kind: structs.KindInstantiate, Definition: def, DisplayName: "rock"},
			Setup: func(e *engine_mock.MockEngine) {
				e.EXPECT().LoadAssetLibrary(def).Return([]string{"rock"}, structs.ResultSuccess)
				e.EXPECT().InstantiateAsset("rock").Return(structs.NodeID(5), structs.ResultSuccess)
				gomock.InOrder(
					e.EXPECT().CookState().Return(structs.CookLoading, structs.ResultSuccess),
					e.EXPECT().CookState().Return(structs.CookReady, structs.ResultSuccess),
				)
				e.EXPECT().StatusString().Return("Loading rock").AnyTimes()
			},
			Expect: &structs.TaskInfo{
				Kind:       structs.KindInstantiate,
				State:      structs.TaskSuccess,
				NodeID:     5,
				StatusText: "(rock) : (Finished)",
			},
		},
		{
			Name: "InstantiatePicksNamedAsset",
			Task: &structs.Task{ID: "a", Kind: structs.KindInstantiate, Definition: &structs.Definition{Path: "/lib.hda", Name: "tree"}},
			Setup: func(e *engine_mock.MockEngine) {
				e.EXPECT().LoadAssetLibrary(gomock.Any()).Return([]string{"rock", "tree"}, structs.ResultSuccess)
				e.EXPECT().InstantiateAsset("tree").Return(structs.NodeID(2), structs.ResultSuccess)
				e.EXPECT().CookState().Return(structs.CookReadyWithCookErrors, structs.ResultSuccess)
			},
			Expect: &structs.TaskInfo{
				Kind:       structs.KindInstantiate,
				State:      structs.TaskFinishedWithError,
				NodeID:     2,
				StatusText: "(Finished with errors)",
			},
		},
		{
			Name:  "InstantiateInvalidDefinition",
			Task:  &structs.Task{ID: "a", Kind: structs.KindInstantiate},
			Setup: func(e *engine_mock.MockEngine) {},
			Expect: &structs.TaskInfo{
				Kind:       structs.KindInstantiate,
				Result:     structs.ResultInvalidArgument,
				State:      structs.TaskFinishedWithFatalError,
				NodeID:     structs.InvalidNodeID,
				StatusText: "(Invalid asset definition)",
			},
		},
		{
			Name: "InstantiateNoLicense",
			Task: &structs.Task{ID: "a", Kind: structs.KindInstantiate, Definition: def},
			Setup: func(e *engine_mock.MockEngine) {
				e.EXPECT().LoadAssetLibrary(def).Return([]string{"rock"}, structs.ResultSuccess)
				e.EXPECT().InstantiateAsset("rock").Return(structs.InvalidNodeID, structs.ResultNoLicenseFound)
			},
			Expect: &structs.TaskInfo{
				Kind:       structs.KindInstantiate,
				Result:     structs.ResultNoLicenseFound,
				State:      structs.TaskFinishedWithFatalError,
				NodeID:     structs.InvalidNodeID,
				StatusText: "(Failed to instantiate rock: no license found)",
			},
		},
		{
			Name: "InstantiateEmptyLibrary",
			Task: &structs.Task{ID: "a", Kind: structs.KindInstantiate, Definition: def},
			Setup: func(e *engine_mock.MockEngine) {
				e.EXPECT().LoadAssetLibrary(def).Return([]string{}, structs.ResultSuccess)
			},
			Expect: &structs.TaskInfo{
				Kind:       structs.KindInstantiate,
				Result:     structs.ResultAssetInvalid,
				State:      structs.TaskFinishedWithFatalError,
				NodeID:     structs.InvalidNodeID,
				StatusText: "(Asset library holds no assets)",
			},
		},
		{
			Name: "InstantiateFatalCookDeletesNode",
			Task: &structs.Task{ID: "a", Kind: structs.KindInstantiate, Definition: def},
			Setup: func(e *engine_mock.MockEngine) {
				e.EXPECT().LoadAssetLibrary(def).Return([]string{"rock"}, structs.ResultSuccess)
				e.EXPECT().InstantiateAsset("rock").Return(structs.NodeID(5), structs.ResultSuccess)
				e.EXPECT().CookState().Return(structs.CookReadyWithFatalErrors, structs.ResultSuccess)
				e.EXPECT().ParentNode(structs.NodeID(5)).Return(structs.NodeID(4), structs.ResultSuccess)
				e.EXPECT().DeleteNode(structs.NodeID(4)).Return(structs.ResultSuccess)
			},
			Expect: &structs.TaskInfo{
				Kind:       structs.KindInstantiate,
				State:      structs.TaskFinishedWithFatalError,
				NodeID:     structs.InvalidNodeID,
				StatusText: "(Finished with fatal errors)",
			},
		},
		{
			Name: "CookWithExtraNodes",
			Task: &structs.Task{ID: "a", Kind: structs.KindCook, NodeID: 5, ExtraNodeIDs: []structs.NodeID{5, 7}},
			Setup: func(e *engine_mock.MockEngine) {
				gomock.InOrder(
					e.EXPECT().CookNode(structs.NodeID(5), structs.CookOptions{}).Return(structs.ResultSuccess),
					e.EXPECT().CookState().Return(structs.CookReady, structs.ResultSuccess),
					e.EXPECT().CookNode(structs.NodeID(7), structs.CookOptions{}).Return(structs.ResultSuccess),
					e.EXPECT().CookState().Return(structs.CookReadyWithCookErrors, structs.ResultSuccess),
					e.EXPECT().CookCount(structs.NodeID(5)).Return(int32(3), structs.ResultSuccess),
				)
			},
			Expect: &structs.TaskInfo{
				Kind:       structs.KindCook,
				State:      structs.TaskFinishedWithError,
				NodeID:     5,
				CookCount:  3,
				StatusText: "(Finished with errors)",
			},
		},
		{
			Name: "CookFatalStopsEarly",
			Task: &structs.Task{ID: "a", Kind: structs.KindCook, NodeID: 5, ExtraNodeIDs: []structs.NodeID{7}},
			Setup: func(e *engine_mock.MockEngine) {
				e.EXPECT().CookNode(structs.NodeID(5), structs.CookOptions{}).Return(structs.ResultSuccess)
				e.EXPECT().CookState().Return(structs.CookReadyWithFatalErrors, structs.ResultSuccess)
				e.EXPECT().CookCount(structs.NodeID(5)).Return(int32(1), structs.ResultSuccess)
			},
			Expect: &structs.TaskInfo{
				Kind:       structs.KindCook,
				State:      structs.TaskFinishedWithFatalError,
				NodeID:     5,
				CookCount:  1,
				StatusText: "(Finished with fatal errors)",
			},
		},
		{
			Name:  "CookInvalidNode",
			Task:  &structs.Task{ID: "a", Kind: structs.KindCook, NodeID: structs.InvalidNodeID},
			Setup: func(e *engine_mock.MockEngine) {},
			Expect: &structs.TaskInfo{
				Kind:       structs.KindCook,
				Result:     structs.ResultNodeInvalid,
				State:      structs.TaskFinishedWithFatalError,
				NodeID:     structs.InvalidNodeID,
				StatusText: "(Invalid node)",
			},
		},
		{
			Name: "CookSessionLost",
			Task: &structs.Task{ID: "a", Kind: structs.KindCook, NodeID: 5},
			Setup: func(e *engine_mock.MockEngine) {
				e.EXPECT().CookNode(structs.NodeID(5), structs.CookOptions{}).Return(structs.ResultInvalidSession)
				e.EXPECT().CloseSession().Return(structs.ResultInvalidSession)
			},
			Expect: &structs.TaskInfo{
				Kind:       structs.KindCook,
				Result:     structs.ResultInvalidSession,
				State:      structs.TaskFinishedWithFatalError,
				NodeID:     5,
				StatusText: "(Failed to cook: invalid session)",
			},
			Lost: true,
		},
		{
			Name: "DeleteParent",
			Task: &structs.Task{ID: "a", Kind: structs.KindDelete, NodeID: 5, DeleteParent: true},
			Setup: func(e *engine_mock.MockEngine) {
				e.EXPECT().ParentNode(structs.NodeID(5)).Return(structs.NodeID(1), structs.ResultSuccess)
				e.EXPECT().DeleteNode(structs.NodeID(1)).Return(structs.ResultSuccess)
			},
			Expect: &structs.TaskInfo{
				Kind:       structs.KindDelete,
				State:      structs.TaskSuccess,
				NodeID:     1,
				StatusText: "(Deleted)",
			},
		},
		{
			Name: "DeleteNodeOnly",
			Task: &structs.Task{ID: "a", Kind: structs.KindDelete, NodeID: 5},
			Setup: func(e *engine_mock.MockEngine) {
				e.EXPECT().DeleteNode(structs.NodeID(5)).Return(structs.ResultSuccess)
			},
			Expect: &structs.TaskInfo{
				Kind:       structs.KindDelete,
				State:      structs.TaskSuccess,
				NodeID:     5,
				StatusText: "(Deleted)",
			},
		},
		{
			Name: "DeleteFails",
			Task: &structs.Task{ID: "a", Kind: structs.KindDelete, NodeID: 5},
			Setup: func(e *engine_mock.MockEngine) {
				e.EXPECT().DeleteNode(structs.NodeID(5)).Return(structs.ResultNodeInvalid)
			},
			Expect: &structs.TaskInfo{
				Kind:       structs.KindDelete,
				Result:     structs.ResultNodeInvalid,
				State:      structs.TaskFinishedWithFatalError,
				NodeID:     5,
				StatusText: "(Failed to delete: node invalid)",
			},
		},
		{
			Name: "PostCookProcess",
			Task: &structs.Task{ID: "a", Kind: structs.KindPostCookProcess, NodeID: 5},
			Setup: func(e *engine_mock.MockEngine) {
				e.EXPECT().CookCount(structs.NodeID(5)).Return(int32(9), structs.ResultSuccess)
			},
			Expect: &structs.TaskInfo{
				Kind:       structs.KindPostCookProcess,
				State:      structs.TaskSuccess,
				NodeID:     5,
				CookCount:  9,
				StatusText: "(Post cook processed)",
			},
		},
	}

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			eng := engine_mock.NewMockEngine(gomock.NewController(t))
			session := startedSession(t, eng)
			reg := registry.New()
			s := New(session, reg, &Options{SpinInterval: time.Microsecond})
			c.Setup(eng)

			s.process(c.Task)

			info, ok := reg.Get(c.Task.ID)
			assert.True(t, ok)
			info.UpdatedAt = 0
			assert.Equal(t, c.Expect, info)
			assert.Equal(t, !c.Lost, session.Valid())
		})
	}
}

func TestProcessWithoutSession(t *testing.T) {
	eng := engine_mock.NewMockEngine(gomock.NewController(t))
	reg := registry.New()
	s := New(engine.NewSession(eng), reg, nil)

	s.process(&structs.Task{ID: "a", Kind: structs.KindCook, NodeID: 5})

	info, ok := reg.Get("a")
	assert.True(t, ok)
	assert.Equal(t, structs.TaskFinishedWithFatalError, info.State)
	assert.Equal(t, structs.ResultInvalidSession, info.Result)
}

func TestWorkerRunsInOrder(t *testing.T) {
	eng := sim.New(&sim.Options{CookTime: time.Millisecond})
	session := engine.NewSession(eng)
	assert.Nil(t, session.Start())
	node, _ := eng.InstantiateAsset("rock")

	rec := &recorder{Registry: registry.New()}
	s := New(session, rec, &Options{IdleInterval: time.Millisecond, SpinInterval: time.Microsecond})
	s.Start()
	defer s.Stop()

	ids := []string{}
	for i := 0; i < 5; i++ {
		id, err := s.Enqueue(&structs.Task{Kind: structs.KindCook, NodeID: node})
		assert.Nil(t, err)
		ids = append(ids, id)
	}

	assert.Eventually(t, func() bool {
		return len(rec.Order()) == len(ids)
	}, 5*time.Second, 5*time.Millisecond)
	assert.Equal(t, ids, rec.Order())

	for _, id := range ids {
		info, result := rec.Poll(id, structs.KindCook)
		assert.Equal(t, registry.PollFinished, result)
		assert.Equal(t, structs.TaskSuccess, info.State)
	}
}

func TestStopAbortsRunningTask(t *testing.T) {
	eng := sim.New(&sim.Options{CookTime: time.Hour})
	session := engine.NewSession(eng)
	assert.Nil(t, session.Start())
	node, _ := eng.InstantiateAsset("rock")

	reg := registry.New()
	s := New(session, reg, &Options{IdleInterval: time.Millisecond, SpinInterval: time.Millisecond})
	s.Start()

	running, err := s.Enqueue(&structs.Task{Kind: structs.KindCook, NodeID: node})
	assert.Nil(t, err)
	assert.Eventually(t, func() bool {
		info, _ := reg.Get(running)
		return info != nil && info.State == structs.TaskWorking
	}, 5*time.Second, time.Millisecond)

	queued, err := s.Enqueue(&structs.Task{Kind: structs.KindCook, NodeID: node})
	assert.Nil(t, err)

	s.Stop()

	info, ok := reg.Get(running)
	assert.True(t, ok)
	assert.Equal(t, structs.TaskAborted, info.State)

	_, ok = reg.Get(queued)
	assert.False(t, ok)
	assert.Equal(t, 0, s.Len())
}
