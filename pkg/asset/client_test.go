package asset

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/voidshard/cooker/internal/utils"
	"github.com/voidshard/cooker/pkg/structs"
)

type owner struct {
	valid, selected, loaded, advances, restricted, editor bool
}

func (o *owner) IsValid() bool              { return o.valid }
func (o *owner) IsSelected() bool           { return o.selected }
func (o *owner) IsFullyLoaded() bool        { return o.loaded }
func (o *owner) AdvanceLoading() bool       { return o.advances }
func (o *owner) InRestrictedPlayback() bool { return o.restricted }
func (o *owner) HasOpenEditor() bool        { return o.editor }

func TestNew(t *testing.T) {
	def := &structs.Definition{Path: "/rock.hda"}

	c := New("rock", def, nil)
	tmpl := NewTemplate("rock", def, nil)

	assert.True(t, utils.IsValidID(c.ID))
	assert.Equal(t, structs.NewHDA, c.State)
	assert.Equal(t, structs.InvalidNodeID, c.NodeID)
	assert.True(t, c.CookingEnabled)
	assert.Equal(t, structs.ProcessTemplate, tmpl.State)
	assert.NotEqual(t, c.ID, tmpl.ID)
}

func TestNilOwnerDefaults(t *testing.T) {
	c := New("rock", nil, nil)

	assert.True(t, c.IsValid())
	assert.False(t, c.IsSelected())
	assert.True(t, c.IsFullyLoaded())
	assert.True(t, c.AdvanceLoading())
	assert.False(t, c.InRestrictedPlayback())
	assert.False(t, c.HasOpenEditor())
}

func TestOwnerPassthrough(t *testing.T) {
	o := &owner{valid: false, selected: true, loaded: false, advances: false, restricted: true, editor: true}
	c := New("rock", nil, o)

	assert.False(t, c.IsValid())
	assert.True(t, c.IsSelected())
	assert.False(t, c.IsFullyLoaded())
	assert.False(t, c.AdvanceLoading())
	assert.True(t, c.InRestrictedPlayback())
	assert.True(t, c.HasOpenEditor())
}

func TestNeedUpdate(t *testing.T) {
	cases := []struct {
		Name      string
		Flags     Flags
		OnXform   bool
		Prevented bool
		Expect    bool
	}{
		{"Nothing", Flags{}, false, false, false},
		{"Parameters", Flags{NeedParameterSync: true}, false, false, true},
		{"Inputs", Flags{NeedInputSync: true}, false, false, true},
		{"OutputsOnly", Flags{NeedOutputSync: true}, false, false, false},
		{"TransformNoCook", Flags{NeedTransformSync: true}, false, false, false},
		{"TransformCook", Flags{NeedTransformSync: true}, true, false, true},
		{"Recook", Flags{ForceRecook: true}, false, false, true},
		{"Rebuild", Flags{ForceRebuild: true}, false, false, true},
		{"PreventedParameters", Flags{NeedParameterSync: true}, false, true, false},
		{"PreventedRecook", Flags{ForceRecook: true}, false, true, true},
	}

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			cl := New("rock", nil, nil)
			cl.Flags = c.Flags
			cl.CookOnTransformChange = c.OnXform
			cl.AutoUpdatesPrevented = c.Prevented

			assert.Equal(t, c.Expect, cl.NeedUpdate())
		})
	}
}

func TestManualTriggersLiftSuppression(t *testing.T) {
	c := New("rock", nil, nil)
	c.MarkParametersChanged()
	c.PreventAutoUpdates()

	assert.False(t, c.NeedUpdate())
	assert.False(t, c.Flags.NeedParameterSync)

	c.MarkParametersChanged()
	assert.False(t, c.NeedUpdate())

	c.Recook()
	assert.False(t, c.AutoUpdatesPrevented)
	assert.True(t, c.NeedUpdate())

	c.ClearManualFlags()
	c.PreventAutoUpdates()
	c.Rebuild()
	assert.True(t, c.ManualTrigger())
	assert.True(t, c.NeedUpdate())
}

func TestWaitingOnUpstream(t *testing.T) {
	cases := []struct {
		Name   string
		States []structs.AssetState
		Expect bool
	}{
		{"NoUpstream", nil, false},
		{"AllIdle", []structs.AssetState{structs.None, structs.NeedInstantiation}, false},
		{"OneCooking", []structs.AssetState{structs.None, structs.Cooking}, true},
		{"OneInstantiating", []structs.AssetState{structs.Instantiating}, true},
		{"Deleting", []structs.AssetState{structs.Deleting}, false},
	}

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			cl := New("down", nil, nil)
			for _, st := range c.States {
				up := New("up", nil, nil)
				up.State = st
				cl.Upstream = append(cl.Upstream, up)
			}
			cl.Upstream = append(cl.Upstream, nil, cl)

			assert.Equal(t, c.Expect, cl.WaitingOnUpstream())
		})
	}
}

func TestMarkForDelete(t *testing.T) {
	c := New("rock", nil, nil)
	c.State = structs.None

	c.MarkForDelete()
	assert.Equal(t, structs.NeedDelete, c.State)

	c.State = structs.Deleting
	c.MarkForDelete()
	assert.Equal(t, structs.Deleting, c.State)
}

func TestMarkNeedCook(t *testing.T) {
	c := New("rock", nil, nil)

	c.MarkNeedCook()

	assert.True(t, c.Flags.NeedParameterSync)
	assert.True(t, c.Flags.NeedInputSync)
	assert.True(t, c.ParameterDefinitionSyncNeeded)

	c.ClearUploadFlags()
	assert.False(t, c.NeedUpdate())
}

func TestSnapshot(t *testing.T) {
	c := New("rock", nil, &owner{valid: true, selected: true})
	c.State = structs.Cooking
	c.RequestID = "req"
	c.NodeID = 4
	c.CookCount = 2
	c.LastTick = time.UnixMilli(5000)

	s := c.Snapshot(true)

	assert.Equal(t, &structs.AssetSnapshot{
		ID:        c.ID,
		Name:      "rock",
		State:     structs.Cooking,
		RequestID: "req",
		NodeID:    4,
		CookCount: 2,
		LastTick:  5000,
		Selected:  true,
		CookingOn: true,
	}, s)

	c.LastTick = time.Time{}
	assert.Equal(t, int64(0), c.Snapshot(false).LastTick)
}

func TestNopCollaborators(t *testing.T) {
	var n Collaborators = NopCollaborators{}
	c := New("rock", nil, nil)

	assert.Nil(t, n.SyncParameters(c, PhasePreCook))
	assert.Nil(t, n.SyncOutputs(c, PhaseIdle))
	nodes, err := n.GatherOutputNodes(c)
	assert.Nil(t, err)
	assert.Nil(t, nodes)
	_, err = n.CookCount(c)
	assert.NotNil(t, err)
}

func TestForget(t *testing.T) {
	c := New("a", nil, nil)
	c.RequestID = "req"
	c.RequestKind = structs.KindCook

	id, kind := c.Forget()

	assert.Equal(t, "req", id)
	assert.Equal(t, structs.KindCook, kind)
	assert.Equal(t, "", c.RequestID)
	assert.Equal(t, structs.TaskKind(""), c.RequestKind)
}

func TestCookResult(t *testing.T) {
	c := New("a", nil, nil)

	node, _ := c.CookResult()
	assert.Equal(t, structs.InvalidNodeID, node)

	c.SetCookResult(42, 3)
	node, count := c.CookResult()

	assert.Equal(t, structs.NodeID(42), node)
	assert.Equal(t, int32(3), count)
}
