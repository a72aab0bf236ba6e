package sim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/voidshard/cooker/pkg/structs"
)

func TestNotConnected(t *testing.T) {
	e := New(nil)

	_, res := e.LoadAssetLibrary(&structs.Definition{Path: "/a/rock.hda"})
	assert.Equal(t, structs.ResultInvalidSession, res)

	_, res = e.InstantiateAsset("rock")
	assert.Equal(t, structs.ResultInvalidSession, res)

	assert.Equal(t, structs.ResultInvalidSession, e.CookNode(0, structs.CookOptions{}))
	assert.Equal(t, structs.ResultInvalidSession, e.CloseSession())
}

func TestLoadAssetLibrary(t *testing.T) {
	cases := []struct {
		Name   string
		Given  *structs.Definition
		Expect []string
		Result structs.Result
	}{
		{"ByPath", &structs.Definition{Path: "/a/b/rock.hda"}, []string{"rock"}, structs.ResultSuccess},
		{"ByName", &structs.Definition{Path: "/a/b/lib.hda", Name: "tree"}, []string{"tree"}, structs.ResultSuccess},
		{"Invalid", &structs.Definition{}, nil, structs.ResultInvalidArgument},
		{"Forced", &structs.Definition{Path: "/bad.hda"}, nil, structs.ResultCantLoadFile},
	}

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			e := New(nil)
			e.SetLoadResult("/bad.hda", structs.ResultCantLoadFile)
			assert.Equal(t, structs.ResultSuccess, e.StartSession())

			names, res := e.LoadAssetLibrary(c.Given)

			assert.Equal(t, c.Result, res)
			assert.Equal(t, c.Expect, names)
		})
	}
}

func TestInstantiateAndCook(t *testing.T) {
	e := New(&Options{CookTime: 20 * time.Millisecond})
	assert.Equal(t, structs.ResultSuccess, e.StartSession())

	id, res := e.InstantiateAsset("rock")
	assert.Equal(t, structs.ResultSuccess, res)
	assert.Equal(t, 2, e.NodeCount())

	state, _ := e.CookState()
	assert.Equal(t, structs.CookLoading, state)
	assert.Contains(t, e.StatusString(), "rock")

	assert.Eventually(t, func() bool {
		s, _ := e.CookState()
		return s == structs.CookReady
	}, time.Second, 5*time.Millisecond)

	count, res := e.CookCount(id)
	assert.Equal(t, structs.ResultSuccess, res)
	assert.Equal(t, int32(1), count)

	parent, res := e.ParentNode(id)
	assert.Equal(t, structs.ResultSuccess, res)
	assert.True(t, parent.Valid())

	assert.Equal(t, structs.ResultSuccess, e.DeleteNode(parent))
	assert.Equal(t, 0, e.NodeCount())
}

func TestForcedCookResult(t *testing.T) {
	e := New(nil)
	e.SetCookResult("rock", structs.CookReadyWithFatalErrors)
	assert.Equal(t, structs.ResultSuccess, e.StartSession())

	id, _ := e.InstantiateAsset("rock")
	state, _ := e.CookState()

	assert.Equal(t, structs.CookReadyWithFatalErrors, state)
	count, _ := e.CookCount(id)
	assert.Equal(t, int32(0), count)
}

func TestForcedInstantiateResult(t *testing.T) {
	e := New(nil)
	e.SetInstantiateResult("rock", structs.ResultNoLicenseFound)
	assert.Equal(t, structs.ResultSuccess, e.StartSession())

	id, res := e.InstantiateAsset("rock")

	assert.Equal(t, structs.ResultNoLicenseFound, res)
	assert.Equal(t, structs.InvalidNodeID, id)
}

func TestDisconnect(t *testing.T) {
	e := New(nil)
	assert.Equal(t, structs.ResultSuccess, e.StartSession())

	e.Disconnect()

	_, res := e.CookState()
	assert.Equal(t, structs.ResultInvalidSession, res)
}
