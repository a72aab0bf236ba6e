package structs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsFastForward(t *testing.T) {
	cases := []struct {
		Name   string
		Given  AssetState
		Expect bool
	}{
		{"NeedInstantiation", NeedInstantiation, false},
		{"NewHDA", NewHDA, true},
		{"PreInstantiation", PreInstantiation, true},
		{"Instantiating", Instantiating, false},
		{"PreCook", PreCook, true},
		{"Cooking", Cooking, false},
		{"PostCook", PostCook, true},
		{"PreProcess", PreProcess, true},
		{"Processing", Processing, true},
		{"None", None, false},
		{"NeedRebuild", NeedRebuild, false},
		{"NeedDelete", NeedDelete, false},
		{"Deleting", Deleting, false},
		{"ProcessTemplate", ProcessTemplate, false},
	}

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			assert.Equal(t, c.Expect, IsFastForward(c.Given))
		})
	}
}

func TestIsActive(t *testing.T) {
	assert.False(t, IsActive(None))
	assert.False(t, IsActive(NeedInstantiation))
	assert.True(t, IsActive(Cooking))
	assert.True(t, IsActive(ProcessTemplate))
}

func TestRequiresSessionStart(t *testing.T) {
	cases := []struct {
		Name   string
		Given  AssetState
		Expect bool
	}{
		{"NeedInstantiation", NeedInstantiation, false},
		{"NewHDA", NewHDA, true},
		{"PreInstantiation", PreInstantiation, true},
		{"Instantiating", Instantiating, true},
		{"PreCook", PreCook, true},
		{"Cooking", Cooking, true},
		{"PostCook", PostCook, false},
		{"None", None, false},
	}

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			assert.Equal(t, c.Expect, RequiresSessionStart(c.Given))
		})
	}
}

func TestToAssetState(t *testing.T) {
	for _, st := range allAssetStates {
		assert.Equal(t, st, ToAssetState(string(st)))
	}
	assert.Equal(t, PreCook, ToAssetState("precook"))
	assert.Equal(t, AssetState(""), ToAssetState("x"))
}
