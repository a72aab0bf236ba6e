package structs

import (
	"strings"
)

// AssetState is the lifecycle state of a single asset client.
type AssetState string

const (
	NeedInstantiation AssetState = "NeedInstantiation"
	NewHDA            AssetState = "NewHDA"
	PreInstantiation  AssetState = "PreInstantiation"
	Instantiating     AssetState = "Instantiating"
	PreCook           AssetState = "PreCook"
	Cooking           AssetState = "Cooking"
	PostCook          AssetState = "PostCook"
	PreProcess        AssetState = "PreProcess"
	Processing        AssetState = "Processing"
	None              AssetState = "None"
	NeedRebuild       AssetState = "NeedRebuild"
	NeedDelete        AssetState = "NeedDelete"
	Deleting          AssetState = "Deleting"
	ProcessTemplate   AssetState = "ProcessTemplate"
)

var allAssetStates = []AssetState{
	NeedInstantiation,
	NewHDA,
	PreInstantiation,
	Instantiating,
	PreCook,
	Cooking,
	PostCook,
	PreProcess,
	Processing,
	None,
	NeedRebuild,
	NeedDelete,
	Deleting,
	ProcessTemplate,
}

// IsFastForward returns if a state is pure host-side bookkeeping, with no engine
// round-trip outstanding, so it may be advanced again within the same frame.
func IsFastForward(state AssetState) bool {
	switch state {
	case NewHDA, PreInstantiation, PreCook, PostCook, PreProcess, Processing:
		return true
	default:
		return false
	}
}

// IsInFlight returns if a client in this state is mid-way through instantiating or
// cooking. Downstream clients wait for upstream ones to leave these states.
func IsInFlight(state AssetState) bool {
	switch state {
	case NewHDA, PreInstantiation, Instantiating, PreCook, Cooking, PostCook, PreProcess, Processing, NeedRebuild:
		return true
	default:
		return false
	}
}

// IsActive returns if a client in this state should be processed every frame.
// Idle clients are only visited by round-robin or selection.
func IsActive(state AssetState) bool {
	return state != None && state != NeedInstantiation
}

// RequiresSessionStart returns if a client in this state will need an engine session.
func RequiresSessionStart(state AssetState) bool {
	switch state {
	case NewHDA, PreInstantiation, Instantiating, PreCook, Cooking:
		return true
	default:
		return false
	}
}

func ToAssetState(s string) AssetState {
	for _, st := range allAssetStates {
		if strings.EqualFold(string(st), s) {
			return st
		}
	}
	return ""
}
