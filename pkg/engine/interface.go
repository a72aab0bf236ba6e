package engine

import (
	"github.com/voidshard/cooker/pkg/structs"
)

// Engine is the narrow, blocking API of the external procedural engine.
//
// Every call may block for an unbounded amount of time, so only the scheduler's worker
// goroutine should call these (with the exception of session start / stop).
//
//go:generate mockgen -source=interface.go -destination=../../internal/mocks/pkg/engine_mock/engine.go -package=engine_mock
type Engine interface {
	// StartSession connects to (or creates) an engine session.
	StartSession() structs.Result

	// CloseSession tears down the current session.
	CloseSession() structs.Result

	// LoadAssetLibrary loads a definition & returns the names of the assets inside it.
	LoadAssetLibrary(def *structs.Definition) ([]string, structs.Result)

	// InstantiateAsset creates a node for the named asset. The engine starts loading /
	// cooking the node in the background; progress is read via CookState.
	InstantiateAsset(name string) (structs.NodeID, structs.Result)

	// CookNode starts a cook of the given node.
	CookNode(node structs.NodeID, opts structs.CookOptions) structs.Result

	// CookState returns the engine's current cook state.
	CookState() (structs.CookState, structs.Result)

	// StatusString returns a human readable description of what the engine is doing.
	StatusString() string

	// DeleteNode removes a node.
	DeleteNode(node structs.NodeID) structs.Result

	// ParentNode returns the parent of the given node.
	ParentNode(node structs.NodeID) (structs.NodeID, structs.Result)

	// CookCount returns the total number of times the node has cooked.
	CookCount(node structs.NodeID) (int32, structs.Result)
}
