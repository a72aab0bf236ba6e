package structs

import (
	"strings"
)

// TaskKind is the type of engine work a Task asks the worker to perform.
//
// A TaskInfo always carries the kind of the Task that created it; a poll that finds a
// different kind than expected is a protocol violation.
type TaskKind string

const (
	// KindInstantiate loads an asset definition & creates a node from it.
	KindInstantiate TaskKind = "Instantiate"

	// KindCook recomputes an existing node (and any auxiliary nodes).
	KindCook TaskKind = "Cook"

	// KindDelete removes a node from the engine.
	KindDelete TaskKind = "Delete"

	// KindPostCookProcess reads back post-cook data (cook count) for a node.
	KindPostCookProcess TaskKind = "PostCookProcess"
)

func ToTaskKind(s string) TaskKind {
	switch strings.ToLower(s) {
	case "instantiate":
		return KindInstantiate
	case "cook":
		return KindCook
	case "delete":
		return KindDelete
	case "postcookprocess":
		return KindPostCookProcess
	default:
		return ""
	}
}
