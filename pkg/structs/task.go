package structs

import (
	"fmt"
)

// NodeID is an engine-side node identifier.
type NodeID int32

// InvalidNodeID marks a node id that has not been assigned.
const InvalidNodeID NodeID = -1

func (n NodeID) Valid() bool {
	return n >= 0
}

// Definition describes an asset library the engine can instantiate from.
type Definition struct {
	// Path is the file path of the asset library.
	Path string `json:"path"`

	// Name is the asset inside the library to instantiate. If empty the first asset
	// found in the library is used.
	Name string `json:"name,omitempty"`

	// Bytes is an optional in-memory copy of the library, used instead of Path if set.
	Bytes []byte `json:"-"`
}

func (d *Definition) Valid() bool {
	return d != nil && (d.Path != "" || len(d.Bytes) > 0)
}

// CookOptions configure a single cook.
type CookOptions struct {
	// UseOutputNodes cooks the asset's designated output nodes rather than only its display node.
	UseOutputNodes bool `json:"use_output_nodes"`

	// OutputTemplateGeos includes template geometry in outputs.
	OutputTemplateGeos bool `json:"output_template_geos"`
}

// Task is a unit of engine work. It is immutable once enqueued.
type Task struct {
	// ID is the request id, generated at enqueue time.
	ID string `json:"id"`

	// Kind is what the worker should do.
	Kind TaskKind `json:"kind"`

	// ClientID is the asset client that requested this work (if any).
	ClientID string `json:"client_id,omitempty"`

	// Definition is what to instantiate (Instantiate only).
	Definition *Definition `json:"definition,omitempty"`

	// NodeID is the target node (Cook, Delete & PostCookProcess).
	NodeID NodeID `json:"node_id"`

	// ExtraNodeIDs are cooked after NodeID (Cook only).
	ExtraNodeIDs []NodeID `json:"extra_node_ids,omitempty"`

	// DisplayName is a human readable name, used in status text.
	DisplayName string `json:"display_name,omitempty"`

	// CookOptions are passed to the engine when cooking.
	CookOptions CookOptions `json:"cook_options"`

	// DeleteParent removes the node's parent rather than the node itself (Delete only).
	DeleteParent bool `json:"delete_parent,omitempty"`

	// CreatedAt is the time this task was enqueued, unix time in seconds.
	CreatedAt int64 `json:"created_at"`
}

// StatusText formats a status line for this task.
func (t *Task) StatusText(status string) string {
	if t.DisplayName == "" {
		return fmt.Sprintf("(%s)", status)
	}
	return fmt.Sprintf("(%s) : (%s)", t.DisplayName, status)
}
