// Package asset holds the host-side proxy for one instantiated engine asset.
package asset

import (
	"time"

	"github.com/voidshard/cooker/internal/utils"
	"github.com/voidshard/cooker/pkg/structs"
)

// Flags mark what has changed on the host side since the last cook.
type Flags struct {
	NeedParameterSync bool
	NeedInputSync     bool
	NeedOutputSync    bool
	NeedTransformSync bool
	ForceRebuild      bool
	ForceRecook       bool
}

// Client is one tracked asset instance.
//
// A client is owned by its host component. It is only mutated from the manager's
// frame loop (and the manager's API calls, under the manager's lock).
type Client struct {
	ID         string
	Name       string
	Definition *structs.Definition
	Owner      Owner

	// State is the lifecycle state.
	State structs.AssetState

	// RequestID is the outstanding task, "" if none.
	RequestID string

	// NodeID is the engine-side asset node.
	NodeID structs.NodeID

	// CookCount is the engine cook count as of the last processed cook.
	CookCount int32

	// LastTick is when the manager last advanced this client.
	LastTick time.Time

	Flags Flags

	// CookingEnabled toggles cooking for this client alone.
	CookingEnabled bool

	// UploadTransforms sends the host transform to the engine.
	UploadTransforms bool

	// CookOnTransformChange triggers a cook when the host transform changes.
	CookOnTransformChange bool

	// AllowRestrictedPlayback lets the client be processed during restricted playback.
	AllowRestrictedPlayback bool

	UseOutputNodes     bool
	OutputTemplateGeos bool

	// Upstream are clients whose outputs feed this client's inputs.
	Upstream []*Client

	// OutputNodes gathered before the last cook.
	OutputNodes []structs.NodeID

	// AutoUpdatesPrevented is set after a failed instantiation. Only a manual
	// recook / rebuild will move the client on.
	AutoUpdatesPrevented bool

	// LastCookSuccess is the outcome of the last cook.
	LastCookSuccess bool

	// ParameterDefinitionSyncNeeded is set when only the definition's default
	// parameters are known.
	ParameterDefinitionSyncNeeded bool

	// RequestKind is the kind of the outstanding task.
	RequestKind structs.TaskKind

	// set by the last cook task, applied in PostCook
	cookNodeID    structs.NodeID
	cookCookCount int32
}

// New returns a client for a freshly created component.
func New(name string, def *structs.Definition, owner Owner) *Client {
	return &Client{
		ID:             utils.NewRandomID(),
		Name:           name,
		Definition:     def,
		Owner:          owner,
		State:          structs.NewHDA,
		NodeID:         structs.InvalidNodeID,
		cookNodeID:     structs.InvalidNodeID,
		CookingEnabled: true,
		UseOutputNodes: true,
	}
}

// NewTemplate returns a client in template (preview) mode. It never creates engine nodes.
func NewTemplate(name string, def *structs.Definition, owner Owner) *Client {
	c := New(name, def, owner)
	c.State = structs.ProcessTemplate
	return c
}

// NeedUpdate returns if host-side changes require a cook.
func (c *Client) NeedUpdate() bool {
	manual := c.Flags.ForceRecook || c.Flags.ForceRebuild
	if c.AutoUpdatesPrevented && !manual {
		return false
	}
	return manual ||
		c.Flags.NeedParameterSync ||
		c.Flags.NeedInputSync ||
		(c.Flags.NeedTransformSync && c.CookOnTransformChange)
}

// ManualTrigger returns if a recook or rebuild was explicitly requested.
func (c *Client) ManualTrigger() bool {
	return c.Flags.ForceRecook || c.Flags.ForceRebuild
}

// WaitingOnUpstream returns if any upstream client is mid-way through instantiating or
// cooking.
func (c *Client) WaitingOnUpstream() bool {
	for _, u := range c.Upstream {
		if u == nil || u == c {
			continue
		}
		if structs.IsInFlight(u.State) {
			return true
		}
	}
	return false
}

// MarkParametersChanged flags host-side parameter edits.
func (c *Client) MarkParametersChanged() {
	c.Flags.NeedParameterSync = true
}

// MarkInputsChanged flags host-side input edits.
func (c *Client) MarkInputsChanged() {
	c.Flags.NeedInputSync = true
}

// MarkTransformChanged flags a host-side transform change.
func (c *Client) MarkTransformChanged() {
	c.Flags.NeedTransformSync = true
}

// MarkOutputsChanged flags host-side output edits.
func (c *Client) MarkOutputsChanged() {
	c.Flags.NeedOutputSync = true
}

// Recook requests a cook, lifting any auto-update suppression.
func (c *Client) Recook() {
	c.Flags.ForceRecook = true
	c.AutoUpdatesPrevented = false
}

// Rebuild requests the node be deleted & re-instantiated.
func (c *Client) Rebuild() {
	c.Flags.ForceRebuild = true
	c.AutoUpdatesPrevented = false
}

// MarkForDelete requests the node be deleted.
func (c *Client) MarkForDelete() {
	if c.State == structs.Deleting {
		return
	}
	c.State = structs.NeedDelete
}

// MarkNeedCook sets the flags a rebuild needs for the follow up cook.
func (c *Client) MarkNeedCook() {
	c.Flags.NeedParameterSync = true
	c.Flags.NeedInputSync = true
	c.ParameterDefinitionSyncNeeded = true
}

// PreventAutoUpdates stops the client moving on by itself.
func (c *Client) PreventAutoUpdates() {
	c.AutoUpdatesPrevented = true
	c.Flags.NeedParameterSync = false
	c.Flags.NeedInputSync = false
	c.Flags.NeedTransformSync = false
	c.Flags.ForceRecook = false
	c.Flags.ForceRebuild = false
}

// ClearUploadFlags clears changes that have been sent to the engine.
func (c *Client) ClearUploadFlags() {
	c.Flags.NeedParameterSync = false
	c.Flags.NeedInputSync = false
	c.Flags.NeedTransformSync = false
}

// ClearManualFlags clears recook / rebuild requests.
func (c *Client) ClearManualFlags() {
	c.Flags.ForceRecook = false
	c.Flags.ForceRebuild = false
}

// SetCookResult records the node & cook count reported by a cook task.
func (c *Client) SetCookResult(node structs.NodeID, count int32) {
	c.cookNodeID = node
	c.cookCookCount = count
}

// CookResult returns the node & cook count reported by the last cook task.
func (c *Client) CookResult() (structs.NodeID, int32) {
	return c.cookNodeID, c.cookCookCount
}

// Forget clears the outstanding request, returning its id & kind.
func (c *Client) Forget() (string, structs.TaskKind) {
	id, kind := c.RequestID, c.RequestKind
	c.RequestID = ""
	c.RequestKind = ""
	return id, kind
}

func (c *Client) IsValid() bool {
	return c.Owner == nil || c.Owner.IsValid()
}

func (c *Client) IsSelected() bool {
	return c.Owner != nil && c.Owner.IsSelected()
}

func (c *Client) IsFullyLoaded() bool {
	return c.Owner == nil || c.Owner.IsFullyLoaded()
}

func (c *Client) AdvanceLoading() bool {
	return c.Owner == nil || c.Owner.AdvanceLoading()
}

func (c *Client) InRestrictedPlayback() bool {
	return c.Owner != nil && c.Owner.InRestrictedPlayback()
}

func (c *Client) HasOpenEditor() bool {
	return c.Owner != nil && c.Owner.HasOpenEditor()
}

// Snapshot returns a read-only copy of the client's scheduling state.
func (c *Client) Snapshot(cookingEnabled bool) *structs.AssetSnapshot {
	tick := int64(0)
	if !c.LastTick.IsZero() {
		tick = c.LastTick.UnixMilli()
	}
	return &structs.AssetSnapshot{
		ID:         c.ID,
		Name:       c.Name,
		State:      c.State,
		RequestID:  c.RequestID,
		NodeID:     c.NodeID,
		CookCount:  c.CookCount,
		LastTick:   tick,
		Selected:   c.IsSelected(),
		CookingOn:  cookingEnabled,
		Suppressed: c.AutoUpdatesPrevented,
		LastCookOK: c.LastCookSuccess,
	}
}
