package asset

import (
	"github.com/voidshard/cooker/pkg/errors"
	"github.com/voidshard/cooker/pkg/structs"
)

// Phase says at what point of the lifecycle a sync is requested.
type Phase string

const (
	// PhaseDefinition syncs against the asset definition's defaults only (no node yet).
	PhaseDefinition Phase = "definition"

	// PhasePreCook uploads host-side changes before a cook.
	PhasePreCook Phase = "precook"

	// PhasePostCook pulls engine-side results after a cook.
	PhasePostCook Phase = "postcook"

	// PhaseIdle handles changes while nothing is cooking.
	PhaseIdle Phase = "idle"
)

// Collaborators are the host-side subsystems that convert data to & from the engine.
//
// Implementations must be synchronous & must be no-ops when there is nothing to do.
//
//go:generate mockgen -source=collaborators.go -destination=../../internal/mocks/pkg/asset_mock/collaborators.go -package=asset_mock
type Collaborators interface {
	SyncParameters(c *Client, phase Phase) error
	SyncInputs(c *Client, phase Phase) error
	SyncOutputs(c *Client, phase Phase) error
	SyncHandles(c *Client) error
	UploadTransform(c *Client) error
	GatherOutputNodes(c *Client) ([]structs.NodeID, error)
	CookCount(c *Client) (int32, error)
	ProcessOutputs(c *Client) error
	SyncTemplate(c *Client) error
}

// NopCollaborators does nothing, successfully.
type NopCollaborators struct{}

func (NopCollaborators) SyncParameters(c *Client, phase Phase) error { return nil }
func (NopCollaborators) SyncInputs(c *Client, phase Phase) error     { return nil }
func (NopCollaborators) SyncOutputs(c *Client, phase Phase) error    { return nil }
func (NopCollaborators) SyncHandles(c *Client) error                 { return nil }
func (NopCollaborators) UploadTransform(c *Client) error             { return nil }
func (NopCollaborators) ProcessOutputs(c *Client) error              { return nil }
func (NopCollaborators) SyncTemplate(c *Client) error                { return nil }

func (NopCollaborators) GatherOutputNodes(c *Client) ([]structs.NodeID, error) {
	return nil, nil
}

// CookCount is not known without an engine; callers fall back to the count the last
// cook reported.
func (NopCollaborators) CookCount(c *Client) (int32, error) {
	return -1, errors.ErrNotSupported
}
