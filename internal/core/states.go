package core

import (
	"errors"
	"log"

	"github.com/voidshard/cooker/pkg/asset"
	ie "github.com/voidshard/cooker/pkg/errors"
	"github.com/voidshard/cooker/pkg/registry"
	"github.com/voidshard/cooker/pkg/structs"
)

// process runs one step of the client's state machine, returning the next state and
// whether the caller may step again this frame.
func (m *Manager) process(c *asset.Client) (structs.AssetState, bool) {
	if !m.cookingEnabled && c.State != structs.NewHDA {
		// paused; only idle output syncs happen
		if c.State == structs.None && c.Flags.NeedOutputSync {
			m.syncIdleOutputs(c)
		}
		return c.State, false
	}

	switch c.State {
	case structs.NewHDA:
		return m.processNewHDA(c)
	case structs.NeedInstantiation:
		return m.processNeedInstantiation(c)
	case structs.PreInstantiation:
		return m.processPreInstantiation(c)
	case structs.Instantiating:
		return m.processInstantiating(c)
	case structs.PreCook:
		return m.processPreCook(c)
	case structs.Cooking:
		return m.processCooking(c)
	case structs.PostCook:
		return m.processPostCook(c)
	case structs.PreProcess:
		return structs.Processing, true
	case structs.Processing:
		return m.processProcessing(c)
	case structs.None:
		return m.processNone(c)
	case structs.NeedRebuild:
		return m.processNeedRebuild(c)
	case structs.NeedDelete:
		return m.processNeedDelete(c)
	case structs.ProcessTemplate:
		return m.processTemplate(c)
	default:
		// Deleting, or something we don't know
		return c.State, false
	}
}

// cookingEnabledFor returns if the client may cook now.
func (m *Manager) cookingEnabledFor(c *asset.Client) bool {
	return c.ManualTrigger() || (c.CookingEnabled && m.cookingEnabled)
}

func (m *Manager) processNewHDA(c *asset.Client) (structs.AssetState, bool) {
	c.ParameterDefinitionSyncNeeded = true
	m.logErr(c, "sync parameter definitions", m.collab.SyncParameters(c, asset.PhaseDefinition))
	return structs.PreInstantiation, true
}

func (m *Manager) processNeedInstantiation(c *asset.Client) (structs.AssetState, bool) {
	if c.NeedUpdate() {
		if c.ParameterDefinitionSyncNeeded {
			m.logErr(c, "sync parameter definitions", m.collab.SyncParameters(c, asset.PhaseDefinition))
		}
		return structs.PreInstantiation, true
	}
	if c.Flags.NeedOutputSync {
		m.syncIdleOutputs(c)
	}
	return structs.NeedInstantiation, false
}

func (m *Manager) processPreInstantiation(c *asset.Client) (structs.AssetState, bool) {
	if c.WaitingOnUpstream() {
		return structs.PreInstantiation, false
	}

	c.OutputNodes = nil
	err := m.enqueue(c, &structs.Task{
		Kind:       structs.KindInstantiate,
		Definition: c.Definition,
		NodeID:     structs.InvalidNodeID,
	})
	if err != nil {
		log.Println("[Manager]", c.Name, "failed to enqueue instantiation:", err)
		return structs.NeedInstantiation, false
	}
	return structs.Instantiating, false
}

func (m *Manager) processInstantiating(c *asset.Client) (structs.AssetState, bool) {
	info, res := m.poll(c, structs.KindInstantiate)
	switch res {
	case registry.PollPending:
		return structs.Instantiating, false
	case registry.PollFailed:
		return structs.NeedInstantiation, false
	}

	if structs.IsUsableTaskState(info.State) && info.NodeID.Valid() {
		c.NodeID = info.NodeID
		return structs.PreCook, true
	}

	log.Println("[Manager]", c.Name, "failed to instantiate:", info.StatusText, info.Result)
	if structs.IsNoLicenseResult(info.Result) {
		m.session.SetStatus(structs.SessionNoLicense)
	}
	if structs.IsLicenseResult(info.Result) {
		m.notify(&structs.Notification{
			Kind:       structs.NotifyLicense,
			ClientID:   c.ID,
			ClientName: c.Name,
			Text:       info.StatusText,
			Result:     info.Result,
			Final:      true,
		})
	}

	c.CookCount = 0
	c.NodeID = structs.InvalidNodeID
	c.PreventAutoUpdates()
	return structs.NeedInstantiation, false
}

func (m *Manager) processPreCook(c *asset.Client) (structs.AssetState, bool) {
	if c.WaitingOnUpstream() {
		return structs.PreCook, false
	}
	if !c.NodeID.Valid() {
		return structs.NeedInstantiation, false
	}

	m.logErr(c, "sync parameters", m.collab.SyncParameters(c, asset.PhasePreCook))
	m.logErr(c, "sync inputs", m.collab.SyncInputs(c, asset.PhasePreCook))
	m.logErr(c, "sync outputs", m.collab.SyncOutputs(c, asset.PhasePreCook))
	if c.UploadTransforms && c.Flags.NeedTransformSync {
		m.logErr(c, "upload transform", m.collab.UploadTransform(c))
	}
	c.ClearUploadFlags()
	c.ParameterDefinitionSyncNeeded = false

	if !m.cookingEnabledFor(c) {
		return structs.None, false
	}

	if c.UseOutputNodes {
		nodes, err := m.collab.GatherOutputNodes(c)
		m.logErr(c, "gather output nodes", err)
		c.OutputNodes = nodes
	}

	err := m.enqueue(c, &structs.Task{
		Kind:         structs.KindCook,
		NodeID:       c.NodeID,
		ExtraNodeIDs: c.OutputNodes,
		CookOptions: structs.CookOptions{
			UseOutputNodes:     c.UseOutputNodes,
			OutputTemplateGeos: c.OutputTemplateGeos,
		},
	})
	if err != nil {
		log.Println("[Manager]", c.Name, "failed to enqueue cook:", err)
		c.MarkParametersChanged()
		return structs.None, false
	}
	return structs.Cooking, false
}

func (m *Manager) processCooking(c *asset.Client) (structs.AssetState, bool) {
	info, res := m.poll(c, structs.KindCook)
	switch res {
	case registry.PollPending:
		return structs.Cooking, false
	case registry.PollFailed:
		c.LastCookSuccess = false
		return structs.None, false
	}

	c.LastCookSuccess = structs.IsUsableTaskState(info.State)
	c.SetCookResult(info.NodeID, info.CookCount)
	return structs.PostCook, true
}

func (m *Manager) processPostCook(c *asset.Client) (structs.AssetState, bool) {
	c.ClearManualFlags()
	if !c.LastCookSuccess {
		return structs.None, false
	}

	node, _ := c.CookResult()
	if node.Valid() {
		c.NodeID = node
	}

	m.logErr(c, "sync outputs", m.collab.SyncOutputs(c, asset.PhasePostCook))
	m.logErr(c, "sync handles", m.collab.SyncHandles(c))
	m.logErr(c, "sync parameters", m.collab.SyncParameters(c, asset.PhasePostCook))
	return structs.PreProcess, true
}

func (m *Manager) processProcessing(c *asset.Client) (structs.AssetState, bool) {
	m.logErr(c, "process outputs", m.collab.ProcessOutputs(c))

	count, err := m.collab.CookCount(c)
	if err != nil || count < 0 {
		_, count = c.CookResult()
	}
	if count >= 0 {
		c.CookCount = count
	}
	return structs.None, false
}

func (m *Manager) processNone(c *asset.Client) (structs.AssetState, bool) {
	if c.RequestID != "" {
		// an outstanding cook count check
		info, res := m.poll(c, structs.KindPostCookProcess)
		if res == registry.PollPending {
			return structs.None, false
		}
		if res == registry.PollFinished && structs.IsUsableTaskState(info.State) && m.cookedElsewhere(c, info.CookCount) {
			return structs.PreCook, true
		}
	}

	if c.Flags.ForceRebuild && c.NodeID.Valid() {
		return structs.NeedRebuild, false
	}
	if c.NeedUpdate() {
		return structs.PreCook, true
	}

	if c.UploadTransforms && c.Flags.NeedTransformSync {
		m.logErr(c, "upload transform", m.collab.UploadTransform(c))
		c.Flags.NeedTransformSync = false
	} else if c.Flags.NeedOutputSync {
		m.syncIdleOutputs(c)
	}

	if m.opts.SessionSync && m.opts.SyncWithEngineCook && c.NodeID.Valid() {
		count, err := m.collab.CookCount(c)
		if err == nil {
			if m.cookedElsewhere(c, count) {
				return structs.PreCook, true
			}
		} else if errors.Is(err, ie.ErrNotSupported) {
			// ask the engine instead; the answer is picked up next time round
			err = m.enqueue(c, &structs.Task{Kind: structs.KindPostCookProcess, NodeID: c.NodeID})
			m.logErr(c, "enqueue cook count check", err)
		} else {
			m.logErr(c, "cook count", err)
		}
	}

	return structs.None, false
}

// cookedElsewhere returns if the engine's cook count says the node was cooked by someone
// other than us.
func (m *Manager) cookedElsewhere(c *asset.Client, count int32) bool {
	return count >= 0 && count != c.CookCount
}

func (m *Manager) processNeedRebuild(c *asset.Client) (structs.AssetState, bool) {
	m.detach(c)
	if c.NodeID.Valid() {
		m.deleteNode(c, false)
	}
	c.NodeID = structs.InvalidNodeID
	c.CookCount = 0
	c.MarkNeedCook()
	return structs.PreInstantiation, true
}

func (m *Manager) processNeedDelete(c *asset.Client) (structs.AssetState, bool) {
	m.detach(c)
	if c.NodeID.Valid() {
		m.deleteNode(c, true)
	}
	c.NodeID = structs.InvalidNodeID
	return structs.Deleting, false
}

// deleteNode enqueues deletion of the client's node; if that fails the node is left for
// the end of frame drain.
func (m *Manager) deleteNode(c *asset.Client, parent bool) {
	err := m.enqueueDetached(c, &structs.Task{
		Kind:         structs.KindDelete,
		NodeID:       c.NodeID,
		DeleteParent: parent,
	})
	if err != nil {
		log.Println("[Manager]", c.Name, "delete of node", c.NodeID, "deferred:", err)
		m.pendingDeletes = append(m.pendingDeletes, pendingDelete{node: c.NodeID, parent: parent})
	}
}

func (m *Manager) processTemplate(c *asset.Client) (structs.AssetState, bool) {
	if c.Flags.NeedParameterSync && m.cookingEnabled {
		m.logErr(c, "sync template", m.collab.SyncTemplate(c))
		c.Flags.NeedParameterSync = false
	}
	return structs.ProcessTemplate, false
}

func (m *Manager) syncIdleOutputs(c *asset.Client) {
	m.logErr(c, "sync outputs", m.collab.SyncOutputs(c, asset.PhaseIdle))
	c.Flags.NeedOutputSync = false
}

func (m *Manager) logErr(c *asset.Client, what string, err error) {
	if err == nil {
		return
	}
	log.Println("[Manager]", c.Name, what+":", err)
}
