package asset

// Owner is the host-side component that owns an asset client.
//
// A nil Owner behaves as a valid, loaded, unselected component in normal playback.
type Owner interface {
	// IsValid returns false once the host component is gone; the client is then unregistered.
	IsValid() bool

	// IsSelected returns if the user has the component selected. Selected clients are
	// processed every frame.
	IsSelected() bool

	// IsFullyLoaded returns if the component finished loading.
	IsFullyLoaded() bool

	// AdvanceLoading gives a loading component a chance to progress. It returns true
	// if the component is now fully loaded.
	AdvanceLoading() bool

	// InRestrictedPlayback returns if the owning world is in a playback mode where
	// assets should not be processed (eg. play-in-editor).
	InRestrictedPlayback() bool

	// HasOpenEditor returns if an editor is open on the component (templates only).
	HasOpenEditor() bool
}
