package structs

// AssetRef refers to a registered asset client.
type AssetRef struct {
	// ID is the unique identifier of the client.
	ID string `json:"id"`
}

// NewAssetRef creates a new AssetRef.
func NewAssetRef(id string) *AssetRef {
	return &AssetRef{ID: id}
}
