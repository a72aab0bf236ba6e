package common

// UpdateResponse is the response from an update operation, specific to HTTP.
type UpdateResponse struct {
	// Updated is the number of assets found & flagged.
	//
	// Flagging only requests work; the assets move on over the following frames.
	Updated int64 `json:"updated"`
}
