package common

const (
	// API_HEALTH reports the server is up
	API_HEALTH = "/healthz"

	// API_SESSION is used to get the engine session status
	API_SESSION = "/api/v1/session"

	// API_COOKING is used to toggle cooking host-wide
	API_COOKING = "/api/v1/cooking"

	// API_ASSETS is used to get asset client states
	API_ASSETS = "/api/v1/assets"

	// API_RECOOK is used to request a cook of assets
	API_RECOOK = "/api/v1/recook"

	// API_REBUILD is used to request assets be re-instantiated
	API_REBUILD = "/api/v1/rebuild"

	// API_DELETE is used to delete the engine nodes of assets
	API_DELETE = "/api/v1/delete"

	// API_TASKS is used to get journaled task outcomes
	API_TASKS = "/api/v1/tasks"
)
