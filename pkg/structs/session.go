package structs

// SessionStatus is the host-visible status of the engine session.
type SessionStatus string

const (
	SessionNotStarted SessionStatus = "NotStarted"
	SessionConnected  SessionStatus = "Connected"
	SessionStopped    SessionStatus = "Stopped"
	SessionFailed     SessionStatus = "Failed"
	SessionLost       SessionStatus = "Lost"
	SessionNoLicense  SessionStatus = "NoLicense"
	SessionNone       SessionStatus = "None"
	SessionInvalid    SessionStatus = "Invalid"
)
