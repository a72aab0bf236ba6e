package structs

// NotificationKind says what a Notification is about.
type NotificationKind string

const (
	// NotifyProgress is a task status update. Final is set once the task is done.
	NotifyProgress NotificationKind = "progress"

	// NotifyLicense is raised when the engine refuses an asset for licensing reasons.
	NotifyLicense NotificationKind = "license"

	// NotifySession is raised when the engine session changes status.
	NotifySession NotificationKind = "session"
)

// Notification is a user visible message.
type Notification struct {
	Kind       NotificationKind `json:"kind"`
	ClientID   string           `json:"client_id,omitempty"`
	ClientName string           `json:"client_name,omitempty"`
	Text       string           `json:"text"`
	Final      bool             `json:"final,omitempty"`
	Result     Result           `json:"result,omitempty"`
	Session    SessionStatus    `json:"session,omitempty"`
	CreatedAt  int64            `json:"created_at"`
}
