// Package notify delivers user visible notifications (progress, licensing & session
// problems) to wherever the host wants them.
package notify

import (
	"github.com/voidshard/cooker/pkg/structs"
)

//go:generate mockgen -source=interface.go -destination=../../internal/mocks/pkg/notify_mock/notifier.go -package=notify_mock
type Notifier interface {
	// Notify delivers a notification. It must not block the caller for long.
	Notify(n *structs.Notification) error
}
