package notify

import (
	"log"

	"github.com/voidshard/cooker/pkg/structs"
)

// Log writes notifications to the standard logger.
type Log struct {
	// Progress also logs non-final progress updates (they can be chatty).
	Progress bool
}

func NewLog(progress bool) *Log {
	return &Log{Progress: progress}
}

func (l *Log) Notify(n *structs.Notification) error {
	if n == nil {
		return nil
	}
	switch n.Kind {
	case structs.NotifyProgress:
		if !n.Final && !l.Progress {
			return nil
		}
		log.Println("[Notify]", n.Text)
	case structs.NotifyLicense:
		log.Println("[Notify] license issue:", n.ClientName, n.Result, n.Text)
	case structs.NotifySession:
		log.Println("[Notify] session", n.Session, n.Text)
	default:
		log.Println("[Notify]", n.Kind, n.Text)
	}
	return nil
}
