package notify

import (
	"fmt"

	"github.com/voidshard/cooker/pkg/structs"
)

// Multi fans a notification out to several notifiers.
type Multi struct {
	sinks []Notifier
}

func NewMulti(sinks ...Notifier) *Multi {
	m := &Multi{}
	for _, s := range sinks {
		if s != nil {
			m.sinks = append(m.sinks, s)
		}
	}
	return m
}

// Notify delivers to every sink, even if some fail.
func (m *Multi) Notify(n *structs.Notification) error {
	var final error
	for _, s := range m.sinks {
		err := s.Notify(n)
		if err == nil {
			continue
		}
		if final == nil {
			final = err
		} else {
			final = fmt.Errorf("%w\n%v", final, err)
		}
	}
	return final
}
