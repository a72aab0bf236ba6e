package notify

import (
	"crypto/tls"
)

// Options for the redis backed notifier.
type Options struct {
	// URL is the redis address (host:port).
	URL string

	// TLSConfig needed to connect to redis (optional).
	TLSConfig *tls.Config
}
