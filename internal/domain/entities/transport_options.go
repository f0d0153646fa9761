package entities

import "time"

// TransportOptions tunes the tarball HTTP client.
type TransportOptions struct {
	Retries int           // extra attempts after the first one
	Timeout time.Duration // zero means no timeout
}
