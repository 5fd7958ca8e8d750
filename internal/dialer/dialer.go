package dialer

import (
	"context"
	"net"
)

// Dialer opens the transport connection to the first relay of a chain (or to
// a direct destination). The addr is resolved locally by the implementation.
//
// Implementations register themselves with the dialer registry under their
// transport name ("tcp", "tls", "quic").
type Dialer interface {
	Dial(ctx context.Context, addr string, opts ...DialOption) (net.Conn, error)
}
