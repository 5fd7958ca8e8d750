package connector

import (
	"context"
	"net"
)

// Connector negotiates one forwarding hop with a relay that is already
// reachable over conn: it instructs the relay to forward to address and
// returns the connection with the tunnel extended by one hop. The address is
// passed through verbatim; any name resolution is the relay's business.
//
// Implementations register themselves with the connector registry under
// their protocol kind.
type Connector interface {
	Connect(ctx context.Context, conn net.Conn, network, address string, opts ...ConnectOption) (net.Conn, error)
}
