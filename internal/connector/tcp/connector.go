// Package tcp provides the passthrough connector for relays that forward
// raw TCP without any hop negotiation (plain port forwarders). The relay is
// assumed to be statically configured with its next hop, so Connect has
// nothing to say on the wire.
package tcp

import (
	"context"
	"net"

	"chaindial/internal/connector"
	"chaindial/internal/logging"
	"chaindial/internal/registry"
)

func init() {
	registry.ConnectorRegistry().Register("tcp", NewConnector)
}

type Connector struct {
	logger *logging.Logger
}

func NewConnector(opts ...connector.Option) connector.Connector {
	options := connector.Options{}
	for _, opt := range opts {
		opt(&options)
	}
	return &Connector{logger: options.Logger}
}

func (c *Connector) Connect(_ context.Context, conn net.Conn, network, address string, opts ...connector.ConnectOption) (net.Conn, error) {
	options := connector.ConnectOptions{}
	for _, opt := range opts {
		opt(&options)
	}
	logger := options.Logger
	if logger == nil {
		logger = c.logger
	}
	if logger != nil {
		logger.Debug("tcp passthrough %s %s", network, address)
	}
	return conn, nil
}
