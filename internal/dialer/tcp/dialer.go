package tcp

import (
	"context"
	"net"
	"time"

	"chaindial/internal/config"
	"chaindial/internal/dialer"
	"chaindial/internal/registry"
)

func init() {
	registry.DialerRegistry().Register("tcp", NewDialer)
}

type Dialer struct {
	timeout   time.Duration
	keepAlive time.Duration
}

func NewDialer(opts ...dialer.Option) dialer.Dialer {
	options := dialer.Options{}
	for _, opt := range opts {
		opt(&options)
	}

	timeout := options.Timeout
	if timeout <= 0 {
		timeout = config.DefaultDialTimeout
	}
	keepAlive := options.KeepAlive
	if keepAlive <= 0 {
		keepAlive = config.DefaultDialKeepAlive
	}

	return &Dialer{
		timeout:   timeout,
		keepAlive: keepAlive,
	}
}

func (d *Dialer) Dial(ctx context.Context, addr string, _ ...dialer.DialOption) (net.Conn, error) {
	nd := &net.Dialer{
		Timeout:   d.timeout,
		KeepAlive: d.keepAlive,
	}
	return nd.DialContext(ctx, "tcp", addr)
}
