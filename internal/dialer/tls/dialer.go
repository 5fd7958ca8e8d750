package tls

import (
	"context"
	"crypto/tls"
	"net"
	"time"

	"chaindial/internal/config"
	"chaindial/internal/dialer"
	"chaindial/internal/registry"
)

func init() {
	registry.DialerRegistry().Register("tls", NewDialer)
}

type Dialer struct {
	timeout   time.Duration
	keepAlive time.Duration
	tlsConfig *tls.Config
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
	cfg := options.TLSConfig
	if cfg == nil {
		cfg = &tls.Config{}
	}

	return &Dialer{
		timeout:   timeout,
		keepAlive: keepAlive,
		tlsConfig: cfg,
	}
}

func (d *Dialer) Dial(ctx context.Context, addr string, _ ...dialer.DialOption) (net.Conn, error) {
	nd := &net.Dialer{
		Timeout:   d.timeout,
		KeepAlive: d.keepAlive,
	}
	conn, err := nd.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, err
	}

	cfg := d.tlsConfig.Clone()
	if cfg.ServerName == "" {
		if host, _, err := net.SplitHostPort(addr); err == nil {
			cfg.ServerName = host
		}
	}

	tlsConn := tls.Client(conn, cfg)
	if err := tlsConn.HandshakeContext(ctx); err != nil {
		conn.Close()
		return nil, err
	}
	return tlsConn, nil
}
