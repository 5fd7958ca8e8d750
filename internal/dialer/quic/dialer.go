package quic

import (
	"context"
	"crypto/tls"
	"net"
	"time"

	"github.com/quic-go/quic-go"

	"chaindial/internal/config"
	"chaindial/internal/dialer"
	"chaindial/internal/registry"
)

func init() {
	registry.DialerRegistry().Register("quic", NewDialer)
}

type Dialer struct {
	timeout   time.Duration
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
	cfg := options.TLSConfig
	if cfg == nil {
		cfg = &tls.Config{}
	}

	return &Dialer{
		timeout:   timeout,
		tlsConfig: cfg,
	}
}

func (d *Dialer) Dial(ctx context.Context, addr string, _ ...dialer.DialOption) (net.Conn, error) {
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	tlsCfg := d.tlsConfig.Clone()
	ensureNextProtos(tlsCfg, []string{"h3"})

	qconn, err := quic.DialAddr(ctx, addr, tlsCfg, nil)
	if err != nil {
		return nil, err
	}

	st, err := qconn.OpenStreamSync(ctx)
	if err != nil {
		_ = qconn.CloseWithError(0, "")
		return nil, err
	}

	return &streamConn{
		stream: st,
		local:  qconn.LocalAddr(),
		remote: qconn.RemoteAddr(),
		closer: qconn,
	}, nil
}

func ensureNextProtos(cfg *tls.Config, protos []string) {
	if cfg == nil || len(protos) == 0 {
		return
	}
	existing := map[string]struct{}{}
	for _, p := range cfg.NextProtos {
		existing[p] = struct{}{}
	}
	for _, p := range protos {
		if _, ok := existing[p]; !ok {
			cfg.NextProtos = append(cfg.NextProtos, p)
		}
	}
}
