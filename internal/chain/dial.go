package chain

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"time"

	"chaindial/internal/config"
	"chaindial/internal/connector"
	"chaindial/internal/dialer"
	"chaindial/internal/endpoint"
	"chaindial/internal/logging"
	"chaindial/internal/registry"
)

// HopError reports a failed hop of a chain dial: which relay was being
// negotiated with and which target it was asked to reach. Hop is the
// zero-based position of the relay in the chain.
type HopError struct {
	Hop    int
	Relay  endpoint.Endpoint
	Target string
	Err    error
}

func (e *HopError) Error() string {
	return fmt.Sprintf("chain: hop %d relay %s -> %s: %v", e.Hop, e.Relay.Address(), e.Target, e.Err)
}

func (e *HopError) Unwrap() error {
	return e.Err
}

type dialerOptions struct {
	dialTimeout time.Duration
	readTimeout time.Duration
	keepAlive   time.Duration
	tlsConfig   *tls.Config
	logger      *logging.Logger
}

type DialerOption func(*dialerOptions)

// DialTimeoutOption bounds the transport dial to the first relay or to a
// direct destination.
func DialTimeoutOption(d time.Duration) DialerOption {
	return func(o *dialerOptions) {
		o.dialTimeout = d
	}
}

// ReadTimeoutOption bounds how long any single hop negotiation may block
// waiting on a relay response.
func ReadTimeoutOption(d time.Duration) DialerOption {
	return func(o *dialerOptions) {
		o.readTimeout = d
	}
}

func KeepAliveOption(d time.Duration) DialerOption {
	return func(o *dialerOptions) {
		o.keepAlive = d
	}
}

// TLSConfigOption configures the first-hop tls/quic transport, when the
// first relay asks for one.
func TLSConfigOption(cfg *tls.Config) DialerOption {
	return func(o *dialerOptions) {
		o.tlsConfig = cfg
	}
}

func LoggerOption(logger *logging.Logger) DialerOption {
	return func(o *dialerOptions) {
		o.logger = logger
	}
}

// Dialer establishes connections through a fixed chain. Construction
// resolves every relay's connector and the first relay's transport, so a
// misconfigured chain fails here and never inside DialContext.
//
// A Dialer is safe for concurrent use; each DialContext owns its socket
// exclusively until it returns.
type Dialer struct {
	chain      *Chain
	relays     []endpoint.Endpoint
	connectors []connector.Connector
	transport  dialer.Dialer

	dialTimeout time.Duration
	readTimeout time.Duration
	keepAlive   time.Duration
	logger      *logging.Logger
}

func NewDialer(ch *Chain, opts ...DialerOption) (*Dialer, error) {
	o := dialerOptions{
		dialTimeout: config.DefaultDialTimeout,
		readTimeout: config.DefaultReadTimeout,
		keepAlive:   config.DefaultDialKeepAlive,
	}
	for _, opt := range opts {
		opt(&o)
	}

	d := &Dialer{
		chain:       ch,
		relays:      ch.Relays(),
		dialTimeout: o.dialTimeout,
		readTimeout: o.readTimeout,
		keepAlive:   o.keepAlive,
		logger:      o.logger,
	}

	for _, r := range d.relays {
		newConnector := registry.ConnectorRegistry().Get(r.Kind)
		if newConnector == nil {
			return nil, fmt.Errorf("chain: no connector registered for kind %q", r.Kind)
		}
		d.connectors = append(d.connectors, newConnector(
			connector.AuthOption(r.User),
			connector.TimeoutOption(o.readTimeout),
			connector.LoggerOption(o.logger),
		))
	}

	if len(d.relays) > 0 {
		transport := d.relays[0].Transport
		if transport == "" {
			transport = "tcp"
		}
		newDialer := registry.DialerRegistry().Get(transport)
		if newDialer == nil {
			return nil, fmt.Errorf("chain: no dialer registered for transport %q", transport)
		}
		d.transport = newDialer(
			dialer.TimeoutOption(o.dialTimeout),
			dialer.KeepAliveOption(o.keepAlive),
			dialer.TLSConfigOption(o.tlsConfig),
			dialer.LoggerOption(o.logger),
		)
	}

	return d, nil
}

// DialContext opens a connection to address through the chain. On success
// the caller owns the returned conn; on any failure the partially built
// socket is closed before the error is returned.
func (d *Dialer) DialContext(ctx context.Context, network, address string) (net.Conn, error) {
	if d.chain.IsDirect() {
		return d.dialDirect(ctx, network, address)
	}

	if d.logger != nil {
		d.logger.Info("dial %s via %s", address, d.chain)
	}

	first := d.relays[0]
	conn, err := d.transport.Dial(ctx, first.Address(), dialer.LoggerDialOption(d.logger))
	if err != nil {
		return nil, &HopError{Hop: 0, Relay: first, Target: first.Address(), Err: err}
	}

	// Every exit below either hands conn to the caller or closes it.
	established := false
	defer func() {
		if !established {
			conn.Close()
		}
	}()

	for i, relay := range d.relays {
		// One-element look-ahead: intermediate targets stay unresolved,
		// only the last hop is asked for the real destination.
		target := address
		if i < len(d.relays)-1 {
			target = d.relays[i+1].Address()
		}
		if d.logger != nil {
			d.logger.Debug("hop %d: %s -> %s", i, relay.Address(), target)
		}
		// The read budget is per hop: every negotiation gets a fresh
		// deadline, however long the walk has already taken.
		_ = conn.SetReadDeadline(time.Now().Add(d.readTimeout))
		cc, err := d.connectors[i].Connect(ctx, conn, network, target, connector.LoggerConnectOption(d.logger))
		if err != nil {
			if d.logger != nil {
				d.logger.Debug("hop %d failed: %s -> %s: %v", i, relay.Address(), target, err)
			}
			return nil, &HopError{Hop: i, Relay: relay, Target: target, Err: err}
		}
		conn = cc
	}

	_ = conn.SetReadDeadline(time.Time{})
	established = true
	return conn, nil
}

func (d *Dialer) dialDirect(ctx context.Context, network, address string) (net.Conn, error) {
	if d.logger != nil {
		d.logger.Info("dial %s via DIRECT", address)
	}
	nd := &net.Dialer{
		Timeout:   d.dialTimeout,
		KeepAlive: d.keepAlive,
	}
	conn, err := nd.DialContext(ctx, network, address)
	if err != nil {
		return nil, fmt.Errorf("chain: direct dial %s: %w", address, err)
	}
	return conn, nil
}
