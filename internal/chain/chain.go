// Package chain builds ordered relay sequences and establishes tunneled
// connections through them: the first relay is dialed directly, every
// further hop is negotiated in order over the same connection.
package chain

import (
	"errors"
	"strings"

	"chaindial/internal/endpoint"
)

// ErrEmptyChain is returned when a relayed chain is constructed from zero
// relays. An empty chain must be asked for explicitly via Direct.
var ErrEmptyChain = errors.New("chain: at least one relay required")

// Chain is an immutable ordered relay sequence. It holds no connection
// state, so one Chain may serve any number of concurrent dials.
type Chain struct {
	relays []endpoint.Endpoint
}

// Direct returns the empty chain: destinations are dialed straight, with
// local name resolution and no relays involved.
func Direct() *Chain {
	return &Chain{}
}

// New constructs a relayed chain. The relay order is fixed for the lifetime
// of the chain.
func New(relays ...endpoint.Endpoint) (*Chain, error) {
	if len(relays) == 0 {
		return nil, ErrEmptyChain
	}
	c := &Chain{relays: make([]endpoint.Endpoint, len(relays))}
	copy(c.relays, relays)
	return c, nil
}

func (c *Chain) IsDirect() bool {
	return c == nil || len(c.relays) == 0
}

func (c *Chain) Len() int {
	if c == nil {
		return 0
	}
	return len(c.relays)
}

// Relays returns a copy of the relay sequence.
func (c *Chain) Relays() []endpoint.Endpoint {
	if c == nil {
		return nil
	}
	out := make([]endpoint.Endpoint, len(c.relays))
	copy(out, c.relays)
	return out
}

// Equal reports whether two chains hold the same relays in the same order.
func (c *Chain) Equal(o *Chain) bool {
	if c.Len() != o.Len() {
		return false
	}
	if c.Len() == 0 {
		return true
	}
	for i := range c.relays {
		if !c.relays[i].Equal(o.relays[i]) {
			return false
		}
	}
	return true
}

func (c *Chain) String() string {
	if c.IsDirect() {
		return "DIRECT"
	}
	parts := make([]string, 0, len(c.relays))
	for _, r := range c.relays {
		parts = append(parts, r.String())
	}
	return strings.Join(parts, " -> ")
}
