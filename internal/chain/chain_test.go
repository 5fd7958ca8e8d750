package chain

import (
	"errors"
	"testing"

	"chaindial/internal/endpoint"
)

func mustParse(t *testing.T, raw string) endpoint.Endpoint {
	t.Helper()
	ep, err := endpoint.Parse(raw)
	if err != nil {
		t.Fatalf("parse %q: %v", raw, err)
	}
	return ep
}

func TestNewEmptyChain(t *testing.T) {
	_, err := New()
	if !errors.Is(err, ErrEmptyChain) {
		t.Fatalf("New() error = %v, want ErrEmptyChain", err)
	}
}

func TestDirect(t *testing.T) {
	c := Direct()
	if !c.IsDirect() {
		t.Fatal("Direct() must be direct")
	}
	if c.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", c.Len())
	}
	if got := c.String(); got != "DIRECT" {
		t.Fatalf("String() = %q, want DIRECT", got)
	}
}

func TestChainImmutable(t *testing.T) {
	relays := []endpoint.Endpoint{
		mustParse(t, "socks5://a.example:1080"),
		mustParse(t, "http://b.example:3128"),
	}
	c, err := New(relays...)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	// Mutating the input or the returned copy must not touch the chain.
	relays[0] = mustParse(t, "socks5://z.example:9999")
	got := c.Relays()
	got[1] = mustParse(t, "socks5://z.example:9999")

	fresh := c.Relays()
	if fresh[0].Host != "a.example" || fresh[1].Host != "b.example" {
		t.Fatalf("chain mutated: %v", fresh)
	}
}

func TestEqualAndString(t *testing.T) {
	a1, err := New(
		mustParse(t, "socks5://a.example:1080"),
		mustParse(t, "http://b.example:3128"),
	)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	a2, err := New(
		mustParse(t, "socks5://a.example:1080"),
		mustParse(t, "http://b.example:3128"),
	)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	reversed, err := New(
		mustParse(t, "http://b.example:3128"),
		mustParse(t, "socks5://a.example:1080"),
	)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	if !a1.Equal(a2) {
		t.Fatal("chains with identical sequences must be equal")
	}
	if a1.String() != a2.String() {
		t.Fatalf("renderings differ: %q vs %q", a1.String(), a2.String())
	}
	if a1.Equal(reversed) {
		t.Fatal("order must participate in equality")
	}

	want := "socks5://a.example:1080 -> http://b.example:3128"
	if got := a1.String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestEqualDirect(t *testing.T) {
	if !Direct().Equal(Direct()) {
		t.Fatal("direct chains must be equal")
	}
	c, err := New(mustParse(t, "socks5://a.example:1080"))
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if c.Equal(Direct()) {
		t.Fatal("relayed chain must not equal direct")
	}
}
