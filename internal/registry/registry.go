package registry

import (
	"errors"
	"sync"

	"chaindial/internal/connector"
	"chaindial/internal/dialer"
)

var ErrDup = errors.New("registry: duplicate object")

type Registry[T any] interface {
	Register(name string, v T) error
	IsRegistered(name string) bool
	Get(name string) T
	GetAll() map[string]T
}

type registry[T any] struct {
	m sync.Map
}

func (r *registry[T]) Register(name string, v T) error {
	if name == "" {
		return nil
	}
	if _, loaded := r.m.LoadOrStore(name, v); loaded {
		return ErrDup
	}
	return nil
}

func (r *registry[T]) IsRegistered(name string) bool {
	_, ok := r.m.Load(name)
	return ok
}

func (r *registry[T]) Get(name string) (t T) {
	if name == "" {
		return
	}
	v, _ := r.m.Load(name)
	t, _ = v.(T)
	return
}

func (r *registry[T]) GetAll() (m map[string]T) {
	m = make(map[string]T)
	r.m.Range(func(key, value any) bool {
		k, _ := key.(string)
		v, _ := value.(T)
		m[k] = v
		return true
	})
	return
}

type NewDialer func(opts ...dialer.Option) dialer.Dialer
type NewConnector func(opts ...connector.Option) connector.Connector

type dialerRegistry struct{ registry[NewDialer] }
type connectorRegistry struct{ registry[NewConnector] }

var (
	dialerReg    Registry[NewDialer]    = new(dialerRegistry)
	connectorReg Registry[NewConnector] = new(connectorRegistry)
)

// DialerRegistry maps a transport name to its dialer factory.
func DialerRegistry() Registry[NewDialer] {
	return dialerReg
}

// ConnectorRegistry maps a relay protocol kind to its connector factory.
func ConnectorRegistry() Registry[NewConnector] {
	return connectorReg
}
