package dialer

import (
	"crypto/tls"
	"time"

	"chaindial/internal/logging"
)

type Options struct {
	Timeout   time.Duration
	KeepAlive time.Duration
	TLSConfig *tls.Config
	Logger    *logging.Logger
}

type Option func(opts *Options)

func TimeoutOption(timeout time.Duration) Option {
	return func(opts *Options) {
		opts.Timeout = timeout
	}
}

func KeepAliveOption(keepAlive time.Duration) Option {
	return func(opts *Options) {
		opts.KeepAlive = keepAlive
	}
}

func TLSConfigOption(cfg *tls.Config) Option {
	return func(opts *Options) {
		opts.TLSConfig = cfg
	}
}

func LoggerOption(logger *logging.Logger) Option {
	return func(opts *Options) {
		opts.Logger = logger
	}
}

type DialOptions struct {
	Logger *logging.Logger
}

type DialOption func(opts *DialOptions)

func LoggerDialOption(logger *logging.Logger) DialOption {
	return func(opts *DialOptions) {
		opts.Logger = logger
	}
}
