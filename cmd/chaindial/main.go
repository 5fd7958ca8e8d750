package main

import (
	"context"
	"crypto/tls"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/spf13/pflag"

	"chaindial/internal/chain"
	"chaindial/internal/config"
	"chaindial/internal/logging"
	"chaindial/internal/netutil"

	_ "chaindial/internal/connector/tcp"
	_ "chaindial/internal/dialer/quic"
	_ "chaindial/internal/dialer/tcp"
	_ "chaindial/internal/dialer/tls"
)

var version = "dev"

var (
	configPath   string
	logLevel     string
	dialTimeout  time.Duration
	insecureFlag bool
	printVersion bool
)

func main() {
	pflag.StringVarP(&configPath, "config", "c", "", "chain configuration file (YAML)")
	pflag.StringVarP(&logLevel, "log-level", "l", "", "log level (debug, info, warn, error, off)")
	pflag.DurationVar(&dialTimeout, "timeout", 0, "dial timeout override")
	pflag.BoolVar(&insecureFlag, "insecure", false, "skip TLS verification on first-hop tls/quic transports")
	pflag.BoolVarP(&printVersion, "version", "V", false, "print version")
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] host:port\n\n", os.Args[0])
		pflag.PrintDefaults()
	}
	pflag.Parse()

	if printVersion {
		fmt.Printf("chaindial %s (%s %s/%s)\n", version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
		return
	}

	if pflag.NArg() != 1 {
		pflag.Usage()
		os.Exit(2)
	}
	destination := pflag.Arg(0)

	if err := run(destination); err != nil {
		fmt.Fprintf(os.Stderr, "chaindial: %v\n", err)
		os.Exit(1)
	}
}

func run(destination string) error {
	cfg := config.Default()
	if configPath != "" {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
	}

	if logLevel != "" {
		level, err := logging.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		cfg.Level = level
	}
	logger := logging.New(logging.Options{Level: cfg.Level, Out: os.Stderr})

	ch, err := chain.FromConfig(cfg.Chain)
	if err != nil {
		return err
	}

	opts := []chain.DialerOption{
		chain.ReadTimeoutOption(cfg.ReadTimeout.Std()),
		chain.LoggerOption(logger),
	}
	if dialTimeout > 0 {
		opts = append(opts, chain.DialTimeoutOption(dialTimeout))
	} else {
		opts = append(opts, chain.DialTimeoutOption(cfg.DialTimeout.Std()))
	}
	if insecureFlag || cfg.Insecure {
		opts = append(opts, chain.TLSConfigOption(&tls.Config{InsecureSkipVerify: true}))
	}

	dialer, err := chain.NewDialer(ch, opts...)
	if err != nil {
		return err
	}

	start := time.Now()
	conn, err := dialer.DialContext(context.Background(), "tcp", destination)
	if err != nil {
		return err
	}
	logger.Info("connected to %s via %s", destination, ch)

	up, down, err := netutil.Pipe(os.Stdin, os.Stdout, conn)
	if err != nil {
		logger.Debug("pipe finished: %v", err)
	}
	logger.Info("%s closed, %d bytes sent, %d bytes received, %v", destination, up, down, time.Since(start))
	return nil
}
