package quic

import (
	"io"
	"net"
	"sync"
	"time"

	"github.com/quic-go/quic-go"
)

// stream is the slice of *quic.Stream the conn wrapper relies on.
type stream interface {
	io.ReadWriteCloser
	SetDeadline(t time.Time) error
	SetReadDeadline(t time.Time) error
	SetWriteDeadline(t time.Time) error
}

type closer interface {
	CloseWithError(code quic.ApplicationErrorCode, desc string) error
}

// streamConn adapts a single QUIC stream to net.Conn. A chain dial owns
// exactly one stream, so closing the conn tears down the whole QUIC
// connection, not just the stream.
type streamConn struct {
	stream stream
	local  net.Addr
	remote net.Addr
	closer closer

	closeOnce sync.Once
}

func (c *streamConn) Close() error {
	var err error
	c.closeOnce.Do(func() {
		err = c.stream.Close()
		if c.closer != nil {
			_ = c.closer.CloseWithError(0, "")
		}
	})
	return err
}

func (c *streamConn) LocalAddr() net.Addr  { return c.local }
func (c *streamConn) RemoteAddr() net.Addr { return c.remote }

func (c *streamConn) Read(p []byte) (int, error)  { return c.stream.Read(p) }
func (c *streamConn) Write(p []byte) (int, error) { return c.stream.Write(p) }

func (c *streamConn) SetDeadline(t time.Time) error      { return c.stream.SetDeadline(t) }
func (c *streamConn) SetReadDeadline(t time.Time) error  { return c.stream.SetReadDeadline(t) }
func (c *streamConn) SetWriteDeadline(t time.Time) error { return c.stream.SetWriteDeadline(t) }
