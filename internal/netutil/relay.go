package netutil

import (
	"io"
	"net"

	"golang.org/x/sync/errgroup"
)

type closeWriter interface {
	CloseWrite() error
}

// Pipe couples a reader/writer pair (typically stdio) with a conn: reader
// bytes go to the conn, conn bytes go to the writer. When the reader ends,
// the write side of the conn is half-closed so the peer sees EOF; when the
// peer closes, the conn is torn down and Pipe returns. It reports the bytes
// moved in each direction and the first copy error, if any.
func Pipe(r io.Reader, w io.Writer, conn net.Conn) (up, down int64, err error) {
	var g errgroup.Group
	g.Go(func() error {
		n, err := io.Copy(conn, r)
		up = n
		if cw, ok := conn.(closeWriter); ok {
			cw.CloseWrite()
		}
		return err
	})
	g.Go(func() error {
		n, err := io.Copy(w, conn)
		down = n
		conn.Close()
		return err
	})
	err = g.Wait()
	return up, down, err
}
