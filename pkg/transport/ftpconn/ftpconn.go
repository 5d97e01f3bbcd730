package ftpconn

import (
	"io"
	"net"
	"time"

	"github.com/jlaffaye/ftp"

	"github.com/oarkflow/ftp/pkg/transport"
)

// Dialer ... Dials FTP control connections with jlaffaye/ftp. Data connections are
// always initiated client-side (EPSV, falling back to PASV); DisabledEPSV forces the
// classic PASV command for servers that mishandle EPSV.
type Dialer struct {
	Timeout      time.Duration
	DialFunc     func(network, address string) (net.Conn, error)
	DisabledEPSV bool
}

func (d Dialer) Dial(addr string) (transport.Conn, error) {
	var opts []ftp.DialOption
	if d.Timeout > 0 {
		opts = append(opts, ftp.DialWithTimeout(d.Timeout))
	}
	if d.DialFunc != nil {
		opts = append(opts, ftp.DialWithDialFunc(d.DialFunc))
	}
	if d.DisabledEPSV {
		opts = append(opts, ftp.DialWithDisabledEPSV(true))
	}
	c, err := ftp.Dial(addr, opts...)
	if err != nil {
		return nil, err
	}
	return &Conn{c: c}, nil
}

// Conn ... A live jlaffaye/ftp control connection.
type Conn struct {
	c *ftp.ServerConn
}

func (c *Conn) Login(user, password string) error {
	return c.c.Login(user, password)
}

// Binary switches the session to image type, so transfers copy bytes verbatim.
func (c *Conn) Binary() error {
	return c.c.Type(ftp.TransferTypeBinary)
}

func (c *Conn) Stor(path string, r io.Reader) error {
	return c.c.Stor(path, r)
}

func (c *Conn) Retr(path string) (io.ReadCloser, error) {
	resp, err := c.c.Retr(path)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Conn) NameList(path string) ([]string, error) {
	return c.c.NameList(path)
}

func (c *Conn) Delete(path string) error {
	return c.c.Delete(path)
}

func (c *Conn) ChangeDir(path string) error {
	return c.c.ChangeDir(path)
}

func (c *Conn) CurrentDir() (string, error) {
	return c.c.CurrentDir()
}

func (c *Conn) Quit() error {
	return c.c.Quit()
}
