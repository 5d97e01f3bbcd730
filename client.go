package ftp

import (
	"net"
	"strconv"
	"time"

	"github.com/oarkflow/ftp/pkg/errs"
	fs2 "github.com/oarkflow/ftp/pkg/fs"
	"github.com/oarkflow/ftp/pkg/fs/afos"
	"github.com/oarkflow/ftp/pkg/log"
	"github.com/oarkflow/ftp/pkg/log/oarklog"
	"github.com/oarkflow/ftp/pkg/transport"
	"github.com/oarkflow/ftp/pkg/transport/ftpconn"
)

type state int

const (
	stateUninitialized state = iota
	stateConnected
	stateClosed
)

func (s state) String() string {
	switch s {
	case stateConnected:
		return "connected"
	case stateClosed:
		return "closed"
	default:
		return "uninitialized"
	}
}

// Client ... A single FTP session. The control connection is owned exclusively by
// this value; a dropped session is discarded and a new one constructed, there is no
// reconnect. Concurrent use from multiple goroutines is not supported, callers
// serialize access or run one session per unit of work.
type Client struct {
	host                 string
	username             string
	password             string
	port                 int
	timeout              time.Duration
	dialer               transport.Dialer
	dialFunc             func(network, address string) (net.Conn, error)
	disabledEPSV         bool
	local                fs2.FS
	logger               log.Logger
	notificationCallback NotificationHandler
	notify               bool
	conn                 transport.Conn
	state                state
}

func defaultClient(host, username, password string) *Client {
	return &Client{
		host:     host,
		username: username,
		password: password,
		port:     21,
		timeout:  30 * time.Second,
		local:    afos.New(""),
		logger:   oarklog.Default(),
		notify:   true,
	}
}

// New builds a session for the given endpoint. Nothing is dialed until Connect;
// the password is held for login only and never logged.
func New(host, username, password string, opts ...func(*Client)) *Client {
	return newClient(defaultClient(host, username, password), opts...)
}

func newClient(c *Client, opts ...func(*Client)) *Client {
	for _, o := range opts {
		o(c)
	}
	if c.local.Logger() == nil {
		c.local.SetLogger(c.logger)
	}
	if len(c.local.Permissions()) == 0 {
		c.local.SetPermissions(fs2.DefaultPermissions)
	}
	return c
}

// Connect dials the control connection, authenticates and switches the session to
// binary type. Data connections are negotiated client-side (passive) by the
// transport. Valid only on a session that has never been connected.
func (c *Client) Connect() error {
	if c.state != stateUninitialized {
		return &errs.PreconditionError{Op: "connect", State: c.state.String()}
	}

	dialer := c.dialer
	if dialer == nil {
		dialer = ftpconn.Dialer{
			Timeout:      c.timeout,
			DialFunc:     c.dialFunc,
			DisabledEPSV: c.disabledEPSV,
		}
	}

	addr := net.JoinHostPort(c.host, strconv.Itoa(c.port))
	conn, err := dialer.Dial(addr)
	if err != nil {
		cerr := &errs.ConnectionError{Host: addr, Err: err}
		c.emit("Connect", addr, "", cerr)
		return cerr
	}

	if err := conn.Login(c.username, c.password); err != nil {
		conn.Quit()
		aerr := &errs.AuthenticationError{User: c.username, Err: err}
		c.emit("Login", addr, "", aerr)
		return aerr
	}

	if err := conn.Binary(); err != nil {
		conn.Quit()
		cerr := &errs.ConnectionError{Host: addr, Err: err}
		c.emit("Connect", addr, "", cerr)
		return cerr
	}

	c.conn = conn
	c.state = stateConnected
	c.emit("Connect", addr, "", nil)
	return nil
}

// active gates every operation that needs an established session.
func (c *Client) active(op string) (transport.Conn, error) {
	if c.state != stateConnected || c.conn == nil {
		return nil, &errs.PreconditionError{Op: op, State: c.state.String()}
	}
	return c.conn, nil
}

// Close quits the control connection and drops the handle. Safe to call on a
// session that never connected or was closed before.
func (c *Client) Close() error {
	if c.conn != nil {
		if err := c.conn.Quit(); err != nil {
			c.logger.Warn("error closing control connection", "host", c.host, "err", err)
		}
		c.conn = nil
		c.emit("Close", c.host, "", nil)
	}
	c.state = stateClosed
	return nil
}
