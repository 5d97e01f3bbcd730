package ftp

import (
	"net"
	"time"

	fs2 "github.com/oarkflow/ftp/pkg/fs"
	"github.com/oarkflow/ftp/pkg/log"
	"github.com/oarkflow/ftp/pkg/transport"
)

func WithPort(val int) func(*Client) {
	return func(o *Client) {
		o.port = val
	}
}

func WithTimeout(val time.Duration) func(*Client) {
	return func(o *Client) {
		o.timeout = val
	}
}

// WithDialer replaces the transport entirely, e.g. with a stub in tests.
func WithDialer(val transport.Dialer) func(*Client) {
	return func(o *Client) {
		o.dialer = val
	}
}

func WithDialFunc(val func(network, address string) (net.Conn, error)) func(*Client) {
	return func(o *Client) {
		o.dialFunc = val
	}
}

// WithDisabledEPSV forces classic PASV negotiation for servers that mishandle EPSV.
func WithDisabledEPSV(val bool) func(*Client) {
	return func(o *Client) {
		o.disabledEPSV = val
	}
}

// WithLocalFs selects the client-side store transfers run against.
func WithLocalFs(val fs2.FS) func(*Client) {
	return func(o *Client) {
		o.local = val
	}
}

func WithLogger(val log.Logger) func(*Client) {
	return func(o *Client) {
		o.logger = val
	}
}

func WithNotificationCallback(callback NotificationHandler) func(*Client) {
	return func(o *Client) {
		o.notificationCallback = callback
	}
}
