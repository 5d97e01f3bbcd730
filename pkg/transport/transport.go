package transport

import (
	"io"
)

// Conn ... An established FTP control connection. Implementations issue the
// corresponding protocol commands and surface any failure as an error.
type Conn interface {
	Login(user, password string) error
	Binary() error
	Stor(path string, r io.Reader) error
	Retr(path string) (io.ReadCloser, error)
	NameList(path string) ([]string, error)
	Delete(path string) error
	ChangeDir(path string) error
	CurrentDir() (string, error)
	Quit() error
}

// Dialer ... Establishes the control connection to an FTP server.
type Dialer interface {
	Dial(addr string) (Conn, error)
}
