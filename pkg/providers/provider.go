package providers

import (
	"github.com/oarkflow/ftp/pkg/models"
)

// RemoteProvider ... A catalog of named FTP endpoints.
type RemoteProvider interface {
	Lookup(name string) (*models.Remote, error)
	Register(remote models.Remote)
}
