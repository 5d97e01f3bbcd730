package fs

import (
	"errors"
	"io"
	"os"

	"github.com/oarkflow/bitwise"

	"github.com/oarkflow/ftp/pkg/log"
)

// FS ... The client-side store transfers run against: downloads are written to it,
// uploads are read from it.
type FS interface {
	Create(name string) (io.WriteCloser, error)
	Open(name string) (io.ReadCloser, error)
	MkdirAll(name string, mode os.FileMode) error
	Exists(name string) (bool, error)
	Remove(name string) error
	SetLogger(logger log.Logger)
	Logger() log.Logger
	SetPermissions(p []string)
	Permissions() []string
	Type() string
}

var (
	// ErrPermissionDenied ... The store's permission mask forbids the action.
	ErrPermissionDenied = errors.New("permission denied")
	// ErrReadOnly ... The store was opened read-only.
	ErrReadOnly = errors.New("filesystem is read-only")
	// ErrNoDiskSpace ... The store refused the write for lack of space.
	ErrNoDiskSpace = errors.New("no space left for file")
)

var factory bitwise.Perman

const (
	// Read ... Permission to stat a file.
	Read = "read"
	// ReadContent ... Permission to read the contents of a file.
	ReadContent = "read-content"
	// Create ... Permission to create a file.
	Create = "create"
	// Update ... Permission to overwrite an existing file.
	Update = "update"
	// Delete ... Permission to delete a file.
	Delete = "delete"
)

// DefaultPermissions ... Full access to the local store.
var DefaultPermissions = []string{Read, ReadContent, Create, Update, Delete}

func init() {
	factory = bitwise.Factory([]string{Read, ReadContent, Create, Update, Delete})
}

// Can - Determines if the session may perform a specific action on the local store.
func Can(permissions int64, permission string) bool {
	return factory.Has(permissions, permission)
}

func Serialize(perm []string) int64 {
	return factory.Serialize(perm)
}

func Deserialize(perm int64) []string {
	return factory.Deserialize(perm)
}
