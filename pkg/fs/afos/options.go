package afos

import (
	"github.com/spf13/afero"

	fs2 "github.com/oarkflow/ftp/pkg/fs"
)

// WithFs swaps the afero backend, e.g. a memory filesystem in tests.
func WithFs(val afero.Fs) func(*Afos) {
	return func(o *Afos) {
		o.backend = val
	}
}

func WithPermissions(val []string) func(*Afos) {
	return func(o *Afos) {
		o.permissions = fs2.Serialize(val)
	}
}

func WithReadOnly(val bool) func(*Afos) {
	return func(o *Afos) {
		o.readOnly = val
	}
}

func WithDiskSpaceValidator(val func(fs fs2.FS) bool) func(*Afos) {
	return func(o *Afos) {
		o.hasDiskSpace = val
	}
}

func WithPathValidator(val func(fs fs2.FS, p string) (string, error)) func(*Afos) {
	return func(o *Afos) {
		o.pathValidator = val
	}
}
