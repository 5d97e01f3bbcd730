package afos

import (
	"errors"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/afero"

	fs2 "github.com/oarkflow/ftp/pkg/fs"
	"github.com/oarkflow/ftp/pkg/log"
	"github.com/oarkflow/ftp/pkg/utils"
)

// Afos ... Local disk storage for transfers. With a non-empty base path every
// name is resolved under it and escapes are rejected.
type Afos struct {
	logger        log.Logger
	backend       afero.Fs
	pathValidator func(fs fs2.FS, p string) (string, error)
	hasDiskSpace  func(fs fs2.FS) bool
	basePath      string
	permissions   int64
	lock          sync.Mutex
	readOnly      bool
}

func defaultAfos(basePath string) *Afos {
	a := &Afos{
		backend: afero.NewOsFs(),
		hasDiskSpace: func(fs fs2.FS) bool {
			return true
		},
	}
	if basePath != "" {
		base := utils.AbsPath(basePath)
		a.basePath = base
		a.pathValidator = func(fs fs2.FS, p string) (string, error) {
			join := path.Join(base, p)
			if strings.HasPrefix(join, path.Clean(base)) {
				return join, nil
			}
			return "", errors.New("invalid path outside the configured directory was provided")
		}
	}
	return a
}

func New(basePath string, opts ...func(*Afos)) fs2.FS {
	svr := defaultAfos(basePath)
	for _, o := range opts {
		o(svr)
	}
	return svr
}

func (f *Afos) SetPermissions(p []string) {
	f.permissions = fs2.Serialize(p)
}

func (f *Afos) Permissions() []string {
	return fs2.Deserialize(f.permissions)
}

func (f *Afos) buildPath(p string) (string, error) {
	if f.pathValidator == nil {
		return p, nil
	}
	return f.pathValidator(f, p)
}

func (f *Afos) SetLogger(logger log.Logger) {
	f.logger = logger
}

func (f *Afos) Logger() log.Logger {
	return f.logger
}

// Open creates a reader for a local file that is about to be uploaded.
func (f *Afos) Open(name string) (io.ReadCloser, error) {
	if !fs2.Can(f.permissions, fs2.ReadContent) {
		return nil, fs2.ErrPermissionDenied
	}

	p, err := f.buildPath(name)
	if err != nil {
		return nil, err
	}

	f.lock.Lock()
	defer f.lock.Unlock()

	file, err := f.backend.Open(p)
	if err != nil {
		if !os.IsNotExist(err) {
			f.logger.Error("could not open file for reading", "source", p, "err", err)
		}
		return nil, err
	}

	return file, nil
}

// Create opens the write side of a download. Any existing file is truncated and the
// directory pathway leading up to the file is created first.
func (f *Afos) Create(name string) (io.WriteCloser, error) {
	if f.readOnly {
		return nil, fs2.ErrReadOnly
	}

	p, err := f.buildPath(name)
	if err != nil {
		return nil, err
	}

	if f.hasDiskSpace != nil && !f.hasDiskSpace(f) {
		return nil, fs2.ErrNoDiskSpace
	}

	f.lock.Lock()
	defer f.lock.Unlock()

	stat, statErr := f.backend.Stat(p)
	if os.IsNotExist(statErr) {
		if !fs2.Can(f.permissions, fs2.Create) {
			return nil, fs2.ErrPermissionDenied
		}

		if err := f.backend.MkdirAll(filepath.Dir(p), 0755); err != nil {
			f.logger.Error("error making path for file",
				"source", p,
				"path", filepath.Dir(p),
				"err", err,
			)
			return nil, err
		}

		file, err := f.backend.Create(p)
		if err != nil {
			f.logger.Error("error creating file", "source", p, "err", err)
			return nil, err
		}

		return file, nil
	}

	if statErr != nil {
		f.logger.Error("error performing file stat", "source", p, "err", statErr)
		return nil, statErr
	}

	// The file exists, so this is an overwrite rather than a create.
	if !fs2.Can(f.permissions, fs2.Update) {
		return nil, fs2.ErrPermissionDenied
	}

	if stat.IsDir() {
		f.logger.Warn("attempted to open a directory for writing to", "source", p)
		return nil, errors.New("cannot open a directory for writing")
	}

	file, err := f.backend.Create(p)
	if err != nil {
		f.logger.Error("error opening existing file", "source", p, "err", err)
		return nil, err
	}

	return file, nil
}

// MkdirAll creates a directory and every missing parent. Idempotent when the
// directory is already present.
func (f *Afos) MkdirAll(name string, mode os.FileMode) error {
	if f.readOnly {
		return fs2.ErrReadOnly
	}
	if !fs2.Can(f.permissions, fs2.Create) {
		return fs2.ErrPermissionDenied
	}

	p, err := f.buildPath(name)
	if err != nil {
		return err
	}

	if err := f.backend.MkdirAll(p, mode); err != nil {
		f.logger.Error("failed to create directory", "source", p, "err", err)
		return err
	}
	return nil
}

func (f *Afos) Exists(name string) (bool, error) {
	p, err := f.buildPath(name)
	if err != nil {
		return false, err
	}
	return afero.Exists(f.backend, p)
}

func (f *Afos) Remove(name string) error {
	if f.readOnly {
		return fs2.ErrReadOnly
	}
	if !fs2.Can(f.permissions, fs2.Delete) {
		return fs2.ErrPermissionDenied
	}

	p, err := f.buildPath(name)
	if err != nil {
		return err
	}

	if err := f.backend.Remove(p); err != nil {
		if !os.IsNotExist(err) {
			f.logger.Error("failed to remove a file", "source", p, "err", err)
		}
		return err
	}
	return nil
}

func (f *Afos) Type() string {
	return "os"
}
