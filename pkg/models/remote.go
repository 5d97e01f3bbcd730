package models

import (
	"errors"
)

// Filesystem ... Where transferred files live on the client side.
type Filesystem struct {
	Fs     string         `json:"fs"`
	Params map[string]any `json:"params"`
}

// Remote ... A named FTP endpoint with its credentials and the local-side
// filesystems downloads should land in.
type Remote struct {
	Name              string        `json:"name"`
	Host              string        `json:"host"`
	Port              int           `json:"port"`
	Username          string        `json:"username"`
	Password          string        `json:"password"`
	Filesystems       []*Filesystem `json:"filesystems"`
	DefaultFilesystem string        `json:"default_filesystem"`
	Filesystem        *Filesystem   `json:"filesystem"`
}

func (r Remote) GetFilesystem() (*Filesystem, error) {
	if len(r.Filesystems) == 0 {
		return nil, nil
	}
	if r.DefaultFilesystem != "" {
		for _, fs := range r.Filesystems {
			if r.DefaultFilesystem == fs.Fs {
				r.Filesystem = fs
				break
			}
		}
		if r.Filesystem == nil {
			return nil, errors.New("no filesystem for remote")
		}
	}
	if r.Filesystem == nil {
		r.Filesystem = r.Filesystems[0]
	}
	return r.Filesystem, nil
}
