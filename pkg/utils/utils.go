package utils

import (
	"path"
	"path/filepath"
)

func AbsPath(p string) string {
	if !filepath.IsAbs(p) {
		b, err := filepath.Abs(p)
		if err == nil {
			p = b
		}
	}
	return p
}

// Qualify resolves a bare listing entry against the directory it was listed from.
// Entries that already carry a directory component are returned unchanged.
func Qualify(dir, entry string) string {
	if path.Dir(entry) != "." {
		return entry
	}
	return path.Join(dir, entry)
}
