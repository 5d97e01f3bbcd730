package ftp

import (
	"path"

	"github.com/oarkflow/ftp/pkg/errs"
	"github.com/oarkflow/ftp/pkg/utils"
)

// ScanDir lists remoteDir, dropping the server's self and parent entries whether
// they come back bare or path-qualified. Order is whatever the server returned.
func (c *Client) ScanDir(remoteDir string) ([]string, error) {
	conn, err := c.active("scan directory")
	if err != nil {
		return nil, err
	}

	names, err := conn.NameList(remoteDir)
	if err != nil {
		lerr := &errs.ListingError{Path: remoteDir, Err: err}
		c.emit("ScanDir", remoteDir, "", lerr)
		return nil, lerr
	}

	entries := make([]string, 0, len(names))
	for _, name := range names {
		if base := path.Base(name); base == "." || base == ".." {
			continue
		}
		entries = append(entries, name)
	}
	return entries, nil
}

// DeleteFile removes a single remote file.
func (c *Client) DeleteFile(remotePath string) error {
	conn, err := c.active("delete")
	if err != nil {
		return err
	}

	if err := conn.Delete(remotePath); err != nil {
		derr := &errs.DeletionError{Path: remotePath, Err: err}
		c.emit("Delete", remotePath, "", derr)
		return derr
	}

	c.emit("Delete", remotePath, "", nil)
	return nil
}

// DeleteAllFiles removes every entry of remoteDir in listing order. The first
// failed deletion aborts the sweep; remaining files are left untouched.
func (c *Client) DeleteAllFiles(remoteDir string) error {
	entries, err := c.ScanDir(remoteDir)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if err := c.DeleteFile(utils.Qualify(remoteDir, entry)); err != nil {
			return err
		}
	}
	return nil
}

// isDirectory probes remotePath by entering it and returning to the previous
// working directory. Two navigation commands rather than a metadata query: a
// concurrent rename on the server can race it, which the single-session design
// accepts. Inability to enter the path means "not a directory".
func (c *Client) isDirectory(remotePath string) bool {
	if c.conn == nil {
		return false
	}

	prev, err := c.conn.CurrentDir()
	if err != nil {
		return false
	}
	if err := c.conn.ChangeDir(remotePath); err != nil {
		return false
	}
	if err := c.conn.ChangeDir(prev); err != nil {
		c.logger.Warn("could not restore working directory after probe", "dir", prev, "err", err)
	}
	return true
}
