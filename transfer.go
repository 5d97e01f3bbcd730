package ftp

import (
	"io"
	"path"
	"path/filepath"

	"github.com/oarkflow/ftp/pkg/errs"
	"github.com/oarkflow/ftp/pkg/utils"
)

// UploadFile copies a local file's bytes to remotePath. The session transfers in
// binary type; byte counts and checksums are not verified.
func (c *Client) UploadFile(remotePath, localPath string) error {
	conn, err := c.active("upload")
	if err != nil {
		return err
	}

	src, err := c.local.Open(localPath)
	if err != nil {
		terr := &errs.TransferError{Op: "upload", Path: localPath, Err: err}
		c.emit("Upload", remotePath, localPath, terr)
		return terr
	}
	defer src.Close()

	if err := conn.Stor(remotePath, src); err != nil {
		terr := &errs.TransferError{Op: "upload", Path: remotePath, Err: err}
		c.emit("Upload", remotePath, localPath, terr)
		return terr
	}

	c.emit("Upload", remotePath, localPath, nil)
	return nil
}

// DownloadFile copies remotePath into a local file, truncating any existing file
// without prompting.
func (c *Client) DownloadFile(remotePath, localPath string) error {
	conn, err := c.active("download")
	if err != nil {
		return err
	}

	resp, err := conn.Retr(remotePath)
	if err != nil {
		terr := &errs.TransferError{Op: "download", Path: remotePath, Err: err}
		c.emit("Download", remotePath, localPath, terr)
		return terr
	}
	defer resp.Close()

	dst, err := c.local.Create(localPath)
	if err != nil {
		terr := &errs.TransferError{Op: "download", Path: localPath, Err: err}
		c.emit("Download", remotePath, localPath, terr)
		return terr
	}

	if _, err := io.Copy(dst, resp); err != nil {
		dst.Close()
		terr := &errs.TransferError{Op: "download", Path: remotePath, Err: err}
		c.emit("Download", remotePath, localPath, terr)
		return terr
	}

	if err := dst.Close(); err != nil {
		terr := &errs.TransferError{Op: "download", Path: localPath, Err: err}
		c.emit("Download", remotePath, localPath, terr)
		return terr
	}

	c.emit("Download", remotePath, localPath, nil)
	return nil
}

// TransferFailure ... One failed file inside a directory download.
type TransferFailure struct {
	Path string
	Err  error
}

// DirectoryReport ... The outcome of a directory download: which entries landed
// locally, which were skipped as subdirectories, and which failed.
type DirectoryReport struct {
	Downloaded []string
	Skipped    []string
	Failed     []TransferFailure
}

// DownloadDirectory mirrors the plain files of remoteDir into localDir, which is
// created if absent. Subdirectories are skipped, not descended into. A failed file
// does not stop the remaining ones; failures are logged and collected in the report.
// Only a failed listing is fatal.
func (c *Client) DownloadDirectory(remoteDir, localDir string) (*DirectoryReport, error) {
	if _, err := c.active("download directory"); err != nil {
		return nil, err
	}

	if err := c.local.MkdirAll(localDir, 0755); err != nil {
		return nil, &errs.TransferError{Op: "download", Path: localDir, Err: err}
	}

	entries, err := c.ScanDir(remoteDir)
	if err != nil {
		return nil, err
	}

	report := &DirectoryReport{}
	for _, entry := range entries {
		remote := utils.Qualify(remoteDir, entry)
		if c.isDirectory(remote) {
			report.Skipped = append(report.Skipped, remote)
			continue
		}

		local := filepath.Join(localDir, path.Base(remote))
		if err := c.DownloadFile(remote, local); err != nil {
			c.logger.Warn("skipping file after failed download", "source", remote, "err", err)
			report.Failed = append(report.Failed, TransferFailure{Path: remote, Err: err})
			continue
		}
		report.Downloaded = append(report.Downloaded, local)
	}

	return report, nil
}
