package ftp

import (
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/oarkflow/ftp/pkg/errs"
)

func TestUploadDownloadRoundTrip(t *testing.T) {
	conn := newFakeConn()
	c, mem := newTestClient(t, conn)

	payload := []byte("zone data\x00with binary bytes\r\n")
	require.NoError(t, afero.WriteFile(mem, "in/zone.txt", payload, 0644))

	require.NoError(t, c.UploadFile("/data/zone.txt", "in/zone.txt"))
	require.Equal(t, payload, conn.objects["/data/zone.txt"])

	require.NoError(t, c.DownloadFile("/data/zone.txt", "out/zone.txt"))
	got, err := afero.ReadFile(mem, "out/zone.txt")
	require.NoError(t, err)
	require.Equal(t, payload, got)
}

func TestUploadMissingLocalFile(t *testing.T) {
	conn := newFakeConn()
	c, _ := newTestClient(t, conn)

	err := c.UploadFile("/data/zone.txt", "missing.txt")
	require.True(t, errs.IsTransferError(err))
	require.NotContains(t, conn.objects, "/data/zone.txt")
}

func TestUploadServerFailure(t *testing.T) {
	conn := newFakeConn()
	conn.storErr = errors.New("552 disk full")
	c, mem := newTestClient(t, conn)
	require.NoError(t, afero.WriteFile(mem, "a.txt", []byte("a"), 0644))

	require.True(t, errs.IsTransferError(c.UploadFile("/data/a.txt", "a.txt")))
}

func TestDownloadOverwritesLocalFile(t *testing.T) {
	conn := newFakeConn()
	conn.objects["/data/a.txt"] = []byte("fresh")
	c, mem := newTestClient(t, conn)
	require.NoError(t, afero.WriteFile(mem, "a.txt", []byte("stale content, much longer"), 0644))

	require.NoError(t, c.DownloadFile("/data/a.txt", "a.txt"))
	got, err := afero.ReadFile(mem, "a.txt")
	require.NoError(t, err)
	require.Equal(t, []byte("fresh"), got)
}

func TestDownloadMissingRemoteFile(t *testing.T) {
	conn := newFakeConn()
	c, mem := newTestClient(t, conn)

	err := c.DownloadFile("/data/missing.txt", "missing.txt")
	require.True(t, errs.IsTransferError(err))
	exists, aerr := afero.Exists(mem, "missing.txt")
	require.NoError(t, aerr)
	require.False(t, exists)
}

func TestDownloadDirectory(t *testing.T) {
	conn := newFakeConn()
	conn.objects["/pub/a.txt"] = []byte("alpha")
	conn.objects["/pub/b.txt"] = []byte("bravo")
	conn.dirs["/pub/sub"] = true
	conn.listing["/pub"] = []string{"/pub/.", "/pub/..", "/pub/a.txt", "/pub/b.txt", "/pub/sub"}
	c, mem := newTestClient(t, conn)

	report, err := c.DownloadDirectory("/pub", "local")
	require.NoError(t, err)

	isDir, err := afero.IsDir(mem, "local")
	require.NoError(t, err)
	require.True(t, isDir)

	require.Equal(t, []string{"local/a.txt", "local/b.txt"}, report.Downloaded)
	require.Equal(t, []string{"/pub/sub"}, report.Skipped)
	require.Empty(t, report.Failed)

	got, err := afero.ReadFile(mem, "local/a.txt")
	require.NoError(t, err)
	require.Equal(t, []byte("alpha"), got)

	// The subdirectory was probed, not fetched.
	exists, err := afero.Exists(mem, "local/sub")
	require.NoError(t, err)
	require.False(t, exists)
	require.Equal(t, "/", conn.cwd)
}

func TestDownloadDirectoryBareNames(t *testing.T) {
	conn := newFakeConn()
	conn.objects["/pub/a.txt"] = []byte("alpha")
	conn.listing["/pub"] = []string{".", "..", "a.txt"}
	c, mem := newTestClient(t, conn)

	report, err := c.DownloadDirectory("/pub", "local")
	require.NoError(t, err)
	require.Equal(t, []string{"local/a.txt"}, report.Downloaded)

	got, err := afero.ReadFile(mem, "local/a.txt")
	require.NoError(t, err)
	require.Equal(t, []byte("alpha"), got)
}

func TestDownloadDirectoryPartialFailure(t *testing.T) {
	conn := newFakeConn()
	conn.objects["/pub/a.txt"] = []byte("alpha")
	conn.objects["/pub/b.txt"] = []byte("bravo")
	conn.retrErr["/pub/a.txt"] = errors.New("426 connection reset")
	conn.listing["/pub"] = []string{"/pub/a.txt", "/pub/b.txt"}
	c, mem := newTestClient(t, conn)

	report, err := c.DownloadDirectory("/pub", "local")
	require.NoError(t, err)

	require.Equal(t, []string{"local/b.txt"}, report.Downloaded)
	require.Len(t, report.Failed, 1)
	require.Equal(t, "/pub/a.txt", report.Failed[0].Path)
	require.True(t, errs.IsTransferError(report.Failed[0].Err))

	got, err := afero.ReadFile(mem, "local/b.txt")
	require.NoError(t, err)
	require.Equal(t, []byte("bravo"), got)
}

func TestDownloadDirectoryListingFatal(t *testing.T) {
	conn := newFakeConn()
	conn.listErr = errors.New("550 permission denied")
	c, _ := newTestClient(t, conn)

	_, err := c.DownloadDirectory("/pub", "local")
	require.True(t, errs.IsListingError(err))
}
