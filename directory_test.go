package ftp

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oarkflow/ftp/pkg/errs"
)

func TestScanDirFiltersDotEntries(t *testing.T) {
	conn := newFakeConn()
	conn.listing["/zones"] = []string{".", "..", "/zones/.", "/zones/..", "/zones/com.gz", "dk.gz"}
	c, _ := newTestClient(t, conn)

	entries, err := c.ScanDir("/zones")
	require.NoError(t, err)
	require.Equal(t, []string{"/zones/com.gz", "dk.gz"}, entries)
}

func TestScanDirKeepsServerOrder(t *testing.T) {
	conn := newFakeConn()
	conn.listing["/zones"] = []string{"/zones/b.gz", "/zones/a.gz", "/zones/c.gz"}
	c, _ := newTestClient(t, conn)

	entries, err := c.ScanDir("/zones")
	require.NoError(t, err)
	require.Equal(t, []string{"/zones/b.gz", "/zones/a.gz", "/zones/c.gz"}, entries)
}

func TestScanDirListingError(t *testing.T) {
	conn := newFakeConn()
	conn.listErr = errors.New("450 not available")
	c, _ := newTestClient(t, conn)

	_, err := c.ScanDir("/zones")
	require.True(t, errs.IsListingError(err))
}

func TestDeleteFile(t *testing.T) {
	conn := newFakeConn()
	conn.objects["/data/a.txt"] = []byte("a")
	c, _ := newTestClient(t, conn)

	require.NoError(t, c.DeleteFile("/data/a.txt"))
	require.NotContains(t, conn.objects, "/data/a.txt")

	err := c.DeleteFile("/data/a.txt")
	require.True(t, errs.IsDeletionError(err))
}

func TestDeleteAllFiles(t *testing.T) {
	conn := newFakeConn()
	conn.objects["/data/a.txt"] = []byte("a")
	conn.objects["/data/b.txt"] = []byte("b")
	conn.objects["/data/c.txt"] = []byte("c")
	c, _ := newTestClient(t, conn)

	require.NoError(t, c.DeleteAllFiles("/data"))
	require.Equal(t, []string{"/data/a.txt", "/data/b.txt", "/data/c.txt"}, conn.deleted)

	entries, err := c.ScanDir("/data")
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestDeleteAllFilesBareNames(t *testing.T) {
	conn := newFakeConn()
	conn.objects["/data/a.txt"] = []byte("a")
	conn.listing["/data"] = []string{"a.txt"}
	c, _ := newTestClient(t, conn)

	require.NoError(t, c.DeleteAllFiles("/data"))
	require.Empty(t, conn.objects)
}

func TestDeleteAllFilesAbortsOnFirstFailure(t *testing.T) {
	conn := newFakeConn()
	conn.objects["/data/a.txt"] = []byte("a")
	conn.objects["/data/b.txt"] = []byte("b")
	conn.objects["/data/c.txt"] = []byte("c")
	conn.deleteErr["/data/b.txt"] = errors.New("550 permission denied")
	conn.listing["/data"] = []string{"/data/a.txt", "/data/b.txt", "/data/c.txt"}
	c, _ := newTestClient(t, conn)

	err := c.DeleteAllFiles("/data")
	require.True(t, errs.IsDeletionError(err))

	// The sweep stopped at b: a is gone, b and c are untouched.
	require.Equal(t, []string{"/data/a.txt"}, conn.deleted)
	require.Contains(t, conn.objects, "/data/b.txt")
	require.Contains(t, conn.objects, "/data/c.txt")
}

func TestIsDirectoryRestoresWorkingDirectory(t *testing.T) {
	conn := newFakeConn()
	conn.dirs["/pub"] = true
	c, _ := newTestClient(t, conn)

	require.True(t, c.isDirectory("/pub"))
	require.Equal(t, "/", conn.cwd)

	require.False(t, c.isDirectory("/pub/a.txt"))
	require.Equal(t, "/", conn.cwd)
}
