package ftp

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oarkflow/ftp/pkg/models"
)

func TestFromRemote(t *testing.T) {
	remote := models.Remote{
		Name:     "zones",
		Host:     "ftp.example.org",
		Port:     2121,
		Username: "zonebot",
		Password: "hunter2",
		Filesystems: []*models.Filesystem{
			{Fs: "os", Params: map[string]any{"base_path": t.TempDir()}},
		},
	}

	dialer := &fakeDialer{conn: newFakeConn()}
	c, err := FromRemote(remote, WithDialer(dialer))
	require.NoError(t, err)
	require.Equal(t, "os", c.local.Type())

	require.NoError(t, c.Connect())
	require.Equal(t, []string{"ftp.example.org:2121"}, dialer.dialed)
	require.NoError(t, c.Close())
}

func TestFromRemoteDefaultFilesystem(t *testing.T) {
	remote := models.Remote{
		Name:     "plain",
		Host:     "ftp.example.org",
		Username: "zonebot",
		Password: "hunter2",
	}

	c, err := FromRemote(remote, WithDialer(&fakeDialer{conn: newFakeConn()}))
	require.NoError(t, err)
	require.Equal(t, "os", c.local.Type())
	require.Equal(t, 21, c.port)
}
