package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetFilesystemDefault(t *testing.T) {
	r := Remote{
		Filesystems: []*Filesystem{
			{Fs: "os"},
			{Fs: "s3"},
		},
		DefaultFilesystem: "s3",
	}

	fst, err := r.GetFilesystem()
	require.NoError(t, err)
	require.Equal(t, "s3", fst.Fs)
}

func TestGetFilesystemFallsBackToFirst(t *testing.T) {
	r := Remote{
		Filesystems: []*Filesystem{
			{Fs: "os"},
			{Fs: "s3"},
		},
	}

	fst, err := r.GetFilesystem()
	require.NoError(t, err)
	require.Equal(t, "os", fst.Fs)
}

func TestGetFilesystemNone(t *testing.T) {
	fst, err := Remote{}.GetFilesystem()
	require.NoError(t, err)
	require.Nil(t, fst)
}

func TestGetFilesystemUnknownDefault(t *testing.T) {
	r := Remote{
		Filesystems:       []*Filesystem{{Fs: "os"}},
		DefaultFilesystem: "gcs",
	}

	_, err := r.GetFilesystem()
	require.Error(t, err)
}
