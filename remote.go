package ftp

import (
	fs2 "github.com/oarkflow/ftp/pkg/fs"
	"github.com/oarkflow/ftp/pkg/fs/afos"
	"github.com/oarkflow/ftp/pkg/fs/s3"
	"github.com/oarkflow/ftp/pkg/models"
)

// FromRemote assembles a session for a named remote, picking the local-side store
// from the remote's filesystem spec. Without a spec transfers run against plain
// local disk.
func FromRemote(remote models.Remote, opts ...func(*Client)) (*Client, error) {
	c := defaultClient(remote.Host, remote.Username, remote.Password)
	if remote.Port != 0 {
		c.port = remote.Port
	}

	fst, err := remote.GetFilesystem()
	if err != nil {
		return nil, err
	}
	if fst != nil {
		local, err := localFilesystem(fst)
		if err != nil {
			return nil, err
		}
		c.local = local
	}

	return newClient(c, opts...), nil
}

func localFilesystem(fst *models.Filesystem) (fs2.FS, error) {
	switch fst.Fs {
	case "s3":
		var endpoint, region, bucket, accessKey, secret string
		if val, exists := fst.Params["endpoint"]; exists {
			endpoint = val.(string)
		}
		if val, exists := fst.Params["region"]; exists {
			region = val.(string)
		} else {
			region = "us-east-1"
		}
		if val, exists := fst.Params["bucket"]; exists {
			bucket = val.(string)
		}
		if val, exists := fst.Params["access_key"]; exists {
			accessKey = val.(string)
		}
		if val, exists := fst.Params["secret"]; exists {
			secret = val.(string)
		}
		opt := s3.Option{
			Endpoint:  endpoint,
			Region:    region,
			Bucket:    bucket,
			AccessKey: accessKey,
			Secret:    secret,
		}
		return s3.New(opt)
	default:
		var basePath string
		if val, exists := fst.Params["base_path"]; exists {
			basePath, _ = val.(string)
		}
		return afos.New(basePath), nil
	}
}
