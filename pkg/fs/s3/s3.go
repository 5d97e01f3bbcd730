package s3

import (
	"context"
	"errors"
	"io"
	"os"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	fs2 "github.com/oarkflow/ftp/pkg/fs"
	"github.com/oarkflow/ftp/pkg/log"
)

// Fs ... A bucket used as the local side of transfers: downloads are committed as
// objects, uploads stream object bodies to the server.
type Fs struct {
	logger      log.Logger
	client      *s3.Client
	uploader    *manager.Uploader
	bucket      string
	permissions int64
	readOnly    bool
}

func NewFsFromConfig(bucket string, conf aws.Config) *Fs {
	client := s3.NewFromConfig(conf)
	return &Fs{
		client:   client,
		uploader: manager.NewUploader(client),
		bucket:   bucket,
	}
}

type Option struct {
	Endpoint  string `json:"endpoint"`
	Region    string `json:"region"`
	Bucket    string `json:"bucket"`
	AccessKey string `json:"access_key"`
	Secret    string `json:"secret"`
}

func New(opt Option) (fs2.FS, error) {
	creds := aws.NewCredentialsCache(credentials.NewStaticCredentialsProvider(opt.AccessKey, opt.Secret, ""))
	conf := aws.Config{
		Credentials: creds,
		Region:      opt.Region,
		EndpointResolverWithOptions: aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
			return aws.Endpoint{
				URL:               opt.Endpoint,
				SigningRegion:     opt.Region,
				HostnameImmutable: true,
			}, nil
		}),
	}

	return NewFsFromConfig(opt.Bucket, conf), nil
}

// keyFor maps a local-side name onto an object key.
func keyFor(name string) string {
	return strings.TrimPrefix(path.Clean(name), "/")
}

func (f *Fs) SetLogger(logger log.Logger) {
	f.logger = logger
}

func (f *Fs) Logger() log.Logger {
	return f.logger
}

func (f *Fs) SetPermissions(p []string) {
	f.permissions = fs2.Serialize(p)
}

func (f *Fs) Permissions() []string {
	return fs2.Deserialize(f.permissions)
}

// Open streams an object body, typically as the source of an upload.
func (f *Fs) Open(name string) (io.ReadCloser, error) {
	if !fs2.Can(f.permissions, fs2.ReadContent) {
		return nil, fs2.ErrPermissionDenied
	}

	key := keyFor(name)
	object, err := f.client.GetObject(context.Background(), &s3.GetObjectInput{
		Bucket: aws.String(f.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		f.logger.Error("could not get object for reading", "key", key, "err", err)
		return nil, err
	}
	return object.Body, nil
}

// Create returns a writer whose Close commits the buffered bytes as an object.
func (f *Fs) Create(name string) (io.WriteCloser, error) {
	if f.readOnly {
		return nil, fs2.ErrReadOnly
	}

	key := keyFor(name)
	exists, err := f.Exists(name)
	if err != nil {
		return nil, err
	}
	if exists {
		if !fs2.Can(f.permissions, fs2.Update) {
			return nil, fs2.ErrPermissionDenied
		}
	} else if !fs2.Can(f.permissions, fs2.Create) {
		return nil, fs2.ErrPermissionDenied
	}

	return newWriter(context.Background(), f.uploader, f.bucket, key)
}

// MkdirAll is satisfied by key prefixes, there is nothing to create.
func (f *Fs) MkdirAll(name string, mode os.FileMode) error {
	if f.readOnly {
		return fs2.ErrReadOnly
	}
	return nil
}

func (f *Fs) Exists(name string) (bool, error) {
	key := keyFor(name)
	_, err := f.client.HeadObject(context.Background(), &s3.HeadObjectInput{
		Bucket: aws.String(f.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var notFound *types.NotFound
		if errors.As(err, &notFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (f *Fs) Remove(name string) error {
	if f.readOnly {
		return fs2.ErrReadOnly
	}
	if !fs2.Can(f.permissions, fs2.Delete) {
		return fs2.ErrPermissionDenied
	}

	key := keyFor(name)
	if _, err := f.client.DeleteObject(context.Background(), &s3.DeleteObjectInput{
		Bucket: aws.String(f.bucket),
		Key:    aws.String(key),
	}); err != nil {
		f.logger.Error("failed to remove object", "key", key, "err", err)
		return err
	}
	return nil
}

func (f *Fs) Type() string {
	return "s3"
}
