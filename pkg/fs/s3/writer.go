package s3

import (
	"context"
	"io"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type writer struct {
	context  context.Context
	tempFile *os.File
	uploader *manager.Uploader
	bucket   string
	key      string
}

func newWriter(context context.Context, uploader *manager.Uploader, bucket string, key string) (*writer, error) {
	if tempFile, err := os.CreateTemp("", "oarkftp"); err != nil {
		return nil, err
	} else {
		return &writer{
			context:  context,
			tempFile: tempFile,
			uploader: uploader,
			bucket:   bucket,
			key:      key,
		}, nil
	}
}

func (writer *writer) Write(buffer []byte) (int, error) {
	return writer.tempFile.Write(buffer)
}

func (writer *writer) Close() error {
	if _, err := writer.tempFile.Seek(0, io.SeekStart); err != nil {
		writer.cleanUp()
		return err
	}
	input := &s3.PutObjectInput{
		Bucket: aws.String(writer.bucket),
		Key:    aws.String(writer.key),
		Body:   writer.tempFile,
	}
	if _, err := writer.uploader.Upload(writer.context, input); err != nil {
		writer.cleanUp()
		return err
	}

	return writer.cleanUp()
}

func (writer *writer) cleanUp() error {
	name := writer.tempFile.Name()

	// We can ignore the result of this operation as long as os.Remove succeeds.
	// We do not care if the data was successfully commit to the filesystem.
	writer.tempFile.Close()
	return os.Remove(name)
}
