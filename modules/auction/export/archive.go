package export

import (
	"bytes"
	"context"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/auction-network/modules/auction/config"
)

// Uploader is the part of manager.Uploader used by S3Archiver.
type Uploader interface {
	Upload(ctx context.Context, input *s3.PutObjectInput, opts ...func(*manager.Uploader)) (*manager.UploadOutput, error)
}

var _ Uploader = (*manager.Uploader)(nil)

type S3Archiver struct {
	uploader Uploader
	bucket   string
	prefix   string
}

func NewS3Archiver(ctx context.Context, conf config.S3Config) (*S3Archiver, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if conf.Region != "" {
		opts = append(opts, awsconfig.WithRegion(conf.Region))
	}
	sdkConfig, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "can't load aws user config")
	}

	s3client := s3.NewFromConfig(sdkConfig, func(o *s3.Options) {
		if conf.Endpoint != "" {
			o.BaseEndpoint = aws.String(conf.Endpoint)
			o.UsePathStyle = true
		}
	})
	uploader := manager.NewUploader(s3client, func(u *manager.Uploader) {
		u.PartSize = 10 * 1024 * 1024
	})
	return NewS3ArchiverWithUploader(uploader, conf.Bucket, conf.Prefix), nil
}

func NewS3ArchiverWithUploader(uploader Uploader, bucket, prefix string) *S3Archiver {
	return &S3Archiver{
		uploader: uploader,
		bucket:   bucket,
		prefix:   prefix,
	}
}

// Key returns the object key of an event export.
func (a *S3Archiver) Key(eventID string, format Format) string {
	return path.Join(a.prefix, eventID, "sales."+format.Extension())
}

// Archive uploads an encoded event export and returns its object key.
func (a *S3Archiver) Archive(ctx context.Context, eventID string, format Format, data []byte) (string, error) {
	key := a.Key(eventID, format)
	_, err := a.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(format.ContentType()),
	})
	if err != nil {
		return "", errors.Wrapf(err, "failed to upload file for bucket %q and key %q", a.bucket, key)
	}
	return key, nil
}
