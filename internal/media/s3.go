package media

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/camai-video/gateway/internal/domain"
)

// S3API is the subset of the S3 client the store uses.
type S3API interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Store serves archive segments from an S3 bucket, keyed as
// <cameraID>/<name>. Archived segments are written once by the transcoding
// pipeline and never modified.
type S3Store struct {
	client S3API
	bucket string
}

// NewS3Store creates an S3-backed store using the AWS default credential chain.
func NewS3Store(ctx context.Context, bucket string) (*S3Store, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}

	return &S3Store{
		client: s3.NewFromConfig(awsCfg),
		bucket: bucket,
	}, nil
}

// NewS3StoreWithClient creates a store around an existing client (tests).
func NewS3StoreWithClient(client S3API, bucket string) *S3Store {
	return &S3Store{client: client, bucket: bucket}
}

func (s *S3Store) Open(ctx context.Context, cameraID, name string) (io.ReadCloser, error) {
	if cameraID == "" || name == "" {
		return nil, domain.ErrSegmentNotFound
	}

	key := cameraID + "/" + name

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var noKey *types.NoSuchKey
		if errors.As(err, &noKey) {
			return nil, domain.ErrSegmentNotFound
		}
		return nil, fmt.Errorf("get segment %s: %w", key, err)
	}

	return out.Body, nil
}
