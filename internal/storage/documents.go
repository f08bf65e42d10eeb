package storage

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/hellofixo/fixit-admin/internal/config"
)

// DocumentStore hands out short-lived view URLs for the identity
// documents and booking media kept in the storage bucket. The panel
// never proxies the bytes itself.
type DocumentStore struct {
	presign *s3.PresignClient
	bucket  string
}

func NewDocumentStore(cfg *config.Config) *DocumentStore {
	client := s3.New(s3.Options{
		Region:       cfg.StorageRegion,
		BaseEndpoint: aws.String(cfg.StorageEndpoint),
		UsePathStyle: true,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.StorageAccessKey,
			cfg.StorageSecretKey,
			"",
		),
	})

	return &DocumentStore{
		presign: s3.NewPresignClient(client),
		bucket:  cfg.StorageBucket,
	}
}

// ViewURL presigns a GET for the given object key. An empty key means
// the document was never uploaded; callers get an empty URL back.
func (d *DocumentStore) ViewURL(
	ctx context.Context,
	key string,
	expiry time.Duration,
) (string, error) {

	if key == "" {
		return "", nil
	}

	out, err := d.presign.PresignGetObject(
		ctx,
		&s3.GetObjectInput{
			Bucket: aws.String(d.bucket),
			Key:    aws.String(key),
		},
		s3.WithPresignExpires(expiry),
	)
	if err != nil {
		return "", err
	}

	return out.URL, nil
}
