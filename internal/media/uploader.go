// Package media wraps the S3-compatible object store that hosts profile
// pictures and hands back durable public URLs.
package media

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/murmurlabs/murmur/internal/config"
)

// Uploader accepts a base64 data URI and returns the stored object's URL.
type Uploader interface {
	Upload(ctx context.Context, dataURI string) (string, error)
}

type S3Uploader struct {
	client        *s3.Client
	bucket        string
	publicBaseURL string
}

// NewS3Uploader initializes the client using static credentials and a custom
// endpoint, so it works against R2 and other S3-compatible stores.
func NewS3Uploader(cfg config.MediaConfig) *S3Uploader {
	endpoint := fmt.Sprintf("https://%s.r2.cloudflarestorage.com", cfg.AccountID)

	awsCfg := aws.Config{
		Credentials: credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Region:      cfg.Region,
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
		o.UsePathStyle = true
	})

	log.Println("Successfully initialized media store client")

	return &S3Uploader{
		client:        client,
		bucket:        cfg.BucketName,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
	}
}

// Upload decodes the data URI, stores it under avatars/, and returns the
// public URL. There is no retry; callers decide how to surface failures.
func (u *S3Uploader) Upload(ctx context.Context, dataURI string) (string, error) {
	mediaType, data, err := DecodeDataURI(dataURI)
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("avatars/%s.%s", uuid.NewString(), extensionFor(mediaType))

	_, err = u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(mediaType),
	})
	if err != nil {
		return "", fmt.Errorf("put object %s: %w", key, err)
	}

	return u.publicBaseURL + "/" + key, nil
}

// DecodeDataURI splits a "data:image/png;base64,..." payload into its media
// type and raw bytes. Only base64-encoded image types are accepted.
func DecodeDataURI(dataURI string) (string, []byte, error) {
	rest, ok := strings.CutPrefix(dataURI, "data:")
	if !ok {
		return "", nil, fmt.Errorf("not a data URI")
	}

	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, fmt.Errorf("malformed data URI")
	}

	mediaType, found := strings.CutSuffix(meta, ";base64")
	if !found {
		return "", nil, fmt.Errorf("data URI is not base64 encoded")
	}
	if !strings.HasPrefix(mediaType, "image/") {
		return "", nil, fmt.Errorf("unsupported media type %q", mediaType)
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("decode data URI payload: %w", err)
	}
	return mediaType, data, nil
}

func extensionFor(mediaType string) string {
	switch mediaType {
	case "image/jpeg":
		return "jpg"
	case "image/gif":
		return "gif"
	case "image/webp":
		return "webp"
	default:
		return "png"
	}
}
