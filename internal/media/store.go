package media

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// S3API is the slice of the S3 client the store actually uses.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Store uploads customer attachments and profile pictures to S3. A nil
// Store (or one built without a bucket) is a no-op that reports itself
// disabled, so the rest of the app can run without object storage.
type Store struct {
	client    S3API
	bucket    string
	publicURL string
}

func NewStore(client S3API, bucket, publicURL string) *Store {
	if client == nil || bucket == "" {
		return nil
	}
	return &Store{client: client, bucket: bucket, publicURL: strings.TrimRight(publicURL, "/")}
}

func (s *Store) Enabled() bool {
	return s != nil && s.client != nil && s.bucket != ""
}

// UploadAttachment stores an uploaded file under attachments/ and
// returns its public URL and object key.
func (s *Store) UploadAttachment(ctx context.Context, fh *multipart.FileHeader) (url, key string, err error) {
	if !s.Enabled() {
		return "", "", fmt.Errorf("media: object storage is not configured")
	}

	f, err := fh.Open()
	if err != nil {
		return "", "", fmt.Errorf("media: failed to open upload: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", "", fmt.Errorf("media: failed to read upload: %w", err)
	}

	key = fmt.Sprintf("attachments/%s/%s%s", time.Now().UTC().Format("2006/01"), uuid.NewString(), safeExt(fh.Filename))
	contentType := fh.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	if err := s.put(ctx, key, data, contentType); err != nil {
		return "", "", err
	}
	return s.objectURL(key), key, nil
}

// UploadProfilePicture converts the image to WebP and stores it under
// profiles/<customerID>.webp, overwriting any previous picture.
func (s *Store) UploadProfilePicture(ctx context.Context, customerID string, fh *multipart.FileHeader) (string, error) {
	if !s.Enabled() {
		return "", fmt.Errorf("media: object storage is not configured")
	}

	f, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("media: failed to open upload: %w", err)
	}
	defer f.Close()

	encoded, err := encodeProfileWebP(f)
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("profiles/%s.webp", customerID)
	if err := s.put(ctx, key, encoded, "image/webp"); err != nil {
		return "", err
	}
	return s.objectURL(key), nil
}

func (s *Store) put(ctx context.Context, key string, data []byte, contentType string) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("media: failed to upload %s: %w", key, err)
	}
	return nil
}

func (s *Store) objectURL(key string) string {
	if s.publicURL != "" {
		return s.publicURL + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.bucket, key)
}

func safeExt(filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".webp", ".pdf", ".gif":
		return ext
	default:
		return ""
	}
}
