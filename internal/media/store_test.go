package media

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	puts []s3.PutObjectInput
}

func (f *fakeS3) PutObject(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.puts = append(f.puts, *params)
	return &s3.PutObjectOutput{}, nil
}

func multipartFile(t *testing.T, field, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	fw, err := w.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))

	return req.MultipartForm.File[field][0]
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))))
	return buf.Bytes()
}

func TestUploadAttachment_PutsObjectAndReturnsURL(t *testing.T) {
	fake := &fakeS3{}
	store := NewStore(fake, "bookwise-media", "https://cdn.example.com")

	fh := multipartFile(t, "file", "notes.pdf", []byte("%PDF-1.4 test"))

	url, key, err := store.UploadAttachment(context.Background(), fh)
	require.NoError(t, err)

	require.Len(t, fake.puts, 1)
	assert.Equal(t, "bookwise-media", *fake.puts[0].Bucket)
	assert.Equal(t, key, *fake.puts[0].Key)
	assert.Contains(t, key, "attachments/")
	assert.Contains(t, key, ".pdf")
	assert.Equal(t, "https://cdn.example.com/"+key, url)

	data, err := io.ReadAll(fake.puts[0].Body)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4 test"), data)
}

func TestUploadProfilePicture_ConvertsToWebP(t *testing.T) {
	fake := &fakeS3{}
	store := NewStore(fake, "bookwise-media", "")

	fh := multipartFile(t, "file", "avatar.png", pngBytes(t, 1024, 768))

	url, err := store.UploadProfilePicture(context.Background(), "cust-1", fh)
	require.NoError(t, err)

	require.Len(t, fake.puts, 1)
	assert.Equal(t, "profiles/cust-1.webp", *fake.puts[0].Key)
	assert.Equal(t, "image/webp", *fake.puts[0].ContentType)
	assert.Equal(t, "https://bookwise-media.s3.amazonaws.com/profiles/cust-1.webp", url)
}

func TestUploadProfilePicture_RejectsNonImage(t *testing.T) {
	fake := &fakeS3{}
	store := NewStore(fake, "bookwise-media", "")

	fh := multipartFile(t, "file", "avatar.png", []byte("not an image"))

	_, err := store.UploadProfilePicture(context.Background(), "cust-1", fh)
	assert.Error(t, err)
	assert.Empty(t, fake.puts)
}

func TestStore_DisabledWithoutBucket(t *testing.T) {
	store := NewStore(nil, "", "")
	assert.False(t, store.Enabled())

	fh := multipartFile(t, "file", "notes.pdf", []byte("x"))
	_, _, err := store.UploadAttachment(context.Background(), fh)
	assert.Error(t, err)
}

func TestEncodeProfileWebP_ScalesDown(t *testing.T) {
	encoded, err := encodeProfileWebP(bytes.NewReader(pngBytes(t, 2048, 512)))
	require.NoError(t, err)

	cfg, err := webpConfig(encoded)
	require.NoError(t, err)
	assert.Equal(t, 512, cfg.Width)
	assert.Equal(t, 128, cfg.Height)
}

func webpConfig(data []byte) (image.Config, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	return cfg, err
}
