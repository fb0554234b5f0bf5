package media

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	pngBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")
	pdfBytes = []byte("%PDF-1.4\n1 0 obj\n<<>>\nendobj\n")
)

type fakePutter struct {
	input *s3.PutObjectInput
	body  []byte
	err   error
}

func (f *fakePutter) PutObject(ctx context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.input = in
	f.body, _ = io.ReadAll(in.Body)
	if f.err != nil {
		return nil, f.err
	}
	return &s3.PutObjectOutput{}, nil
}

func TestReadUpload(t *testing.T) {
	up, err := ReadUpload(bytes.NewReader(pngBytes), "image/png", 0)
	require.NoError(t, err)
	assert.Equal(t, "image/png", up.MIME.String())

	up, err = ReadUpload(bytes.NewReader(pdfBytes), "", 0)
	require.NoError(t, err)
	assert.True(t, up.MIME.Is("application/pdf"))

	_, err = ReadUpload(strings.NewReader("just some notes"), "image/png", 0)
	assert.ErrorIs(t, err, ErrUnsupportedType)

	_, err = ReadUpload(bytes.NewReader(nil), "image/png", 0)
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = ReadUpload(bytes.NewReader(pngBytes), "image/png", 8)
	assert.ErrorIs(t, err, ErrTooLarge)
}

func TestInlineStorePut(t *testing.T) {
	ref, err := NewInlineStore(0).Put(context.Background(), "receipt.png", "image/png", bytes.NewReader(pngBytes))
	require.NoError(t, err)

	prefix := "data:image/png;base64,"
	require.True(t, strings.HasPrefix(ref, prefix))
	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(ref, prefix))
	require.NoError(t, err)
	assert.Equal(t, pngBytes, decoded)
}

func TestS3StorePut(t *testing.T) {
	fake := &fakePutter{}
	store := newS3Store(fake, S3Config{Bucket: "invoices-bucket", PublicBaseURL: "https://cdn.example.com/"})

	ref, err := store.Put(context.Background(), "receipt.pdf", "application/pdf", bytes.NewReader(pdfBytes))
	require.NoError(t, err)

	require.NotNil(t, fake.input)
	key := aws.ToString(fake.input.Key)
	assert.True(t, strings.HasPrefix(key, "invoices/"))
	assert.True(t, strings.HasSuffix(key, ".pdf"))
	assert.Equal(t, "invoices-bucket", aws.ToString(fake.input.Bucket))
	assert.Equal(t, "application/pdf", aws.ToString(fake.input.ContentType))
	assert.Equal(t, pdfBytes, fake.body)
	assert.Equal(t, "https://cdn.example.com/"+key, ref)
}

func TestS3StorePutErrors(t *testing.T) {
	fake := &fakePutter{err: errors.New("access denied")}
	store := newS3Store(fake, S3Config{Bucket: "b", PublicBaseURL: "https://cdn"})

	_, err := store.Put(context.Background(), "receipt.png", "image/png", bytes.NewReader(pngBytes))
	assert.ErrorContains(t, err, "access denied")

	fake = &fakePutter{}
	store = newS3Store(fake, S3Config{Bucket: "b", PublicBaseURL: "https://cdn"})
	_, err = store.Put(context.Background(), "notes.txt", "text/plain", strings.NewReader("hello"))
	assert.ErrorIs(t, err, ErrUnsupportedType)
	assert.Nil(t, fake.input, "rejected uploads never reach the bucket")
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	store, err := Open(ctx, Options{})
	require.NoError(t, err)
	assert.IsType(t, &InlineStore{}, store)

	store, err = Open(ctx, Options{Driver: DriverS3, S3: S3Config{
		Endpoint:      "https://account.r2.cloudflarestorage.com",
		AccessKey:     "key",
		SecretKey:     "secret",
		Bucket:        "invoices",
		PublicBaseURL: "https://cdn.example.com",
	}})
	require.NoError(t, err)
	assert.IsType(t, &S3Store{}, store)

	_, err = Open(ctx, Options{Driver: DriverS3})
	assert.Error(t, err)

	_, err = Open(ctx, Options{Driver: "ftp"})
	assert.Error(t, err)
}
