package storage

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"quiz-zone/internal/config"
	"quiz-zone/internal/domain"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	input *s3.PutObjectInput
	body  string
	err   error
}

func (f *fakeS3) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.input = params
	if params.Body != nil {
		b, _ := io.ReadAll(params.Body)
		f.body = string(b)
	}
	if f.err != nil {
		return nil, f.err
	}
	return &s3.PutObjectOutput{}, nil
}

func TestS3Storage_Put(t *testing.T) {
	client := &fakeS3{}
	store := NewS3Storage(client, config.StorageConfig{Bucket: "quiz-zone", PublicBaseURL: "https://cdn.quizzone.club/"})

	url, err := store.Put(context.Background(), "/temp/2025-03-09/leo.png", strings.NewReader("png-bytes"), "image/png")

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.quizzone.club/temp/2025-03-09/leo.png", url)
	assert.Equal(t, "quiz-zone", aws.ToString(client.input.Bucket))
	assert.Equal(t, "temp/2025-03-09/leo.png", aws.ToString(client.input.Key))
	assert.Equal(t, "image/png", aws.ToString(client.input.ContentType))
	assert.Equal(t, "png-bytes", client.body)
}

func TestS3Storage_PutFallsBackToEndpointURL(t *testing.T) {
	store := NewS3Storage(&fakeS3{}, config.StorageConfig{Bucket: "b", Endpoint: "http://localhost:9000"})

	url, err := store.Put(context.Background(), "k.png", strings.NewReader(""), "image/png")

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9000/b/k.png", url)
}

func TestS3Storage_PutError(t *testing.T) {
	store := NewS3Storage(&fakeS3{err: errors.New("access denied")}, config.StorageConfig{Bucket: "b"})

	_, err := store.Put(context.Background(), "k.png", strings.NewReader(""), "image/png")

	assert.True(t, domain.HasCode(err, domain.CodeStorage))
}
