package application

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/bnema/skillconnect-cli/internal/domain"
	"github.com/bnema/skillconnect-cli/internal/ports"
	"github.com/bnema/skillconnect-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var uploadTime = time.Date(2026, time.March, 3, 9, 30, 0, 0, time.UTC)

func TestUploaderNamesObjectByKindAndTime(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockObjectStore(t)
	clock := mocks.NewMockClock(t)
	uploader := NewUploader(store, clock)

	clock.EXPECT().Now().Return(uploadTime).Once()
	wantKey := "profile-images/" + "1772530200000" + "-my-photo.png"
	store.EXPECT().Put(mockAnyContext(), mock.MatchedBy(func(object ports.Object) bool {
		return object.Key == wantKey && object.ContentType == "image/png" && object.Size == 4
	}), mock.Anything).Return("https://cdn.example/"+wantKey, nil).Once()

	result, err := uploader.Upload(context.Background(), UploadProfileImage, Asset{
		Name:        "../my photo.png",
		ContentType: "image/png",
		Size:        4,
		Body:        strings.NewReader("data"),
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example/"+wantKey, result.URL)
}

func TestUploaderSniffsContentTypeWithoutLosingBytes(t *testing.T) {
	t.Parallel()

	png := append([]byte("\x89PNG\r\n\x1a\n"), bytes.Repeat([]byte{0}, 32)...)

	store := mocks.NewMockObjectStore(t)
	clock := mocks.NewMockClock(t)
	uploader := NewUploader(store, clock)

	clock.EXPECT().Now().Return(uploadTime).Once()
	store.EXPECT().Put(mockAnyContext(), mock.Anything, mock.Anything).RunAndReturn(func(_ context.Context, object ports.Object, _ func(int64)) (string, error) {
		assert.Equal(t, "image/png", object.ContentType)
		body, err := io.ReadAll(object.Body)
		require.NoError(t, err)
		assert.Equal(t, png, body)
		return "https://cdn.example/x.png", nil
	}).Once()

	_, err := uploader.Upload(context.Background(), UploadCoverImage, Asset{Name: "x.png", Body: bytes.NewReader(png)}, nil)
	require.NoError(t, err)
}

func TestUploaderReportsPercentProgress(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockObjectStore(t)
	clock := mocks.NewMockClock(t)
	uploader := NewUploader(store, clock)

	clock.EXPECT().Now().Return(uploadTime).Once()
	store.EXPECT().Put(mockAnyContext(), mock.Anything, mock.Anything).RunAndReturn(func(_ context.Context, _ ports.Object, onWritten func(int64)) (string, error) {
		require.NotNil(t, onWritten)
		onWritten(50)
		onWritten(200)
		return "https://cdn.example/p.png", nil
	}).Once()

	var reported []float64
	_, err := uploader.Upload(context.Background(), UploadPostMedia, Asset{
		Name:        "p.png",
		ContentType: "image/png",
		Size:        200,
		Body:        bytes.NewReader(make([]byte, 200)),
	}, func(percent float64) { reported = append(reported, percent) })
	require.NoError(t, err)
	assert.Equal(t, []float64{25, 100}, reported)
}

func TestUploaderSkipsProgressWhenSizeUnknown(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockObjectStore(t)
	clock := mocks.NewMockClock(t)
	uploader := NewUploader(store, clock)

	clock.EXPECT().Now().Return(uploadTime).Once()
	store.EXPECT().Put(mockAnyContext(), mock.Anything, mock.Anything).RunAndReturn(func(_ context.Context, _ ports.Object, onWritten func(int64)) (string, error) {
		assert.Nil(t, onWritten)
		return "https://cdn.example/p.png", nil
	}).Once()

	_, err := uploader.Upload(context.Background(), UploadPostMedia, Asset{
		Name:        "p.png",
		ContentType: "image/png",
		Body:        strings.NewReader("data"),
	}, func(float64) { t.Fatal("progress reported without size") })
	require.NoError(t, err)
}

func TestUploaderWrapsStoreFailureAsUploadError(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockObjectStore(t)
	clock := mocks.NewMockClock(t)
	uploader := NewUploader(store, clock)

	clock.EXPECT().Now().Return(uploadTime).Once()
	store.EXPECT().Put(mockAnyContext(), mock.Anything, mock.Anything).Return("", errors.New("connection reset")).Once()

	_, err := uploader.Upload(context.Background(), UploadProfileImage, Asset{Name: "a.png", ContentType: "image/png", Body: strings.NewReader("a")}, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUploadFailure)

	var uploadErr *domain.UploadError
	require.ErrorAs(t, err, &uploadErr)
	assert.Equal(t, "Failed to upload image", uploadErr.Message)
	assert.Equal(t, "Failed to upload image", domain.DisplayMessage(err))
}

func TestUploaderRejectsUnknownKindAndEmptyBody(t *testing.T) {
	t.Parallel()

	uploader := NewUploader(mocks.NewMockObjectStore(t), mocks.NewMockClock(t))

	_, err := uploader.Upload(context.Background(), UploadKind("avatars"), Asset{Name: "a.png", Body: strings.NewReader("a")}, nil)
	assert.ErrorIs(t, err, domain.ErrUploadFailure)

	_, err = uploader.Upload(context.Background(), UploadProfileImage, Asset{Name: "a.png"}, nil)
	assert.ErrorIs(t, err, domain.ErrUploadFailure)
}

func TestSanitizeName(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"photo.png":         "photo.png",
		"my photo.png":      "my-photo.png",
		"../../etc/passwd":  "passwd",
		".hidden":           "hidden",
		"":                  "upload",
		"résumé (1).jpg":    "résumé-1.jpg",
		"dir/sub/image.gif": "image.gif",
	}

	for input, want := range tests {
		assert.Equal(t, want, sanitizeName(input), input)
	}
}
