package httpstore

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bnema/skillconnect-cli/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPutStreamsMultipartAndReturnsURL(t *testing.T) {
	t.Parallel()

	content := bytes.Repeat([]byte("a"), 64*1024)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer jwt", r.Header.Get("Authorization"))
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "profile-images/1700000000000-me.png", r.FormValue("key"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer func() { _ = file.Close() }()
		assert.Equal(t, "1700000000000-me.png", header.Filename)
		assert.Equal(t, "image/png", header.Header.Get("Content-Type"))

		got, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Len(t, got, len(content))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"url":"https://cdn.example.com/profile-images/1700000000000-me.png"}`))
	}))
	t.Cleanup(server.Close)

	store := &Store{
		Endpoint:   server.URL + "/upload",
		HTTPClient: server.Client(),
		Token:      func() string { return "jwt" },
	}

	var last int64
	url, err := store.Put(context.Background(), ports.Object{
		Key:         "profile-images/1700000000000-me.png",
		ContentType: "image/png",
		Size:        int64(len(content)),
		Body:        bytes.NewReader(content),
	}, func(written int64) {
		assert.GreaterOrEqual(t, written, last)
		last = written
	})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/profile-images/1700000000000-me.png", url)
	assert.Equal(t, int64(len(content)), last)
}

func TestPutReportsRejectedUpload(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.Copy(io.Discard, r.Body)
		w.WriteHeader(http.StatusRequestEntityTooLarge)
		_, _ = w.Write([]byte("file too large"))
	}))
	t.Cleanup(server.Close)

	store := &Store{Endpoint: server.URL, HTTPClient: server.Client()}

	_, err := store.Put(context.Background(), ports.Object{Key: "post-media/x.png", Body: bytes.NewReader([]byte("x"))}, nil)
	require.Error(t, err)
	assert.ErrorContains(t, err, "status 413")
	assert.ErrorContains(t, err, "file too large")
}

func TestPutRequiresURLInResponse(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.Copy(io.Discard, r.Body)
		_, _ = w.Write([]byte(`{}`))
	}))
	t.Cleanup(server.Close)

	store := &Store{Endpoint: server.URL, HTTPClient: server.Client()}

	_, err := store.Put(context.Background(), ports.Object{Key: "post-media/x.png", Body: bytes.NewReader([]byte("x"))}, nil)
	require.Error(t, err)
	assert.ErrorContains(t, err, "missing url")
}

func TestPutValidatesEndpoint(t *testing.T) {
	t.Parallel()

	store := &Store{Endpoint: "ftp://example.com/upload"}

	_, err := store.Put(context.Background(), ports.Object{Key: "k", Body: bytes.NewReader(nil)}, nil)
	require.Error(t, err)
	assert.ErrorContains(t, err, "http or https")
}
