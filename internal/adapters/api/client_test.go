package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bnema/skillconnect-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticSession domain.Session

func (s staticSession) Get() domain.Session { return domain.Session(s) }

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return &Client{
		BaseURL:    server.URL + "/api",
		HTTPClient: server.Client(),
		UserAgent:  "sc/test",
		Session:    staticSession{UserID: "user-1", AuthToken: "token-1"},
	}
}

func TestClientSendsBearerTokenAndUserAgent(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer token-1", r.Header.Get("Authorization"))
		assert.Equal(t, "sc/test", r.Header.Get("User-Agent"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, "/api/users", r.URL.Path)
		_, _ = w.Write([]byte(`[{"id":"user-1","username":"ada"}]`))
	})

	users, err := client.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "ada", users[0].Username)
}

func TestClientOmitsAuthorizationWithoutSession(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`[]`))
	})
	client.Session = nil

	posts, err := client.ListPosts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestClientPrefersServerMessage(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"Username already taken"}`))
	})

	_, err := client.Register(context.Background(), map[string]any{"username": "ada"})
	require.Error(t, err)

	var remote *domain.RemoteError
	require.ErrorAs(t, err, &remote)
	assert.Equal(t, domain.RemoteFailureKind, remote.Kind)
	assert.Equal(t, http.StatusBadRequest, remote.Status)
	assert.Equal(t, "Username already taken", remote.Message)
	assert.ErrorIs(t, err, domain.ErrRemoteFailure)
}

func TestClientFallsBackToOperationMessage(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`<html>oops</html>`))
	})

	_, err := client.ListPosts(context.Background())
	require.Error(t, err)
	assert.Equal(t, "Failed to load posts", domain.DisplayMessage(err))
	assert.ErrorIs(t, err, domain.ErrRemoteFailure)
}

func TestClientUsesErrorFieldWhenMessageMissing(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"error":"Conflict"}`))
	})

	_, err := client.UpdateUser(context.Background(), "user-1", map[string]any{"bio": "hi"})
	require.Error(t, err)
	assert.Equal(t, "Conflict", domain.DisplayMessage(err))
}

func TestClientClassifiesUnauthorizedAndRunsHook(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	client.OnUnauthorized = func(context.Context) { calls.Add(1) }

	_, err := client.GetUser(context.Background(), "user-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.False(t, errors.Is(err, domain.ErrNotFound))
	assert.Equal(t, int32(1), calls.Load())
}

func TestClientDoesNotRunHookForOtherFailures(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	client.OnUnauthorized = func(context.Context) { calls.Add(1) }

	_, err := client.GetUser(context.Background(), "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, "User not found", domain.DisplayMessage(err))
	assert.Zero(t, calls.Load())
}

func TestClientTreatsForbiddenAsFailureWithoutHook(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"message":"Not your post"}`))
	})
	client.OnUnauthorized = func(context.Context) { calls.Add(1) }

	err := client.DeletePost(context.Background(), "post-2")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRemoteFailure)
	assert.False(t, errors.Is(err, domain.ErrUnauthorized))
	assert.Equal(t, "Not your post", domain.DisplayMessage(err))
	assert.Zero(t, calls.Load())
}

func TestLoginRejectionDoesNotRunHook(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Invalid credentials"}`))
	})
	client.OnUnauthorized = func(context.Context) { calls.Add(1) }

	_, err := client.Login(context.Background(), domain.Credentials{Username: "ada", Password: "wrong"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Equal(t, "Invalid credentials", domain.DisplayMessage(err))
	assert.Zero(t, calls.Load())
}

func TestClientTimesOutWithoutCallerDeadline(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
		_, _ = w.Write([]byte(`[]`))
	})
	client.RequestTimeout = 20 * time.Millisecond

	_, err := client.ListPosts(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRemoteFailure)
	assert.Contains(t, err.Error(), "list posts")
}

func TestClientRejectsMalformedJSON(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":`))
	})

	_, err := client.GetPost(context.Background(), "post-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRemoteFailure)
	assert.Equal(t, "Failed to fetch post", domain.DisplayMessage(err))
}

func TestLoginDecodesEitherIDField(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/users/login", r.URL.Path)
		_, _ = w.Write([]byte(`{"userId":"user-9","token":"jwt","profileImageUrl":"https://cdn/x.png"}`))
	})

	result, err := client.Login(context.Background(), domain.Credentials{Username: "ada", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, domain.UserID("user-9"), result.ResolvedUserID())
	assert.Equal(t, "jwt", result.Token)
}

func TestClientEscapesIDSegments(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		id   domain.PostID
		want string
	}{
		{name: "slash", id: "a/b", want: "/api/posts/a%2Fb"},
		{name: "parent", id: "..", want: "/api/posts/%2E%2E"},
		{name: "space", id: "a b", want: "/api/posts/a%20b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, tt.want, r.URL.EscapedPath())
				_, _ = w.Write([]byte(`{"id":"x"}`))
			})

			_, err := client.GetPost(context.Background(), tt.id)
			require.NoError(t, err)
		})
	}
}

func TestBuildAPIURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		base    string
		path    string
		want    string
		wantErr string
	}{
		{name: "joins path", base: "http://localhost:8080/api", path: "posts", want: "http://localhost:8080/api/posts"},
		{name: "trims base slash", base: "http://localhost:8080/api/", path: "/posts/1", want: "http://localhost:8080/api/posts/1"},
		{name: "keeps trailing slash", base: "https://example.com/api", path: "notifications/", want: "https://example.com/api/notifications/"},
		{name: "keeps escaped segments", base: "http://localhost:8080/api", path: resourcePath("users", "a/b"), want: "http://localhost:8080/api/users/a%2Fb"},
		{name: "empty base", base: "", path: "posts", wantErr: "required"},
		{name: "bad scheme", base: "ftp://example.com", path: "posts", wantErr: "http or https"},
		{name: "missing host", base: "http:///api", path: "posts", wantErr: "host"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := buildAPIURL(tt.base, tt.path, nil)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
