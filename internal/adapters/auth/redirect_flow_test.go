package auth

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/bnema/skillconnect-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildAuthorizationURLUsesAPIOrigin(t *testing.T) {
	t.Parallel()

	u, err := BuildAuthorizationURL("https://api.skillconnect.dev/api", "http://localhost:4567/login/oauth2/code/google", "state-xyz")
	require.NoError(t, err)

	parsed, err := url.Parse(u)
	require.NoError(t, err)
	assert.Equal(t, "api.skillconnect.dev", parsed.Host)
	assert.Equal(t, "/oauth2/authorization/google", parsed.Path)
	assert.Equal(t, "http://localhost:4567/login/oauth2/code/google", parsed.Query().Get("redirect_uri"))
	assert.Equal(t, "state-xyz", parsed.Query().Get("state"))
}

func TestBuildAuthorizationURLRejectsNonHTTPScheme(t *testing.T) {
	t.Parallel()

	_, err := BuildAuthorizationURL("ftp://api.skillconnect.dev", "http://localhost/cb", "state")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "http or https")
}

func TestNewStateIsRandom(t *testing.T) {
	t.Parallel()

	first, err := NewState()
	require.NoError(t, err)
	second, err := NewState()
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
	assert.Len(t, first, 22)
}

func TestCallbackServerReturnsSessionOnSuccess(t *testing.T) {
	t.Parallel()

	server, err := StartCallbackServer("127.0.0.1:0", "expected-state")
	require.NoError(t, err)
	defer func() { _ = server.Close() }()

	q := url.Values{}
	q.Set("state", "expected-state")
	q.Set("token", "jwt")
	q.Set("userId", "user-1")
	q.Set("profileImageUrl", "https://cdn/avatar.png")

	resp, err := http.Get(server.RedirectURI() + "?" + q.Encode())
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "Signed in")

	result, err := server.Wait(context.Background(), 2*time.Second)
	require.NoError(t, err)
	assert.Equal(t, RedirectResult{UserID: domain.UserID("user-1"), Token: "jwt", ProfileImageURL: "https://cdn/avatar.png"}, result)
}

func TestCallbackServerReturnsErrorOnStateMismatch(t *testing.T) {
	t.Parallel()

	server, err := StartCallbackServer("127.0.0.1:0", "expected-state")
	require.NoError(t, err)
	defer func() { _ = server.Close() }()

	resp, err := http.Get(server.RedirectURI() + "?token=jwt&userId=user-1&state=wrong-state")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	_, err = server.Wait(context.Background(), 2*time.Second)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrStateMismatch))
}

func TestCallbackServerRequiresToken(t *testing.T) {
	t.Parallel()

	server, err := StartCallbackServer("127.0.0.1:0", "expected-state")
	require.NoError(t, err)
	defer func() { _ = server.Close() }()

	resp, err := http.Get(server.RedirectURI() + "?userId=user-1&state=expected-state")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	_, err = server.Wait(context.Background(), 2*time.Second)
	require.Error(t, err)
	assert.ErrorContains(t, err, "missing token")
}

func TestCallbackServerTimesOutWaitingForCallback(t *testing.T) {
	t.Parallel()

	server, err := StartCallbackServer("127.0.0.1:0", "expected-state")
	require.NoError(t, err)
	defer func() { _ = server.Close() }()

	_, err = server.Wait(context.Background(), 50*time.Millisecond)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCallbackTimeout))
}

func TestCallbackServerStopsWhenContextCanceled(t *testing.T) {
	t.Parallel()

	server, err := StartCallbackServer("127.0.0.1:0", "expected-state")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = server.Wait(ctx, time.Minute)
	require.ErrorIs(t, err, context.Canceled)
}

func TestStartCallbackServerRequiresExpectedState(t *testing.T) {
	t.Parallel()

	_, err := StartCallbackServer("127.0.0.1:0", "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingState))
}
