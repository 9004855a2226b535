// Package auth runs the federated (Google) login redirect flow: it builds the
// authorization URL on the API origin and receives the resulting session on a
// loopback callback server.
package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/bnema/skillconnect-cli/internal/domain"
)

const (
	CallbackPath      = "/login/oauth2/code/google"
	authorizationPath = "/oauth2/authorization/google"
)

var (
	ErrStateMismatch   = errors.New("login callback state mismatch")
	ErrCallbackTimeout = errors.New("timed out waiting for login callback")
	ErrMissingState    = errors.New("expected state is required")
)

// RedirectResult is what the API hands back after a successful federated
// login.
type RedirectResult struct {
	UserID          domain.UserID
	Token           string
	ProfileImageURL string
}

func NewState() (string, error) {
	raw := make([]byte, 16)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}

	return base64.RawURLEncoding.EncodeToString(raw), nil
}

// BuildAuthorizationURL points at the authorization endpoint on the origin of
// apiBaseURL; the endpoint is served outside the API path prefix.
func BuildAuthorizationURL(apiBaseURL string, redirectURI string, state string) (string, error) {
	if apiBaseURL == "" {
		return "", errors.New("api base url is required")
	}
	if redirectURI == "" {
		return "", errors.New("redirect uri is required")
	}
	if state == "" {
		return "", errors.New("state is required")
	}

	parsed, err := url.Parse(apiBaseURL)
	if err != nil {
		return "", fmt.Errorf("parse api base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", errors.New("api base url must use http or https")
	}
	if parsed.Host == "" {
		return "", errors.New("api base url host is required")
	}

	authURL := url.URL{Scheme: parsed.Scheme, Host: parsed.Host, Path: authorizationPath}
	q := url.Values{}
	q.Set("redirect_uri", redirectURI)
	q.Set("state", state)
	authURL.RawQuery = q.Encode()

	return authURL.String(), nil
}

type CallbackServer struct {
	expectedState string
	listener      net.Listener
	server        *http.Server
	resultCh      chan callbackResult
	resultOnce    sync.Once
	closeOnce     sync.Once
}

type callbackResult struct {
	result RedirectResult
	err    error
}

func StartCallbackServer(listenAddr string, expectedState string) (*CallbackServer, error) {
	if expectedState == "" {
		return nil, ErrMissingState
	}
	if listenAddr == "" {
		listenAddr = "127.0.0.1:0"
	}

	listener, err := net.Listen("tcp", listenAddr)
	if err != nil {
		return nil, fmt.Errorf("listen callback server: %w", err)
	}

	cb := &CallbackServer{
		expectedState: expectedState,
		listener:      listener,
		resultCh:      make(chan callbackResult, 1),
	}

	mux := http.NewServeMux()
	mux.HandleFunc(CallbackPath, cb.handleCallback)

	cb.server = &http.Server{Handler: mux, ReadHeaderTimeout: 10 * time.Second}

	go func() {
		if serveErr := cb.server.Serve(cb.listener); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			cb.trySendResult(callbackResult{err: serveErr})
		}
	}()

	return cb, nil
}

func (c *CallbackServer) RedirectURI() string {
	if tcpAddr, ok := c.listener.Addr().(*net.TCPAddr); ok {
		return fmt.Sprintf("http://localhost:%d%s", tcpAddr.Port, CallbackPath)
	}
	return "http://localhost" + CallbackPath
}

// Wait blocks until the callback arrives, ctx is done or timeout elapses. The
// server is closed on return.
func (c *CallbackServer) Wait(ctx context.Context, timeout time.Duration) (RedirectResult, error) {
	defer func() { _ = c.Close() }()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case result := <-c.resultCh:
		return result.result, result.err
	case <-ctx.Done():
		return RedirectResult{}, ctx.Err()
	case <-timer.C:
		return RedirectResult{}, ErrCallbackTimeout
	}
}

func (c *CallbackServer) Close() error {
	var closeErr error
	c.closeOnce.Do(func() {
		closeErr = c.server.Close()
	})
	return closeErr
}

func (c *CallbackServer) handleCallback(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	if query.Get("state") != c.expectedState {
		c.trySendResult(callbackResult{err: ErrStateMismatch})
		http.Error(w, "state mismatch", http.StatusBadRequest)
		return
	}
	if loginError := query.Get("error"); loginError != "" {
		c.trySendResult(callbackResult{err: fmt.Errorf("federated login failed: %s", loginError)})
		http.Error(w, "login failed", http.StatusBadRequest)
		return
	}

	result := RedirectResult{
		UserID:          domain.UserID(query.Get("userId")),
		Token:           query.Get("token"),
		ProfileImageURL: query.Get("profileImageUrl"),
	}
	if result.UserID == "" || result.Token == "" {
		c.trySendResult(callbackResult{err: errors.New("login callback missing token or user id")})
		http.Error(w, "missing token", http.StatusBadRequest)
		return
	}

	c.trySendResult(callbackResult{result: result})
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("Signed in to SkillConnect. You can close this window."))
}

func (c *CallbackServer) trySendResult(result callbackResult) {
	c.resultOnce.Do(func() {
		c.resultCh <- result
	})
}
