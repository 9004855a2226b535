// Package httpstore uploads objects to an HTTP endpoint as multipart form
// data. The endpoint answers with the durable URL of the stored object.
package httpstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/bnema/skillconnect-cli/internal/ports"
)

const (
	maxResponseBytes = 1 << 20
	fileField        = "file"
	keyField         = "key"
)

type Store struct {
	Endpoint       string
	HTTPClient     *http.Client
	RequestTimeout time.Duration
	// Token, when set, is sent as a bearer token.
	Token func() string
}

var _ ports.ObjectStore = (*Store)(nil)

type uploadResponse struct {
	URL string `json:"url"`
}

func (s *Store) Put(ctx context.Context, object ports.Object, onWritten func(written int64)) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := validateEndpoint(s.Endpoint); err != nil {
		return "", err
	}

	requestCtx, cancel := s.requestContext(ctx)
	defer cancel()

	bodyReader, bodyWriter := io.Pipe()
	form := multipart.NewWriter(bodyWriter)
	go func() {
		_ = bodyWriter.CloseWithError(writeForm(form, object, onWritten))
	}()

	req, err := http.NewRequestWithContext(requestCtx, http.MethodPost, s.Endpoint, bodyReader)
	if err != nil {
		_ = bodyReader.CloseWithError(err)
		return "", fmt.Errorf("create upload request: %w", err)
	}
	req.Header.Set("Content-Type", form.FormDataContentType())
	req.Header.Set("Accept", "application/json")
	if s.Token != nil {
		if token := s.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := s.httpClient().Do(req)
	if err != nil {
		_ = bodyReader.CloseWithError(err)
		return "", fmt.Errorf("perform upload request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", fmt.Errorf("read upload response: %w", err)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", fmt.Errorf("upload rejected: status %d: %s", resp.StatusCode, strings.TrimSpace(string(data)))
	}

	var decoded uploadResponse
	if err := json.Unmarshal(data, &decoded); err != nil {
		return "", fmt.Errorf("decode upload response: %w", err)
	}
	if decoded.URL == "" {
		return "", errors.New("upload response missing url")
	}

	return decoded.URL, nil
}

func writeForm(form *multipart.Writer, object ports.Object, onWritten func(int64)) error {
	if err := form.WriteField(keyField, object.Key); err != nil {
		return fmt.Errorf("write key field: %w", err)
	}

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, fileField, path.Base(object.Key)))
	if object.ContentType != "" {
		header.Set("Content-Type", object.ContentType)
	}
	part, err := form.CreatePart(header)
	if err != nil {
		return fmt.Errorf("create file part: %w", err)
	}

	if _, err := io.Copy(part, &countingReader{reader: object.Body, onRead: onWritten}); err != nil {
		return fmt.Errorf("stream object: %w", err)
	}

	return form.Close()
}

type countingReader struct {
	reader io.Reader
	read   int64
	onRead func(int64)
}

func (r *countingReader) Read(p []byte) (int, error) {
	n, err := r.reader.Read(p)
	if n > 0 {
		r.read += int64(n)
		if r.onRead != nil {
			r.onRead(r.read)
		}
	}
	return n, err
}

func validateEndpoint(endpoint string) error {
	if endpoint == "" {
		return errors.New("upload endpoint is required")
	}

	parsed, err := url.Parse(endpoint)
	if err != nil {
		return fmt.Errorf("parse upload endpoint: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return errors.New("upload endpoint must use http or https")
	}
	if parsed.Host == "" {
		return errors.New("upload endpoint host is required")
	}

	return nil
}

func (s *Store) httpClient() *http.Client {
	if s.HTTPClient != nil {
		return s.HTTPClient
	}
	return http.DefaultClient
}

func (s *Store) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}
	if s.RequestTimeout <= 0 {
		return ctx, func() {}
	}

	return context.WithTimeout(ctx, s.RequestTimeout)
}
