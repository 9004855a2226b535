package application

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/bnema/skillconnect-cli/internal/domain"
	"github.com/bnema/skillconnect-cli/internal/ports"
)

const sniffLen = 512

// Uploader is the Upload Coordinator: it names the object, streams it to the
// object store once and reports progress. Failures are never retried.
type Uploader struct {
	store ports.ObjectStore
	clock ports.Clock
}

func NewUploader(store ports.ObjectStore, clock ports.Clock) *Uploader {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &Uploader{store: store, clock: clock}
}

// Upload stores asset under kind and returns its durable URL. onProgress, when
// set, receives the completed percentage and is only called when the asset
// size is known.
func (u *Uploader) Upload(ctx context.Context, kind UploadKind, asset Asset, onProgress func(percent float64)) (UploadResult, error) {
	if !kind.Valid() {
		return UploadResult{}, &domain.UploadError{Name: asset.Name, Message: "Unsupported upload kind", Err: fmt.Errorf("kind %q", kind)}
	}
	if asset.Body == nil {
		return UploadResult{}, &domain.UploadError{Name: asset.Name, Message: "Nothing to upload", Err: errors.New("asset body is nil")}
	}

	body := bufio.NewReaderSize(asset.Body, sniffLen)
	contentType := asset.ContentType
	if contentType == "" {
		head, _ := body.Peek(sniffLen)
		contentType = http.DetectContentType(head)
	}

	object := ports.Object{
		Key:         u.objectKey(kind, asset.Name),
		ContentType: contentType,
		Size:        asset.Size,
		Body:        body,
	}

	var onWritten func(int64)
	if onProgress != nil && asset.Size > 0 {
		onWritten = func(written int64) {
			percent := float64(written) / float64(asset.Size) * 100
			if percent > 100 {
				percent = 100
			}
			onProgress(percent)
		}
	}

	url, err := u.store.Put(ctx, object, onWritten)
	if err != nil {
		return UploadResult{}, &domain.UploadError{Name: asset.Name, Message: "Failed to upload image", Err: err}
	}

	return UploadResult{URL: url}, nil
}

func (u *Uploader) objectKey(kind UploadKind, name string) string {
	return fmt.Sprintf("%s/%d-%s", kind, u.clock.Now().UnixMilli(), sanitizeName(name))
}

// sanitizeName keeps the base name readable while dropping anything that
// would change the object path.
func sanitizeName(name string) string {
	base := filepath.Base(strings.TrimSpace(name))
	if base == "." || base == string(filepath.Separator) {
		base = ""
	}

	cleaned := strings.Map(func(r rune) rune {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), r == '.', r == '-', r == '_':
			return r
		case unicode.IsSpace(r):
			return '-'
		default:
			return -1
		}
	}, base)
	cleaned = strings.TrimLeft(cleaned, ".")
	if cleaned == "" {
		return "upload"
	}

	return cleaned
}
