package cmd

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/skillconnect-cli/internal/application"
	"github.com/spf13/cobra"
)

// openAsset opens path for upload. The caller closes the returned file.
func openAsset(path string) (application.Asset, *os.File, error) {
	file, err := os.Open(path)
	if err != nil {
		return application.Asset{}, nil, fmt.Errorf("open %s: %w", path, err)
	}

	info, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return application.Asset{}, nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		_ = file.Close()
		return application.Asset{}, nil, fmt.Errorf("%s is a directory", path)
	}

	return application.Asset{
		Name:        filepath.Base(path),
		ContentType: mime.TypeByExtension(strings.ToLower(filepath.Ext(path))),
		Size:        info.Size(),
		Body:        file,
	}, file, nil
}

// uploadFile uploads path as kind with a progress bar on stderr.
func uploadFile(cmd *cobra.Command, app *app, kind application.UploadKind, path string) (application.UploadResult, error) {
	asset, file, err := openAsset(path)
	if err != nil {
		return application.UploadResult{}, err
	}
	defer file.Close()

	var result application.UploadResult
	err = runUploadProgress(cmd.Context(), cmd.ErrOrStderr(), "Uploading "+asset.Name, func(ctx context.Context, onProgress func(float64)) error {
		var uploadErr error
		result, uploadErr = app.uploader.Upload(ctx, kind, asset, onProgress)
		return uploadErr
	})

	return result, err
}

// mediaKind maps a file to the media type the API stores with a post.
func mediaKind(path string) string {
	contentType := mime.TypeByExtension(strings.ToLower(filepath.Ext(path)))
	if strings.HasPrefix(contentType, "video/") {
		return "video"
	}
	return "image"
}
