package api

import (
	"context"
	"net/http"

	"github.com/bnema/skillconnect-cli/internal/domain"
)

const mediaTypeNotFound = "Media not found"

func (c *Client) ListMediaTypes(ctx context.Context) ([]domain.MediaType, error) {
	var media []domain.MediaType
	err := c.do(ctx, request{
		op:       "list media types",
		fallback: "Failed to fetch media",
		method:   http.MethodGet,
		path:     "media-types",
	}, &media)
	return media, err
}

func (c *Client) ListMediaTypesByPost(ctx context.Context, postID domain.PostID) ([]domain.MediaType, error) {
	var media []domain.MediaType
	err := c.do(ctx, request{
		op:       "list post media types",
		fallback: "Failed to fetch post media",
		method:   http.MethodGet,
		path:     resourcePath("media-types", "post", string(postID)),
	}, &media)
	return media, err
}

func (c *Client) GetMediaType(ctx context.Context, id domain.MediaTypeID) (domain.MediaType, error) {
	var media domain.MediaType
	err := c.do(ctx, request{
		op:       "get media type",
		fallback: "Failed to fetch media",
		notFound: mediaTypeNotFound,
		method:   http.MethodGet,
		path:     resourcePath("media-types", string(id)),
	}, &media)
	return media, err
}

func (c *Client) CreateMediaType(ctx context.Context, payload domain.MediaTypePayload) (domain.MediaType, error) {
	var media domain.MediaType
	err := c.do(ctx, request{
		op:       "create media type",
		fallback: "Failed to add media",
		method:   http.MethodPost,
		path:     "media-types",
		body:     payload,
	}, &media)
	return media, err
}

func (c *Client) UpdateMediaType(ctx context.Context, id domain.MediaTypeID, payload domain.MediaTypePayload) (domain.MediaType, error) {
	var media domain.MediaType
	err := c.do(ctx, request{
		op:       "update media type",
		fallback: "Failed to update media",
		notFound: mediaTypeNotFound,
		method:   http.MethodPut,
		path:     resourcePath("media-types", string(id)),
		body:     payload,
	}, &media)
	return media, err
}

func (c *Client) DeleteMediaType(ctx context.Context, id domain.MediaTypeID) error {
	return c.do(ctx, request{
		op:       "delete media type",
		fallback: "Failed to delete media",
		notFound: mediaTypeNotFound,
		method:   http.MethodDelete,
		path:     resourcePath("media-types", string(id)),
	}, nil)
}
