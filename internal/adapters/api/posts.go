package api

import (
	"context"
	"net/http"

	"github.com/bnema/skillconnect-cli/internal/domain"
)

func (c *Client) ListPosts(ctx context.Context) ([]domain.Post, error) {
	var posts []domain.Post
	err := c.do(ctx, request{
		op:       "list posts",
		fallback: "Failed to load posts",
		method:   http.MethodGet,
		path:     "posts",
	}, &posts)
	return posts, err
}

func (c *Client) GetPost(ctx context.Context, id domain.PostID) (domain.Post, error) {
	var post domain.Post
	err := c.do(ctx, request{
		op:       "get post",
		fallback: "Failed to fetch post",
		notFound: "Post not found",
		method:   http.MethodGet,
		path:     resourcePath("posts", string(id)),
	}, &post)
	return post, err
}

func (c *Client) ListPostsByUser(ctx context.Context, userID domain.UserID) ([]domain.Post, error) {
	var posts []domain.Post
	err := c.do(ctx, request{
		op:       "list user posts",
		fallback: "Failed to fetch posts",
		method:   http.MethodGet,
		path:     resourcePath("posts", "user", string(userID)),
	}, &posts)
	return posts, err
}

func (c *Client) CreatePost(ctx context.Context, payload domain.PostPayload) (domain.Post, error) {
	if payload.UserID == "" {
		payload.UserID = c.actor()
	}

	var post domain.Post
	err := c.do(ctx, request{
		op:       "create post",
		fallback: "Failed to create post",
		method:   http.MethodPost,
		path:     "posts",
		body:     payload,
	}, &post)
	return post, err
}

func (c *Client) UpdatePost(ctx context.Context, id domain.PostID, payload domain.PostPayload) (domain.Post, error) {
	var post domain.Post
	err := c.do(ctx, request{
		op:       "update post",
		fallback: "Failed to update post",
		notFound: "Post not found",
		method:   http.MethodPut,
		path:     resourcePath("posts", string(id)),
		body:     payload,
	}, &post)
	return post, err
}

func (c *Client) DeletePost(ctx context.Context, id domain.PostID) error {
	return c.do(ctx, request{
		op:       "delete post",
		fallback: "Failed to delete post",
		notFound: "Post not found",
		method:   http.MethodDelete,
		path:     resourcePath("posts", string(id)),
	}, nil)
}
