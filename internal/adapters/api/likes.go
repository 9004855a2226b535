package api

import (
	"context"
	"net/http"

	"github.com/bnema/skillconnect-cli/internal/domain"
)

func (c *Client) ListLikesByPost(ctx context.Context, postID domain.PostID) ([]domain.Like, error) {
	var likes []domain.Like
	err := c.do(ctx, request{
		op:       "list post likes",
		fallback: "Failed to fetch likes",
		method:   http.MethodGet,
		path:     resourcePath("likes", "post", string(postID)),
	}, &likes)
	return likes, err
}

func (c *Client) ListLikesByUser(ctx context.Context, userID domain.UserID) ([]domain.Like, error) {
	var likes []domain.Like
	err := c.do(ctx, request{
		op:       "list user likes",
		fallback: "Failed to fetch likes",
		method:   http.MethodGet,
		path:     resourcePath("likes", "user", string(userID)),
	}, &likes)
	return likes, err
}

// CreateLike answers with the existing like when the user already liked
// the post.
func (c *Client) CreateLike(ctx context.Context, payload domain.LikePayload) (domain.Like, error) {
	if payload.UserID == "" {
		payload.UserID = c.actor()
	}

	var like domain.Like
	err := c.do(ctx, request{
		op:       "create like",
		fallback: "Failed to like post",
		method:   http.MethodPost,
		path:     "likes",
		body:     payload,
	}, &like)
	return like, err
}

func (c *Client) DeleteLike(ctx context.Context, id domain.LikeID) error {
	return c.do(ctx, request{
		op:       "delete like",
		fallback: "Failed to remove like",
		notFound: "Like not found",
		method:   http.MethodDelete,
		path:     resourcePath("likes", string(id)),
	}, nil)
}
