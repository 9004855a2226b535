package api

import (
	"context"
	"net/http"

	"github.com/bnema/skillconnect-cli/internal/domain"
)

const commentNotFound = "Comment not found"

func (c *Client) ListCommentsByPost(ctx context.Context, postID domain.PostID) ([]domain.Comment, error) {
	var comments []domain.Comment
	err := c.do(ctx, request{
		op:       "list post comments",
		fallback: "Failed to fetch comments",
		method:   http.MethodGet,
		path:     resourcePath("comments", "post", string(postID)),
	}, &comments)
	return comments, err
}

func (c *Client) GetComment(ctx context.Context, id domain.CommentID) (domain.Comment, error) {
	var comment domain.Comment
	err := c.do(ctx, request{
		op:       "get comment",
		fallback: "Failed to fetch comment",
		notFound: commentNotFound,
		method:   http.MethodGet,
		path:     resourcePath("comments", string(id)),
	}, &comment)
	return comment, err
}

func (c *Client) CreateComment(ctx context.Context, payload domain.CommentPayload) (domain.Comment, error) {
	if payload.UserID == "" {
		payload.UserID = c.actor()
	}

	var comment domain.Comment
	err := c.do(ctx, request{
		op:       "create comment",
		fallback: "Failed to add comment",
		method:   http.MethodPost,
		path:     "comments",
		body:     payload,
	}, &comment)
	return comment, err
}

func (c *Client) UpdateComment(ctx context.Context, id domain.CommentID, payload domain.CommentPayload) (domain.Comment, error) {
	var comment domain.Comment
	err := c.do(ctx, request{
		op:       "update comment",
		fallback: "Failed to update comment",
		notFound: commentNotFound,
		method:   http.MethodPut,
		path:     resourcePath("comments", string(id)),
		body:     payload,
	}, &comment)
	return comment, err
}

func (c *Client) DeleteComment(ctx context.Context, id domain.CommentID) error {
	return c.do(ctx, request{
		op:       "delete comment",
		fallback: "Failed to delete comment",
		notFound: commentNotFound,
		method:   http.MethodDelete,
		path:     resourcePath("comments", string(id)),
	}, nil)
}
