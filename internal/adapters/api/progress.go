package api

import (
	"context"
	"net/http"

	"github.com/bnema/skillconnect-cli/internal/domain"
)

const progressNotFound = "Progress update not found"

func (c *Client) ListProgressUpdates(ctx context.Context) ([]domain.ProgressUpdate, error) {
	var updates []domain.ProgressUpdate
	err := c.do(ctx, request{
		op:       "list progress updates",
		fallback: "Failed to fetch progress updates",
		method:   http.MethodGet,
		path:     "progress-updates",
	}, &updates)
	return updates, err
}

func (c *Client) GetProgressUpdate(ctx context.Context, id domain.ProgressUpdateID) (domain.ProgressUpdate, error) {
	var update domain.ProgressUpdate
	err := c.do(ctx, request{
		op:       "get progress update",
		fallback: "Failed to fetch progress update",
		notFound: progressNotFound,
		method:   http.MethodGet,
		path:     resourcePath("progress-updates", string(id)),
	}, &update)
	return update, err
}

func (c *Client) ListProgressUpdatesByUser(ctx context.Context, userID domain.UserID) ([]domain.ProgressUpdate, error) {
	var updates []domain.ProgressUpdate
	err := c.do(ctx, request{
		op:       "list user progress updates",
		fallback: "Failed to fetch user progress updates",
		method:   http.MethodGet,
		path:     resourcePath("progress-updates", "user", string(userID)),
	}, &updates)
	return updates, err
}

func (c *Client) CreateProgressUpdate(ctx context.Context, payload domain.ProgressPayload) (domain.ProgressUpdate, error) {
	if payload.UserID == "" {
		payload.UserID = c.actor()
	}
	payload.Completion = payload.ClampedCompletion()

	var update domain.ProgressUpdate
	err := c.do(ctx, request{
		op:       "create progress update",
		fallback: "Failed to create progress update",
		method:   http.MethodPost,
		path:     "progress-updates",
		body:     payload,
	}, &update)
	return update, err
}

func (c *Client) UpdateProgressUpdate(ctx context.Context, id domain.ProgressUpdateID, payload domain.ProgressPayload) (domain.ProgressUpdate, error) {
	payload.Completion = payload.ClampedCompletion()

	var update domain.ProgressUpdate
	err := c.do(ctx, request{
		op:       "update progress update",
		fallback: "Failed to update progress update",
		notFound: progressNotFound,
		method:   http.MethodPut,
		path:     resourcePath("progress-updates", string(id)),
		body:     payload,
	}, &update)
	return update, err
}

func (c *Client) SetProgressVisibility(ctx context.Context, id domain.ProgressUpdateID, public bool) (domain.ProgressUpdate, error) {
	var update domain.ProgressUpdate
	err := c.do(ctx, request{
		op:       "set progress visibility",
		fallback: "Failed to update progress update",
		notFound: progressNotFound,
		method:   http.MethodPatch,
		path:     resourcePath("progress-updates", string(id)),
		body:     map[string]bool{"public": public},
	}, &update)
	return update, err
}

func (c *Client) DeleteProgressUpdate(ctx context.Context, id domain.ProgressUpdateID) error {
	return c.do(ctx, request{
		op:       "delete progress update",
		fallback: "Failed to delete progress update",
		notFound: progressNotFound,
		method:   http.MethodDelete,
		path:     resourcePath("progress-updates", string(id)),
	}, nil)
}
