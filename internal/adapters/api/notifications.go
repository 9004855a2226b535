package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/bnema/skillconnect-cli/internal/domain"
)

func (c *Client) ListNotificationsByUser(ctx context.Context, userID domain.UserID) ([]domain.Notification, error) {
	var notifications []domain.Notification
	err := c.do(ctx, request{
		op:       "list notifications",
		fallback: "Failed to fetch notifications",
		method:   http.MethodGet,
		path:     resourcePath("notifications", "user", string(userID)),
	}, &notifications)
	for i := range notifications {
		if notifications[i].UserID == "" {
			notifications[i].UserID = userID
		}
	}
	return notifications, err
}

func (c *Client) CountNotifications(ctx context.Context, userID domain.UserID) (int64, error) {
	var count int64
	err := c.do(ctx, request{
		op:       "count notifications",
		fallback: "Failed to fetch notification count",
		method:   http.MethodGet,
		path:     resourcePath("notifications", "count", string(userID)),
	}, &count)
	return count, err
}

// CreateNotification sends its fields as query parameters with an empty
// body; the endpoint does not accept JSON.
func (c *Client) CreateNotification(ctx context.Context, payload domain.NotificationPayload) (domain.Notification, error) {
	query := url.Values{}
	query.Set("userId", string(payload.UserID))
	query.Set("title", payload.Title)
	query.Set("message", payload.Message)

	var notification domain.Notification
	err := c.do(ctx, request{
		op:       "create notification",
		fallback: "Failed to create notification",
		method:   http.MethodPost,
		path:     "notifications/",
		query:    query,
	}, &notification)
	if notification.UserID == "" {
		notification.UserID = payload.UserID
	}
	return notification, err
}

func (c *Client) DeleteNotification(ctx context.Context, id domain.NotificationID) error {
	return c.do(ctx, request{
		op:       "delete notification",
		fallback: "Failed to delete notification",
		method:   http.MethodDelete,
		path:     resourcePath("notifications", string(id)),
	}, nil)
}
