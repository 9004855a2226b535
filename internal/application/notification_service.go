package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/skillconnect-cli/internal/domain"
	"github.com/bnema/skillconnect-cli/internal/ports"
)

type NotificationService struct {
	notifications ports.NotificationAPI
	session       *SessionState
}

func NewNotificationService(notifications ports.NotificationAPI, session *SessionState) *NotificationService {
	return &NotificationService{notifications: notifications, session: session}
}

// Inbox loads the session user's notifications together with the count
// reported by the server.
func (s *NotificationService) Inbox(ctx context.Context) (Inbox, error) {
	userID := s.session.Get().UserID
	if userID == "" {
		return Inbox{}, domain.ErrNoSession
	}

	list := NewNotificationInbox(s.notifications, userID)
	if err := list.LoadAll(ctx, nil); err != nil {
		return Inbox{}, err
	}

	count, err := s.notifications.CountNotifications(ctx, userID)
	if err != nil {
		return Inbox{}, fmt.Errorf("count notifications: %w", err)
	}

	return Inbox{Notifications: list.Items(), Count: count}, nil
}

// Dismiss deletes one notification. A notification that is already gone is
// not an error.
func (s *NotificationService) Dismiss(ctx context.Context, id domain.NotificationID) (RemoveResult, error) {
	userID := s.session.Get().UserID
	if userID == "" {
		return RemoveResult{}, domain.ErrNoSession
	}

	list := NewNotificationInbox(s.notifications, userID)
	return list.RemoveByID(ctx, string(id))
}

func (s *NotificationService) Count(ctx context.Context) (int64, error) {
	userID := s.session.Get().UserID
	if userID == "" {
		return 0, domain.ErrNoSession
	}

	return s.notifications.CountNotifications(ctx, userID)
}

// Notify sends a notification to another user, e.g. after following them.
func (s *NotificationService) Notify(ctx context.Context, payload domain.NotificationPayload) (domain.Notification, error) {
	if payload.UserID == "" {
		return domain.Notification{}, errors.New("notify: recipient is required")
	}

	return s.notifications.CreateNotification(ctx, payload)
}
