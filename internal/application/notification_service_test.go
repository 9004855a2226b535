package application

import (
	"context"
	"testing"

	"github.com/bnema/skillconnect-cli/internal/domain"
	"github.com/bnema/skillconnect-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationServiceInboxKeepsServerOrder(t *testing.T) {
	t.Parallel()

	api := mocks.NewMockNotificationAPI(t)
	service := NewNotificationService(api, signedInState(t))

	api.EXPECT().ListNotificationsByUser(mockAnyContext(), domain.UserID("user-1")).Return([]domain.Notification{
		{ID: "n-2", Title: "newest"},
		{ID: "n-1", Title: "older"},
	}, nil).Once()
	api.EXPECT().CountNotifications(mockAnyContext(), domain.UserID("user-1")).Return(int64(2), nil).Once()

	inbox, err := service.Inbox(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), inbox.Count)
	require.Len(t, inbox.Notifications, 2)
	assert.Equal(t, "newest", inbox.Notifications[0].Title)
}

func TestNotificationServiceDismissToleratesMissingNotification(t *testing.T) {
	t.Parallel()

	api := mocks.NewMockNotificationAPI(t)
	service := NewNotificationService(api, signedInState(t))

	api.EXPECT().DeleteNotification(mockAnyContext(), domain.NotificationID("n-1")).
		Return(&domain.RemoteError{Kind: domain.RemoteNotFound, Status: 404, Message: "Failed to delete notification"}).Once()

	result, err := service.Dismiss(context.Background(), "n-1")
	require.NoError(t, err)
	assert.True(t, result.AlreadyGone)
}

func TestNotificationServiceRequiresSession(t *testing.T) {
	t.Parallel()

	session := NewSessionState(mocks.NewMockSessionRepository(t), mocks.NewMockSecretStore(t))
	service := NewNotificationService(mocks.NewMockNotificationAPI(t), session)

	_, err := service.Inbox(context.Background())
	assert.ErrorIs(t, err, domain.ErrNoSession)

	_, err = service.Count(context.Background())
	assert.ErrorIs(t, err, domain.ErrNoSession)
}
