package application

import (
	"context"
	"testing"

	"github.com/bnema/skillconnect-cli/internal/domain"
	"github.com/bnema/skillconnect-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowServiceToggleFollowsWhenNotFollowing(t *testing.T) {
	t.Parallel()

	follows := mocks.NewMockFollowAPI(t)
	service := NewFollowService(follows, signedInState(t))
	edge := domain.FollowEdge{FollowerID: "user-1", FollowingID: "user-2"}

	follows.EXPECT().IsFollowing(mockAnyContext(), edge.FollowerID, edge.FollowingID).Return(false, nil).Once()
	follows.EXPECT().Follow(mockAnyContext(), edge).Return("Followed successfully", nil).Once()

	result, err := service.Toggle(context.Background(), "user-2")
	require.NoError(t, err)
	assert.Equal(t, FollowResult{Following: true, Message: "Followed successfully"}, result)
}

func TestFollowServiceToggleUnfollowsWhenFollowing(t *testing.T) {
	t.Parallel()

	follows := mocks.NewMockFollowAPI(t)
	service := NewFollowService(follows, signedInState(t))
	edge := domain.FollowEdge{FollowerID: "user-1", FollowingID: "user-2"}

	follows.EXPECT().IsFollowing(mockAnyContext(), edge.FollowerID, edge.FollowingID).Return(true, nil).Once()
	follows.EXPECT().Unfollow(mockAnyContext(), edge).Return("Unfollowed successfully", nil).Once()

	result, err := service.Toggle(context.Background(), "user-2")
	require.NoError(t, err)
	assert.False(t, result.Following)
}

func TestFollowServiceRejectsSelfFollowLocally(t *testing.T) {
	t.Parallel()

	service := NewFollowService(mocks.NewMockFollowAPI(t), signedInState(t))

	_, err := service.Follow(context.Background(), "user-1")
	assert.ErrorIs(t, err, domain.ErrSelfFollow)
}

func TestFollowServiceRequiresSession(t *testing.T) {
	t.Parallel()

	session := NewSessionState(mocks.NewMockSessionRepository(t), mocks.NewMockSecretStore(t))
	service := NewFollowService(mocks.NewMockFollowAPI(t), session)

	_, err := service.Follow(context.Background(), "user-2")
	assert.ErrorIs(t, err, domain.ErrNoSession)
}

func TestFollowServiceCounts(t *testing.T) {
	t.Parallel()

	follows := mocks.NewMockFollowAPI(t)
	service := NewFollowService(follows, signedInState(t))

	follows.EXPECT().CountFollowers(mockAnyContext(), domain.UserID("user-1")).Return(int64(4), nil).Once()
	follows.EXPECT().CountFollowing(mockAnyContext(), domain.UserID("user-1")).Return(int64(2), nil).Once()

	counts, err := service.Counts(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, domain.FollowCounts{Followers: 4, Following: 2}, counts)
}
