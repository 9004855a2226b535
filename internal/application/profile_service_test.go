package application

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/bnema/skillconnect-cli/internal/domain"
	"github.com/bnema/skillconnect-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type profileFixture struct {
	users   *mocks.MockUserAPI
	follows *mocks.MockFollowAPI
	posts   *mocks.MockPostAPI
	store   *mocks.MockObjectStore
	clock   *mocks.MockClock
	session *SessionState
	service *ProfileService
}

func newProfileFixture(t *testing.T) profileFixture {
	t.Helper()

	f := profileFixture{
		users:   mocks.NewMockUserAPI(t),
		follows: mocks.NewMockFollowAPI(t),
		posts:   mocks.NewMockPostAPI(t),
		store:   mocks.NewMockObjectStore(t),
		clock:   mocks.NewMockClock(t),
		session: signedInState(t),
	}
	f.service = NewProfileService(f.users, f.follows, f.posts, NewUploader(f.store, f.clock), f.session, OrderReverse)

	return f
}

func TestProfileServiceChangeProfileImageUpdatesUserAndAvatar(t *testing.T) {
	t.Parallel()

	f := newProfileFixture(t)
	const url = "https://cdn.example/profile-images/1772530200000-me.png"

	f.clock.EXPECT().Now().Return(uploadTime).Once()
	f.store.EXPECT().Put(mockAnyContext(), mock.Anything, mock.Anything).Return(url, nil).Once()
	f.users.EXPECT().UpdateUser(mockAnyContext(), domain.UserID("user-1"), map[string]any{"profileImageUrl": url}).
		Return(domain.User{ID: "user-1", ProfileImageURL: url}, nil).Once()
	f.users.EXPECT().GetUser(mockAnyContext(), domain.UserID("user-1")).
		Return(domain.User{ID: "user-1", ProfileImageURL: url}, nil).Once()

	user, err := f.service.ChangeProfileImage(context.Background(), Asset{Name: "me.png", ContentType: "image/png", Body: strings.NewReader("img")}, nil)
	require.NoError(t, err)
	assert.Equal(t, url, user.ProfileImageURL)
	assert.Equal(t, url, f.session.Get().CachedAvatarURL)

	fetched, err := f.users.GetUser(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, url, fetched.ProfileImageURL)
}

func TestProfileServiceChangeCoverImageCachesURL(t *testing.T) {
	t.Parallel()

	f := newProfileFixture(t)
	const url = "https://cdn.example/cover-images/1772530200000-cover.jpg"

	f.clock.EXPECT().Now().Return(uploadTime).Once()
	f.store.EXPECT().Put(mockAnyContext(), mock.Anything, mock.Anything).Return(url, nil).Once()
	f.users.EXPECT().UpdateUser(mockAnyContext(), domain.UserID("user-1"), map[string]any{"coverImageUrl": url}).
		Return(domain.User{ID: "user-1", CoverImageURL: url}, nil).Once()

	_, err := f.service.ChangeCoverImage(context.Background(), Asset{Name: "cover.jpg", ContentType: "image/jpeg", Body: strings.NewReader("img")}, nil)
	require.NoError(t, err)
	assert.Equal(t, url, f.session.CoverImageURL("user-1"))
}

func TestProfileServiceFailedUploadLeavesProfileUntouched(t *testing.T) {
	t.Parallel()

	f := newProfileFixture(t)
	before := f.session.Get()

	f.clock.EXPECT().Now().Return(uploadTime).Once()
	f.store.EXPECT().Put(mockAnyContext(), mock.Anything, mock.Anything).Return("", errors.New("quota exceeded")).Once()

	_, err := f.service.ChangeProfileImage(context.Background(), Asset{Name: "me.png", ContentType: "image/png", Body: strings.NewReader("img")}, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUploadFailure)
	assert.Equal(t, before, f.session.Get())
}

func TestProfileServiceProfileOfAnotherUser(t *testing.T) {
	t.Parallel()

	f := newProfileFixture(t)
	target := domain.UserID("user-2")

	f.users.EXPECT().GetUser(mockAnyContext(), target).Return(domain.User{ID: target, Username: "bea"}, nil).Once()
	f.follows.EXPECT().CountFollowers(mockAnyContext(), target).Return(int64(7), nil).Once()
	f.follows.EXPECT().CountFollowing(mockAnyContext(), target).Return(int64(3), nil).Once()
	f.follows.EXPECT().IsFollowing(mockAnyContext(), domain.UserID("user-1"), target).Return(true, nil).Once()
	f.posts.EXPECT().ListPostsByUser(mockAnyContext(), target).Return([]domain.Post{{ID: "p-1"}, {ID: "p-2"}}, nil).Once()

	profile, err := f.service.Profile(context.Background(), target)
	require.NoError(t, err)

	assert.False(t, profile.IsSelf)
	assert.Equal(t, "bea", profile.User.Username)
	assert.Equal(t, domain.FollowCounts{Followers: 7, Following: 3}, profile.Counts)
	require.NotNil(t, profile.Following)
	assert.True(t, *profile.Following)
	require.Len(t, profile.Posts, 2)
	assert.Equal(t, domain.PostID("p-2"), profile.Posts[0].ID)
}

func TestProfileServiceOwnProfileSkipsFollowCheck(t *testing.T) {
	t.Parallel()

	f := newProfileFixture(t)
	self := domain.UserID("user-1")
	require.NoError(t, f.session.SetCoverImage(context.Background(), self, "https://cdn.example/stale-cover.png"))

	f.users.EXPECT().GetUser(mockAnyContext(), self).Return(domain.User{ID: self, CoverImageURL: "https://cdn.example/server-cover.png"}, nil).Once()
	f.follows.EXPECT().CountFollowers(mockAnyContext(), self).Return(int64(0), nil).Once()
	f.follows.EXPECT().CountFollowing(mockAnyContext(), self).Return(int64(0), nil).Once()
	f.posts.EXPECT().ListPostsByUser(mockAnyContext(), self).Return(nil, nil).Once()

	profile, err := f.service.Profile(context.Background(), "")
	require.NoError(t, err)
	assert.True(t, profile.IsSelf)
	assert.Nil(t, profile.Following)
	assert.Equal(t, "https://cdn.example/server-cover.png", profile.CoverImageURL)
}

func TestProfileServiceFallsBackToCachedCover(t *testing.T) {
	t.Parallel()

	f := newProfileFixture(t)
	self := domain.UserID("user-1")
	require.NoError(t, f.session.SetCoverImage(context.Background(), self, "https://cdn.example/cached-cover.png"))

	f.users.EXPECT().GetUser(mockAnyContext(), self).Return(domain.User{ID: self}, nil).Once()
	f.follows.EXPECT().CountFollowers(mockAnyContext(), self).Return(int64(0), nil).Once()
	f.follows.EXPECT().CountFollowing(mockAnyContext(), self).Return(int64(0), nil).Once()
	f.posts.EXPECT().ListPostsByUser(mockAnyContext(), self).Return(nil, nil).Once()

	profile, err := f.service.Profile(context.Background(), self)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example/cached-cover.png", profile.CoverImageURL)
}

func TestProfileServiceProfileReturnsFirstError(t *testing.T) {
	t.Parallel()

	f := newProfileFixture(t)
	self := domain.UserID("user-1")
	notFound := &domain.RemoteError{Kind: domain.RemoteNotFound, Status: 404, Message: "User not found"}

	f.users.EXPECT().GetUser(mockAnyContext(), self).Return(domain.User{}, notFound).Once()
	f.follows.EXPECT().CountFollowers(mockAnyContext(), self).Return(int64(0), nil).Maybe()
	f.follows.EXPECT().CountFollowing(mockAnyContext(), self).Return(int64(0), nil).Maybe()
	f.posts.EXPECT().ListPostsByUser(mockAnyContext(), self).Return(nil, nil).Maybe()

	_, err := f.service.Profile(context.Background(), self)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, "User not found", domain.DisplayMessage(err))
}

func TestProfileServiceUpdateProfileSendsOnlySetFields(t *testing.T) {
	t.Parallel()

	f := newProfileFixture(t)
	bio := "Learning Go"
	public := true

	f.users.EXPECT().UpdateUser(mockAnyContext(), domain.UserID("user-1"), map[string]any{
		"bio":          "Learning Go",
		"publicStatus": true,
	}).Return(domain.User{ID: "user-1", Bio: bio, PublicStatus: true}, nil).Once()

	user, err := f.service.UpdateProfile(context.Background(), ProfileUpdateCommand{Bio: &bio, PublicStatus: &public})
	require.NoError(t, err)
	assert.Equal(t, bio, user.Bio)
}

func TestProfileServiceUpdateProfileRejectsOtherUser(t *testing.T) {
	t.Parallel()

	f := newProfileFixture(t)
	bio := "not mine"

	_, err := f.service.UpdateProfile(context.Background(), ProfileUpdateCommand{UserID: "user-2", Bio: &bio})
	assert.ErrorIs(t, err, ErrNotOwner)
}
