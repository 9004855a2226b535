package domain

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		session Session
		wantErr string
	}{
		{name: "empty", session: Session{}},
		{name: "established", session: Session{UserID: "u-1", AuthToken: "tok", CachedAvatarURL: "https://cdn/a.png"}},
		{name: "user without token", session: Session{UserID: "u-1"}, wantErr: "must be set together"},
		{name: "token without user", session: Session{AuthToken: "tok"}, wantErr: "must be set together"},
		{name: "avatar without user", session: Session{CachedAvatarURL: "https://cdn/a.png"}, wantErr: "avatar requires a user id"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := tc.session.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestSessionOwns(t *testing.T) {
	t.Parallel()

	s := Session{UserID: "A", AuthToken: "tok"}
	assert.True(t, s.Owns("A"))
	assert.False(t, s.Owns("B"))
	assert.False(t, Session{}.Owns(""))
}

func TestDiffSessionsHidesTokenValues(t *testing.T) {
	t.Parallel()

	changes := DiffSessions(Session{}, Session{UserID: "u-1", AuthToken: "secret"})

	assert.Equal(t, []SessionChange{
		{Key: SessionKeyUserID, UserID: "u-1", OldValue: "", NewValue: "u-1"},
		{Key: SessionKeyToken, UserID: "u-1", OldValue: "", NewValue: "set"},
	}, changes)
}

func TestProgressUpdateVisibleTo(t *testing.T) {
	t.Parallel()

	private := ProgressUpdate{ID: "1", UserID: "A"}
	public := ProgressUpdate{ID: "2", UserID: "B", Public: true}

	assert.True(t, private.VisibleTo("A"))
	assert.False(t, private.VisibleTo("B"))
	assert.False(t, private.VisibleTo(""))
	assert.True(t, public.VisibleTo(""))
}

func TestRemoteErrorMatchesSentinels(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("load post: %w", &RemoteError{Kind: KindForStatus(http.StatusNotFound), Status: 404, Op: "get post", Message: "Post not found"})

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrRemoteFailure))
	assert.Equal(t, "Post not found", DisplayMessage(err))
	assert.Equal(t, RemoteUnauthorized, KindForStatus(http.StatusUnauthorized))
	assert.Equal(t, RemoteFailureKind, KindForStatus(http.StatusForbidden))
	assert.Equal(t, RemoteFailureKind, KindForStatus(http.StatusBadGateway))
}

func TestUploadErrorMatchesSentinel(t *testing.T) {
	t.Parallel()

	err := &UploadError{Name: "me.png", Message: "object store rejected upload"}

	assert.ErrorIs(t, err, ErrUploadFailure)
	assert.Equal(t, "object store rejected upload", DisplayMessage(err))
}

func TestUserDisplayName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Ada Lovelace", User{FirstName: "Ada", LastName: "Lovelace", Username: "ada"}.DisplayName())
	assert.Equal(t, "ada", User{Username: "ada"}.DisplayName())
}

func TestFollowEdgeRejectsSelfFollow(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, FollowEdge{FollowerID: "A", FollowingID: "A"}.Validate(), ErrSelfFollow)
	assert.NoError(t, FollowEdge{FollowerID: "A", FollowingID: "B"}.Validate())
}
