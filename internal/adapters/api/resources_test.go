package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/bnema/skillconnect-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressNotFoundUsesSpecificMessage(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"No value present"}`))
	})

	ctx := context.Background()
	_, getErr := client.GetProgressUpdate(ctx, "p-1")
	_, updateErr := client.UpdateProgressUpdate(ctx, "p-1", domain.ProgressPayload{Content: "x"})
	deleteErr := client.DeleteProgressUpdate(ctx, "p-1")

	for _, err := range []error{getErr, updateErr, deleteErr} {
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.Equal(t, "Progress update not found", domain.DisplayMessage(err))
	}
}

func TestProgressListFailureMessage(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.ListProgressUpdates(context.Background())
	require.Error(t, err)
	assert.Equal(t, "Failed to fetch progress updates", domain.DisplayMessage(err))
}

func TestCreateProgressUpdateStampsActorAndClampsCompletion(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/progress-updates", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var payload domain.ProgressPayload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, domain.UserID("user-1"), payload.UserID)
		assert.InDelta(t, 1.0, payload.Completion, 0.0001)

		_, _ = w.Write([]byte(`{"id":"p-9","userId":"user-1","content":"Finished Go tour","completedProgress":1,"public":true}`))
	})

	update, err := client.CreateProgressUpdate(context.Background(), domain.ProgressPayload{
		Content:    "Finished Go tour",
		Completion: 1.7,
		Public:     true,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ProgressUpdateID("p-9"), update.ID)
}

func TestProgressCompletionUsesCompletedProgressField(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, 0.4, body["completedProgress"])
		assert.NotContains(t, body, "completion")

		_, _ = w.Write([]byte(`{"id":"p-1","userId":"user-1","content":"Halfway","completedProgress":0.4,"estimatedTime":2.5,"public":true}`))
	})

	update, err := client.CreateProgressUpdate(context.Background(), domain.ProgressPayload{Content: "Halfway", Completion: 0.4})
	require.NoError(t, err)
	assert.InDelta(t, 0.4, update.Completion, 0.0001)
	assert.InDelta(t, 2.5, update.EstimatedTime, 0.0001)
}

func TestUpdateProgressSendsZeroCompletionAndEstimate(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"userId":"user-1","content":"reset","completedProgress":0,"estimatedTime":0,"public":false}`, string(body))
		_, _ = w.Write([]byte(`{"id":"p-1","userId":"user-1","content":"reset","completedProgress":0,"public":false}`))
	})

	update, err := client.UpdateProgressUpdate(context.Background(), "p-1", domain.ProgressPayload{UserID: "user-1", Content: "reset"})
	require.NoError(t, err)
	assert.Zero(t, update.Completion)
}

func TestSetProgressVisibilityPatchesPublicFlag(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/progress-updates/p-1", r.URL.Path)
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"public":false}`, string(body))
		_, _ = w.Write([]byte(`{"id":"p-1","userId":"user-1","content":"x","public":false}`))
	})

	update, err := client.SetProgressVisibility(context.Background(), "p-1", false)
	require.NoError(t, err)
	assert.False(t, update.Public)
}

func TestFollowAcceptsPlainTextResponse(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/follow", r.URL.Path)
		var edge domain.FollowEdge
		require.NoError(t, json.NewDecoder(r.Body).Decode(&edge))
		assert.Equal(t, domain.UserID("user-1"), edge.FollowerID)
		assert.Equal(t, domain.UserID("user-2"), edge.FollowingID)

		w.Header().Set("Content-Type", "text/plain")
		if r.Method == http.MethodDelete {
			_, _ = w.Write([]byte("Unfollowed successfully."))
			return
		}
		_, _ = w.Write([]byte("Followed successfully."))
	})

	ctx := context.Background()
	status, err := client.Follow(ctx, domain.FollowEdge{FollowingID: "user-2"})
	require.NoError(t, err)
	assert.Equal(t, "Followed successfully.", status)

	status, err = client.Unfollow(ctx, domain.FollowEdge{FollowingID: "user-2"})
	require.NoError(t, err)
	assert.Equal(t, "Unfollowed successfully.", status)
}

func TestFollowQueries(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/follow/count/followers/user-2":
			_, _ = w.Write([]byte(`12`))
		case "/api/follow/count/following/user-2":
			_, _ = w.Write([]byte(`3`))
		case "/api/follow/is-following":
			assert.Equal(t, "user-1", r.URL.Query().Get("followerId"))
			assert.Equal(t, "user-2", r.URL.Query().Get("followingId"))
			_, _ = w.Write([]byte(`true`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	})

	ctx := context.Background()
	followers, err := client.CountFollowers(ctx, "user-2")
	require.NoError(t, err)
	assert.Equal(t, int64(12), followers)

	following, err := client.CountFollowing(ctx, "user-2")
	require.NoError(t, err)
	assert.Equal(t, int64(3), following)

	isFollowing, err := client.IsFollowing(ctx, "user-1", "user-2")
	require.NoError(t, err)
	assert.True(t, isFollowing)
}

func TestFollowFailureMessage(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.Follow(context.Background(), domain.FollowEdge{FollowingID: "user-2"})
	require.Error(t, err)
	assert.Equal(t, "Failed to follow user", domain.DisplayMessage(err))
}

func TestCreateNotificationUsesQueryParameters(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/notifications/", r.URL.Path)
		assert.Equal(t, "user-2", r.URL.Query().Get("userId"))
		assert.Equal(t, "New follower", r.URL.Query().Get("title"))
		assert.Equal(t, "ada followed you", r.URL.Query().Get("message"))
		assert.Empty(t, r.Header.Get("Content-Type"))
		_, _ = w.Write([]byte(`{"id":"n-1","title":"New follower","message":"ada followed you"}`))
	})

	notification, err := client.CreateNotification(context.Background(), domain.NotificationPayload{
		UserID:  "user-2",
		Title:   "New follower",
		Message: "ada followed you",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.NotificationID("n-1"), notification.ID)
	assert.Equal(t, domain.UserID("user-2"), notification.UserID)
}

func TestNotificationInboxAndCount(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/notifications/user/user-1":
			_, _ = w.Write([]byte(`[{"id":"n-1","title":"a","message":"b"}]`))
		case "/api/notifications/count/user-1":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	})

	ctx := context.Background()
	notifications, err := client.ListNotificationsByUser(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Equal(t, domain.UserID("user-1"), notifications[0].UserID)

	_, err = client.CountNotifications(ctx, "user-1")
	require.Error(t, err)
	assert.Equal(t, "Failed to fetch notification count", domain.DisplayMessage(err))
}

func TestCreatePostStampsActor(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var payload domain.PostPayload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, domain.UserID("user-1"), payload.UserID)
		require.Len(t, payload.MediaTypes, 1)
		_, _ = w.Write([]byte(`{"id":"post-1","caption":"hello","user":{"id":"user-1","username":"ada"},"mediaTypes":[{"type":"image","url":"https://cdn/a.png"}]}`))
	})

	post, err := client.CreatePost(context.Background(), domain.PostPayload{
		Caption:    "hello",
		MediaTypes: []domain.Media{{Type: "image", URL: "https://cdn/a.png"}},
	})
	require.NoError(t, err)
	assert.Equal(t, domain.UserID("user-1"), post.OwnerID())
	assert.True(t, post.MediaTypes[0].IsImage())
}

func TestMediaTypesByPost(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/media-types/post/post-1", r.URL.Path)
		_, _ = w.Write([]byte(`[{"id":"m-1","type":"video","url":"https://cdn/v.mp4"}]`))
	})

	media, err := client.ListMediaTypesByPost(context.Background(), "post-1")
	require.NoError(t, err)
	require.Len(t, media, 1)
	assert.Equal(t, "video", media[0].Type)
}

func TestDeleteUserReportsNotFound(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNotFound)
	})

	err := client.DeleteUser(context.Background(), "user-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateLikeStampsActorAndDecodesEmbeddedPost(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/likes", r.URL.Path)
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"userId":"user-1","postId":"p-1"}`, string(body))
		_, _ = w.Write([]byte(`{"id":"l-1","user":{"id":"user-1","username":"ada"},"post":{"id":"p-1","caption":"hi"}}`))
	})

	like, err := client.CreateLike(context.Background(), domain.LikePayload{PostID: "p-1"})
	require.NoError(t, err)
	assert.Equal(t, domain.LikeID("l-1"), like.ID)
	assert.Equal(t, domain.UserID("user-1"), like.OwnerID())
	assert.Equal(t, domain.PostID("p-1"), like.LikedPostID())
}

func TestLikeQueries(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/likes/post/p-1":
			_, _ = w.Write([]byte(`[{"id":"l-1","userId":"user-2","postId":"p-1"}]`))
		case "/api/likes/user/user-2":
			_, _ = w.Write([]byte(`[{"id":"l-1","userId":"user-2","postId":"p-1"},{"id":"l-5","userId":"user-2","postId":"p-7"}]`))
		case "/api/likes/l-1":
			assert.Equal(t, http.MethodDelete, r.Method)
			w.WriteHeader(http.StatusNotFound)
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	})

	ctx := context.Background()
	byPost, err := client.ListLikesByPost(ctx, "p-1")
	require.NoError(t, err)
	require.Len(t, byPost, 1)

	byUser, err := client.ListLikesByUser(ctx, "user-2")
	require.NoError(t, err)
	require.Len(t, byUser, 2)
	assert.Equal(t, domain.PostID("p-7"), byUser[1].LikedPostID())

	err = client.DeleteLike(ctx, "l-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, "Like not found", domain.DisplayMessage(err))
}

func TestCommentRoutes(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method + " " + r.URL.Path {
		case "GET /api/comments/post/p-1":
			_, _ = w.Write([]byte(`[{"id":"c-1","content":"hi","userId":"user-2","postId":"p-1","deleteStatus":true}]`))
		case "POST /api/comments":
			var payload domain.CommentPayload
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			assert.Equal(t, domain.CommentPayload{UserID: "user-1", PostID: "p-1", Content: "nice"}, payload)
			_, _ = w.Write([]byte(`{"id":"c-2","content":"nice","userId":"user-1","postId":"p-1"}`))
		case "PUT /api/comments/c-2":
			_, _ = w.Write([]byte(`{"id":"c-2","content":"edited","userId":"user-1","postId":"p-1"}`))
		case "GET /api/comments/c-9":
			w.WriteHeader(http.StatusNotFound)
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	})

	ctx := context.Background()
	comments, err := client.ListCommentsByPost(ctx, "p-1")
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.True(t, comments[0].DeleteStatus)

	created, err := client.CreateComment(ctx, domain.CommentPayload{PostID: "p-1", Content: "nice"})
	require.NoError(t, err)
	assert.Equal(t, domain.CommentID("c-2"), created.ID)

	updated, err := client.UpdateComment(ctx, "c-2", domain.CommentPayload{Content: "edited"})
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Content)

	_, err = client.GetComment(ctx, "c-9")
	require.Error(t, err)
	assert.Equal(t, "Comment not found", domain.DisplayMessage(err))
}
