package ports

import (
	"context"

	"github.com/bnema/skillconnect-cli/internal/domain"
)

type UserAPI interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	GetUser(ctx context.Context, id domain.UserID) (domain.User, error)
	Register(ctx context.Context, payload map[string]any) (domain.User, error)
	Login(ctx context.Context, credentials domain.Credentials) (domain.LoginResult, error)
	UpdateUser(ctx context.Context, id domain.UserID, payload map[string]any) (domain.User, error)
	DeleteUser(ctx context.Context, id domain.UserID) error
}

type PostAPI interface {
	ListPosts(ctx context.Context) ([]domain.Post, error)
	GetPost(ctx context.Context, id domain.PostID) (domain.Post, error)
	ListPostsByUser(ctx context.Context, userID domain.UserID) ([]domain.Post, error)
	CreatePost(ctx context.Context, payload domain.PostPayload) (domain.Post, error)
	UpdatePost(ctx context.Context, id domain.PostID, payload domain.PostPayload) (domain.Post, error)
	DeletePost(ctx context.Context, id domain.PostID) error
}

type ProgressAPI interface {
	ListProgressUpdates(ctx context.Context) ([]domain.ProgressUpdate, error)
	GetProgressUpdate(ctx context.Context, id domain.ProgressUpdateID) (domain.ProgressUpdate, error)
	ListProgressUpdatesByUser(ctx context.Context, userID domain.UserID) ([]domain.ProgressUpdate, error)
	CreateProgressUpdate(ctx context.Context, payload domain.ProgressPayload) (domain.ProgressUpdate, error)
	UpdateProgressUpdate(ctx context.Context, id domain.ProgressUpdateID, payload domain.ProgressPayload) (domain.ProgressUpdate, error)
	SetProgressVisibility(ctx context.Context, id domain.ProgressUpdateID, public bool) (domain.ProgressUpdate, error)
	DeleteProgressUpdate(ctx context.Context, id domain.ProgressUpdateID) error
}

type NotificationAPI interface {
	ListNotificationsByUser(ctx context.Context, userID domain.UserID) ([]domain.Notification, error)
	CountNotifications(ctx context.Context, userID domain.UserID) (int64, error)
	CreateNotification(ctx context.Context, payload domain.NotificationPayload) (domain.Notification, error)
	DeleteNotification(ctx context.Context, id domain.NotificationID) error
}

type FollowAPI interface {
	Follow(ctx context.Context, edge domain.FollowEdge) (string, error)
	Unfollow(ctx context.Context, edge domain.FollowEdge) (string, error)
	CountFollowing(ctx context.Context, userID domain.UserID) (int64, error)
	CountFollowers(ctx context.Context, userID domain.UserID) (int64, error)
	IsFollowing(ctx context.Context, followerID, followingID domain.UserID) (bool, error)
}

type MediaTypeAPI interface {
	ListMediaTypes(ctx context.Context) ([]domain.MediaType, error)
	ListMediaTypesByPost(ctx context.Context, postID domain.PostID) ([]domain.MediaType, error)
	GetMediaType(ctx context.Context, id domain.MediaTypeID) (domain.MediaType, error)
	CreateMediaType(ctx context.Context, payload domain.MediaTypePayload) (domain.MediaType, error)
	UpdateMediaType(ctx context.Context, id domain.MediaTypeID, payload domain.MediaTypePayload) (domain.MediaType, error)
	DeleteMediaType(ctx context.Context, id domain.MediaTypeID) error
}

type LikeAPI interface {
	ListLikesByPost(ctx context.Context, postID domain.PostID) ([]domain.Like, error)
	ListLikesByUser(ctx context.Context, userID domain.UserID) ([]domain.Like, error)
	CreateLike(ctx context.Context, payload domain.LikePayload) (domain.Like, error)
	DeleteLike(ctx context.Context, id domain.LikeID) error
}

type CommentAPI interface {
	ListCommentsByPost(ctx context.Context, postID domain.PostID) ([]domain.Comment, error)
	GetComment(ctx context.Context, id domain.CommentID) (domain.Comment, error)
	CreateComment(ctx context.Context, payload domain.CommentPayload) (domain.Comment, error)
	UpdateComment(ctx context.Context, id domain.CommentID, payload domain.CommentPayload) (domain.Comment, error)
	DeleteComment(ctx context.Context, id domain.CommentID) error
}
