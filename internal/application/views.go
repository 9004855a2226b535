package application

import (
	"context"

	"github.com/bnema/skillconnect-cli/internal/domain"
	"github.com/bnema/skillconnect-cli/internal/ports"
)

type (
	PostList         = ResourceList[domain.Post, domain.PostPayload]
	ProgressList     = ResourceList[domain.ProgressUpdate, domain.ProgressPayload]
	NotificationList = ResourceList[domain.Notification, domain.NotificationPayload]
	MediaTypeList    = ResourceList[domain.MediaType, domain.MediaTypePayload]
	LikeList         = ResourceList[domain.Like, domain.LikePayload]
	CommentList      = ResourceList[domain.Comment, domain.CommentPayload]
)

// NewPostFeed lists every post.
func NewPostFeed(api ports.PostAPI, order OrderPolicy) *PostList {
	return NewResourceList[domain.Post, domain.PostPayload](postCollection{api: api}, order)
}

// NewUserPostList lists the posts of one user.
func NewUserPostList(api ports.PostAPI, userID domain.UserID, order OrderPolicy) *PostList {
	return NewResourceList[domain.Post, domain.PostPayload](postCollection{api: api, userID: userID}, order)
}

func NewProgressFeed(api ports.ProgressAPI, order OrderPolicy) *ProgressList {
	return NewResourceList[domain.ProgressUpdate, domain.ProgressPayload](progressCollection{api: api}, order)
}

func NewUserProgressList(api ports.ProgressAPI, userID domain.UserID, order OrderPolicy) *ProgressList {
	return NewResourceList[domain.ProgressUpdate, domain.ProgressPayload](progressCollection{api: api, userID: userID}, order)
}

// VisibleProgress keeps the updates viewer may see: public ones and the
// viewer's own.
func VisibleProgress(viewer domain.UserID) func(domain.ProgressUpdate) bool {
	return func(update domain.ProgressUpdate) bool {
		return update.VisibleTo(viewer)
	}
}

// NewNotificationInbox lists the notifications addressed to userID. The
// inbox endpoint already answers newest first, so server order is kept.
func NewNotificationInbox(api ports.NotificationAPI, userID domain.UserID) *NotificationList {
	return NewResourceList[domain.Notification, domain.NotificationPayload](notificationCollection{api: api, userID: userID}, OrderServer)
}

func NewPostMediaList(api ports.MediaTypeAPI, postID domain.PostID) *MediaTypeList {
	return NewResourceList[domain.MediaType, domain.MediaTypePayload](mediaTypeCollection{api: api, postID: postID}, OrderServer)
}

func NewPostLikeList(api ports.LikeAPI, postID domain.PostID, order OrderPolicy) *LikeList {
	return NewResourceList[domain.Like, domain.LikePayload](likeCollection{api: api, postID: postID}, order)
}

// NewPostCommentList lists the comments on one post. Load it with
// LiveComments to hide soft-deleted entries.
func NewPostCommentList(api ports.CommentAPI, postID domain.PostID, order OrderPolicy) *CommentList {
	return NewResourceList[domain.Comment, domain.CommentPayload](commentCollection{api: api, postID: postID}, order)
}

func LiveComments(comment domain.Comment) bool {
	return !comment.DeleteStatus
}

type postCollection struct {
	api    ports.PostAPI
	userID domain.UserID
}

func (c postCollection) List(ctx context.Context) ([]domain.Post, error) {
	if c.userID != "" {
		return c.api.ListPostsByUser(ctx, c.userID)
	}
	return c.api.ListPosts(ctx)
}

func (c postCollection) Create(ctx context.Context, payload domain.PostPayload) (domain.Post, error) {
	return c.api.CreatePost(ctx, payload)
}

func (c postCollection) Update(ctx context.Context, id string, payload domain.PostPayload) (domain.Post, error) {
	return c.api.UpdatePost(ctx, domain.PostID(id), payload)
}

func (c postCollection) Delete(ctx context.Context, id string) error {
	return c.api.DeletePost(ctx, domain.PostID(id))
}

type progressCollection struct {
	api    ports.ProgressAPI
	userID domain.UserID
}

func (c progressCollection) List(ctx context.Context) ([]domain.ProgressUpdate, error) {
	if c.userID != "" {
		return c.api.ListProgressUpdatesByUser(ctx, c.userID)
	}
	return c.api.ListProgressUpdates(ctx)
}

func (c progressCollection) Create(ctx context.Context, payload domain.ProgressPayload) (domain.ProgressUpdate, error) {
	return c.api.CreateProgressUpdate(ctx, payload)
}

func (c progressCollection) Update(ctx context.Context, id string, payload domain.ProgressPayload) (domain.ProgressUpdate, error) {
	return c.api.UpdateProgressUpdate(ctx, domain.ProgressUpdateID(id), payload)
}

func (c progressCollection) Delete(ctx context.Context, id string) error {
	return c.api.DeleteProgressUpdate(ctx, domain.ProgressUpdateID(id))
}

type notificationCollection struct {
	api    ports.NotificationAPI
	userID domain.UserID
}

func (c notificationCollection) List(ctx context.Context) ([]domain.Notification, error) {
	return c.api.ListNotificationsByUser(ctx, c.userID)
}

func (c notificationCollection) Create(ctx context.Context, payload domain.NotificationPayload) (domain.Notification, error) {
	if payload.UserID == "" {
		payload.UserID = c.userID
	}
	return c.api.CreateNotification(ctx, payload)
}

func (c notificationCollection) Update(context.Context, string, domain.NotificationPayload) (domain.Notification, error) {
	return domain.Notification{}, ErrUnsupportedMutation
}

func (c notificationCollection) Delete(ctx context.Context, id string) error {
	return c.api.DeleteNotification(ctx, domain.NotificationID(id))
}

type mediaTypeCollection struct {
	api    ports.MediaTypeAPI
	postID domain.PostID
}

func (c mediaTypeCollection) List(ctx context.Context) ([]domain.MediaType, error) {
	if c.postID != "" {
		return c.api.ListMediaTypesByPost(ctx, c.postID)
	}
	return c.api.ListMediaTypes(ctx)
}

func (c mediaTypeCollection) Create(ctx context.Context, payload domain.MediaTypePayload) (domain.MediaType, error) {
	if payload.PostID == "" {
		payload.PostID = c.postID
	}
	return c.api.CreateMediaType(ctx, payload)
}

func (c mediaTypeCollection) Update(ctx context.Context, id string, payload domain.MediaTypePayload) (domain.MediaType, error) {
	return c.api.UpdateMediaType(ctx, domain.MediaTypeID(id), payload)
}

func (c mediaTypeCollection) Delete(ctx context.Context, id string) error {
	return c.api.DeleteMediaType(ctx, domain.MediaTypeID(id))
}

type likeCollection struct {
	api    ports.LikeAPI
	postID domain.PostID
}

func (c likeCollection) List(ctx context.Context) ([]domain.Like, error) {
	return c.api.ListLikesByPost(ctx, c.postID)
}

func (c likeCollection) Create(ctx context.Context, payload domain.LikePayload) (domain.Like, error) {
	if payload.PostID == "" {
		payload.PostID = c.postID
	}
	return c.api.CreateLike(ctx, payload)
}

func (c likeCollection) Update(context.Context, string, domain.LikePayload) (domain.Like, error) {
	return domain.Like{}, ErrUnsupportedMutation
}

func (c likeCollection) Delete(ctx context.Context, id string) error {
	return c.api.DeleteLike(ctx, domain.LikeID(id))
}

type commentCollection struct {
	api    ports.CommentAPI
	postID domain.PostID
}

func (c commentCollection) List(ctx context.Context) ([]domain.Comment, error) {
	return c.api.ListCommentsByPost(ctx, c.postID)
}

func (c commentCollection) Create(ctx context.Context, payload domain.CommentPayload) (domain.Comment, error) {
	if payload.PostID == "" {
		payload.PostID = c.postID
	}
	return c.api.CreateComment(ctx, payload)
}

func (c commentCollection) Update(ctx context.Context, id string, payload domain.CommentPayload) (domain.Comment, error) {
	if payload.PostID == "" {
		payload.PostID = c.postID
	}
	return c.api.UpdateComment(ctx, domain.CommentID(id), payload)
}

func (c commentCollection) Delete(ctx context.Context, id string) error {
	return c.api.DeleteComment(ctx, domain.CommentID(id))
}
