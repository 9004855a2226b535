package application

import (
	"context"
	"fmt"

	"github.com/bnema/skillconnect-cli/internal/domain"
	"github.com/bnema/skillconnect-cli/internal/ports"
)

type LikeService struct {
	likes   ports.LikeAPI
	session *SessionState
	order   OrderPolicy
}

func NewLikeService(likes ports.LikeAPI, session *SessionState, order OrderPolicy) *LikeService {
	return &LikeService{likes: likes, session: session, order: order}
}

func (s *LikeService) Likes(ctx context.Context, postID domain.PostID) (PostLikes, error) {
	list := NewPostLikeList(s.likes, postID, s.order)
	if err := list.LoadAll(ctx, nil); err != nil {
		return PostLikes{}, fmt.Errorf("load likes: %w", err)
	}

	likes := PostLikes{Likes: list.Items()}
	if existing, ok := viewerLike(list, s.session.Get()); ok {
		likes.ViewerLike = &existing
	}
	return likes, nil
}

// Like returns the viewer's existing like instead of creating a second one.
func (s *LikeService) Like(ctx context.Context, postID domain.PostID) (LikeResult, error) {
	session := s.session.Get()
	if !session.Active() {
		return LikeResult{}, domain.ErrNoSession
	}

	list := NewPostLikeList(s.likes, postID, s.order)
	if err := list.LoadAll(ctx, nil); err != nil {
		return LikeResult{}, fmt.Errorf("load likes: %w", err)
	}
	if existing, ok := viewerLike(list, session); ok {
		return LikeResult{Like: existing}, nil
	}

	created, err := list.CreateAndPrepend(ctx, domain.LikePayload{UserID: session.UserID, PostID: postID})
	if err != nil {
		return LikeResult{}, fmt.Errorf("like post: %w", err)
	}

	return LikeResult{Like: created, Created: true}, nil
}

func (s *LikeService) Unlike(ctx context.Context, postID domain.PostID) (RemoveResult, error) {
	session := s.session.Get()
	if !session.Active() {
		return RemoveResult{}, domain.ErrNoSession
	}

	list := NewPostLikeList(s.likes, postID, s.order)
	if err := list.LoadAll(ctx, nil); err != nil {
		return RemoveResult{}, fmt.Errorf("load likes: %w", err)
	}
	existing, ok := viewerLike(list, session)
	if !ok {
		return RemoveResult{AlreadyGone: true}, nil
	}

	result, err := list.RemoveByID(ctx, existing.RecordID())
	if err != nil {
		return RemoveResult{}, fmt.Errorf("unlike post: %w", err)
	}
	return result, nil
}

// LikedBy lists the likes userID has given; an empty id means the viewer.
func (s *LikeService) LikedBy(ctx context.Context, userID domain.UserID) ([]domain.Like, error) {
	if userID == "" {
		userID = s.session.Get().UserID
	}
	if userID == "" {
		return nil, domain.ErrNoSession
	}

	likes, err := s.likes.ListLikesByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list liked posts: %w", err)
	}
	return likes, nil
}

func viewerLike(list *LikeList, session domain.Session) (domain.Like, bool) {
	if !session.Active() {
		return domain.Like{}, false
	}
	for _, like := range list.Items() {
		if like.OwnerID() == session.UserID {
			return like, true
		}
	}
	return domain.Like{}, false
}
