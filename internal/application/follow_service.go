package application

import (
	"context"
	"fmt"

	"github.com/bnema/skillconnect-cli/internal/domain"
	"github.com/bnema/skillconnect-cli/internal/ports"
)

type FollowService struct {
	follows ports.FollowAPI
	session *SessionState
}

func NewFollowService(follows ports.FollowAPI, session *SessionState) *FollowService {
	return &FollowService{follows: follows, session: session}
}

type FollowResult struct {
	Following bool
	Message   string
}

func (s *FollowService) Follow(ctx context.Context, target domain.UserID) (FollowResult, error) {
	edge, err := s.edge(target)
	if err != nil {
		return FollowResult{}, err
	}

	message, err := s.follows.Follow(ctx, edge)
	if err != nil {
		return FollowResult{}, fmt.Errorf("follow user: %w", err)
	}

	return FollowResult{Following: true, Message: message}, nil
}

func (s *FollowService) Unfollow(ctx context.Context, target domain.UserID) (FollowResult, error) {
	edge, err := s.edge(target)
	if err != nil {
		return FollowResult{}, err
	}

	message, err := s.follows.Unfollow(ctx, edge)
	if err != nil {
		return FollowResult{}, fmt.Errorf("unfollow user: %w", err)
	}

	return FollowResult{Following: false, Message: message}, nil
}

// Toggle asks the server for the current relation and flips it. The relation
// is never cached locally.
func (s *FollowService) Toggle(ctx context.Context, target domain.UserID) (FollowResult, error) {
	edge, err := s.edge(target)
	if err != nil {
		return FollowResult{}, err
	}

	following, err := s.follows.IsFollowing(ctx, edge.FollowerID, edge.FollowingID)
	if err != nil {
		return FollowResult{}, fmt.Errorf("check follow status: %w", err)
	}
	if following {
		return s.Unfollow(ctx, target)
	}

	return s.Follow(ctx, target)
}

func (s *FollowService) IsFollowing(ctx context.Context, target domain.UserID) (bool, error) {
	edge, err := s.edge(target)
	if err != nil {
		return false, err
	}

	return s.follows.IsFollowing(ctx, edge.FollowerID, edge.FollowingID)
}

func (s *FollowService) Counts(ctx context.Context, userID domain.UserID) (domain.FollowCounts, error) {
	if userID == "" {
		userID = s.session.Get().UserID
	}
	if userID == "" {
		return domain.FollowCounts{}, domain.ErrNoSession
	}

	followers, err := s.follows.CountFollowers(ctx, userID)
	if err != nil {
		return domain.FollowCounts{}, fmt.Errorf("count followers: %w", err)
	}
	following, err := s.follows.CountFollowing(ctx, userID)
	if err != nil {
		return domain.FollowCounts{}, fmt.Errorf("count following: %w", err)
	}

	return domain.FollowCounts{Followers: followers, Following: following}, nil
}

func (s *FollowService) edge(target domain.UserID) (domain.FollowEdge, error) {
	current := s.session.Get()
	if !current.Active() {
		return domain.FollowEdge{}, domain.ErrNoSession
	}

	edge := domain.FollowEdge{FollowerID: current.UserID, FollowingID: target}
	if err := edge.Validate(); err != nil {
		return domain.FollowEdge{}, err
	}

	return edge, nil
}
