package domain

import "errors"

var ErrSelfFollow = errors.New("you cannot follow yourself")

// FollowEdge is the directed relation follower -> following.
type FollowEdge struct {
	FollowerID  UserID `json:"followerId"`
	FollowingID UserID `json:"followingId"`
}

func (e FollowEdge) Validate() error {
	if e.FollowerID == "" || e.FollowingID == "" {
		return errors.New("follower and following ids are required")
	}
	if e.FollowerID == e.FollowingID {
		return ErrSelfFollow
	}
	return nil
}

type FollowCounts struct {
	Followers int64
	Following int64
}
