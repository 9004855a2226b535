package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/bnema/skillconnect-cli/internal/domain"
)

// Follow returns the server's status text, e.g. "Already following.".
func (c *Client) Follow(ctx context.Context, edge domain.FollowEdge) (string, error) {
	if edge.FollowerID == "" {
		edge.FollowerID = c.actor()
	}

	var status string
	err := c.do(ctx, request{
		op:       "follow user",
		fallback: "Failed to follow user",
		method:   http.MethodPost,
		path:     "follow",
		body:     edge,
	}, &status)
	return status, err
}

func (c *Client) Unfollow(ctx context.Context, edge domain.FollowEdge) (string, error) {
	if edge.FollowerID == "" {
		edge.FollowerID = c.actor()
	}

	var status string
	err := c.do(ctx, request{
		op:       "unfollow user",
		fallback: "Failed to unfollow user",
		method:   http.MethodDelete,
		path:     "follow",
		body:     edge,
	}, &status)
	return status, err
}

func (c *Client) CountFollowing(ctx context.Context, userID domain.UserID) (int64, error) {
	var count int64
	err := c.do(ctx, request{
		op:       "count following",
		fallback: "Failed to get following count",
		method:   http.MethodGet,
		path:     resourcePath("follow", "count", "following", string(userID)),
	}, &count)
	return count, err
}

func (c *Client) CountFollowers(ctx context.Context, userID domain.UserID) (int64, error) {
	var count int64
	err := c.do(ctx, request{
		op:       "count followers",
		fallback: "Failed to get follower count",
		method:   http.MethodGet,
		path:     resourcePath("follow", "count", "followers", string(userID)),
	}, &count)
	return count, err
}

func (c *Client) IsFollowing(ctx context.Context, followerID, followingID domain.UserID) (bool, error) {
	query := url.Values{}
	query.Set("followerId", string(followerID))
	query.Set("followingId", string(followingID))

	var following bool
	err := c.do(ctx, request{
		op:       "check follow status",
		fallback: "Failed to check follow status",
		method:   http.MethodGet,
		path:     "follow/is-following",
		query:    query,
	}, &following)
	return following, err
}
