package application

import "github.com/bnema/skillconnect-cli/internal/domain"

type UploadResult struct {
	URL string
}

// Profile is everything the profile view shows for one user.
type Profile struct {
	User          domain.User
	Counts        domain.FollowCounts
	Posts         []domain.Post
	CoverImageURL string
	// Following is nil when the viewer is anonymous or looks at their own
	// profile.
	Following *bool
	IsSelf    bool
}

type Inbox struct {
	Notifications []domain.Notification
	Count         int64
}

// PostLikes is the like state of one post as seen by the viewer.
type PostLikes struct {
	Likes      []domain.Like
	ViewerLike *domain.Like
}

func (p PostLikes) Count() int {
	return len(p.Likes)
}

type LikeResult struct {
	Like    domain.Like
	Created bool
}
