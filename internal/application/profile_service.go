package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/skillconnect-cli/internal/domain"
	"github.com/bnema/skillconnect-cli/internal/ports"
	"github.com/sourcegraph/conc/pool"
)

var ErrNotOwner = errors.New("you can only change your own profile")

type ProfileService struct {
	users    ports.UserAPI
	follows  ports.FollowAPI
	posts    ports.PostAPI
	uploader *Uploader
	session  *SessionState
	order    OrderPolicy
}

func NewProfileService(users ports.UserAPI, follows ports.FollowAPI, posts ports.PostAPI, uploader *Uploader, session *SessionState, order OrderPolicy) *ProfileService {
	return &ProfileService{
		users:    users,
		follows:  follows,
		posts:    posts,
		uploader: uploader,
		session:  session,
		order:    order,
	}
}

// Profile fetches the user, follow counts, posts and, for another user's
// profile, whether the viewer follows them. The requests run concurrently;
// the first failure cancels the rest.
func (s *ProfileService) Profile(ctx context.Context, userID domain.UserID) (Profile, error) {
	viewer := s.session.Get()
	if userID == "" {
		userID = viewer.UserID
	}
	if userID == "" {
		return Profile{}, domain.ErrNoSession
	}

	profile := Profile{IsSelf: viewer.Active() && viewer.UserID == userID}
	posts := NewUserPostList(s.posts, userID, s.order)

	p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
	p.Go(func(ctx context.Context) error {
		user, err := s.users.GetUser(ctx, userID)
		if err != nil {
			return fmt.Errorf("get user: %w", err)
		}
		profile.User = user
		return nil
	})
	p.Go(func(ctx context.Context) error {
		count, err := s.follows.CountFollowers(ctx, userID)
		if err != nil {
			return fmt.Errorf("count followers: %w", err)
		}
		profile.Counts.Followers = count
		return nil
	})
	p.Go(func(ctx context.Context) error {
		count, err := s.follows.CountFollowing(ctx, userID)
		if err != nil {
			return fmt.Errorf("count following: %w", err)
		}
		profile.Counts.Following = count
		return nil
	})
	p.Go(func(ctx context.Context) error {
		return posts.LoadAll(ctx, nil)
	})
	if viewer.Active() && !profile.IsSelf {
		p.Go(func(ctx context.Context) error {
			following, err := s.follows.IsFollowing(ctx, viewer.UserID, userID)
			if err != nil {
				return fmt.Errorf("check follow status: %w", err)
			}
			profile.Following = &following
			return nil
		})
	}

	if err := p.Wait(); err != nil {
		return Profile{}, err
	}

	profile.Posts = posts.Items()
	profile.CoverImageURL = profile.User.CoverImageURL
	if profile.CoverImageURL == "" {
		profile.CoverImageURL = s.session.CoverImageURL(userID)
	}

	return profile, nil
}

func (s *ProfileService) UpdateProfile(ctx context.Context, cmd ProfileUpdateCommand) (domain.User, error) {
	userID, err := s.ownedUser(cmd.UserID)
	if err != nil {
		return domain.User{}, err
	}

	payload := map[string]any{}
	setIfPresent(payload, "firstName", cmd.FirstName)
	setIfPresent(payload, "lastName", cmd.LastName)
	setIfPresent(payload, "email", cmd.Email)
	setIfPresent(payload, "contactNumber", cmd.ContactNumber)
	setIfPresent(payload, "bio", cmd.Bio)
	setIfPresent(payload, "address", cmd.Address)
	setIfPresent(payload, "publicStatus", cmd.PublicStatus)
	if len(payload) == 0 {
		return domain.User{}, errors.New("no profile fields to update")
	}

	user, err := s.users.UpdateUser(ctx, userID, payload)
	if err != nil {
		return domain.User{}, fmt.Errorf("update profile: %w", err)
	}

	return user, nil
}

// ChangeProfileImage uploads asset, points the user's profileImageUrl at it
// and refreshes the cached avatar.
func (s *ProfileService) ChangeProfileImage(ctx context.Context, asset Asset, onProgress func(float64)) (domain.User, error) {
	userID, err := s.ownedUser("")
	if err != nil {
		return domain.User{}, err
	}

	uploaded, err := s.uploader.Upload(ctx, UploadProfileImage, asset, onProgress)
	if err != nil {
		return domain.User{}, err
	}

	user, err := s.users.UpdateUser(ctx, userID, map[string]any{"profileImageUrl": uploaded.URL})
	if err != nil {
		return domain.User{}, fmt.Errorf("update profile image: %w", err)
	}

	avatar := user.ProfileImageURL
	if avatar == "" {
		avatar = uploaded.URL
	}
	if err := s.session.UpdateAvatar(ctx, avatar); err != nil {
		return user, err
	}

	return user, nil
}

func (s *ProfileService) ChangeCoverImage(ctx context.Context, asset Asset, onProgress func(float64)) (domain.User, error) {
	userID, err := s.ownedUser("")
	if err != nil {
		return domain.User{}, err
	}

	uploaded, err := s.uploader.Upload(ctx, UploadCoverImage, asset, onProgress)
	if err != nil {
		return domain.User{}, err
	}

	user, err := s.users.UpdateUser(ctx, userID, map[string]any{"coverImageUrl": uploaded.URL})
	if err != nil {
		return domain.User{}, fmt.Errorf("update cover image: %w", err)
	}

	if err := s.session.SetCoverImage(ctx, userID, uploaded.URL); err != nil {
		return user, err
	}

	return user, nil
}

func (s *ProfileService) ownedUser(userID domain.UserID) (domain.UserID, error) {
	current := s.session.Get()
	if !current.Active() {
		return "", domain.ErrNoSession
	}
	if userID == "" {
		return current.UserID, nil
	}
	if !current.Owns(userID) {
		return "", ErrNotOwner
	}

	return userID, nil
}

func setIfPresent[V any](payload map[string]any, key string, value *V) {
	if value != nil {
		payload[key] = *value
	}
}
