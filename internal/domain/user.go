package domain

import "time"

type User struct {
	ID              UserID    `json:"id"`
	Username        string    `json:"username"`
	FirstName       string    `json:"firstName,omitempty"`
	LastName        string    `json:"lastName,omitempty"`
	Email           string    `json:"email,omitempty"`
	ContactNumber   string    `json:"contactNumber,omitempty"`
	Gender          string    `json:"gender,omitempty"`
	Birthday        string    `json:"birthday,omitempty"`
	Address         string    `json:"address,omitempty"`
	Bio             string    `json:"bio,omitempty"`
	ProfileImageURL string    `json:"profileImageUrl,omitempty"`
	CoverImageURL   string    `json:"coverImageUrl,omitempty"`
	PublicStatus    bool      `json:"publicStatus,omitempty"`
	CreatedAt       time.Time `json:"createdAt,omitzero"`
}

func (u User) RecordID() string { return string(u.ID) }

func (u User) OwnerID() UserID { return u.ID }

func (u User) DisplayName() string {
	switch {
	case u.FirstName != "" && u.LastName != "":
		return u.FirstName + " " + u.LastName
	case u.FirstName != "":
		return u.FirstName
	default:
		return u.Username
	}
}

// Credentials are exchanged for a session by the login endpoint.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResult is the login endpoint response. Some deployments return the
// user id as "id", others as "userId".
type LoginResult struct {
	ID              UserID `json:"id"`
	UserID          UserID `json:"userId"`
	Token           string `json:"token"`
	ProfileImageURL string `json:"profileImageUrl"`
}

func (r LoginResult) ResolvedUserID() UserID {
	if r.UserID != "" {
		return r.UserID
	}
	return r.ID
}
