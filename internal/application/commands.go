package application

import (
	"io"

	"github.com/bnema/skillconnect-cli/internal/domain"
)

type UploadKind string

const (
	UploadProfileImage UploadKind = "profile-images"
	UploadCoverImage   UploadKind = "cover-images"
	UploadPostMedia    UploadKind = "post-media"
)

func (k UploadKind) Valid() bool {
	switch k {
	case UploadProfileImage, UploadCoverImage, UploadPostMedia:
		return true
	default:
		return false
	}
}

// Asset is a local file handed to the Uploader. ContentType is sniffed from
// the first bytes when empty; Size enables progress reporting.
type Asset struct {
	Name        string
	ContentType string
	Size        int64
	Body        io.Reader
}

type RegisterCommand struct {
	Username  string
	Password  string
	Email     string
	FirstName string
	LastName  string
}

// ProfileUpdateCommand carries the profile fields to change. Nil fields are
// left as they are.
type ProfileUpdateCommand struct {
	UserID        domain.UserID
	FirstName     *string
	LastName      *string
	Email         *string
	ContactNumber *string
	Bio           *string
	Address       *string
	PublicStatus  *bool
}
