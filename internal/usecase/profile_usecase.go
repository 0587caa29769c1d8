package usecase

import (
	"context"
	"time"

	"userhub/internal/domain/entity"
	"userhub/internal/domain/service"
)

// ProfileUpdatedMessage is returned with every successful edit.
const ProfileUpdatedMessage = "Profile updated successfully"

// ProfileView is the outward representation of a user; it never carries the password hash.
type ProfileView struct {
	ID               int64     `json:"id"`
	FirstName        string    `json:"firstName"`
	LastName         *string   `json:"lastName"`
	Email            string    `json:"email"`
	Gender           *string   `json:"gender"`
	Photo            *string   `json:"photo"`
	RegistrationDate time.Time `json:"registrationDate"`
}

// NewProfileView projects a user entity onto its outward view.
func NewProfileView(user *entity.User) *ProfileView {
	if user == nil {
		return nil
	}

	var gender *string
	if user.Gender != nil {
		g := string(*user.Gender)
		gender = &g
	}

	return &ProfileView{
		ID:               user.ID,
		FirstName:        user.FirstName,
		LastName:         user.LastName,
		Email:            user.Email,
		Gender:           gender,
		Photo:            user.Photo,
		RegistrationDate: user.RegistrationDate,
	}
}

// PhotoUpload is a raw uploaded image.
type PhotoUpload struct {
	Filename string
	Data     []byte
}

// EditProfileInput is a partial update. Photo replaces the stored photo; ClearPhoto removes it.
type EditProfileInput struct {
	FirstName  Patch[string]
	LastName   Patch[string]
	Email      Patch[string]
	Gender     Patch[string]
	Photo      *PhotoUpload
	ClearPhoto bool
}

// EditProfileOutput is the result of a successful edit.
type EditProfileOutput struct {
	Message string       `json:"message"`
	User    *ProfileView `json:"user"`
}

// ProfileUsecase defines the interface for reading and editing profiles.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID int64) (*ProfileView, error)
	EditProfile(ctx context.Context, userID int64, input *EditProfileInput) (*EditProfileOutput, error)

	// ProfileCard renders a PNG QR code linking to the user's profile.
	ProfileCard(ctx context.Context, userID int64) ([]byte, error)

	// OpenPhoto streams a stored photo by asset name.
	OpenPhoto(ctx context.Context, name string) (*service.Asset, error)
}
