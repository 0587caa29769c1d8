package impl

import (
	"context"
	"log/slog"

	deliverycontext "userhub/internal/delivery/context"
	"userhub/internal/domain/entity"
	domainerrors "userhub/internal/domain/errors"
	"userhub/internal/domain/repository"
	"userhub/internal/domain/service"
	"userhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager  repository.TransactionManager
	userRepo   repository.UserRepository
	assetStore service.AssetStore
	processor  service.PhotoProcessor
	qrService  service.QRCodeService
	publisher  service.EventPublisher
	logger     *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	UserRepo   repository.UserRepository
	AssetStore service.AssetStore
	Processor  service.PhotoProcessor
	QRService  service.QRCodeService
	Publisher  service.EventPublisher
	Logger     *slog.Logger
}

// NewProfileService creates a new profile service instance.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		txManager:  params.TxManager,
		userRepo:   params.UserRepo,
		assetStore: params.AssetStore,
		processor:  params.Processor,
		qrService:  params.QRService,
		publisher:  params.Publisher,
		logger:     params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile retrieves a user's outward profile.
func (srv *profileService) GetProfile(ctx context.Context, userID int64) (*usecase.ProfileView, error) {
	user, err := srv.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return usecase.NewProfileView(user), nil
}

// EditProfile applies a partial update and optionally replaces or clears the photo.
//
// A new photo is written before the row is touched and removed again if the update fails.
// The previous photo is deleted only after the update has committed.
func (srv *profileService) EditProfile(ctx context.Context, userID int64, input *usecase.EditProfileInput) (*usecase.EditProfileOutput, error) {
	if input == nil {
		input = &usecase.EditProfileInput{}
	}
	if err := validateEditInput(input); err != nil {
		return nil, err
	}

	newPhoto, err := srv.storePhoto(ctx, input.Photo)
	if err != nil {
		return nil, err
	}

	var (
		updated       *entity.User
		previousPhoto *string
	)
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		user, err := userRepo.FindByIDForUpdate(ctx, userID)
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound.WrapMessage("cannot edit profile")
		}
		if err != nil {
			return errors.Wrap(err, "failed to lock user")
		}

		currentEmail := user.Email
		previousPhoto = user.Photo
		applyProfilePatch(user, input, newPhoto)

		if user.Email != currentEmail {
			if err := ensureEmailAvailable(ctx, userRepo, user); err != nil {
				return err
			}
		}

		if err := userRepo.Update(ctx, user); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound.WrapMessage("cannot edit profile")
			}

			return errors.Wrap(err, "failed to update user")
		}
		updated = user

		return nil
	})
	if err != nil {
		srv.discardPhoto(ctx, newPhoto)
		srv.log(ctx).Warn("Profile update failed", slog.Int64("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute profile update transaction")
	}

	if previousPhoto != nil && !samePhoto(previousPhoto, updated.Photo) {
		srv.discardPhoto(ctx, previousPhoto)
	}

	publishUserEvent(ctx, srv.publisher, srv.log(ctx), service.EventUserProfileUpdated, updated)

	return &usecase.EditProfileOutput{
		Message: usecase.ProfileUpdatedMessage,
		User:    usecase.NewProfileView(updated),
	}, nil
}

// ProfileCard renders the user's profile link as a PNG QR code.
func (srv *profileService) ProfileCard(ctx context.Context, userID int64) ([]byte, error) {
	if _, err := srv.findUser(ctx, userID); err != nil {
		return nil, err
	}

	png, err := srv.qrService.GenerateProfileQR(userID)
	if err != nil {
		return nil, domainerrors.ErrInternalError.WrapMessage(err.Error())
	}

	return png, nil
}

func (srv *profileService) OpenPhoto(ctx context.Context, name string) (*service.Asset, error) {
	asset, err := srv.assetStore.Open(ctx, name)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open photo")
	}

	return asset, nil
}

func (srv *profileService) findUser(ctx context.Context, userID int64) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound.WrapMessage("profile lookup failed")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// storePhoto normalizes and writes an uploaded photo, returning its asset name.
func (srv *profileService) storePhoto(ctx context.Context, upload *usecase.PhotoUpload) (*string, error) {
	if upload == nil {
		return nil, nil
	}

	processed, err := srv.processor.Process(upload.Data)
	if err != nil {
		return nil, err
	}

	name := uuid.NewString() + "." + processed.Extension
	if err := srv.assetStore.Put(ctx, name, processed.ContentType, processed.Data); err != nil {
		return nil, errors.Wrap(err, "failed to store photo")
	}

	srv.log(ctx).Debug("Photo stored", slog.String("asset", name), slog.String("upload", upload.Filename))

	return &name, nil
}

// discardPhoto deletes an asset that is no longer referenced. Failures leave an orphan and are only logged.
func (srv *profileService) discardPhoto(ctx context.Context, name *string) {
	if name == nil {
		return
	}

	if err := srv.assetStore.Delete(ctx, *name); err != nil {
		srv.log(ctx).Error("Failed to delete photo", slog.String("asset", *name), slog.Any("error", err))
	}
}

func validateEditInput(input *usecase.EditProfileInput) error {
	if input.FirstName.IsClear() {
		return domainerrors.ErrValidationFailed.WithDetails("firstName cannot be cleared")
	}
	if input.Email.IsClear() {
		return domainerrors.ErrValidationFailed.WithDetails("email cannot be cleared")
	}
	if input.Photo != nil && input.ClearPhoto {
		return domainerrors.ErrValidationFailed.WithDetails("photo cannot be replaced and cleared at once")
	}
	if gender, ok := input.Gender.Value(); ok && !entity.Gender(gender).IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails("gender must be male or female")
	}

	return nil
}

// applyProfilePatch merges the patch into user. Empty strings keep the stored value.
func applyProfilePatch(user *entity.User, input *usecase.EditProfileInput, newPhoto *string) {
	if firstName, ok := input.FirstName.Value(); ok {
		user.FirstName = firstName
	}

	switch lastName, ok := input.LastName.Value(); {
	case ok:
		user.LastName = &lastName
	case input.LastName.IsClear():
		user.LastName = nil
	}

	if email, ok := input.Email.Value(); ok {
		if normalized := entity.NormalizeEmail(email); normalized != "" {
			user.Email = normalized
		}
	}

	switch gender, ok := input.Gender.Value(); {
	case ok:
		g := entity.Gender(gender)
		user.Gender = &g
	case input.Gender.IsClear():
		user.Gender = nil
	}

	switch {
	case newPhoto != nil:
		user.Photo = newPhoto
	case input.ClearPhoto:
		user.Photo = nil
	}
}

// ensureEmailAvailable rejects an email that belongs to a different user.
func ensureEmailAvailable(ctx context.Context, userRepo repository.UserRepository, user *entity.User) error {
	owner, err := userRepo.FindByEmail(ctx, user.Email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to check email uniqueness")
	}
	if owner.ID != user.ID {
		return domainerrors.ErrEmailAlreadyExists.WrapMessage("cannot change email")
	}

	return nil
}

func samePhoto(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}

	return *a == *b
}
