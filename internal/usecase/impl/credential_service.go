// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "userhub/internal/delivery/context"
	"userhub/internal/domain/entity"
	domainerrors "userhub/internal/domain/errors"
	"userhub/internal/domain/repository"
	"userhub/internal/domain/service"
	"userhub/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// maxPasswordBytes is the longest input bcrypt accepts.
const maxPasswordBytes = 72

// credentialService implements the CredentialUsecase interface.
type credentialService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	publisher    service.EventPublisher
	logger       *slog.Logger
}

// CredentialServiceParams holds dependencies for CredentialService, injected by Fx.
type CredentialServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Publisher    service.EventPublisher
	Logger       *slog.Logger
}

// NewCredentialService is the constructor for credentialService.
func NewCredentialService(params CredentialServiceParams) usecase.CredentialUsecase {
	return &credentialService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		publisher:    params.Publisher,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *credentialService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new account and returns a token for it.
func (srv *credentialService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.AuthOutput, error) {
	if len(input.Password) > maxPasswordBytes {
		return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("password must be at most %d bytes", maxPasswordBytes))
	}

	email := entity.NormalizeEmail(input.Email)
	srv.log(ctx).Info("Starting registration", slog.String("email", email))

	var registered *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		// Advisory only; the unique index on lower(email) is authoritative.
		existing, err := userRepo.FindByEmail(ctx, email)
		if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check email uniqueness")
		}
		if existing != nil {
			return domainerrors.ErrEmailAlreadyExists.WrapMessage("email already registered")
		}

		hash, err := srv.hasher.Hash(input.Password)
		if err != nil {
			return domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
		}

		user := &entity.User{
			FirstName:    input.FirstName,
			Email:        email,
			PasswordHash: hash,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			return errors.Wrap(err, "failed to create user")
		}
		registered = user

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute user registration transaction")
	}

	token, err := srv.tokenService.IssueToken(registered.ID, registered.Email)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token", slog.Int64("userID", registered.ID), slog.Any("error", err))

		return nil, domainerrors.ErrTokenIssueFailed.WrapMessage(err.Error())
	}

	srv.publish(ctx, service.EventUserRegistered, registered)
	srv.log(ctx).Info("Registration completed", slog.Int64("userID", registered.ID))

	return &usecase.AuthOutput{Token: token, UserID: registered.ID}, nil
}

// Login authenticates an email and password pair.
func (srv *credentialService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.AuthOutput, error) {
	email := entity.NormalizeEmail(input.Email)

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotRegistered.WrapMessage("login failed")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Info("Login rejected", slog.Int64("userID", user.ID))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	token, err := srv.tokenService.IssueToken(user.ID, user.Email)
	if err != nil {
		return nil, domainerrors.ErrTokenIssueFailed.WrapMessage(err.Error())
	}

	srv.log(ctx).Debug("Login succeeded", slog.Int64("userID", user.ID))

	return &usecase.AuthOutput{Token: token, UserID: user.ID}, nil
}

func (srv *credentialService) publish(ctx context.Context, eventType string, user *entity.User) {
	publishUserEvent(ctx, srv.publisher, srv.log(ctx), eventType, user)
}

// publishUserEvent emits a lifecycle event. Publishing is best effort and never fails the caller.
func publishUserEvent(ctx context.Context, publisher service.EventPublisher, logger *slog.Logger, eventType string, user *entity.User) {
	if publisher == nil {
		return
	}

	event := &service.UserEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       eventType,
		UserID:     user.ID,
		Email:      user.Email,
		OccurredAt: time.Now().UTC(),
	}
	if err := publisher.PublishUserEvent(ctx, event); err != nil {
		logger.Warn("Failed to publish user event",
			slog.String("type", eventType),
			slog.Int64("userID", user.ID),
			slog.Any("error", err),
		)
	}
}
