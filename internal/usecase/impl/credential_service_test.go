package impl

import (
	"context"
	"strings"
	"testing"

	"userhub/internal/domain/entity"
	domainerrors "userhub/internal/domain/errors"
	"userhub/internal/domain/repository"
	"userhub/internal/domain/service"
	mockRepo "userhub/internal/mocks/repository"
	mockSvc "userhub/internal/mocks/service"
	"userhub/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// credentialServiceFixtures holds all test dependencies for credential service tests.
type credentialServiceFixtures struct {
	service      usecase.CredentialUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
	publisher    *mockSvc.MockEventPublisher
}

func createTestCredentialService(t *testing.T) credentialServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	svc := NewCredentialService(CredentialServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Publisher:    publisher,
		Logger:       newDiscardLogger(),
	})

	return credentialServiceFixtures{
		service:      svc,
		txManager:    txManager,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
		publisher:    publisher,
	}
}

func TestCredentialService_Register_Success(t *testing.T) {
	fx := createTestCredentialService(t)
	ctx := context.Background()

	txRepo := mockRepo.NewMockUserRepository(t)
	expectTx(t, fx.txManager, txRepo)

	txRepo.EXPECT().FindByEmail(mock.Anything, "ann@example.com").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("secret1").Return("bcrypt-hash", nil)
	txRepo.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
			return u.FirstName == "Ann" && u.Email == "ann@example.com" && u.PasswordHash == "bcrypt-hash"
		})).
		Run(func(_ context.Context, u *entity.User) { u.ID = 7 }).
		Return(nil)
	fx.tokenService.EXPECT().IssueToken(int64(7), "ann@example.com").Return("signed-token", nil)
	fx.publisher.EXPECT().
		PublishUserEvent(mock.Anything, mock.MatchedBy(func(e *service.UserEvent) bool {
			return e.Type == service.EventUserRegistered && e.UserID == 7 && e.Email == "ann@example.com"
		})).
		Return(nil)

	output, err := fx.service.Register(ctx, usecase.RegisterInput{
		FirstName: "Ann",
		Email:     "  Ann@Example.COM ",
		Password:  "secret1",
	})

	require.NoError(t, err)
	assert.Equal(t, "signed-token", output.Token)
	assert.Equal(t, int64(7), output.UserID)
}

func TestCredentialService_Register_PasswordTooLong(t *testing.T) {
	fx := createTestCredentialService(t)

	output, err := fx.service.Register(context.Background(), usecase.RegisterInput{
		FirstName: "Ann",
		Email:     "ann@example.com",
		Password:  strings.Repeat("é", 40),
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestCredentialService_Register_EmailTaken(t *testing.T) {
	fx := createTestCredentialService(t)

	txRepo := mockRepo.NewMockUserRepository(t)
	expectTx(t, fx.txManager, txRepo)
	txRepo.EXPECT().FindByEmail(mock.Anything, "ann@example.com").Return(&entity.User{ID: 1, Email: "ann@example.com"}, nil)

	output, err := fx.service.Register(context.Background(), usecase.RegisterInput{
		FirstName: "Ann",
		Email:     "ann@example.com",
		Password:  "secret1",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailAlreadyExists))
}

func TestCredentialService_Register_UniqueViolationOnInsert(t *testing.T) {
	fx := createTestCredentialService(t)

	txRepo := mockRepo.NewMockUserRepository(t)
	expectTx(t, fx.txManager, txRepo)
	txRepo.EXPECT().FindByEmail(mock.Anything, "ann@example.com").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("secret1").Return("bcrypt-hash", nil)
	txRepo.EXPECT().Create(mock.Anything, mock.Anything).
		Return(domainerrors.ErrEmailAlreadyExists.WrapMessage("users_email_lower_key"))

	_, err := fx.service.Register(context.Background(), usecase.RegisterInput{
		FirstName: "Ann",
		Email:     "ann@example.com",
		Password:  "secret1",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailAlreadyExists))
}

func TestCredentialService_Register_HashFailure(t *testing.T) {
	fx := createTestCredentialService(t)

	txRepo := mockRepo.NewMockUserRepository(t)
	expectTx(t, fx.txManager, txRepo)
	txRepo.EXPECT().FindByEmail(mock.Anything, "ann@example.com").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("secret1").Return("", errors.New("entropy exhausted"))

	_, err := fx.service.Register(context.Background(), usecase.RegisterInput{
		FirstName: "Ann",
		Email:     "ann@example.com",
		Password:  "secret1",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))
}

func TestCredentialService_Register_StoreUnavailable(t *testing.T) {
	fx := createTestCredentialService(t)

	dbErr := domainerrors.NewDatabaseExecuteError(errors.New("connection refused"), "find user by email")
	txRepo := mockRepo.NewMockUserRepository(t)
	expectTx(t, fx.txManager, txRepo)
	txRepo.EXPECT().FindByEmail(mock.Anything, "ann@example.com").Return(nil, dbErr)

	_, err := fx.service.Register(context.Background(), usecase.RegisterInput{
		FirstName: "Ann",
		Email:     "ann@example.com",
		Password:  "secret1",
	})

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 503, appErr.HTTPCode())
}

func TestCredentialService_Register_PublishFailureIsIgnored(t *testing.T) {
	fx := createTestCredentialService(t)

	txRepo := mockRepo.NewMockUserRepository(t)
	expectTx(t, fx.txManager, txRepo)
	txRepo.EXPECT().FindByEmail(mock.Anything, mock.Anything).Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash(mock.Anything).Return("bcrypt-hash", nil)
	txRepo.EXPECT().Create(mock.Anything, mock.Anything).
		Run(func(_ context.Context, u *entity.User) { u.ID = 3 }).
		Return(nil)
	fx.tokenService.EXPECT().IssueToken(int64(3), "bob@example.com").Return("signed-token", nil)
	fx.publisher.EXPECT().PublishUserEvent(mock.Anything, mock.Anything).Return(errors.New("broker down"))

	output, err := fx.service.Register(context.Background(), usecase.RegisterInput{
		FirstName: "Bob",
		Email:     "bob@example.com",
		Password:  "secret1",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(3), output.UserID)
}

func TestCredentialService_Login_Success(t *testing.T) {
	fx := createTestCredentialService(t)

	user := &entity.User{ID: 9, Email: "ann@example.com", PasswordHash: "bcrypt-hash"}
	fx.userRepo.EXPECT().FindByEmail(mock.Anything, "ann@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("secret1", "bcrypt-hash").Return(true)
	fx.tokenService.EXPECT().IssueToken(int64(9), "ann@example.com").Return("signed-token", nil)

	output, err := fx.service.Login(context.Background(), usecase.LoginInput{
		Email:    "ANN@example.com",
		Password: "secret1",
	})

	require.NoError(t, err)
	assert.Equal(t, &usecase.AuthOutput{Token: "signed-token", UserID: 9}, output)
}

func TestCredentialService_Login_WrongPassword(t *testing.T) {
	fx := createTestCredentialService(t)

	user := &entity.User{ID: 9, Email: "ann@example.com", PasswordHash: "bcrypt-hash"}
	fx.userRepo.EXPECT().FindByEmail(mock.Anything, "ann@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("wrong-password", "bcrypt-hash").Return(false)

	output, err := fx.service.Login(context.Background(), usecase.LoginInput{
		Email:    "ann@example.com",
		Password: "wrong-password",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestCredentialService_Login_NotRegistered(t *testing.T) {
	fx := createTestCredentialService(t)

	fx.userRepo.EXPECT().FindByEmail(mock.Anything, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.Login(context.Background(), usecase.LoginInput{
		Email:    "ghost@example.com",
		Password: "secret1",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotRegistered))
}

func TestCredentialService_Login_TokenFailure(t *testing.T) {
	fx := createTestCredentialService(t)

	user := &entity.User{ID: 9, Email: "ann@example.com", PasswordHash: "bcrypt-hash"}
	fx.userRepo.EXPECT().FindByEmail(mock.Anything, "ann@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("secret1", "bcrypt-hash").Return(true)
	fx.tokenService.EXPECT().IssueToken(int64(9), "ann@example.com").Return("", errors.New("signing failed"))

	_, err := fx.service.Login(context.Background(), usecase.LoginInput{
		Email:    "ann@example.com",
		Password: "secret1",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenIssueFailed))
}

func TestCredentialService_RegisterThenLogin_AgainstStore(t *testing.T) {
	store := newMemoryUserStore()
	tokenService := mockSvc.NewMockTokenService(t)
	tokenService.EXPECT().IssueToken(mock.Anything, mock.Anything).Return("signed-token", nil)

	svc := NewCredentialService(CredentialServiceParams{
		TxManager:    store,
		UserRepo:     store,
		Hasher:       prefixHasher{},
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})
	ctx := context.Background()

	first, err := svc.Register(ctx, usecase.RegisterInput{FirstName: "Ann", Email: "ann@example.com", Password: "secret1"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, usecase.RegisterInput{FirstName: "Imposter", Email: "ANN@example.com", Password: "other-pass"})
	assert.True(t, errors.Is(err, domainerrors.ErrEmailAlreadyExists), "second registration must conflict, got %v", err)

	second, err := svc.Register(ctx, usecase.RegisterInput{FirstName: "Bob", Email: "bob@example.com", Password: "secret2"})
	require.NoError(t, err)
	assert.NotEqual(t, first.UserID, second.UserID)

	login, err := svc.Login(ctx, usecase.LoginInput{Email: "Ann@Example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, first.UserID, login.UserID)

	for _, password := range []string{"secret2", "Secret1", "secret1 ", ""} {
		_, err := svc.Login(ctx, usecase.LoginInput{Email: "ann@example.com", Password: password})
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials), "password %q", password)
	}

	_, err = svc.Login(ctx, usecase.LoginInput{Email: "nobody@example.com", Password: "secret1"})
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotRegistered))
}
