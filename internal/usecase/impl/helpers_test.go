package impl

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"sync"
	"testing"
	"time"

	"userhub/internal/domain/entity"
	domainerrors "userhub/internal/domain/errors"
	"userhub/internal/domain/repository"
	mockRepo "userhub/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func strPtr(s string) *string {
	return &s
}

// expectTx makes txManager run the callback against txRepo.
func expectTx(t *testing.T, txManager *mockRepo.MockTransactionManager, txRepo repository.UserRepository) {
	t.Helper()

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockFactory.EXPECT().NewUserRepository().Return(txRepo)

			return fn(mockFactory)
		})
}

// memoryUserStore is an in-memory user table with a unique lower(email) index.
// It serves as repository, transaction manager and factory at once.
type memoryUserStore struct {
	mu     sync.Mutex
	nextID int64
	epoch  time.Time
	users  map[int64]*entity.User
}

func newMemoryUserStore() *memoryUserStore {
	return &memoryUserStore{
		epoch: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		users: make(map[int64]*entity.User),
	}
}

func (s *memoryUserStore) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(s)
}

func (s *memoryUserStore) NewUserRepository() repository.UserRepository {
	return s
}

func (s *memoryUserStore) FindByID(_ context.Context, id int64) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return cloneUser(user), nil
}

func (s *memoryUserStore) FindByIDForUpdate(ctx context.Context, id int64) (*entity.User, error) {
	return s.FindByID(ctx, id)
}

func (s *memoryUserStore) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if user := s.ownerOf(email); user != nil {
		return cloneUser(user), nil
	}

	return nil, repository.ErrUserNotFound
}

func (s *memoryUserStore) Create(_ context.Context, user *entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ownerOf(user.Email) != nil {
		return domainerrors.ErrEmailAlreadyExists.WrapMessage("unique violation")
	}

	s.nextID++
	user.ID = s.nextID
	user.RegistrationDate = s.epoch.Add(time.Duration(s.nextID) * time.Minute)
	s.users[user.ID] = cloneUser(user)

	return nil
}

func (s *memoryUserStore) Update(_ context.Context, user *entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.users[user.ID]
	if !ok {
		return repository.ErrUserNotFound
	}
	if owner := s.ownerOf(user.Email); owner != nil && owner.ID != user.ID {
		return domainerrors.ErrEmailAlreadyExists.WrapMessage("unique violation")
	}

	updated := cloneUser(user)
	updated.PasswordHash = stored.PasswordHash
	updated.RegistrationDate = stored.RegistrationDate
	s.users[user.ID] = updated

	return nil
}

func (s *memoryUserStore) List(_ context.Context, offset, limit int) ([]*entity.User, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := make([]*entity.User, 0, len(s.users))
	for _, user := range s.users {
		all = append(all, cloneUser(user))
	}
	sort.Slice(all, func(i, j int) bool {
		if !all[i].RegistrationDate.Equal(all[j].RegistrationDate) {
			return all[i].RegistrationDate.After(all[j].RegistrationDate)
		}

		return all[i].ID > all[j].ID
	})

	total := int64(len(all))
	if offset >= len(all) {
		return []*entity.User{}, total, nil
	}
	end := min(offset+limit, len(all))

	return all[offset:end], total, nil
}

func (s *memoryUserStore) ownerOf(email string) *entity.User {
	needle := entity.NormalizeEmail(email)
	for _, user := range s.users {
		if entity.NormalizeEmail(user.Email) == needle {
			return user
		}
	}

	return nil
}

func cloneUser(user *entity.User) *entity.User {
	clone := *user
	if user.LastName != nil {
		clone.LastName = strPtr(*user.LastName)
	}
	if user.Gender != nil {
		g := *user.Gender
		clone.Gender = &g
	}
	if user.Photo != nil {
		clone.Photo = strPtr(*user.Photo)
	}

	return &clone
}

// prefixHasher is a transparent stand-in for bcrypt.
type prefixHasher struct{}

func (prefixHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (prefixHasher) Check(password, hash string) bool {
	return hash == "hashed:"+password
}
