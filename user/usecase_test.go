// nolint: funlen
package user_test

import (
	"context"
	"errors"
	"testing"

	"movieflow/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Mock User Repository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, u user.User) (user.User, error) {
	args := m.Called(ctx, u)
	return args.Get(0).(user.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (user.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(user.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(user.User), args.Error(1)
}

func (m *MockUserRepository) UpdateProfile(ctx context.Context, id, name, phone, address string) (user.User, error) {
	args := m.Called(ctx, id, name, phone, address)
	return args.Get(0).(user.User), args.Error(1)
}

func (m *MockUserRepository) UpdatePasswordHash(ctx context.Context, id, passwordHash string) error {
	args := m.Called(ctx, id, passwordHash)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockPasswordHasher struct {
	mock.Mock
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Compare(hashed, plain string) error {
	args := m.Called(hashed, plain)
	return args.Error(0)
}

const accountID = "6f1d2a29-3333-4a7b-9a6c-000000000003"

func TestGetUserByID(t *testing.T) {
	t.Run("should return the stored user", func(t *testing.T) {
		r := new(MockUserRepository)
		uc := user.NewUsecase(r, new(MockPasswordHasher))
		stored := user.User{ID: accountID, Name: "Maria", Email: "maria@mail.com"}

		r.On("GetByID", mock.Anything, accountID).Return(stored, nil).Once()

		got, err := uc.GetUserByID(context.Background(), accountID)

		assert.NoError(t, err)
		assert.Equal(t, stored, got)
	})

	t.Run("should reject a blank id", func(t *testing.T) {
		r := new(MockUserRepository)
		uc := user.NewUsecase(r, new(MockPasswordHasher))

		_, err := uc.GetUserByID(context.Background(), "  ")

		assert.ErrorIs(t, err, user.ErrUserIDRequired)
		r.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})
}

func TestUpdateProfile(t *testing.T) {
	t.Run("should update name, phone and address", func(t *testing.T) {
		r := new(MockUserRepository)
		uc := user.NewUsecase(r, new(MockPasswordHasher))
		updated := user.User{ID: accountID, Name: "Maria", Phone: "912345678", Address: "Lisboa"}

		r.On("UpdateProfile", mock.Anything, accountID, "Maria", "912345678", "Lisboa").
			Return(updated, nil).Once()

		got, err := uc.UpdateProfile(context.Background(), accountID, " Maria ", " 912345678 ", " Lisboa ")

		assert.NoError(t, err)
		assert.Equal(t, updated, got)
		r.AssertExpectations(t)
	})

	t.Run("should reject a blank name", func(t *testing.T) {
		r := new(MockUserRepository)
		uc := user.NewUsecase(r, new(MockPasswordHasher))

		_, err := uc.UpdateProfile(context.Background(), accountID, "  ", "", "")

		assert.ErrorIs(t, err, user.ErrInvalidName)
	})
}

func TestChangePassword(t *testing.T) {
	t.Run("should change the password after verifying the current one", func(t *testing.T) {
		r := new(MockUserRepository)
		h := new(MockPasswordHasher)
		uc := user.NewUsecase(r, h)
		stored := user.User{ID: accountID, PasswordHash: "old-hash"}

		r.On("GetByID", mock.Anything, accountID).Return(stored, nil).Once()
		h.On("Compare", "old-hash", "old-secret").Return(nil).Once()
		h.On("Hash", "new-secret").Return("new-hash", nil).Once()
		r.On("UpdatePasswordHash", mock.Anything, accountID, "new-hash").Return(nil).Once()

		err := uc.ChangePassword(context.Background(), accountID, "old-secret", "new-secret")

		assert.NoError(t, err)
		r.AssertExpectations(t)
		h.AssertExpectations(t)
	})

	t.Run("should reject a wrong current password", func(t *testing.T) {
		r := new(MockUserRepository)
		h := new(MockPasswordHasher)
		uc := user.NewUsecase(r, h)
		stored := user.User{ID: accountID, PasswordHash: "old-hash"}

		r.On("GetByID", mock.Anything, accountID).Return(stored, nil).Once()
		h.On("Compare", "old-hash", "wrong").Return(errors.New("mismatch")).Once()

		err := uc.ChangePassword(context.Background(), accountID, "wrong", "new-secret")

		assert.ErrorIs(t, err, user.ErrCurrentPasswordInvalid)
		r.AssertNotCalled(t, "UpdatePasswordHash", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should reject a too short new password", func(t *testing.T) {
		r := new(MockUserRepository)
		h := new(MockPasswordHasher)
		uc := user.NewUsecase(r, h)

		err := uc.ChangePassword(context.Background(), accountID, "old-secret", "short")

		assert.ErrorIs(t, err, user.ErrInvalidPassword)
		r.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})
}

func TestDeleteAccount(t *testing.T) {
	t.Run("should delete the account", func(t *testing.T) {
		r := new(MockUserRepository)
		uc := user.NewUsecase(r, new(MockPasswordHasher))

		r.On("Delete", mock.Anything, accountID).Return(nil).Once()

		err := uc.DeleteAccount(context.Background(), accountID)

		assert.NoError(t, err)
		r.AssertExpectations(t)
	})

	t.Run("should reject a blank id", func(t *testing.T) {
		r := new(MockUserRepository)
		uc := user.NewUsecase(r, new(MockPasswordHasher))

		err := uc.DeleteAccount(context.Background(), "")

		assert.ErrorIs(t, err, user.ErrUserIDRequired)
	})
}

func TestValidate(t *testing.T) {
	valid := user.User{Name: "Maria", Email: "maria@mail.com", Password: "secret-123"}

	t.Run("should accept a valid user", func(t *testing.T) {
		assert.NoError(t, valid.Validate())
	})

	t.Run("should reject a blank name", func(t *testing.T) {
		u := valid
		u.Name = " "
		assert.ErrorIs(t, u.Validate(), user.ErrInvalidName)
	})

	t.Run("should reject a malformed email", func(t *testing.T) {
		u := valid
		u.Email = "not-an-email"
		assert.ErrorIs(t, u.Validate(), user.ErrInvalidEmail)
	})

	t.Run("should reject a short password", func(t *testing.T) {
		u := valid
		u.Password = "12345"
		assert.ErrorIs(t, u.Validate(), user.ErrInvalidPassword)
	})
}
