package usecase

import (
	"context"
	"errors"
	"testing"

	"account_backend/internal/feature/users/domain/entity"

	"golang.org/x/crypto/bcrypt"
)

// mockUserRepository is a mock implementation of the UserRepository interface.
// It simulates database operations during testing.
type mockUserRepository struct {
	CreateFunc      func(ctx context.Context, user *entity.User) error
	FindAllFunc     func(ctx context.Context) ([]*entity.User, error)
	FindByIDFunc    func(ctx context.Context, id uint) (*entity.User, error)
	FindByEmailFunc func(ctx context.Context, email string) (*entity.User, error)
	UpdateFunc      func(ctx context.Context, user *entity.User) error
	DeleteFunc      func(ctx context.Context, id uint) (*entity.User, error)
}

func (m *mockUserRepository) Create(ctx context.Context, user *entity.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil // Default: success
}

func (m *mockUserRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, ErrUserNotFound
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, ErrUserNotFound
}

func (m *mockUserRepository) Update(ctx context.Context, user *entity.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, user)
	}
	return nil
}

func (m *mockUserRepository) Delete(ctx context.Context, id uint) (*entity.User, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil, ErrUserNotFound
}

// validInput returns a creation input that passes every validation rule.
func validInput() CreateUserInput {
	return CreateUserInput{
		Name:     "John",
		LastName: "Doe",
		Username: "johndoe123",
		Email:    "johndoe@example.com",
		Password: "Hello@123",
	}
}

func TestUserUsecase_Create(t *testing.T) {
	t.Run("successful creation hashes the password", func(t *testing.T) {
		mockRepo := &mockUserRepository{
			CreateFunc: func(ctx context.Context, user *entity.User) error {
				// Verify that the stored password never equals the plaintext
				if user.Password == "" || user.Password == "Hello@123" {
					t.Errorf("password is not hashed")
				}
				// Verify that it's a valid bcrypt hash of the submitted password
				if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("Hello@123")); err != nil {
					t.Errorf("invalid bcrypt hash: %v", err)
				}
				user.ID = 1
				return nil
			},
		}

		uc := NewUserUsecase(mockRepo)
		user, err := uc.Create(context.Background(), validInput())

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.ID != 1 || user.Username != "johndoe123" || user.Email != "johndoe@example.com" {
			t.Errorf("unexpected user returned: %+v", user)
		}
	})

	t.Run("validation failure skips the repository", func(t *testing.T) {
		called := false
		mockRepo := &mockUserRepository{
			CreateFunc: func(ctx context.Context, user *entity.User) error {
				called = true
				return nil
			},
		}

		in := validInput()
		in.Email = "not-an-email"
		in.Password = "weak"

		uc := NewUserUsecase(mockRepo)
		_, err := uc.Create(context.Background(), in)

		var vErr *ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
		if len(vErr.Violations) != 2 {
			t.Errorf("expected 2 violations, got %+v", vErr.Violations)
		}
		if called {
			t.Error("repository must not be called on validation failure")
		}
	})

	t.Run("duplicate username or email", func(t *testing.T) {
		mockRepo := &mockUserRepository{
			CreateFunc: func(ctx context.Context, user *entity.User) error {
				return ErrDuplicateKey
			},
		}

		uc := NewUserUsecase(mockRepo)
		_, err := uc.Create(context.Background(), validInput())

		if !errors.Is(err, ErrDuplicateKey) {
			t.Errorf("expected ErrDuplicateKey, got %v", err)
		}
	})
}

func TestUserUsecase_Update(t *testing.T) {
	existing := func() *entity.User {
		return &entity.User{
			ID:       1,
			Name:     "John",
			LastName: "Doe",
			Username: "johndoe123",
			Email:    "johndoe@example.com",
			Password: "$2a$10$stored-hash",
		}
	}

	t.Run("only supplied fields change", func(t *testing.T) {
		var saved *entity.User
		mockRepo := &mockUserRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.User, error) {
				return existing(), nil
			},
			UpdateFunc: func(ctx context.Context, user *entity.User) error {
				saved = user
				return nil
			},
		}

		newEmail := "new@example.com"
		uc := NewUserUsecase(mockRepo)
		user, err := uc.Update(context.Background(), 1, UpdateUserInput{Email: &newEmail})

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if saved == nil {
			t.Fatal("repository Update was not called")
		}
		if user.Email != newEmail {
			t.Errorf("expected email %q, got %q", newEmail, user.Email)
		}
		if user.Name != "John" || user.Username != "johndoe123" {
			t.Errorf("unrelated fields must not change: %+v", user)
		}
		if user.Password != "$2a$10$stored-hash" {
			t.Error("password must not change when not supplied")
		}
	})

	t.Run("supplied password is validated and re-hashed", func(t *testing.T) {
		mockRepo := &mockUserRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.User, error) {
				return existing(), nil
			},
		}

		newPassword := "Updated@123"
		uc := NewUserUsecase(mockRepo)
		user, err := uc.Update(context.Background(), 1, UpdateUserInput{Password: &newPassword})

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.Password == newPassword {
			t.Error("password is not hashed")
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(newPassword)); err != nil {
			t.Errorf("invalid bcrypt hash: %v", err)
		}
	})

	t.Run("invalid merged record fails before saving", func(t *testing.T) {
		called := false
		mockRepo := &mockUserRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.User, error) {
				return existing(), nil
			},
			UpdateFunc: func(ctx context.Context, user *entity.User) error {
				called = true
				return nil
			},
		}

		badEmail := "not-an-email"
		uc := NewUserUsecase(mockRepo)
		_, err := uc.Update(context.Background(), 1, UpdateUserInput{Email: &badEmail})

		var vErr *ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
		if called {
			t.Error("repository must not be called on validation failure")
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		uc := NewUserUsecase(&mockUserRepository{})
		_, err := uc.Update(context.Background(), 42, UpdateUserInput{})

		if !errors.Is(err, ErrUserNotFound) {
			t.Errorf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("email collision with another user", func(t *testing.T) {
		mockRepo := &mockUserRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.User, error) {
				return existing(), nil
			},
			UpdateFunc: func(ctx context.Context, user *entity.User) error {
				return ErrDuplicateKey
			},
		}

		taken := "taken@example.com"
		uc := NewUserUsecase(mockRepo)
		_, err := uc.Update(context.Background(), 1, UpdateUserInput{Email: &taken})

		if !errors.Is(err, ErrDuplicateKey) {
			t.Errorf("expected ErrDuplicateKey, got %v", err)
		}
	})
}

func TestUserUsecase_Delete(t *testing.T) {
	t.Run("returns the removed snapshot", func(t *testing.T) {
		mockRepo := &mockUserRepository{
			DeleteFunc: func(ctx context.Context, id uint) (*entity.User, error) {
				return &entity.User{ID: id, Username: "johndoe123"}, nil
			},
		}

		uc := NewUserUsecase(mockRepo)
		user, err := uc.Delete(context.Background(), 1)

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.ID != 1 || user.Username != "johndoe123" {
			t.Errorf("unexpected snapshot: %+v", user)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		uc := NewUserUsecase(&mockUserRepository{})
		_, err := uc.Delete(context.Background(), 42)

		if !errors.Is(err, ErrUserNotFound) {
			t.Errorf("expected ErrUserNotFound, got %v", err)
		}
	})
}

func TestUserUsecase_GetByEmail(t *testing.T) {
	t.Run("passes the email through unchanged", func(t *testing.T) {
		mockRepo := &mockUserRepository{
			FindByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
				if email != "johndoe@example.com" {
					t.Errorf("unexpected email: %q", email)
				}
				return &entity.User{ID: 1, Email: email}, nil
			},
		}

		uc := NewUserUsecase(mockRepo)
		user, err := uc.GetByEmail(context.Background(), "johndoe@example.com")

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.ID != 1 {
			t.Errorf("unexpected user: %+v", user)
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		uc := NewUserUsecase(&mockUserRepository{})
		_, err := uc.GetByEmail(context.Background(), "missing@example.com")

		if !errors.Is(err, ErrUserNotFound) {
			t.Errorf("expected ErrUserNotFound, got %v", err)
		}
	})
}
