package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/scribe-ops/backend/internal/application/adapter"
	"github.com/scribe-ops/backend/internal/domain/entity"
	domainerror "github.com/scribe-ops/backend/internal/domain/error"
)

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uuid.UUID]*entity.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, domainerror.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, domainerror.ErrUserNotFound
}

func (f *fakeUserRepo) UpdatePassword(_ context.Context, id uuid.UUID, passwordHash string) error {
	user, ok := f.users[id]
	if !ok {
		return domainerror.ErrUserNotFound
	}
	user.PasswordHash = passwordHash
	return nil
}

// fakePasswordService treats the hash as "hashed:" + password.
type fakePasswordService struct{}

func (fakePasswordService) HashPassword(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakePasswordService) VerifyPassword(hashedPassword, password string) error {
	if hashedPassword != "hashed:"+password {
		return errors.New("mismatch")
	}
	return nil
}

type stubTokenService struct{}

func (stubTokenService) GenerateAccessToken(_ context.Context, userID uuid.UUID, _ string) (string, error) {
	return "token-" + userID.String(), nil
}

func (stubTokenService) ValidateAccessToken(_ context.Context, _ string) (*adapter.TokenClaims, error) {
	return nil, domainerror.ErrInvalidToken
}

func TestLoginUser(t *testing.T) {
	repo := newFakeUserRepo()
	user := entity.NewUser("Admin", "admin@example.com", "hashed:secret123")
	repo.users[user.ID] = user

	uc := NewLoginUserUseCase(repo, fakePasswordService{}, stubTokenService{})

	output, err := uc.Execute(context.Background(), LoginUserInput{
		Email:    "admin@example.com",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if output.AccessToken == "" {
		t.Error("empty access token")
	}
	if output.User.ID != user.ID {
		t.Error("wrong user returned")
	}
}

func TestLoginUserInvalidCredentials(t *testing.T) {
	repo := newFakeUserRepo()
	user := entity.NewUser("Admin", "admin@example.com", "hashed:secret123")
	repo.users[user.ID] = user

	uc := NewLoginUserUseCase(repo, fakePasswordService{}, stubTokenService{})

	tests := []struct {
		name     string
		email    string
		password string
		wantCode domainerror.AuthErrorCode
	}{
		{"wrong password", "admin@example.com", "nope", domainerror.ErrCodeInvalidCredentials},
		{"unknown email", "ghost@example.com", "secret123", domainerror.ErrCodeInvalidCredentials},
		{"missing fields", "", "", domainerror.ErrCodeMissingFields},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), LoginUserInput{
				Email:    tt.email,
				Password: tt.password,
			})

			var authErr *domainerror.AuthError
			if !errors.As(err, &authErr) {
				t.Fatalf("expected AuthError, got %v", err)
			}
			if authErr.Code != tt.wantCode {
				t.Errorf("code = %s, want %s", authErr.Code, tt.wantCode)
			}
		})
	}
}

func TestChangePassword(t *testing.T) {
	repo := newFakeUserRepo()
	user := entity.NewUser("Admin", "admin@example.com", "hashed:oldpassword")
	repo.users[user.ID] = user

	uc := NewChangePasswordUseCase(repo, fakePasswordService{})

	output, err := uc.Execute(context.Background(), ChangePasswordInput{
		UserID:          user.ID,
		CurrentPassword: "oldpassword",
		NewPassword:     "newpassword",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !output.Success {
		t.Error("expected success")
	}
	if user.PasswordHash != "hashed:newpassword" {
		t.Errorf("hash not updated: %q", user.PasswordHash)
	}
}

func TestChangePasswordRejectsWrongCurrent(t *testing.T) {
	repo := newFakeUserRepo()
	user := entity.NewUser("Admin", "admin@example.com", "hashed:oldpassword")
	repo.users[user.ID] = user

	uc := NewChangePasswordUseCase(repo, fakePasswordService{})

	_, err := uc.Execute(context.Background(), ChangePasswordInput{
		UserID:          user.ID,
		CurrentPassword: "wrong",
		NewPassword:     "newpassword",
	})
	if !errors.Is(err, domainerror.ErrPasswordMismatch) {
		t.Fatalf("expected ErrPasswordMismatch, got %v", err)
	}
	if user.PasswordHash != "hashed:oldpassword" {
		t.Error("hash changed despite failed verification")
	}
}

func TestChangePasswordTooShort(t *testing.T) {
	repo := newFakeUserRepo()
	user := entity.NewUser("Admin", "admin@example.com", "hashed:oldpassword")
	repo.users[user.ID] = user

	uc := NewChangePasswordUseCase(repo, fakePasswordService{})

	_, err := uc.Execute(context.Background(), ChangePasswordInput{
		UserID:          user.ID,
		CurrentPassword: "oldpassword",
		NewPassword:     "short",
	})

	var authErr *domainerror.AuthError
	if !errors.As(err, &authErr) || authErr.Code != domainerror.ErrCodeMissingFields {
		t.Fatalf("expected missing-fields code, got %v", err)
	}
}
