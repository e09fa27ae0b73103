// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/scribe-ops/backend/internal/application/adapter"
	domainerror "github.com/scribe-ops/backend/internal/domain/error"
)

// MinPasswordLength is the minimum accepted password length.
const MinPasswordLength = 8

// ChangePasswordInput represents the input for a password change.
type ChangePasswordInput struct {
	UserID          uuid.UUID
	CurrentPassword string
	NewPassword     string
}

// ChangePasswordOutput represents the output of a password change.
type ChangePasswordOutput struct {
	Success bool
}

// ChangePasswordUseCase handles password change logic.
type ChangePasswordUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
}

// NewChangePasswordUseCase creates a new ChangePasswordUseCase instance.
func NewChangePasswordUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
) *ChangePasswordUseCase {
	return &ChangePasswordUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
	}
}

// Execute performs the password change. The current password must verify
// before the new hash is written.
func (uc *ChangePasswordUseCase) Execute(ctx context.Context, input ChangePasswordInput) (*ChangePasswordOutput, error) {
	if input.CurrentPassword == "" || input.NewPassword == "" {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeMissingFields,
			"currentPassword and newPassword are required",
			domainerror.ErrInvalidCredentials,
		)
	}

	if len(input.NewPassword) < MinPasswordLength {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeMissingFields,
			fmt.Sprintf("newPassword must be at least %d characters", MinPasswordLength),
			domainerror.ErrInvalidCredentials,
		)
	}

	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeUserNotFound,
			"user not found",
			domainerror.ErrUserNotFound,
		)
	}

	if err := uc.passwordService.VerifyPassword(user.PasswordHash, input.CurrentPassword); err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodePasswordMismatch,
			"current password is incorrect",
			domainerror.ErrPasswordMismatch,
		)
	}

	hash, err := uc.passwordService.HashPassword(input.NewPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	if err := uc.userRepo.UpdatePassword(ctx, user.ID, hash); err != nil {
		return nil, fmt.Errorf("failed to update password: %w", err)
	}

	return &ChangePasswordOutput{Success: true}, nil
}
