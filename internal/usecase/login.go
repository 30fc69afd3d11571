package usecase

import (
	"context"

	"github.com/rajudas/field-sales-api/internal/auth"
	"github.com/rajudas/field-sales-api/internal/entity"
)

type LoginUseCase struct {
	Users UserRepositoryInterface
}

func NewLoginUseCase(users UserRepositoryInterface) *LoginUseCase {
	return &LoginUseCase{Users: users}
}

// Authenticate compares the bcrypt hash on file. Unknown user and wrong
// password both come back as ErrInvalidCredentials.
func (uc *LoginUseCase) Authenticate(ctx context.Context, username, password string) (*entity.User, error) {
	user, err := uc.Users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil || !auth.VerifyPassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
