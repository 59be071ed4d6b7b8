package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/joshua-takyi/carhub/internal/models"
)

type UserService struct {
	userRepo models.UserRepo
}

func NewUserService(userRepo models.UserRepo) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

// Register is idempotent by email: registering an existing address returns
// the prior record with created=false instead of erroring.
func (us *UserService) Register(ctx context.Context, user *models.User) (*models.User, bool, error) {
	if err := models.Validate.Struct(user); err != nil {
		return nil, false, fmt.Errorf("invalid user data provided: %v", err)
	}

	existing, err := us.userRepo.FindUserByEmail(ctx, user.Email)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return existing, false, nil
	}

	user.CreatedAt = time.Now()
	created, err := us.userRepo.CreateUser(ctx, user)
	if errors.Is(err, models.ErrUserExists) {
		// Lost the insert race to a concurrent registration; the unique
		// index caught it, so report the winner's record.
		existing, findErr := us.userRepo.FindUserByEmail(ctx, user.Email)
		if findErr != nil {
			return nil, false, findErr
		}
		return existing, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	return created, true, nil
}

func (us *UserService) ListUsers(ctx context.Context) ([]*models.User, error) {
	return us.userRepo.ListUsers(ctx)
}
