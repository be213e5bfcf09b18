package services

import (
	"context"
	"net/http"

	"soko/internal/models/db_models"
	"soko/internal/repositories"
	"soko/pkg/utils"
)

type UserServiceInterface interface {
	ResourceServiceInterface[db_models.User]
	UpdateMe(ctx context.Context, user *db_models.User, updates map[string]any) (*db_models.User, error)
	DeleteMe(ctx context.Context, user *db_models.User) error
}

type UserService struct {
	*ResourceService[db_models.User]
	userRepo repositories.UserRepositoryInterface
}

func NewUserService(userRepo repositories.UserRepositoryInterface) UserServiceInterface {
	return &UserService{
		ResourceService: NewResourceService[db_models.User](userRepo),
		userRepo:        userRepo,
	}
}

// UpdateMe applies profile changes from an untyped body, keeping only the
// fields a user may touch on their own record.
func (s *UserService) UpdateMe(ctx context.Context, user *db_models.User, updates map[string]any) (*db_models.User, error) {
	if _, ok := updates["password"]; ok {
		return nil, utils.NewAppError(http.StatusBadRequest,
			"This route is not for password updates. Please use /auth/updateMyPassword.")
	}
	if _, ok := updates["passwordConfirm"]; ok {
		return nil, utils.NewAppError(http.StatusBadRequest,
			"This route is not for password updates. Please use /auth/updateMyPassword.")
	}

	filtered := utils.FilterAllowed(updates, "name", "shop", "email", "telephone", "photo")
	if len(filtered) == 0 {
		return user, nil
	}
	return s.userRepo.UpdateByID(ctx, user.ID.String(), filtered)
}

// DeleteMe deactivates the account. The row stays for audit, every lookup
// filters on active.
func (s *UserService) DeleteMe(ctx context.Context, user *db_models.User) error {
	user.Active = false
	return s.userRepo.Save(ctx, user)
}
