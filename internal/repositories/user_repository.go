package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"soko/internal/models/db_models"
)

type UserRepositoryInterface interface {
	CrudRepositoryInterface[db_models.User]
	FindByEmail(ctx context.Context, email string) (*db_models.User, error)
	FindActiveByID(ctx context.Context, id uuid.UUID) (*db_models.User, error)
	FindByResetToken(ctx context.Context, tokenHash string) (*db_models.User, error)
	Save(ctx context.Context, user *db_models.User) error
}

type UserRepository struct {
	*CrudRepository[db_models.User]
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{
		CrudRepository: NewCrudRepository[db_models.User](
			db, db_models.UserQuery, nil, map[string]any{"active": true},
		),
		db: db,
	}
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*db_models.User, error) {
	var user db_models.User
	err := r.db.WithContext(ctx).
		Where("email = ? AND active = ?", email, true).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindActiveByID(ctx context.Context, id uuid.UUID) (*db_models.User, error) {
	var user db_models.User
	err := r.db.WithContext(ctx).
		Where("id = ? AND active = ?", id, true).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByResetToken(ctx context.Context, tokenHash string) (*db_models.User, error) {
	var user db_models.User
	err := r.db.WithContext(ctx).
		Where("password_reset_token = ? AND password_reset_expires > ?", tokenHash, time.Now().Unix()).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Save persists the full record, including zero-valued columns such as a
// cleared reset token.
func (r *UserRepository) Save(ctx context.Context, user *db_models.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}
