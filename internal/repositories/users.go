package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/murmurlabs/murmur/internal/models"
	"gorm.io/gorm"
)

// UserRepository implements models.UserStore on top of gorm/Postgres.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		// The unique index backstops the application-level email pre-check,
		// which is not atomic with this insert.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	switch {
	case err == nil:
		return &user, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, models.ErrNotFound
	default:
		return nil, err
	}
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	switch {
	case err == nil:
		return &user, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, models.ErrNotFound
	default:
		return nil, err
	}
}

func (r *UserRepository) UpdateProfilePic(ctx context.Context, id uuid.UUID, url string) (*models.User, error) {
	user, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(user).Update("profile_pic", url).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (r *UserRepository) ListOthers(ctx context.Context, excludeID uuid.UUID) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).Where("id <> ?", excludeID).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
