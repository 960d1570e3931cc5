package repository

import (
	"context"
	"errors"

	"github.com/siteledger/siteledger/internal/domain/user"
	"github.com/siteledger/siteledger/internal/logger"
	"github.com/siteledger/siteledger/internal/postgres"
	"gorm.io/gorm"

	ierr "github.com/siteledger/siteledger/internal/errors"
)

type userRepository struct {
	baseRepository[user.User, *user.User]
}

func NewUserRepository(client postgres.IClient, log *logger.Logger) user.Repository {
	return &userRepository{
		baseRepository: newBaseRepository[user.User, *user.User](client, log),
	}
}

// GetByEmail looks the user up across tenants. Login happens before a
// tenant is known, so this is the one read that is not tenant scoped.
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	var u user.User
	err := r.client.DB(ctx).
		Where("email = ? AND archived_at IS NULL", email).
		First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ierr.WithError(err).
				WithHint("No user exists with this email").
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to fetch user").
			Mark(ierr.ErrDatabase)
	}
	return &u, nil
}
