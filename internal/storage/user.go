package storage

import (
	"context"
	"fmt"

	"github.com/amd4k/ZHV/internal/model"
)

// CreateUser inserts u. The password hash must already be set.
func (s *Store) CreateUser(ctx context.Context, u *model.User) error {
	defer s.track("create_user")()

	db := s.conn(ctx)
	taken, err := exists(db, &model.User{}, "username = ?", u.Username)
	if err != nil {
		return err
	}
	if taken {
		return fmt.Errorf("%w: username %q", ErrDuplicateKey, u.Username)
	}
	return translate(db.Create(u).Error)
}

func (s *Store) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	defer s.track("get_user_by_username")()

	var user model.User
	if err := s.conn(ctx).Where("username = ?", username).Take(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}
