package storage

import (
	"context"
	"fmt"

	"github.com/amd4k/ZHV/internal/model"
)

// ListCategories returns every category ordered by name.
func (s *Store) ListCategories(ctx context.Context) ([]model.Category, error) {
	defer s.track("list_categories")()

	categories := []model.Category{}
	if err := s.conn(ctx).Order("name ASC").Order("code ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *Store) GetCategoryByID(ctx context.Context, id string) (*model.Category, error) {
	defer s.track("get_category")()

	var category model.Category
	if err := s.conn(ctx).Where("id = ?", id).Take(&category).Error; err != nil {
		return nil, translate(err)
	}
	return &category, nil
}

// CreateCategory inserts c and fills in its id and creation time.
func (s *Store) CreateCategory(ctx context.Context, c *model.Category) error {
	defer s.track("create_category")()

	db := s.conn(ctx)
	taken, err := exists(db, &model.Category{}, "code = ?", c.Code)
	if err != nil {
		return err
	}
	if taken {
		return fmt.Errorf("%w: category code %q", ErrDuplicateKey, c.Code)
	}
	return translate(db.Create(c).Error)
}
