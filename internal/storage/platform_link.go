package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/amd4k/ZHV/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ListPlatformLinksByProduct returns the product's links in creation order.
// An unknown product yields an empty list.
func (s *Store) ListPlatformLinksByProduct(ctx context.Context, productID string) ([]model.PlatformLink, error) {
	defer s.track("list_platform_links")()

	links := []model.PlatformLink{}
	if err := s.conn(ctx).
		Where("product_id = ?", productID).
		Order("created_at ASC").
		Order("id ASC").
		Find(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}

func (s *Store) GetPlatformLink(ctx context.Context, id string) (*model.PlatformLink, error) {
	defer s.track("get_platform_link")()

	var link model.PlatformLink
	if err := s.conn(ctx).Where("id = ?", id).Take(&link).Error; err != nil {
		return nil, translate(err)
	}
	return &link, nil
}

// CreatePlatformLink inserts l for an existing product.
func (s *Store) CreatePlatformLink(ctx context.Context, l *model.PlatformLink) error {
	defer s.track("create_platform_link")()

	return s.conn(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireProduct(tx, l.ProductID); err != nil {
			return err
		}
		return translate(tx.Omit(clause.Associations).Create(l).Error)
	})
}

// UpdatePlatformLink replaces the link's platform, URL and active flag. A
// non-empty ProductID moves the link to that product.
func (s *Store) UpdatePlatformLink(ctx context.Context, id string, l *model.PlatformLink) (*model.PlatformLink, error) {
	defer s.track("update_platform_link")()

	var updated model.PlatformLink
	err := s.conn(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).Take(&updated).Error; err != nil {
			return translate(err)
		}
		if l.ProductID != "" && l.ProductID != updated.ProductID {
			if err := requireProduct(tx, l.ProductID); err != nil {
				return err
			}
			updated.ProductID = l.ProductID
		}
		updated.Platform = l.Platform
		updated.URL = l.URL
		updated.IsActive = l.IsActive

		return translate(tx.Omit(clause.Associations).Save(&updated).Error)
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *Store) DeletePlatformLink(ctx context.Context, id string) error {
	defer s.track("delete_platform_link")()

	result := s.conn(ctx).Where("id = ?", id).Delete(&model.PlatformLink{})
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func requireProduct(tx *gorm.DB, productID string) error {
	if err := tx.Where("id = ?", productID).Take(&model.Product{}).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: product %q", ErrInvalidReference, productID)
		}
		return err
	}
	return nil
}
