package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/amd4k/ZHV/internal/model"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProductFilter narrows a product listing. Zero values mean "no constraint";
// Limit and Offset apply after ordering.
type ProductFilter struct {
	CategoryID string
	Limit      int
	Offset     int
}

func (s *Store) activeProducts(db *gorm.DB, filter ProductFilter) *gorm.DB {
	q := db.Model(&model.Product{}).Where("products.is_active = ?", true)
	if filter.CategoryID != "" {
		q = q.Where("products.category_id = ?", filter.CategoryID)
	}
	return q
}

// ListProducts returns active products, newest first, each with its category
// and platform links.
func (s *Store) ListProducts(ctx context.Context, filter ProductFilter) ([]model.ProductWithDetails, error) {
	defer s.track("list_products")()

	db := s.conn(ctx)
	q := s.activeProducts(db, filter).
		Order("products.created_at DESC").
		Order("products.id DESC")
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		q = q.Offset(filter.Offset)
	}

	var products []model.Product
	if err := q.Find(&products).Error; err != nil {
		return nil, err
	}
	return s.withDetails(ctx, db, products)
}

// CountProducts returns the size of the listing filter describes, ignoring
// Limit and Offset.
func (s *Store) CountProducts(ctx context.Context, filter ProductFilter) (int64, error) {
	defer s.track("count_products")()

	var total int64
	if err := s.activeProducts(s.conn(ctx), filter).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// ListFeaturedProducts returns the count most recently created active products.
func (s *Store) ListFeaturedProducts(ctx context.Context, count int) ([]model.ProductWithDetails, error) {
	return s.ListProducts(ctx, ProductFilter{Limit: count})
}

// GetProductByID looks up a single product regardless of its active flag.
func (s *Store) GetProductByID(ctx context.Context, id string) (*model.ProductWithDetails, error) {
	defer s.track("get_product")()

	db := s.conn(ctx)
	var product model.Product
	if err := db.Where("id = ?", id).Take(&product).Error; err != nil {
		return nil, translate(err)
	}

	details, err := s.withDetails(ctx, db, []model.Product{product})
	if err != nil {
		return nil, err
	}
	if len(details) == 0 {
		return nil, ErrNotFound
	}
	return &details[0], nil
}

// withDetails attaches categories and platform links to products using one
// query per table, keeping the order of products. Products whose category
// cannot be resolved are dropped and reported.
func (s *Store) withDetails(ctx context.Context, db *gorm.DB, products []model.Product) ([]model.ProductWithDetails, error) {
	result := make([]model.ProductWithDetails, 0, len(products))
	if len(products) == 0 {
		return result, nil
	}

	productIDs := make([]string, 0, len(products))
	categoryIDs := make([]string, 0, len(products))
	seen := make(map[string]bool, len(products))
	for _, p := range products {
		productIDs = append(productIDs, p.ID)
		if !seen[p.CategoryID] {
			seen[p.CategoryID] = true
			categoryIDs = append(categoryIDs, p.CategoryID)
		}
	}

	var categories []model.Category
	if err := db.Where("id IN ?", categoryIDs).Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("load categories: %w", err)
	}
	categoryByID := make(map[string]model.Category, len(categories))
	for _, c := range categories {
		categoryByID[c.ID] = c
	}

	var links []model.PlatformLink
	if err := db.Where("product_id IN ?", productIDs).
		Order("created_at ASC").
		Order("id ASC").
		Find(&links).Error; err != nil {
		return nil, fmt.Errorf("load platform links: %w", err)
	}
	linksByProduct := make(map[string][]model.PlatformLink, len(products))
	for _, l := range links {
		linksByProduct[l.ProductID] = append(linksByProduct[l.ProductID], l)
	}

	for _, p := range products {
		category, ok := categoryByID[p.CategoryID]
		if !ok {
			log(ctx).Warn("Skipping product with unresolvable category",
				zap.String("product_id", p.ID),
				zap.String("sku", p.SKU),
				zap.String("category_id", p.CategoryID))
			continue
		}
		productLinks := linksByProduct[p.ID]
		if productLinks == nil {
			productLinks = []model.PlatformLink{}
		}
		result = append(result, model.ProductWithDetails{
			Product:       p,
			Category:      category,
			PlatformLinks: productLinks,
		})
	}
	return result, nil
}

// CreateProduct inserts p after checking that its SKU is free and its
// category exists.
func (s *Store) CreateProduct(ctx context.Context, p *model.Product) error {
	defer s.track("create_product")()

	return s.conn(ctx).Transaction(func(tx *gorm.DB) error {
		if err := checkProductWrite(tx, p, ""); err != nil {
			return err
		}
		return translate(tx.Omit(clause.Associations).Create(p).Error)
	})
}

// UpdateProduct replaces every mutable column of the product with the values
// in p. The id and creation time are preserved.
func (s *Store) UpdateProduct(ctx context.Context, id string, p *model.Product) (*model.Product, error) {
	defer s.track("update_product")()

	var updated model.Product
	err := s.conn(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).Take(&updated).Error; err != nil {
			return translate(err)
		}
		if err := checkProductWrite(tx, p, id); err != nil {
			return err
		}

		updated.SKU = p.SKU
		updated.Name = p.Name
		updated.Description = p.Description
		updated.Price = p.Price
		updated.Material = p.Material
		updated.Weight = p.Weight
		updated.CategoryID = p.CategoryID
		updated.Images = p.Images
		if updated.Images == nil {
			updated.Images = datatypes.JSONSlice[string]{}
		}
		updated.IsActive = p.IsActive
		updated.StockQuantity = p.StockQuantity

		return translate(tx.Omit(clause.Associations).Save(&updated).Error)
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteProduct hard-deletes the product and the platform links it owns.
func (s *Store) DeleteProduct(ctx context.Context, id string) error {
	defer s.track("delete_product")()

	return s.conn(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).Delete(&model.PlatformLink{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&model.Product{})
		if result.Error != nil {
			return translate(result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// checkProductWrite enforces SKU uniqueness and the category reference.
// selfID excludes the product being updated from the SKU check.
func checkProductWrite(tx *gorm.DB, p *model.Product, selfID string) error {
	q := tx.Model(&model.Product{}).Where("sku = ?", p.SKU)
	if selfID != "" {
		q = q.Where("id <> ?", selfID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("%w: product sku %q", ErrDuplicateKey, p.SKU)
	}

	if err := tx.Where("id = ?", p.CategoryID).Take(&model.Category{}).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: category %q", ErrInvalidReference, p.CategoryID)
		}
		return err
	}
	return nil
}
