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

// SeedReport counts what a seed run inserted and what it found already present.
type SeedReport struct {
	CategoriesCreated int `json:"categoriesCreated"`
	CategoriesSkipped int `json:"categoriesSkipped"`
	ProductsCreated   int `json:"productsCreated"`
	ProductsSkipped   int `json:"productsSkipped"`
	LinksCreated      int `json:"linksCreated"`
}

// Seed populates the reference categories and sample products. Rows are
// keyed by category code and product SKU: existing rows are left untouched
// and new products get the standard set of platform links, so running Seed
// repeatedly is safe and never duplicates data.
func (s *Store) Seed(ctx context.Context) (SeedReport, error) {
	defer s.track("seed")()

	var report SeedReport
	err := s.conn(ctx).Transaction(func(tx *gorm.DB) error {
		report = SeedReport{}

		categoryIDs := make(map[string]string, len(seedCategories))
		for _, sc := range seedCategories {
			id, created, err := seedCategoryRow(tx, sc)
			if err != nil {
				return err
			}
			categoryIDs[sc.Code] = id
			if created {
				report.CategoriesCreated++
			} else {
				report.CategoriesSkipped++
			}
		}

		for _, sp := range seedProducts {
			taken, err := exists(tx, &model.Product{}, "sku = ?", sp.SKU)
			if err != nil {
				return err
			}
			if taken {
				report.ProductsSkipped++
				continue
			}

			categoryID, ok := categoryIDs[sp.CategoryCode]
			if !ok {
				return fmt.Errorf("seed product %s references unknown category %s", sp.SKU, sp.CategoryCode)
			}

			product := model.Product{
				SKU:           sp.SKU,
				Name:          sp.Name,
				Description:   sp.Description,
				Price:         model.MustPrice(sp.Price),
				Material:      sp.Material,
				Weight:        sp.Weight,
				CategoryID:    categoryID,
				Images:        datatypes.JSONSlice[string](sp.Images),
				IsActive:      true,
				StockQuantity: sp.StockQuantity,
			}
			if err := tx.Omit(clause.Associations).Create(&product).Error; err != nil {
				return fmt.Errorf("seed product %s: %w", sp.SKU, translate(err))
			}
			report.ProductsCreated++

			links := seedLinksFor(product)
			if err := tx.Omit(clause.Associations).Create(&links).Error; err != nil {
				return fmt.Errorf("seed platform links for %s: %w", sp.SKU, translate(err))
			}
			report.LinksCreated += len(links)
		}
		return nil
	})
	if err != nil {
		return SeedReport{}, err
	}

	s.metrics.RecordSeed(report.CategoriesCreated, report.ProductsCreated, report.LinksCreated)
	log(ctx).Info("Seed completed",
		zap.Int("categories_created", report.CategoriesCreated),
		zap.Int("categories_skipped", report.CategoriesSkipped),
		zap.Int("products_created", report.ProductsCreated),
		zap.Int("products_skipped", report.ProductsSkipped),
		zap.Int("links_created", report.LinksCreated))
	return report, nil
}

func seedCategoryRow(tx *gorm.DB, sc seedCategory) (id string, created bool, err error) {
	var existing model.Category
	err = tx.Where("code = ?", sc.Code).Take(&existing).Error
	if err == nil {
		return existing.ID, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, err
	}

	description := sc.Description
	category := model.Category{
		Name:        sc.Name,
		Code:        sc.Code,
		Gender:      sc.Gender,
		Description: &description,
	}
	if err := tx.Create(&category).Error; err != nil {
		return "", false, fmt.Errorf("seed category %s: %w", sc.Code, translate(err))
	}
	return category.ID, true, nil
}

func seedLinksFor(product model.Product) []model.PlatformLink {
	links := make([]model.PlatformLink, 0, len(seedLinks))
	for _, sl := range seedLinks {
		link := model.PlatformLink{
			ProductID: product.ID,
			Platform:  sl.Platform,
			IsActive:  sl.IsActive,
		}
		if sl.Platform.RequiresURL() {
			url := fmt.Sprintf("https://%s.com/product/%s", sl.Platform, product.SKU)
			link.URL = &url
		}
		links = append(links, link)
	}
	return links
}
