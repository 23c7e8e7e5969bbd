package storage

import (
	"context"
	"testing"

	"github.com/amd4k/ZHV/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedPopulatesReferenceData(t *testing.T) {
	ctx := context.Background()
	store := New(newTestDB(t))

	report, err := store.Seed(ctx)
	require.NoError(t, err)
	assert.Equal(t, SeedReport{
		CategoriesCreated: len(seedCategories),
		ProductsCreated:   len(seedProducts),
		LinksCreated:      len(seedProducts) * len(seedLinks),
	}, report)

	categories, err := store.ListCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 9)

	products, err := store.ListProducts(ctx, ProductFilter{})
	require.NoError(t, err)
	require.Len(t, products, 5)

	for _, p := range products {
		require.Len(t, p.PlatformLinks, 5, "product %s", p.SKU)
		for _, l := range p.PlatformLinks {
			switch l.Platform {
			case model.PlatformDirect:
				assert.Nil(t, l.URL)
				assert.True(t, l.IsActive)
			case model.PlatformMeesho:
				assert.False(t, l.IsActive)
				require.NotNil(t, l.URL)
			default:
				require.NotNil(t, l.URL)
				assert.Equal(t, "https://"+string(l.Platform)+".com/product/"+p.SKU, *l.URL)
				assert.True(t, l.IsActive)
			}
		}
	}

	ring, err := store.ListProducts(ctx, ProductFilter{})
	require.NoError(t, err)
	var found bool
	for _, p := range ring {
		if p.SKU == "ZHV-RG-001" {
			found = true
			assert.Equal(t, "350000.00", p.Price.String())
			assert.Equal(t, "RG", p.Category.Code)
			assert.Equal(t, model.GenderWomen, p.Category.Gender)
		}
	}
	assert.True(t, found)
}

func TestSeedIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := New(newTestDB(t))

	_, err := store.Seed(ctx)
	require.NoError(t, err)

	report, err := store.Seed(ctx)
	require.NoError(t, err)
	assert.Equal(t, SeedReport{
		CategoriesSkipped: len(seedCategories),
		ProductsSkipped:   len(seedProducts),
	}, report)

	categories, err := store.ListCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 9)

	total, err := store.CountProducts(ctx, ProductFilter{})
	require.NoError(t, err)
	assert.EqualValues(t, 5, total)

	products, err := store.ListProducts(ctx, ProductFilter{})
	require.NoError(t, err)
	for _, p := range products {
		assert.Len(t, p.PlatformLinks, 5, "links are not duplicated for %s", p.SKU)
	}
}

func TestSeedReusesExistingCategories(t *testing.T) {
	ctx := context.Background()
	store := New(newTestDB(t))

	rings := model.Category{Name: "Rings", Code: "RG", Gender: model.GenderWomen}
	require.NoError(t, store.CreateCategory(ctx, &rings))

	report, err := store.Seed(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(seedCategories)-1, report.CategoriesCreated)
	assert.Equal(t, 1, report.CategoriesSkipped)

	products, err := store.ListProducts(ctx, ProductFilter{CategoryID: rings.ID})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "ZHV-RG-001", products[0].SKU)
}

func TestSeedSkipsExistingSKU(t *testing.T) {
	ctx := context.Background()
	store := New(newTestDB(t))

	rings := model.Category{Name: "Rings", Code: "RG", Gender: model.GenderWomen}
	require.NoError(t, store.CreateCategory(ctx, &rings))
	custom := &model.Product{
		SKU:         "ZHV-RG-001",
		Name:        "Custom Ring",
		Description: "Edited by the shop owner",
		Price:       model.MustPrice("1.00"),
		Material:    "Silver",
		Weight:      "2g",
		CategoryID:  rings.ID,
		IsActive:    true,
	}
	require.NoError(t, store.CreateProduct(ctx, custom))

	report, err := store.Seed(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(seedProducts)-1, report.ProductsCreated)
	assert.Equal(t, 1, report.ProductsSkipped)

	got, err := store.GetProductByID(ctx, custom.ID)
	require.NoError(t, err)
	assert.Equal(t, "Custom Ring", got.Name)
	assert.Empty(t, got.PlatformLinks)
}
