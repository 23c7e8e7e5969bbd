package handler

import (
	"context"

	"github.com/amd4k/ZHV/internal/model"
	"github.com/amd4k/ZHV/internal/storage"
)

// --- Mock Store ---

type MockStore struct {
	Categories     []model.Category
	Products       []model.ProductWithDetails
	Links          []model.PlatformLink
	Users          []model.User
	Total          int64
	SeedReport     storage.SeedReport
	Err            error
	WriteErr       error
	PingErr        error
	UpdatedProduct *model.Product
	UpdatedLink    *model.PlatformLink

	// captured call arguments
	lastFilter        storage.ProductFilter
	lastFeaturedCount int
	lastID            string
	savedCategory     *model.Category
	savedProduct      *model.Product
	savedLink         *model.PlatformLink
	seedCalls         int
}

func (m *MockStore) Ping(ctx context.Context) error {
	return m.PingErr
}

func (m *MockStore) ListCategories(ctx context.Context) ([]model.Category, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Categories == nil {
		return []model.Category{}, nil
	}
	return m.Categories, nil
}

func (m *MockStore) GetCategoryByID(ctx context.Context, id string) (*model.Category, error) {
	m.lastID = id
	if m.Err != nil {
		return nil, m.Err
	}
	for _, c := range m.Categories {
		if c.ID == id {
			category := c
			return &category, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (m *MockStore) CreateCategory(ctx context.Context, c *model.Category) error {
	m.savedCategory = c
	if m.WriteErr != nil {
		return m.WriteErr
	}
	c.ID = "cat-new"
	return nil
}

func (m *MockStore) ListProducts(ctx context.Context, filter storage.ProductFilter) ([]model.ProductWithDetails, error) {
	m.lastFilter = filter
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Products == nil {
		return []model.ProductWithDetails{}, nil
	}
	return m.Products, nil
}

func (m *MockStore) CountProducts(ctx context.Context, filter storage.ProductFilter) (int64, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	return m.Total, nil
}

func (m *MockStore) ListFeaturedProducts(ctx context.Context, count int) ([]model.ProductWithDetails, error) {
	m.lastFeaturedCount = count
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Products == nil {
		return []model.ProductWithDetails{}, nil
	}
	return m.Products, nil
}

func (m *MockStore) GetProductByID(ctx context.Context, id string) (*model.ProductWithDetails, error) {
	m.lastID = id
	if m.Err != nil {
		return nil, m.Err
	}
	for _, p := range m.Products {
		if p.ID == id {
			product := p
			return &product, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (m *MockStore) CreateProduct(ctx context.Context, p *model.Product) error {
	m.savedProduct = p
	if m.WriteErr != nil {
		return m.WriteErr
	}
	p.ID = "prod-new"
	return nil
}

func (m *MockStore) UpdateProduct(ctx context.Context, id string, p *model.Product) (*model.Product, error) {
	m.lastID = id
	m.savedProduct = p
	if m.WriteErr != nil {
		return nil, m.WriteErr
	}
	if m.UpdatedProduct != nil {
		return m.UpdatedProduct, nil
	}
	updated := *p
	updated.ID = id
	return &updated, nil
}

func (m *MockStore) DeleteProduct(ctx context.Context, id string) error {
	m.lastID = id
	return m.WriteErr
}

func (m *MockStore) ListPlatformLinksByProduct(ctx context.Context, productID string) ([]model.PlatformLink, error) {
	m.lastID = productID
	if m.Err != nil {
		return nil, m.Err
	}
	links := []model.PlatformLink{}
	for _, l := range m.Links {
		if l.ProductID == productID {
			links = append(links, l)
		}
	}
	return links, nil
}

func (m *MockStore) GetPlatformLink(ctx context.Context, id string) (*model.PlatformLink, error) {
	m.lastID = id
	if m.Err != nil {
		return nil, m.Err
	}
	for _, l := range m.Links {
		if l.ID == id {
			link := l
			return &link, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (m *MockStore) CreatePlatformLink(ctx context.Context, l *model.PlatformLink) error {
	m.savedLink = l
	if m.WriteErr != nil {
		return m.WriteErr
	}
	l.ID = "link-new"
	return nil
}

func (m *MockStore) UpdatePlatformLink(ctx context.Context, id string, l *model.PlatformLink) (*model.PlatformLink, error) {
	m.lastID = id
	m.savedLink = l
	if m.WriteErr != nil {
		return nil, m.WriteErr
	}
	if m.UpdatedLink != nil {
		return m.UpdatedLink, nil
	}
	updated := *l
	updated.ID = id
	return &updated, nil
}

func (m *MockStore) DeletePlatformLink(ctx context.Context, id string) error {
	m.lastID = id
	return m.WriteErr
}

func (m *MockStore) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for _, u := range m.Users {
		if u.Username == username {
			user := u
			return &user, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (m *MockStore) Seed(ctx context.Context) (storage.SeedReport, error) {
	m.seedCalls++
	if m.Err != nil {
		return storage.SeedReport{}, m.Err
	}
	return m.SeedReport, nil
}
